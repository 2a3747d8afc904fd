package submissions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nivin77789/studio-glow-vue-sub000/internal/db"
)

// Store persists submissions. Implementations return ErrNotFound for
// missing ids and list newest first.
type Store interface {
	Create(ctx context.Context, s Submission) (*Submission, error)
	Get(ctx context.Context, id string) (*Submission, error)
	List(ctx context.Context, f Filter) ([]Submission, error)
	UpdateStatus(ctx context.Context, id string, status Status) (*Submission, error)
	Delete(ctx context.Context, id string) error
	FindByEmail(ctx context.Context, kind Kind, email string) (*Submission, error)
	Counts(ctx context.Context) (Counts, error)
}

// prepare fills the id, status and timestamps of a new submission.
func prepare(s Submission, now time.Time) (Submission, error) {
	if s.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return s, fmt.Errorf("generating id: %w", err)
		}
		s.ID = id.String()
	}
	if s.Status == "" {
		s.Status = StatusNew
	}
	s.CreatedAt = now
	s.UpdatedAt = now
	return s, nil
}

// SQLStore keeps submissions in the local SQLite database.
type SQLStore struct {
	db  *db.DB
	now func() time.Time
}

var _ Store = (*SQLStore)(nil)

// NewSQLStore creates a store on an open database.
func NewSQLStore(database *db.DB) *SQLStore {
	return &SQLStore{db: database, now: func() time.Time { return time.Now().UTC() }}
}

const selectColumns = `SELECT id, kind, name, email, phone, company, service, message, status, created_at, updated_at FROM submissions`

type scanner interface {
	Scan(dest ...any) error
}

func scanSubmission(row scanner) (Submission, error) {
	var s Submission
	err := row.Scan(&s.ID, &s.Kind, &s.Name, &s.Email, &s.Phone, &s.Company, &s.Service, &s.Message, &s.Status, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

// Create inserts a new submission.
func (st *SQLStore) Create(ctx context.Context, s Submission) (*Submission, error) {
	s, err := prepare(s, st.now())
	if err != nil {
		return nil, err
	}
	_, err = st.db.ExecContext(ctx,
		`INSERT INTO submissions (id, kind, name, email, phone, company, service, message, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.Kind, s.Name, s.Email, s.Phone, s.Company, s.Service, s.Message, s.Status, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting submission: %w", err)
	}
	return &s, nil
}

// Get fetches one submission.
func (st *SQLStore) Get(ctx context.Context, id string) (*Submission, error) {
	s, err := scanSubmission(st.db.QueryRowContext(ctx, selectColumns+` WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting submission: %w", err)
	}
	return &s, nil
}

// List returns matching submissions, newest first.
func (st *SQLStore) List(ctx context.Context, f Filter) ([]Submission, error) {
	query := selectColumns + ` WHERE 1=1`
	args := []any{}
	if f.Kind != "" {
		query += " AND kind = ?"
		args = append(args, f.Kind)
	}
	if f.Status != "" {
		query += " AND status = ?"
		args = append(args, f.Status)
	}
	query += " ORDER BY created_at DESC, id DESC"
	if f.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, f.Limit)
	}

	rows, err := st.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing submissions: %w", err)
	}
	defer rows.Close()

	var out []Submission
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning submission: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// UpdateStatus moves a submission to a new triage state.
func (st *SQLStore) UpdateStatus(ctx context.Context, id string, status Status) (*Submission, error) {
	result, err := st.db.ExecContext(ctx,
		`UPDATE submissions SET status = ?, updated_at = ? WHERE id = ?`,
		status, st.now(), id,
	)
	if err != nil {
		return nil, fmt.Errorf("updating status: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return nil, ErrNotFound
	}
	return st.Get(ctx, id)
}

// Delete removes a submission.
func (st *SQLStore) Delete(ctx context.Context, id string) error {
	result, err := st.db.ExecContext(ctx, `DELETE FROM submissions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting submission: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// FindByEmail returns the newest submission of kind from email.
func (st *SQLStore) FindByEmail(ctx context.Context, kind Kind, email string) (*Submission, error) {
	s, err := scanSubmission(st.db.QueryRowContext(ctx,
		selectColumns+` WHERE kind = ? AND email = ? ORDER BY created_at DESC LIMIT 1`, kind, email))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("finding submission: %w", err)
	}
	return &s, nil
}

// Counts tallies submissions by kind and status.
func (st *SQLStore) Counts(ctx context.Context) (Counts, error) {
	c := newCounts()
	rows, err := st.db.QueryContext(ctx, `SELECT kind, status, COUNT(*) FROM submissions GROUP BY kind, status`)
	if err != nil {
		return c, fmt.Errorf("counting submissions: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			k Kind
			s Status
			n int
		)
		if err := rows.Scan(&k, &s, &n); err != nil {
			return c, fmt.Errorf("scanning counts: %w", err)
		}
		c.Total += n
		c.ByKind[k] += n
		c.ByStatus[s] += n
	}
	return c, rows.Err()
}
