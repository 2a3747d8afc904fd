// Package submissions stores the contact, partner and newsletter forms and
// feeds changes to the admin console.
package submissions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// Notifier is told about new submissions, typically by email.
type Notifier interface {
	NotifySubmission(ctx context.Context, s Submission) error
}

// Service validates and persists submissions and publishes every change.
type Service struct {
	store    Store
	feed     *Feed
	notifier Notifier

	// notifyTimeout bounds the background alert.
	notifyTimeout time.Duration
}

// NewService wires a store to a feed. notifier may be nil.
func NewService(store Store, feed *Feed, notifier Notifier) *Service {
	if feed == nil {
		feed = NewFeed()
	}
	return &Service{store: store, feed: feed, notifier: notifier, notifyTimeout: 30 * time.Second}
}

// Feed returns the change feed.
func (svc *Service) Feed() *Feed { return svc.feed }

// Store returns the backing store.
func (svc *Service) Store() Store { return svc.store }

// Submit validates and saves a form entry. A newsletter signup for an
// address already on the list returns ErrAlreadySubscribed.
func (svc *Service) Submit(ctx context.Context, s Submission) (*Submission, error) {
	Normalize(&s)
	s.ID = ""
	s.Status = ""
	if err := Validate(s); err != nil {
		return nil, err
	}

	if s.Kind == KindNewsletter {
		existing, err := svc.store.FindByEmail(ctx, KindNewsletter, s.Email)
		switch {
		case err == nil && existing.Status != StatusArchived:
			return nil, ErrAlreadySubscribed
		case err != nil && !errors.Is(err, ErrNotFound):
			return nil, fmt.Errorf("checking subscription: %w", err)
		}
	}

	created, err := svc.store.Create(ctx, s)
	if err != nil {
		return nil, err
	}
	log.Info().
		Str("id", created.ID).
		Str("kind", string(created.Kind)).
		Msg("submission received")

	svc.feed.Publish(Event{Type: EventCreated, Submission: *created, At: created.CreatedAt})
	svc.alert(*created)
	return created, nil
}

// alert runs the notifier in the background; a failed alert never fails
// the submission.
func (svc *Service) alert(s Submission) {
	if svc.notifier == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), svc.notifyTimeout)
		defer cancel()
		if err := svc.notifier.NotifySubmission(ctx, s); err != nil {
			log.Warn().Err(err).Str("id", s.ID).Msg("submission alert failed")
		}
	}()
}

// List returns submissions newest first.
func (svc *Service) List(ctx context.Context, f Filter) ([]Submission, error) {
	if f.Kind != "" && !f.Kind.Valid() {
		return nil, &ValidationError{Fields: map[string]string{"kind": "unknown form"}}
	}
	if f.Status != "" && !f.Status.Valid() {
		return nil, &ValidationError{Fields: map[string]string{"status": "unknown status"}}
	}
	subs, err := svc.store.List(ctx, f)
	if err != nil {
		return nil, err
	}
	if subs == nil {
		subs = []Submission{}
	}
	return subs, nil
}

// Get fetches one submission.
func (svc *Service) Get(ctx context.Context, id string) (*Submission, error) {
	return svc.store.Get(ctx, id)
}

// SetStatus moves a submission through triage.
func (svc *Service) SetStatus(ctx context.Context, id string, status Status) (*Submission, error) {
	if !status.Valid() {
		return nil, &ValidationError{Fields: map[string]string{"status": "unknown status"}}
	}
	updated, err := svc.store.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	log.Info().Str("id", id).Str("status", string(status)).Msg("submission status changed")
	svc.feed.Publish(Event{Type: EventUpdated, Submission: *updated, At: updated.UpdatedAt})
	return updated, nil
}

// Delete removes a submission.
func (svc *Service) Delete(ctx context.Context, id string) error {
	existing, err := svc.store.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := svc.store.Delete(ctx, id); err != nil {
		return err
	}
	log.Info().Str("id", id).Msg("submission deleted")
	svc.feed.Publish(Event{Type: EventDeleted, Submission: *existing, At: time.Now().UTC()})
	return nil
}

// Counts tallies the inbox.
func (svc *Service) Counts(ctx context.Context) (Counts, error) {
	return svc.store.Counts(ctx)
}
