package submissions

import (
	"errors"
	"sort"
	"strings"
	"time"
)

// Kind is the form a submission came from.
type Kind string

const (
	KindContact    Kind = "contact"
	KindPartner    Kind = "partner"
	KindNewsletter Kind = "newsletter"
)

// Kinds lists every form kind in display order.
var Kinds = []Kind{KindContact, KindPartner, KindNewsletter}

// Valid reports whether k is a known form kind.
func (k Kind) Valid() bool {
	return k == KindContact || k == KindPartner || k == KindNewsletter
}

// Status is the triage state of a submission in the admin inbox.
type Status string

const (
	StatusNew      Status = "new"
	StatusRead     Status = "read"
	StatusReplied  Status = "replied"
	StatusArchived Status = "archived"
)

// Statuses lists every status in triage order.
var Statuses = []Status{StatusNew, StatusRead, StatusReplied, StatusArchived}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusRead, StatusReplied, StatusArchived:
		return true
	}
	return false
}

var (
	ErrNotFound          = errors.New("submission not found")
	ErrAlreadySubscribed = errors.New("email is already subscribed")
)

// Submission is one form entry.
type Submission struct {
	ID        string    `json:"id" dynamodbav:"id"`
	Kind      Kind      `json:"kind" dynamodbav:"kind"`
	Name      string    `json:"name,omitempty" dynamodbav:"name,omitempty"`
	Email     string    `json:"email" dynamodbav:"email"`
	Phone     string    `json:"phone,omitempty" dynamodbav:"phone,omitempty"`
	Company   string    `json:"company,omitempty" dynamodbav:"company,omitempty"`
	Service   string    `json:"service,omitempty" dynamodbav:"service,omitempty"`
	Message   string    `json:"message,omitempty" dynamodbav:"message,omitempty"`
	Status    Status    `json:"status" dynamodbav:"status"`
	CreatedAt time.Time `json:"created_at" dynamodbav:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" dynamodbav:"updatedAt"`
}

// Filter narrows a listing. Zero values match everything.
type Filter struct {
	Kind   Kind
	Status Status
	Limit  int
}

// Matches reports whether s passes the filter's kind and status.
func (f Filter) Matches(s Submission) bool {
	if f.Kind != "" && s.Kind != f.Kind {
		return false
	}
	if f.Status != "" && s.Status != f.Status {
		return false
	}
	return true
}

// Counts tallies submissions for the admin dashboard.
type Counts struct {
	Total    int            `json:"total"`
	ByKind   map[Kind]int   `json:"by_kind"`
	ByStatus map[Status]int `json:"by_status"`
}

func newCounts() Counts {
	c := Counts{ByKind: make(map[Kind]int), ByStatus: make(map[Status]int)}
	for _, k := range Kinds {
		c.ByKind[k] = 0
	}
	for _, s := range Statuses {
		c.ByStatus[s] = 0
	}
	return c
}

func (c *Counts) add(s Submission) {
	c.Total++
	c.ByKind[s.Kind]++
	c.ByStatus[s.Status]++
}

// ValidationError lists the fields a form got wrong.
type ValidationError struct {
	Fields map[string]string `json:"fields"`
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = n + ": " + e.Fields[n]
	}
	return "invalid submission: " + strings.Join(parts, ", ")
}

// newestFirst orders by creation time, then id, descending.
func newestFirst(subs []Submission) {
	sort.SliceStable(subs, func(i, j int) bool {
		if !subs[i].CreatedAt.Equal(subs[j].CreatedAt) {
			return subs[i].CreatedAt.After(subs[j].CreatedAt)
		}
		return subs[i].ID > subs[j].ID
	})
}
