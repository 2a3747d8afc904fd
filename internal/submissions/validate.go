package submissions

import (
	"net/mail"
	"strings"
	"unicode/utf8"
)

const (
	maxNameLen    = 120
	maxMessageLen = 5000
	maxFieldLen   = 200
)

// Normalize trims every field and lowercases the email.
func Normalize(s *Submission) {
	s.Name = strings.TrimSpace(s.Name)
	s.Email = strings.ToLower(strings.TrimSpace(s.Email))
	s.Phone = strings.TrimSpace(s.Phone)
	s.Company = strings.TrimSpace(s.Company)
	s.Service = strings.TrimSpace(s.Service)
	s.Message = strings.TrimSpace(s.Message)
}

// Validate checks the fields required by the submission's form. It returns
// a *ValidationError, or nil.
func Validate(s Submission) error {
	fields := map[string]string{}

	if !s.Kind.Valid() {
		fields["kind"] = "unknown form"
		return &ValidationError{Fields: fields}
	}

	if s.Email == "" {
		fields["email"] = "is required"
	} else if addr, err := mail.ParseAddress(s.Email); err != nil || addr.Address != s.Email {
		fields["email"] = "is not a valid address"
	}

	switch s.Kind {
	case KindContact:
		requireField(fields, "name", s.Name)
		requireField(fields, "message", s.Message)
	case KindPartner:
		requireField(fields, "name", s.Name)
		requireField(fields, "company", s.Company)
	}

	limit(fields, "name", s.Name, maxNameLen)
	limit(fields, "message", s.Message, maxMessageLen)
	limit(fields, "company", s.Company, maxFieldLen)
	limit(fields, "phone", s.Phone, maxFieldLen)
	limit(fields, "service", s.Service, maxFieldLen)

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func requireField(fields map[string]string, name, v string) {
	if v == "" {
		fields[name] = "is required"
	}
}

func limit(fields map[string]string, name, v string, n int) {
	if _, set := fields[name]; set {
		return
	}
	if utf8.RuneCountInString(v) > n {
		fields[name] = "is too long"
	}
}
