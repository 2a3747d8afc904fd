package submissions

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
	return verr.Fields
}

func TestValidatePerKind(t *testing.T) {
	tests := []struct {
		name   string
		sub    Submission
		fields []string
	}{
		{"contact ok", Submission{Kind: KindContact, Name: "A", Email: "a@x.io", Message: "hi"}, nil},
		{"contact missing", Submission{Kind: KindContact, Email: "a@x.io"}, []string{"name", "message"}},
		{"partner ok", Submission{Kind: KindPartner, Name: "A", Email: "a@x.io", Company: "C"}, nil},
		{"partner missing company", Submission{Kind: KindPartner, Name: "A", Email: "a@x.io"}, []string{"company"}},
		{"newsletter ok", Submission{Kind: KindNewsletter, Email: "a@x.io"}, nil},
		{"newsletter no email", Submission{Kind: KindNewsletter}, []string{"email"}},
		{"bad email", Submission{Kind: KindNewsletter, Email: "not-an-email"}, []string{"email"}},
		{"display name email", Submission{Kind: KindNewsletter, Email: "Ada <ada@x.io>"}, []string{"email"}},
		{"unknown kind", Submission{Kind: "careers", Email: "a@x.io"}, []string{"kind"}},
		{"too long", Submission{Kind: KindContact, Name: "A", Email: "a@x.io", Message: strings.Repeat("x", maxMessageLen+1)}, []string{"message"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.sub)
			if tt.fields == nil {
				assert.NoError(t, err)
				return
			}
			fields := fieldsOf(t, err)
			assert.Len(t, fields, len(tt.fields))
			for _, f := range tt.fields {
				assert.Contains(t, fields, f)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	s := Submission{Name: "  Ada ", Email: " Ada@Example.COM ", Message: "\nhello\n"}
	Normalize(&s)
	assert.Equal(t, "Ada", s.Name)
	assert.Equal(t, "ada@example.com", s.Email)
	assert.Equal(t, "hello", s.Message)
}

func TestValidationErrorMessageIsSorted(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{"name": "is required", "email": "is required"}}
	assert.Equal(t, "invalid submission: email: is required, name: is required", err.Error())
}
