//go:build unit

package contact_test

import (
	"testing"

	"sendero-web/internal/domain/contact"
	"sendero-web/internal/domain/locale"
	"sendero-web/internal/pkg/validation"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() contact.Input {
	return contact.Input{
		Name:    "Jo",
		Email:   "a@b.com",
		Subject: "tour",
		Message: "We would like a three day ride.",
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*contact.Input)
		field  string
		reason validation.Reason
	}{
		{"name missing", func(in *contact.Input) { in.Name = "" }, "name", validation.ReasonRequired},
		{"name too short after trim", func(in *contact.Input) { in.Name = "  J  " }, "name", validation.ReasonTooShort},
		{"email missing", func(in *contact.Input) { in.Email = "" }, "email", validation.ReasonRequired},
		{"email malformed", func(in *contact.Input) { in.Email = "jo@localhost" }, "email", validation.ReasonInvalidFormat},
		{"subject outside set", func(in *contact.Input) { in.Subject = "billing" }, "subject", validation.ReasonInvalidOption},
		{"message missing", func(in *contact.Input) { in.Message = "   " }, "message", validation.ReasonRequired},
		{"message too short", func(in *contact.Input) { in.Message = "short" }, "message", validation.ReasonTooShort},
		{"message too short after trim", func(in *contact.Input) { in.Message = "   123456789   " }, "message", validation.ReasonTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			errs := contact.Validate(in)
			reason, ok := errs.Reason(tt.field)
			require.True(t, ok, "expected an error for %s, got %v", tt.field, errs)
			assert.Equal(t, tt.reason, reason)
		})
	}

	t.Run("subject is optional", func(t *testing.T) {
		in := validInput()
		in.Subject = ""
		assert.Empty(t, contact.Validate(in))
	})

	t.Run("message length limits are inclusive", func(t *testing.T) {
		in := validInput()
		in.Message = "1234567890"
		assert.Empty(t, contact.Validate(in))
	})

	t.Run("all violations are collected", func(t *testing.T) {
		got := contact.Validate(contact.Input{Name: "J", Email: "nope", Subject: "other", Message: "hi"})

		want := validation.Errors{
			{Field: "name", Reason: validation.ReasonTooShort, Param: "2"},
			{Field: "email", Reason: validation.ReasonInvalidFormat},
			{Field: "subject", Reason: validation.ReasonInvalidOption, Param: "general tour custom feedback"},
			{Field: "message", Reason: validation.ReasonTooShort, Param: "10"},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("errors mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestNewSubmission(t *testing.T) {
	t.Run("normalizes fields", func(t *testing.T) {
		in := contact.Input{
			Name:    "  Jo Rivera ",
			Email:   " JO@Example.com",
			Subject: "custom",
			Message: "\n  Line one\nLine two  \n",
		}

		sub, err := contact.NewSubmission(in, locale.Spanish)
		require.NoError(t, err)

		assert.Equal(t, "Jo Rivera", sub.Name())
		assert.Equal(t, "jo@example.com", sub.Email())
		require.NotNil(t, sub.Subject())
		assert.Equal(t, contact.SubjectCustom, *sub.Subject())
		assert.Equal(t, "Line one\nLine two", sub.Message())
		assert.Equal(t, locale.Spanish, sub.Locale())
	})

	t.Run("empty subject is absent", func(t *testing.T) {
		in := validInput()
		in.Subject = ""

		sub, err := contact.NewSubmission(in, locale.English)
		require.NoError(t, err)
		assert.Nil(t, sub.Subject())
		assert.Equal(t, "", sub.SubjectString())
	})

	t.Run("rejected input", func(t *testing.T) {
		sub, err := contact.NewSubmission(contact.Input{Name: "Jo", Email: "a@b.com", Message: "short"}, locale.English)
		require.Nil(t, sub)

		var verrs validation.Errors
		require.ErrorAs(t, err, &verrs)
		reason, ok := verrs.Reason("message")
		require.True(t, ok)
		assert.Equal(t, validation.ReasonTooShort, reason)
	})
}
