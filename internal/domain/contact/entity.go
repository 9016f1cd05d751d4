package contact

import (
	"strings"

	"sendero-web/internal/domain/locale"
	"sendero-web/internal/domain/waitlist"
	"sendero-web/internal/pkg/validation"
)

type Input struct {
	Name    string `json:"name" validate:"required,min=2"`
	Email   string `json:"email" validate:"required,email_shape"`
	Subject string `json:"subject" validate:"omitempty,oneof=general tour custom feedback"`
	Message string `json:"message" validate:"required,min=10,max=5000"`
}

// Validate checks lengths on the trimmed values, so "  a " is too short.
func Validate(in Input) validation.Errors {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Subject = strings.TrimSpace(in.Subject)
	in.Message = strings.TrimSpace(in.Message)
	return validation.Struct(in)
}

// Submission is never deduplicated: the same person may write twice.
type Submission struct {
	name    string
	email   string
	subject *Subject
	message string
	locale  locale.Locale
}

func NewSubmission(in Input, loc locale.Locale) (*Submission, error) {
	if errs := Validate(in); len(errs) > 0 {
		return nil, errs
	}

	var subject *Subject
	if s := strings.TrimSpace(in.Subject); s != "" {
		v := Subject(s)
		subject = &v
	}

	return &Submission{
		name:    strings.TrimSpace(in.Name),
		email:   waitlist.NormalizeEmail(in.Email),
		subject: subject,
		message: strings.TrimSpace(in.Message),
		locale:  loc,
	}, nil
}

func (s *Submission) Name() string          { return s.name }
func (s *Submission) Email() string         { return s.email }
func (s *Submission) Subject() *Subject     { return s.subject }
func (s *Submission) Message() string       { return s.message }
func (s *Submission) Locale() locale.Locale { return s.locale }

// SubjectString returns "" when no subject was chosen.
func (s *Submission) SubjectString() string {
	if s.subject == nil {
		return ""
	}
	return string(*s.subject)
}
