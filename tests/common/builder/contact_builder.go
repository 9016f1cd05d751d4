//go:build unit || e2e

package builder

import (
	"sendero-web/internal/domain/contact"
	"sendero-web/internal/domain/locale"
	reqdto "sendero-web/internal/handler/dto/request"
)

type ContactBuilder struct {
	Name    string
	Email   string
	Subject string
	Message string
	Locale  locale.Locale
}

func NewContactBuilder() *ContactBuilder {
	return &ContactBuilder{
		Name:    "Jo",
		Email:   "a@b.com",
		Subject: "tour",
		Message: "Could we book a private coffee farm ride in May?",
		Locale:  locale.English,
	}
}

func (c *ContactBuilder) With(mutate func(*ContactBuilder)) *ContactBuilder {
	mutate(c)
	return c
}

func (c *ContactBuilder) BuildInput() contact.Input {
	return contact.Input{
		Name:    c.Name,
		Email:   c.Email,
		Subject: c.Subject,
		Message: c.Message,
	}
}

func (c *ContactBuilder) BuildDomain() (*contact.Submission, error) {
	return contact.NewSubmission(c.BuildInput(), c.Locale)
}

func (c *ContactBuilder) BuildRequestDTO() reqdto.ContactRequest {
	return reqdto.ContactRequest{
		Name:    c.Name,
		Email:   c.Email,
		Subject: c.Subject,
		Message: c.Message,
	}
}
