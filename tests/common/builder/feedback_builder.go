//go:build unit || e2e

package builder

import (
	"sendero-web/internal/domain/feedback"
	"sendero-web/internal/domain/locale"
	reqdto "sendero-web/internal/handler/dto/request"
)

type FeedbackBuilder struct {
	Kind      string
	Message   string
	Email     string
	Page      string
	Locale    string
	UserAgent string
}

func NewFeedbackBuilder() *FeedbackBuilder {
	return &FeedbackBuilder{
		Kind:      "idea",
		Message:   "Please add more e-bike departures",
		Page:      "/tours",
		UserAgent: "Mozilla/5.0 (test)",
	}
}

func (f *FeedbackBuilder) With(mutate func(*FeedbackBuilder)) *FeedbackBuilder {
	mutate(f)
	return f
}

func (f *FeedbackBuilder) BuildInput() feedback.Input {
	return feedback.Input{
		Kind:    f.Kind,
		Message: f.Message,
		Email:   f.Email,
		Page:    f.Page,
		Locale:  f.Locale,
	}
}

func (f *FeedbackBuilder) BuildDomain() (*feedback.Entry, error) {
	return feedback.NewEntry(f.BuildInput(), locale.Default, f.UserAgent)
}

func (f *FeedbackBuilder) BuildRequestDTO() reqdto.FeedbackRequest {
	return reqdto.FeedbackRequest{
		Kind:    f.Kind,
		Message: f.Message,
		Email:   f.Email,
		Page:    f.Page,
		Locale:  f.Locale,
	}
}
