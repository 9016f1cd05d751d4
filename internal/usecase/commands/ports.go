package commands

import (
	"context"

	"sendero-web/internal/domain/contact"
	"sendero-web/internal/domain/feedback"
	"sendero-web/internal/domain/waitlist"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports.go -package=commandsmock

type WaitlistRepository interface {
	Insert(ctx context.Context, signup *waitlist.Signup) error
}

type ContactRepository interface {
	Insert(ctx context.Context, sub *contact.Submission) error
}

type FeedbackRepository interface {
	Insert(ctx context.Context, entry *feedback.Entry) error
}

type MailMessage struct {
	To      []string
	Subject string
	Text    string
	ReplyTo string
}

type Mailer interface {
	Send(ctx context.Context, msg MailMessage) error
}
