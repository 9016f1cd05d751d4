package mailer

import (
	"context"
	"log/slog"

	"sendero-web/internal/pkg/errs"
	"sendero-web/internal/usecase/commands"

	"github.com/resendlabs/resend-go"
)

type ResendMailer struct {
	send   func(*resend.SendEmailRequest) error
	from   string
	logger *slog.Logger
}

func NewResendMailer(apiKey, from string, logger *slog.Logger) *ResendMailer {
	client := resend.NewClient(apiKey)
	return newResendMailer(func(req *resend.SendEmailRequest) error {
		_, err := client.Emails.Send(req)
		return err
	}, from, logger)
}

func newResendMailer(send func(*resend.SendEmailRequest) error, from string, logger *slog.Logger) *ResendMailer {
	return &ResendMailer{send: send, from: from, logger: logger}
}

// Send does not honor ctx cancellation: the resend client has no
// context-aware send.
func (m *ResendMailer) Send(ctx context.Context, msg commands.MailMessage) error {
	if err := ctx.Err(); err != nil {
		return errs.Wrap(err, "mail not sent")
	}

	req := &resend.SendEmailRequest{
		From:    m.from,
		To:      msg.To,
		Subject: msg.Subject,
		Text:    msg.Text,
		ReplyTo: msg.ReplyTo,
	}
	if err := m.send(req); err != nil {
		return errs.Mark(errs.Wrapf(err, "failed to send %q", msg.Subject), errs.ErrNotificationFailed)
	}

	m.logger.DebugContext(ctx, "mail sent", "subject", msg.Subject, "to", len(msg.To))
	return nil
}

// LogMailer stands in when no API key is configured.
type LogMailer struct {
	logger *slog.Logger
}

func NewLogMailer(logger *slog.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) Send(ctx context.Context, msg commands.MailMessage) error {
	m.logger.InfoContext(ctx, "mail delivery disabled, message dropped",
		"subject", msg.Subject,
		"reply_to", msg.ReplyTo,
		"bytes", len(msg.Text),
	)
	return nil
}
