package commands

import (
	"context"
	"log/slog"
	"time"

	"sendero-web/internal/domain/contact"
	"sendero-web/internal/domain/locale"
	"sendero-web/internal/pkg/clock"
	"sendero-web/internal/pkg/metrics"
)

type ContactCommands interface {
	// Submit stores the message and then notifies the team. A failed
	// notification is logged and never returned.
	Submit(ctx context.Context, in contact.Input, loc locale.Locale) error
}

type ContactNotifyConfig struct {
	To       []string
	Location *time.Location
}

type contactUseCaseImpl struct {
	repo    ContactRepository
	mailer  Mailer
	notify  ContactNotifyConfig
	clock   clock.Clock
	metrics metrics.Recorder
	logger  *slog.Logger
}

func NewContactUseCase(
	repo ContactRepository,
	mailer Mailer,
	notify ContactNotifyConfig,
	clk clock.Clock,
	rec metrics.Recorder,
	logger *slog.Logger,
) ContactCommands {
	if notify.Location == nil {
		notify.Location = time.UTC
	}
	return &contactUseCaseImpl{
		repo:    repo,
		mailer:  mailer,
		notify:  notify,
		clock:   clk,
		metrics: rec,
		logger:  logger,
	}
}

func (uc *contactUseCaseImpl) Submit(ctx context.Context, in contact.Input, loc locale.Locale) error {
	sub, err := contact.NewSubmission(in, loc)
	if err != nil {
		uc.metrics.RecordSubmission(FormContact, metrics.OutcomeInvalid)
		return err
	}

	if err := uc.repo.Insert(ctx, sub); err != nil {
		outcome, cerr := classifyStoreErr(err, "contact submission")
		uc.metrics.RecordSubmission(FormContact, outcome)
		return cerr
	}
	uc.metrics.RecordSubmission(FormContact, metrics.OutcomeAccepted)

	uc.sendNotification(ctx, sub)
	return nil
}

func (uc *contactUseCaseImpl) sendNotification(ctx context.Context, sub *contact.Submission) {
	if len(uc.notify.To) == 0 {
		uc.logger.WarnContext(ctx, "contact notification skipped: no recipient configured")
		return
	}

	n := contact.ComposeNotification(sub, uc.clock.Now().In(uc.notify.Location))
	err := uc.mailer.Send(ctx, MailMessage{
		To:      uc.notify.To,
		Subject: n.Subject,
		Text:    n.Body,
		ReplyTo: n.ReplyTo,
	})
	if err != nil {
		uc.metrics.RecordNotificationFailure(FormContact)
		uc.logger.ErrorContext(ctx, "contact notification failed", "error", err.Error(), "subject", n.Subject)
	}
}
