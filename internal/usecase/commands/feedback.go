package commands

import (
	"context"
	"log/slog"

	"sendero-web/internal/domain/feedback"
	"sendero-web/internal/domain/locale"
	"sendero-web/internal/pkg/metrics"
)

type FeedbackCommands interface {
	Submit(ctx context.Context, in feedback.Input, fallback locale.Locale, userAgent string) error
}

type feedbackUseCaseImpl struct {
	repo    FeedbackRepository
	metrics metrics.Recorder
	logger  *slog.Logger
}

func NewFeedbackUseCase(repo FeedbackRepository, rec metrics.Recorder, logger *slog.Logger) FeedbackCommands {
	return &feedbackUseCaseImpl{repo: repo, metrics: rec, logger: logger}
}

func (uc *feedbackUseCaseImpl) Submit(ctx context.Context, in feedback.Input, fallback locale.Locale, userAgent string) error {
	entry, err := feedback.NewEntry(in, fallback, userAgent)
	if err != nil {
		uc.metrics.RecordSubmission(FormFeedback, metrics.OutcomeInvalid)
		return err
	}

	if err := uc.repo.Insert(ctx, entry); err != nil {
		outcome, cerr := classifyStoreErr(err, "feedback entry")
		uc.metrics.RecordSubmission(FormFeedback, outcome)
		return cerr
	}

	uc.metrics.RecordSubmission(FormFeedback, metrics.OutcomeAccepted)
	uc.logger.InfoContext(ctx, "feedback stored", "kind", string(entry.Kind()))
	return nil
}
