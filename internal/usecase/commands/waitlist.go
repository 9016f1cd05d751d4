package commands

import (
	"context"
	"log/slog"

	"sendero-web/internal/domain/locale"
	"sendero-web/internal/domain/waitlist"
	"sendero-web/internal/pkg/metrics"
)

type WaitlistCommands interface {
	// Join returns validation.Errors for rejected input and an error marked
	// with errs.ErrDuplicateSubmission when the email is already listed.
	Join(ctx context.Context, in waitlist.Input, loc locale.Locale) error
}

type waitlistUseCaseImpl struct {
	repo    WaitlistRepository
	metrics metrics.Recorder
	logger  *slog.Logger
}

func NewWaitlistUseCase(repo WaitlistRepository, rec metrics.Recorder, logger *slog.Logger) WaitlistCommands {
	return &waitlistUseCaseImpl{repo: repo, metrics: rec, logger: logger}
}

func (uc *waitlistUseCaseImpl) Join(ctx context.Context, in waitlist.Input, loc locale.Locale) error {
	signup, err := waitlist.NewSignup(in, loc)
	if err != nil {
		uc.metrics.RecordSubmission(FormWaitlist, metrics.OutcomeInvalid)
		return err
	}

	if err := uc.repo.Insert(ctx, signup); err != nil {
		outcome, cerr := classifyStoreErr(err, "waitlist signup")
		uc.metrics.RecordSubmission(FormWaitlist, outcome)
		return cerr
	}

	uc.metrics.RecordSubmission(FormWaitlist, metrics.OutcomeAccepted)
	uc.logger.InfoContext(ctx, "waitlist signup stored", "locale", loc.String(), "tour_duration", string(signup.TourDuration()))
	return nil
}
