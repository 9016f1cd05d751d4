package usecase

import (
	"context"
	"log/slog"

	"sendero-web/internal/pkg/errs"
	"sendero-web/internal/pkg/metrics"
)

//go:generate mockgen -source=auth.go -destination=../../tests/mock/usecase/auth.go -package=usecasemock

type PasswordVerifier interface {
	Verify(input string) bool
}

type AuthUseCase interface {
	// Authenticate fails with errs.ErrInvalidPassword whether the password is
	// wrong or no site password is configured.
	Authenticate(ctx context.Context, password string) error
}

type authUseCaseImpl struct {
	verifier PasswordVerifier
	metrics  metrics.Recorder
	logger   *slog.Logger
}

func NewAuthUseCase(verifier PasswordVerifier, rec metrics.Recorder, logger *slog.Logger) AuthUseCase {
	return &authUseCaseImpl{
		verifier: verifier,
		metrics:  rec,
		logger:   logger,
	}
}

func (a *authUseCaseImpl) Authenticate(ctx context.Context, password string) error {
	if !a.verifier.Verify(password) {
		a.metrics.RecordLogin(metrics.LoginFailure)
		a.logger.WarnContext(ctx, "preview login rejected")
		return errs.ErrInvalidPassword
	}

	a.metrics.RecordLogin(metrics.LoginSuccess)
	return nil
}
