//go:build unit

package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"sendero-web/internal/pkg/errs"
	"sendero-web/internal/pkg/metrics"
	"sendero-web/internal/pkg/password"
	"sendero-web/internal/usecase"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type AuthUseCaseTestSuite struct {
	suite.Suite
	ctx context.Context
	log *slog.Logger
}

func (s *AuthUseCaseTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.log = slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (s *AuthUseCaseTestSuite) newUseCase(secret string) usecase.AuthUseCase {
	return usecase.NewAuthUseCase(password.NewVerifier(secret, s.log), metrics.NewCollector(prometheus.NewRegistry()), s.log)
}

func (s *AuthUseCaseTestSuite) TestCorrectPassword() {
	s.NoError(s.newUseCase("trail-preview").Authenticate(s.ctx, "trail-preview"))
}

func (s *AuthUseCaseTestSuite) TestWrongPasswords() {
	uc := s.newUseCase("trail-preview")

	for _, pw := range []string{"", "trail", "trail-preview!", "Trail-preview", "trail-preview\x00"} {
		err := uc.Authenticate(s.ctx, pw)
		s.Require().Error(err, "password %q", pw)
		s.True(errs.Is(err, errs.ErrInvalidPassword))
	}
}

func (s *AuthUseCaseTestSuite) TestUnconfiguredSecretLooksLikeWrongPassword() {
	err := s.newUseCase("").Authenticate(s.ctx, "")
	assert.ErrorIs(s.T(), err, errs.ErrInvalidPassword)
}

func TestAuthUseCaseTestSuite(t *testing.T) {
	suite.Run(t, new(AuthUseCaseTestSuite))
}
