package components

import (
	"log/slog"
	"time"

	"sendero-web/internal/pkg/clock"
	"sendero-web/internal/pkg/config"
	"sendero-web/internal/pkg/password"
	"sendero-web/internal/usecase"
	"sendero-web/internal/usecase/commands"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseAuthModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewContactNotifyConfig,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewWaitlistUseCase,
		commands.NewContactUseCase,
		commands.NewFeedbackUseCase,
	),
)

var usecaseAuthModule = fx.Module("usecase/auth",
	fx.Provide(
		fx.Annotate(
			NewPasswordVerifier,
			fx.As(new(usecase.PasswordVerifier)),
		),
		usecase.NewAuthUseCase,
	),
)

func NewPasswordVerifier(cfg config.Config, logger *slog.Logger) *password.Verifier {
	v := password.NewVerifier(cfg.Auth.SitePassword, logger)
	if !v.Configured() && cfg.Auth.GateEnabled {
		logger.Warn("SITE_PASSWORD is not set; every preview login will be rejected")
	}
	return v
}

// An unknown MAIL_TIMEZONE falls back to UTC rather than failing startup.
func NewContactNotifyConfig(cfg config.Config, logger *slog.Logger) commands.ContactNotifyConfig {
	loc, err := time.LoadLocation(cfg.Mail.TimeZone)
	if err != nil {
		logger.Warn("unknown MAIL_TIMEZONE, using UTC", "timezone", cfg.Mail.TimeZone, "error", err.Error())
		loc = time.UTC
	}

	var to []string
	if cfg.Mail.ContactNotifyTo != "" {
		to = []string{cfg.Mail.ContactNotifyTo}
	}
	return commands.ContactNotifyConfig{To: to, Location: loc}
}
