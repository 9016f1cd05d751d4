package bootstrap

import (
	"log/slog"

	"sendero-web/internal/infra/mailer"
	"sendero-web/internal/pkg/config"
	"sendero-web/internal/usecase/commands"

	"go.uber.org/fx"
)

var MailerModule = fx.Module("mailer",
	fx.Provide(
		NewMailer,
	),
)

func NewMailer(cfg config.Config, logger *slog.Logger) commands.Mailer {
	if cfg.Mail.ResendAPIKey == "" {
		logger.Warn("RESEND_API_KEY is not set; contact notifications will only be logged")
		return mailer.NewLogMailer(logger)
	}
	return mailer.NewResendMailer(cfg.Mail.ResendAPIKey, cfg.Mail.From, logger)
}
