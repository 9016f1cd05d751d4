package bootstrap

import (
	"sendero-web/internal/pkg/config"
	"sendero-web/internal/pkg/session"

	"go.uber.org/fx"
)

var SessionModule = fx.Module("session",
	fx.Provide(
		NewSessionManager,
	),
)

// A missing or short SESSION_SECRET stops the app here, before the server
// starts listening.
func NewSessionManager(cfg config.Config) (*session.Manager, error) {
	return session.NewManager(cfg.Session.Secret, session.Options{
		CookieName: cfg.Session.CookieName,
		MaxAge:     cfg.Session.MaxAge,
		Secure:     cfg.Server.IsProduction(),
	})
}
