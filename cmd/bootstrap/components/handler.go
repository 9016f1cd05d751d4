package components

import (
	"context"
	"log/slog"

	"sendero-web/internal/domain/locale"
	"sendero-web/internal/handler"
	"sendero-web/internal/handler/api"
	"sendero-web/internal/handler/middleware"
	"sendero-web/internal/pkg/config"
	"sendero-web/internal/pkg/metrics"
	"sendero-web/internal/pkg/session"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewDefaultLocale,
		api.NewAuthHandler,
		api.NewWaitlistHandler,
		api.NewContactHandler,
		api.NewFeedbackHandler,
		api.NewHealthHandler,
		NewSiteHandler,
		NewSessionGate,
		NewRateLimiter,
		NewHandlers,
		NewMiddlewares,
	),
	fx.Invoke(handler.NewRouter),
)

func NewDefaultLocale(cfg config.Config) locale.Locale {
	return locale.Resolve(cfg.Site.DefaultLocale, locale.Default)
}

func NewSiteHandler(cfg config.Config) *api.SiteHandler {
	return api.NewSiteHandler(cfg.Site.Dir)
}

func NewSessionGate(sessions *session.Manager, cfg config.Config, logger *slog.Logger) *middleware.SessionGate {
	return middleware.NewSessionGate(sessions, cfg.Auth, logger)
}

// The sweeper goroutine starts with the limiter and stops with the app.
func NewRateLimiter(lc fx.Lifecycle, cfg config.Config) *middleware.RateLimiter {
	rl := middleware.NewRateLimiter(cfg.RateLimit)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			rl.Stop()
			return nil
		},
	})
	return rl
}

type handlerDeps struct {
	fx.In

	Auth     *api.AuthHandler
	Waitlist *api.WaitlistHandler
	Contact  *api.ContactHandler
	Feedback *api.FeedbackHandler
	Health   *api.HealthHandler
	Site     *api.SiteHandler
}

func NewHandlers(d handlerDeps) handler.Handlers {
	return handler.Handlers{
		Auth:     d.Auth,
		Waitlist: d.Waitlist,
		Contact:  d.Contact,
		Feedback: d.Feedback,
		Health:   d.Health,
		Site:     d.Site,
	}
}

func NewMiddlewares(
	logger *middleware.Logger,
	gate *middleware.SessionGate,
	limiter *middleware.RateLimiter,
	rec metrics.Recorder,
	gatherer prometheus.Gatherer,
) handler.Middlewares {
	return handler.Middlewares{
		Logger:      logger,
		Gate:        gate,
		RateLimiter: limiter,
		Metrics:     rec,
		Gatherer:    gatherer,
	}
}
