package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"sendero-web/internal/infra/db"
	"sendero-web/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

const connectTimeout = 10 * time.Second

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

// NewDB applies pending migrations before opening the pool so that the
// first request never sees a missing table.
func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	if cfg.DB.MigrateOnStart {
		if err := db.RunMigrations(cfg.DB.URL); err != nil {
			return nil, err
		}
		logger.Info("database migrations applied")
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}
