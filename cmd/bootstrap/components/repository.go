package components

import (
	"sendero-web/internal/handler/api"
	"sendero-web/internal/infra/db"
	repo_impl "sendero-web/internal/infra/repository"
	"sendero-web/internal/usecase/commands"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			NewQueries,
			fx.As(new(repo_impl.WaitlistWriteQueries)),
			fx.As(new(repo_impl.ContactWriteQueries)),
			fx.As(new(repo_impl.FeedbackWriteQueries)),
			fx.As(new(repo_impl.PingQueries)),
		),
		fx.Annotate(
			repo_impl.NewWaitlistRepository,
			fx.As(new(commands.WaitlistRepository)),
		),
		fx.Annotate(
			repo_impl.NewContactRepository,
			fx.As(new(commands.ContactRepository)),
		),
		fx.Annotate(
			repo_impl.NewFeedbackRepository,
			fx.As(new(commands.FeedbackRepository)),
		),
		fx.Annotate(
			repo_impl.NewHealthRepository,
			fx.As(new(api.HealthChecker)),
		),
	),
)

func NewQueries(_ *pgxpool.Pool) *db.Queries {
	return db.NewQueries()
}

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
