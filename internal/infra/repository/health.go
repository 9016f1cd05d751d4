package repository

import (
	"context"

	"sendero-web/internal/infra"
	"sendero-web/internal/infra/db"
)

type PingQueries interface {
	Ping(ctx context.Context, dbtx db.DBTX) error
}

type HealthRepository struct {
	queries PingQueries
	db      db.DBTX
}

func NewHealthRepository(queries PingQueries, dbtx db.DBTX) *HealthRepository {
	return &HealthRepository{queries: queries, db: dbtx}
}

func (r *HealthRepository) Ping(ctx context.Context) error {
	if err := r.queries.Ping(ctx, r.db); err != nil {
		return infra.WrapRepoErr("database ping failed", err, infra.KindDBFailure)
	}
	return nil
}
