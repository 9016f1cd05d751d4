package repository

import (
	"context"

	"sendero-web/internal/domain/feedback"
	"sendero-web/internal/infra"
	"sendero-web/internal/infra/db"
	"sendero-web/internal/infra/repository/converter"
)

type FeedbackWriteQueries interface {
	InsertFeedbackEntry(ctx context.Context, dbtx db.DBTX, arg db.InsertFeedbackEntryParams) error
}

type FeedbackRepository struct {
	queries FeedbackWriteQueries
	db      db.DBTX
}

func NewFeedbackRepository(queries FeedbackWriteQueries, dbtx db.DBTX) *FeedbackRepository {
	return &FeedbackRepository{
		queries: queries,
		db:      dbtx,
	}
}

func (r *FeedbackRepository) Insert(ctx context.Context, entry *feedback.Entry) error {
	if err := r.queries.InsertFeedbackEntry(ctx, r.db, converter.EntryToInsertParams(entry)); err != nil {
		return infra.WrapRepoErr("failed to insert feedback entry", err)
	}
	return nil
}
