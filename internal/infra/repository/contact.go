package repository

import (
	"context"

	"sendero-web/internal/domain/contact"
	"sendero-web/internal/infra"
	"sendero-web/internal/infra/db"
	"sendero-web/internal/infra/repository/converter"
)

type ContactWriteQueries interface {
	InsertContactSubmission(ctx context.Context, dbtx db.DBTX, arg db.InsertContactSubmissionParams) error
}

type ContactRepository struct {
	queries ContactWriteQueries
	db      db.DBTX
}

func NewContactRepository(queries ContactWriteQueries, dbtx db.DBTX) *ContactRepository {
	return &ContactRepository{
		queries: queries,
		db:      dbtx,
	}
}

func (r *ContactRepository) Insert(ctx context.Context, sub *contact.Submission) error {
	if err := r.queries.InsertContactSubmission(ctx, r.db, converter.SubmissionToInsertParams(sub)); err != nil {
		return infra.WrapRepoErr("failed to insert contact submission", err)
	}
	return nil
}
