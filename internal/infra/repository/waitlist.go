package repository

import (
	"context"

	"sendero-web/internal/domain/waitlist"
	"sendero-web/internal/infra"
	"sendero-web/internal/infra/db"
	"sendero-web/internal/infra/repository/converter"
)

type WaitlistWriteQueries interface {
	InsertWaitlistSignup(ctx context.Context, dbtx db.DBTX, arg db.InsertWaitlistSignupParams) error
}

type WaitlistRepository struct {
	queries WaitlistWriteQueries
	db      db.DBTX
}

func NewWaitlistRepository(queries WaitlistWriteQueries, dbtx db.DBTX) *WaitlistRepository {
	return &WaitlistRepository{
		queries: queries,
		db:      dbtx,
	}
}

// Insert returns a KindDuplicateKey error when the email is already on the
// list.
func (r *WaitlistRepository) Insert(ctx context.Context, signup *waitlist.Signup) error {
	if err := r.queries.InsertWaitlistSignup(ctx, r.db, converter.SignupToInsertParams(signup)); err != nil {
		return infra.WrapRepoErr("failed to insert waitlist signup", err)
	}
	return nil
}
