//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"sendero-web/internal/infra"
	"sendero-web/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind []infra.RepositoryErrorKind
		want infra.RepositoryErrorKind
	}{
		{"plain error", errors.New("connection reset"), nil, infra.KindDBFailure},
		{"unique violation", &pgconn.PgError{Code: "23505"}, nil, infra.KindDuplicateKey},
		{"wrapped unique violation", errs.Wrap(&pgconn.PgError{Code: "23505"}, "insert"), nil, infra.KindDuplicateKey},
		{"check violation", &pgconn.PgError{Code: "23514"}, nil, infra.KindConstraintViolated},
		{"other sqlstate", &pgconn.PgError{Code: "57014"}, nil, infra.KindDBFailure},
		{"explicit kind wins", &pgconn.PgError{Code: "23505"}, []infra.RepositoryErrorKind{infra.KindDBFailure}, infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := infra.WrapRepoErr("failed to insert", tt.err, tt.kind...)

			assert.True(t, infra.IsKind(err, tt.want), "got %v", err)
			assert.Contains(t, err.Error(), "failed to insert")
		})
	}

	t.Run("keeps the cause reachable", func(t *testing.T) {
		cause := &pgconn.PgError{Code: "23505"}
		err := infra.WrapRepoErr("failed to insert", cause)

		var pgErr *pgconn.PgError
		assert.True(t, errors.As(err, &pgErr))
	})

	t.Run("IsKind on foreign errors", func(t *testing.T) {
		assert.False(t, infra.IsKind(errors.New("x"), infra.KindDBFailure))
		assert.False(t, infra.IsKind(nil, infra.KindDBFailure))
	})
}
