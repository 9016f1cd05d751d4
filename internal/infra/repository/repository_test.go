//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"sendero-web/internal/infra"
	"sendero-web/internal/infra/db"
	"sendero-web/internal/infra/repository"
	"sendero-web/tests/common/builder"
	repositorymock "sendero-web/tests/mock/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type mockDBTX struct{}

func (m *mockDBTX) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) QueryRow(context.Context, string, ...any) pgx.Row {
	return nil
}

var dupErr = &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}

// =============================================================================
// Waitlist
// =============================================================================

func TestWaitlistRepository_Insert(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		mockErr    error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: signup inserted"},
		{name: "error: duplicate email", mockErr: dupErr, expectKind: infra.KindDuplicateKey},
		{name: "error: database failure", mockErr: errors.New("connection refused"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockWaitlistWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewWaitlistRepository(mockQueries, mockDB)

			signup, err := builder.NewWaitlistBuilder().
				With(func(b *builder.WaitlistBuilder) { b.Email = " A@B.com " }).
				WithInterestTypes("hike", "e_bike").
				BuildDomain()
			require.NoError(t, err)

			mockQueries.EXPECT().
				InsertWaitlistSignup(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ db.DBTX, arg db.InsertWaitlistSignupParams) error {
					assert.Equal(t, "a@b.com", arg.Email)
					assert.Equal(t, []string{"hike", "e_bike"}, arg.InterestTypes)
					assert.Equal(t, "en", arg.Locale)
					assert.Nil(t, arg.Notes)
					return tc.mockErr
				})

			actualErr := repo.Insert(ctx, signup)

			if tc.expectKind == "" {
				assert.NoError(t, actualErr)
				return
			}
			require.Error(t, actualErr)
			assert.True(t, infra.IsKind(actualErr, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, actualErr)
		})
	}
}

// =============================================================================
// Contact
// =============================================================================

func TestContactRepository_Insert(t *testing.T) {
	ctx := context.Background()

	t.Run("absent subject is stored as NULL", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockContactWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewContactRepository(mockQueries, mockDB)

		sub, err := builder.NewContactBuilder().With(func(b *builder.ContactBuilder) { b.Subject = "" }).BuildDomain()
		require.NoError(t, err)

		mockQueries.EXPECT().
			InsertContactSubmission(ctx, mockDB, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, arg db.InsertContactSubmissionParams) error {
				assert.Nil(t, arg.Subject)
				assert.Equal(t, "Jo", arg.Name)
				return nil
			})

		assert.NoError(t, repo.Insert(ctx, sub))
	})

	t.Run("the same submission twice is accepted twice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockContactWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewContactRepository(mockQueries, mockDB)

		sub, err := builder.NewContactBuilder().BuildDomain()
		require.NoError(t, err)

		mockQueries.EXPECT().
			InsertContactSubmission(ctx, mockDB, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, arg db.InsertContactSubmissionParams) error {
				require.NotNil(t, arg.Subject)
				assert.Equal(t, "tour", *arg.Subject)
				return nil
			}).
			Times(2)

		assert.NoError(t, repo.Insert(ctx, sub))
		assert.NoError(t, repo.Insert(ctx, sub))
	})

	t.Run("database failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockContactWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewContactRepository(mockQueries, mockDB)

		sub, err := builder.NewContactBuilder().BuildDomain()
		require.NoError(t, err)

		mockQueries.EXPECT().InsertContactSubmission(ctx, mockDB, gomock.Any()).Return(errors.New("timeout"))

		err = repo.Insert(ctx, sub)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

// =============================================================================
// Feedback
// =============================================================================

func TestFeedbackRepository_Insert(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockFeedbackWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewFeedbackRepository(mockQueries, mockDB)

	entry, err := builder.NewFeedbackBuilder().BuildDomain()
	require.NoError(t, err)

	mockQueries.EXPECT().
		InsertFeedbackEntry(ctx, mockDB, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ db.DBTX, arg db.InsertFeedbackEntryParams) error {
			assert.Equal(t, "idea", arg.Kind)
			require.NotNil(t, arg.Page)
			assert.Equal(t, "/tours", *arg.Page)
			assert.Nil(t, arg.Email)
			require.NotNil(t, arg.UserAgent)
			return nil
		})

	assert.NoError(t, repo.Insert(ctx, entry))
}
