//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by *pgxpool.Pool and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var formTables = []string{"waitlist_signups", "contact_submissions", "feedback_entries"}

func CountRows(t *testing.T, db DBLike, table string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM "+table).Scan(&n)
	require.NoError(t, err)
	return n
}

func CountWaitlistEmail(t *testing.T, db DBLike, email string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM waitlist_signups WHERE email = $1", email).Scan(&n)
	require.NoError(t, err)
	return n
}

// ContactSubject returns the stored subject of the newest submission from
// email; nil means the column is NULL.
func ContactSubject(t *testing.T, db DBLike, email string) *string {
	t.Helper()

	var subject *string
	err := db.QueryRow(context.Background(),
		"SELECT subject FROM contact_submissions WHERE email = $1 ORDER BY created_at DESC LIMIT 1", email).Scan(&subject)
	require.NoError(t, err)
	return subject
}

func TruncateForms(t *testing.T, db DBLike) {
	t.Helper()

	for _, table := range formTables {
		_, err := db.Exec(context.Background(), "TRUNCATE "+table)
		require.NoError(t, err)
	}
}
