//go:build unit

package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMigrationURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"postgres://u:p@localhost:5432/sendero?sslmode=disable", "pgx5://u:p@localhost:5432/sendero?sslmode=disable"},
		{"postgresql://u:p@db/sendero", "pgx5://u:p@db/sendero"},
		{"pgx5://u:p@db/sendero", "pgx5://u:p@db/sendero"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, MigrationURL(tt.in))
		})
	}
}

func TestMigrationsAreEmbedded(t *testing.T) {
	entries, err := migrationsFS.ReadDir("migrations")
	assert.NoError(t, err)
	assert.Len(t, entries, 6)
}
