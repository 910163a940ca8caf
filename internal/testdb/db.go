//go:build integration

package testdb

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
	"github.com/phrazzld/forecast-api/internal/platform/postgres"
	"github.com/phrazzld/forecast-api/internal/redact"
	"github.com/stretchr/testify/require"
)

// Open connects to the test database, applies all migrations and closes
// the connection when t finishes.
func Open(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("pgx", DatabaseURL(t))
	require.NoError(t, err, "failed to open test database")
	t.Cleanup(func() { _ = db.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		t.Fatalf("test database unreachable: %s", redact.Error(err))
	}
	require.NoError(t, postgres.Migrate(ctx, db, postgres.MigrateUp, nil), "failed to migrate test database")

	return db
}

// Reset empties every application table. Tests that call it must not run
// in parallel with other database tests.
func Reset(t *testing.T, db *sql.DB) {
	t.Helper()

	_, err := db.ExecContext(context.Background(), "TRUNCATE users, forecasts RESTART IDENTITY")
	require.NoError(t, err, "failed to reset test database")
}

// WithTx runs fn inside a transaction that is always rolled back, so
// changes made through tx never persist.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err, "failed to begin test transaction")

	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			t.Logf("failed to roll back test transaction: %v", err)
		}
	}()

	fn(t, tx)
}
