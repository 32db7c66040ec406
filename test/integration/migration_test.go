//go:build integration
// +build integration

package integration

import (
	"context"
	"database/sql"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexlapax/xmerge/pkg/miller"
	"github.com/lexlapax/xmerge/pkg/store/adapters/postgres"
	"github.com/lexlapax/xmerge/test/testutil"
)

func tableExists(t *testing.T, db *sql.DB) bool {
	t.Helper()
	var exists bool
	err := db.QueryRow("SELECT EXISTS (SELECT FROM information_schema.tables WHERE table_name = 'reflection_tables')").Scan(&exists)
	require.NoError(t, err)
	return exists
}

// TestMigrations verifies that migrations can be applied and rolled back successfully.
func TestMigrations(t *testing.T) {
	skipUnlessIntegration(t)
	dbURL := testDBURL()

	db, err := sql.Open("postgres", dbURL)
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, db.Ping())

	require.NoError(t, postgres.MigrateUp(dbURL))
	assert.True(t, tableExists(t, db), "reflection_tables table was not created by migrations")

	// Applying again is a no-op
	require.NoError(t, postgres.MigrateUp(dbURL))

	require.NoError(t, postgres.MigrateDown(dbURL))
	assert.False(t, tableExists(t, db), "reflection_tables table was not dropped by down migration")
}

// TestPostgresStoreRoundTrip saves and loads a table through a migrated database.
func TestPostgresStoreRoundTrip(t *testing.T) {
	skipUnlessIntegration(t)
	dbURL := testDBURL()
	require.NoError(t, postgres.MigrateUp(dbURL))

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dbURL)
	require.NoError(t, err)
	defer pool.Close()

	s := postgres.NewPostgresStore(pool)
	table := testutil.NewReflectionTable(t, miller.Index{1, 2, 3}, miller.Index{0, 0, 1})
	require.NoError(t, s.Save(ctx, "integration-roundtrip", table))
	defer s.Delete(ctx, "integration-roundtrip")

	loaded, err := s.Load(ctx, "integration-roundtrip")
	require.NoError(t, err)
	assert.Equal(t, table.Keys(), loaded.Keys())
	assert.Equal(t, 2, loaded.Size())
}
