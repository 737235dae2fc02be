package postgres

import (
	"context"
	"os"
	"testing"

	"launchdash/domain/launch"
	"launchdash/internal/errors"
	"launchdash/internal/migration"
	"launchdash/internal/testkit"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openTestDB connects to TEST_DATABASE_URL or skips.
func openTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	db, err := sqlx.Connect("postgres", url)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, migration.NewRunner().Run(context.Background(), db))
	return db
}

func TestLaunchRepository_ReplaceAndLoad(t *testing.T) {
	db := openTestDB(t)
	repo := NewLaunchRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.ReplaceAllFrom(ctx, "test", testkit.DemoRecords()))
	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 56, n)

	require.NoError(t, repo.ReplaceAll(ctx, testkit.ScenarioRecords()))
	records, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, testkit.ScenarioRecords(), records)
}

func TestLaunchRepository_RejectsInvalidBeforeWriting(t *testing.T) {
	// Validation runs before any database call, so a nil handle is never touched.
	repo := NewLaunchRepository(nil)
	err := repo.ReplaceAll(context.Background(), []launch.Record{{LaunchSite: "A", PayloadMassKg: -1}})
	require.Error(t, err)
	assert.Equal(t, errors.CodeDatasetInvalid, errors.GetCode(err))
	assert.Equal(t, "postgres:launch_records", repo.Describe())
}
