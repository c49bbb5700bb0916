package activities

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/akarpovs/sportactive/internal/client/models"
	"github.com/akarpovs/sportactive/internal/common"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:activity_cache_tests?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS activity_cache (
  id         INTEGER PRIMARY KEY,
  data       BLOB NOT NULL,
  fetched_at TIMESTAMP NOT NULL
);
DELETE FROM activity_cache;
`)
	require.NoError(t, err)
	return db
}

func sampleActivities() []models.Activity {
	start := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
	return []models.Activity{
		{ID: 1, Title: "Morning run", Category: "running", Status: models.ActivityStatusActive, StartTime: start, EndTime: start.Add(2 * time.Hour), MaxParticipants: 20},
		{ID: 2, Title: "5v5 football", Category: "football", Status: models.ActivityStatusActive, StartTime: start.Add(24 * time.Hour), EndTime: start.Add(26 * time.Hour), MaxParticipants: 10},
	}
}

func TestSQLiteRepository_ReplaceAllAndList(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.ReplaceAll(ctx, sampleActivities()))

	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "Morning run", got[0].Title)

	// a later fetch replaces the whole cache
	require.NoError(t, repo.ReplaceAll(ctx, sampleActivities()[:1]))
	got, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestSQLiteRepository_Get(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.ReplaceAll(ctx, sampleActivities()))

	a, err := repo.Get(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, "5v5 football", a.Title)

	_, err = repo.Get(ctx, 99)
	require.ErrorIs(t, err, common.ErrNotFound)
}
