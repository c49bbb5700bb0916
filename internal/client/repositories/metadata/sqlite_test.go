package metadata

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:metadata_tests?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS metadata (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
DELETE FROM metadata;
`)
	require.NoError(t, err)
	return db
}

func TestSQLiteRepository_SetGetDelete(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "token", []byte("abc")))

	got, err := repo.Get(ctx, "token")
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), got)

	// upsert overwrites
	require.NoError(t, repo.Set(ctx, "token", []byte("def")))
	got, err = repo.Get(ctx, "token")
	require.NoError(t, err)
	require.Equal(t, []byte("def"), got)

	require.NoError(t, repo.Delete(ctx, "token"))
	got, err = repo.Get(ctx, "token")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestSQLiteRepository_GetAbsentKey(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLiteRepository(db)

	got, err := repo.Get(context.Background(), "missing")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestSQLiteRepository_ListAndClear(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "user", []byte(`{"id":7}`)))
	require.NoError(t, repo.Set(ctx, "userId", []byte("7")))
	require.NoError(t, repo.Set(ctx, "token", []byte("abc")))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, []byte("7"), all["userId"])

	require.NoError(t, repo.Clear(ctx))
	all, err = repo.List(ctx)
	require.NoError(t, err)
	require.Empty(t, all)
}

func TestSQLiteRepository_QueryErrors(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewSQLiteRepository(db)
	ctx := context.Background()
	boom := errors.New("disk I/O error")

	mock.ExpectQuery(`SELECT value FROM metadata`).WillReturnError(boom)
	_, err = repo.Get(ctx, "token")
	require.ErrorIs(t, err, boom)

	mock.ExpectExec(`INSERT INTO metadata`).WillReturnError(boom)
	require.ErrorIs(t, repo.Set(ctx, "token", []byte("x")), boom)

	mock.ExpectExec(`DELETE FROM metadata WHERE key`).WillReturnError(boom)
	require.ErrorIs(t, repo.Delete(ctx, "token"), boom)

	mock.ExpectExec(`DELETE FROM metadata`).WillReturnError(boom)
	require.ErrorIs(t, repo.Clear(ctx), boom)

	require.NoError(t, mock.ExpectationsWereMet())
}
