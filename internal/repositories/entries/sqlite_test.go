package entries

import (
	"context"
	"database/sql"
	"testing"

	"github.com/dmitrijs2005/keeperdemo/internal/common"
	"github.com/dmitrijs2005/keeperdemo/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE entries (
  id             TEXT PRIMARY KEY,
  overview       BLOB NOT NULL,
  nonce_overview BLOB NOT NULL,
  details        BLOB NOT NULL,
  nonce_details  BLOB NOT NULL,
  updated_at     TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);`)
	require.NoError(t, err)
	return db
}

func entry(id string) *models.Entry {
	return &models.Entry{
		Id:            id,
		Overview:      []byte("ov-" + id),
		NonceOverview: []byte("no-" + id),
		Details:       []byte("de-" + id),
		NonceDetails:  []byte("nd-" + id),
	}
}

func TestCreateOrUpdate_InsertAndGetByID(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.CreateOrUpdate(ctx, entry("a")))

	got, err := r.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "a", got.Id)
	assert.Equal(t, []byte("ov-a"), got.Overview)
	assert.Equal(t, []byte("de-a"), got.Details)
	assert.Equal(t, []byte("nd-a"), got.NonceDetails)
	assert.False(t, got.UpdatedAt.IsZero())
}

func TestCreateOrUpdate_UpdatesExisting(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.CreateOrUpdate(ctx, entry("a")))
	upd := entry("a")
	upd.Details = []byte("changed")
	require.NoError(t, r.CreateOrUpdate(ctx, upd))

	got, err := r.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []byte("changed"), got.Details)

	n, err := r.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestGetAll_KeepsInsertionOrder(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.CreateOrUpdate(ctx, entry("c")))
	require.NoError(t, r.CreateOrUpdate(ctx, entry("a")))

	all, err := r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "c", all[0].Id)
	assert.Equal(t, "a", all[1].Id)
	assert.Equal(t, []byte("ov-c"), all[0].Overview)
	assert.Nil(t, all[0].Details, "GetAll must not load details")

	n, err := r.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestGetByID_NotFound(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	_, err := r.GetByID(context.Background(), "missing")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestCount_Empty(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	n, err := r.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}
