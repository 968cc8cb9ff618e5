// Integration tests for the store lifecycle: open, close, reopen, and
// transactions through the public gateway.
package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/larder/pkg/sqlite"
	"github.com/mesh-intelligence/larder/pkg/types"
)

func TestLifecycle_OpenCreatesDatabaseFile(t *testing.T) {
	gw, dir := openStore(t)

	// The file appears once the connection is exercised.
	_, err := gw.Execute("SELECT 1 AS probe", nil)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "larder.db"))
	assert.NoError(t, err, "larder.db should exist after first use")
}

func TestLifecycle_OpenIsIdempotent(t *testing.T) {
	gw, dir := openStore(t)

	err := gw.Open(types.Config{Backend: types.BackendSQLite, DataDir: dir})
	assert.NoError(t, err, "second Open on the same gateway is a no-op")
}

func TestLifecycle_CloseIsIdempotent(t *testing.T) {
	gw, _ := openStore(t)

	require.NoError(t, gw.Close())
	require.NoError(t, gw.Close())

	_, err := gw.Execute("SELECT 1 AS probe", nil)
	assert.ErrorIs(t, err, types.ErrNotInitialized)
}

func TestLifecycle_OpenRejectsInvalidConfig(t *testing.T) {
	gw := sqlite.NewGateway()

	err := gw.Open(types.Config{Backend: "", DataDir: t.TempDir()})
	assert.ErrorIs(t, err, types.ErrBackendEmpty)

	err = gw.Open(types.Config{Backend: "postgres", DataDir: t.TempDir()})
	assert.ErrorIs(t, err, types.ErrBackendUnknown)
}

func TestLifecycle_DataSurvivesReopen(t *testing.T) {
	gw, dir := openStore(t)
	m := syncedUserModel(t, gw)

	_, err := m.Create(types.Values{
		types.Set("email", "a@b.com"),
		types.Set("name", "Ada"),
	})
	require.NoError(t, err)
	require.NoError(t, gw.Close())

	gw2 := reopenStore(t, dir)
	m2 := syncedUserModel(t, gw2)

	records, err := m2.FindAll(nil)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "a@b.com", records[0]["email"])
	assert.Equal(t, "Ada", records[0]["name"])
}

func TestLifecycle_TransactionCommits(t *testing.T) {
	gw, _ := openStore(t)
	m := syncedUserModel(t, gw)

	err := gw.Transaction(func(tx types.Executor) error {
		for _, email := range []string{"a@b.com", "b@b.com"} {
			if _, err := tx.Execute(
				"INSERT INTO users (email) VALUES (?)", []any{email}); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)

	count, err := m.Count(nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestLifecycle_TransactionRollsBackOnError(t *testing.T) {
	gw, _ := openStore(t)
	m := syncedUserModel(t, gw)

	err := gw.Transaction(func(tx types.Executor) error {
		if _, err := tx.Execute(
			"INSERT INTO users (email) VALUES (?)", []any{"a@b.com"}); err != nil {
			return err
		}
		// Violates the NOT NULL constraint, failing the transaction.
		_, err := tx.Execute("INSERT INTO users (email) VALUES (?)", []any{nil})
		return err
	})
	require.Error(t, err)

	count, err := m.Count(nil)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count, "failed transaction should leave no rows")
}

func TestLifecycle_AccessorInsideTransaction(t *testing.T) {
	gw, _ := openStore(t)
	m := syncedUserModel(t, gw)

	err := gw.Transaction(func(tx types.Executor) error {
		txModel := syncedUserModel(t, tx)
		if _, err := txModel.Create(types.Values{types.Set("email", "a@b.com")}); err != nil {
			return err
		}
		_, err := txModel.Create(types.Values{types.Set("email", "b@b.com")})
		return err
	})
	require.NoError(t, err)

	count, err := m.Count(nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
