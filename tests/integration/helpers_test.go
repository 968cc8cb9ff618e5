// Shared helpers for larder integration tests.
package integration

import (
	"testing"

	"github.com/mesh-intelligence/larder/pkg/larder"
	"github.com/mesh-intelligence/larder/pkg/registry"
	"github.com/mesh-intelligence/larder/pkg/sqlite"
	"github.com/mesh-intelligence/larder/pkg/types"
)

// openStore opens a gateway on an isolated temp directory. The gateway is
// closed on test cleanup; tests that exercise Close call it themselves,
// which is safe because Close is idempotent.
func openStore(t *testing.T) (types.Gateway, string) {
	t.Helper()
	dir := t.TempDir()
	gw := sqlite.NewGateway()
	if err := gw.Open(types.Config{Backend: types.BackendSQLite, DataDir: dir}); err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { gw.Close() })
	return gw, dir
}

// reopenStore opens a fresh gateway on an existing data directory.
func reopenStore(t *testing.T, dir string) types.Gateway {
	t.Helper()
	gw := sqlite.NewGateway()
	if err := gw.Open(types.Config{Backend: types.BackendSQLite, DataDir: dir}); err != nil {
		t.Fatalf("reopen: %v", err)
	}
	t.Cleanup(func() { gw.Close() })
	return gw
}

// userRegistry declares the User model used across the CRUD tests.
func userRegistry() *registry.Registry {
	reg := registry.New()
	reg.Table("User", "users")
	reg.Column("User", "id", types.WithType(types.TypeInteger), types.PrimaryKey(true))
	reg.Column("User", "email", types.WithType(types.TypeText), types.NotNull(), types.Unique())
	reg.Column("User", "name", types.WithType(types.TypeText))
	reg.Column("User", "age", types.WithType(types.TypeInteger))
	return reg
}

// syncedUserModel builds and syncs a User model on the given gateway.
func syncedUserModel(t *testing.T, gw types.Executor) *larder.Model {
	t.Helper()
	m := larder.NewModel("User", userRegistry(), gw)
	if err := m.Sync(false); err != nil {
		t.Fatalf("Sync: %v", err)
	}
	return m
}
