// Integration tests for record CRUD through the public API: registry
// declarations, schema sync, and accessor operations against a real
// database file.
package integration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/larder/pkg/larder"
	"github.com/mesh-intelligence/larder/pkg/registry"
	"github.com/mesh-intelligence/larder/pkg/types"
)

func TestCRUD_UniqueConstraintSurfacesEngineError(t *testing.T) {
	gw, _ := openStore(t)
	m := syncedUserModel(t, gw)

	_, err := m.Create(types.Values{types.Set("email", "a@b.com")})
	require.NoError(t, err)

	_, err = m.Create(types.Values{types.Set("email", "a@b.com")})
	assert.Error(t, err, "duplicate unique column should fail")
}

func TestCRUD_DeclaredDefaultApplies(t *testing.T) {
	reg := registry.New()
	reg.Table("Task", "tasks")
	reg.Column("Task", "id", types.WithType(types.TypeInteger), types.PrimaryKey(true))
	reg.Column("Task", "title", types.WithType(types.TypeText), types.NotNull())
	reg.Column("Task", "state", types.WithType(types.TypeText), types.Default("open"))

	gw, _ := openStore(t)
	m := larder.NewModel("Task", reg, gw)
	require.NoError(t, m.Sync(false))

	// The unassigned column takes the declared default.
	rec, err := m.Create(types.Values{types.Set("title", "first")})
	require.NoError(t, err)

	got, err := m.FindByPK(rec["id"])
	require.NoError(t, err)
	assert.Equal(t, "open", got["state"])

	// An explicit assignment overrides it.
	rec, err = m.Create(types.Values{
		types.Set("title", "second"),
		types.Set("state", "done"),
	})
	require.NoError(t, err)

	got, err = m.FindByPK(rec["id"])
	require.NoError(t, err)
	assert.Equal(t, "done", got["state"])
}

func TestCRUD_RenamedColumnPersistsUnderDeclaredName(t *testing.T) {
	reg := registry.New()
	reg.Table("User", "users")
	reg.Column("User", "id", types.WithType(types.TypeInteger), types.PrimaryKey(true))
	reg.Column("User", "email", types.WithType(types.TypeText), types.WithName("email_addr"))

	gw, _ := openStore(t)
	m := larder.NewModel("User", reg, gw)
	require.NoError(t, m.Sync(false))

	_, err := m.Create(types.Values{types.Set("email_addr", "a@b.com")})
	require.NoError(t, err)

	// The raw row carries the persisted name.
	result, err := gw.Execute("SELECT email_addr FROM users", nil)
	require.NoError(t, err)
	require.Len(t, result.Rows, 1)
	assert.Equal(t, "a@b.com", result.Rows[0]["email_addr"])
}

func TestCRUD_LikeFilter(t *testing.T) {
	gw, _ := openStore(t)
	m := syncedUserModel(t, gw)

	for _, email := range []string{"ada@example.com", "alan@example.com", "grace@other.org"} {
		_, err := m.Create(types.Values{types.Set("email", email)})
		require.NoError(t, err)
	}

	records, err := m.FindAll(&types.Query{
		Where: []types.Cond{types.Ops("email", types.Like("%@example.com"))},
		Order: []types.Order{types.OrderBy("email", types.Asc)},
	})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "ada@example.com", records[0]["email"])
	assert.Equal(t, "alan@example.com", records[1]["email"])
}

func TestCRUD_TwoModelsShareOneStore(t *testing.T) {
	reg := registry.New()
	reg.Table("Author", "authors")
	reg.Column("Author", "id", types.WithType(types.TypeInteger), types.PrimaryKey(true))
	reg.Column("Author", "name", types.WithType(types.TypeText), types.NotNull())
	reg.Table("Book", "books")
	reg.Column("Book", "id", types.WithType(types.TypeInteger), types.PrimaryKey(true))
	reg.Column("Book", "title", types.WithType(types.TypeText), types.NotNull())
	reg.Column("Book", "authorId", types.WithType(types.TypeInteger))

	gw, _ := openStore(t)
	authors := larder.NewModel("Author", reg, gw)
	books := larder.NewModel("Book", reg, gw)
	require.NoError(t, authors.Sync(false))
	require.NoError(t, books.Sync(false))

	author, err := authors.Create(types.Values{types.Set("name", "Ada")})
	require.NoError(t, err)

	for _, title := range []string{"Notes", "Sketches"} {
		_, err := books.Create(types.Values{
			types.Set("title", title),
			types.Set("authorId", author["id"]),
		})
		require.NoError(t, err)
	}

	count, err := books.Count(&types.Query{
		Where: []types.Cond{types.Eq("authorId", author["id"])},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// Dropping one model's table leaves the other intact.
	require.NoError(t, books.Drop())
	count, err = authors.Count(nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestCRUD_ForceSyncRecreatesOnlyNamedModel(t *testing.T) {
	gw, _ := openStore(t)
	m := syncedUserModel(t, gw)

	_, err := m.Create(types.Values{types.Set("email", "a@b.com")})
	require.NoError(t, err)

	require.NoError(t, m.Sync(true))

	count, err := m.Count(nil)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count, "force sync drops existing rows")
}
