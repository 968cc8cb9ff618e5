// Tests for schema registration: upsert semantics, option merging, and
// fallback table names.
package registry

import (
	"testing"

	"github.com/mesh-intelligence/larder/pkg/types"
)

func TestTable(t *testing.T) {
	r := New()

	r.Table("User", "users")
	s, ok := r.Lookup("User")
	if !ok {
		t.Fatal("schema not found after Table")
	}
	if s.TableName != "users" {
		t.Errorf("TableName = %q, want users", s.TableName)
	}
	if len(s.Columns) != 0 {
		t.Errorf("new schema should have no columns, got %d", len(s.Columns))
	}

	// Renaming preserves existing columns.
	r.Column("User", "id", types.WithType(types.TypeInteger))
	r.Table("User", "app_users")
	s, _ = r.Lookup("User")
	if s.TableName != "app_users" {
		t.Errorf("TableName = %q, want app_users", s.TableName)
	}
	if len(s.Columns) != 1 {
		t.Errorf("rename dropped columns: got %d, want 1", len(s.Columns))
	}
}

func TestColumn_FallbackTableName(t *testing.T) {
	r := New()
	r.Column("Invoice", "id", types.WithType(types.TypeInteger))

	s, ok := r.Lookup("Invoice")
	if !ok {
		t.Fatal("schema not found after Column")
	}
	if s.TableName != "invoice" {
		t.Errorf("TableName = %q, want invoice", s.TableName)
	}
	if r.TableName("Invoice") != "invoice" {
		t.Errorf("TableName() = %q, want invoice", r.TableName("Invoice"))
	}
}

func TestTableName_UnregisteredModel(t *testing.T) {
	r := New()
	if got := r.TableName("Widget"); got != "widget" {
		t.Errorf("TableName = %q, want widget", got)
	}
}

func TestColumn_MergePreservesPriorOptions(t *testing.T) {
	r := New()

	r.Column("User", "email", types.WithType(types.TypeText))
	r.Column("User", "email", types.NotNull())

	s, _ := r.Lookup("User")
	col, ok := s.Column("email")
	if !ok {
		t.Fatal("email column not found")
	}
	if col.Type != types.TypeText {
		t.Errorf("Type = %q, later registration erased it", col.Type)
	}
	if col.Nullable == nil || *col.Nullable {
		t.Error("NotNull not applied")
	}
	if col.Name != "email" {
		t.Errorf("Name = %q, want email", col.Name)
	}
}

func TestColumn_LaterOptionOverwrites(t *testing.T) {
	r := New()

	r.Column("User", "age", types.WithType(types.TypeText))
	r.Column("User", "age", types.WithType(types.TypeInteger), types.Default(0))

	s, _ := r.Lookup("User")
	col, _ := s.Column("age")
	if col.Type != types.TypeInteger {
		t.Errorf("Type = %q, want INTEGER", col.Type)
	}
	if !col.HasDefault || col.Default != 0 {
		t.Errorf("Default = %v (has=%v), want 0", col.Default, col.HasDefault)
	}
}

func TestColumn_OrderIsRegistrationOrder(t *testing.T) {
	r := New()
	r.Column("User", "id", types.WithType(types.TypeInteger), types.PrimaryKey(true))
	r.Column("User", "email", types.WithType(types.TypeText))
	r.Column("User", "name", types.WithType(types.TypeText))
	// Re-registering an existing property keeps its original position.
	r.Column("User", "email", types.Unique())

	s, _ := r.Lookup("User")
	want := []string{"id", "email", "name"}
	if len(s.Columns) != len(want) {
		t.Fatalf("got %d columns, want %d", len(s.Columns), len(want))
	}
	for i, prop := range want {
		if s.Columns[i].Property != prop {
			t.Errorf("column %d = %q, want %q", i, s.Columns[i].Property, prop)
		}
	}
}

func TestPrimaryKey(t *testing.T) {
	r := New()
	r.Column("User", "id", types.WithType(types.TypeInteger), types.PrimaryKey(true))

	s, _ := r.Lookup("User")
	pk, ok := s.PrimaryKey()
	if !ok {
		t.Fatal("primary key not found")
	}
	if pk.Name != "id" || !pk.AutoIncrement {
		t.Errorf("pk = %+v", pk)
	}
}

func TestLookup_Absent(t *testing.T) {
	r := New()
	if _, ok := r.Lookup("Nothing"); ok {
		t.Error("Lookup of unregistered model must report absent")
	}
}

func TestLookup_ReturnsCopy(t *testing.T) {
	r := New()
	r.Column("User", "id", types.WithType(types.TypeInteger))

	s, _ := r.Lookup("User")
	s.Columns[0].Name = "mutated"

	s2, _ := r.Lookup("User")
	if s2.Columns[0].Name != "id" {
		t.Error("Lookup must return a copy, registry was mutated")
	}
}

func TestLookup_CopyDoesNotShareNullable(t *testing.T) {
	r := New()
	r.Column("User", "email", types.WithType(types.TypeText), types.NotNull())

	s, _ := r.Lookup("User")
	col, _ := s.Column("email")
	*col.Nullable = true

	s2, _ := r.Lookup("User")
	col2, _ := s2.Column("email")
	if col2.Nullable == nil || *col2.Nullable {
		t.Error("writing through a looked-up Nullable pointer mutated the registry")
	}
}

func TestReset(t *testing.T) {
	r := New()
	r.Table("User", "users")
	r.Reset()
	if _, ok := r.Lookup("User"); ok {
		t.Error("schema survived Reset")
	}
	if len(r.Models()) != 0 {
		t.Error("Models not empty after Reset")
	}
}

func TestModels_Sorted(t *testing.T) {
	r := New()
	r.Table("Zebra", "zebras")
	r.Table("Ant", "ants")

	got := r.Models()
	if len(got) != 2 || got[0] != "Ant" || got[1] != "Zebra" {
		t.Errorf("Models = %v, want [Ant Zebra]", got)
	}
}
