package memory

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/aretw0/skooma"
	"github.com/aretw0/skooma/pkg/schemafile"
)

func usersDef() *schemafile.Definition {
	return &schemafile.Definition{
		Name: "users",
		Columns: map[string]schemafile.ColumnSpec{
			"age": {Type: "int", Predicate: "non_negative"},
		},
	}
}

func TestStore_SaveLoad(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	if err := store.Save(ctx, "users", usersDef()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	def, err := store.Load(ctx, "users")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if def.Columns["age"].Predicate != "non_negative" {
		t.Errorf("Load() = %+v", def)
	}
}

func TestStore_LoadMissing(t *testing.T) {
	_, err := NewStore().Load(context.Background(), "nope")
	if !errors.Is(err, skooma.ErrSchemaNotFound) {
		t.Errorf("error = %v, want ErrSchemaNotFound", err)
	}
}

func TestStore_Isolation(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	def := usersDef()
	if err := store.Save(ctx, "users", def); err != nil {
		t.Fatal(err)
	}

	// Mutating the saved definition must not affect the stored copy.
	def.Columns["age"] = schemafile.ColumnSpec{Type: "string"}

	loaded, _ := store.Load(ctx, "users")
	if loaded.Columns["age"].Type != "int" {
		t.Error("store should hold a copy, not the caller's map")
	}

	// Mutating a loaded definition must not affect later loads.
	loaded.Columns["age"] = schemafile.ColumnSpec{Type: "bool"}
	again, _ := store.Load(ctx, "users")
	if again.Columns["age"].Type != "int" {
		t.Error("Load() should return a copy")
	}
}

func TestStore_ListAndDelete(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	store.Save(ctx, "b", usersDef())
	store.Save(ctx, "a", usersDef())

	names, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if !reflect.DeepEqual(names, []string{"a", "b"}) {
		t.Errorf("List() = %v", names)
	}

	if err := store.Delete(ctx, "a"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := store.Delete(ctx, "never-existed"); err != nil {
		t.Errorf("Delete() of unknown name error = %v", err)
	}

	names, _ = store.List(ctx)
	if !reflect.DeepEqual(names, []string{"b"}) {
		t.Errorf("List() after delete = %v", names)
	}
}
