package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/skooma"
	"github.com/aretw0/skooma/pkg/schemafile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunSchemaStoreContract runs a suite of tests verifying that a
// SchemaStore implementation adheres to the interface contract.
func RunSchemaStoreContract(t *testing.T, store SchemaStore) {
	ctx := context.Background()
	name := "contract-test-schema-" + time.Now().Format("20060102150405")

	def := &schemafile.Definition{
		Name: "users",
		Columns: map[string]schemafile.ColumnSpec{
			"age":  {Type: "int", Predicate: "non_negative"},
			"name": {Type: "string"},
		},
	}

	t.Run("Save and Load", func(t *testing.T) {
		err := store.Save(ctx, name, def)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, name)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, def.Name, loaded.Name)
		assert.Equal(t, "non_negative", loaded.Columns["age"].Predicate)

		// A loaded definition must compile into a working schema.
		_, err = loaded.Compile()
		require.NoError(t, err, "loaded definition should compile")
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+name)
		assert.ErrorIs(t, err, skooma.ErrSchemaNotFound)
	})

	t.Run("Overwrite", func(t *testing.T) {
		changed := &schemafile.Definition{
			Columns: map[string]schemafile.ColumnSpec{"age": {Type: "float"}},
		}
		require.NoError(t, store.Save(ctx, name, changed))

		loaded, err := store.Load(ctx, name)
		require.NoError(t, err)
		assert.Equal(t, "float", loaded.Columns["age"].Type)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, name, def))
		require.NoError(t, store.Delete(ctx, name))

		_, err := store.Load(ctx, name)
		assert.ErrorIs(t, err, skooma.ErrSchemaNotFound, "Load after Delete should return ErrSchemaNotFound")
	})

	t.Run("List", func(t *testing.T) {
		id1 := name + "-1"
		id2 := name + "-2"
		_ = store.Save(ctx, id1, def)
		_ = store.Save(ctx, id2, def)

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		names, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, names, id1)
		assert.Contains(t, names, id2)
	})
}
