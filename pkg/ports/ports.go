/*
Package ports defines the driven ports (interfaces) for the skooma
adapters.

These interfaces decouple the validation service surfaces (HTTP, MCP,
CLI) from the backend holding schema definitions, allowing deployments
to keep schemas in process memory or in Redis without the surfaces
caring which.
*/
package ports

import (
	"context"

	"github.com/aretw0/skooma/pkg/schemafile"
)

// SchemaStore persists named schema definitions.
type SchemaStore interface {
	// Save persists a definition under a name, overwriting any previous
	// definition with that name.
	Save(ctx context.Context, name string, def *schemafile.Definition) error

	// Load retrieves a definition by name. Returns
	// skooma.ErrSchemaNotFound if the name is unknown.
	Load(ctx context.Context, name string) (*schemafile.Definition, error)

	// List returns the stored schema names.
	List(ctx context.Context) ([]string, error)

	// Delete removes a definition. Deleting an unknown name is not an
	// error.
	Delete(ctx context.Context, name string) error
}
