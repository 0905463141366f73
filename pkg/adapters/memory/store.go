// Package memory provides an in-process ports.SchemaStore, used by the
// CLI and in tests where no Redis is configured.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/aretw0/skooma"
	"github.com/aretw0/skooma/pkg/schemafile"
)

// Store implements ports.SchemaStore in memory.
// Safe for concurrent use.
type Store struct {
	mu   sync.RWMutex
	data map[string]*schemafile.Definition
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]*schemafile.Definition),
	}
}

// Save persists the definition in memory.
func (s *Store) Save(ctx context.Context, name string, def *schemafile.Definition) error {
	// Copy so the caller can't mutate the stored definition afterwards.
	copied := copyDefinition(def)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[name] = copied
	return nil
}

// Load retrieves a definition by name.
func (s *Store) Load(ctx context.Context, name string) (*schemafile.Definition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	def, ok := s.data[name]
	if !ok {
		return nil, skooma.ErrSchemaNotFound
	}
	return copyDefinition(def), nil
}

// List returns the stored names, sorted.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.data))
	for name := range s.data {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Delete removes a definition.
func (s *Store) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, name)
	return nil
}

func copyDefinition(def *schemafile.Definition) *schemafile.Definition {
	copied := *def
	if def.Strict != nil {
		strict := *def.Strict
		copied.Strict = &strict
	}
	copied.Columns = make(map[string]schemafile.ColumnSpec, len(def.Columns))
	for column, spec := range def.Columns {
		copied.Columns[column] = spec
	}
	return &copied
}
