// Package registry implements the process-wide metadata registry mapping
// model names to their schema descriptors. A Registry is constructed once
// at startup and injected into the record accessors; Reset exists for test
// isolation only.
package registry

import (
	"sort"
	"strings"
	"sync"

	"github.com/mesh-intelligence/larder/pkg/types"
)

// Registry maps model names to schema descriptors. The zero value is not
// usable; call New.
type Registry struct {
	mu      sync.RWMutex
	schemas map[string]*types.Schema
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{schemas: make(map[string]*types.Schema)}
}

// Table registers or updates the persisted table name for a model. When no
// schema exists yet one is created with no columns; otherwise the table
// name is updated in place and existing columns are preserved.
func (r *Registry) Table(model, tableName string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.schemas[model]
	if s == nil {
		s = &types.Schema{}
		r.schemas[model] = s
	}
	s.TableName = tableName
}

// Column registers or updates a column under the given property name.
// Options apply in order onto whatever was registered before, so a later
// partial declaration merges with an earlier one instead of replacing it.
// The first column registration for an unknown model creates its schema
// with the fallback table name (the model name lower-cased).
func (r *Registry) Column(model, property string, opts ...types.ColumnOption) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.schemas[model]
	if s == nil {
		s = &types.Schema{TableName: strings.ToLower(model)}
		r.schemas[model] = s
	}

	idx := -1
	for i, c := range s.Columns {
		if c.Property == property {
			idx = i
			break
		}
	}

	var col types.Column
	if idx >= 0 {
		col = s.Columns[idx]
	} else {
		col = types.Column{Property: property}
	}
	for _, opt := range opts {
		opt(&col)
	}
	if col.Name == "" {
		col.Name = property
	}

	if idx >= 0 {
		s.Columns[idx] = col
	} else {
		s.Columns = append(s.Columns, col)
	}
}

// Lookup returns a copy of the schema registered for the model. The second
// return is false when the model was never registered; absence is not an
// error here, callers decide whether it is fatal.
func (r *Registry) Lookup(model string) (types.Schema, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.schemas[model]
	if !ok {
		return types.Schema{}, false
	}
	out := types.Schema{TableName: s.TableName}
	out.Columns = make([]types.Column, len(s.Columns))
	for i, c := range s.Columns {
		if c.Nullable != nil {
			v := *c.Nullable
			c.Nullable = &v
		}
		out.Columns[i] = c
	}
	return out, true
}

// TableName resolves the persisted table name for a model, falling back to
// the model name lower-cased when nothing was registered.
func (r *Registry) TableName(model string) string {
	if s, ok := r.Lookup(model); ok && s.TableName != "" {
		return s.TableName
	}
	return strings.ToLower(model)
}

// Models returns the registered model names in sorted order.
func (r *Registry) Models() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.schemas))
	for name := range r.schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Reset clears all registered schemas. Test isolation only.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.schemas = make(map[string]*types.Schema)
}
