package model

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/goliatone/go-polaris/pkg/wire"
)

// Model is the contract shared by every generated model.
type Model interface {
	Wirer
	SchemaName() string
	Validate() error
}

// DecodeFunc decodes a wire value into a model.
type DecodeFunc func(v wire.Value, opts ...DecodeOption) (Model, error)

// SchemaResolver looks schemas up by name.
type SchemaResolver interface {
	Schema(name string) (Schema, bool)
}

// Registry indexes schemas and their decoders by model name.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]registryEntry
}

type registryEntry struct {
	schema Schema
	decode DecodeFunc
}

// Ensure the registry can resolve nested schemas for documents.
var _ SchemaResolver = (*Registry)(nil)

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]registryEntry)}
}

// Register adds a schema. decode may be nil, in which case Decode falls back
// to a schema-driven Document.
func (r *Registry) Register(schema Schema, decode DecodeFunc) error {
	if r == nil {
		return errors.New("model registry: registry is nil")
	}
	if err := schema.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[string]registryEntry)
	}
	if _, exists := r.entries[schema.Name]; exists {
		return fmt.Errorf("model registry: schema %q already registered", schema.Name)
	}
	r.entries[schema.Name] = registryEntry{schema: schema.Clone(), decode: decode}
	return nil
}

// MustRegister panics when Register fails. Used from generated init code.
func (r *Registry) MustRegister(schema Schema, decode DecodeFunc) {
	if err := r.Register(schema, decode); err != nil {
		panic(err)
	}
}

// Schema returns the schema registered under name.
func (r *Registry) Schema(name string) (Schema, bool) {
	if r == nil {
		return Schema{}, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[name]
	if !ok {
		return Schema{}, false
	}
	return entry.schema.Clone(), true
}

// Lookup returns the schema and decoder registered under name.
func (r *Registry) Lookup(name string) (Schema, DecodeFunc, bool) {
	if r == nil {
		return Schema{}, nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[name]
	if !ok {
		return Schema{}, nil, false
	}
	return entry.schema.Clone(), entry.decode, true
}

// Names lists registered schema names in lexical order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Schemas returns every registered schema ordered by name.
func (r *Registry) Schemas() []Schema {
	names := r.Names()
	out := make([]Schema, 0, len(names))
	for _, name := range names {
		schema, _ := r.Schema(name)
		out = append(out, schema)
	}
	return out
}

// Decode decodes v as the named model.
func (r *Registry) Decode(name string, v wire.Value, opts ...DecodeOption) (Model, error) {
	if r == nil {
		return nil, errors.New("model registry: registry is nil")
	}
	r.mu.RLock()
	entry, ok := r.entries[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("model registry: unknown schema %q", name)
	}
	if entry.decode == nil {
		doc, err := NewDocument(entry.schema, v, append([]DecodeOption{WithResolver(r)}, opts...)...)
		if err != nil {
			return nil, err
		}
		return doc, nil
	}
	return entry.decode(v, opts...)
}
