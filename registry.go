package walletwire

import (
	"fmt"
	"reflect"
	"sort"
	"sync"
)

// registryEntry erases the value type of a registered TextCodec.
type registryEntry struct {
	typ       reflect.Type
	codec     any
	sensitive bool
	decode    func(string) (any, error)
	encode    func(any) (string, error)
}

// Registry holds text codecs by name so callers that only know a name at
// runtime (the CLI, a router) can validate bare text values.
//
// Registries are safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]registryEntry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]registryEntry)}
}

// Register adds codec under name. Names are unique within a registry.
func Register[T any](r *Registry, name string, codec TextCodec[T]) error {
	entry := registryEntry{
		typ:       reflect.TypeFor[T](),
		codec:     codec,
		sensitive: codec.Sensitive,
		decode: func(s string) (any, error) {
			v, err := codec.Decode(s)
			if err != nil {
				return nil, err
			}
			return v, nil
		},
		encode: func(v any) (string, error) {
			t, ok := v.(T)
			if !ok {
				return "", fmt.Errorf("%w: codec %q handles %v, got %T", ErrTypeMismatch, name, reflect.TypeFor[T](), v)
			}
			return codec.Encode(t), nil
		},
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateCodec, name)
	}
	r.entries[name] = entry
	log.Tracef("Registered text codec %q for %v", name, entry.typ)
	return nil
}

// Lookup returns the codec registered under name with its concrete type.
func Lookup[T any](r *Registry, name string) (TextCodec[T], error) {
	entry, err := r.entry(name)
	if err != nil {
		return TextCodec[T]{}, err
	}
	codec, ok := entry.codec.(TextCodec[T])
	if !ok {
		return TextCodec[T]{}, fmt.Errorf("%w: codec %q handles %v, not %v", ErrTypeMismatch, name, entry.typ, reflect.TypeFor[T]())
	}
	return codec, nil
}

func (r *Registry) entry(name string) (registryEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[name]
	if !ok {
		return registryEntry{}, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
	}
	return entry, nil
}

// Decode validates text with the codec registered under name.
func (r *Registry) Decode(name, text string) (any, error) {
	entry, err := r.entry(name)
	if err != nil {
		return nil, err
	}
	return entry.decode(text)
}

// Encode renders v with the codec registered under name.
func (r *Registry) Encode(name string, v any) (string, error) {
	entry, err := r.entry(name)
	if err != nil {
		return "", err
	}
	return entry.encode(v)
}

// Sensitive reports whether the codec under name handles secrets.
// Unknown names report false.
func (r *Registry) Sensitive(name string) bool {
	entry, err := r.entry(name)
	return err == nil && entry.sensitive
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
