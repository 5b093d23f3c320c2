package walletwire

import (
	"reflect"
	"sync"
)

// processorKey combines record type and codec for cache lookup.
type processorKey struct {
	typ         reflect.Type
	contentType string
}

var (
	processors   = make(map[processorKey]any)
	processorsMu sync.RWMutex
)

// Use returns a cached processor or builds a new one.
// The processor is cached by record type and codec content type, so the
// first schema seen for a type wins.
func Use[T any](codec Codec, schema *Schema[T]) *Processor[T] {
	key := processorKey{typ: reflect.TypeFor[T](), contentType: codec.ContentType()}

	// Fast path: read-lock cache check
	processorsMu.RLock()
	if cached, ok := processors[key]; ok {
		processorsMu.RUnlock()
		return cached.(*Processor[T])
	}
	processorsMu.RUnlock()

	processorsMu.Lock()
	defer processorsMu.Unlock()

	// Double-check pattern
	if cached, ok := processors[key]; ok {
		return cached.(*Processor[T])
	}

	p := NewProcessor(codec, schema)
	processors[key] = p
	return p
}

// Reset clears the processor cache.
// This is primarily useful for test isolation.
func Reset() {
	processorsMu.Lock()
	defer processorsMu.Unlock()
	processors = make(map[processorKey]any)
}
