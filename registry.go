package tagged

import (
	"reflect"
	"sync"
)

// registryKey combines tag, raw, and codec for cache lookup.
type registryKey struct {
	tag         reflect.Type
	raw         reflect.Type
	contentType string
}

var (
	registry   = make(map[registryKey]any)
	registryMu sync.RWMutex
)

// Use returns a cached transcoder or builds a new one. The transcoder is
// cached by tag type, raw type, and codec content type.
func Use[Tag any, Raw any](codec Codec) *Transcoder[Tag, Raw] {
	key := registryKey{
		tag:         reflect.TypeFor[Tag](),
		raw:         reflect.TypeFor[Raw](),
		contentType: codec.ContentType(),
	}

	// Fast path: read-lock cache check
	registryMu.RLock()
	if cached, ok := registry[key]; ok {
		registryMu.RUnlock()
		return cached.(*Transcoder[Tag, Raw])
	}
	registryMu.RUnlock()

	// Slow path: build and cache with write-lock
	registryMu.Lock()
	defer registryMu.Unlock()

	// Double-check pattern
	if cached, ok := registry[key]; ok {
		return cached.(*Transcoder[Tag, Raw])
	}

	transcoder := NewTranscoder[Tag, Raw](codec)
	registry[key] = transcoder
	return transcoder
}

// Reset clears the transcoder registry.
// This is primarily useful for test isolation.
func Reset() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[registryKey]any)
}
