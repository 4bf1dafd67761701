package chimera

import (
	"reflect"
	"sync"
)

// registryKey combines type, codec and engine for processor lookup.
type registryKey struct {
	typ         reflect.Type
	contentType string
	engine      *Engine
}

var (
	engines    = make(map[string]*Engine)
	processors = make(map[registryKey]any)
	registryMu sync.RWMutex
)

// Default returns the cached engine for DefaultSymbols.
func Default() *Engine {
	e, err := Use(DefaultSymbols)
	if err != nil {
		panic(err)
	}
	return e
}

// Use returns a cached engine for the given symbols or builds a new one.
// Engines are cached by normalized alphabet, so "abc" and "ABCabc" share one.
func Use(symbols string) (*Engine, error) {
	a, err := NewAlphabet(symbols)
	if err != nil {
		return nil, err
	}
	key := a.Symbols()

	// Fast path: read-lock cache check
	registryMu.RLock()
	if cached, ok := engines[key]; ok {
		registryMu.RUnlock()
		return cached, nil
	}
	registryMu.RUnlock()

	registryMu.Lock()
	defer registryMu.Unlock()

	if cached, ok := engines[key]; ok {
		return cached, nil
	}

	e, err := NewEngine(WithAlphabet(a))
	if err != nil {
		return nil, err
	}
	engines[key] = e
	return e, nil
}

// UseProcessor returns a cached processor or builds a new one.
// The processor is cached by type, codec content type and engine, so engines
// sharing an alphabet but carrying different transforms never share one.
// T must implement Cloner[T].
func UseProcessor[T Cloner[T]](codec Codec, engine *Engine) (*Processor[T], error) {
	key := registryKey{
		typ:         reflect.TypeFor[T](),
		contentType: codec.ContentType(),
		engine:      engine,
	}

	registryMu.RLock()
	if cached, ok := processors[key]; ok {
		registryMu.RUnlock()
		return cached.(*Processor[T]), nil
	}
	registryMu.RUnlock()

	registryMu.Lock()
	defer registryMu.Unlock()

	// Double-check pattern
	if cached, ok := processors[key]; ok {
		return cached.(*Processor[T]), nil
	}

	processor, err := NewProcessor[T](codec, engine)
	if err != nil {
		return nil, err
	}

	processors[key] = processor
	return processor, nil
}

// Reset clears the engine and processor caches.
// This is primarily useful for test isolation.
func Reset() {
	registryMu.Lock()
	defer registryMu.Unlock()
	engines = make(map[string]*Engine)
	processors = make(map[registryKey]any)
}
