package record

import (
	"fmt"
	"sort"
	"sync"
)

// PainterFactory is a function that creates a new painter instance.
// Factories are registered via Register() and called by NewPainter().
type PainterFactory func() Painter

// Registry state - protected by mutex for thread-safe access.
var (
	registryMu sync.RWMutex
	painters   = make(map[string]PainterFactory)
)

// Register registers a painter factory with the given name.
// This function is typically called from init() in painter packages,
// following the database/sql driver pattern:
//
//	func init() {
//	    record.Register("raster", func() record.Painter {
//	        return raster.NewPainter()
//	    })
//	}
//
// Register panics if:
//   - factory is nil
//   - a painter with the same name is already registered
//
// This ensures that duplicate registrations are caught early during
// program initialization rather than silently overwriting painters.
func Register(name string, factory PainterFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("record: Register factory is nil")
	}
	if _, dup := painters[name]; dup {
		panic("record: Register called twice for " + name)
	}
	painters[name] = factory
}

// Unregister removes a painter from the registry.
// This is primarily useful for testing to clean up between tests.
// If the painter is not registered, this is a no-op.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(painters, name)
}

// NewPainter creates a new painter instance by name.
// The name must match a previously registered painter.
//
// Example:
//
//	import _ "github.com/gogpu/paintlog/record/backends/raster"
//
//	painter, err := record.NewPainter("raster")
//	if err != nil {
//	    // Handle error - painter not registered
//	}
//
// Returns an error if the painter is not registered.
// The error message includes a hint about forgotten imports.
func NewPainter(name string) (Painter, error) {
	registryMu.RLock()
	factory, ok := painters[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("record: unknown painter %q (forgotten import?)", name)
	}
	return factory(), nil
}

// MustPainter creates a new painter instance by name, panicking on error.
// This is useful when painter availability is guaranteed.
func MustPainter(name string) Painter {
	p, err := NewPainter(name)
	if err != nil {
		panic(err)
	}
	return p
}

// Painters returns a sorted list of registered painter names.
// The list is sorted alphabetically for consistent output.
func Painters() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(painters))
	for name := range painters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered checks if a painter with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := painters[name]
	return ok
}
