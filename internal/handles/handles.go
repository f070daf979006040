// Package handles provides a thread-safe handle table for Go values that must
// be reachable from native callbacks.
//
// The engine's device-event and render-event callbacks are bare function
// pointers with no user-data argument, so one process-wide trampoline serves
// every listener. The trampoline looks its listeners up in a Table instead of
// capturing Go pointers in native memory.
package handles

import (
	"sort"
	"sync"
)

// Handle identifies a registered value. The zero Handle is never issued.
type Handle uintptr

// Table stores values of type T under unique handles.
// The zero Table is ready to use.
type Table[T any] struct {
	mu     sync.RWMutex
	values map[Handle]T
	nextID Handle
}

// Register stores v and returns its handle.
//
// Thread-safe.
func (t *Table[T]) Register(v T) Handle {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.values == nil {
		t.values = make(map[Handle]T)
	}
	t.nextID++
	t.values[t.nextID] = v
	return t.nextID
}

// Unregister removes h and reports whether it was registered.
//
// Thread-safe.
func (t *Table[T]) Unregister(h Handle) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.values[h]; !ok {
		return false
	}
	delete(t.values, h)
	return true
}

// Count returns the number of registered values.
//
// Thread-safe.
func (t *Table[T]) Count() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.values)
}

// Snapshot returns the registered values in registration order.
// Callbacks iterate a snapshot so listeners may unregister themselves.
//
// Thread-safe.
func (t *Table[T]) Snapshot() []T {
	t.mu.RLock()
	ids := make([]Handle, 0, len(t.values))
	for id := range t.values {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]T, len(ids))
	for i, id := range ids {
		out[i] = t.values[id]
	}
	t.mu.RUnlock()
	return out
}
