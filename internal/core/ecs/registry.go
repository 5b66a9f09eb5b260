package ecs

import (
	"fmt"
	"reflect"
	"sync"
)

// typeRegistry hands out ComponentIDs keyed by concrete Go type. Assignment
// is memoized: a kind keeps its first ID for the rest of the process and IDs
// are never reused.
type typeRegistry struct {
	mu  sync.Mutex // only protects assignment
	ids map[reflect.Type]ComponentID
}

func newTypeRegistry() *typeRegistry {
	return &typeRegistry{
		ids: make(map[reflect.Type]ComponentID, MaxComponents),
	}
}

func (r *typeRegistry) id(t reflect.Type) ComponentID {
	r.mu.Lock()
	defer r.mu.Unlock()
	if id, ok := r.ids[t]; ok {
		return id
	}
	id := ComponentID(len(r.ids))
	if int(id) >= MaxComponents {
		panic(fmt.Sprintf("ecs: component kind %v exceeds MaxComponents (%d)", t, MaxComponents))
	}
	r.ids[t] = id
	return id
}

// registry is process-wide state: every entity shares the same ID assignment,
// and it is never reset.
var registry = newTypeRegistry()

// TypeID returns the stable identifier for component kind T, assigning the
// next free one on first use. Referencing more than MaxComponents distinct
// kinds is a configuration error and panics.
func TypeID[T Component]() ComponentID {
	return registry.id(reflect.TypeOf((*T)(nil)).Elem())
}
