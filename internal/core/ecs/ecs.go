// Package ecs implements the entity/component population core of the engine:
// entities own polymorphic components, a manager owns all entities, and named
// groups provide bulk lookup. The whole package assumes the engine's
// single-threaded phased frame: update, draw, then a single Refresh.
package ecs

// ComponentID identifies a distinct component kind. IDs are assigned on first
// use, densely from 0, and are stable for the lifetime of the process.
type ComponentID int

// GroupID identifies a named entity group used for bulk queries.
type GroupID int

const (
	// MaxComponents bounds the number of distinct component kinds. The
	// per-entity lookup table and presence mask are sized to it.
	MaxComponents = 32

	// MaxGroups bounds the number of distinct groups.
	MaxGroups = 32
)
