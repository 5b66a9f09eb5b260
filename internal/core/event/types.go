package event

import "github.com/elysion/engine/internal/core/ecs"

// Engine lifecycle events.

// EntitySpawned is emitted when the spawn system creates an entity.
type EntitySpawned struct {
	Kind  string
	Group ecs.GroupID
}

// PopulationCompacted is emitted after a refresh that reclaimed entities.
type PopulationCompacted struct {
	Reclaimed int
}
