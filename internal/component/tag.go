package component

import "github.com/elysion/engine/internal/core/ecs"

// Tag identifies which spawn-table kind assembled an entity, so systems can
// count populations per kind inside a shared group.
type Tag struct {
	ecs.BaseComponent
	Kind string
}
