package component

import (
	"time"

	"github.com/elysion/engine/internal/core/ecs"
	"github.com/elysion/engine/internal/maths"
)

// Transform carries an entity's position and velocity and integrates them
// each frame.
type Transform struct {
	ecs.BaseComponent
	Position maths.Vector2
	Velocity maths.Vector2
}

func (t *Transform) Update(dt time.Duration) {
	t.Position = t.Position.Add(t.Velocity.Scale(dt.Seconds()))
}
