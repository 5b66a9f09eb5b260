package component

import (
	"time"

	"github.com/elysion/engine/internal/core/ecs"
)

// Lifetime marks its owner destroyed once the remaining time runs out.
// Destruction is a mark only; the manager reclaims the entity at the next
// refresh.
type Lifetime struct {
	ecs.BaseComponent
	Remaining time.Duration
}

func (l *Lifetime) Update(dt time.Duration) {
	l.Remaining -= dt
	if l.Remaining <= 0 {
		l.Owner().Destroy()
	}
}
