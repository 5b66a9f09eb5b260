// Package system implements the demo simulation's frame systems on top of
// the engine core: event dispatch, spawning, the update/draw traversals, and
// the end-of-frame refresh.
package system

import (
	"time"

	coresys "github.com/elysion/engine/internal/core/system"

	"github.com/elysion/engine/internal/core/ecs"
	"github.com/elysion/engine/internal/core/event"
)

// DispatchSystem rotates the event bus and delivers last frame's events.
// Phase 0 (Events).
type DispatchSystem struct {
	bus *event.Bus
}

func NewDispatchSystem(bus *event.Bus) *DispatchSystem {
	return &DispatchSystem{bus: bus}
}

func (s *DispatchSystem) Phase() coresys.Phase { return coresys.PhaseEvents }

func (s *DispatchSystem) Update(_ time.Duration) {
	s.bus.SwapBuffers()
	s.bus.DispatchAll()
}

// UpdateSystem runs the population update traversal. Phase 2 (Update).
type UpdateSystem struct {
	manager *ecs.Manager
}

func NewUpdateSystem(m *ecs.Manager) *UpdateSystem {
	return &UpdateSystem{manager: m}
}

func (s *UpdateSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *UpdateSystem) Update(dt time.Duration) {
	s.manager.Update(dt)
}

// DrawSystem runs the population draw traversal. Phase 3 (Draw).
type DrawSystem struct {
	manager *ecs.Manager
}

func NewDrawSystem(m *ecs.Manager) *DrawSystem {
	return &DrawSystem{manager: m}
}

func (s *DrawSystem) Phase() coresys.Phase { return coresys.PhaseDraw }

func (s *DrawSystem) Update(_ time.Duration) {
	s.manager.Draw()
}

// RefreshSystem compacts the population at frame end and reports how many
// entities were reclaimed. Phase 4 (Refresh).
type RefreshSystem struct {
	manager *ecs.Manager
	bus     *event.Bus
}

func NewRefreshSystem(m *ecs.Manager, bus *event.Bus) *RefreshSystem {
	return &RefreshSystem{manager: m, bus: bus}
}

func (s *RefreshSystem) Phase() coresys.Phase { return coresys.PhaseRefresh }

func (s *RefreshSystem) Update(_ time.Duration) {
	before := s.manager.Len()
	s.manager.Refresh()
	if n := before - s.manager.Len(); n > 0 {
		event.Emit(s.bus, event.PopulationCompacted{Reclaimed: n})
	}
}
