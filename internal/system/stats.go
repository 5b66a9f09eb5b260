package system

import (
	"time"

	"go.uber.org/zap"

	coresys "github.com/elysion/engine/internal/core/system"

	"github.com/elysion/engine/internal/core/ecs"
	"github.com/elysion/engine/internal/core/event"
)

// StatsSystem aggregates lifecycle events and logs population stats every
// interval frames. Phase 4 (Refresh); register it after RefreshSystem so the
// logged population is the compacted one.
type StatsSystem struct {
	manager  *ecs.Manager
	log      *zap.Logger
	interval int

	frames    int
	spawned   int
	reclaimed int
}

func NewStatsSystem(m *ecs.Manager, bus *event.Bus, log *zap.Logger, interval int) *StatsSystem {
	if interval <= 0 {
		interval = 1
	}
	s := &StatsSystem{manager: m, log: log, interval: interval}
	event.Subscribe(bus, func(event.EntitySpawned) { s.spawned++ })
	event.Subscribe(bus, func(ev event.PopulationCompacted) { s.reclaimed += ev.Reclaimed })
	return s
}

func (s *StatsSystem) Phase() coresys.Phase { return coresys.PhaseRefresh }

func (s *StatsSystem) Update(_ time.Duration) {
	s.frames++
	if s.frames%s.interval != 0 {
		return
	}
	s.log.Info("population",
		zap.Int("entities", s.manager.Len()),
		zap.Int("spawned", s.spawned),
		zap.Int("reclaimed", s.reclaimed))
	s.spawned = 0
	s.reclaimed = 0
}
