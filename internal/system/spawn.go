package system

import (
	"time"

	"go.uber.org/zap"

	coresys "github.com/elysion/engine/internal/core/system"

	"github.com/elysion/engine/internal/component"
	"github.com/elysion/engine/internal/core/ecs"
	"github.com/elysion/engine/internal/core/event"
	"github.com/elysion/engine/internal/data"
	"github.com/elysion/engine/internal/scripting"
)

// SpawnSystem keeps every spawn-table row populated: each frame it counts
// the row's kind inside its first group and tops the population back up to
// the configured count. Rows without groups spawn once at startup.
// Phase 1 (Spawn).
type SpawnSystem struct {
	manager *ecs.Manager
	table   *data.SpawnTable
	lua     *scripting.Engine // nil when scripting is disabled
	bus     *event.Bus
	log     *zap.Logger

	started []bool // per row, for group-less one-shot spawns
}

func NewSpawnSystem(m *ecs.Manager, table *data.SpawnTable, lua *scripting.Engine, bus *event.Bus, log *zap.Logger) *SpawnSystem {
	return &SpawnSystem{
		manager: m,
		table:   table,
		lua:     lua,
		bus:     bus,
		log:     log,
		started: make([]bool, table.Count()),
	}
}

func (s *SpawnSystem) Phase() coresys.Phase { return coresys.PhaseSpawn }

func (s *SpawnSystem) Update(_ time.Duration) {
	for i, row := range s.table.All() {
		if len(row.Groups) == 0 {
			if !s.started[i] {
				s.started[i] = true
				for n := 0; n < row.Count; n++ {
					s.spawn(row)
				}
			}
			continue
		}
		for n := s.countLive(row); n < row.Count; n++ {
			s.spawn(row)
		}
	}
}

// countLive counts live members of the row's kind in its first group,
// skipping stale index entries that refresh has not dropped yet.
func (s *SpawnSystem) countLive(row data.Spawn) int {
	n := 0
	for _, e := range s.manager.EntitiesByGroup(row.Groups[0]) {
		if !e.Alive() || !e.HasGroup(row.Groups[0]) {
			continue
		}
		if ecs.Has[*component.Tag](e) && ecs.Get[*component.Tag](e).Kind == row.Kind {
			n++
		}
	}
	return n
}

func (s *SpawnSystem) spawn(row data.Spawn) {
	e := s.manager.AddEntity()
	ecs.Attach(e, &component.Tag{Kind: row.Kind})
	ecs.Attach(e, &component.Transform{Velocity: row.Velocity})
	ecs.Attach(e, component.NewSprite(row.Glyph, row.From, row.To, row.Fade))
	if row.Lifetime > 0 {
		ecs.Attach(e, &component.Lifetime{Remaining: row.Lifetime})
	}
	if s.lua != nil && (row.UpdateHook != "" || row.DrawHook != "") {
		ecs.Attach(e, component.NewScript(s.lua, s.log, row.UpdateHook, row.DrawHook))
	}
	for _, g := range row.Groups {
		e.AddGroup(g)
	}

	ev := event.EntitySpawned{Kind: row.Kind}
	if len(row.Groups) > 0 {
		ev.Group = row.Groups[0]
	}
	event.Emit(s.bus, ev)
}
