package ecs

import (
	"time"

	"go.uber.org/zap"
)

// Manager owns the whole entity population and the per-group index. The
// group index is a denormalized cache of the entities' group bits: entries
// for dead or departed entities are tolerated between Refresh calls, and
// Refresh is the only corrective action.
type Manager struct {
	log      *zap.Logger
	entities []*Entity // insertion order, exclusively owned
	groups   [MaxGroups][]*Entity
}

func NewManager(log *zap.Logger) *Manager {
	return &Manager{log: log}
}

// AddEntity creates a new live entity bound to this manager. The returned
// reference stays valid until a Refresh reclaims the entity.
func (m *Manager) AddEntity() *Entity {
	e := newEntity(m)
	m.entities = append(m.entities, e)
	return e
}

// Len returns the current population size, including entities marked dead
// but not yet reclaimed.
func (m *Manager) Len() int {
	return len(m.entities)
}

// Update forwards to every entity in insertion order. Entities marked dead
// are still visited; they leave the traversal only once Refresh removes them.
func (m *Manager) Update(dt time.Duration) {
	for _, e := range m.entities {
		e.Update(dt)
	}
}

// Draw forwards to every entity in insertion order.
func (m *Manager) Draw() {
	for _, e := range m.entities {
		e.Draw()
	}
}

// AddToGroup appends a non-owning reference into the group's index slot.
// Push-only: callers (normally Entity.AddGroup) are responsible for not
// registering the same entity twice.
func (m *Manager) AddToGroup(e *Entity, g GroupID) {
	m.groups[g] = append(m.groups[g], e)
}

// EntitiesByGroup returns the current index slot for g. The slice may hold
// entities that are dead or no longer members; callers skip those, and the
// next Refresh drops them.
func (m *Manager) EntitiesByGroup(g GroupID) []*Entity {
	return m.groups[g]
}

// Refresh compacts the population. Every group slot is filtered down to
// entries that are still alive and still claim the group, then every entity
// marked dead is released, preserving relative order in both passes. Running
// it twice without intervening mutation is a no-op the second time.
func (m *Manager) Refresh() {
	dropped := 0
	for g := range m.groups {
		slot := m.groups[g]
		kept := slot[:0]
		for _, e := range slot {
			if e.alive && e.groups.Test(g) {
				kept = append(kept, e)
			} else {
				dropped++
			}
		}
		// release the tail so reclaimed entities are not pinned
		for i := len(kept); i < len(slot); i++ {
			slot[i] = nil
		}
		m.groups[g] = kept
	}

	reclaimed := 0
	kept := m.entities[:0]
	for _, e := range m.entities {
		if e.alive {
			kept = append(kept, e)
		} else {
			reclaimed++
		}
	}
	for i := len(kept); i < len(m.entities); i++ {
		m.entities[i] = nil
	}
	m.entities = kept

	if reclaimed > 0 || dropped > 0 {
		m.log.Debug("refresh",
			zap.Int("entities_reclaimed", reclaimed),
			zap.Int("group_refs_dropped", dropped))
	}
}
