package ecs

import (
	"fmt"
	"time"
)

// Entity is one game object: an ordered set of owned components plus group
// membership bits. Entities are created through Manager.AddEntity and
// reclaimed by Manager.Refresh; Destroy only marks.
type Entity struct {
	manager *Manager

	alive      bool
	components []Component              // attachment order, exclusively owned
	lookup     [MaxComponents]Component // by ComponentID, non-owning
	present    Mask
	groups     Mask
}

func newEntity(m *Manager) *Entity {
	return &Entity{manager: m, alive: true}
}

// Update advances every owned component in attachment order. A marked-dead
// entity still updates until the manager reclaims it at the next Refresh.
func (e *Entity) Update(dt time.Duration) {
	for _, c := range e.components {
		c.Update(dt)
	}
}

// Draw runs every owned component's draw hook in attachment order.
func (e *Entity) Draw() {
	for _, c := range e.components {
		c.Draw()
	}
}

func (e *Entity) Alive() bool { return e.alive }

// Destroy marks the entity dead. Idempotent, and safe to call from inside an
// update or draw traversal: components stay resident and group index entries
// stay in place until the manager's next Refresh.
func (e *Entity) Destroy() {
	e.alive = false
}

// HasGroup reports whether the entity claims membership in group g.
func (e *Entity) HasGroup(g GroupID) bool {
	return e.groups.Test(int(g))
}

// AddGroup sets the membership bit and registers the entity in the manager's
// group index. Calling it again for a group the entity is already in is a
// no-op, so a group slot never accumulates duplicate references.
func (e *Entity) AddGroup(g GroupID) {
	if g < 0 || g >= MaxGroups {
		panic(fmt.Sprintf("ecs: group %d out of range [0,%d)", g, MaxGroups))
	}
	if e.groups.Test(int(g)) {
		return
	}
	e.groups.Set(int(g))
	e.manager.AddToGroup(e, g)
}

// RemoveGroup clears the membership bit. The manager's index entry goes
// stale and is dropped by the next Refresh.
func (e *Entity) RemoveGroup(g GroupID) {
	e.groups.Clear(int(g))
}

// Attach wires c to e, transfers ownership of it to the entity, and records
// it under its kind's ComponentID. At most one component per kind: attaching
// a kind the entity already has is a contract violation and panics.
// The returned component stays valid until the entity is reclaimed.
func Attach[T Component](e *Entity, c T) T {
	id := TypeID[T]()
	if e.present.Test(int(id)) {
		panic(fmt.Sprintf("ecs: entity already has a %T component", c))
	}
	c.setOwner(e)
	e.components = append(e.components, c)
	e.lookup[id] = c
	e.present.Set(int(id))
	return c
}

// Has reports in O(1) whether the entity holds a component of kind T.
func Has[T Component](e *Entity) bool {
	return e.present.Test(int(TypeID[T]()))
}

// Get returns the entity's component of kind T. Calling it without a prior
// Attach of that kind is a contract violation and panics.
func Get[T Component](e *Entity) T {
	id := TypeID[T]()
	if !e.present.Test(int(id)) {
		var zero T
		panic(fmt.Sprintf("ecs: entity has no %T component", zero))
	}
	return e.lookup[id].(T)
}
