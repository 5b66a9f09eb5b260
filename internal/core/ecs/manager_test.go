package ecs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAddGroupRegistersImmediately(t *testing.T) {
	m := newTestManager()
	e1 := m.AddEntity()

	e1.AddGroup(10)
	require.Equal(t, []*Entity{e1}, m.EntitiesByGroup(10))

	m.Refresh()
	require.Equal(t, []*Entity{e1}, m.EntitiesByGroup(10), "refresh keeps live members")
}

func TestAddGroupIsIdempotent(t *testing.T) {
	m := newTestManager()
	e1 := m.AddEntity()

	e1.AddGroup(10)
	e1.AddGroup(10)
	e1.AddGroup(10)
	require.Len(t, m.EntitiesByGroup(10), 1, "repeated AddGroup must not duplicate the index entry")
}

func TestRefreshReclaimsDestroyedEntities(t *testing.T) {
	m := newTestManager()
	e1 := m.AddEntity()
	e1.AddGroup(10)

	e1.Destroy()
	require.False(t, e1.Alive())
	require.Equal(t, 1, m.Len(), "marked dead but not yet reclaimed")
	require.Len(t, m.EntitiesByGroup(10), 1, "group slot stays stale until refresh")

	m.Refresh()
	require.Equal(t, 0, m.Len())
	require.Empty(t, m.EntitiesByGroup(10))
}

func TestRefreshDropsDepartedMembers(t *testing.T) {
	m := newTestManager()
	e1 := m.AddEntity()
	e2 := m.AddEntity()
	e1.AddGroup(3)
	e2.AddGroup(3)

	e1.RemoveGroup(3)
	require.Len(t, m.EntitiesByGroup(3), 2, "removal is lazy")

	m.Refresh()
	require.Equal(t, []*Entity{e2}, m.EntitiesByGroup(3))
	require.Equal(t, 2, m.Len(), "both entities are still alive")
}

func TestRefreshIsIdempotent(t *testing.T) {
	m := newTestManager()
	e1 := m.AddEntity()
	e2 := m.AddEntity()
	e1.AddGroup(5)
	e2.AddGroup(5)
	e2.Destroy()

	m.Refresh()
	pop, slot := m.Len(), append([]*Entity(nil), m.EntitiesByGroup(5)...)

	m.Refresh()
	require.Equal(t, pop, m.Len())
	require.Equal(t, slot, m.EntitiesByGroup(5))
}

func TestRefreshPreservesInsertionOrder(t *testing.T) {
	m := newTestManager()
	e1 := m.AddEntity()
	e2 := m.AddEntity()
	e3 := m.AddEntity()
	for _, e := range []*Entity{e1, e2, e3} {
		e.AddGroup(7)
	}

	e2.Destroy()
	m.Refresh()

	require.Equal(t, []*Entity{e1, e3}, m.EntitiesByGroup(7))
	require.Equal(t, 2, m.Len())
}

func TestDeadEntitiesStillUpdatedUntilRefresh(t *testing.T) {
	m := newTestManager()
	e := m.AddEntity()
	p := Attach(e, &probe{name: "p"})

	e.Destroy()
	m.Update(time.Millisecond)
	m.Draw()
	require.Equal(t, 1, p.updates, "destruction takes effect only at the next refresh")
	require.Equal(t, 1, p.draws)

	m.Refresh()
	m.Update(time.Millisecond)
	require.Equal(t, 1, p.updates)
}

func TestGroupQueryMatchesBitsAfterRefresh(t *testing.T) {
	m := newTestManager()

	live := m.AddEntity()
	live.AddGroup(12)
	dead := m.AddEntity()
	dead.AddGroup(12)
	dead.Destroy()
	departed := m.AddEntity()
	departed.AddGroup(12)
	departed.RemoveGroup(12)

	m.Refresh()

	slot := m.EntitiesByGroup(12)
	require.Equal(t, []*Entity{live}, slot)
	for _, e := range slot {
		require.True(t, e.Alive())
		require.True(t, e.HasGroup(12))
	}
}

// A component that destroys its owner mid-traversal must not disturb the
// frame's remaining updates.
type selfDestruct struct {
	BaseComponent
}

func (s *selfDestruct) Update(time.Duration) {
	s.Owner().Destroy()
}

func TestDestroyDuringTraversal(t *testing.T) {
	m := newTestManager()
	e1 := m.AddEntity()
	Attach(e1, &selfDestruct{})
	e2 := m.AddEntity()
	p := Attach(e2, &probe{name: "p"})

	m.Update(time.Millisecond)
	require.False(t, e1.Alive())
	require.Equal(t, 1, p.updates, "later entities still update in the same frame")

	m.Refresh()
	require.Equal(t, 1, m.Len())
}
