package ecs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// probe records the order of hook invocations across components.
type probe struct {
	BaseComponent
	name    string
	calls   *[]string
	updates int
	draws   int
}

func (p *probe) Update(time.Duration) {
	p.updates++
	if p.calls != nil {
		*p.calls = append(*p.calls, p.name+".update")
	}
}

func (p *probe) Draw() {
	p.draws++
	if p.calls != nil {
		*p.calls = append(*p.calls, p.name+".draw")
	}
}

type second struct {
	BaseComponent
	calls *[]string
}

func (s *second) Update(time.Duration) {
	if s.calls != nil {
		*s.calls = append(*s.calls, "second.update")
	}
}

func newTestManager() *Manager {
	return NewManager(zap.NewNop())
}

func TestAttachGetHas(t *testing.T) {
	e := newTestManager().AddEntity()

	require.False(t, Has[*probe](e))

	p := Attach(e, &probe{name: "p"})
	require.True(t, Has[*probe](e))
	require.Same(t, p, Get[*probe](e))
	require.Same(t, e, p.Owner(), "attachment must set the owner back-reference")
}

func TestAttachDuplicateKindPanics(t *testing.T) {
	e := newTestManager().AddEntity()
	Attach(e, &probe{name: "first"})
	require.Panics(t, func() {
		Attach(e, &probe{name: "second"})
	})
}

func TestGetWithoutAttachPanics(t *testing.T) {
	e := newTestManager().AddEntity()
	require.Panics(t, func() {
		Get[*probe](e)
	})
}

func TestUpdateDrawFollowAttachmentOrder(t *testing.T) {
	e := newTestManager().AddEntity()
	var calls []string
	Attach(e, &probe{name: "a", calls: &calls})
	Attach(e, &second{calls: &calls})

	e.Update(time.Millisecond)
	require.Equal(t, []string{"a.update", "second.update"}, calls)

	calls = calls[:0]
	e.Draw()
	require.Equal(t, []string{"a.draw"}, calls, "second has no draw override")
}

func TestDestroyMarksImmediately(t *testing.T) {
	e := newTestManager().AddEntity()
	require.True(t, e.Alive())
	e.Destroy()
	require.False(t, e.Alive())
	e.Destroy() // idempotent
	require.False(t, e.Alive())
}

func TestGroupBits(t *testing.T) {
	e := newTestManager().AddEntity()

	require.False(t, e.HasGroup(10))
	e.AddGroup(10)
	require.True(t, e.HasGroup(10))
	e.RemoveGroup(10)
	require.False(t, e.HasGroup(10))
}

func TestAddGroupOutOfRangePanics(t *testing.T) {
	e := newTestManager().AddEntity()
	require.Panics(t, func() { e.AddGroup(MaxGroups) })
	require.Panics(t, func() { e.AddGroup(-1) })
}
