package resource

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeHandle stands in for an externally managed object.
type fakeHandle struct {
	closed bool
}

type fakeBehaviour struct {
	deinits int
}

func (b *fakeBehaviour) Null() *fakeHandle { return nil }

func (b *fakeBehaviour) Deinit(h *fakeHandle) {
	h.closed = true
	b.deinits++
}

func TestOwnershipLifecycle(t *testing.T) {
	b := &fakeBehaviour{}
	h := &fakeHandle{}

	u := NewUnique[*fakeHandle](b, h)
	require.True(t, u.Valid())
	require.Same(t, h, u.Get())

	u.Close()
	require.False(t, u.Valid())
	require.True(t, h.closed)
	require.Equal(t, 1, b.deinits)

	u.Close() // idempotent
	require.Equal(t, 1, b.deinits)
}

func TestReleaseTransfersOwnership(t *testing.T) {
	b := &fakeBehaviour{}
	h := &fakeHandle{}

	u := NewUnique[*fakeHandle](b, h)
	got := u.Release()
	require.Same(t, h, got)
	require.False(t, u.Valid())

	u.Close()
	require.Equal(t, 0, b.deinits, "a released handle must not be deinitialised")
}

func TestResetReplacesHandle(t *testing.T) {
	b := &fakeBehaviour{}
	first := &fakeHandle{}
	second := &fakeHandle{}

	u := NewUnique[*fakeHandle](b, first)
	u.Reset(second)
	require.True(t, first.closed)
	require.False(t, second.closed)
	require.Same(t, second, u.Get())

	u.Close()
	require.True(t, second.closed)
	require.Equal(t, 2, b.deinits)
}

func TestSwap(t *testing.T) {
	b := &fakeBehaviour{}
	h1 := &fakeHandle{}
	h2 := &fakeHandle{}

	u1 := NewUnique[*fakeHandle](b, h1)
	u2 := NewUnique[*fakeHandle](b, h2)
	u1.Swap(&u2)
	require.Same(t, h2, u1.Get())
	require.Same(t, h1, u2.Get())
}

func TestEmpty(t *testing.T) {
	b := &fakeBehaviour{}
	u := Empty[*fakeHandle](b)
	require.False(t, u.Valid())
	u.Close()
	require.Equal(t, 0, b.deinits)
}
