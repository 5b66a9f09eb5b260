// Package resource provides Unique, a single-owner wrapper for externally
// managed handles (file descriptors, script VMs, GPU objects). Ownership is
// exclusive: a handle is deinitialised exactly once, by whichever Unique
// owns it when Close or Reset runs.
package resource

// Behaviour tells a Unique how to treat its handle type: what the "no
// handle" sentinel looks like and how to release a live handle.
type Behaviour[H comparable] interface {
	Null() H
	Deinit(H)
}

// Unique owns at most one handle. The zero value is unusable; build one
// with NewUnique. Not safe to copy once in use: move ownership with Release
// or Swap instead.
type Unique[H comparable] struct {
	handle    H
	behaviour Behaviour[H]
}

// NewUnique takes ownership of h.
func NewUnique[H comparable](b Behaviour[H], h H) Unique[H] {
	return Unique[H]{handle: h, behaviour: b}
}

// Empty returns a Unique owning nothing.
func Empty[H comparable](b Behaviour[H]) Unique[H] {
	return Unique[H]{handle: b.Null(), behaviour: b}
}

// Get returns the owned handle without affecting ownership.
func (u *Unique[H]) Get() H {
	return u.handle
}

// Valid reports whether a live handle is owned.
func (u *Unique[H]) Valid() bool {
	return u.handle != u.behaviour.Null()
}

// Release disowns and returns the handle without deinitialising it. The
// caller becomes responsible for it.
func (u *Unique[H]) Release() H {
	h := u.handle
	u.handle = u.behaviour.Null()
	return h
}

// Reset deinitialises the current handle, if any, and takes ownership of h.
func (u *Unique[H]) Reset(h H) {
	u.Close()
	u.handle = h
}

// Swap exchanges handles with another Unique sharing the same behaviour.
func (u *Unique[H]) Swap(o *Unique[H]) {
	u.handle, o.handle = o.handle, u.handle
}

// Close deinitialises the owned handle. Idempotent: closing an empty Unique
// does nothing.
func (u *Unique[H]) Close() {
	if !u.Valid() {
		return
	}
	u.behaviour.Deinit(u.handle)
	u.handle = u.behaviour.Null()
}
