package ecs

import "time"

// Component is a behavior unit owned by exactly one Entity. Concrete kinds
// embed BaseComponent and override only the hooks they need.
type Component interface {
	// Update advances the component by one frame.
	Update(dt time.Duration)
	// Draw runs the component's per-frame draw hook.
	Draw()
	// Owner returns the entity this component is attached to, nil before
	// attachment. The reference is non-owning; destruction flows strictly
	// downward from the manager.
	Owner() *Entity

	// setOwner is unexported so every concrete kind embeds BaseComponent,
	// which keeps the owner wiring in one place.
	setOwner(e *Entity)
}

// BaseComponent carries the owning-entity back-reference and provides no-op
// Update and Draw.
type BaseComponent struct {
	owner *Entity
}

func (b *BaseComponent) Update(time.Duration) {}

func (b *BaseComponent) Draw() {}

func (b *BaseComponent) Owner() *Entity { return b.owner }

// setOwner is called exactly once, by Attach.
func (b *BaseComponent) setOwner(e *Entity) { b.owner = e }
