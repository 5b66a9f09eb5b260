// Package component holds the concrete component kinds the demo simulation
// attaches to entities, plus the group vocabulary its spawn tables use.
package component

import "github.com/elysion/engine/internal/core/ecs"

const (
	GroupRenderable ecs.GroupID = iota
	GroupEnemies
	GroupEffects
	GroupScripted
)

var groupsByName = map[string]ecs.GroupID{
	"renderable": GroupRenderable,
	"enemies":    GroupEnemies,
	"effects":    GroupEffects,
	"scripted":   GroupScripted,
}

// GroupByName resolves a spawn-table group name.
func GroupByName(name string) (ecs.GroupID, bool) {
	g, ok := groupsByName[name]
	return g, ok
}
