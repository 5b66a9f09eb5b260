// Package system defines the engine's phased frame: systems declare a phase
// and the runner executes them in phase order once per frame.
package system

import "time"

// Phase defines execution ordering within a single frame.
type Phase int

const (
	PhaseEvents  Phase = iota // 0: swap + dispatch last frame's events
	PhaseSpawn                // 1: top up populations from spawn tables
	PhaseUpdate               // 2: entity update traversal
	PhaseDraw                 // 3: entity draw traversal
	PhaseRefresh              // 4: reclaim dead entities, repair group index
)

// System is implemented by every engine system.
type System interface {
	Phase() Phase
	Update(dt time.Duration)
}
