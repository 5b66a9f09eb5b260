// Package data loads the demo simulation's YAML spawn tables.
package data

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/elysion/engine/internal/colour"
	"github.com/elysion/engine/internal/component"
	"github.com/elysion/engine/internal/core/ecs"
	"github.com/elysion/engine/internal/maths"
)

// spawnEntry is the raw YAML shape. Durations are float seconds; colours and
// groups are names resolved at load time.
type spawnEntry struct {
	Kind       string   `yaml:"kind"`
	Count      int      `yaml:"count"`
	Glyph      string   `yaml:"glyph"`
	Colour     string   `yaml:"colour"`
	FadeTo     string   `yaml:"fade_to"`
	Fade       float64  `yaml:"fade"`
	Groups     []string `yaml:"groups"`
	Lifetime   float64  `yaml:"lifetime"`
	Velocity   vec2     `yaml:"velocity"`
	UpdateHook string   `yaml:"update_hook"`
	DrawHook   string   `yaml:"draw_hook"`
}

type vec2 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type spawnFile struct {
	Spawns []spawnEntry `yaml:"spawns"`
}

// Spawn is one resolved spawn-table row: how many entities of a kind to keep
// alive and how to assemble them.
type Spawn struct {
	Kind     string
	Count    int
	Glyph    rune
	From, To colour.Colour
	Fade     time.Duration
	Groups   []ecs.GroupID
	Lifetime time.Duration // zero means immortal
	Velocity maths.Vector2

	UpdateHook string
	DrawHook   string
}

// SpawnTable holds all resolved spawn rows in file order.
type SpawnTable struct {
	spawns []Spawn
}

// NewSpawnTable builds a table from already-resolved rows.
func NewSpawnTable(spawns ...Spawn) *SpawnTable {
	return &SpawnTable{spawns: spawns}
}

func (t *SpawnTable) Count() int {
	return len(t.spawns)
}

func (t *SpawnTable) All() []Spawn {
	return t.spawns
}

// LoadSpawnTable reads and resolves a spawn table. Unknown colour or group
// names are load errors; a broken table should fail at boot, not mid-run.
func LoadSpawnTable(path string) (*SpawnTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read spawn table %s: %w", path, err)
	}
	var file spawnFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse spawn table %s: %w", path, err)
	}

	table := &SpawnTable{spawns: make([]Spawn, 0, len(file.Spawns))}
	for i, e := range file.Spawns {
		s, err := resolve(e)
		if err != nil {
			return nil, fmt.Errorf("spawn table %s entry %d (%s): %w", path, i, e.Kind, err)
		}
		table.spawns = append(table.spawns, s)
	}
	return table, nil
}

func resolve(e spawnEntry) (Spawn, error) {
	if e.Kind == "" {
		return Spawn{}, fmt.Errorf("missing kind")
	}
	if e.Count <= 0 {
		return Spawn{}, fmt.Errorf("count must be positive, got %d", e.Count)
	}

	s := Spawn{
		Kind:       e.Kind,
		Count:      e.Count,
		Glyph:      '?',
		From:       colour.White,
		Fade:       secs(e.Fade),
		Lifetime:   secs(e.Lifetime),
		Velocity:   maths.Vector2{X: e.Velocity.X, Y: e.Velocity.Y},
		UpdateHook: e.UpdateHook,
		DrawHook:   e.DrawHook,
	}
	if e.Glyph != "" {
		s.Glyph = []rune(e.Glyph)[0]
	}
	if e.Colour != "" {
		c, ok := colour.ByName(e.Colour)
		if !ok {
			return Spawn{}, fmt.Errorf("unknown colour %q", e.Colour)
		}
		s.From = c
	}
	s.To = s.From
	if e.FadeTo != "" {
		c, ok := colour.ByName(e.FadeTo)
		if !ok {
			return Spawn{}, fmt.Errorf("unknown colour %q", e.FadeTo)
		}
		s.To = c
	}
	for _, name := range e.Groups {
		g, ok := component.GroupByName(name)
		if !ok {
			return Spawn{}, fmt.Errorf("unknown group %q", name)
		}
		s.Groups = append(s.Groups, g)
	}
	return s, nil
}

func secs(v float64) time.Duration {
	return time.Duration(v * float64(time.Second))
}
