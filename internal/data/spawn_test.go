package data

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/elysion/engine/internal/colour"
	"github.com/elysion/engine/internal/component"
	"github.com/elysion/engine/internal/core/ecs"
)

func writeTable(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "spawns.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadSpawnTable(t *testing.T) {
	path := writeTable(t, `
spawns:
  - kind: drone
    count: 4
    glyph: d
    colour: dark_red
    fade_to: orange
    fade: 1.5
    groups: [renderable, enemies]
    lifetime: 3
    velocity: {x: 1.5, y: -0.5}
    update_hook: drone_update
  - kind: marker
    count: 1
`)

	table, err := LoadSpawnTable(path)
	require.NoError(t, err)
	require.Equal(t, 2, table.Count())

	drone := table.All()[0]
	require.Equal(t, "drone", drone.Kind)
	require.Equal(t, 4, drone.Count)
	require.Equal(t, 'd', drone.Glyph)
	require.Equal(t, colour.DarkRed, drone.From)
	require.Equal(t, colour.Orange, drone.To)
	require.Equal(t, 1500*time.Millisecond, drone.Fade)
	require.Equal(t, []ecs.GroupID{component.GroupRenderable, component.GroupEnemies}, drone.Groups)
	require.Equal(t, 3*time.Second, drone.Lifetime)
	require.Equal(t, 1.5, drone.Velocity.X)
	require.Equal(t, "drone_update", drone.UpdateHook)

	marker := table.All()[1]
	require.Equal(t, '?', marker.Glyph, "defaults apply")
	require.Equal(t, colour.White, marker.From)
	require.Equal(t, marker.From, marker.To)
	require.Zero(t, marker.Lifetime)
}

func TestLoadSpawnTableRejectsUnknownColour(t *testing.T) {
	path := writeTable(t, `
spawns:
  - kind: drone
    count: 1
    colour: not_a_colour
`)
	_, err := LoadSpawnTable(path)
	require.ErrorContains(t, err, "unknown colour")
}

func TestLoadSpawnTableRejectsUnknownGroup(t *testing.T) {
	path := writeTable(t, `
spawns:
  - kind: drone
    count: 1
    groups: [villains]
`)
	_, err := LoadSpawnTable(path)
	require.ErrorContains(t, err, "unknown group")
}

func TestLoadSpawnTableRejectsBadCount(t *testing.T) {
	path := writeTable(t, `
spawns:
  - kind: drone
    count: 0
`)
	_, err := LoadSpawnTable(path)
	require.ErrorContains(t, err, "count must be positive")
}

func TestLoadSpawnTableMissingFile(t *testing.T) {
	_, err := LoadSpawnTable(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
