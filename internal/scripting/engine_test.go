package scripting

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

func writeScript(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0644))
}

func TestLoadsScriptsAndCallsHooks(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "drone.lua", `
ticks = 0
total_dt = 0
function drone_update(dt)
    ticks = ticks + 1
    total_dt = total_dt + dt
end
`)

	e, err := NewEngine(dir, zap.NewNop())
	require.NoError(t, err)
	defer e.Close()

	require.True(t, e.Has("drone_update"))
	require.False(t, e.Has("missing_hook"))

	require.NoError(t, e.CallHook("drone_update", lua.LNumber(0.2)))
	require.NoError(t, e.CallHook("drone_update", lua.LNumber(0.2)))

	require.Equal(t, lua.LNumber(2), e.Global("ticks"))
	require.Equal(t, lua.LNumber(0.4), e.Global("total_dt"))
}

func TestUnknownHookIsNoOp(t *testing.T) {
	e, err := NewEngine(t.TempDir(), zap.NewNop())
	require.NoError(t, err)
	defer e.Close()

	require.NoError(t, e.CallHook("nothing_here"))
}

func TestMissingDirIsNotAnError(t *testing.T) {
	e, err := NewEngine(filepath.Join(t.TempDir(), "absent"), zap.NewNop())
	require.NoError(t, err)
	e.Close()
	e.Close() // idempotent
}

func TestBrokenScriptFailsLoad(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "bad.lua", `function broken(`)

	_, err := NewEngine(dir, zap.NewNop())
	require.Error(t, err)
}
