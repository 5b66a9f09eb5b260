// Package scripting embeds a Lua VM so component behavior can live in data
// files instead of Go code.
package scripting

import (
	"fmt"
	"os"
	"path/filepath"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/elysion/engine/internal/resource"
)

// lstateBehaviour releases a gopher-lua state through resource.Unique.
type lstateBehaviour struct{}

func (lstateBehaviour) Null() *lua.LState { return nil }

func (lstateBehaviour) Deinit(s *lua.LState) { s.Close() }

// Engine wraps a single Lua VM. Single-goroutine access only (the game
// loop): gopher-lua states are not safe for concurrent use.
type Engine struct {
	vm  resource.Unique[*lua.LState]
	log *zap.Logger
}

// NewEngine creates a Lua engine and loads every .lua file in dir. A missing
// directory is not an error; the engine just has no hooks.
func NewEngine(dir string, log *zap.Logger) (*Engine, error) {
	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})
	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	e := &Engine{vm: resource.NewUnique[*lua.LState](lstateBehaviour{}, vm), log: log}
	if err := e.loadDir(dir); err != nil {
		e.Close()
		return nil, fmt.Errorf("load scripts: %w", err)
	}
	return e, nil
}

func (e *Engine) loadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := e.vm.Get().DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		e.log.Debug("loaded lua script", zap.String("file", path))
	}
	return nil
}

// Has reports whether a global Lua function with the given name exists.
func (e *Engine) Has(fn string) bool {
	return e.vm.Get().GetGlobal(fn) != lua.LNil
}

// CallHook invokes the named global Lua function with the given arguments,
// discarding return values. Unknown names are a no-op so entities can opt
// out of individual hooks.
func (e *Engine) CallHook(fn string, args ...lua.LValue) error {
	vm := e.vm.Get()
	f := vm.GetGlobal(fn)
	if f == lua.LNil {
		return nil
	}
	if err := vm.CallByParam(lua.P{
		Fn:      f,
		NRet:    0,
		Protect: true,
	}, args...); err != nil {
		return fmt.Errorf("lua %s: %w", fn, err)
	}
	return nil
}

// Global returns the value of a global Lua variable, lua.LNil if unset.
func (e *Engine) Global(name string) lua.LValue {
	return e.vm.Get().GetGlobal(name)
}

// Close shuts the VM down. Idempotent.
func (e *Engine) Close() {
	e.vm.Close()
}
