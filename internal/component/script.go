package component

import (
	"time"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/elysion/engine/internal/core/ecs"
	"github.com/elysion/engine/internal/scripting"
)

// Script dispatches the entity's update and draw hooks to named global Lua
// functions. Either name may be empty to skip that hook. Hook errors are
// logged and swallowed so one bad script cannot stall the frame.
type Script struct {
	ecs.BaseComponent
	UpdateFn string
	DrawFn   string

	engine *scripting.Engine
	log    *zap.Logger
}

func NewScript(e *scripting.Engine, log *zap.Logger, updateFn, drawFn string) *Script {
	return &Script{engine: e, log: log, UpdateFn: updateFn, DrawFn: drawFn}
}

func (s *Script) Update(dt time.Duration) {
	if s.UpdateFn == "" {
		return
	}
	if err := s.engine.CallHook(s.UpdateFn, lua.LNumber(dt.Seconds())); err != nil {
		s.log.Error("script update hook failed", zap.String("fn", s.UpdateFn), zap.Error(err))
	}
}

func (s *Script) Draw() {
	if s.DrawFn == "" {
		return
	}
	if err := s.engine.CallHook(s.DrawFn); err != nil {
		s.log.Error("script draw hook failed", zap.String("fn", s.DrawFn), zap.Error(err))
	}
}
