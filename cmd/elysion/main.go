package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/elysion/engine/internal/config"
	"github.com/elysion/engine/internal/core/ecs"
	"github.com/elysion/engine/internal/core/event"
	coresys "github.com/elysion/engine/internal/core/system"
	"github.com/elysion/engine/internal/data"
	"github.com/elysion/engine/internal/scripting"
	"github.com/elysion/engine/internal/system"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := "config/engine.toml"
	if p := os.Getenv("ELYSION_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	spawns, err := data.LoadSpawnTable(cfg.Data.SpawnTable)
	if err != nil {
		return fmt.Errorf("load spawn table: %w", err)
	}
	log.Info("spawn table loaded", zap.String("path", cfg.Data.SpawnTable), zap.Int("rows", spawns.Count()))

	var lua *scripting.Engine
	if cfg.Scripts.Enabled {
		lua, err = scripting.NewEngine(cfg.Scripts.Dir, log)
		if err != nil {
			return fmt.Errorf("lua engine: %w", err)
		}
		defer lua.Close()
	}

	manager := ecs.NewManager(log)
	bus := event.NewBus()

	runner := coresys.NewRunner()
	runner.Register(system.NewDispatchSystem(bus))
	runner.Register(system.NewSpawnSystem(manager, spawns, lua, bus, log))
	runner.Register(system.NewUpdateSystem(manager))
	runner.Register(system.NewDrawSystem(manager))
	runner.Register(system.NewRefreshSystem(manager, bus))
	runner.Register(system.NewStatsSystem(manager, bus, log, cfg.Engine.StatsInterval))

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(cfg.Engine.TickRate)
	defer ticker.Stop()

	log.Info("engine loop started",
		zap.Duration("tick_rate", cfg.Engine.TickRate),
		zap.Int("max_frames", cfg.Engine.MaxFrames))

	frames := 0
	for {
		select {
		case <-ticker.C:
			runner.Tick(cfg.Engine.TickRate)
			frames++
			if cfg.Engine.MaxFrames > 0 && frames >= cfg.Engine.MaxFrames {
				log.Info("frame limit reached", zap.Int("frames", frames))
				return nil
			}
		case sig := <-shutdownCh:
			log.Info("shutdown signal received", zap.String("signal", sig.String()))
			return nil
		}
	}
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
