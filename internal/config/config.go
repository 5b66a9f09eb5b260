package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Engine  EngineConfig  `toml:"engine"`
	Scripts ScriptsConfig `toml:"scripts"`
	Data    DataConfig    `toml:"data"`
	Logging LoggingConfig `toml:"logging"`
}

type EngineConfig struct {
	TickRate      time.Duration `toml:"tick_rate"`
	MaxFrames     int           `toml:"max_frames"` // 0 runs until interrupted
	StatsInterval int           `toml:"stats_interval"`
}

type ScriptsConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

type DataConfig struct {
	SpawnTable string `toml:"spawn_table"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Engine: EngineConfig{
			TickRate:      50 * time.Millisecond,
			MaxFrames:     0,
			StatsInterval: 100,
		},
		Scripts: ScriptsConfig{
			Enabled: true,
			Dir:     "scripts",
		},
		Data: DataConfig{
			SpawnTable: "data/spawns.yaml",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
