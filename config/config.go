package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/parameter"
	"gopkg.in/yaml.v3"
)

// ErrInvalid reports a configuration value outside its allowed range
var ErrInvalid = errors.New("invalid config")

// Config is the on-disk game configuration; zero fields in the file keep their defaults
type Config struct {
	Board  BoardConfig       `yaml:"board"`
	Tick   time.Duration     `yaml:"tick"`
	Food   FoodConfig        `yaml:"food"`
	Growth string            `yaml:"growth"`
	Seed   int64             `yaml:"seed"` // 0 seeds from the clock
	Glyphs string            `yaml:"glyphs"`
	Sound  bool              `yaml:"sound"`
	Keys   map[string]string `yaml:"keys"`
}

type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type FoodConfig struct {
	Max          int `yaml:"max"`
	PerTick      int `yaml:"per_tick"`
	SpawnRetries int `yaml:"spawn_retries"`
}

// Default returns the reference configuration
func Default() Config {
	return Config{
		Board: BoardConfig{
			Width:  parameter.BoardWidth,
			Height: parameter.BoardHeight,
		},
		Tick: parameter.TickInterval,
		Food: FoodConfig{
			Max:          parameter.FoodMax,
			PerTick:      parameter.FoodPerTick,
			SpawnRetries: parameter.FoodSpawnRetries,
		},
		Growth: engine.GrowthImmediate.String(),
		Glyphs: "box",
		Sound:  true,
	}
}

// Load reads a YAML file over the defaults and validates the result
func Load(path string) (Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks ranges and enumerations
func (c Config) Validate() error {
	if c.Board.Width < 1 || c.Board.Height < 1 {
		return fmt.Errorf("%w: board %dx%d", ErrInvalid, c.Board.Width, c.Board.Height)
	}
	if c.Tick < parameter.MinTickInterval {
		return fmt.Errorf("%w: tick %s below %s", ErrInvalid, c.Tick, parameter.MinTickInterval)
	}
	if c.Food.Max < 0 || c.Food.PerTick < 0 || c.Food.SpawnRetries < 0 {
		return fmt.Errorf("%w: negative food setting", ErrInvalid)
	}
	if _, ok := engine.ParseGrowthPolicy(c.Growth); !ok {
		return fmt.Errorf("%w: growth %q (want immediate or digest)", ErrInvalid, c.Growth)
	}
	switch c.Glyphs {
	case "box", "ascii":
	default:
		return fmt.Errorf("%w: glyphs %q (want box or ascii)", ErrInvalid, c.Glyphs)
	}
	return nil
}

// Engine converts to simulation parameters; call after Validate
func (c Config) Engine() engine.Config {
	growth, _ := engine.ParseGrowthPolicy(c.Growth)
	return engine.Config{
		Width:        c.Board.Width,
		Height:       c.Board.Height,
		MaxFood:      c.Food.Max,
		FoodPerTick:  c.Food.PerTick,
		SpawnRetries: c.Food.SpawnRetries,
		Growth:       growth,
	}
}
