package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/maze-collapse/game"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds the game settings. Distances are world units, rates are per second.
type Config struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`

	Unit           float64 `yaml:"unit"`            // Cell side
	InnerWall      float64 `yaml:"inner_wall"`      // Interior wall thickness
	OuterWall      float64 `yaml:"outer_wall"`      // Boundary wall thickness
	GoalFraction   float64 `yaml:"goal_fraction"`   // Goal side per cell side
	PlayerFraction float64 `yaml:"player_fraction"` // Player radius per cell side

	Seed int64 `yaml:"seed"` // 0 = time-based

	ImpulseStep     float64       `yaml:"impulse_step"`
	CollapseGravity float64       `yaml:"collapse_gravity"`
	CollapseDelay   time.Duration `yaml:"collapse_delay"`
	TickInterval    time.Duration `yaml:"tick_interval"`
	MaxSpeed        float64       `yaml:"max_speed"` // Per tick travel must stay below the player radius

	Mute bool `yaml:"mute"`
}

// Default returns the stock 6x6 maze in a 600x600 world
func Default() Config {
	return Config{
		Rows:            6,
		Cols:            6,
		Unit:            100,
		InnerWall:       3,
		OuterWall:       5,
		GoalFraction:    1.0 / 3.0,
		PlayerFraction:  0.3,
		ImpulseStep:     game.DefaultImpulseStep,
		CollapseGravity: game.DefaultCollapseGravity,
		CollapseDelay:   game.DefaultCollapseDelay,
		TickInterval:    16 * time.Millisecond,
		MaxSpeed:        1500,
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep their default.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Environment overrides, read after an optional .env file
const (
	EnvRows = "MAZE_ROWS"
	EnvCols = "MAZE_COLS"
	EnvSeed = "MAZE_SEED"
	EnvUnit = "MAZE_UNIT"
	EnvMute = "MAZE_MUTE"
)

// ApplyEnv loads the given .env files (default ".env"; a missing file is not an error) and
// overlays any MAZE_* variables set in the process environment
func (c *Config) ApplyEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}

	if err := envInt(EnvRows, &c.Rows); err != nil {
		return err
	}
	if err := envInt(EnvCols, &c.Cols); err != nil {
		return err
	}
	if v, ok := os.LookupEnv(EnvSeed); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %w", ErrInvalidConfig, EnvSeed, v, err)
		}
		c.Seed = seed
	}
	if v, ok := os.LookupEnv(EnvUnit); ok {
		unit, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %w", ErrInvalidConfig, EnvUnit, v, err)
		}
		c.Unit = unit
	}
	if v, ok := os.LookupEnv(EnvMute); ok {
		mute, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %w", ErrInvalidConfig, EnvMute, v, err)
		}
		c.Mute = mute
	}
	return nil
}

func envInt(key string, dst *int) error {
	v, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%w: %s=%q: %w", ErrInvalidConfig, key, v, err)
	}
	*dst = n
	return nil
}

// Validate rejects settings that cannot produce a playable maze
func (c Config) Validate() error {
	if c.Rows < 1 || c.Cols < 1 {
		return fmt.Errorf("%w: grid %dx%d, need at least 1x1", ErrInvalidConfig, c.Rows, c.Cols)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("%w: tick interval %v", ErrInvalidConfig, c.TickInterval)
	}
	if c.CollapseDelay < 0 {
		return fmt.Errorf("%w: collapse delay %v", ErrInvalidConfig, c.CollapseDelay)
	}
	if !(c.ImpulseStep > 0) || math.IsInf(c.ImpulseStep, 0) {
		return fmt.Errorf("%w: impulse step %v", ErrInvalidConfig, c.ImpulseStep)
	}
	// Positive y is downward: the collapse must pull walls down
	if !(c.CollapseGravity > 0) || math.IsInf(c.CollapseGravity, 0) {
		return fmt.Errorf("%w: collapse gravity %v", ErrInvalidConfig, c.CollapseGravity)
	}
	if !(c.MaxSpeed > 0) || math.IsInf(c.MaxSpeed, 0) {
		return fmt.Errorf("%w: max speed %v", ErrInvalidConfig, c.MaxSpeed)
	}
	// One step may not carry the player past an interior wall
	if limit := c.PlayerFraction*c.Unit + c.InnerWall/2; c.MaxSpeed*c.TickInterval.Seconds() > limit {
		return fmt.Errorf("%w: max speed %v moves %.1f units per tick, walls stop at most %.1f",
			ErrInvalidConfig, c.MaxSpeed, c.MaxSpeed*c.TickInterval.Seconds(), limit)
	}
	if err := c.Dimensions().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Dimensions returns the layout sizing for square cells of side Unit
func (c Config) Dimensions() game.Dimensions {
	return game.Dimensions{
		UnitX:          c.Unit,
		UnitY:          c.Unit,
		InnerWall:      c.InnerWall,
		OuterWall:      c.OuterWall,
		GoalFraction:   c.GoalFraction,
		PlayerFraction: c.PlayerFraction,
	}
}
