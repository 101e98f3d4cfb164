package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if cfg.Rows != 6 || cfg.Cols != 6 || cfg.Unit != 100 {
		t.Errorf("default grid = %dx%d unit %v", cfg.Rows, cfg.Cols, cfg.Unit)
	}
	if cfg.CollapseDelay != 100*time.Millisecond {
		t.Errorf("collapse delay = %v", cfg.CollapseDelay)
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeFile(t, "maze.yaml", `
rows: 10
cols: 12
seed: 7
collapse_delay: 250ms
mute: true
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Rows != 10 || cfg.Cols != 12 || cfg.Seed != 7 || !cfg.Mute {
		t.Errorf("loaded = %+v", cfg)
	}
	if cfg.CollapseDelay != 250*time.Millisecond {
		t.Errorf("collapse delay = %v, want 250ms", cfg.CollapseDelay)
	}
	if cfg.Unit != 100 || cfg.InnerWall != 3 {
		t.Errorf("defaults lost: unit %v inner %v", cfg.Unit, cfg.InnerWall)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: err = %v", err)
	}
	bad := writeFile(t, "bad.yaml", "rows: [1, 2\n")
	if _, err := Load(bad); err == nil {
		t.Error("malformed yaml accepted")
	}
}

func TestApplyEnv(t *testing.T) {
	dotenv := writeFile(t, ".env", "MAZE_ROWS=9\nMAZE_UNIT=40\n")
	t.Setenv(EnvCols, "4")
	t.Setenv(EnvSeed, "-12")
	// Process environment wins over the .env file
	t.Setenv(EnvRows, "3")
	// Registers cleanup for the variable the .env file sets
	t.Setenv(EnvUnit, "")
	os.Unsetenv(EnvUnit)

	cfg := Default()
	if err := cfg.ApplyEnv(dotenv); err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}
	if cfg.Rows != 3 || cfg.Cols != 4 || cfg.Seed != -12 || cfg.Unit != 40 {
		t.Errorf("after env: rows %d cols %d seed %d unit %v", cfg.Rows, cfg.Cols, cfg.Seed, cfg.Unit)
	}
}

func TestApplyEnvMissingFile(t *testing.T) {
	cfg := Default()
	if err := cfg.ApplyEnv(filepath.Join(t.TempDir(), ".env")); err != nil {
		t.Fatalf("missing .env: %v", err)
	}
	if cfg != Default() {
		t.Errorf("config changed without env: %+v", cfg)
	}
}

func TestApplyEnvRejectsGarbage(t *testing.T) {
	for _, key := range []string{EnvRows, EnvCols, EnvSeed, EnvUnit, EnvMute} {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, "not-a-number")
			cfg := Default()
			if err := cfg.ApplyEnv(filepath.Join(t.TempDir(), ".env")); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("err = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		mut  func(*Config)
	}{
		{"zero rows", func(c *Config) { c.Rows = 0 }},
		{"negative cols", func(c *Config) { c.Cols = -3 }},
		{"zero unit", func(c *Config) { c.Unit = 0 }},
		{"zero inner wall", func(c *Config) { c.InnerWall = 0 }},
		{"negative outer wall", func(c *Config) { c.OuterWall = -1 }},
		{"goal fraction", func(c *Config) { c.GoalFraction = 0 }},
		{"player fraction", func(c *Config) { c.PlayerFraction = 1 }},
		{"zero tick", func(c *Config) { c.TickInterval = 0 }},
		{"negative delay", func(c *Config) { c.CollapseDelay = -time.Second }},
		{"negative max speed", func(c *Config) { c.MaxSpeed = -1 }},
		{"uncapped max speed", func(c *Config) { c.MaxSpeed = 0 }},
		{"infinite max speed", func(c *Config) { c.MaxSpeed = math.Inf(1) }},
		{"max speed tunnels through walls", func(c *Config) { c.MaxSpeed = 2000 }},
		{"zero collapse gravity", func(c *Config) { c.CollapseGravity = 0 }},
		{"upward collapse gravity", func(c *Config) { c.CollapseGravity = -1000 }},
		{"infinite collapse gravity", func(c *Config) { c.CollapseGravity = math.Inf(1) }},
		{"NaN collapse gravity", func(c *Config) { c.CollapseGravity = math.NaN() }},
		{"zero impulse", func(c *Config) { c.ImpulseStep = 0 }},
		{"infinite impulse", func(c *Config) { c.ImpulseStep = math.Inf(-1) }},
		{"NaN impulse", func(c *Config) { c.ImpulseStep = math.NaN() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mut(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}
