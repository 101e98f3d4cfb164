package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/lixenwraith/maze-collapse/config"
)

type options struct {
	cfg     config.Config
	logPath string
}

// parseOptions layers settings: defaults, YAML file, .env and MAZE_* variables, then flags
func parseOptions(args []string, stderr io.Writer) (options, error) {
	fs := flag.NewFlagSet("maze-collapse", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "YAML config file")
	envPath := fs.String("env", ".env", "dotenv file with MAZE_* overrides")
	rows := fs.Int("rows", 0, "maze rows")
	cols := fs.Int("cols", 0, "maze columns")
	seed := fs.Int64("seed", 0, "maze seed (0 = random)")
	mute := fs.Bool("mute", false, "disable the win chime")
	logPath := fs.String("log", "", "write debug log to this file")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return options{}, err
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(*envPath); err != nil {
		return options{}, err
	}

	// Only flags given explicitly override
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rows":
			cfg.Rows = *rows
		case "cols":
			cfg.Cols = *cols
		case "seed":
			cfg.Seed = *seed
		case "mute":
			cfg.Mute = *mute
		}
	})

	if err := cfg.Validate(); err != nil {
		return options{}, fmt.Errorf("config: %w", err)
	}
	return options{cfg: cfg, logPath: *logPath}, nil
}
