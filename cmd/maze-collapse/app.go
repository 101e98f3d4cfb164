package main

import (
	"fmt"
	"log"
	"time"

	"github.com/lixenwraith/maze-collapse/audio"
	"github.com/lixenwraith/maze-collapse/config"
	"github.com/lixenwraith/maze-collapse/engine"
	"github.com/lixenwraith/maze-collapse/game"
	"github.com/lixenwraith/maze-collapse/maze"
	"github.com/lixenwraith/maze-collapse/physics"
	"github.com/lixenwraith/maze-collapse/render"
)

// app owns the current maze. Everything except construction runs on the loop goroutine.
type app struct {
	cfg    config.Config
	sched  *engine.Scheduler
	chime  audio.Chime
	logger *log.Logger

	phys  *physics.World
	world *game.World
	maze  maze.Result
	muted bool

	renderer *render.TerminalRenderer
}

func newApp(cfg config.Config, sched *engine.Scheduler, chime audio.Chime, logger *log.Logger) (*app, error) {
	a := &app{
		cfg:    cfg,
		sched:  sched,
		chime:  chime,
		logger: logger,
		muted:  cfg.Mute,
	}
	if err := a.build(cfg.Seed); err != nil {
		return nil, err
	}
	return a, nil
}

// build generates and materializes a maze and binds it to a fresh physics world
func (a *app) build(seed int64) error {
	res, err := maze.Generate(maze.Config{Rows: a.cfg.Rows, Cols: a.cfg.Cols, Seed: seed})
	if err != nil {
		return fmt.Errorf("generate maze: %w", err)
	}
	layout, err := game.Materialize(res.Grid, a.cfg.Dimensions())
	if err != nil {
		return fmt.Errorf("materialize maze: %w", err)
	}

	phys := physics.NewWorld(physics.WithMaxSpeed(a.cfg.MaxSpeed), physics.WithLogger(a.logger))
	world, err := game.NewWorld(phys, layout, a.sched,
		game.WithImpulseStep(a.cfg.ImpulseStep),
		game.WithCollapse(a.cfg.CollapseGravity, a.cfg.CollapseDelay),
		game.WithLogger(a.logger),
		game.OnWin(a.onWin),
	)
	if err != nil {
		return err
	}

	if a.world != nil {
		a.world.Close()
	}
	a.sched.Clear()
	a.phys, a.world, a.maze = phys, world, res
	a.logger.Printf("[APP] maze %dx%d seed %d, solution %d cells", a.cfg.Rows, a.cfg.Cols, res.Seed, len(res.SolutionPath))
	return nil
}

// regenerate replaces the maze with a new random one; on failure the current maze stays
func (a *app) regenerate() {
	if err := a.build(0); err != nil {
		a.logger.Printf("[APP] regenerate failed: %v", err)
	}
}

func (a *app) onWin(ev game.WinEvent) {
	a.logger.Printf("[APP] won at %v, %d walls released", ev.At.Format("15:04:05.000"), ev.ReleasedWalls)
	if !a.muted {
		a.chime.Play()
	}
}

func (a *app) toggleMute() {
	a.muted = !a.muted
}

// Step and HandleCollisions follow the current maze across regenerations

func (a *app) Step(dt time.Duration) []physics.Pair {
	return a.phys.Step(dt)
}

func (a *app) HandleCollisions(pairs []physics.Pair) {
	a.world.HandleCollisions(pairs)
}

func (a *app) render() {
	if a.renderer == nil {
		return
	}
	layoutW := float64(a.cfg.Cols) * a.cfg.Unit
	layoutH := float64(a.cfg.Rows) * a.cfg.Unit
	a.renderer.RenderFrame(a.phys.Bodies(), layoutW, layoutH, render.Status{
		Phase: a.world.Phase(),
		Seed:  a.maze.Seed,
		Rows:  a.cfg.Rows,
		Cols:  a.cfg.Cols,
		Muted: a.muted,
	})
}
