package main

import (
	"io"
	"log"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/maze-collapse/config"
	"github.com/lixenwraith/maze-collapse/engine"
	"github.com/lixenwraith/maze-collapse/game"
	"github.com/lixenwraith/maze-collapse/render"
)

type countingChime struct{ plays int }

func (c *countingChime) Play()  { c.plays++ }
func (c *countingChime) Close() {}

func newTestApp(t *testing.T, cfg config.Config) (*app, *engine.MockTimeProvider, *countingChime) {
	t.Helper()
	clock := engine.NewMockTimeProvider(time.Unix(0, 0))
	chime := &countingChime{}
	a, err := newApp(cfg, engine.NewScheduler(clock), chime, log.New(io.Discard, "", 0))
	if err != nil {
		t.Fatalf("newApp: %v", err)
	}
	return a, clock, chime
}

func TestAppBuildsConfiguredMaze(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 1234
	a, _, _ := newTestApp(t, cfg)

	if a.maze.Seed != 1234 {
		t.Errorf("seed = %d, want 1234", a.maze.Seed)
	}
	if got, want := len(a.world.Walls()), a.maze.Grid.ClosedCount(); got != want {
		t.Errorf("walls = %d, want %d", got, want)
	}
	// 4 boundaries + walls + goal + player
	if got, want := len(a.phys.Bodies()), 4+a.maze.Grid.ClosedCount()+2; got != want {
		t.Errorf("bodies = %d, want %d", got, want)
	}
}

func TestAppRegenerate(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 1
	a, _, _ := newTestApp(t, cfg)
	oldWorld, oldPhys := a.world, a.phys

	a.regenerate()

	if a.world == oldWorld || a.phys == oldPhys {
		t.Fatal("regenerate kept the old world")
	}
	if a.maze.Seed == 1 {
		t.Error("regenerate reused the configured seed")
	}
	if a.world.Phase() != game.PhasePlaying {
		t.Errorf("phase = %v", a.world.Phase())
	}
}

func TestAppWinChimeAndMute(t *testing.T) {
	cfg := config.Default()
	cfg.Rows, cfg.Cols = 1, 1
	cfg.Seed = 3

	// Player and goal share the only cell, so the first step collides them
	a, clock, chime := newTestApp(t, cfg)
	loop := engine.NewLoop(a, a, a.sched, clock, cfg.TickInterval)
	loop.Step()

	if a.world.Phase() != game.PhaseWon {
		t.Fatalf("phase = %v, want won", a.world.Phase())
	}
	if chime.plays != 1 {
		t.Errorf("chime played %d times, want 1", chime.plays)
	}

	a.toggleMute()
	a.regenerate()
	loop.Step()
	if a.world.Phase() != game.PhaseWon {
		t.Fatalf("phase after regenerate = %v, want won", a.world.Phase())
	}
	if chime.plays != 1 {
		t.Errorf("muted chime played, total %d", chime.plays)
	}
}

func TestAppRender(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(60, 31)

	cfg := config.Default()
	cfg.Seed = 9
	a, _, _ := newTestApp(t, cfg)
	a.renderer = render.NewTerminalRenderer(screen)
	a.render()

	player, _ := a.phys.Body(a.world.Player())
	px, py := player.Center()
	x, y := int(px*60/600), int(py*30/600)
	if r, _, _, _ := screen.GetContent(x, y); r != '●' {
		t.Errorf("player cell (%d,%d) = %q", x, y, r)
	}
}

var _ engine.Stepper = (*app)(nil)
var _ engine.CollisionHandler = (*app)(nil)
