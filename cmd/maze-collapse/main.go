package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/maze-collapse/audio"
	"github.com/lixenwraith/maze-collapse/core"
	"github.com/lixenwraith/maze-collapse/engine"
	"github.com/lixenwraith/maze-collapse/input"
	"github.com/lixenwraith/maze-collapse/render"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "maze-collapse: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	opts, err := parseOptions(args, os.Stderr)
	if err != nil {
		return err
	}

	logger, logCloser, err := setupLogging(opts.logPath)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer logCloser.Close()

	var chime audio.Chime = audio.NopChime{}
	if !opts.cfg.Mute {
		// Non-fatal, game can run without sound
		if c, err := audio.NewBeepChime(); err == nil {
			chime = c
		} else {
			logger.Printf("[APP] audio unavailable: %v", err)
		}
	}
	defer chime.Close()

	clock := engine.NewMonotonicTimeProvider()
	sched := engine.NewScheduler(clock)

	a, err := newApp(opts.cfg, sched, chime, logger)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	// Loop goroutine panics must restore the terminal before the stack is printed
	core.SetCrashHandler(func(r any) {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "\r\n\x1b[31mMAZE-COLLAPSE CRASHED: %v\x1b[0m\r\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
		os.Exit(1)
	})

	a.renderer = render.NewTerminalRenderer(screen)

	loop := engine.NewLoop(a, a, sched, clock, opts.cfg.TickInterval,
		engine.WithRender(a.render),
		engine.WithLoopLogger(logger),
	)
	loop.Start()
	defer loop.Stop()

	keys := input.DefaultKeyTable()
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return nil
		}

		intent := keys.Translate(ev)
		switch intent.Type {
		case input.IntentQuit:
			return nil
		case input.IntentMove:
			dir := intent.Direction
			loop.Post(func() { a.world.ApplyImpulse(dir) })
		case input.IntentRegenerate:
			loop.Post(a.regenerate)
		case input.IntentToggleMute:
			loop.Post(a.toggleMute)
		case input.IntentResize:
			screen.Sync()
		}
	}
}
