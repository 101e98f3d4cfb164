package engine

import (
	"io"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/maze-collapse/core"
	"github.com/lixenwraith/maze-collapse/physics"
)

// Stepper advances a physics simulation and reports collision-start pairs
type Stepper interface {
	Step(dt time.Duration) []physics.Pair
}

// CollisionHandler consumes one tick's collision-start pairs
type CollisionHandler interface {
	HandleCollisions(pairs []physics.Pair)
}

const inputQueueSize = 64

// Loop drives the simulation on a fixed tick
// Every tick, in order: queued input, physics step, collision dispatch, due tasks, render.
// All of it runs on the loop goroutine, so the physics engine is never re-entered.
type Loop struct {
	sim       Stepper
	handler   CollisionHandler
	scheduler *Scheduler
	clock     TimeProvider
	render    func()
	logger    *log.Logger

	tickInterval     time.Duration
	nextTickDeadline time.Time

	tickCount atomic.Uint64
	input     chan func()

	// Lifecycle; a stopped loop may be started again
	mu       sync.Mutex
	running  bool
	stopChan chan struct{}
	wg       sync.WaitGroup
}

type LoopOption func(*Loop)

// WithRender registers the callback invoked at the end of every tick
func WithRender(fn func()) LoopOption {
	return func(l *Loop) { l.render = fn }
}

func WithLoopLogger(lg *log.Logger) LoopOption {
	return func(l *Loop) {
		if lg != nil {
			l.logger = lg
		}
	}
}

// NewLoop creates a loop ticking every tickInterval. The scheduler's due tasks are run with
// the loop clock's time.
func NewLoop(sim Stepper, handler CollisionHandler, scheduler *Scheduler, clock TimeProvider, tickInterval time.Duration, opts ...LoopOption) *Loop {
	l := &Loop{
		sim:          sim,
		handler:      handler,
		scheduler:    scheduler,
		clock:        clock,
		tickInterval: tickInterval,
		logger:       log.New(io.Discard, "", 0),
		input:        make(chan func(), inputQueueSize),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Post queues fn to run on the loop goroutine at the start of the next tick.
// Returns false when the queue is full and the input was dropped.
func (l *Loop) Post(fn func()) bool {
	select {
	case l.input <- fn:
		return true
	default:
		l.logger.Printf("[LOOP] input queue full, dropping input")
		return false
	}
}

// Ticks returns the number of completed ticks
func (l *Loop) Ticks() uint64 {
	return l.tickCount.Load()
}

// Step executes one tick synchronously on the caller's goroutine
func (l *Loop) Step() {
	l.drainInput()

	pairs := l.sim.Step(l.tickInterval)
	if len(pairs) > 0 {
		l.handler.HandleCollisions(pairs)
	}

	l.scheduler.RunDue(l.clock.Now())

	if l.render != nil {
		l.render()
	}
	l.tickCount.Add(1)
}

func (l *Loop) drainInput() {
	for {
		select {
		case fn := <-l.input:
			fn()
		default:
			return
		}
	}
}

// Start begins the tick loop on its own goroutine. No-op while running.
func (l *Loop) Start() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.running {
		return
	}
	l.running = true
	stop := make(chan struct{})
	l.stopChan = stop
	l.wg.Add(1)
	core.Go(func() { l.run(stop) })
}

// Stop halts the tick loop and waits for the current tick to finish. No-op while stopped.
func (l *Loop) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.running {
		return
	}
	l.running = false
	close(l.stopChan)
	l.wg.Wait()
}

func (l *Loop) run(stop <-chan struct{}) {
	defer l.wg.Done()

	l.nextTickDeadline = l.clock.Now().Add(l.tickInterval)

	timer := time.NewTimer(l.tickInterval)
	defer timer.Stop()

	for {
		select {
		case <-stop:
			return
		case <-timer.C:
		}

		l.Step()

		now := l.clock.Now()
		l.nextTickDeadline = l.nextTickDeadline.Add(l.tickInterval)

		// Drop missed ticks instead of bursting to catch up
		if now.Sub(l.nextTickDeadline) > l.tickInterval*2 {
			l.logger.Printf("[LOOP] tick %d behind schedule by %v, resyncing", l.Ticks(), now.Sub(l.nextTickDeadline))
			l.nextTickDeadline = now.Add(l.tickInterval)
		}

		sleep := l.nextTickDeadline.Sub(now)
		if sleep < 0 {
			sleep = 0
		}
		timer.Reset(sleep)
	}
}
