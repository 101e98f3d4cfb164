package game

import (
	"errors"
	"fmt"
	"io"
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/maze-collapse/engine"
	"github.com/lixenwraith/maze-collapse/physics"
)

var ErrEngineSetup = errors.New("engine rejected world setup")

// Engine is the physics collaborator. *physics.World satisfies it.
type Engine interface {
	CreateBody(spec physics.BodySpec) (physics.BodyID, error)
	Add(ids ...physics.BodyID) error
	Velocity(id physics.BodyID) (vx, vy float64)
	SetVelocity(id physics.BodyID, vx, vy float64)
	SetStatic(id physics.BodyID, static bool)
	Gravity() (gx, gy float64)
	SetGravity(gx, gy float64)
}

var _ Engine = (*physics.World)(nil)

const (
	DefaultImpulseStep     = 300.0                  // units/s added per keypress
	DefaultCollapseGravity = 1000.0                 // units/s² applied on win
	DefaultCollapseDelay   = 100 * time.Millisecond // gravity stays on this long
)

// World binds a materialized layout to an engine and owns the win state machine.
// All methods except Phase must be called from the goroutine driving the engine.
type World struct {
	eng    Engine
	sched  *engine.Scheduler
	logger *log.Logger

	descs []Descriptor // Layout order, Static tracks engine state
	ids   []physics.BodyID
	index map[physics.BodyID]int

	player physics.BodyID
	goal   physics.BodyID
	walls  []physics.BodyID // Interior walls only

	impulseStep     float64
	collapseGravity float64
	collapseDelay   time.Duration

	phase     atomic.Uint32
	resetTask engine.TaskID
	observers []func(WinEvent)
}

type Option func(*World)

// WithImpulseStep sets the velocity change per directional input
func WithImpulseStep(step float64) Option {
	return func(w *World) { w.impulseStep = step }
}

// WithCollapse sets the downward gravity applied on win and how long it lasts
func WithCollapse(gravity float64, delay time.Duration) Option {
	return func(w *World) {
		w.collapseGravity = gravity
		w.collapseDelay = delay
	}
}

func WithLogger(l *log.Logger) Option {
	return func(w *World) {
		if l != nil {
			w.logger = l
		}
	}
}

// OnWin registers an observer run once after the collapse has been triggered
func OnWin(fn func(WinEvent)) Option {
	return func(w *World) { w.observers = append(w.observers, fn) }
}

// NewWorld creates every body of the layout and adds them to the engine in one batch.
// Any engine failure aborts construction and nothing is added.
func NewWorld(eng Engine, layout Layout, sched *engine.Scheduler, opts ...Option) (*World, error) {
	w := &World{
		eng:             eng,
		sched:           sched,
		logger:          log.New(io.Discard, "", 0),
		descs:           make([]Descriptor, len(layout.Descriptors)),
		ids:             make([]physics.BodyID, 0, len(layout.Descriptors)),
		index:           make(map[physics.BodyID]int, len(layout.Descriptors)),
		impulseStep:     DefaultImpulseStep,
		collapseGravity: DefaultCollapseGravity,
		collapseDelay:   DefaultCollapseDelay,
	}
	for _, opt := range opts {
		opt(w)
	}
	copy(w.descs, layout.Descriptors)

	var havePlayer, haveGoal bool
	for i, d := range w.descs {
		id, err := eng.CreateBody(d.Spec())
		if err != nil {
			return nil, fmt.Errorf("%w: create %s #%d: %w", ErrEngineSetup, d.Tag, i, err)
		}
		if _, dup := w.index[id]; dup {
			return nil, fmt.Errorf("%w: engine reused body id %v", ErrEngineSetup, id)
		}
		w.ids = append(w.ids, id)
		w.index[id] = i

		switch d.Tag {
		case TagPlayer:
			w.player, havePlayer = id, true
		case TagGoal:
			w.goal, haveGoal = id, true
		case TagInnerWall:
			w.walls = append(w.walls, id)
		}
	}

	if !havePlayer || !haveGoal {
		return nil, fmt.Errorf("%w: layout has no player or goal", ErrEngineSetup)
	}

	if err := eng.Add(w.ids...); err != nil {
		return nil, fmt.Errorf("%w: add: %w", ErrEngineSetup, err)
	}

	w.phase.Store(uint32(PhasePlaying))
	w.logger.Printf("[GAME] world ready: %d bodies, %d interior walls", len(w.ids), len(w.walls))
	return w, nil
}

// ApplyImpulse adds one impulse step to the player velocity along dir
func (w *World) ApplyImpulse(dir Direction) {
	dx, dy := dir.Vector()
	vx, vy := w.eng.Velocity(w.player)
	w.eng.SetVelocity(w.player, vx+dx*w.impulseStep, vy+dy*w.impulseStep)
}

// HandleCollisions feeds one tick's collision-start pairs to the win state machine
func (w *World) HandleCollisions(pairs []physics.Pair) {
	for _, p := range pairs {
		a, okA := w.tag(p.A)
		b, okB := w.tag(p.B)
		if !okA || !okB {
			continue
		}
		if isWinPair(a, b) {
			w.win()
		}
	}
}

func (w *World) tag(id physics.BodyID) (Tag, bool) {
	i, ok := w.index[id]
	if !ok {
		return "", false
	}
	return w.descs[i].Tag, true
}

func (w *World) Phase() Phase {
	return Phase(w.phase.Load())
}

func (w *World) Player() physics.BodyID { return w.player }
func (w *World) Goal() physics.BodyID   { return w.goal }

// Walls returns the interior wall bodies in layout order
func (w *World) Walls() []physics.BodyID {
	out := make([]physics.BodyID, len(w.walls))
	copy(out, w.walls)
	return out
}

// Body returns the descriptor a body was created from, with its current static flag
func (w *World) Body(id physics.BodyID) (Descriptor, bool) {
	i, ok := w.index[id]
	if !ok {
		return Descriptor{}, false
	}
	return w.descs[i], true
}

// Close cancels the pending gravity reset, if any. The world must not be used afterwards.
func (w *World) Close() {
	if w.resetTask != 0 {
		w.sched.Cancel(w.resetTask)
		w.resetTask = 0
	}
}
