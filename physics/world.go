package physics

import (
	"fmt"
	"io"
	"log"
	"sort"
	"time"

	"github.com/zyedidia/generic/mapset"

	"github.com/lixenwraith/maze-collapse/vmath"
)

// contactSlop keeps resting contacts alive after push-out so a body pressed against another
// does not report a fresh collision start every other step
var contactSlop = vmath.FromFloat(0.05)

// World is a minimal rigid-body simulation: axis-aligned rectangles and circles, no rotation,
// linear gravity, push-out resolution. Not safe for concurrent use; callers serialize all
// access on the goroutine that calls Step.
type World struct {
	bodies []*Body // index = ID-1

	gravityX, gravityY int64
	maxSpeed           int64

	contacts mapset.Set[Pair]
	logger   *log.Logger
}

type Option func(*World)

// WithMaxSpeed caps dynamic body speed in world units per second (0 = uncapped).
// There is no swept collision: a body moving farther in one step than its half extent plus
// the obstacle's half thickness passes through it.
func WithMaxSpeed(v float64) Option {
	return func(w *World) { w.maxSpeed = vmath.FromFloat(v) }
}

// WithLogger routes body lifecycle logging
func WithLogger(l *log.Logger) Option {
	return func(w *World) {
		if l != nil {
			w.logger = l
		}
	}
}

func NewWorld(opts ...Option) *World {
	w := &World{
		contacts: mapset.New[Pair](),
		logger:   log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *World) get(id BodyID) *Body {
	if id <= 0 || int(id) > len(w.bodies) {
		return nil
	}
	return w.bodies[id-1]
}

// CreateBody allocates a body. It does not take part in simulation until Add.
func (w *World) CreateBody(spec BodySpec) (BodyID, error) {
	if err := spec.validate(); err != nil {
		return 0, err
	}
	id := BodyID(len(w.bodies) + 1)
	w.bodies = append(w.bodies, newBody(id, spec))
	return id, nil
}

// Add inserts bodies into the simulation. Adding an already added body is a no-op.
func (w *World) Add(ids ...BodyID) error {
	for _, id := range ids {
		if w.get(id) == nil {
			return fmt.Errorf("%w: %d", ErrUnknownBody, id)
		}
	}
	for _, id := range ids {
		w.get(id).Added = true
	}
	w.logger.Printf("[PHYSICS] added %d bodies", len(ids))
	return nil
}

// Velocity returns a body's velocity in world units per second; zero for unknown IDs
func (w *World) Velocity(id BodyID) (vx, vy float64) {
	b := w.get(id)
	if b == nil {
		return 0, 0
	}
	return vmath.ToFloat(b.VelX), vmath.ToFloat(b.VelY)
}

// SetVelocity overrides a body's velocity; ignored for unknown IDs
func (w *World) SetVelocity(id BodyID, vx, vy float64) {
	if b := w.get(id); b != nil {
		SetImpulse(&b.Kinetic, vmath.FromFloat(vx), vmath.FromFloat(vy))
	}
}

// SetStatic freezes or releases a body. Freezing clears its velocity.
func (w *World) SetStatic(id BodyID, static bool) {
	b := w.get(id)
	if b == nil {
		return
	}
	b.Static = static
	if static {
		SetImpulse(&b.Kinetic, 0, 0)
	}
}

// IsStatic reports a body's static flag
func (w *World) IsStatic(id BodyID) bool {
	b := w.get(id)
	return b != nil && b.Static
}

func (w *World) Gravity() (gx, gy float64) {
	return vmath.ToFloat(w.gravityX), vmath.ToFloat(w.gravityY)
}

func (w *World) SetGravity(gx, gy float64) {
	w.gravityX = vmath.FromFloat(gx)
	w.gravityY = vmath.FromFloat(gy)
}

// Body returns a copy of the body with the given ID
func (w *World) Body(id BodyID) (Body, bool) {
	b := w.get(id)
	if b == nil {
		return Body{}, false
	}
	return *b, true
}

// Bodies returns copies of all added bodies in ID order
func (w *World) Bodies() []Body {
	out := make([]Body, 0, len(w.bodies))
	for _, b := range w.bodies {
		if b.Added {
			out = append(out, *b)
		}
	}
	return out
}

// Step advances the simulation by dt and returns the pairs whose contact began this step,
// sorted by (A, B)
func (w *World) Step(dt time.Duration) []Pair {
	dtQ := vmath.FromFloat(dt.Seconds())

	active := make([]*Body, 0, len(w.bodies))
	for _, b := range w.bodies {
		if !b.Added {
			continue
		}
		active = append(active, b)
		if b.Static {
			continue
		}
		b.AccelX, b.AccelY = w.gravityX, w.gravityY
		Integrate(&b.Kinetic, dtQ)
		CapSpeed(&b.Kinetic, w.maxSpeed)
	}

	touching := mapset.New[Pair]()
	for _, p := range broadphase(active) {
		a, b := w.get(p.A), w.get(p.B)
		m := contact(a, b)
		if m.Depth <= -contactSlop {
			continue
		}
		touching.Put(p)
		resolve(a, b, m)
	}

	var started []Pair
	touching.Each(func(p Pair) {
		if !w.contacts.Has(p) {
			started = append(started, p)
		}
	})
	w.contacts = touching

	sort.Slice(started, func(i, j int) bool {
		if started[i].A != started[j].A {
			return started[i].A < started[j].A
		}
		return started[i].B < started[j].B
	})
	return started
}

// broadphase returns candidate pairs whose slop-expanded bounding boxes overlap, skipping
// static-static pairs. Sweep and prune along X.
func broadphase(bodies []*Body) []Pair {
	type span struct {
		minX, maxX int64
		body       *Body
	}

	spans := make([]span, len(bodies))
	for i, b := range bodies {
		minX, _, maxX, _ := b.Bounds()
		spans[i] = span{minX: minX - contactSlop, maxX: maxX + contactSlop, body: b}
	}
	sort.Slice(spans, func(i, j int) bool {
		if spans[i].minX != spans[j].minX {
			return spans[i].minX < spans[j].minX
		}
		return spans[i].body.ID < spans[j].body.ID
	})

	var pairs []Pair
	for i := range spans {
		a := spans[i].body
		_, aMinY, _, aMaxY := a.Bounds()
		for j := i + 1; j < len(spans) && spans[j].minX <= spans[i].maxX; j++ {
			b := spans[j].body
			if a.Static && b.Static {
				continue
			}
			_, bMinY, _, bMaxY := b.Bounds()
			if bMinY > aMaxY+contactSlop || aMinY > bMaxY+contactSlop {
				continue
			}
			pairs = append(pairs, MakePair(a.ID, b.ID))
		}
	}
	return pairs
}
