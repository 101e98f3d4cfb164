package physics

import (
	"errors"
	"fmt"
	"math"

	"github.com/lixenwraith/maze-collapse/core"
	"github.com/lixenwraith/maze-collapse/vmath"
)

var (
	ErrInvalidBody = errors.New("invalid body spec")
	ErrUnknownBody = errors.New("unknown body")
)

// BodyID identifies a body inside one World. Zero is never assigned.
type BodyID int

type Shape uint8

const (
	ShapeRect Shape = iota
	ShapeCircle
)

func (s Shape) String() string {
	if s == ShapeCircle {
		return "circle"
	}
	return "rect"
}

// BodySpec describes a body to create. Rectangles use Width/Height, circles use Radius.
// X, Y is the center in world units.
type BodySpec struct {
	Shape         Shape
	X, Y          float64
	Width, Height float64
	Radius        float64
	Static        bool
	Label         string
}

func (s BodySpec) validate() error {
	for _, v := range []float64{s.X, s.Y, s.Width, s.Height, s.Radius} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite value in %q", ErrInvalidBody, s.Label)
		}
	}
	switch s.Shape {
	case ShapeRect:
		if s.Width <= 0 || s.Height <= 0 {
			return fmt.Errorf("%w: rect %q has size %vx%v", ErrInvalidBody, s.Label, s.Width, s.Height)
		}
	case ShapeCircle:
		if s.Radius <= 0 {
			return fmt.Errorf("%w: circle %q has radius %v", ErrInvalidBody, s.Label, s.Radius)
		}
	default:
		return fmt.Errorf("%w: unknown shape %d", ErrInvalidBody, s.Shape)
	}
	return nil
}

// Body is a rigid, non-rotating body
type Body struct {
	ID    BodyID
	Label string
	Shape Shape

	HalfW, HalfH int64 // Q32.32, for circles both equal Radius
	Radius       int64 // Q32.32, circles only

	Static bool
	Added  bool

	core.Kinetic
}

func newBody(id BodyID, s BodySpec) *Body {
	b := &Body{
		ID:     id,
		Label:  s.Label,
		Shape:  s.Shape,
		Static: s.Static,
	}
	b.PreciseX = vmath.FromFloat(s.X)
	b.PreciseY = vmath.FromFloat(s.Y)

	if s.Shape == ShapeCircle {
		b.Radius = vmath.FromFloat(s.Radius)
		b.HalfW, b.HalfH = b.Radius, b.Radius
	} else {
		b.HalfW = vmath.FromFloat(s.Width / 2)
		b.HalfH = vmath.FromFloat(s.Height / 2)
	}
	return b
}

// Center returns the body center in world units
func (b *Body) Center() (x, y float64) {
	return vmath.ToFloat(b.PreciseX), vmath.ToFloat(b.PreciseY)
}

// Size returns the bounding box size in world units
func (b *Body) Size() (w, h float64) {
	return vmath.ToFloat(b.HalfW) * 2, vmath.ToFloat(b.HalfH) * 2
}

// Bounds returns the axis-aligned bounding box in Q32.32
func (b *Body) Bounds() (minX, minY, maxX, maxY int64) {
	return b.PreciseX - b.HalfW, b.PreciseY - b.HalfH, b.PreciseX + b.HalfW, b.PreciseY + b.HalfH
}

// Pair is an unordered body pair, normalized so A < B
type Pair struct {
	A, B BodyID
}

func MakePair(a, b BodyID) Pair {
	if b < a {
		a, b = b, a
	}
	return Pair{A: a, B: b}
}
