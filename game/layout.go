package game

import (
	"errors"
	"fmt"
	"math"

	"github.com/lixenwraith/maze-collapse/maze"
	"github.com/lixenwraith/maze-collapse/physics"
)

var ErrInvalidDimensions = errors.New("invalid layout dimensions")

// Dimensions sizes the world built from a grid. Units are world units.
type Dimensions struct {
	UnitX, UnitY float64 // Cell size per axis
	InnerWall    float64 // Interior wall thickness
	OuterWall    float64 // Boundary wall thickness

	GoalFraction   float64 // Goal side as a fraction of the cell
	PlayerFraction float64 // Player radius as a fraction of the smaller cell side
}

// DefaultDimensions matches a 600x600 world over 6x6 cells
func DefaultDimensions() Dimensions {
	return Dimensions{
		UnitX:          100,
		UnitY:          100,
		InnerWall:      3,
		OuterWall:      5,
		GoalFraction:   1.0 / 3.0,
		PlayerFraction: 0.3,
	}
}

func (d Dimensions) Validate() error {
	if !(d.UnitX > 0) || !(d.UnitY > 0) {
		return fmt.Errorf("%w: unit %vx%v", ErrInvalidDimensions, d.UnitX, d.UnitY)
	}
	if !(d.InnerWall > 0) || !(d.OuterWall > 0) {
		return fmt.Errorf("%w: wall thickness inner=%v outer=%v", ErrInvalidDimensions, d.InnerWall, d.OuterWall)
	}
	if !(d.GoalFraction > 0 && d.GoalFraction <= 1) {
		return fmt.Errorf("%w: goal fraction %v", ErrInvalidDimensions, d.GoalFraction)
	}
	if !(d.PlayerFraction > 0 && d.PlayerFraction <= 0.5) {
		return fmt.Errorf("%w: player fraction %v", ErrInvalidDimensions, d.PlayerFraction)
	}
	return nil
}

// Descriptor is one body to place in the world. Interior walls record the two cells they separate.
type Descriptor struct {
	Tag    Tag
	Shape  physics.Shape
	X, Y   float64 // Center
	Width  float64
	Height float64
	Radius float64 // Circles only
	Static bool

	Between [2]maze.Cell // Interior walls only
}

// Spec converts the descriptor to a physics body spec
func (d Descriptor) Spec() physics.BodySpec {
	return physics.BodySpec{
		Shape:  d.Shape,
		X:      d.X,
		Y:      d.Y,
		Width:  d.Width,
		Height: d.Height,
		Radius: d.Radius,
		Static: d.Static,
		Label:  string(d.Tag),
	}
}

// Layout is the materialized maze in emission order:
// boundaries, horizontal interior walls, vertical interior walls, goal, player
type Layout struct {
	Width, Height float64
	Rows, Cols    int
	Descriptors   []Descriptor
}

func (l Layout) filter(tag Tag) []Descriptor {
	var out []Descriptor
	for _, d := range l.Descriptors {
		if d.Tag == tag {
			out = append(out, d)
		}
	}
	return out
}

func (l Layout) InnerWalls() []Descriptor { return l.filter(TagInnerWall) }
func (l Layout) Boundaries() []Descriptor { return l.filter(TagBoundaryWall) }

func (l Layout) Goal() Descriptor {
	return l.filter(TagGoal)[0]
}

func (l Layout) Player() Descriptor {
	return l.filter(TagPlayer)[0]
}

// Materialize converts a carved grid into body descriptors. Every closed internal boundary
// becomes one interior wall centered on the shared cell edge.
func Materialize(g *maze.Grid, d Dimensions) (Layout, error) {
	if g == nil {
		return Layout{}, fmt.Errorf("%w: nil grid", ErrInvalidDimensions)
	}
	if err := d.Validate(); err != nil {
		return Layout{}, err
	}

	width := float64(g.Cols) * d.UnitX
	height := float64(g.Rows) * d.UnitY

	descs := make([]Descriptor, 0, 4+g.ClosedCount()+2)

	boundary := func(x, y, w, h float64) Descriptor {
		return Descriptor{Tag: TagBoundaryWall, Shape: physics.ShapeRect, X: x, Y: y, Width: w, Height: h, Static: true}
	}
	descs = append(descs,
		boundary(width/2, 0, width, d.OuterWall),
		boundary(width/2, height, width, d.OuterWall),
		boundary(0, height/2, d.OuterWall, height),
		boundary(width, height/2, d.OuterWall, height),
	)

	for r := 0; r < g.Rows-1; r++ {
		for c := 0; c < g.Cols; c++ {
			if g.HorizontalOpen(r, c) {
				continue
			}
			descs = append(descs, Descriptor{
				Tag:     TagInnerWall,
				Shape:   physics.ShapeRect,
				X:       float64(c)*d.UnitX + d.UnitX/2,
				Y:       float64(r)*d.UnitY + d.UnitY,
				Width:   d.UnitX,
				Height:  d.InnerWall,
				Static:  true,
				Between: [2]maze.Cell{{Row: r, Col: c}, {Row: r + 1, Col: c}},
			})
		}
	}

	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols-1; c++ {
			if g.VerticalOpen(r, c) {
				continue
			}
			descs = append(descs, Descriptor{
				Tag:     TagInnerWall,
				Shape:   physics.ShapeRect,
				X:       float64(c)*d.UnitX + d.UnitX,
				Y:       float64(r)*d.UnitY + d.UnitY/2,
				Width:   d.InnerWall,
				Height:  d.UnitY,
				Static:  true,
				Between: [2]maze.Cell{{Row: r, Col: c}, {Row: r, Col: c + 1}},
			})
		}
	}

	descs = append(descs, Descriptor{
		Tag:    TagGoal,
		Shape:  physics.ShapeRect,
		X:      width - d.UnitX/2,
		Y:      height - d.UnitY/2,
		Width:  d.UnitX * d.GoalFraction,
		Height: d.UnitY * d.GoalFraction,
		Static: true,
	})

	radius := math.Min(d.UnitX, d.UnitY) * d.PlayerFraction
	descs = append(descs, Descriptor{
		Tag:    TagPlayer,
		Shape:  physics.ShapeCircle,
		X:      d.UnitX / 2,
		Y:      d.UnitY / 2,
		Width:  radius * 2,
		Height: radius * 2,
		Radius: radius,
	})

	return Layout{
		Width:       width,
		Height:      height,
		Rows:        g.Rows,
		Cols:        g.Cols,
		Descriptors: descs,
	}, nil
}
