package maze

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

var (
	ErrGridNotFresh     = errors.New("grid already carved")
	ErrStartOutOfBounds = errors.New("start cell outside grid")
)

// Source is the randomness consumed by the carver; *rand.Rand satisfies it
type Source interface {
	Intn(n int) int
}

type Config struct {
	Rows, Cols int

	Start *Cell // Optional (nil = uniform random cell)
	Seed  int64 // Optional (0 = Random)
}

type Result struct {
	Grid        *Grid
	Start       Cell // Carving origin
	Entry, Exit Cell // Player and goal cells, fixed to opposite corners
	Seed        int64

	SolutionPath []Cell
}

// Generate creates a perfect maze
func Generate(cfg Config) (Result, error) {
	grid, err := NewGrid(cfg.Rows, cfg.Cols)
	if err != nil {
		return Result{}, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	// Start is drawn even when overridden so the shuffle stream does not depend on it
	start := Cell{Row: rng.Intn(cfg.Rows), Col: rng.Intn(cfg.Cols)}
	if cfg.Start != nil {
		start = *cfg.Start
	}

	if err := Carve(grid, start, rng); err != nil {
		return Result{}, err
	}

	entry := Cell{0, 0}
	exit := Cell{cfg.Rows - 1, cfg.Cols - 1}

	return Result{
		Grid:         grid,
		Start:        start,
		Entry:        entry,
		Exit:         exit,
		Seed:         seed,
		SolutionPath: Solve(grid, entry, exit),
	}, nil
}

// frame is one level of the depth-first walk: a cell and its shuffled neighbors still to try
type frame struct {
	cell      Cell
	neighbors []Neighbor
	next      int
}

// Carve runs a randomized depth-first walk from start, opening a passage each time it enters
// an unvisited cell. The explicit stack reproduces the recursive visiting order.
func Carve(g *Grid, start Cell, rng Source) error {
	if !g.InBounds(start) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d", ErrStartOutOfBounds, start.Row, start.Col, g.Rows, g.Cols)
	}
	if g.VisitedCount() != 0 || g.OpenCount() != 0 {
		return ErrGridNotFresh
	}

	g.MarkVisited(start)
	stack := []frame{{cell: start, neighbors: shuffle(g.Neighbors(start), rng)}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		if top.next >= len(top.neighbors) {
			stack = stack[:len(stack)-1]
			continue
		}

		n := top.neighbors[top.next]
		top.next++

		if g.Visited(n.Cell) {
			continue
		}

		g.open(top.cell, n.Dir)
		g.MarkVisited(n.Cell)
		// top is invalidated by append
		stack = append(stack, frame{cell: n.Cell, neighbors: shuffle(g.Neighbors(n.Cell), rng)})
	}

	return nil
}

// shuffle permutes list in place, walking a counter down from the end and swapping the
// counter slot with a uniformly chosen slot below it
func shuffle(list []Neighbor, rng Source) []Neighbor {
	for counter := len(list); counter > 0; {
		index := rng.Intn(counter)
		counter--
		list[counter], list[index] = list[index], list[counter]
	}
	return list
}
