package maze

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidDimensions = errors.New("maze dimensions must be at least 1x1")

// Direction tags a neighbor relative to the current cell. The constant order is the carving
// neighbor order and differs from game.Direction.
type Direction uint8

const (
	Up Direction = iota
	Right
	Down
	Left
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Delta returns the row/column offset of the direction
func (d Direction) Delta() (dr, dc int) {
	switch d {
	case Up:
		return -1, 0
	case Right:
		return 0, 1
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	}
	return 0, 0
}

// Cell addresses a grid cell by row and column
type Cell struct {
	Row, Col int
}

// Step returns the adjacent cell in direction d, without bounds checking
func (c Cell) Step(d Direction) Cell {
	dr, dc := d.Delta()
	return Cell{Row: c.Row + dr, Col: c.Col + dc}
}

// Neighbor is an in-bounds adjacent cell with its relative direction
type Neighbor struct {
	Cell Cell
	Dir  Direction
}

// Grid is the maze topology: visited flags plus open flags for every internal boundary.
// vertOpen[r][c] is the passage between (r,c) and (r,c+1).
// horizOpen[r][c] is the passage between (r,c) and (r+1,c).
type Grid struct {
	Rows, Cols int

	visited   [][]bool
	vertOpen  [][]bool
	horizOpen [][]bool
}

// NewGrid allocates an empty grid with every cell unvisited and every passage closed
func NewGrid(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, rows, cols)
	}

	g := &Grid{
		Rows:      rows,
		Cols:      cols,
		visited:   makeMatrix(rows, cols),
		vertOpen:  makeMatrix(rows, cols-1),
		horizOpen: makeMatrix(rows-1, cols),
	}
	return g, nil
}

func makeMatrix(rows, cols int) [][]bool {
	m := make([][]bool, rows)
	for i := range m {
		m[i] = make([]bool, cols)
	}
	return m
}

// InBounds reports whether c lies inside [0,Rows)x[0,Cols)
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.Rows && c.Col >= 0 && c.Col < g.Cols
}

func (g *Grid) mustInBounds(c Cell) {
	if !g.InBounds(c) {
		panic(fmt.Sprintf("maze: cell (%d,%d) outside %dx%d grid", c.Row, c.Col, g.Rows, g.Cols))
	}
}

// Visited reports whether the carving walk has entered c
func (g *Grid) Visited(c Cell) bool {
	g.mustInBounds(c)
	return g.visited[c.Row][c.Col]
}

// MarkVisited flags c as entered
func (g *Grid) MarkVisited(c Cell) {
	g.mustInBounds(c)
	g.visited[c.Row][c.Col] = true
}

// VisitedCount returns the number of visited cells
func (g *Grid) VisitedCount() int {
	n := 0
	for _, row := range g.visited {
		for _, v := range row {
			if v {
				n++
			}
		}
	}
	return n
}

// VerticalOpen reports the passage between (r,c) and (r,c+1)
func (g *Grid) VerticalOpen(r, c int) bool {
	if r < 0 || r >= g.Rows || c < 0 || c >= g.Cols-1 {
		panic(fmt.Sprintf("maze: vertical boundary (%d,%d) outside %dx%d grid", r, c, g.Rows, g.Cols-1))
	}
	return g.vertOpen[r][c]
}

// HorizontalOpen reports the passage between (r,c) and (r+1,c)
func (g *Grid) HorizontalOpen(r, c int) bool {
	if r < 0 || r >= g.Rows-1 || c < 0 || c >= g.Cols {
		panic(fmt.Sprintf("maze: horizontal boundary (%d,%d) outside %dx%d grid", r, c, g.Rows-1, g.Cols))
	}
	return g.horizOpen[r][c]
}

// IsOpen reports whether a passage joins a and b. Non-adjacent cells are never joined.
func (g *Grid) IsOpen(a, b Cell) bool {
	g.mustInBounds(a)
	g.mustInBounds(b)

	switch {
	case a.Row == b.Row && b.Col == a.Col+1:
		return g.vertOpen[a.Row][a.Col]
	case a.Row == b.Row && a.Col == b.Col+1:
		return g.vertOpen[a.Row][b.Col]
	case a.Col == b.Col && b.Row == a.Row+1:
		return g.horizOpen[a.Row][a.Col]
	case a.Col == b.Col && a.Row == b.Row+1:
		return g.horizOpen[b.Row][a.Col]
	}
	return false
}

// open removes the wall between c and its neighbor in direction d
func (g *Grid) open(c Cell, d Direction) {
	next := c.Step(d)
	g.mustInBounds(c)
	g.mustInBounds(next)

	switch d {
	case Left:
		g.vertOpen[c.Row][c.Col-1] = true
	case Right:
		g.vertOpen[c.Row][c.Col] = true
	case Up:
		g.horizOpen[c.Row-1][c.Col] = true
	case Down:
		g.horizOpen[c.Row][c.Col] = true
	}
}

// OpenCount returns the number of open passages
func (g *Grid) OpenCount() int {
	return countTrue(g.vertOpen) + countTrue(g.horizOpen)
}

// ClosedCount returns the number of closed internal boundaries
func (g *Grid) ClosedCount() int {
	total := g.Rows*(g.Cols-1) + (g.Rows-1)*g.Cols
	return total - g.OpenCount()
}

func countTrue(m [][]bool) int {
	n := 0
	for _, row := range m {
		for _, v := range row {
			if v {
				n++
			}
		}
	}
	return n
}

// Neighbors returns the in-bounds neighbors of c in up, right, down, left order
func (g *Grid) Neighbors(c Cell) []Neighbor {
	g.mustInBounds(c)
	result := make([]Neighbor, 0, 4)
	for _, d := range [...]Direction{Up, Right, Down, Left} {
		next := c.Step(d)
		if g.InBounds(next) {
			result = append(result, Neighbor{Cell: next, Dir: d})
		}
	}
	return result
}

// Passages returns the neighbors of c reachable through an open passage
func (g *Grid) Passages(c Cell) []Neighbor {
	all := g.Neighbors(c)
	result := all[:0]
	for _, n := range all {
		if g.IsOpen(c, n.Cell) {
			result = append(result, n)
		}
	}
	return result
}

// String renders the grid as ASCII art
func (g *Grid) String() string {
	var b strings.Builder

	b.WriteString("+" + strings.Repeat("---+", g.Cols) + "\n")

	for r := 0; r < g.Rows; r++ {
		b.WriteString("|")
		for c := 0; c < g.Cols; c++ {
			b.WriteString("   ")
			if c < g.Cols-1 && g.vertOpen[r][c] {
				b.WriteString(" ")
			} else {
				b.WriteString("|")
			}
		}
		b.WriteString("\n+")
		for c := 0; c < g.Cols; c++ {
			if r < g.Rows-1 && g.horizOpen[r][c] {
				b.WriteString("   +")
			} else {
				b.WriteString("---+")
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}
