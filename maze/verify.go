package maze

import (
	"errors"
	"fmt"

	"github.com/spakin/disjoint"
)

var (
	ErrUnvisited    = errors.New("maze has unvisited cells")
	ErrCycle        = errors.New("maze passages form a cycle")
	ErrDisconnected = errors.New("maze passages do not connect every cell")
)

// VerifySpanningTree checks that the open passages form a spanning tree over all cells
func VerifySpanningTree(g *Grid) error {
	if n := g.VisitedCount(); n != g.Rows*g.Cols {
		return fmt.Errorf("%w: %d of %d", ErrUnvisited, g.Rows*g.Cols-n, g.Rows*g.Cols)
	}

	sets := make([][]*disjoint.Element, g.Rows)
	for r := range sets {
		sets[r] = make([]*disjoint.Element, g.Cols)
		for c := range sets[r] {
			sets[r][c] = disjoint.NewElement()
		}
	}

	join := func(a, b Cell) error {
		ea, eb := sets[a.Row][a.Col], sets[b.Row][b.Col]
		if ea.Find() == eb.Find() {
			return fmt.Errorf("%w: passage (%d,%d)-(%d,%d) closes a loop", ErrCycle, a.Row, a.Col, b.Row, b.Col)
		}
		disjoint.Union(ea, eb)
		return nil
	}

	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols-1; c++ {
			if g.vertOpen[r][c] {
				if err := join(Cell{r, c}, Cell{r, c + 1}); err != nil {
					return err
				}
			}
		}
	}
	for r := 0; r < g.Rows-1; r++ {
		for c := 0; c < g.Cols; c++ {
			if g.horizOpen[r][c] {
				if err := join(Cell{r, c}, Cell{r + 1, c}); err != nil {
					return err
				}
			}
		}
	}

	root := sets[0][0].Find()
	for r := range sets {
		for c := range sets[r] {
			if sets[r][c].Find() != root {
				return fmt.Errorf("%w: (%d,%d) unreachable from (0,0)", ErrDisconnected, r, c)
			}
		}
	}
	return nil
}
