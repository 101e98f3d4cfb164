package game

import (
	"testing"

	"github.com/lixenwraith/maze-collapse/maze"
)

func TestDirectionVector(t *testing.T) {
	tests := []struct {
		dir    Direction
		name   string
		dx, dy float64
		cell   maze.Direction // Same heading in grid terms
	}{
		{DirUp, "up", 0, -1, maze.Up},
		{DirDown, "down", 0, 1, maze.Down},
		{DirLeft, "left", -1, 0, maze.Left},
		{DirRight, "right", 1, 0, maze.Right},
	}
	for _, tt := range tests {
		dx, dy := tt.dir.Vector()
		if dx != tt.dx || dy != tt.dy {
			t.Errorf("%v.Vector() = (%v,%v), want (%v,%v)", tt.dir, dx, dy, tt.dx, tt.dy)
		}
		if tt.dir.String() != tt.name {
			t.Errorf("String() = %q, want %q", tt.dir.String(), tt.name)
		}
		// Headings agree by meaning, not by constant value
		dr, dc := tt.cell.Delta()
		if float64(dc) != dx || float64(dr) != dy {
			t.Errorf("%v disagrees with maze.%v delta (%d,%d)", tt.dir, tt.cell, dr, dc)
		}
	}

	if dx, dy := Direction(9).Vector(); dx != 0 || dy != 0 {
		t.Errorf("unknown direction vector = (%v,%v)", dx, dy)
	}
}
