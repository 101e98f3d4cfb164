package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lixenwraith/maze-collapse/maze"
)

func main() {
	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Println("\n=== PERFECT MAZE GENERATOR ===")

		rows := getInt(reader, "Rows (default 6): ", 6)
		cols := getInt(reader, "Columns (default 6): ", 6)
		seed := getInt64(reader, "Seed [0 = random] (default 0): ", 0)

		fmt.Println("\nGenerating...")
		startT := time.Now()
		res, err := maze.Generate(maze.Config{Rows: rows, Cols: cols, Seed: seed})
		dur := time.Since(startT)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}

		fmt.Printf("Done in %v\n", dur)
		fmt.Printf("Grid Dimensions: %dx%d, seed %d\n", res.Grid.Rows, res.Grid.Cols, res.Seed)
		fmt.Printf("Carving Start: (%d,%d)\n", res.Start.Row, res.Start.Col)

		if err := maze.VerifySpanningTree(res.Grid); err != nil {
			fmt.Printf("Status: NOT a perfect maze: %v\n", err)
		} else {
			fmt.Printf("Status: spanning tree, %d passages\n", res.Grid.OpenCount())
		}

		if res.SolutionPath != nil {
			fmt.Printf("Solution Path Length: %d cells\n", len(res.SolutionPath))
		} else {
			fmt.Println("Status: Unsolvable")
		}

		fmt.Print(draw(res))

		fmt.Print("\nGenerate another? [Y/n]: ")
		cont, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(cont)) == "n" {
			break
		}
	}
}

// draw renders the grid with the solution path marked and E/X at the entry and exit cells
func draw(res maze.Result) string {
	onPath := make(map[maze.Cell]bool, len(res.SolutionPath))
	for _, c := range res.SolutionPath {
		onPath[c] = true
	}

	g := res.Grid
	var b strings.Builder
	b.WriteString("+" + strings.Repeat("---+", g.Cols) + "\n")

	for r := 0; r < g.Rows; r++ {
		b.WriteString("|")
		for c := 0; c < g.Cols; c++ {
			cell := maze.Cell{Row: r, Col: c}
			switch {
			case cell == res.Entry:
				b.WriteString(" E ")
			case cell == res.Exit:
				b.WriteString(" X ")
			case onPath[cell]:
				b.WriteString(" • ")
			default:
				b.WriteString("   ")
			}
			if c < g.Cols-1 && g.IsOpen(cell, cell.Step(maze.Right)) {
				b.WriteString(" ")
			} else {
				b.WriteString("|")
			}
		}
		b.WriteString("\n+")
		for c := 0; c < g.Cols; c++ {
			cell := maze.Cell{Row: r, Col: c}
			if r < g.Rows-1 && g.IsOpen(cell, cell.Step(maze.Down)) {
				b.WriteString("   +")
			} else {
				b.WriteString("---+")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// --- Input Helpers ---

func getInt(r *bufio.Reader, prompt string, def int) int {
	fmt.Print(prompt)
	s, _ := r.ReadString('\n')
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

func getInt64(r *bufio.Reader, prompt string, def int64) int64 {
	fmt.Print(prompt)
	s, _ := r.ReadString('\n')
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return def
	}
	return v
}
