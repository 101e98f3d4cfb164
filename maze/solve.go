package maze

// Solve returns the passage path from start to end inclusive, or nil when unreachable
func Solve(g *Grid, start, end Cell) []Cell {
	if !g.InBounds(start) || !g.InBounds(end) {
		return nil
	}

	queue := []Cell{start}
	cameFrom := make(map[Cell]Cell)
	visited := make(map[Cell]bool)
	visited[start] = true

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		if curr == end {
			path := []Cell{}
			for curr != start {
				path = append(path, curr)
				curr = cameFrom[curr]
			}
			path = append(path, start)
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}
			return path
		}

		for _, n := range g.Passages(curr) {
			if !visited[n.Cell] {
				visited[n.Cell] = true
				cameFrom[n.Cell] = curr
				queue = append(queue, n.Cell)
			}
		}
	}
	return nil
}
