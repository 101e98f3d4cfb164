package game

// Tag labels a body's role in the maze. It is the physics body label.
type Tag string

const (
	TagBoundaryWall Tag = "boundaryWall"
	TagInnerWall    Tag = "innerWall"
	TagGoal         Tag = "goal"
	TagPlayer       Tag = "player"
)

// Direction is an input impulse direction. It is unrelated to maze.Direction, which orders
// carving neighbors differently; convert through Vector, never by value.
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return "unknown"
}

// Vector returns the unit vector of d in screen coordinates (y grows downward)
func (d Direction) Vector() (x, y float64) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}
