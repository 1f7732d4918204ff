package maze

import "fmt"

// Direction names one of the four sides of a cell.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists every direction in the order neighbors are examined.
var Directions = [4]Direction{North, East, South, West}

// Opposite returns the direction pointing back across the same edge.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	default:
		return East
	}
}

// Offset returns the row and column delta of a single step in direction d.
func (d Direction) Offset() (dr, dc int) {
	switch d {
	case North:
		return -1, 0
	case East:
		return 0, 1
	case South:
		return 1, 0
	default:
		return 0, -1
	}
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// EdgeState describes the relation between a cell and its neighbor.
type EdgeState uint8

const (
	// EdgeAbsent marks a side on the grid boundary; there is no neighbor.
	EdgeAbsent EdgeState = iota
	// EdgeWall marks a side shared with a neighbor but not carved.
	EdgeWall
	// EdgeOpen marks a carved passage.
	EdgeOpen
)

func (s EdgeState) String() string {
	switch s {
	case EdgeAbsent:
		return "absent"
	case EdgeWall:
		return "wall"
	case EdgeOpen:
		return "open"
	}
	return fmt.Sprintf("EdgeState(%d)", uint8(s))
}
