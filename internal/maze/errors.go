package maze

import "errors"

var (
	// ErrInvalidDimension is returned when a grid is requested with fewer than one row or column.
	ErrInvalidDimension = errors.New("maze: rows and cols must be at least 1")
	// ErrOutOfBounds is returned when coordinates fall outside the grid.
	ErrOutOfBounds = errors.New("maze: coordinate out of bounds")
	// ErrNoSuchNeighbor is returned when connecting across the grid boundary.
	ErrNoSuchNeighbor = errors.New("maze: no neighbor in that direction")
	// ErrInternalInconsistency is returned when a hunt finds no candidate while
	// unvisited cells remain. A correct grid never produces it.
	ErrInternalInconsistency = errors.New("maze: unvisited cells unreachable from visited region")
)
