// Package maze builds perfect mazes on a rectangular grid using the
// Hunt-and-Kill algorithm.
package maze

import "fmt"

// Position identifies a cell by row and column.
type Position struct {
	Row int
	Col int
}

func (p Position) String() string { return fmt.Sprintf("(%d,%d)", p.Row, p.Col) }

type cell struct {
	visited bool
	edges   [4]EdgeState
}

// Grid stores the per-cell state of a maze in row-major order.
type Grid struct {
	rows, cols int
	cells      []cell

	visited int
	// unvisited counts per row and per column let hunts skip finished lines.
	rowUnvisited []int
	colUnvisited []int
}

// New allocates a rows×cols grid with every interior edge walled and every
// boundary edge absent. All cells start unvisited.
func New(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimension, rows, cols)
	}
	g := &Grid{
		rows:         rows,
		cols:         cols,
		cells:        make([]cell, rows*cols),
		rowUnvisited: make([]int, rows),
		colUnvisited: make([]int, cols),
	}
	for r := 0; r < rows; r++ {
		g.rowUnvisited[r] = cols
		for c := 0; c < cols; c++ {
			cl := &g.cells[g.index(r, c)]
			for _, d := range Directions {
				if _, ok := g.Neighbor(r, c, d); ok {
					cl.edges[d] = EdgeWall
				}
			}
		}
	}
	for c := range g.colUnvisited {
		g.colUnvisited[c] = rows
	}
	return g, nil
}

// Dimensions returns the number of rows and columns.
func (g *Grid) Dimensions() (rows, cols int) { return g.rows, g.cols }

// InBounds reports whether (row, col) names a cell of the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

func (g *Grid) index(row, col int) int { return row*g.cols + col }

func (g *Grid) checkBounds(row, col int) error {
	if !g.InBounds(row, col) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfBounds, row, col, g.rows, g.cols)
	}
	return nil
}

// Neighbor returns the cell adjacent to (row, col) in direction d, or false
// when d leads off the grid.
func (g *Grid) Neighbor(row, col int, d Direction) (Position, bool) {
	dr, dc := d.Offset()
	p := Position{Row: row + dr, Col: col + dc}
	if !g.InBounds(row, col) || !g.InBounds(p.Row, p.Col) {
		return Position{}, false
	}
	return p, true
}

// Connect carves the passage between (row, col) and its neighbor in
// direction d, writing both endpoints.
func (g *Grid) Connect(row, col int, d Direction) error {
	if err := g.checkBounds(row, col); err != nil {
		return err
	}
	n, ok := g.Neighbor(row, col, d)
	if !ok {
		return fmt.Errorf("%w: %s of (%d,%d)", ErrNoSuchNeighbor, d, row, col)
	}
	g.open(row, col, n, d)
	return nil
}

func (g *Grid) open(row, col int, n Position, d Direction) {
	g.cells[g.index(row, col)].edges[d] = EdgeOpen
	g.cells[g.index(n.Row, n.Col)].edges[d.Opposite()] = EdgeOpen
}

// Visit marks (row, col) as visited. Visiting twice has no further effect.
func (g *Grid) Visit(row, col int) error {
	if err := g.checkBounds(row, col); err != nil {
		return err
	}
	g.visit(row, col)
	return nil
}

func (g *Grid) visit(row, col int) {
	cl := &g.cells[g.index(row, col)]
	if cl.visited {
		return
	}
	cl.visited = true
	g.visited++
	g.rowUnvisited[row]--
	g.colUnvisited[col]--
}

// UnvisitedNeighborDirections returns, in N, E, S, W order, the directions
// from (row, col) that lead to an unvisited neighbor. Coordinates outside the
// grid yield nil.
func (g *Grid) UnvisitedNeighborDirections(row, col int) []Direction {
	if !g.InBounds(row, col) {
		return nil
	}
	return g.appendUnvisited(nil, row, col)
}

func (g *Grid) appendUnvisited(dst []Direction, row, col int) []Direction {
	cl := &g.cells[g.index(row, col)]
	for _, d := range Directions {
		if cl.edges[d] == EdgeAbsent {
			continue
		}
		n, _ := g.Neighbor(row, col, d)
		if !g.cells[g.index(n.Row, n.Col)].visited {
			dst = append(dst, d)
		}
	}
	return dst
}

// visitedNeighbor returns the first direction, in N, E, S, W order, that
// leads from (row, col) to a visited neighbor.
func (g *Grid) visitedNeighbor(row, col int) (Direction, bool) {
	cl := &g.cells[g.index(row, col)]
	for _, d := range Directions {
		if cl.edges[d] == EdgeAbsent {
			continue
		}
		n, _ := g.Neighbor(row, col, d)
		if g.cells[g.index(n.Row, n.Col)].visited {
			return d, true
		}
	}
	return 0, false
}

// Edge returns the state of side d of cell (row, col).
func (g *Grid) Edge(row, col int, d Direction) (EdgeState, error) {
	if err := g.checkBounds(row, col); err != nil {
		return EdgeAbsent, err
	}
	return g.cells[g.index(row, col)].edges[d], nil
}

// IsOpen reports whether a passage has been carved on side d of (row, col).
// Coordinates outside the grid are never open.
func (g *Grid) IsOpen(row, col int, d Direction) bool {
	if !g.InBounds(row, col) {
		return false
	}
	return g.cells[g.index(row, col)].edges[d] == EdgeOpen
}

// IsVisited reports whether generation has passed through (row, col).
func (g *Grid) IsVisited(row, col int) bool {
	if !g.InBounds(row, col) {
		return false
	}
	return g.cells[g.index(row, col)].visited
}

// VisitedCount returns the number of visited cells.
func (g *Grid) VisitedCount() int { return g.visited }

// Complete reports whether every cell has been visited.
func (g *Grid) Complete() bool { return g.visited == len(g.cells) }

// OpenEdgeCount counts carved passages, each one once.
func (g *Grid) OpenEdgeCount() int {
	n := 0
	for i := range g.cells {
		if g.cells[i].edges[East] == EdgeOpen {
			n++
		}
		if g.cells[i].edges[South] == EdgeOpen {
			n++
		}
	}
	return n
}
