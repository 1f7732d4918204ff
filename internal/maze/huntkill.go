package maze

import (
	"errors"
	"fmt"
	"strings"
)

// Rand is the source of randomness used by the generator. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

// HuntOrder selects how the hunt phase scans the grid.
type HuntOrder uint8

const (
	// HuntRandomAxis flips a coin before every hunt to pick row-major or
	// column-major scanning.
	HuntRandomAxis HuntOrder = iota
	// HuntRowMajor always scans row by row.
	HuntRowMajor
	// HuntColumnMajor always scans column by column.
	HuntColumnMajor
)

func (o HuntOrder) String() string {
	switch o {
	case HuntRowMajor:
		return "row"
	case HuntColumnMajor:
		return "column"
	default:
		return "random"
	}
}

// ParseHuntOrder maps "random", "row" or "column" to a HuntOrder.
func ParseHuntOrder(s string) (HuntOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "random":
		return HuntRandomAxis, nil
	case "row", "rows":
		return HuntRowMajor, nil
	case "column", "col", "columns":
		return HuntColumnMajor, nil
	}
	return HuntRandomAxis, fmt.Errorf("maze: unknown hunt order %q", s)
}

// Options configures a Generator.
type Options struct {
	Rand  Rand
	Order HuntOrder
}

// Stats counts the work done by a Generator. Every step visits exactly one
// new cell, so after completion Steps == rows*cols-1.
type Stats struct {
	Walks int
	Hunts int
	Steps int
}

var errNilRand = errors.New("maze: generator requires a random source")

// Generator carves a maze into a Grid one cell at a time. Walks are driven
// by a cursor rather than recursion so path length is bounded only by the
// grid size.
type Generator struct {
	grid  *Grid
	rng   Rand
	order HuntOrder

	cursor  Position
	walking bool
	stats   Stats
	dirs    []Direction
	err     error
}

// NewGenerator visits start and prepares to walk from it.
func NewGenerator(g *Grid, start Position, opts Options) (*Generator, error) {
	if opts.Rand == nil {
		return nil, errNilRand
	}
	if err := g.checkBounds(start.Row, start.Col); err != nil {
		return nil, fmt.Errorf("start %w", err)
	}
	g.visit(start.Row, start.Col)
	return &Generator{
		grid:    g,
		rng:     opts.Rand,
		order:   opts.Order,
		cursor:  start,
		walking: true,
		stats:   Stats{Walks: 1},
		dirs:    make([]Direction, 0, len(Directions)),
	}, nil
}

// RandomStart picks a uniformly random cell of a rows×cols grid.
func RandomStart(rows, cols int, rng Rand) Position {
	return Position{Row: rng.IntN(rows), Col: rng.IntN(cols)}
}

// Grid returns the grid being carved.
func (gen *Generator) Grid() *Grid { return gen.grid }

// Stats returns the counters accumulated so far.
func (gen *Generator) Stats() Stats { return gen.stats }

// Cursor returns the head of the current walk and whether a walk is active.
func (gen *Generator) Cursor() (Position, bool) { return gen.cursor, gen.walking }

// Done reports whether every cell has been visited.
func (gen *Generator) Done() bool { return gen.grid.Complete() }

// Step visits exactly one unvisited cell, either by extending the current
// walk or by hunting for a new walk start. It returns false when the grid
// is complete.
func (gen *Generator) Step() (bool, error) {
	if gen.err != nil {
		return false, gen.err
	}
	g := gen.grid
	if g.Complete() {
		gen.walking = false
		return false, nil
	}

	if gen.walking {
		gen.dirs = g.appendUnvisited(gen.dirs[:0], gen.cursor.Row, gen.cursor.Col)
		if len(gen.dirs) > 0 {
			d := gen.dirs[gen.rng.IntN(len(gen.dirs))]
			gen.cursor = gen.carve(gen.cursor, d)
			return true, nil
		}
		gen.walking = false
	}

	p, d, ok := gen.hunt()
	if !ok {
		gen.err = fmt.Errorf("%w: %d of %d cells visited", ErrInternalInconsistency, g.visited, len(g.cells))
		return false, gen.err
	}
	// The hunted cell joins the visited region through d and starts a new walk.
	n, _ := g.Neighbor(p.Row, p.Col, d)
	g.open(p.Row, p.Col, n, d)
	g.visit(p.Row, p.Col)
	gen.cursor = p
	gen.walking = true
	gen.stats.Walks++
	gen.stats.Hunts++
	gen.stats.Steps++
	return true, nil
}

// carve opens the edge from p in direction d and visits the neighbor.
func (gen *Generator) carve(p Position, d Direction) Position {
	g := gen.grid
	n, _ := g.Neighbor(p.Row, p.Col, d)
	g.open(p.Row, p.Col, n, d)
	g.visit(n.Row, n.Col)
	gen.stats.Steps++
	return n
}

// hunt returns the first unvisited cell bordering the visited region, along
// with the direction of its visited neighbor.
func (gen *Generator) hunt() (Position, Direction, bool) {
	g := gen.grid
	rowMajor := gen.order == HuntRowMajor
	if gen.order == HuntRandomAxis {
		rowMajor = gen.rng.IntN(2) == 1
	}

	if rowMajor {
		for r := 0; r < g.rows; r++ {
			if g.rowUnvisited[r] == 0 {
				continue
			}
			for c := 0; c < g.cols; c++ {
				if d, ok := g.huntCandidate(r, c); ok {
					return Position{Row: r, Col: c}, d, true
				}
			}
		}
		return Position{}, 0, false
	}

	for c := 0; c < g.cols; c++ {
		if g.colUnvisited[c] == 0 {
			continue
		}
		for r := 0; r < g.rows; r++ {
			if d, ok := g.huntCandidate(r, c); ok {
				return Position{Row: r, Col: c}, d, true
			}
		}
	}
	return Position{}, 0, false
}

func (g *Grid) huntCandidate(row, col int) (Direction, bool) {
	if g.cells[g.index(row, col)].visited {
		return 0, false
	}
	return g.visitedNeighbor(row, col)
}

// Run steps the generator until the grid is complete.
func (gen *Generator) Run() error {
	for {
		more, err := gen.Step()
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
}

// Generate carves a perfect maze starting the first walk at
// (startRow, startCol).
func (g *Grid) Generate(startRow, startCol int, opts Options) error {
	gen, err := NewGenerator(g, Position{Row: startRow, Col: startCol}, opts)
	if err != nil {
		return err
	}
	return gen.Run()
}
