package maze

import (
	"errors"
	"fmt"
)

// ErrImperfect is returned by Verify when the grid is not a perfect maze.
var ErrImperfect = errors.New("maze: not a perfect maze")

// Verify checks that every cell is visited, that edges are stored
// symmetrically with closed boundaries, and that the open edges form a
// spanning tree.
func (g *Grid) Verify() error {
	if !g.Complete() {
		return fmt.Errorf("%w: %d of %d cells visited", ErrImperfect, g.visited, len(g.cells))
	}
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			for _, d := range Directions {
				n, ok := g.Neighbor(r, c, d)
				state := g.cells[g.index(r, c)].edges[d]
				if !ok {
					if state != EdgeAbsent {
						return fmt.Errorf("%w: boundary %s of (%d,%d) is %s", ErrImperfect, d, r, c, state)
					}
					continue
				}
				if state == EdgeAbsent || state != g.cells[g.index(n.Row, n.Col)].edges[d.Opposite()] {
					return fmt.Errorf("%w: edge %s of (%d,%d) inconsistent", ErrImperfect, d, r, c)
				}
			}
		}
	}
	if open := g.OpenEdgeCount(); open != len(g.cells)-1 {
		return fmt.Errorf("%w: %d open edges, expected %d", ErrImperfect, open, len(g.cells)-1)
	}

	// With exactly n-1 edges, reaching every cell rules out cycles.
	seen := make([]bool, len(g.cells))
	stack := []Position{{}}
	seen[0] = true
	reached := 1
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, d := range Directions {
			if !g.IsOpen(p.Row, p.Col, d) {
				continue
			}
			n, _ := g.Neighbor(p.Row, p.Col, d)
			if i := g.index(n.Row, n.Col); !seen[i] {
				seen[i] = true
				reached++
				stack = append(stack, n)
			}
		}
	}
	if reached != len(g.cells) {
		return fmt.Errorf("%w: %d of %d cells reachable", ErrImperfect, reached, len(g.cells))
	}
	return nil
}
