package maze

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// firstChoice always picks index 0: the first open direction in N, E, S, W
// order, and column-major on every hunt coin flip.
type firstChoice struct{}

func (firstChoice) IntN(int) int { return 0 }

func seeded(seed uint64) *rand.Rand { return rand.New(rand.NewPCG(seed, 0)) }

// requirePerfect checks that g is fully visited and that its open edges form
// a spanning tree with symmetric storage and closed boundaries.
func requirePerfect(t *testing.T, g *Grid) {
	t.Helper()
	rows, cols := g.Dimensions()

	require.True(t, g.Complete(), "all cells must be visited")
	require.Equal(t, rows*cols-1, g.OpenEdgeCount(), "open edges")

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			require.True(t, g.IsVisited(r, c))
			for _, d := range Directions {
				n, ok := g.Neighbor(r, c, d)
				if !ok {
					if g.IsOpen(r, c, d) {
						t.Fatalf("boundary edge %s of (%d,%d) is open", d, r, c)
					}
					continue
				}
				if g.IsOpen(r, c, d) != g.IsOpen(n.Row, n.Col, d.Opposite()) {
					t.Fatalf("edge %s of (%d,%d) not symmetric", d, r, c)
				}
			}
		}
	}

	// Walk the tree from (0,0); every cell must be reached exactly once
	// without crossing back along the edge we came from.
	type frame struct {
		pos  Position
		from Direction
		root bool
	}
	seen := make([]bool, rows*cols)
	stack := []frame{{pos: Position{}, root: true}}
	reached := 0
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		idx := f.pos.Row*cols + f.pos.Col
		if seen[idx] {
			t.Fatalf("cycle through %s", f.pos)
		}
		seen[idx] = true
		reached++
		for _, d := range Directions {
			if !f.root && d == f.from {
				continue
			}
			if !g.IsOpen(f.pos.Row, f.pos.Col, d) {
				continue
			}
			n, _ := g.Neighbor(f.pos.Row, f.pos.Col, d)
			stack = append(stack, frame{pos: n, from: d.Opposite()})
		}
	}
	require.Equal(t, rows*cols, reached, "open edges must connect every cell")
}

func TestGenerateTwoByTwoFirstChoice(t *testing.T) {
	g, err := New(2, 2)
	require.NoError(t, err)

	gen, err := NewGenerator(g, Position{}, Options{Rand: firstChoice{}})
	require.NoError(t, err)
	require.NoError(t, gen.Run())

	requirePerfect(t, g)
	assert.True(t, g.IsOpen(0, 0, East))
	assert.True(t, g.IsOpen(0, 1, South))
	assert.True(t, g.IsOpen(1, 1, West))
	assert.False(t, g.IsOpen(0, 0, South))

	stats := gen.Stats()
	assert.Equal(t, Stats{Walks: 1, Hunts: 0, Steps: 3}, stats)

	want := "+---+---+\n" +
		"|       |\n" +
		"+---+   +\n" +
		"|       |\n" +
		"+---+---+\n"
	assert.Equal(t, want, g.String())
}

func TestGenerateSingleRowIsCorridor(t *testing.T) {
	for seed := uint64(0); seed < 8; seed++ {
		for start := 0; start < 5; start++ {
			g, err := New(1, 5)
			require.NoError(t, err)
			require.NoError(t, g.Generate(0, start, Options{Rand: seeded(seed)}))

			requirePerfect(t, g)
			for c := 0; c < 4; c++ {
				if !g.IsOpen(0, c, East) {
					t.Fatalf("seed %d start %d: corridor broken at column %d", seed, start, c)
				}
			}
		}
	}
}

func TestGenerateSingleColumnIsCorridor(t *testing.T) {
	g, err := New(6, 1)
	require.NoError(t, err)
	require.NoError(t, g.Generate(3, 0, Options{Rand: seeded(5), Order: HuntRowMajor}))

	requirePerfect(t, g)
	for r := 0; r < 5; r++ {
		assert.True(t, g.IsOpen(r, 0, South), "row %d", r)
	}
}

func TestGenerateThreeByThree(t *testing.T) {
	for seed := uint64(0); seed < 32; seed++ {
		g, err := New(3, 3)
		require.NoError(t, err)
		rng := seeded(seed)
		start := RandomStart(3, 3, rng)
		require.NoError(t, g.Generate(start.Row, start.Col, Options{Rand: rng}))
		requirePerfect(t, g)
		require.Equal(t, 8, g.OpenEdgeCount())
	}
}

func TestGenerateProducesPerfectMaze(t *testing.T) {
	sizes := [][2]int{{1, 1}, {1, 2}, {2, 1}, {4, 7}, {9, 9}, {16, 5}, {31, 47}}
	orders := []HuntOrder{HuntRandomAxis, HuntRowMajor, HuntColumnMajor}
	for _, size := range sizes {
		for _, order := range orders {
			for seed := uint64(1); seed <= 3; seed++ {
				name := fmt.Sprintf("%dx%d/%s/%d", size[0], size[1], order, seed)
				t.Run(name, func(t *testing.T) {
					g, err := New(size[0], size[1])
					require.NoError(t, err)
					rng := seeded(seed)
					start := RandomStart(size[0], size[1], rng)
					gen, err := NewGenerator(g, start, Options{Rand: rng, Order: order})
					require.NoError(t, err)
					require.NoError(t, gen.Run())

					requirePerfect(t, g)
					stats := gen.Stats()
					assert.Equal(t, size[0]*size[1]-1, stats.Steps)
					assert.Equal(t, stats.Hunts+1, stats.Walks)
				})
			}
		}
	}
}

func TestGenerateDeterministicForSeed(t *testing.T) {
	build := func(seed uint64) string {
		g, err := New(12, 17)
		require.NoError(t, err)
		require.NoError(t, g.Generate(4, 9, Options{Rand: seeded(seed)}))
		return g.String()
	}

	first := build(99)
	for i := 0; i < 3; i++ {
		require.Equal(t, first, build(99), "same seed must carve the same maze")
	}
	require.NotEqual(t, first, build(100), "different seeds should differ")
}

func TestGenerateLargeGrid(t *testing.T) {
	g, err := New(120, 120)
	require.NoError(t, err)
	require.NoError(t, g.Generate(60, 60, Options{Rand: seeded(7)}))
	requirePerfect(t, g)
}

func TestGenerateRejectsBadStart(t *testing.T) {
	g, err := New(3, 3)
	require.NoError(t, err)

	err = g.Generate(3, 0, Options{Rand: seeded(1)})
	require.ErrorIs(t, err, ErrOutOfBounds)
	err = g.Generate(0, -1, Options{Rand: seeded(1)})
	require.ErrorIs(t, err, ErrOutOfBounds)
	assert.Zero(t, g.VisitedCount(), "rejected start must not mutate the grid")

	err = g.Generate(0, 0, Options{})
	require.Error(t, err)
}

func TestStepVisitsOneCellAtATime(t *testing.T) {
	g, err := New(6, 8)
	require.NoError(t, err)
	gen, err := NewGenerator(g, Position{Row: 2, Col: 3}, Options{Rand: seeded(11)})
	require.NoError(t, err)
	require.Equal(t, 1, g.VisitedCount())

	for i := 2; i <= 48; i++ {
		more, err := gen.Step()
		require.NoError(t, err)
		require.True(t, more)
		require.Equal(t, i, g.VisitedCount(), "step %d", i-1)
		cursor, walking := gen.Cursor()
		require.True(t, walking)
		require.True(t, g.IsVisited(cursor.Row, cursor.Col))
	}

	more, err := gen.Step()
	require.NoError(t, err)
	require.False(t, more)
	require.True(t, gen.Done())
	_, walking := gen.Cursor()
	require.False(t, walking)
}

func TestHuntResumesAfterDeadEnd(t *testing.T) {
	g, err := New(1, 3)
	require.NoError(t, err)

	// From the middle cell the first choice is east, which is a dead end;
	// the hunt must then pick up (0,0) through its east side.
	gen, err := NewGenerator(g, Position{Row: 0, Col: 1}, Options{Rand: firstChoice{}})
	require.NoError(t, err)
	require.NoError(t, gen.Run())

	requirePerfect(t, g)
	assert.True(t, g.IsOpen(0, 0, East))
	assert.True(t, g.IsOpen(0, 1, East))
	assert.Equal(t, Stats{Walks: 2, Hunts: 1, Steps: 2}, gen.Stats())
}

func TestHuntReportsIsolatedCells(t *testing.T) {
	g, err := New(1, 2)
	require.NoError(t, err)
	// Sever the only edge so (0,1) cannot be reached.
	g.cells[0].edges[East] = EdgeAbsent
	g.cells[1].edges[West] = EdgeAbsent

	gen, err := NewGenerator(g, Position{}, Options{Rand: seeded(3)})
	require.NoError(t, err)

	err = gen.Run()
	require.ErrorIs(t, err, ErrInternalInconsistency)
	more, err := gen.Step()
	require.False(t, more)
	require.ErrorIs(t, err, ErrInternalInconsistency, "error must be sticky")
}

func TestParseHuntOrder(t *testing.T) {
	cases := map[string]HuntOrder{
		"":        HuntRandomAxis,
		"random":  HuntRandomAxis,
		"ROW":     HuntRowMajor,
		" column": HuntColumnMajor,
		"col":     HuntColumnMajor,
	}
	for in, want := range cases {
		got, err := ParseHuntOrder(in)
		require.NoError(t, err, "%q", in)
		assert.Equal(t, want, got, "%q", in)
	}
	_, err := ParseHuntOrder("diagonal")
	assert.Error(t, err)

	for _, o := range []HuntOrder{HuntRandomAxis, HuntRowMajor, HuntColumnMajor} {
		got, err := ParseHuntOrder(o.String())
		require.NoError(t, err)
		assert.Equal(t, o, got)
	}
}

func TestStringMarksUnvisitedCells(t *testing.T) {
	g, err := New(1, 2)
	require.NoError(t, err)
	require.NoError(t, g.Visit(0, 0))
	assert.Equal(t, "+---+---+\n|   |###|\n+---+---+\n", g.String())
}
