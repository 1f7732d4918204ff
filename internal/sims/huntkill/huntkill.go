// Package huntkill animates Hunt-and-Kill maze generation as a core.Sim.
package huntkill

import (
	"fmt"
	"image/color"

	"mad-maze/internal/core"
	"mad-maze/internal/maze"
	"mad-maze/internal/render"
)

// Raster values written to Cells.
const (
	CellWall uint8 = iota
	CellPassage
	CellUnvisited
	CellCursor
)

var palette = []color.RGBA{
	CellWall:      render.Elephant,
	CellPassage:   render.Cream,
	CellUnvisited: render.Blue,
	CellCursor:    render.Red,
}

// Maze carves a maze a few cells per Step and exposes it as a raster of
// (2*cols+1)×(2*rows+1) pixels: cells sit on odd coordinates, the edges
// between them on the mixed ones, and corners are always wall.
type Maze struct {
	cfg Config

	grid   *maze.Grid
	gen    *maze.Generator
	raster *core.ByteGrid
	seed   int64
	start  maze.Position
	err    error
}

// New returns a Maze built from cfg and reset with cfg.Seed.
func New(cfg Config) *Maze {
	if cfg.StepsPerTick <= 0 {
		cfg.StepsPerTick = 1
	}
	m := &Maze{
		cfg:    cfg,
		raster: core.NewByteGrid(2*cfg.Cols+1, 2*cfg.Rows+1),
	}
	m.Reset(cfg.Seed)
	return m
}

// Name returns the sim identifier.
func (m *Maze) Name() string { return "huntkill" }

// Size reports the raster dimensions.
func (m *Maze) Size() core.Size { return core.Size{W: m.raster.W, H: m.raster.H} }

// Cells exposes the raster.
func (m *Maze) Cells() []uint8 { return m.raster.Cells() }

// Palette maps raster values to colors.
func (m *Maze) Palette() []color.RGBA { return palette }

// Grid returns the grid being carved.
func (m *Maze) Grid() *maze.Grid { return m.grid }

// Stats returns the generator counters.
func (m *Maze) Stats() maze.Stats {
	if m.gen == nil {
		return maze.Stats{}
	}
	return m.gen.Stats()
}

// Done reports whether the maze is complete.
func (m *Maze) Done() bool { return m.grid != nil && m.grid.Complete() }

// Err returns the error that stopped generation, if any.
func (m *Maze) Err() error { return m.err }

// Seed returns the seed used by the last Reset.
func (m *Maze) Seed() int64 { return m.seed }

// Reset discards the current maze and starts a new one. A zero seed falls
// back to the configured seed.
func (m *Maze) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = m.cfg.Seed
	}
	m.seed = effective
	m.err = nil
	m.gen = nil

	grid, err := maze.New(m.cfg.Rows, m.cfg.Cols)
	if err != nil {
		m.grid = nil
		m.err = err
		m.raster.Fill(CellWall)
		return
	}
	m.grid = grid

	rng := core.NewRNG(effective)
	m.start = maze.Position{Row: m.cfg.StartRow, Col: m.cfg.StartCol}
	if m.start.Row < 0 || m.start.Col < 0 {
		m.start = maze.RandomStart(m.cfg.Rows, m.cfg.Cols, rng)
	}
	m.gen, err = maze.NewGenerator(grid, m.start, maze.Options{Rand: rng, Order: m.cfg.Hunt})
	if err != nil {
		m.err = fmt.Errorf("huntkill: %w", err)
		m.redraw()
		return
	}
	if m.cfg.Instant {
		m.err = m.gen.Run()
	}
	m.redraw()
}

// Step carves up to StepsPerTick cells. It does nothing once the maze is
// complete or generation has failed.
func (m *Maze) Step() {
	if m.gen == nil || m.err != nil {
		return
	}
	for i := 0; i < m.cfg.StepsPerTick; i++ {
		more, err := m.gen.Step()
		if err != nil {
			m.err = err
			break
		}
		if !more {
			break
		}
	}
	m.redraw()
}

func (m *Maze) redraw() {
	m.raster.Fill(CellWall)
	if m.grid == nil {
		return
	}
	rows, cols := m.grid.Dimensions()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			x, y := 2*c+1, 2*r+1
			if m.grid.IsVisited(r, c) {
				m.raster.Set(x, y, CellPassage)
			} else {
				m.raster.Set(x, y, CellUnvisited)
			}
			if m.grid.IsOpen(r, c, maze.East) {
				m.raster.Set(x+1, y, CellPassage)
			}
			if m.grid.IsOpen(r, c, maze.South) {
				m.raster.Set(x, y+1, CellPassage)
			}
		}
	}
	if m.gen != nil && !m.grid.Complete() {
		if p, walking := m.gen.Cursor(); walking {
			m.raster.Set(2*p.Col+1, 2*p.Row+1, CellCursor)
		}
	}
}

// Parameters reports the configuration and progress for the HUD.
func (m *Maze) Parameters() core.ParameterSnapshot {
	total := m.cfg.Rows * m.cfg.Cols
	visited := 0
	if m.grid != nil {
		visited = m.grid.VisitedCount()
	}
	stats := m.Stats()
	status := "carving"
	switch {
	case m.err != nil:
		status = "failed"
	case m.Done():
		status = "done"
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				core.IntParam("rows", "Rows", m.cfg.Rows),
				core.IntParam("cols", "Cols", m.cfg.Cols),
				core.StringParam("start", "Start", m.start.String()),
				core.StringParam("hunt", "Hunt", m.cfg.Hunt.String()),
				core.Int64Param("seed", "Seed", m.seed),
			},
		},
		{
			Name: "Progress",
			Params: []core.Parameter{
				core.StringParam("visited", "Visited", fmt.Sprintf("%d/%d", visited, total)),
				core.IntParam("walks", "Walks", stats.Walks),
				core.IntParam("hunts", "Hunts", stats.Hunts),
				core.StringParam("status", "Status", status),
			},
		},
	}}
}

func init() {
	core.Register("huntkill", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}
