package app

import (
	"errors"
	"flag"
	"fmt"
	"strconv"

	"mad-maze/internal/maze"
	"mad-maze/internal/render"
)

// Config represents the command-line parameters for the window shell.
type Config struct {
	Sim   string
	Scale int
	TPS   int
	Rate  int
	Seed  int64

	Rows     int
	Cols     int
	StartRow int
	StartCol int
	Hunt     string
	Instant  bool

	Background string
	Menu       bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:        "huntkill",
		Scale:      8,
		TPS:        60,
		Rate:       60,
		Seed:       42,
		Rows:       24,
		Cols:       32,
		StartRow:   -1,
		StartCol:   -1,
		Hunt:       maze.HuntRandomAxis.String(),
		Background: "black",
	}
}

// Bind attaches the configuration to the provided FlagSet. Current field
// values become the flag defaults, so apply the environment first.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "sim to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.Rate, "rate", c.Rate, "cells carved per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for maze generation")
	fs.IntVar(&c.Rows, "rows", c.Rows, "maze rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "maze columns")
	fs.IntVar(&c.StartRow, "start-row", c.StartRow, "row of the first walk (-1 for random)")
	fs.IntVar(&c.StartCol, "start-col", c.StartCol, "column of the first walk (-1 for random)")
	fs.StringVar(&c.Hunt, "hunt", c.Hunt, "hunt scan order: random, row or column")
	fs.BoolVar(&c.Instant, "instant", c.Instant, "carve the whole maze on reset")
	fs.StringVar(&c.Background, "bg", c.Background, "background color")
	fs.BoolVar(&c.Menu, "menu", c.Menu, "open the bare menu window")
}

// Validate reports every invalid field.
func (c *Config) Validate() error {
	var errs []error
	if c.Scale < 1 {
		errs = append(errs, fmt.Errorf("scale must be at least 1, got %d", c.Scale))
	}
	if c.TPS < 1 {
		errs = append(errs, fmt.Errorf("tps must be at least 1, got %d", c.TPS))
	}
	if c.Rate < 1 {
		errs = append(errs, fmt.Errorf("rate must be at least 1, got %d", c.Rate))
	}
	if c.Rows < 1 || c.Cols < 1 {
		errs = append(errs, fmt.Errorf("%w: got %dx%d", maze.ErrInvalidDimension, c.Rows, c.Cols))
	}
	if c.StartRow >= c.Rows || c.StartCol >= c.Cols {
		errs = append(errs, fmt.Errorf("start %w: (%d,%d)", maze.ErrOutOfBounds, c.StartRow, c.StartCol))
	}
	if _, err := maze.ParseHuntOrder(c.Hunt); err != nil {
		errs = append(errs, err)
	}
	if _, err := render.ParseColor(c.Background); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// SimOptions converts the maze settings into the key/value map sim
// factories accept.
func (c *Config) SimOptions() map[string]string {
	return map[string]string{
		"rows":      strconv.Itoa(c.Rows),
		"cols":      strconv.Itoa(c.Cols),
		"start_row": strconv.Itoa(c.StartRow),
		"start_col": strconv.Itoa(c.StartCol),
		"hunt":      c.Hunt,
		"instant":   strconv.FormatBool(c.Instant),
		"seed":      strconv.FormatInt(c.Seed, 10),
	}
}
