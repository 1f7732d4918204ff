package huntkill

import (
	"strconv"

	"mad-maze/internal/maze"
)

// Config controls the grid and the pace of generation.
type Config struct {
	Rows int
	Cols int

	// StartRow and StartCol choose the first walk's cell. A negative value in
	// either picks a random start on every reset.
	StartRow int
	StartCol int

	Hunt maze.HuntOrder

	// StepsPerTick is how many cells Step carves.
	StepsPerTick int
	// Instant carves the whole maze during Reset.
	Instant bool

	Seed int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Rows:         24,
		Cols:         32,
		StartRow:     -1,
		StartCol:     -1,
		Hunt:         maze.HuntRandomAxis,
		StepsPerTick: 1,
		Seed:         1337,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Rows = parsed
		}
	}
	if v, ok := cfg["cols"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Cols = parsed
		}
	}
	if v, ok := cfg["start_row"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.StartRow = parsed
		}
	}
	if v, ok := cfg["start_col"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.StartCol = parsed
		}
	}
	if c.StartRow >= c.Rows {
		c.StartRow = c.Rows - 1
	}
	if c.StartCol >= c.Cols {
		c.StartCol = c.Cols - 1
	}
	if v, ok := cfg["hunt"]; ok {
		if parsed, err := maze.ParseHuntOrder(v); err == nil {
			c.Hunt = parsed
		}
	}
	if v, ok := cfg["steps_per_tick"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.StepsPerTick = parsed
		}
	}
	if v, ok := cfg["instant"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Instant = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}
