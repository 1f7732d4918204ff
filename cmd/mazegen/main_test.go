package main

import (
	"errors"
	"testing"

	"mad-maze/internal/maze"
)

func TestGenerateJob(t *testing.T) {
	res := generate(job{rows: 6, cols: 9, startRow: -1, startCol: -1, order: maze.HuntRandomAxis, seed: 5})
	if res.err != nil {
		t.Fatalf("generate: %v", res.err)
	}
	if res.stats.Steps != 6*9-1 {
		t.Fatalf("steps = %d, expected %d", res.stats.Steps, 6*9-1)
	}

	again := generate(job{rows: 6, cols: 9, startRow: -1, startCol: -1, order: maze.HuntRandomAxis, seed: 5})
	if again.start != res.start || again.grid.String() != res.grid.String() {
		t.Fatal("same seed must produce the same maze")
	}
}

func TestGenerateJobRejectsBadInput(t *testing.T) {
	res := generate(job{rows: 0, cols: 3, seed: 1})
	if !errors.Is(res.err, maze.ErrInvalidDimension) {
		t.Fatalf("err = %v, expected ErrInvalidDimension", res.err)
	}
	res = generate(job{rows: 3, cols: 3, startRow: 3, startCol: 0, seed: 1})
	if !errors.Is(res.err, maze.ErrOutOfBounds) {
		t.Fatalf("err = %v, expected ErrOutOfBounds", res.err)
	}
}
