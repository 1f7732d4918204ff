package core

import "sort"

// Size describes the dimensions of a sim's display raster in pixels.
type Size struct {
	W int
	H int
}

// Sim is the contract between a stepwise generator and the window shell.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a sim factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available sim factories.
func Sims() map[string]Factory {
	return sims
}

// SimNames lists the registered sims in lexical order.
func SimNames() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
