package core

import "sort"

// Size describes the dimensions of a rendered simulation view.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a viewer needs from a cellular automaton.
// Cells returns a row-major W*H buffer of palette indices for the current view.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// Inoculator is implemented by sims that start from a seeded pattern rather
// than from a random fill. Viewers call Inoculate after every Reset.
type Inoculator interface {
	Inoculate()
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, bool) {
	f, ok := sims[name]
	return f, ok
}

// Names lists the registered simulations in sorted order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
