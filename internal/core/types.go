package core

import "sort"

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Pattern prepares a blank grid before seeding. Cells it leaves
// uninitialized are randomized by the seeder; cells it defines are kept.
type Pattern func(g *Grid)

var patterns = map[string]Pattern{}

// RegisterPattern adds a pattern under the provided name.
func RegisterPattern(name string, p Pattern) {
	if name == "" || p == nil {
		return
	}
	patterns[name] = p
}

// Patterns exposes the registry of available patterns.
func Patterns() map[string]Pattern {
	return patterns
}

// PatternNames lists registered pattern names in sorted order.
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
