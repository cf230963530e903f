package life

import (
	"termlife/internal/core"
)

// Population counts alive cells.
func Population(g *core.Grid) int {
	n := 0
	for _, c := range g.Cells() {
		if c == core.CellAlive {
			n++
		}
	}
	return n
}

// Density is the alive fraction of the grid, 0 for an empty grid.
func Density(g *core.Grid) float64 {
	total := len(g.Cells())
	if total == 0 {
		return 0
	}
	return float64(Population(g)) / float64(total)
}

// Parameters reports the values shown on status displays.
func (l *Game) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{
		Groups: []core.ParameterGroup{
			{
				Name: "World",
				Params: []core.Parameter{
					core.IntParam("w", "Width", l.grid.Width()),
					core.IntParam("h", "Height", l.grid.Height()),
					core.Int64Param("seed", "Seed", l.seed),
					core.FloatParam("density", "Seed density", l.density),
				},
			},
			{
				Name: "Generation",
				Params: []core.Parameter{
					core.IntParam("iteration", "Iteration", l.iteration),
					core.IntParam("population", "Population", Population(l.grid)),
				},
			},
		},
	}
}
