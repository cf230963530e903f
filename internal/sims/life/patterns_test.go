package life

import (
	"testing"

	"termlife/internal/core"
)

func TestPatternsRegistered(t *testing.T) {
	for _, name := range []string{PatternRandom, PatternEmpty, PatternGlider, PatternBlinker} {
		if _, ok := core.Patterns()[name]; !ok {
			t.Fatalf("pattern %q not registered", name)
		}
	}
}

func TestGliderPatternSurvivesSeeding(t *testing.T) {
	g := core.NewGrid(10, 10)
	core.Patterns()[PatternGlider](g)
	game := Seed(g, core.NewRNG(5), DefaultDensity)
	if n := Population(game.Grid()); n != 5 {
		t.Fatalf("glider population %d, want 5", n)
	}
	for i := 0; i < 4; i++ {
		game.Step()
	}
	if n := Population(game.Grid()); n != 5 {
		t.Fatalf("glider population after a full cycle %d, want 5", n)
	}
}

func TestRandomPatternLeavesCellsForSeeding(t *testing.T) {
	g := core.NewGrid(4, 4)
	core.Patterns()[PatternRandom](g)
	for _, c := range g.Cells() {
		if c != core.CellUninitialized {
			t.Fatal("random pattern defined a cell")
		}
	}
}

func TestParametersSnapshot(t *testing.T) {
	game := Seed(gridFrom(4, 3, [2]int{0, 0}, [2]int{1, 0}), core.NewRNG(11), 0.25)
	snap := game.Parameters()
	checks := map[string]string{"w": "4", "h": "3", "seed": "11", "iteration": "0", "population": "2", "density": "0.250"}
	for key, want := range checks {
		p, ok := snap.Lookup(key)
		if !ok {
			t.Fatalf("missing parameter %q", key)
		}
		if p.Value != want {
			t.Fatalf("%s = %q, want %q", key, p.Value, want)
		}
	}
}
