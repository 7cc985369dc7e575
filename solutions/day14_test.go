package main

import (
	"bytes"
	"testing"

	"github.com/AlexWaygood/aoc"
)

func TestTiltNorth(t *testing.T) {
	g := aoc.ParseGrid([]byte("..O\n#..\nO.O\nOO."))
	tiltNorth(g)
	want := aoc.ParseGrid([]byte(".OO\n#.O\nO..\nO.."))
	for y := range g {
		if !bytes.Equal(g[y], want[y]) {
			t.Errorf("row %d = %q, want %q", y, g[y], want[y])
		}
	}
}

func TestNorthLoad(t *testing.T) {
	g := aoc.ParseGrid([]byte("O..\n...\n.OO"))
	// One rock three rows from the south edge, two rocks one row up.
	if got := northLoad(g); got != 5 {
		t.Errorf("northLoad = %d, want 5", got)
	}
}

func TestSpinCyclePreservesRocks(t *testing.T) {
	g := aoc.ParseGrid([]byte(".O.#\nO..O\n#...\n..O."))
	count := func(g aoc.Grid[byte]) (rocks, cubes int) {
		g.ForPts(func(_ aoc.Pt, v byte) {
			switch v {
			case 'O':
				rocks++
			case '#':
				cubes++
			}
		})
		return
	}
	rocks, cubes := count(g)
	g = spinCycle(g)
	gotRocks, gotCubes := count(g)
	if gotRocks != rocks || gotCubes != cubes {
		t.Errorf("spinCycle changed rock counts: %d/%d -> %d/%d", rocks, cubes, gotRocks, gotCubes)
	}
}
