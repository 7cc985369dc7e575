package main

import (
	"log"

	"github.com/AlexWaygood/aoc"
)

/*
want=16

...........
.....###.#.
.###.##..#.
..#.#...#..
....#.#....
.##..S####.
.##..#...#.
.......##..
.##.#.####.
.##..##.##.
...........
*/
func (s solver) D21p1() any {
	steps := 64
	if s.SampleMode {
		steps = 6
	}
	g := aoc.ParseGrid(s.Input())
	reachable := make(map[aoc.Pt]bool)
	g.ForPts(func(p aoc.Pt, v byte) {
		if v == 'S' {
			reachable[p] = true
		}
	})
	if len(reachable) == 0 {
		log.Fatal("no starting plot in the garden map")
	}
	for i := 0; i < steps; i++ {
		next := make(map[aoc.Pt]bool)
		for p := range reachable {
			p.ForImmediateNeighbors(func(n aoc.Pt) bool {
				if v, ok := g.AtOk(n); ok && v != '#' {
					next[n] = true
				}
				return true
			})
		}
		reachable = next
	}
	return len(reachable)
}
