package main

import (
	"github.com/AlexWaygood/aoc"
	"tailscale.com/util/deephash"
)

// tiltNorth rolls every round rock as far up its column as it can go.
func tiltNorth(g aoc.Grid[byte]) {
	size := g.Size()
	for x := 0; x < size.X; x++ {
		free := 0 // lowest open row in this column
		for y := 0; y < size.Y; y++ {
			switch g[y][x] {
			case '#':
				free = y + 1
			case 'O':
				g[y][x] = '.'
				g[free][x] = 'O'
				free++
			}
		}
	}
}

// spinCycle tilts north, west, south and east in turn, rotating the
// grid so each tilt is a tilt north.
func spinCycle(g aoc.Grid[byte]) aoc.Grid[byte] {
	for i := 0; i < 4; i++ {
		tiltNorth(g)
		g = g.RotateClockwise()
	}
	return g
}

func northLoad(g aoc.Grid[byte]) int {
	load := 0
	rows := len(g)
	g.ForPts(func(p aoc.Pt, v byte) {
		if v == 'O' {
			load += rows - p.Y
		}
	})
	return load
}

/*
want=136

O....#....
O.OO#....#
.....##...
OO.#O....O
.O.....O#.
O.#..O.#.#
..O..#O..O
.......O..
#....###..
#OO..#....
*/
func (s solver) D14p1() any {
	g := aoc.ParseGrid(s.Input())
	tiltNorth(g)
	return northLoad(g)
}

// want=64
func (s solver) D14p2() any {
	const cycles = 1_000_000_000
	g := aoc.ParseGrid(s.Input())
	seen := make(map[deephash.Sum]int)
	for i := 0; i < cycles; i++ {
		if start, ok := seen[g.Hash()]; ok {
			// Finish the leftover steps of the final partial cycle.
			for j := (cycles - start) % (i - start); j > 0; j-- {
				g = spinCycle(g)
			}
			break
		}
		seen[g.Hash()] = i
		g = spinCycle(g)
	}
	return northLoad(g)
}
