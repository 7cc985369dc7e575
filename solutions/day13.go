package main

import (
	"github.com/AlexWaygood/aoc"
)

// reflectionRow returns the row index such that the grid mirrors
// around the line between rows i-1 and i with exactly smudges
// mismatched cells, or 0 if there is none.
func reflectionRow(g aoc.Grid[byte], smudges int) int {
	for i := 1; i < len(g); i++ {
		diff := 0
		for a, b := i-1, i; a >= 0 && b < len(g); a, b = a-1, b+1 {
			for x := range g[a] {
				if g[a][x] != g[b][x] {
					diff++
				}
			}
		}
		if diff == smudges {
			return i
		}
	}
	return 0
}

func (s solver) summarizeMirrors(smudges int) int {
	total := 0
	for _, block := range s.Blocks() {
		g := aoc.ParseGrid([]byte(block))
		if row := reflectionRow(g, smudges); row > 0 {
			total += 100 * row
		} else {
			total += reflectionRow(g.Transpose(), smudges)
		}
	}
	return total
}

/*
want=405

#.##..##.
..#.##.#.
##......#
##......#
..#.##.#.
..##..##.
#.#.##.#.

#...##..#
#....#..#
..##..###
#####.##.
#####.##.
..##..###
#....#..#
*/
func (s solver) D13p1() any {
	return s.summarizeMirrors(0)
}

// want=400
func (s solver) D13p2() any {
	return s.summarizeMirrors(1)
}
