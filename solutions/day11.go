package main

import (
	"github.com/AlexWaygood/aoc"
)

// expandedDistances sums the pairwise distances between galaxies
// after every empty row and column has grown to factor rows/columns.
func (s solver) expandedDistances(factor int) int64 {
	g := aoc.ParseGrid(s.Input())
	size := g.Size()

	var galaxies []aoc.Pt
	emptyRows := make([]bool, size.Y)
	emptyCols := make([]bool, size.X)
	for i := range emptyRows {
		emptyRows[i] = true
	}
	for i := range emptyCols {
		emptyCols[i] = true
	}
	g.ForPts(func(p aoc.Pt, v byte) {
		if v == '#' {
			galaxies = append(galaxies, p)
			emptyRows[p.Y] = false
			emptyCols[p.X] = false
		}
	})

	// rowAt[y] is the expanded row coordinate of original row y.
	rowAt := make([]int64, size.Y)
	colAt := make([]int64, size.X)
	var off int64
	for y, empty := range emptyRows {
		rowAt[y] = int64(y) + off
		if empty {
			off += int64(factor) - 1
		}
	}
	off = 0
	for x, empty := range emptyCols {
		colAt[x] = int64(x) + off
		if empty {
			off += int64(factor) - 1
		}
	}

	var total int64
	for i, a := range galaxies {
		ea := aoc.Pt2[int64]{X: colAt[a.X], Y: rowAt[a.Y]}
		for _, b := range galaxies[i+1:] {
			eb := aoc.Pt2[int64]{X: colAt[b.X], Y: rowAt[b.Y]}
			total += ea.MDist(eb)
		}
	}
	return total
}

/*
want=374

...#......
.......#..
#.........
..........
......#...
.#........
.........#
..........
.......#..
#...#.....
*/
func (s solver) D11p1() any {
	return s.expandedDistances(2)
}
