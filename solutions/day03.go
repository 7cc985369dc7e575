package main

import (
	"regexp"

	"github.com/AlexWaygood/aoc"
)

var numberRx = regexp.MustCompile(`\d+`)

type schematicNumber struct {
	value      int
	row        int
	start, end int // column range, end exclusive
}

func parseSchematic(lines []string) (aoc.Grid[byte], []schematicNumber) {
	var nums []schematicNumber
	g := make(aoc.Grid[byte], len(lines))
	for y, line := range lines {
		g[y] = []byte(line)
		for _, loc := range numberRx.FindAllStringIndex(line, -1) {
			nums = append(nums, schematicNumber{
				value: aoc.Int(line[loc[0]:loc[1]]),
				row:   y,
				start: loc[0],
				end:   loc[1],
			})
		}
	}
	return g, nums
}

func isSymbol(c byte) bool {
	return c != '.' && (c < '0' || c > '9')
}

// forAdjacent calls f for every in-bounds cell bordering the number,
// including diagonals.
func (n schematicNumber) forAdjacent(g aoc.Grid[byte], f func(p aoc.Pt, c byte)) {
	seen := make(map[aoc.Pt]bool)
	for x := n.start; x < n.end; x++ {
		(aoc.Pt{X: x, Y: n.row}).ForNeighbors(func(p aoc.Pt) bool {
			if seen[p] {
				return true
			}
			seen[p] = true
			if c, ok := g.AtOk(p); ok && (p.Y != n.row || p.X < n.start || p.X >= n.end) {
				f(p, c)
			}
			return true
		})
	}
}

/*
want=4361

467..114..
...*......
..35..633.
......#...
617*......
.....+.58.
..592.....
......755.
...$.*....
.664.598..
*/
func (s solver) D3p1() any {
	g, nums := parseSchematic(s.Lines())
	total := 0
	for _, n := range nums {
		isPart := false
		n.forAdjacent(g, func(_ aoc.Pt, c byte) {
			if isSymbol(c) {
				isPart = true
			}
		})
		if isPart {
			total += n.value
		}
	}
	return total
}

// want=467835
func (s solver) D3p2() any {
	g, nums := parseSchematic(s.Lines())
	gears := make(map[aoc.Pt][]int)
	for _, n := range nums {
		n.forAdjacent(g, func(p aoc.Pt, c byte) {
			if c == '*' {
				gears[p] = append(gears[p], n.value)
			}
		})
	}
	total := 0
	for _, values := range gears {
		if len(values) == 2 {
			total += values[0] * values[1]
		}
	}
	return total
}
