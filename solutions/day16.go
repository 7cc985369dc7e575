package main

import (
	"log"

	"github.com/AlexWaygood/aoc"
)

// beamExits returns the directions a beam moving dir leaves tile in.
func beamExits(tile byte, dir aoc.Direction) []aoc.Direction {
	switch tile {
	case '/':
		switch dir {
		case aoc.Right:
			return []aoc.Direction{aoc.Up}
		case aoc.Left:
			return []aoc.Direction{aoc.Down}
		case aoc.Up:
			return []aoc.Direction{aoc.Right}
		case aoc.Down:
			return []aoc.Direction{aoc.Left}
		}
	case '\\':
		switch dir {
		case aoc.Right:
			return []aoc.Direction{aoc.Down}
		case aoc.Left:
			return []aoc.Direction{aoc.Up}
		case aoc.Up:
			return []aoc.Direction{aoc.Left}
		case aoc.Down:
			return []aoc.Direction{aoc.Right}
		}
	case '|':
		if dir == aoc.Left || dir == aoc.Right {
			return []aoc.Direction{aoc.Up, aoc.Down}
		}
	case '-':
		if dir == aoc.Up || dir == aoc.Down {
			return []aoc.Direction{aoc.Left, aoc.Right}
		}
	}
	return []aoc.Direction{dir}
}

// energized counts the tiles lit by a beam entering along start.
func energized(g aoc.Grid[byte], start aoc.Path) int {
	seen := make(map[aoc.Path]bool)
	tiles := make(map[aoc.Pt]bool)
	var beams aoc.Stack[aoc.Path]
	beams.Push(start)
	beams.While(func(b aoc.Path) bool {
		if seen[b] {
			return true
		}
		seen[b] = true
		tiles[b.Pt] = true
		for _, dir := range beamExits(g.At(b.Pt), b.Dir) {
			if next, ok := g.Move(aoc.Path{Pt: b.Pt, Dir: dir}); ok {
				beams.Push(next)
			}
		}
		return true
	})
	return len(tiles)
}

/*
want=46

.|...\....
|.-.\.....
.....|-...
........|.
..........
.........\
..../.\\..
.-.-/..|..
.|....-|.\
..//.|....
*/
func (s solver) D16p1() any {
	g := aoc.ParseGrid(s.Input())
	return energized(g, aoc.Path{Pt: aoc.Pt{X: 0, Y: 0}, Dir: aoc.Right})
}

// want=51
func (s solver) D16p2() any {
	g := aoc.ParseGrid(s.Input())
	counts := aoc.Parallel(g.EdgePaths(), func(p aoc.Path) int {
		return energized(g, p)
	})
	best := 0
	for _, n := range counts {
		best = max(best, n)
	}
	if best == 0 {
		log.Fatal("no beam energized anything")
	}
	return best
}
