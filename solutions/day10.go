package main

import (
	"log"

	"github.com/AlexWaygood/aoc"
)

// pipeExits maps each pipe tile to the two directions it opens onto.
var pipeExits = map[byte][]aoc.Direction{
	'|': {aoc.Up, aoc.Down},
	'-': {aoc.Left, aoc.Right},
	'L': {aoc.Up, aoc.Right},
	'J': {aoc.Up, aoc.Left},
	'7': {aoc.Down, aoc.Left},
	'F': {aoc.Down, aoc.Right},
}

func findAnimalStart(g aoc.Grid[byte]) aoc.Pt {
	start := aoc.Pt{X: -1, Y: -1}
	g.ForPts(func(p aoc.Pt, v byte) {
		if v == 'S' {
			start = p
		}
	})
	if start.X == -1 {
		log.Fatal("no start tile in the pipe maze")
	}
	return start
}

// inferStartPipe works out which pipe the start tile hides by
// checking which neighbors open back onto it.
func inferStartPipe(g aoc.Grid[byte], start aoc.Pt) byte {
	connected := make(map[aoc.Direction]bool)
	for d := aoc.Up; d <= aoc.Left; d++ {
		next, ok := g.Move(aoc.Path{Pt: start, Dir: d})
		if !ok {
			continue
		}
		for _, exit := range pipeExits[g.At(next.Pt)] {
			if exit == d.Reverse() {
				connected[d] = true
			}
		}
	}
	for _, pipe := range []byte("|-LJ7F") {
		exits := pipeExits[pipe]
		if connected[exits[0]] && connected[exits[1]] && len(connected) == 2 {
			return pipe
		}
	}
	log.Fatalf("start tile %v has no consistent pipe shape", start)
	return 0
}

// pipeLoop walks the main loop and returns its tiles in order, with
// the start repeated at the end to close the polygon.
func pipeLoop(g aoc.Grid[byte]) []aoc.Pt {
	start := findAnimalStart(g)
	g.Set(start, inferStartPipe(g, start))

	pts := []aoc.Pt{start}
	dir := pipeExits[g.At(start)][0]
	cur, ok := g.Move(aoc.Path{Pt: start, Dir: dir})
	if !ok {
		log.Fatal("loop runs off the grid")
	}
	for cur.Pt != start {
		pts = append(pts, cur.Pt)
		exits := pipeExits[g.At(cur.Pt)]
		dir = exits[0]
		if dir == cur.Dir.Reverse() {
			dir = exits[1]
		}
		cur, ok = g.Move(aoc.Path{Pt: cur.Pt, Dir: dir})
		if !ok {
			log.Fatal("loop runs off the grid")
		}
	}
	return append(pts, start)
}

/*
want=8

..F7.
.FJ|.
SJ.L7
|F--J
LJ...
*/
func (s solver) D10p1() any {
	loop := pipeLoop(aoc.ParseGrid(s.Input()))
	return (len(loop) - 1) / 2
}

/*
want=10

FF7FSF7F7F7F7F7F---7
L|LJ||||||||||||F--J
FL-7LJLJ||||||LJL-77
F--JF--7||LJLJ7F7FJ-
L---JF-JLJ.||-FJLJJ7
|F|F-JF---7F7-L7L|7|
|FFJF7L7F-JF7|JL---7
7-L-JL7||F7|L7F-7F7|
L.L7LFJ|||||FJL7||LJ
L7JLJL-JLJLJL--JLJ.L
*/
func (s solver) D10p2() any {
	loop := pipeLoop(aoc.ParseGrid(s.Input()))
	boundary := int64(len(loop) - 1)
	// Pick's theorem: interior = area - boundary/2 + 1.
	return aoc.PolygonInnerArea(loop) - boundary/2 + 1
}
