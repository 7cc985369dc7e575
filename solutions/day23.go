package main

import (
	"log"

	"github.com/AlexWaygood/aoc"
)

var slopeDirs = map[byte]aoc.Direction{
	'^': aoc.Up, '>': aoc.Right, 'v': aoc.Down, '<': aoc.Left,
}

// trailNeighbors returns the tiles reachable in one step from p,
// honoring slope tiles: a slope can only be left in its direction.
func trailNeighbors(g aoc.Grid[byte], p aoc.Pt) []aoc.Pt {
	if dir, ok := slopeDirs[g.At(p)]; ok {
		if next, ok := g.Move(aoc.Path{Pt: p, Dir: dir}); ok && g.At(next.Pt) != '#' {
			return []aoc.Pt{next.Pt}
		}
		return nil
	}
	var out []aoc.Pt
	for d := aoc.Up; d <= aoc.Left; d++ {
		if next, ok := g.Move(aoc.Path{Pt: p, Dir: d}); ok && g.At(next.Pt) != '#' {
			out = append(out, next.Pt)
		}
	}
	return out
}

// trailGraph collapses the maze's corridors into a weighted graph
// over the start, the end, and every junction tile.
func trailGraph(g aoc.Grid[byte]) (graph aoc.Graph[aoc.Pt], start, end aoc.Pt) {
	size := g.Size()
	start = aoc.Pt{X: 1, Y: 0}
	end = aoc.Pt{X: size.X - 2, Y: size.Y - 1}

	isNode := func(p aoc.Pt) bool {
		if p == start || p == end {
			return true
		}
		open := 0
		p.ForImmediateNeighbors(func(n aoc.Pt) bool {
			if v, ok := g.AtOk(n); ok && v != '#' {
				open++
			}
			return true
		})
		return open >= 3
	}

	var walk func(node, prev, cur aoc.Pt, dist int)
	walk = func(node, prev, cur aoc.Pt, dist int) {
		if isNode(cur) {
			graph.AddDirectedEdge(node, cur, dist)
			return
		}
		for _, next := range trailNeighbors(g, cur) {
			if next != prev {
				walk(node, cur, next, dist+1)
			}
		}
	}

	g.ForPts(func(p aoc.Pt, v byte) {
		if v == '#' || !isNode(p) {
			return
		}
		for _, next := range trailNeighbors(g, p) {
			walk(p, p, next, 1)
		}
	})
	return graph, start, end
}

/*
want=94

#.#####################
#.......#########...###
#######.#########.#.###
###.....#.>.>.###.#.###
###v#####.#v#.###.#.###
###.>...#.#.#.....#...#
###v###.#.#.#########.#
###...#.#.#.......#...#
#####.#.#.#######.#.###
#.....#.#.#.......#...#
#.#####.#.#.#########v#
#.#...#...#...###...>.#
#.#.#v#######v###.###v#
#...#.>.#...>.>.#.###.#
#####v#.#.###v#.#.###.#
#.....#...#...#.#.#...#
#.#########.###.#.#.###
#...###...#...#...#.###
###.###.#.###v#####v###
###...#.#.#.........#.#
###.#.#.#########.#.#.#
#########.#########.#.#
#########v#########.#.#
###...###.#.....#...#.#
###.#####.#.#.#####.###
#.#.#.....#.#.#.....#.#
#.#.#.#####.#.#.#####.#
#.#...#.....#...#.....#
#.#.#########.#.#.#####
#...#.........#...#.###
#####################.#
*/
func (s solver) D23p1() any {
	graph, start, end := trailGraph(aoc.ParseGrid(s.Input()))
	dist, ok := graph.LongestPath(start, end)
	if !ok {
		log.Fatal("no hike reaches the end of the trail")
	}
	return dist
}
