package main

import (
	"log"

	"github.com/AlexWaygood/aoc"
)

type crucibleState struct {
	pt  aoc.Pt
	dir aoc.Direction
	run int // straight steps taken in dir
}

// minHeatLoss runs Dijkstra over (position, direction, run) states.
// The crucible cannot reverse or move more than three tiles straight.
func minHeatLoss(g aoc.Grid[int]) int {
	goal := aoc.Pt{X: g.Size().X - 1, Y: g.Size().Y - 1}
	best := make(map[crucibleState]int)
	var q aoc.PQ[crucibleState]
	for _, dir := range []aoc.Direction{aoc.Right, aoc.Down} {
		q.Push(&aoc.PQI[crucibleState]{V: crucibleState{dir: dir}})
	}
	for q.Len() > 0 {
		cur := q.Pop()
		cost := -cur.P
		if cur.V.pt == goal {
			return cost
		}
		if seen, ok := best[cur.V]; ok && seen <= cost {
			continue
		}
		best[cur.V] = cost
		for d := aoc.Up; d <= aoc.Left; d++ {
			if d == cur.V.dir.Reverse() {
				continue
			}
			run := 1
			if d == cur.V.dir {
				run = cur.V.run + 1
				if run > 3 {
					continue
				}
			}
			next, ok := g.Move(aoc.Path{Pt: cur.V.pt, Dir: d})
			if !ok {
				continue
			}
			q.Push(&aoc.PQI[crucibleState]{
				V: crucibleState{pt: next.Pt, dir: d, run: run},
				P: -(cost + g.At(next.Pt)),
			})
		}
	}
	log.Fatal("no route to the machine parts factory")
	return 0
}

/*
want=102

2413432311323
3215453535623
3255245654254
3446585845452
4546657867536
1438598798454
4457876987766
3637877979653
4654967986887
4564679986453
1224686865563
2546548887735
4322674655533
*/
func (s solver) D17p1() any {
	var g aoc.Grid[int]
	s.ForLines(func(line string) {
		g = append(g, aoc.Digits(line))
	})
	return minHeatLoss(g)
}
