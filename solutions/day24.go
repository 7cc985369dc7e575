package main

import (
	"strings"

	"github.com/AlexWaygood/aoc"
)

type hailstone struct {
	pos, vel aoc.Pt3[int]
}

func (s solver) parseHailstones() []hailstone {
	var stones []hailstone
	s.ForLines(func(line string) {
		p, v, _ := strings.Cut(line, " @ ")
		pf := aoc.Ints(strings.Split(p, ",")...)
		vf := aoc.Ints(strings.Split(v, ",")...)
		stones = append(stones, hailstone{
			pos: aoc.Pt3[int]{X: pf[0], Y: pf[1], Z: pf[2]},
			vel: aoc.Pt3[int]{X: vf[0], Y: vf[1], Z: vf[2]},
		})
	})
	return stones
}

// pathsCrossWithin reports whether the XY projections of a and b
// cross in the future of both, inside [lo, hi] on both axes.
func pathsCrossWithin(a, b hailstone, lo, hi float64) bool {
	cross := float64(a.vel.X*b.vel.Y - a.vel.Y*b.vel.X)
	if cross == 0 {
		return false // parallel paths never cross
	}
	dx := float64(b.pos.X - a.pos.X)
	dy := float64(b.pos.Y - a.pos.Y)
	t1 := (dx*float64(b.vel.Y) - dy*float64(b.vel.X)) / cross
	t2 := (dx*float64(a.vel.Y) - dy*float64(a.vel.X)) / cross
	if t1 < 0 || t2 < 0 {
		return false
	}
	x := float64(a.pos.X) + float64(a.vel.X)*t1
	y := float64(a.pos.Y) + float64(a.vel.Y)*t1
	return x >= lo && x <= hi && y >= lo && y <= hi
}

/*
want=2

19, 13, 30 @ -2,  1, -2
18, 19, 22 @ -1, -1, -2
20, 25, 34 @ -2, -2, -4
12, 31, 28 @ -1, -2, -1
20, 19, 15 @  1, -5, -3
*/
func (s solver) D24p1() any {
	lo, hi := 200_000_000_000_000.0, 400_000_000_000_000.0
	if s.SampleMode {
		lo, hi = 7, 27
	}
	stones := s.parseHailstones()
	count := 0
	for i, a := range stones {
		for _, b := range stones[i+1:] {
			if pathsCrossWithin(a, b, lo, hi) {
				count++
			}
		}
	}
	return count
}
