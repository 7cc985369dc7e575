package main

import (
	"log"
	"strconv"
	"strings"

	"github.com/AlexWaygood/aoc"
)

type digStep struct {
	dir   aoc.Direction
	count int64
}

var trenchDirs = map[byte]aoc.Direction{
	'U': aoc.Up, 'R': aoc.Right, 'D': aoc.Down, 'L': aoc.Left,
	// Part two encodes the direction as the last color digit.
	'0': aoc.Right, '1': aoc.Down, '2': aoc.Left, '3': aoc.Up,
}

// lagoonVolume digs the trench described by steps and returns the
// total area it encloses, border included.
func lagoonVolume(steps []digStep) int64 {
	pts := []aoc.Pt{{}}
	var perimeter int64
	cur := aoc.Pt{}
	for _, step := range steps {
		switch step.dir {
		case aoc.Up:
			cur.Y -= int(step.count)
		case aoc.Down:
			cur.Y += int(step.count)
		case aoc.Left:
			cur.X -= int(step.count)
		case aoc.Right:
			cur.X += int(step.count)
		}
		pts = append(pts, cur)
		perimeter += step.count
	}
	if cur != (aoc.Pt{}) {
		log.Fatal("dig plan does not close its loop")
	}
	return aoc.PolygonInnerArea(pts) + perimeter/2 + 1
}

func (s solver) digPlan(fromColor bool) []digStep {
	var steps []digStep
	s.ForLines(func(line string) {
		f := strings.Fields(line)
		if fromColor {
			color := strings.Trim(f[2], "(#)")
			steps = append(steps, digStep{
				dir:   trenchDirs[color[5]],
				count: aoc.MustGet(strconv.ParseInt(color[:5], 16, 64)),
			})
			return
		}
		steps = append(steps, digStep{
			dir:   trenchDirs[f[0][0]],
			count: int64(aoc.Int(f[1])),
		})
	})
	return steps
}

/*
want=62

R 6 (#70c710)
D 5 (#0dc571)
L 2 (#5713f0)
D 2 (#d2c081)
R 2 (#59c680)
D 2 (#411b91)
L 5 (#8ceee2)
U 2 (#caa173)
L 1 (#1b58a2)
U 2 (#caa171)
R 2 (#7807d2)
U 3 (#a77fa3)
L 2 (#015232)
U 2 (#7a21e3)
*/
func (s solver) D18p1() any {
	return lagoonVolume(s.digPlan(false))
}

// want=952408144115
func (s solver) D18p2() any {
	return lagoonVolume(s.digPlan(true))
}
