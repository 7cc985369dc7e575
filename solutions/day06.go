package main

import (
	"math"
	"strings"

	"github.com/AlexWaygood/aoc"
)

// waysToWin counts the integer hold times that beat the record: the
// boat travels t*(total-t), so the winning holds lie strictly
// between the roots of -t^2 + total*t - record.
func waysToWin(total, record int) int {
	x1, x2 := aoc.SolveQuad(-1.0, float64(total), -float64(record))
	lo := int(math.Floor(x1)) + 1
	hi := int(math.Ceil(x2)) - 1
	return hi - lo + 1
}

/*
want=288

Time:      7  15   30
Distance:  9  40  200
*/
func (s solver) D6p1() any {
	lines := s.Lines()
	times := aoc.Ints(strings.Fields(aoc.TrimPrefix(lines[0], "Time:"))...)
	distances := aoc.Ints(strings.Fields(aoc.TrimPrefix(lines[1], "Distance:"))...)
	product := 1
	for i, t := range times {
		product *= waysToWin(t, distances[i])
	}
	return product
}

// want=71503
func (s solver) D6p2() any {
	lines := s.Lines()
	total := aoc.Int(strings.Join(strings.Fields(aoc.TrimPrefix(lines[0], "Time:")), ""))
	record := aoc.Int(strings.Join(strings.Fields(aoc.TrimPrefix(lines[1], "Distance:")), ""))
	return waysToWin(total, record)
}
