package main

import (
	"strings"

	"github.com/AlexWaygood/aoc"
)

func (s solver) extrapolateHistories(forward bool) int {
	total := 0
	s.ForLines(func(line string) {
		total += aoc.Extrapolate(aoc.Ints(strings.Fields(line)...), forward)
	})
	return total
}

/*
want=114

0 3 6 9 12 15
1 3 6 10 15 21
10 13 16 21 30 45
*/
func (s solver) D9p1() any {
	return s.extrapolateHistories(true)
}

// want=2
func (s solver) D9p2() any {
	return s.extrapolateHistories(false)
}
