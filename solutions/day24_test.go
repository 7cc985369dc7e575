package main

import (
	"testing"

	"github.com/AlexWaygood/aoc"
)

func hail(px, py, vx, vy int) hailstone {
	return hailstone{
		pos: aoc.Pt3[int]{X: px, Y: py},
		vel: aoc.Pt3[int]{X: vx, Y: vy},
	}
}

func TestPathsCrossWithin(t *testing.T) {
	tests := []struct {
		name string
		a, b hailstone
		want bool
	}{
		{"crossing inside", hail(19, 13, -2, 1), hail(18, 19, -1, -1), true},
		{"crossing inside 2", hail(19, 13, -2, 1), hail(20, 25, -2, -2), true},
		{"crossing outside", hail(19, 13, -2, 1), hail(12, 31, -1, -2), false},
		{"in A's past", hail(19, 13, -2, 1), hail(20, 19, 1, -5), false},
		{"parallel", hail(18, 19, -1, -1), hail(20, 25, -2, -2), false},
		{"in both pasts", hail(20, 25, -2, -2), hail(20, 19, 1, -5), false},
	}
	for _, tt := range tests {
		if got := pathsCrossWithin(tt.a, tt.b, 7, 27); got != tt.want {
			t.Errorf("%s: pathsCrossWithin = %v, want %v", tt.name, got, tt.want)
		}
	}
}
