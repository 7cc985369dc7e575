package aoc

import (
	"slices"
	"testing"
)

func TestDigits(t *testing.T) {
	if got := Digits("907"); !slices.Equal(got, []int{9, 0, 7}) {
		t.Errorf("Digits = %v", got)
	}
}

func TestSolveQuad(t *testing.T) {
	// x^2 - 5x + 6 = 0 has roots 3 and 2.
	x1, x2 := SolveQuad(1.0, -5.0, 6.0)
	if x1 != 3 || x2 != 2 {
		t.Errorf("SolveQuad = %v, %v; want 3, 2", x1, x2)
	}
}

func TestExtrapolate(t *testing.T) {
	tests := []struct {
		seq     []int
		forward bool
		want    int
	}{
		{[]int{0, 3, 6, 9, 12, 15}, true, 18},
		{[]int{1, 3, 6, 10, 15, 21}, true, 28},
		{[]int{10, 13, 16, 21, 30, 45}, true, 68},
		{[]int{10, 13, 16, 21, 30, 45}, false, 5},
		{[]int{0, 3, 6, 9, 12, 15}, false, -3},
	}
	for _, tt := range tests {
		if got := Extrapolate(tt.seq, tt.forward); got != tt.want {
			t.Errorf("Extrapolate(%v, %v) = %d, want %d", tt.seq, tt.forward, got, tt.want)
		}
	}
}

func TestSumAndAbsDiff(t *testing.T) {
	if got := Sum(1, 2, 3); got != 6 {
		t.Errorf("Sum = %d, want 6", got)
	}
	if got := AbsDiff(3, 8); got != 5 {
		t.Errorf("AbsDiff = %d, want 5", got)
	}
}
