package main

import (
	"testing"

	"github.com/AlexWaygood/aoc"
)

func TestLagoonVolume(t *testing.T) {
	// A 3x3 square trench: 8 border tiles around 1 interior tile.
	steps := []digStep{
		{aoc.Right, 2},
		{aoc.Down, 2},
		{aoc.Left, 2},
		{aoc.Up, 2},
	}
	if got := lagoonVolume(steps); got != 9 {
		t.Errorf("lagoonVolume = %d, want 9", got)
	}
}

func TestTrenchDirsFromColor(t *testing.T) {
	tests := []struct {
		digit byte
		want  aoc.Direction
	}{
		{'0', aoc.Right},
		{'1', aoc.Down},
		{'2', aoc.Left},
		{'3', aoc.Up},
	}
	for _, tt := range tests {
		if got := trenchDirs[tt.digit]; got != tt.want {
			t.Errorf("trenchDirs[%q] = %v, want %v", tt.digit, got, tt.want)
		}
	}
}
