package main

import (
	"testing"

	"github.com/AlexWaygood/aoc"
)

var snapshotLines = []string{
	"1,0,1~1,2,1",
	"0,0,2~2,0,2",
	"0,2,3~2,2,3",
	"0,0,4~0,2,4",
	"2,0,5~2,2,5",
	"0,1,6~2,1,6",
	"1,1,8~1,1,9",
}

func settledSnapshot(t *testing.T) *brickStack {
	t.Helper()
	st, err := newBrickStack(snapshotLines)
	if err != nil {
		t.Fatalf("newBrickStack: %v", err)
	}
	st.settle()
	return st
}

func TestParseBrick(t *testing.T) {
	tests := []struct {
		line string
		want brick
	}{
		{"1,0,1~1,2,1", brick{minX: 1, maxX: 1, minY: 0, maxY: 2, minZ: 1, height: 1}},
		{"1,1,8~1,1,9", brick{minX: 1, maxX: 1, minY: 1, maxY: 1, minZ: 8, height: 2}},
		// Corners may come in either order.
		{"2,2,3~0,2,3", brick{minX: 0, maxX: 2, minY: 2, maxY: 2, minZ: 3, height: 1}},
		{"1,1,9~1,1,8", brick{minX: 1, maxX: 1, minY: 1, maxY: 1, minZ: 8, height: 2}},
	}
	for _, tt := range tests {
		got, err := parseBrick(tt.line)
		if err != nil {
			t.Errorf("parseBrick(%q): %v", tt.line, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseBrick(%q) = %+v, want %+v", tt.line, got, tt.want)
		}
	}
}

func TestParseBrickErrors(t *testing.T) {
	for _, line := range []string{
		"",
		"1,0,1",
		"1,0~1,2",
		"a,0,1~1,2,1",
		"1,0,1~1,x,1",
	} {
		if _, err := parseBrick(line); err == nil {
			t.Errorf("parseBrick(%q) succeeded, want error", line)
		}
	}
}

func TestSettle(t *testing.T) {
	st := settledSnapshot(t)
	wantMinZ := []int{1, 2, 2, 3, 3, 4, 5}
	for id, want := range wantMinZ {
		if got := st.bricks[id].minZ; got != want {
			t.Errorf("brick %d settled at z=%d, want %d", id, got, want)
		}
	}
}

func TestSettleKeepsBricksDisjoint(t *testing.T) {
	st := settledSnapshot(t)
	cells := 0
	for id, b := range st.bricks {
		if b.minZ < 1 {
			t.Errorf("brick %d settled below the ground at z=%d", id, b.minZ)
		}
		for z := b.minZ; z <= b.maxZ(); z++ {
			b.forFootprint(func(p aoc.Pt) {
				cells++
				if got, ok := st.cells[z][p]; !ok || got != id {
					t.Errorf("cell (%d,%d,%d) belongs to %v, want brick %d", p.X, p.Y, z, got, id)
				}
			})
		}
	}
	total := 0
	for _, layer := range st.cells {
		total += len(layer)
	}
	if total != cells {
		t.Errorf("occupancy index has %d cells, bricks cover %d", total, cells)
	}
}

func TestSettleIdempotent(t *testing.T) {
	st := settledSnapshot(t)
	before := make([]brick, len(st.bricks))
	copy(before, st.bricks)
	st.settle()
	for id, b := range st.bricks {
		if b != before[id] {
			t.Errorf("brick %d moved on a second settle: %+v -> %+v", id, before[id], b)
		}
	}
}

func TestSupportGraph(t *testing.T) {
	st := settledSnapshot(t)
	tests := []struct {
		id         int
		supporters []int
		dependents []int
	}{
		{0, nil, []int{1, 2}},      // rests on the ground, holds both horizontals
		{1, []int{0}, []int{3, 4}},
		{5, []int{3, 4}, []int{6}},
		{6, []int{5}, nil},
	}
	for _, tt := range tests {
		got := st.supportersOf(tt.id)
		if len(got) != len(tt.supporters) {
			t.Errorf("supportersOf(%d) = %v, want %v", tt.id, got, tt.supporters)
		}
		for _, want := range tt.supporters {
			if !got[want] {
				t.Errorf("supportersOf(%d) = %v, missing %d", tt.id, got, want)
			}
		}
		got = st.dependentsOf(tt.id)
		if len(got) != len(tt.dependents) {
			t.Errorf("dependentsOf(%d) = %v, want %v", tt.id, got, tt.dependents)
		}
		for _, want := range tt.dependents {
			if !got[want] {
				t.Errorf("dependentsOf(%d) = %v, missing %d", tt.id, got, want)
			}
		}
	}
}

func TestCountSafe(t *testing.T) {
	st := settledSnapshot(t)
	if got := st.countSafe(); got != 5 {
		t.Errorf("countSafe() = %d, want 5", got)
	}
	// Only the bottom brick and the sole support of the top brick
	// would bring others down.
	wantUnsafe := map[int]bool{0: true, 5: true}
	for id := range st.bricks {
		if got := st.safeToDisintegrate(id); got != !wantUnsafe[id] {
			t.Errorf("safeToDisintegrate(%d) = %v, want %v", id, got, !wantUnsafe[id])
		}
	}
}

func TestSingleBrickIsSafe(t *testing.T) {
	st, err := newBrickStack([]string{"0,0,1~0,3,1"})
	if err != nil {
		t.Fatalf("newBrickStack: %v", err)
	}
	st.settle()
	if got := st.countSafe(); got != 1 {
		t.Errorf("countSafe() = %d, want 1", got)
	}
}
