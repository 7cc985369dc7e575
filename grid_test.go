package aoc

import (
	"slices"
	"testing"
)

func TestParseGrid(t *testing.T) {
	g := ParseGrid([]byte("ab\ncd\nef\n"))
	if got := g.Size(); got != (Pt{2, 3}) {
		t.Fatalf("Size = %v, want {2 3}", got)
	}
	if got := g.At(Pt{1, 2}); got != 'f' {
		t.Errorf("At(1,2) = %c, want f", got)
	}
	if _, ok := g.AtOk(Pt{2, 0}); ok {
		t.Error("AtOk out of bounds reported ok")
	}
}

func TestRotateClockwise(t *testing.T) {
	g := ParseGrid([]byte("ab\ncd\nef"))
	r := g.RotateClockwise()
	want := ParseGrid([]byte("eca\nfdb"))
	if !slices.EqualFunc(r, want, slices.Equal[[]byte]) {
		t.Errorf("RotateClockwise = %q, want %q", r, want)
	}

	// Four quarter turns restore the original.
	for i := 0; i < 3; i++ {
		r = r.RotateClockwise()
	}
	if !slices.EqualFunc(r, g, slices.Equal[[]byte]) {
		t.Errorf("four rotations = %q, want %q", r, g)
	}
}

func TestTranspose(t *testing.T) {
	g := ParseGrid([]byte("ab\ncd"))
	tr := g.Transpose()
	want := ParseGrid([]byte("ac\nbd"))
	if !slices.EqualFunc(tr, want, slices.Equal[[]byte]) {
		t.Errorf("Transpose = %q, want %q", tr, want)
	}
}

func TestGridHash(t *testing.T) {
	g1 := ParseGrid([]byte("ab\ncd"))
	g2 := ParseGrid([]byte("ab\ncd"))
	g3 := ParseGrid([]byte("ab\nce"))
	if g1.Hash() != g2.Hash() {
		t.Error("identical grids hash differently")
	}
	if g1.Hash() == g3.Hash() {
		t.Error("different grids hash the same")
	}
}

func TestMove(t *testing.T) {
	g := MakeGrid[byte](3, 3)
	p, ok := g.Move(Path{Pt{1, 1}, Up})
	if !ok || p.Pt != (Pt{1, 0}) {
		t.Errorf("Move up = %v, %v", p, ok)
	}
	if _, ok := g.Move(Path{Pt{1, 0}, Up}); ok {
		t.Error("Move off the grid reported ok")
	}
}

func TestEdgePaths(t *testing.T) {
	g := MakeGrid[byte](3, 2)
	paths := g.EdgePaths()
	if len(paths) != 10 {
		t.Fatalf("len(EdgePaths) = %d, want 10", len(paths))
	}
	for _, p := range paths {
		if !g.InBounds(p.Pt) {
			t.Errorf("edge path %v out of bounds", p)
		}
	}
}

func TestPolygonInnerArea(t *testing.T) {
	tests := []struct {
		pts  []Pt
		want int64
	}{
		{
			pts: []Pt{
				{X: 0, Y: 0},
				{X: 5, Y: 0},
				{X: 5, Y: 5},
				{X: 0, Y: 5},
				{X: 0, Y: 0},
			},
			want: 25,
		},
	}

	for _, tt := range tests {
		if got := PolygonInnerArea(tt.pts); got != tt.want {
			t.Errorf("PolygonInnerArea(%v) = %v, want %v", tt.pts, got, tt.want)
		}
	}
}

func TestMDist(t *testing.T) {
	if got := (Pt{1, 2}).MDist(Pt{4, -2}); got != 7 {
		t.Errorf("MDist = %d, want 7", got)
	}
}

func TestDirectionReverse(t *testing.T) {
	pairs := [][2]Direction{{Up, Down}, {Left, Right}}
	for _, p := range pairs {
		if p[0].Reverse() != p[1] || p[1].Reverse() != p[0] {
			t.Errorf("%v and %v are not reverses", p[0], p[1])
		}
	}
}
