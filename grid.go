package aoc

import (
	"reflect"
	"strings"

	"golang.org/x/exp/constraints"
	"tailscale.com/util/deephash"
)

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

type Pt3[T constraints.Signed] struct {
	X, Y, Z T
}

// ForImmediateNeighbors calls f for the four orthogonal neighbors of
// p, stopping early if f returns false.
func (p Pt2[T]) ForImmediateNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	p.ForNeighbors(func(n Pt2[T]) bool {
		if p.X == n.X || p.Y == n.Y {
			return f(n)
		}
		return true
	})
}

// ForNeighbors calls f for all eight neighbors of p, stopping early
// if f returns false.
func (p Pt2[T]) ForNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	for y := T(-1); y <= 1; y++ {
		for x := T(-1); x <= 1; x++ {
			if x == 0 && y == 0 {
				continue
			}
			if !f(Pt2[T]{p.X + x, p.Y + y}) {
				return
			}
		}
	}
}

// MDist returns the manhattan distance between a and b.
func (a Pt2[T]) MDist(b Pt2[T]) T {
	return AbsDiff(a.X, b.X) + AbsDiff(a.Y, b.Y)
}

type Grid[T any] [][]T

// ParseGrid splits in into a grid of bytes, one row per line.
func ParseGrid(in []byte) Grid[byte] {
	var g Grid[byte]
	for _, line := range strings.Split(strings.TrimRight(string(in), "\n"), "\n") {
		g = append(g, []byte(strings.TrimRight(line, "\r")))
	}
	return g
}

func (g Grid[T]) At(p Pt) T {
	return g[p.Y][p.X]
}

func (g Grid[T]) Set(p Pt, v T) {
	g[p.Y][p.X] = v
}

func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if p.X < 0 || p.Y < 0 || p.X >= len(g[0]) || p.Y >= len(g) {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

func (g Grid[T]) InBounds(p Pt) bool {
	_, ok := g.AtOk(p)
	return ok
}

func MakeGrid[T any](x, y int) Grid[T] {
	out := make(Grid[T], y)
	for i := range out {
		out[i] = make([]T, x)
	}
	return out
}

func (g Grid[T]) Size() Pt {
	if len(g) == 0 {
		return Pt{}
	}
	return Pt{len(g[0]), len(g)}
}

// ForPts calls f for every point of the grid, row by row.
func (g Grid[T]) ForPts(f func(p Pt, v T)) {
	for y, row := range g {
		for x, v := range row {
			f(Pt{x, y}, v)
		}
	}
}

type hashFn[T any] func(*T) deephash.Sum

var hashers map[reflect.Type]any // map[reflect.Type]hashFn[T]

func (g Grid[T]) Hash() deephash.Sum {
	if hashers == nil {
		hashers = make(map[reflect.Type]any)
	}
	rt := reflect.TypeOf(g)
	h, ok := hashers[rt]
	if !ok {
		h = deephash.HasherForType[Grid[T]]()
		hashers[rt] = h
	}
	return h.(func(*Grid[T]) deephash.Sum)(&g)
}

func (g Grid[T]) Transpose() Grid[T] {
	size := g.Size()
	out := MakeGrid[T](size.Y, size.X)
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			out[x][y] = g[y][x]
		}
	}
	return out
}

// RotateClockwise returns a new grid rotated a quarter turn
// clockwise, so the old west edge becomes the new north edge.
func (g Grid[T]) RotateClockwise() Grid[T] {
	size := g.Size()
	out := MakeGrid[T](size.Y, size.X)
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			out[x][size.Y-1-y] = g[y][x]
		}
	}
	return out
}

type Path struct {
	Pt  Pt
	Dir Direction
}

// Move advances p one step in its direction, reporting whether the
// destination is still on the grid.
func (g Grid[T]) Move(p Path) (Path, bool) {
	switch p.Dir {
	case Up:
		p.Pt.Y--
	case Right:
		p.Pt.X++
	case Down:
		p.Pt.Y++
	case Left:
		p.Pt.X--
	}
	if !g.InBounds(p.Pt) {
		return Path{}, false
	}
	return p, true
}

type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

func (d Direction) Reverse() Direction {
	return (d + 2) % 4
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "<"
	case Right:
		return ">"
	case Up:
		return "^"
	case Down:
		return "v"
	}
	return ""
}

// EdgePaths returns one inward-facing path for every cell on the
// grid's border.
func (g Grid[T]) EdgePaths() []Path {
	size := g.Size()
	var paths []Path
	for x := 0; x < size.X; x++ {
		paths = append(paths, Path{
			Pt:  Pt{x, 0},
			Dir: Down,
		}, Path{
			Pt:  Pt{x, size.Y - 1},
			Dir: Up,
		})
	}
	for y := 0; y < size.Y; y++ {
		paths = append(paths, Path{
			Pt:  Pt{0, y},
			Dir: Right,
		}, Path{
			Pt:  Pt{size.X - 1, y},
			Dir: Left,
		})
	}
	return paths
}

// PolygonInnerArea returns the area enclosed by the closed polygon
// pts (the first point repeated at the end), via the shoelace
// formula.
func PolygonInnerArea(pts []Pt) int64 {
	var area int64

	for i := 1; i < len(pts); i++ {
		a := pts[i-1]
		b := pts[i]
		area += int64(a.X)*int64(b.Y) - int64(a.Y)*int64(b.X)
	}
	if area < 0 {
		area = -area
	}
	return area >> 1
}
