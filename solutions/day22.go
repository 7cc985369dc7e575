package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/AlexWaygood/aoc"
)

// A brick is a straight line of cells, stored with its corners
// normalized so min <= max on every axis.
type brick struct {
	minX, maxX int
	minY, maxY int
	minZ       int
	height     int
}

func (b brick) maxZ() int {
	return b.minZ + b.height - 1
}

// forFootprint calls f for every (x, y) column the brick covers.
func (b brick) forFootprint(f func(aoc.Pt)) {
	for x := b.minX; x <= b.maxX; x++ {
		for y := b.minY; y <= b.maxY; y++ {
			f(aoc.Pt{X: x, Y: y})
		}
	}
}

func parseBrick(line string) (brick, error) {
	lo, hi, ok := strings.Cut(line, "~")
	if !ok {
		return brick{}, fmt.Errorf("brick %q: missing ~", line)
	}
	var a, b aoc.Pt3[int]
	for _, corner := range []struct {
		s  string
		pt *aoc.Pt3[int]
	}{{lo, &a}, {hi, &b}} {
		if _, err := fmt.Sscanf(corner.s, "%d,%d,%d", &corner.pt.X, &corner.pt.Y, &corner.pt.Z); err != nil {
			return brick{}, fmt.Errorf("brick %q: %w", line, err)
		}
	}
	return brick{
		minX: min(a.X, b.X), maxX: max(a.X, b.X),
		minY: min(a.Y, b.Y), maxY: max(a.Y, b.Y),
		minZ:   min(a.Z, b.Z),
		height: aoc.AbsDiff(a.Z, b.Z) + 1,
	}, nil
}

// A brickStack tracks every brick in the snapshot plus an occupancy
// index: cells[z][xy] is the id of the brick filling that cell.
type brickStack struct {
	bricks []brick
	cells  map[int]map[aoc.Pt]int
}

func newBrickStack(lines []string) (*brickStack, error) {
	st := &brickStack{cells: make(map[int]map[aoc.Pt]int)}
	for _, line := range lines {
		b, err := parseBrick(line)
		if err != nil {
			return nil, err
		}
		id := len(st.bricks)
		st.bricks = append(st.bricks, b)
		for z := b.minZ; z <= b.maxZ(); z++ {
			b.forFootprint(func(p aoc.Pt) {
				st.claim(z, p, id)
			})
		}
	}
	return st, nil
}

func (st *brickStack) claim(z int, p aoc.Pt, id int) {
	layer, ok := st.cells[z]
	if !ok {
		layer = make(map[aoc.Pt]int)
		st.cells[z] = layer
	}
	layer[p] = id
}

// free reports whether brick id could occupy layer z over its
// footprint. Cells the brick already fills do not block it.
func (st *brickStack) free(id, z int) bool {
	if z < 1 {
		return false
	}
	open := true
	st.bricks[id].forFootprint(func(p aoc.Pt) {
		if other, ok := st.cells[z][p]; ok && other != id {
			open = false
		}
	})
	return open
}

// settle drops every brick, lowest first, until each rests on the
// ground or another brick.
func (st *brickStack) settle() {
	order := make([]int, len(st.bricks))
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(a, b int) int {
		return st.bricks[a].minZ - st.bricks[b].minZ
	})
	for _, id := range order {
		for st.free(id, st.bricks[id].minZ-1) {
			b := &st.bricks[id]
			b.forFootprint(func(p aoc.Pt) {
				st.claim(b.minZ-1, p, id)
				delete(st.cells[b.maxZ()], p)
			})
			b.minZ--
		}
	}
}

// supportersOf returns the bricks directly beneath id that it rests on.
func (st *brickStack) supportersOf(id int) map[int]bool {
	supporters := make(map[int]bool)
	below := st.bricks[id].minZ - 1
	st.bricks[id].forFootprint(func(p aoc.Pt) {
		if other, ok := st.cells[below][p]; ok {
			supporters[other] = true
		}
	})
	return supporters
}

// dependentsOf returns the bricks resting directly on id.
func (st *brickStack) dependentsOf(id int) map[int]bool {
	dependents := make(map[int]bool)
	above := st.bricks[id].maxZ() + 1
	st.bricks[id].forFootprint(func(p aoc.Pt) {
		if other, ok := st.cells[above][p]; ok {
			dependents[other] = true
		}
	})
	return dependents
}

// safeToDisintegrate reports whether removing id would leave every
// brick resting on it with at least one other supporter.
func (st *brickStack) safeToDisintegrate(id int) bool {
	for dep := range st.dependentsOf(id) {
		if len(st.supportersOf(dep)) < 2 {
			return false
		}
	}
	return true
}

func (st *brickStack) countSafe() int {
	safe := 0
	for id := range st.bricks {
		if st.safeToDisintegrate(id) {
			safe++
		}
	}
	return safe
}

/*
want=5

1,0,1~1,2,1
0,0,2~2,0,2
0,2,3~2,2,3
0,0,4~0,2,4
2,0,5~2,2,5
0,1,6~2,1,6
1,1,8~1,1,9
*/
func (s solver) D22p1() any {
	st := aoc.MustGet(newBrickStack(s.Lines()))
	st.settle()
	return st.countSafe()
}
