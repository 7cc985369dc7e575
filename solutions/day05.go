package main

import (
	"slices"
	"strings"

	"github.com/AlexWaygood/aoc"
)

// span is a half-open range of seed/soil/... numbers.
type span struct {
	start, end int
}

type mapRow struct {
	dst, src, length int
}

// almanacMap remaps numbers: values inside a row's source range are
// shifted to its destination range, everything else passes through.
type almanacMap []mapRow

func parseAlmanac(blocks []string) ([]int, []almanacMap) {
	seeds := aoc.Ints(strings.Fields(aoc.TrimPrefix(blocks[0], "seeds:"))...)
	var maps []almanacMap
	for _, block := range blocks[1:] {
		var m almanacMap
		for _, line := range strings.Split(block, "\n")[1:] {
			nums := aoc.Ints(strings.Fields(line)...)
			m = append(m, mapRow{dst: nums[0], src: nums[1], length: nums[2]})
		}
		maps = append(maps, m)
	}
	return seeds, maps
}

func (m almanacMap) convert(v int) int {
	for _, r := range m {
		if v >= r.src && v < r.src+r.length {
			return r.dst + (v - r.src)
		}
	}
	return v
}

// convertSpans remaps whole spans at once, splitting them where they
// straddle a row boundary.
func (m almanacMap) convertSpans(spans []span) []span {
	var out []span
	work := aoc.NewQueue(spans...)
	work.While(func(s span) bool {
		for _, r := range m {
			lo := max(s.start, r.src)
			hi := min(s.end, r.src+r.length)
			if lo >= hi {
				continue
			}
			out = append(out, span{lo - r.src + r.dst, hi - r.src + r.dst})
			if s.start < lo {
				work.Push(span{s.start, lo})
			}
			if hi < s.end {
				work.Push(span{hi, s.end})
			}
			return true
		}
		out = append(out, s)
		return true
	})
	return out
}

/*
want=35

seeds: 79 14 55 13

seed-to-soil map:
50 98 2
52 50 48

soil-to-fertilizer map:
0 15 37
37 52 2
39 0 15

fertilizer-to-water map:
49 53 8
0 11 42
42 0 7
57 7 4

water-to-light map:
88 18 7
18 25 70

light-to-temperature map:
45 77 23
81 45 19
68 64 13

temperature-to-humidity map:
0 69 1
1 0 69

humidity-to-location map:
60 56 37
56 93 4
*/
func (s solver) D5p1() any {
	seeds, maps := parseAlmanac(s.Blocks())
	locations := make([]int, len(seeds))
	for i, v := range seeds {
		for _, m := range maps {
			v = m.convert(v)
		}
		locations[i] = v
	}
	return slices.Min(locations)
}

// want=46
func (s solver) D5p2() any {
	seeds, maps := parseAlmanac(s.Blocks())
	var spans []span
	for i := 0; i < len(seeds); i += 2 {
		spans = append(spans, span{seeds[i], seeds[i] + seeds[i+1]})
	}
	for _, m := range maps {
		spans = m.convertSpans(spans)
	}
	best := spans[0].start
	for _, s := range spans[1:] {
		best = min(best, s.start)
	}
	return best
}
