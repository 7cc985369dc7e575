package main

import (
	"strings"

	"github.com/AlexWaygood/aoc"
)

type springRow struct {
	conditions string
	groups     []int
}

func parseSpringRow(line string) springRow {
	conditions, rest, _ := strings.Cut(line, " ")
	return springRow{conditions: conditions, groups: aoc.Ints(strings.Split(rest, ",")...)}
}

// unfold repeats the row five times, joining the condition records
// with '?' and the group lists verbatim.
func (r springRow) unfold() springRow {
	out := springRow{conditions: r.conditions}
	for i := 0; i < 4; i++ {
		out.conditions += "?" + r.conditions
	}
	for i := 0; i < 5; i++ {
		out.groups = append(out.groups, r.groups...)
	}
	return out
}

// arrangements counts the assignments of '?' tiles that satisfy the
// damaged-group sizes.
func (r springRow) arrangements() int64 {
	memo := make(map[[2]int]int64)
	var count func(i, j int) int64
	count = func(i, j int) int64 {
		if i >= len(r.conditions) {
			if j == len(r.groups) {
				return 1
			}
			return 0
		}
		key := [2]int{i, j}
		if n, ok := memo[key]; ok {
			return n
		}
		var n int64
		if c := r.conditions[i]; c == '.' || c == '?' {
			n += count(i+1, j)
		}
		if c := r.conditions[i]; c == '#' || c == '?' {
			// Try placing group j starting here: it must fit,
			// contain no '.', and be followed by a non-'#'.
			if j < len(r.groups) {
				end := i + r.groups[j]
				if end <= len(r.conditions) &&
					!strings.Contains(r.conditions[i:end], ".") &&
					(end == len(r.conditions) || r.conditions[end] != '#') {
					n += count(end+1, j+1)
				}
			}
		}
		memo[key] = n
		return n
	}
	return count(0, 0)
}

/*
want=21

???.### 1,1,3
.??..??...?##. 1,1,3
?#?#?#?#?#?#?#? 1,3,1,6
????.#...#... 4,1,1
????.######..#####. 1,6,5
?###???????? 3,2,1
*/
func (s solver) D12p1() any {
	var total int64
	s.ForLines(func(line string) {
		total += parseSpringRow(line).arrangements()
	})
	return total
}

// want=525152
func (s solver) D12p2() any {
	var total int64
	s.ForLines(func(line string) {
		total += parseSpringRow(line).unfold().arrangements()
	})
	return total
}
