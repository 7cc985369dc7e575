package main

import (
	"strings"

	"github.com/AlexWaygood/aoc"
)

func holidayHash(s string) int {
	v := 0
	for i := 0; i < len(s); i++ {
		v = (v + int(s[i])) * 17 % 256
	}
	return v
}

func (s solver) initSteps() []string {
	return strings.Split(strings.TrimSpace(string(s.Input())), ",")
}

/*
want=1320

rn=1,cm-,qp=3,cm=2,qp-,pc=4,ot=9,ab=5,pc-,pc=6,ot=7
*/
func (s solver) D15p1() any {
	return aoc.Sum(aoc.Parallel(s.initSteps(), holidayHash)...)
}

type lens struct {
	label string
	focal int
}

// want=145
func (s solver) D15p2() any {
	var boxes [256][]lens
	for _, step := range s.initSteps() {
		if label, ok := strings.CutSuffix(step, "-"); ok {
			box := holidayHash(label)
			for i, l := range boxes[box] {
				if l.label == label {
					boxes[box] = append(boxes[box][:i], boxes[box][i+1:]...)
					break
				}
			}
			continue
		}
		label, focal, _ := strings.Cut(step, "=")
		box := holidayHash(label)
		replaced := false
		for i, l := range boxes[box] {
			if l.label == label {
				boxes[box][i].focal = aoc.Int(focal)
				replaced = true
				break
			}
		}
		if !replaced {
			boxes[box] = append(boxes[box], lens{label, aoc.Int(focal)})
		}
	}

	power := 0
	for box, lenses := range boxes {
		for slot, l := range lenses {
			power += (box + 1) * (slot + 1) * l.focal
		}
	}
	return power
}
