package main

import "strings"

var digitWords = []string{
	"one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
}

// digitAt reports the digit starting at index i of line, if any.
// When words is true, spelled-out digits count too.
func digitAt(line string, i int, words bool) (int, bool) {
	if c := line[i]; c >= '0' && c <= '9' {
		return int(c - '0'), true
	}
	if words {
		for d, w := range digitWords {
			if strings.HasPrefix(line[i:], w) {
				return d + 1, true
			}
		}
	}
	return 0, false
}

// calibrationValue combines the first digit and the last digit of
// the line into a two-digit number. Overlapping spelled-out digits
// are fine: the first is found scanning forwards, the last scanning
// backwards.
func calibrationValue(line string, words bool) int {
	value := 0
	for i := 0; i < len(line); i++ {
		if d, ok := digitAt(line, i, words); ok {
			value = d * 10
			break
		}
	}
	for i := len(line) - 1; i >= 0; i-- {
		if d, ok := digitAt(line, i, words); ok {
			value += d
			break
		}
	}
	return value
}

/*
want=142

1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet
*/
func (s solver) D1p1() any {
	total := 0
	s.ForLines(func(line string) {
		total += calibrationValue(line, false)
	})
	return total
}

/*
want=281

two1nine
eightwothree
abcone2threexyz
xtwone3four
4nineeightseven2
zoneight234
7pqrstsixteen
*/
func (s solver) D1p2() any {
	total := 0
	s.ForLines(func(line string) {
		total += calibrationValue(line, true)
	})
	return total
}
