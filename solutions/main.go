// Command solutions runs Alex's Advent of Code 2023 solutions.
package main

import (
	"embed"

	"github.com/AlexWaygood/aoc"
)

//go:embed *.go
var src embed.FS

func main() {
	aoc.Run(2023, src, &solver{})
}

type solver struct {
	*aoc.Puzzle
}
