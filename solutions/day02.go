package main

import (
	"strings"

	"github.com/AlexWaygood/aoc"
)

type cubeDraw struct {
	red, green, blue int
}

var bagContents = cubeDraw{red: 12, green: 13, blue: 14}

func (d cubeDraw) possible() bool {
	return d.red <= bagContents.red && d.green <= bagContents.green && d.blue <= bagContents.blue
}

// parseGame returns the game id and the draws shown in one line of
// the form "Game 1: 3 blue, 4 red; 1 red, 2 green".
func parseGame(line string) (int, []cubeDraw) {
	idStr, rest, ok := strings.Cut(aoc.TrimPrefix(line, "Game "), ": ")
	if !ok {
		panic("no colon in game line: " + line)
	}
	var draws []cubeDraw
	for _, drawDesc := range strings.Split(rest, "; ") {
		var d cubeDraw
		for _, colorDesc := range strings.Split(drawDesc, ", ") {
			num, color, _ := strings.Cut(colorDesc, " ")
			switch color {
			case "red":
				d.red = aoc.Int(num)
			case "green":
				d.green = aoc.Int(num)
			case "blue":
				d.blue = aoc.Int(num)
			default:
				panic("unknown color: " + color)
			}
		}
		draws = append(draws, d)
	}
	return aoc.Int(idStr), draws
}

/*
want=8

Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green
*/
func (s solver) D2p1() any {
	total := 0
	s.ForLines(func(line string) {
		id, draws := parseGame(line)
		for _, d := range draws {
			if !d.possible() {
				return
			}
		}
		total += id
	})
	return total
}
