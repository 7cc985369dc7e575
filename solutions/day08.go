package main

import (
	"log"
	"strings"
)

type networkNode struct {
	left, right string
}

func parseNetwork(blocks []string) (string, map[string]networkNode) {
	instructions := strings.TrimSpace(blocks[0])
	nodes := make(map[string]networkNode)
	for _, line := range strings.Split(blocks[1], "\n") {
		place, rest, ok := strings.Cut(line, " = ")
		if !ok {
			panic("no = in node line: " + line)
		}
		left, right, ok := strings.Cut(strings.Trim(rest, "()"), ", ")
		if !ok {
			panic("bad node pair: " + line)
		}
		nodes[place] = networkNode{left: left, right: right}
	}
	return instructions, nodes
}

/*
want=2

RL

AAA = (BBB, CCC)
BBB = (DDD, EEE)
CCC = (ZZZ, GGG)
DDD = (DDD, DDD)
EEE = (EEE, EEE)
GGG = (GGG, GGG)
ZZZ = (ZZZ, ZZZ)
*/
func (s solver) D8p1() any {
	instructions, nodes := parseNetwork(s.Blocks())
	place := "AAA"
	steps := 0
	for place != "ZZZ" {
		node, ok := nodes[place]
		if !ok {
			log.Fatalf("no node %q in the network", place)
		}
		switch instructions[steps%len(instructions)] {
		case 'L':
			place = node.left
		case 'R':
			place = node.right
		default:
			log.Fatalf("bad instruction %q", instructions[steps%len(instructions)])
		}
		steps++
	}
	return steps
}
