package main

import (
	"log"
	"strings"

	"github.com/AlexWaygood/aoc"
)

type workflowRule struct {
	attr    byte // one of x, m, a, s; 0 for the fallback rule
	cmp     byte // '<' or '>'
	value   int
	outcome string // workflow name, "A" or "R"
}

type machinePart map[byte]int

func (p machinePart) rating() int {
	return p['x'] + p['m'] + p['a'] + p['s']
}

func parseWorkflow(line string) (string, []workflowRule) {
	name, rest, ok := strings.Cut(line, "{")
	if !ok {
		log.Fatalf("bad workflow: %q", line)
	}
	var rules []workflowRule
	for _, r := range strings.Split(strings.TrimSuffix(rest, "}"), ",") {
		cond, outcome, ok := strings.Cut(r, ":")
		if !ok {
			rules = append(rules, workflowRule{outcome: r})
			continue
		}
		rules = append(rules, workflowRule{
			attr:    cond[0],
			cmp:     cond[1],
			value:   aoc.Int(cond[2:]),
			outcome: outcome,
		})
	}
	return name, rules
}

func parsePart(line string) machinePart {
	part := make(machinePart)
	for _, f := range strings.Split(strings.Trim(line, "{}"), ",") {
		attr, value, _ := strings.Cut(f, "=")
		part[attr[0]] = aoc.Int(value)
	}
	return part
}

func accepted(workflows map[string][]workflowRule, part machinePart) bool {
	cur := "in"
	for cur != "A" && cur != "R" {
		rules, ok := workflows[cur]
		if !ok {
			log.Fatalf("unknown workflow %q", cur)
		}
		for _, r := range rules {
			if r.attr != 0 {
				v := part[r.attr]
				if (r.cmp == '<' && v >= r.value) || (r.cmp == '>' && v <= r.value) {
					continue
				}
			}
			cur = r.outcome
			break
		}
	}
	return cur == "A"
}

/*
want=19114

px{a<2006:qkq,m>2090:A,rfg}
pv{a>1716:R,A}
lnx{m>1548:A,A}
rfg{s<537:gd,x>2440:R,A}
qs{s>3448:A,lnx}
qkq{x<1416:A,crn}
crn{x>2662:A,R}
in{s<1351:px,qqz}
qqz{s>2770:qs,m<1801:hdj,R}
gd{a>3333:R,R}
hdj{m>838:A,pv}

{x=787,m=2655,a=1222,s=2876}
{x=1679,m=44,a=2067,s=496}
{x=2036,m=264,a=79,s=2244}
{x=2461,m=1339,a=466,s=291}
{x=2127,m=1623,a=2188,s=1013}
*/
func (s solver) D19p1() any {
	blocks := s.Blocks()
	workflows := make(map[string][]workflowRule)
	for _, line := range strings.Split(blocks[0], "\n") {
		name, rules := parseWorkflow(line)
		workflows[name] = rules
	}

	total := 0
	for _, line := range strings.Split(blocks[1], "\n") {
		if part := parsePart(line); accepted(workflows, part) {
			total += part.rating()
		}
	}
	return total
}
