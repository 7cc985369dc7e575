package main

import (
	"strings"

	"github.com/AlexWaygood/aoc"
)

type pulseModule struct {
	kind    byte // '%' flip-flop, '&' conjunction, 'b' broadcaster, 0 sink
	outputs []string

	on     bool            // flip-flop state
	inputs map[string]bool // conjunction memory: last pulse per input
}

type pulse struct {
	from, to string
	high     bool
}

func (s solver) parseModules() map[string]*pulseModule {
	modules := make(map[string]*pulseModule)
	s.ForLines(func(line string) {
		name, outs, _ := strings.Cut(line, " -> ")
		m := &pulseModule{kind: 'b', outputs: strings.Split(outs, ", ")}
		if name[0] == '%' || name[0] == '&' {
			m.kind = name[0]
			name = name[1:]
		}
		if m.kind == '&' {
			m.inputs = make(map[string]bool)
		}
		modules[name] = m
	})
	// Conjunctions start remembering a low pulse from every input,
	// so they need to know their inputs up front.
	for name, m := range modules {
		for _, out := range m.outputs {
			if dst, ok := modules[out]; ok && dst.kind == '&' {
				dst.inputs[name] = false
			}
		}
	}
	return modules
}

// pressButton sends a low pulse to the broadcaster and propagates
// until the machine settles, returning the low and high pulse counts.
func pressButton(modules map[string]*pulseModule) (low, high int) {
	q := aoc.NewQueue(pulse{from: "button", to: "broadcaster"})
	q.While(func(p pulse) bool {
		if p.high {
			high++
		} else {
			low++
		}
		m, ok := modules[p.to]
		if !ok {
			return true // untyped sink, e.g. "output" or "rx"
		}
		send := p.high
		switch m.kind {
		case '%':
			if p.high {
				return true
			}
			m.on = !m.on
			send = m.on
		case '&':
			m.inputs[p.from] = p.high
			send = false
			for _, h := range m.inputs {
				if !h {
					send = true
					break
				}
			}
		}
		for _, out := range m.outputs {
			q.Push(pulse{from: p.to, to: out, high: send})
		}
		return true
	})
	return low, high
}

/*
want=32000000

broadcaster -> a, b, c
%a -> b
%b -> c
%c -> inv
&inv -> a
*/
func (s solver) D20p1() any {
	modules := s.parseModules()
	var low, high int
	for i := 0; i < 1000; i++ {
		l, h := pressButton(modules)
		low += l
		high += h
	}
	return low * high
}
