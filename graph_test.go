package aoc

import "testing"

func TestLongestPath(t *testing.T) {
	var g Graph[string]
	g.AddEdge("a", "b", 1)
	g.AddEdge("b", "c", 5)
	g.AddEdge("a", "c", 2)

	// The detour through b beats the direct edge.
	got, ok := g.LongestPath("a", "c")
	if !ok || got != 6 {
		t.Errorf("LongestPath(a, c) = %d, %v; want 6, true", got, ok)
	}
}

func TestLongestPathDirected(t *testing.T) {
	var g Graph[int]
	g.AddDirectedEdge(1, 2, 3)
	g.AddDirectedEdge(2, 3, 4)

	if got, ok := g.LongestPath(1, 3); !ok || got != 7 {
		t.Errorf("LongestPath(1, 3) = %d, %v; want 7, true", got, ok)
	}
	if _, ok := g.LongestPath(3, 1); ok {
		t.Error("found a path against edge direction")
	}
}
