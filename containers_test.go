package aoc

import "testing"

func TestQueueOrder(t *testing.T) {
	q := NewQueue(1, 2)
	q.Push(3)
	var got []int
	q.While(func(v int) bool {
		got = append(got, v)
		return true
	})
	for i, want := range []int{1, 2, 3} {
		if got[i] != want {
			t.Fatalf("queue order = %v", got)
		}
	}
	if _, ok := q.Pop(); ok {
		t.Error("Pop on empty queue reported ok")
	}
}

func TestStackOrder(t *testing.T) {
	var s Stack[string]
	s.Push("a")
	s.Push("b")
	if v, ok := s.Peek(); !ok || v != "b" {
		t.Fatalf("Peek = %q, %v", v, ok)
	}
	if v, _ := s.Pop(); v != "b" {
		t.Fatalf("Pop = %q, want b", v)
	}
	if v, _ := s.Pop(); v != "a" {
		t.Fatalf("Pop = %q, want a", v)
	}
	if _, ok := s.Pop(); ok {
		t.Error("Pop on empty stack reported ok")
	}
}

func TestPQPopsHighestPriority(t *testing.T) {
	var pq PQ[string]
	pq.Push(&PQI[string]{V: "low", P: 1})
	pq.Push(&PQI[string]{V: "high", P: 10})
	mid := &PQI[string]{V: "mid", P: 5}
	pq.Push(mid)

	mid.P = 20
	pq.Update(mid)

	var got []string
	for pq.Len() > 0 {
		got = append(got, pq.Pop().V)
	}
	want := []string{"mid", "high", "low"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("pop order = %v, want %v", got, want)
		}
	}
}
