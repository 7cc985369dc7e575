package main

import "testing"

func TestHandCategory(t *testing.T) {
	tests := []struct {
		hand   string
		jokers bool
		want   int
	}{
		{"23456", false, highCard},
		{"32T3K", false, onePair},
		{"KK677", false, twoPair},
		{"T55J5", false, threeOfAKind},
		{"23332", false, fullHouse},
		{"AA8AA", false, fourOfAKind},
		{"AAAAA", false, fiveOfAKind},

		{"T55J5", true, fourOfAKind},
		{"KTJJT", true, fourOfAKind},
		{"QQQJA", true, fourOfAKind},
		{"2345J", true, onePair},
		{"JJJJJ", true, fiveOfAKind},
		{"JJJJA", true, fiveOfAKind},
	}
	for _, tt := range tests {
		if got := handCategory(tt.hand, tt.jokers); got != tt.want {
			t.Errorf("handCategory(%q, jokers=%v) = %v, want %v", tt.hand, tt.jokers, got, tt.want)
		}
	}
}

func TestCompareHands(t *testing.T) {
	tests := []struct {
		a, b   string
		jokers bool
	}{
		// a beats b in each case.
		{"33332", "2AAAA", false},
		{"77888", "77788", false},
		{"KK677", "KTJJT", false},
		{"QQQQ2", "JKKK2", true}, // J ranks below everything with jokers
	}
	for _, tt := range tests {
		a := camelHand{cards: tt.a}
		b := camelHand{cards: tt.b}
		if got := compareHands(a, b, tt.jokers); got <= 0 {
			t.Errorf("compareHands(%q, %q, jokers=%v) = %v, want > 0", tt.a, tt.b, tt.jokers, got)
		}
		if got := compareHands(b, a, tt.jokers); got >= 0 {
			t.Errorf("compareHands(%q, %q, jokers=%v) = %v, want < 0", tt.b, tt.a, tt.jokers, got)
		}
	}
}
