package main

import (
	"slices"
	"strings"

	"github.com/AlexWaygood/aoc"
)

const (
	highCard = iota
	onePair
	twoPair
	threeOfAKind
	fullHouse
	fourOfAKind
	fiveOfAKind
)

// cardValue ranks a single card. With jokers in play, J is the
// weakest card instead of sitting between T and Q.
func cardValue(c byte, jokers bool) int {
	switch c {
	case 'T':
		return 10
	case 'J':
		if jokers {
			return 1
		}
		return 11
	case 'Q':
		return 12
	case 'K':
		return 13
	case 'A':
		return 14
	default:
		return aoc.Digit(rune(c))
	}
}

// handCategory classifies a five-card hand. Jokers count as copies
// of whichever card the hand already has most of.
func handCategory(hand string, jokers bool) int {
	counter := make(map[byte]int)
	numJokers := 0
	for i := 0; i < len(hand); i++ {
		if jokers && hand[i] == 'J' {
			numJokers++
			continue
		}
		counter[hand[i]]++
	}
	counts := []int{0}
	for _, c := range counter {
		counts = append(counts, c)
	}
	slices.SortFunc(counts, func(a, b int) int { return b - a })
	counts[0] += numJokers

	switch {
	case counts[0] == 5:
		return fiveOfAKind
	case counts[0] == 4:
		return fourOfAKind
	case counts[0] == 3 && counts[1] == 2:
		return fullHouse
	case counts[0] == 3:
		return threeOfAKind
	case counts[0] == 2 && counts[1] == 2:
		return twoPair
	case counts[0] == 2:
		return onePair
	default:
		return highCard
	}
}

type camelHand struct {
	cards string
	bid   int
}

func compareHands(a, b camelHand, jokers bool) int {
	if c := handCategory(a.cards, jokers) - handCategory(b.cards, jokers); c != 0 {
		return c
	}
	for i := 0; i < len(a.cards); i++ {
		if c := cardValue(a.cards[i], jokers) - cardValue(b.cards[i], jokers); c != 0 {
			return c
		}
	}
	return 0
}

func (s solver) totalWinnings(jokers bool) int {
	var hands []camelHand
	s.ForLines(func(line string) {
		cards, bid, ok := strings.Cut(line, " ")
		if !ok {
			panic("bad hand line: " + line)
		}
		hands = append(hands, camelHand{cards: cards, bid: aoc.Int(bid)})
	})
	slices.SortFunc(hands, func(a, b camelHand) int {
		return compareHands(a, b, jokers)
	})
	total := 0
	for i, h := range hands {
		total += (i + 1) * h.bid
	}
	return total
}

/*
want=6440

32T3K 765
T55J5 684
KK677 28
KTJJT 220
QQQJA 483
*/
func (s solver) D7p1() any {
	return s.totalWinnings(false)
}

// want=5905
func (s solver) D7p2() any {
	return s.totalWinnings(true)
}
