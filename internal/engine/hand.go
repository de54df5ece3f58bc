package engine

import (
	"sort"
	"strings"
)

// Hand is the ordered set of cards held by a seat, 0..13 at any time.
type Hand []Card

func (h Hand) HighCardPoints() int {
	total := 0
	for _, c := range h {
		total += c.Rank.HighCardPoints()
	}
	return total
}

// Distribution maps every suit to its count in the hand. All four suits are
// always present, zero for void suits.
func (h Hand) Distribution() map[Suit]int {
	dist := map[Suit]int{
		SuitClubs:    0,
		SuitDiamonds: 0,
		SuitHearts:   0,
		SuitSpades:   0,
	}
	for _, c := range h {
		dist[c.Suit]++
	}
	return dist
}

func (h Hand) SuitLength(s Suit) int {
	n := 0
	for _, c := range h {
		if c.Suit == s {
			n++
		}
	}
	return n
}

// LongestSuit returns the suit with the most cards; ties go to the
// higher-ranked suit. ok is false only for an empty hand.
func (h Hand) LongestSuit() (Suit, bool) {
	if len(h) == 0 {
		return SuitClubs, false
	}
	dist := h.Distribution()
	best := SuitClubs
	for _, s := range []Suit{SuitDiamonds, SuitHearts, SuitSpades} {
		if dist[s] >= dist[best] {
			best = s
		}
	}
	return best, true
}

// Balanced reports whether the hand's suit counts, sorted descending, are
// exactly 4-3-3-3 or 4-4-3-2. No other shape qualifies.
func (h Hand) Balanced() bool {
	dist := h.Distribution()
	counts := make([]int, 0, 4)
	for _, n := range dist {
		counts = append(counts, n)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(counts)))
	shape := [4]int{counts[0], counts[1], counts[2], counts[3]}
	return shape == [4]int{4, 3, 3, 3} || shape == [4]int{4, 4, 3, 2}
}

// CardsInSuit returns the hand's cards in the given suit, highest first.
func (h Hand) CardsInSuit(s Suit) []Card {
	out := []Card{}
	for _, c := range h {
		if c.Suit == s {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Rank.Value() > out[j].Rank.Value()
	})
	return out
}

func (h Hand) String() string {
	parts := make([]string, 0, len(h))
	for _, c := range h {
		parts = append(parts, c.String())
	}
	return strings.Join(parts, " ")
}
