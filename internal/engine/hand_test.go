package engine

import "testing"

// handWithShape builds a hand with the given suit lengths using the lowest
// ranks of each suit.
func handWithShape(spades, hearts, diamonds, clubs int) Hand {
	h := Hand{}
	add := func(s Suit, n int) {
		for i := 0; i < n; i++ {
			h = append(h, Card{Suit: s, Rank: Rank(i)})
		}
	}
	add(SuitSpades, spades)
	add(SuitHearts, hearts)
	add(SuitDiamonds, diamonds)
	add(SuitClubs, clubs)
	return h
}

func TestDistributionSumsToHandSize(t *testing.T) {
	for _, h := range []Hand{
		{},
		handWithShape(4, 3, 3, 3),
		handWithShape(5, 0, 6, 2),
		handWithShape(2, 1, 0, 0),
	} {
		dist := h.Distribution()
		if len(dist) != 4 {
			t.Fatalf("expected all four suits keyed, got %d", len(dist))
		}
		total := 0
		for _, n := range dist {
			total += n
		}
		if total != len(h) {
			t.Fatalf("distribution sums to %d for hand of %d", total, len(h))
		}
	}
}

func TestHighCardPointsFullDeck(t *testing.T) {
	total := Hand(NewDeck()).HighCardPoints()
	if total != 40 {
		t.Fatalf("full deck HCP: got %d, want 40", total)
	}
}

func TestBalancedShapes(t *testing.T) {
	cases := []struct {
		hand Hand
		want bool
	}{
		{handWithShape(4, 3, 3, 3), true},
		{handWithShape(3, 4, 3, 3), true},
		{handWithShape(4, 4, 3, 2), true},
		{handWithShape(2, 3, 4, 4), true},
		{handWithShape(5, 3, 3, 2), false},
		{handWithShape(4, 4, 4, 1), false},
		{handWithShape(5, 4, 2, 2), false},
		{handWithShape(6, 3, 2, 2), false},
		{handWithShape(13, 0, 0, 0), false},
		{Hand{}, false},
	}
	for _, c := range cases {
		if got := c.hand.Balanced(); got != c.want {
			t.Fatalf("balanced(%v) = %v, want %v", c.hand.Distribution(), got, c.want)
		}
	}
}

func TestLongestSuitTieBreak(t *testing.T) {
	if s, ok := handWithShape(4, 4, 3, 2).LongestSuit(); !ok || s != SuitSpades {
		t.Fatalf("expected spades to win the tie, got %v", s)
	}
	if s, ok := handWithShape(0, 0, 4, 4).LongestSuit(); !ok || s != SuitDiamonds {
		t.Fatalf("expected diamonds over clubs, got %v", s)
	}
	if s, ok := handWithShape(2, 6, 3, 2).LongestSuit(); !ok || s != SuitHearts {
		t.Fatalf("expected hearts, got %v", s)
	}
	if _, ok := (Hand{}).LongestSuit(); ok {
		t.Fatalf("empty hand should have no longest suit")
	}
}

func TestCardsInSuitSortedHighFirst(t *testing.T) {
	h := Hand{
		{Suit: SuitSpades, Rank: Rank4},
		{Suit: SuitSpades, Rank: RankA},
		{Suit: SuitHearts, Rank: RankK},
		{Suit: SuitSpades, Rank: Rank10},
	}
	spades := h.CardsInSuit(SuitSpades)
	if len(spades) != 3 {
		t.Fatalf("expected 3 spades, got %d", len(spades))
	}
	if spades[0].Rank != RankA || spades[1].Rank != Rank10 || spades[2].Rank != Rank4 {
		t.Fatalf("spades not sorted high first: %v", spades)
	}
}
