package engine

import "math/rand"

// Practice presets bias the deal toward a targeted bidding scenario by
// redealing until a constraint on the human's hand (and sometimes the
// partner's) holds.
type Preset int

const (
	PresetNone Preset = iota
	PresetPolishClub
	PresetStandardAmerican
	PresetTwoOverOne
	PresetStayman
	PresetJacobyTransfers
	PresetRKCB
)

func (p Preset) String() string {
	switch p {
	case PresetNone:
		return "none"
	case PresetPolishClub:
		return "polishClub"
	case PresetStandardAmerican:
		return "standardAmerican"
	case PresetTwoOverOne:
		return "twoOverOne"
	case PresetStayman:
		return "stayman"
	case PresetJacobyTransfers:
		return "jacobyTransfers"
	case PresetRKCB:
		return "rkcb"
	default:
		return "unknown"
	}
}

func Presets() []Preset {
	return []Preset{
		PresetNone,
		PresetPolishClub,
		PresetStandardAmerican,
		PresetTwoOverOne,
		PresetStayman,
		PresetJacobyTransfers,
		PresetRKCB,
	}
}

func ParsePreset(s string) (Preset, bool) {
	for _, p := range Presets() {
		if p.String() == s {
			return p, true
		}
	}
	if s == "" {
		return PresetNone, true
	}
	return PresetNone, false
}

func (p Preset) satisfied(hand, partner Hand) bool {
	switch p {
	case PresetPolishClub:
		return hand.HighCardPoints() >= 16 && hand.SuitLength(SuitClubs) >= 3
	case PresetStandardAmerican:
		hcp := hand.HighCardPoints()
		return hcp >= 12 && hcp <= 19 &&
			(hand.SuitLength(SuitSpades) >= 5 || hand.SuitLength(SuitHearts) >= 5)
	case PresetTwoOverOne:
		hcp := hand.HighCardPoints()
		return hcp >= 12 && hcp <= 19 &&
			(hand.SuitLength(SuitSpades) >= 5 || hand.SuitLength(SuitHearts) >= 5) &&
			partner.HighCardPoints() >= 12
	case PresetStayman:
		hcp := hand.HighCardPoints()
		return hcp >= 15 && hcp <= 17 && hand.Balanced()
	case PresetJacobyTransfers:
		hcp := hand.HighCardPoints()
		return hcp >= 15 && hcp <= 17 && hand.Balanced() &&
			(partner.SuitLength(SuitSpades) >= 5 || partner.SuitLength(SuitHearts) >= 5)
	case PresetRKCB:
		return hand.SuitLength(SuitSpades)+partner.SuitLength(SuitSpades) >= 8 ||
			hand.SuitLength(SuitHearts)+partner.SuitLength(SuitHearts) >= 8
	default:
		return true
	}
}

// dealAttempts caps constrained redeals before falling back to a plain deal.
const dealAttempts = 400

// NewDeck returns a fresh 52-card deck. Built per call; there is no shared
// deck between game sessions.
func NewDeck() []Card {
	deck := make([]Card, 0, 52)
	for _, s := range Suits() {
		for _, r := range Ranks() {
			deck = append(deck, Card{Suit: s, Rank: r})
		}
	}
	return deck
}

func Shuffle(deck []Card, rng *rand.Rand) []Card {
	shuffled := make([]Card, len(deck))
	copy(shuffled, deck)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}

func dealOnce(rng *rand.Rand) map[Seat]Hand {
	shuffled := Shuffle(NewDeck(), rng)
	order := Seats()
	hands := map[Seat]Hand{}
	for i, c := range shuffled {
		seat := order[i%len(order)]
		hands[seat] = append(hands[seat], c)
	}
	return hands
}

// DealRound shuffles and deals 13 cards round-robin to each seat, then
// resets the auction in the same step. With a preset it redeals up to
// dealAttempts times looking for a satisfying deal; if none is found it
// silently degrades to one final unconstrained deal. The return value
// reports whether the preset constraint was met (always true without one).
func DealRound(g *GameState, rng *rand.Rand, human Seat, preset Preset) bool {
	if preset == PresetNone {
		g.ResetAuction(dealOnce(rng))
		return true
	}
	for attempt := 0; attempt < dealAttempts; attempt++ {
		hands := dealOnce(rng)
		if preset.satisfied(hands[human], hands[human.Partner()]) {
			g.ResetAuction(hands)
			return true
		}
	}
	g.ResetAuction(dealOnce(rng))
	return false
}
