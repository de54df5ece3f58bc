package engine

import (
	"fmt"
	"time"
)

type Suit int

const (
	SuitClubs Suit = iota
	SuitDiamonds
	SuitHearts
	SuitSpades
)

func Suits() []Suit {
	return []Suit{SuitClubs, SuitDiamonds, SuitHearts, SuitSpades}
}

func (s Suit) String() string {
	switch s {
	case SuitClubs:
		return "C"
	case SuitDiamonds:
		return "D"
	case SuitHearts:
		return "H"
	case SuitSpades:
		return "S"
	default:
		return "?"
	}
}

// Order ranks suits clubs<diamonds<hearts<spades, used for longest-suit
// tie-breaks and bid comparison within a level.
func (s Suit) Order() int {
	return int(s) + 1
}

type Color int

const (
	ColorBlack Color = iota
	ColorRed
)

func (s Suit) Color() Color {
	if s == SuitHearts || s == SuitDiamonds {
		return ColorRed
	}
	return ColorBlack
}

type Rank int

const (
	Rank2 Rank = iota
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	Rank9
	Rank10
	RankJ
	RankQ
	RankK
	RankA
)

func Ranks() []Rank {
	out := make([]Rank, 0, 13)
	for r := Rank2; r <= RankA; r++ {
		out = append(out, r)
	}
	return out
}

// Value is the comparison value 2..14 with the ace high.
func (r Rank) Value() int {
	return int(r) + 2
}

func (r Rank) HighCardPoints() int {
	switch r {
	case RankA:
		return 4
	case RankK:
		return 3
	case RankQ:
		return 2
	case RankJ:
		return 1
	default:
		return 0
	}
}

func (r Rank) String() string {
	switch r {
	case RankJ:
		return "J"
	case RankQ:
		return "Q"
	case RankK:
		return "K"
	case RankA:
		return "A"
	default:
		return fmt.Sprintf("%d", r.Value())
	}
}

type Card struct {
	Suit Suit
	Rank Rank
}

func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank.String(), c.Suit.String())
}

// Strain is the denomination of a contract bid: a suit or notrump.
type Strain int

const (
	StrainClubs Strain = iota
	StrainDiamonds
	StrainHearts
	StrainSpades
	StrainNoTrump
)

func Strains() []Strain {
	return []Strain{StrainClubs, StrainDiamonds, StrainHearts, StrainSpades, StrainNoTrump}
}

// Order ranks strains clubs<diamonds<hearts<spades<notrump for comparing
// bids of equal level.
func (s Strain) Order() int {
	return int(s) + 1
}

func (s Strain) IsMajor() bool {
	return s == StrainHearts || s == StrainSpades
}

func (s Strain) IsMinor() bool {
	return s == StrainClubs || s == StrainDiamonds
}

func (s Strain) String() string {
	if s == StrainNoTrump {
		return "NT"
	}
	return Suit(s).String()
}

func SuitStrain(s Suit) Strain {
	return Strain(s)
}

// Suit returns the suit corresponding to the strain; ok is false for notrump.
func (s Strain) Suit() (Suit, bool) {
	if s == StrainNoTrump {
		return SuitClubs, false
	}
	return Suit(s), true
}

type Seat int

const (
	SeatNorth Seat = iota
	SeatEast
	SeatSouth
	SeatWest
)

// Seats returns all seats in deal order.
func Seats() []Seat {
	return []Seat{SeatNorth, SeatEast, SeatSouth, SeatWest}
}

func (s Seat) Next() Seat {
	return (s + 1) % 4
}

func (s Seat) Partner() Seat {
	return (s + 2) % 4
}

func (s Seat) String() string {
	switch s {
	case SeatNorth:
		return "North"
	case SeatEast:
		return "East"
	case SeatSouth:
		return "South"
	case SeatWest:
		return "West"
	default:
		return "?"
	}
}

type BidKind int

const (
	BidPass BidKind = iota
	BidDouble
	BidRedouble
	BidContract
)

// BidType is one call in the auction: pass, double, redouble, or a contract
// bid of a level and strain. Level and Strain are meaningful only when Kind
// is BidContract.
type BidType struct {
	Kind   BidKind
	Level  int
	Strain Strain
}

func Pass() BidType {
	return BidType{Kind: BidPass}
}

func Double() BidType {
	return BidType{Kind: BidDouble}
}

func Redouble() BidType {
	return BidType{Kind: BidRedouble}
}

func ContractBid(level int, strain Strain) BidType {
	return BidType{Kind: BidContract, Level: level, Strain: strain}
}

func (b BidType) IsContract() bool {
	return b.Kind == BidContract
}

func (b BidType) String() string {
	switch b.Kind {
	case BidPass:
		return "Pass"
	case BidDouble:
		return "X"
	case BidRedouble:
		return "XX"
	case BidContract:
		return fmt.Sprintf("%d%s", b.Level, b.Strain.String())
	default:
		return "?"
	}
}

// Bid is one auction event, appended once and never mutated.
type Bid struct {
	Seat Seat
	Bid  BidType
	Time time.Time
}

// Contract is the outcome of a completed auction.
type Contract struct {
	Level     int
	Strain    Strain
	Declarer  Seat
	Doubled   bool
	Redoubled bool
}

// TotalTricks is the number of tricks declarer must take.
func (c Contract) TotalTricks() int {
	return c.Level + 6
}

func (c Contract) String() string {
	name := fmt.Sprintf("%d%s", c.Level, c.Strain.String())
	if c.Redoubled {
		name += " XX"
	} else if c.Doubled {
		name += " X"
	}
	return fmt.Sprintf("%s by %s", name, c.Declarer.String())
}

type Vulnerability int

const (
	VulnNone Vulnerability = iota
	VulnNorthSouth
	VulnEastWest
	VulnBoth
)

func (v Vulnerability) String() string {
	switch v {
	case VulnNone:
		return "None"
	case VulnNorthSouth:
		return "NS"
	case VulnEastWest:
		return "EW"
	case VulnBoth:
		return "Both"
	default:
		return "?"
	}
}

type Phase int

const (
	PhaseBidding Phase = iota
	PhaseComplete
	PhasePassedOut
)

func (p Phase) String() string {
	switch p {
	case PhaseBidding:
		return "Bidding"
	case PhaseComplete:
		return "Complete"
	case PhasePassedOut:
		return "PassedOut"
	default:
		return "Unknown"
	}
}

// Terminal reports whether the auction can accept no further bids.
func (p Phase) Terminal() bool {
	return p == PhaseComplete || p == PhasePassedOut
}

type GameState struct {
	Hands    map[Seat]Hand
	History  []Bid
	Turn     Seat
	Phase    Phase
	Contract *Contract
	Vuln     Vulnerability
}

func NewGame() GameState {
	return GameState{
		Hands: map[Seat]Hand{},
		Turn:  SeatNorth,
		Phase: PhaseBidding,
	}
}

// ResetAuction installs freshly dealt hands and clears all auction state in
// one step. The dealer is fixed at North.
func (g *GameState) ResetAuction(hands map[Seat]Hand) {
	g.Hands = hands
	g.History = nil
	g.Turn = SeatNorth
	g.Phase = PhaseBidding
	g.Contract = nil
}
