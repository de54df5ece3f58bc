package engine

import (
	"errors"
	"time"
)

var (
	ErrOutOfTurn   = errors.New("not your turn")
	ErrIllegalBid  = errors.New("illegal bid")
	ErrAuctionOver = errors.New("auction is over")
)

// SubmitBid validates and appends one bid. Nothing is mutated on rejection.
// On completion the contract is finalized and the turn stops advancing; a
// fourth opening pass ends the auction with no contract.
func SubmitBid(g *GameState, seat Seat, bt BidType) error {
	if g.Phase.Terminal() {
		return ErrAuctionOver
	}
	if seat != g.Turn {
		return ErrOutOfTurn
	}
	if !IsLegal(bt, g.History, seat) {
		return ErrIllegalBid
	}
	g.History = append(g.History, Bid{Seat: seat, Bid: bt, Time: time.Now()})
	switch {
	case IsComplete(g.History):
		g.Phase = PhaseComplete
		g.Contract = Finalize(g.History)
	case IsPassedOut(g.History):
		g.Phase = PhasePassedOut
	default:
		g.Turn = seat.Next()
	}
	return nil
}

// IsComplete reports whether a contract bid exists and at least three passes
// follow the last non-pass call. Counting from the last non-pass call rather
// than the last contract bid lets a doubled contract be passed out; otherwise
// 1S-X-P-P-P could never terminate.
func IsComplete(history []Bid) bool {
	if _, ok := lastContract(history); !ok {
		return false
	}
	last := -1
	for i, b := range history {
		if b.Bid.Kind != BidPass {
			last = i
		}
	}
	return len(history)-last-1 >= 3
}

// IsPassedOut reports the no-contract terminal state: four passes and
// nothing else.
func IsPassedOut(history []Bid) bool {
	if len(history) < 4 {
		return false
	}
	for _, b := range history {
		if b.Bid.Kind != BidPass {
			return false
		}
	}
	return true
}

func lastNonPass(history []Bid) (Bid, bool) {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Bid.Kind != BidPass {
			return history[i], true
		}
	}
	return Bid{}, false
}

func lastContract(history []Bid) (Bid, bool) {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Bid.IsContract() {
			return history[i], true
		}
	}
	return Bid{}, false
}

func isOpponent(seat, other Seat) bool {
	return other != seat && other != seat.Partner()
}

// IsLegal checks a bid against the auction history. An empty or all-pass
// history makes any bid legal, doubles included; that quirk is kept
// deliberately. Doubles require an opponent's contract as the last non-pass
// bid, redoubles an opponent's double, and contract bids must strictly
// outrank the last contract by level, then strain order.
func IsLegal(bt BidType, history []Bid, seat Seat) bool {
	if len(history) == 0 {
		return true
	}
	last, ok := lastNonPass(history)
	if !ok {
		return true
	}
	switch bt.Kind {
	case BidPass:
		return true
	case BidDouble:
		return last.Bid.IsContract() && isOpponent(seat, last.Seat)
	case BidRedouble:
		return last.Bid.Kind == BidDouble && isOpponent(seat, last.Seat)
	case BidContract:
		if bt.Level < 1 || bt.Level > 7 {
			return false
		}
		lc, ok := lastContract(history)
		if !ok {
			return true
		}
		if bt.Level != lc.Bid.Level {
			return bt.Level > lc.Bid.Level
		}
		return bt.Strain.Order() > lc.Bid.Strain.Order()
	default:
		return false
	}
}

// LegalBids enumerates every bid the seat could legally make right now.
// Empty unless it is the seat's turn in a live auction.
func LegalBids(g GameState, seat Seat) []BidType {
	if g.Phase != PhaseBidding || seat != g.Turn {
		return nil
	}
	out := []BidType{Pass()}
	if IsLegal(Double(), g.History, seat) {
		out = append(out, Double())
	}
	if IsLegal(Redouble(), g.History, seat) {
		out = append(out, Redouble())
	}
	for level := 1; level <= 7; level++ {
		for _, strain := range Strains() {
			if bt := ContractBid(level, strain); IsLegal(bt, g.History, seat) {
				out = append(out, bt)
			}
		}
	}
	return out
}

// Finalize derives the contract from a completed auction: the last contract
// bid fixes level, strain, and declarer. Doubled and redoubled are set by
// any double or redouble anywhere in the history; a later higher contract
// does not clear them.
func Finalize(history []Bid) *Contract {
	last, ok := lastContract(history)
	if !ok {
		return nil
	}
	doubled, redoubled := false, false
	for _, b := range history {
		switch b.Bid.Kind {
		case BidDouble:
			doubled = true
		case BidRedouble:
			redoubled = true
		}
	}
	return &Contract{
		Level:     last.Bid.Level,
		Strain:    last.Bid.Strain,
		Declarer:  last.Seat,
		Doubled:   doubled,
		Redoubled: redoubled,
	}
}
