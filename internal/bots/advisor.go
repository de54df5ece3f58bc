package bots

import "bridgetutor/internal/engine"

// Advisor produces one suggested bid for a seat from its hand and the
// auction so far. It drives the automated seats and backs the human hint.
// The suggestion is not guaranteed legal; callers applying it to the
// auction substitute a pass when it fails the legality check.
type Advisor struct{}

func New() *Advisor {
	return &Advisor{}
}

type contractRef struct {
	seat   engine.Seat
	level  int
	strain engine.Strain
}

type auctionContext struct {
	seat          engine.Seat
	partner       engine.Seat
	ourLast       *engine.BidType
	partnerLast   *engine.BidType
	oppLast       *engine.BidType
	lastContract  *contractRef
	weOpened      bool
	partnerOpened bool
	competitive   bool
}

func buildContext(history []engine.Bid, seat engine.Seat) auctionContext {
	ctx := auctionContext{seat: seat, partner: seat.Partner()}

	lastBy := func(s engine.Seat) *engine.BidType {
		for i := len(history) - 1; i >= 0; i-- {
			if history[i].Seat == s {
				bt := history[i].Bid
				return &bt
			}
		}
		return nil
	}
	ctx.ourLast = lastBy(seat)
	ctx.partnerLast = lastBy(ctx.partner)

	for i := len(history) - 1; i >= 0; i-- {
		if isOpponent(seat, history[i].Seat) {
			bt := history[i].Bid
			ctx.oppLast = &bt
			break
		}
	}
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Bid.IsContract() {
			ctx.lastContract = &contractRef{
				seat:   history[i].Seat,
				level:  history[i].Bid.Level,
				strain: history[i].Bid.Strain,
			}
			break
		}
	}
	for _, b := range history {
		if b.Bid.IsContract() {
			ctx.weOpened = b.Seat == seat || b.Seat == ctx.partner
			break
		}
	}
	for _, b := range history {
		if b.Seat == ctx.partner && b.Bid.IsContract() {
			ctx.partnerOpened = true
			break
		}
	}
	for _, b := range history {
		if isOpponent(seat, b.Seat) && b.Bid.IsContract() {
			ctx.competitive = true
			break
		}
	}
	return ctx
}

func isOpponent(seat, other engine.Seat) bool {
	return other != seat && other != seat.Partner()
}

func allPasses(history []engine.Bid) bool {
	for _, b := range history {
		if b.Bid.Kind != engine.BidPass {
			return false
		}
	}
	return true
}

// Suggest evaluates the policy rules in order and returns the first match:
// an opening table, raises and responses to partner's contract bid, a
// competitive overcall or takeout double, a rebid after our own contract
// bid, and finally a pass.
func (a *Advisor) Suggest(hand engine.Hand, seat engine.Seat, history []engine.Bid) engine.BidType {
	ctx := buildContext(history, seat)
	hcp := hand.HighCardPoints()
	balanced := hand.Balanced()
	counts := hand.Distribution()

	if allPasses(history) {
		return openingBid(hand, hcp, balanced, counts)
	}

	if ctx.partnerLast != nil && ctx.partnerLast.IsContract() {
		return responseToPartner(ctx.partnerLast.Level, ctx.partnerLast.Strain, hcp, balanced, counts)
	}

	if ctx.oppLast != nil && ctx.oppLast.IsContract() {
		for _, s := range []engine.Suit{engine.SuitSpades, engine.SuitHearts} {
			if counts[s] >= 5 && hcp >= 8 {
				return engine.ContractBid(1, engine.SuitStrain(s))
			}
		}
		if oppSuit, ok := ctx.oppLast.Strain.Suit(); ok && hcp >= 12 && counts[oppSuit] <= 2 {
			return engine.Double()
		}
	}

	if ctx.ourLast != nil && ctx.ourLast.IsContract() {
		lvl, strain := ctx.ourLast.Level, ctx.ourLast.Strain
		for _, s := range []engine.Suit{engine.SuitSpades, engine.SuitHearts} {
			if counts[s] >= 5 && engine.SuitStrain(s) != strain {
				return engine.ContractBid(max(1, lvl), engine.SuitStrain(s))
			}
		}
		if balanced {
			if hcp >= 18 {
				return engine.ContractBid(2, engine.StrainNoTrump)
			}
			if hcp >= 12 {
				return engine.ContractBid(1, engine.StrainNoTrump)
			}
		}
	}

	return engine.Pass()
}

func openingBid(hand engine.Hand, hcp int, balanced bool, counts map[engine.Suit]int) engine.BidType {
	if hcp >= 15 && hcp <= 17 && balanced {
		return engine.ContractBid(1, engine.StrainNoTrump)
	}
	if hcp >= 12 {
		for _, s := range []engine.Suit{engine.SuitSpades, engine.SuitHearts} {
			if counts[s] >= 5 {
				return engine.ContractBid(1, engine.SuitStrain(s))
			}
		}
		if s, ok := hand.LongestSuit(); ok {
			return engine.ContractBid(1, engine.SuitStrain(s))
		}
		if balanced {
			return engine.ContractBid(1, engine.StrainNoTrump)
		}
	}
	if hcp >= 20 && balanced {
		return engine.ContractBid(2, engine.StrainNoTrump)
	}
	if s, ok := hand.LongestSuit(); ok && counts[s] >= 6 && hcp >= 6 {
		return engine.ContractBid(2, engine.SuitStrain(s))
	}
	return engine.Pass()
}

func responseToPartner(lvl int, strain engine.Strain, hcp int, balanced bool, counts map[engine.Suit]int) engine.BidType {
	if strain.IsMajor() {
		if suit, ok := strain.Suit(); ok && counts[suit] >= 3 {
			switch {
			case hcp >= 13:
				return engine.ContractBid(min(lvl+3, 4), strain)
			case hcp >= 10:
				return engine.ContractBid(lvl+2, strain)
			case hcp >= 6:
				return engine.ContractBid(lvl+1, strain)
			}
		}
	}
	if strain.IsMinor() {
		if suit, ok := strain.Suit(); ok && counts[suit] >= 3 {
			switch {
			case hcp >= 13:
				return engine.ContractBid(lvl+2, strain)
			case hcp >= 10:
				return engine.ContractBid(lvl+1, strain)
			}
		}
	}
	if balanced {
		switch {
		case hcp >= 13:
			return engine.ContractBid(3, engine.StrainNoTrump)
		case hcp >= 10:
			return engine.ContractBid(2, engine.StrainNoTrump)
		case hcp >= 6:
			return engine.ContractBid(1, engine.StrainNoTrump)
		}
	}
	for _, s := range []engine.Suit{engine.SuitSpades, engine.SuitHearts, engine.SuitDiamonds, engine.SuitClubs} {
		if counts[s] >= 5 {
			return engine.ContractBid(max(1, lvl), engine.SuitStrain(s))
		}
	}
	return engine.Pass()
}
