package sim

import (
	"fmt"
	"math/rand"

	"bridgetutor/internal/bots"
	"bridgetutor/internal/engine"
)

type bidRecord struct {
	Deal int
	Step int
	Seat engine.Seat
	Bid  engine.BidType
}

// maxBidsPerAuction bounds one auction. The contract lattice has 35 steps
// and at most a handful of calls between contract bids, so a real auction
// never gets near this.
const maxBidsPerAuction = 400

// RunAuctions deals and bids out full auctions with all four seats driven by
// the advisor, checking invariants after every bid. Returns a descriptive
// error on the first violation.
func RunAuctions(seed int64, deals int, preset engine.Preset) error {
	rng := rand.New(rand.NewSource(seed))
	advisor := bots.New()

	for d := 0; d < deals; d++ {
		g := engine.NewGame()
		engine.DealRound(&g, rng, engine.SeatSouth, preset)
		if err := checkDeal(g); err != nil {
			return failure(seed, d, 0, nil, err.Error())
		}

		records := []bidRecord{}
		for step := 0; step < maxBidsPerAuction; step++ {
			if g.Phase.Terminal() {
				break
			}
			seat := g.Turn
			bid := advisor.Suggest(g.Hands[seat], seat, g.History)
			if !engine.IsLegal(bid, g.History, seat) {
				bid = engine.Pass()
			}
			if err := engine.SubmitBid(&g, seat, bid); err != nil {
				return failure(seed, d, step, records, fmt.Sprintf("submit error: %v", err))
			}
			records = append(records, bidRecord{Deal: d, Step: step, Seat: seat, Bid: bid})
		}
		if err := checkTerminal(g); err != nil {
			return failure(seed, d, len(records), records, err.Error())
		}
	}
	return nil
}

func checkDeal(g engine.GameState) error {
	seen := map[engine.Card]bool{}
	for _, seat := range engine.Seats() {
		hand := g.Hands[seat]
		if len(hand) != 13 {
			return fmt.Errorf("%s has %d cards", seat, len(hand))
		}
		total := 0
		for _, n := range hand.Distribution() {
			total += n
		}
		if total != 13 {
			return fmt.Errorf("%s distribution sums to %d", seat, total)
		}
		for _, c := range hand {
			if seen[c] {
				return fmt.Errorf("duplicate card %v", c)
			}
			seen[c] = true
		}
	}
	if len(seen) != 52 {
		return fmt.Errorf("deck not exhausted: %d cards", len(seen))
	}
	if len(g.History) != 0 || g.Contract != nil || g.Turn != engine.SeatNorth || g.Phase != engine.PhaseBidding {
		return fmt.Errorf("auction not reset after deal")
	}
	return nil
}

func checkTerminal(g engine.GameState) error {
	switch g.Phase {
	case engine.PhaseComplete:
		if g.Contract == nil {
			return fmt.Errorf("complete auction with nil contract")
		}
		want := engine.Finalize(g.History)
		if want == nil || *want != *g.Contract {
			return fmt.Errorf("contract does not match history: %v", g.Contract)
		}
	case engine.PhasePassedOut:
		if g.Contract != nil {
			return fmt.Errorf("passed-out auction with contract %v", g.Contract)
		}
		if len(g.History) != 4 {
			return fmt.Errorf("passed out after %d bids", len(g.History))
		}
	default:
		return fmt.Errorf("auction did not terminate, phase %v after %d bids", g.Phase, len(g.History))
	}
	return nil
}

func failure(seed int64, deal int, step int, records []bidRecord, reason string) error {
	start := 0
	if len(records) > 20 {
		start = len(records) - 20
	}
	trace := ""
	for _, r := range records[start:] {
		trace += fmt.Sprintf("[d%d s%d %s] %v\n", r.Deal, r.Step, r.Seat, r.Bid)
	}
	return fmt.Errorf("seed=%d deal=%d step=%d reason=%s\nlast bids:\n%s",
		seed, deal, step, reason, trace)
}
