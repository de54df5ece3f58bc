package engine

import (
	"errors"
	"testing"
)

func mustBid(t *testing.T, g *GameState, seat Seat, bt BidType) {
	t.Helper()
	if err := SubmitBid(g, seat, bt); err != nil {
		t.Fatalf("bid %v by %v: %v", bt, seat, err)
	}
}

func TestAuctionCompletesAfterThreePasses(t *testing.T) {
	g := NewGame()
	mustBid(t, &g, SeatNorth, ContractBid(1, StrainNoTrump))
	mustBid(t, &g, SeatEast, Pass())
	mustBid(t, &g, SeatSouth, Pass())
	if g.Phase != PhaseBidding {
		t.Fatalf("auction ended after only two passes")
	}
	mustBid(t, &g, SeatWest, Pass())
	if g.Phase != PhaseComplete {
		t.Fatalf("expected complete, got %v", g.Phase)
	}
	c := g.Contract
	if c == nil {
		t.Fatalf("no contract on completed auction")
	}
	if c.Level != 1 || c.Strain != StrainNoTrump || c.Declarer != SeatNorth {
		t.Fatalf("wrong contract: %v", c)
	}
	if c.Doubled || c.Redoubled {
		t.Fatalf("undoubled auction produced doubled contract")
	}
}

func TestFourOpeningPassesEndWithoutContract(t *testing.T) {
	g := NewGame()
	for _, seat := range Seats() {
		mustBid(t, &g, seat, Pass())
	}
	if g.Phase != PhasePassedOut {
		t.Fatalf("expected passed out, got %v", g.Phase)
	}
	if g.Contract != nil {
		t.Fatalf("passed-out auction has a contract: %v", g.Contract)
	}
	if err := SubmitBid(&g, SeatNorth, Pass()); !errors.Is(err, ErrAuctionOver) {
		t.Fatalf("expected ErrAuctionOver, got %v", err)
	}
}

func TestBidAfterCompletionRejected(t *testing.T) {
	g := NewGame()
	mustBid(t, &g, SeatNorth, ContractBid(1, StrainClubs))
	mustBid(t, &g, SeatEast, Pass())
	mustBid(t, &g, SeatSouth, Pass())
	mustBid(t, &g, SeatWest, Pass())
	err := SubmitBid(&g, SeatNorth, ContractBid(2, StrainClubs))
	if !errors.Is(err, ErrAuctionOver) {
		t.Fatalf("expected ErrAuctionOver, got %v", err)
	}
}

func TestOutOfTurnRejectedWithoutMutation(t *testing.T) {
	g := NewGame()
	err := SubmitBid(&g, SeatEast, ContractBid(1, StrainHearts))
	if !errors.Is(err, ErrOutOfTurn) {
		t.Fatalf("expected ErrOutOfTurn, got %v", err)
	}
	if len(g.History) != 0 || g.Turn != SeatNorth {
		t.Fatalf("rejected bid mutated state: %v", g)
	}
}

func TestInsufficientContractRejected(t *testing.T) {
	g := NewGame()
	mustBid(t, &g, SeatNorth, ContractBid(1, StrainSpades))
	if err := SubmitBid(&g, SeatEast, ContractBid(1, StrainHearts)); !errors.Is(err, ErrIllegalBid) {
		t.Fatalf("expected ErrIllegalBid for lower strain at same level, got %v", err)
	}
	if len(g.History) != 1 {
		t.Fatalf("rejected bid appended to history")
	}
	mustBid(t, &g, SeatEast, ContractBid(2, StrainClubs))
}

func TestContractLevelBounds(t *testing.T) {
	g := NewGame()
	mustBid(t, &g, SeatNorth, ContractBid(1, StrainClubs))
	if err := SubmitBid(&g, SeatEast, ContractBid(8, StrainClubs)); !errors.Is(err, ErrIllegalBid) {
		t.Fatalf("expected level 8 to be illegal, got %v", err)
	}
	if err := SubmitBid(&g, SeatEast, ContractBid(0, StrainSpades)); !errors.Is(err, ErrIllegalBid) {
		t.Fatalf("expected level 0 to be illegal, got %v", err)
	}
}

func TestDoubleRequiresOpponentContract(t *testing.T) {
	g := NewGame()
	mustBid(t, &g, SeatNorth, ContractBid(1, StrainSpades))
	mustBid(t, &g, SeatEast, Pass())
	if err := SubmitBid(&g, SeatSouth, Double()); !errors.Is(err, ErrIllegalBid) {
		t.Fatalf("partner's contract should not be doublable, got %v", err)
	}

	g = NewGame()
	mustBid(t, &g, SeatNorth, ContractBid(1, StrainSpades))
	mustBid(t, &g, SeatEast, Double())
	if len(g.History) != 2 {
		t.Fatalf("opponent double not accepted")
	}
}

func TestRedoubleRequiresOpponentDouble(t *testing.T) {
	g := NewGame()
	mustBid(t, &g, SeatNorth, ContractBid(1, StrainSpades))
	mustBid(t, &g, SeatEast, Double())
	mustBid(t, &g, SeatSouth, Redouble())

	g = NewGame()
	mustBid(t, &g, SeatNorth, ContractBid(1, StrainSpades))
	mustBid(t, &g, SeatEast, Double())
	mustBid(t, &g, SeatSouth, Pass())
	if err := SubmitBid(&g, SeatWest, Redouble()); !errors.Is(err, ErrIllegalBid) {
		t.Fatalf("partner's double should not be redoublable, got %v", err)
	}
}

func TestDoubledContractCanBePassedOut(t *testing.T) {
	g := NewGame()
	mustBid(t, &g, SeatNorth, ContractBid(1, StrainSpades))
	mustBid(t, &g, SeatEast, Double())
	mustBid(t, &g, SeatSouth, Pass())
	mustBid(t, &g, SeatWest, Pass())
	if g.Phase != PhaseBidding {
		t.Fatalf("auction ended after only two passes over the double")
	}
	mustBid(t, &g, SeatNorth, Pass())
	if g.Phase != PhaseComplete {
		t.Fatalf("three passes after the double should end the auction, got %v", g.Phase)
	}
	c := g.Contract
	if c == nil || c.Level != 1 || c.Strain != StrainSpades || c.Declarer != SeatNorth {
		t.Fatalf("wrong contract: %v", c)
	}
	if !c.Doubled || c.Redoubled {
		t.Fatalf("expected a doubled, not redoubled, contract: %v", c)
	}
}

func TestRedoubledContractCanBePassedOut(t *testing.T) {
	g := NewGame()
	mustBid(t, &g, SeatNorth, ContractBid(2, StrainHearts))
	mustBid(t, &g, SeatEast, Double())
	mustBid(t, &g, SeatSouth, Redouble())
	mustBid(t, &g, SeatWest, Pass())
	mustBid(t, &g, SeatNorth, Pass())
	mustBid(t, &g, SeatEast, Pass())
	if g.Phase != PhaseComplete {
		t.Fatalf("three passes after the redouble should end the auction, got %v", g.Phase)
	}
	c := g.Contract
	if c == nil || c.Level != 2 || c.Strain != StrainHearts || c.Declarer != SeatNorth {
		t.Fatalf("wrong contract: %v", c)
	}
	if !c.Doubled || !c.Redoubled {
		t.Fatalf("expected a redoubled contract: %v", c)
	}
}

func TestContractAfterDoubleMustOutrankLastContract(t *testing.T) {
	g := NewGame()
	mustBid(t, &g, SeatNorth, ContractBid(1, StrainSpades))
	mustBid(t, &g, SeatEast, Double())
	if err := SubmitBid(&g, SeatSouth, ContractBid(1, StrainHearts)); !errors.Is(err, ErrIllegalBid) {
		t.Fatalf("contract below the doubled one should be illegal, got %v", err)
	}
	mustBid(t, &g, SeatSouth, ContractBid(2, StrainSpades))
}

func TestDoubledFlagSurvivesHigherContract(t *testing.T) {
	g := NewGame()
	mustBid(t, &g, SeatNorth, ContractBid(1, StrainSpades))
	mustBid(t, &g, SeatEast, Double())
	mustBid(t, &g, SeatSouth, ContractBid(2, StrainSpades))
	mustBid(t, &g, SeatWest, Pass())
	mustBid(t, &g, SeatNorth, Pass())
	mustBid(t, &g, SeatEast, Pass())
	if g.Phase != PhaseComplete {
		t.Fatalf("expected complete, got %v", g.Phase)
	}
	c := g.Contract
	if c.Level != 2 || c.Strain != StrainSpades || c.Declarer != SeatSouth {
		t.Fatalf("wrong contract: %v", c)
	}
	if !c.Doubled {
		t.Fatalf("earlier double should still mark the final contract")
	}
	if c.Redoubled {
		t.Fatalf("contract marked redoubled without a redouble")
	}
}

func TestLegalBidsEnumeration(t *testing.T) {
	g := NewGame()
	bids := LegalBids(g, SeatNorth)
	if len(bids) == 0 || bids[0].Kind != BidPass {
		t.Fatalf("pass should always lead the legal bids: %v", bids)
	}
	if bids := LegalBids(g, SeatEast); bids != nil {
		t.Fatalf("off-turn seat should get no legal bids, got %v", bids)
	}

	mustBid(t, &g, SeatNorth, ContractBid(7, StrainNoTrump))
	bids = LegalBids(g, SeatEast)
	for _, bt := range bids {
		if bt.IsContract() {
			t.Fatalf("no contract outranks 7NT, but got %v", bt)
		}
	}
	hasDouble := false
	for _, bt := range bids {
		if bt.Kind == BidDouble {
			hasDouble = true
		}
	}
	if !hasDouble {
		t.Fatalf("double of 7NT missing from legal bids: %v", bids)
	}

	mustBid(t, &g, SeatEast, Pass())
	mustBid(t, &g, SeatSouth, Pass())
	mustBid(t, &g, SeatWest, Pass())
	if bids := LegalBids(g, SeatNorth); bids != nil {
		t.Fatalf("completed auction should yield no legal bids, got %v", bids)
	}
}

func TestTurnRotatesClockwise(t *testing.T) {
	g := NewGame()
	want := []Seat{SeatNorth, SeatEast, SeatSouth, SeatWest, SeatNorth}
	for i := 0; i < 4; i++ {
		if g.Turn != want[i] {
			t.Fatalf("step %d: turn %v, want %v", i, g.Turn, want[i])
		}
		mustBid(t, &g, g.Turn, ContractBid(i+1, StrainClubs))
	}
	if g.Turn != SeatNorth {
		t.Fatalf("turn after full rotation: %v", g.Turn)
	}
}
