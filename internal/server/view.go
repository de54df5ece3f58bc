package server

import (
	"bridgetutor/internal/bots"
	"bridgetutor/internal/engine"
)

type SeatView struct {
	Seat      string    `json:"seat"`
	Hand      []CardDTO `json:"hand,omitempty"`
	HandCount int       `json:"handCount"`
	HCP       int       `json:"hcp,omitempty"`
}

type BidView struct {
	Seat string `json:"seat"`
	Bid  BidDTO `json:"bid"`
}

type ContractView struct {
	Level     int    `json:"level"`
	Strain    string `json:"strain"`
	Declarer  string `json:"declarer"`
	Doubled   bool   `json:"doubled"`
	Redoubled bool   `json:"redoubled"`
	Display   string `json:"display"`
}

type GameView struct {
	Seats         []SeatView    `json:"seats"`
	History       []BidView     `json:"history"`
	Turn          string        `json:"turn"`
	Phase         string        `json:"phase"`
	Contract      *ContractView `json:"contract,omitempty"`
	Vulnerability string        `json:"vulnerability"`
	Preset        string        `json:"preset"`
	LegalBids     []BidDTO      `json:"legalBids"`
	SuggestedBid  *BidDTO       `json:"suggestedBid,omitempty"`
}

// BuildGameView renders the state as seen from the human seat: only the
// human's cards are visible while the auction runs; every hand is revealed
// once it ends, for review. The suggested bid is advisory and shown without
// the legality substitution applied to automated seats.
func BuildGameView(g engine.GameState, human engine.Seat, preset engine.Preset, advisor *bots.Advisor) *GameView {
	seats := make([]SeatView, 0, 4)
	for _, seat := range engine.Seats() {
		hand := g.Hands[seat]
		view := SeatView{Seat: seat.String(), HandCount: len(hand)}
		if seat == human || g.Phase.Terminal() {
			for _, c := range hand {
				view.Hand = append(view.Hand, cardToDTO(c))
			}
			view.HCP = hand.HighCardPoints()
		}
		seats = append(seats, view)
	}

	history := make([]BidView, 0, len(g.History))
	for _, b := range g.History {
		history = append(history, BidView{Seat: b.Seat.String(), Bid: BidFromEngine(b.Bid)})
	}

	legal := []BidDTO{}
	for _, bt := range engine.LegalBids(g, human) {
		legal = append(legal, BidFromEngine(bt))
	}

	var suggested *BidDTO
	if g.Phase == engine.PhaseBidding && g.Turn == human {
		dto := BidFromEngine(advisor.Suggest(g.Hands[human], human, g.History))
		suggested = &dto
	}

	return &GameView{
		Seats:         seats,
		History:       history,
		Turn:          g.Turn.String(),
		Phase:         g.Phase.String(),
		Contract:      contractView(g.Contract),
		Vulnerability: g.Vuln.String(),
		Preset:        preset.String(),
		LegalBids:     legal,
		SuggestedBid:  suggested,
	}
}

func contractView(c *engine.Contract) *ContractView {
	if c == nil {
		return nil
	}
	return &ContractView{
		Level:     c.Level,
		Strain:    c.Strain.String(),
		Declarer:  c.Declarer.String(),
		Doubled:   c.Doubled,
		Redoubled: c.Redoubled,
		Display:   c.String(),
	}
}
