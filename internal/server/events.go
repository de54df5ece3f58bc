package server

import "bridgetutor/internal/engine"

type EventPayload struct {
	Seat      string        `json:"seat,omitempty"`
	Bid       *BidDTO       `json:"bid,omitempty"`
	Contract  *ContractView `json:"contract,omitempty"`
	Preset    string        `json:"preset,omitempty"`
	PresetMet bool          `json:"presetMet,omitempty"`
	Tricks    int           `json:"tricks,omitempty"`
	Points    int           `json:"points,omitempty"`
	Total     int           `json:"total,omitempty"`
}

func dealEvent(preset engine.Preset, presetMet bool) Event {
	return Event{Type: "hand_dealt", Data: EventPayload{Preset: preset.String(), PresetMet: presetMet}}
}

func bidEvent(seat engine.Seat, bid engine.BidType) Event {
	dto := BidFromEngine(bid)
	return Event{Type: "bid_made", Data: EventPayload{Seat: seat.String(), Bid: &dto}}
}

func scoreEvent(tricks, points, total int) Event {
	return Event{Type: "hand_scored", Data: EventPayload{Tricks: tricks, Points: points, Total: total}}
}

// terminalEvents emits the auction-ending event when the phase crossed into
// a terminal state between prev and next.
func terminalEvents(prev, next engine.GameState) []Event {
	if prev.Phase.Terminal() || !next.Phase.Terminal() {
		return nil
	}
	switch next.Phase {
	case engine.PhaseComplete:
		return []Event{{Type: "auction_complete", Data: EventPayload{Contract: contractView(next.Contract)}}}
	case engine.PhasePassedOut:
		return []Event{{Type: "passed_out"}}
	default:
		return nil
	}
}
