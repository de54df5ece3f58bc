package main

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"bridgetutor/internal/engine"
)

func suitSymbol(s engine.Suit) string {
	switch s {
	case engine.SuitSpades:
		return "♠"
	case engine.SuitHearts:
		return "♥"
	case engine.SuitDiamonds:
		return "♦"
	default:
		return "♣"
	}
}

func coloredSuit(s engine.Suit) string {
	if s.Color() == engine.ColorRed {
		return pterm.LightRed(suitSymbol(s))
	}
	return suitSymbol(s)
}

func strainSymbol(s engine.Strain) string {
	if s == engine.StrainNoTrump {
		return "NT"
	}
	suit, _ := s.Suit()
	return coloredSuit(suit)
}

func formatBid(b engine.BidType) string {
	switch b.Kind {
	case engine.BidPass:
		return "Pass"
	case engine.BidDouble:
		return "X"
	case engine.BidRedouble:
		return "XX"
	case engine.BidContract:
		return fmt.Sprintf("%d%s", b.Level, strainSymbol(b.Strain))
	default:
		return "?"
	}
}

func formatContract(c engine.Contract) string {
	name := fmt.Sprintf("%d%s", c.Level, strainSymbol(c.Strain))
	if c.Redoubled {
		name += " XX"
	} else if c.Doubled {
		name += " X"
	}
	return fmt.Sprintf("%s by %s", name, c.Declarer)
}

// printHand renders the hand as one line per suit, spades first, highest
// cards first, with the point count underneath.
func printHand(seat engine.Seat, hand engine.Hand) {
	lines := make([]string, 0, 5)
	for _, s := range []engine.Suit{engine.SuitSpades, engine.SuitHearts, engine.SuitDiamonds, engine.SuitClubs} {
		ranks := []string{}
		for _, c := range hand.CardsInSuit(s) {
			ranks = append(ranks, c.Rank.String())
		}
		if len(ranks) == 0 {
			ranks = append(ranks, "—")
		}
		lines = append(lines, fmt.Sprintf("%s  %s", coloredSuit(s), strings.Join(ranks, " ")))
	}
	lines = append(lines, pterm.Gray(fmt.Sprintf("%d HCP", hand.HighCardPoints())))

	box := pterm.DefaultBox.WithLeftPadding(2).WithRightPadding(2).
		WithTitle(pterm.LightCyan(fmt.Sprintf("|%s|", seat))).WithTitleTopCenter()
	box.Println(strings.Join(lines, "\n"))
}

// printAuction renders the bid history as a table in seat order starting
// from the North dealer, marking whose turn it is.
func printAuction(g engine.GameState) {
	if len(g.History) == 0 {
		return
	}
	header := []string{}
	for _, seat := range engine.Seats() {
		name := seat.String()
		if g.Phase == engine.PhaseBidding && seat == g.Turn {
			name = pterm.LightYellow(name + " *")
		}
		header = append(header, name)
	}
	rows := pterm.TableData{header}
	row := []string{}
	for _, b := range g.History {
		row = append(row, formatBid(b.Bid))
		if len(row) == 4 {
			rows = append(rows, row)
			row = []string{}
		}
	}
	if len(row) > 0 {
		for len(row) < 4 {
			row = append(row, "")
		}
		rows = append(rows, row)
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}

func printAllHands(g engine.GameState) {
	for _, seat := range engine.Seats() {
		printHand(seat, g.Hands[seat])
	}
}
