package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"strconv"
	"time"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"bridgetutor/internal/bots"
	"bridgetutor/internal/engine"
)

var presetLabels = []struct {
	label  string
	preset engine.Preset
}{
	{"Free deal", engine.PresetNone},
	{"Polish Club opener", engine.PresetPolishClub},
	{"Standard American 1M opener", engine.PresetStandardAmerican},
	{"Two-over-one", engine.PresetTwoOverOne},
	{"Stayman (1NT opener)", engine.PresetStayman},
	{"Jacoby transfers", engine.PresetJacobyTransfers},
	{"Keycard (8+ card major fit)", engine.PresetRKCB},
}

var vulnLabels = []struct {
	label string
	vuln  engine.Vulnerability
}{
	{"None", engine.VulnNone},
	{"North-South", engine.VulnNorthSouth},
	{"East-West", engine.VulnEastWest},
	{"Both", engine.VulnBoth},
}

func main() {
	seedFlag := flag.Int64("seed", 0, "deal seed, 0 for random")
	flag.Parse()

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	logger := slog.New(pterm.NewSlogHandler(&pterm.DefaultLogger))

	pterm.Print("\n")
	title, err := pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Bridge", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("Tutor", pterm.FgDarkGray.ToStyle()),
	).Srender()
	if err != nil {
		logger.Error(err.Error())
	}
	pterm.Print(title)

	preset := choosePreset()
	vuln := chooseVulnerability()

	human := engine.SeatSouth
	advisor := bots.New()
	total := 0

	for {
		g := engine.NewGame()
		satisfied := engine.DealRound(&g, rng, human, preset)
		g.Vuln = vuln
		if !satisfied {
			logger.Warn("preset could not be satisfied, dealt a random hand instead")
		}
		autoAdvance(&g, advisor, human)

		for g.Phase == engine.PhaseBidding {
			pterm.Println()
			printAuction(g)
			printHand(human, g.Hands[human])
			bid := promptBid(&g, advisor, human)
			if err := engine.SubmitBid(&g, human, bid); err != nil {
				pterm.Error.Printfln("Bid rejected: %v", err)
				continue
			}
			autoAdvance(&g, advisor, human)
		}

		pterm.Println()
		printAuction(g)
		total += settleHand(&g)

		next, _ := pterm.DefaultInteractiveConfirm.
			WithDefaultText("Deal another hand?").WithDefaultValue(true).Show()
		if !next {
			break
		}
	}

	pterm.Println()
	pterm.Info.Printfln("Session total: %d points", total)
	pterm.Println("Thank you for playing...")
}

func choosePreset() engine.Preset {
	options := make([]string, 0, len(presetLabels))
	for _, p := range presetLabels {
		options = append(options, p.label)
	}
	choice, _ := pterm.DefaultInteractiveSelect.
		WithDefaultText("Pick a practice scenario").WithOptions(options).Show()
	for _, p := range presetLabels {
		if p.label == choice {
			return p.preset
		}
	}
	return engine.PresetNone
}

func chooseVulnerability() engine.Vulnerability {
	options := make([]string, 0, len(vulnLabels))
	for _, v := range vulnLabels {
		options = append(options, v.label)
	}
	choice, _ := pterm.DefaultInteractiveSelect.
		WithDefaultText("Vulnerability").WithOptions(options).Show()
	for _, v := range vulnLabels {
		if v.label == choice {
			return v.vuln
		}
	}
	return engine.VulnNone
}

// autoAdvance lets the advisor bid for the three automated seats until the
// human is on turn or the auction ends. Illegal suggestions become passes.
func autoAdvance(g *engine.GameState, advisor *bots.Advisor, human engine.Seat) {
	for g.Phase == engine.PhaseBidding && g.Turn != human {
		seat := g.Turn
		bid := advisor.Suggest(g.Hands[seat], seat, g.History)
		if !engine.IsLegal(bid, g.History, seat) {
			bid = engine.Pass()
		}
		if err := engine.SubmitBid(g, seat, bid); err != nil {
			pterm.Error.Printfln("advisor bid rejected: %v", err)
			return
		}
	}
}

// promptBid offers every legal bid, with the advisor's unfiltered
// suggestion marked as a hint.
func promptBid(g *engine.GameState, advisor *bots.Advisor, human engine.Seat) engine.BidType {
	legal := engine.LegalBids(*g, human)
	hint := advisor.Suggest(g.Hands[human], human, g.History)

	options := make([]string, 0, len(legal))
	byOption := map[string]engine.BidType{}
	defaultOption := ""
	for _, bt := range legal {
		label := formatBid(bt)
		if bt == hint {
			label += pterm.Gray("  (suggested)")
			defaultOption = label
		}
		options = append(options, label)
		byOption[label] = bt
	}

	sel := pterm.DefaultInteractiveSelect.
		WithDefaultText(fmt.Sprintf("Your call, %s", human)).
		WithMaxHeight(10).
		WithOptions(options)
	if defaultOption != "" {
		sel = sel.WithDefaultOption(defaultOption)
	}
	choice, _ := sel.Show()
	return byOption[choice]
}

// settleHand reports the auction outcome and, when a contract was reached,
// prompts for the play result and returns the scored points.
func settleHand(g *engine.GameState) int {
	if g.Phase == engine.PhasePassedOut {
		pterm.Info.Println("Passed out, no contract. Hands are shown for review.")
		printAllHands(*g)
		return 0
	}

	contract := *g.Contract
	pterm.Success.Printfln("Contract: %s", formatContract(contract))
	printAllHands(*g)

	tricks := promptTricks(contract)
	points := engine.Score(contract, tricks, g.Vuln)
	result := engine.Result(contract, tricks)
	if result.Made {
		pterm.Success.Printfln("Made with %d overtricks: %+d points", result.Overtricks, points)
	} else {
		pterm.Error.Printfln("Down %d: %+d points", result.Undertricks, points)
	}
	return points
}

func promptTricks(c engine.Contract) int {
	for {
		answer, _ := pterm.DefaultInteractiveTextInput.
			WithDefaultText(fmt.Sprintf("Tricks taken by %s (0-13)", c.Declarer)).
			WithDefaultValue(strconv.Itoa(c.TotalTricks())).Show()
		tricks, err := strconv.Atoi(answer)
		if err != nil || tricks < 0 || tricks > 13 {
			pterm.Error.Println("Enter a number between 0 and 13.")
			continue
		}
		return tricks
	}
}
