package engine

// ScoreResult is the outcome of a played hand relative to the contract.
type ScoreResult struct {
	Made        bool
	Overtricks  int
	Undertricks int
}

func Result(c Contract, tricksTaken int) ScoreResult {
	required := c.TotalTricks()
	if tricksTaken >= required {
		return ScoreResult{Made: true, Overtricks: tricksTaken - required}
	}
	return ScoreResult{Undertricks: required - tricksTaken}
}

// TrickScore is the raw contract trick score: 20 per level in a minor, 30 in
// a major, and 40 for the first notrump trick plus 30 for each further one.
func (c Contract) TrickScore() int {
	switch {
	case c.Strain == StrainNoTrump:
		return 40 + (c.Level-1)*30
	case c.Strain.IsMajor():
		return 30 * c.Level
	default:
		return 20 * c.Level
	}
}

// Score converts a finished contract and trick count into signed points
// under the simplified tables: overtricks at 20/30, a 500 game bonus only
// when both sides are vulnerable (300 otherwise, 50 for a part-score), and
// flat 50-point undertricks (100 when both vulnerable). Slam bonuses and
// doubling multipliers are intentionally absent.
func Score(c Contract, tricksTaken int, vuln Vulnerability) int {
	res := Result(c, tricksTaken)
	if !res.Made {
		base := 50
		if vuln == VulnBoth {
			base = 100
		}
		return -res.Undertricks * base
	}
	score := c.TrickScore()
	overValue := 30
	if c.Strain.IsMinor() {
		overValue = 20
	}
	score += res.Overtricks * overValue
	if score >= 100 {
		if vuln == VulnBoth {
			score += 500
		} else {
			score += 300
		}
	} else {
		score += 50
	}
	return score
}
