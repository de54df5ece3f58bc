package server

import (
	"errors"

	"bridgetutor/internal/engine"
)

type CardDTO struct {
	Suit string `json:"suit"`
	Rank string `json:"rank"`
}

type BidDTO struct {
	Type   string `json:"type"`
	Level  int    `json:"level,omitempty"`
	Strain string `json:"strain,omitempty"`
}

func (b *BidDTO) ToEngine() (engine.BidType, error) {
	if b == nil {
		return engine.BidType{}, errors.New("bid missing")
	}
	switch b.Type {
	case "pass":
		return engine.Pass(), nil
	case "double":
		return engine.Double(), nil
	case "redouble":
		return engine.Redouble(), nil
	case "contract":
		if b.Level < 1 || b.Level > 7 {
			return engine.BidType{}, errors.New("level must be 1..7")
		}
		s, err := parseStrain(b.Strain)
		if err != nil {
			return engine.BidType{}, err
		}
		return engine.ContractBid(b.Level, s), nil
	default:
		return engine.BidType{}, errors.New("unknown bid type")
	}
}

func BidFromEngine(b engine.BidType) BidDTO {
	switch b.Kind {
	case engine.BidPass:
		return BidDTO{Type: "pass"}
	case engine.BidDouble:
		return BidDTO{Type: "double"}
	case engine.BidRedouble:
		return BidDTO{Type: "redouble"}
	case engine.BidContract:
		return BidDTO{Type: "contract", Level: b.Level, Strain: b.Strain.String()}
	default:
		return BidDTO{Type: "unknown"}
	}
}

func cardToDTO(c engine.Card) CardDTO {
	return CardDTO{Suit: c.Suit.String(), Rank: c.Rank.String()}
}

func parseStrain(s string) (engine.Strain, error) {
	switch s {
	case "C":
		return engine.StrainClubs, nil
	case "D":
		return engine.StrainDiamonds, nil
	case "H":
		return engine.StrainHearts, nil
	case "S":
		return engine.StrainSpades, nil
	case "NT":
		return engine.StrainNoTrump, nil
	default:
		return engine.StrainClubs, errors.New("invalid strain")
	}
}

func parseVulnerability(s string) (engine.Vulnerability, error) {
	switch s {
	case "", "none":
		return engine.VulnNone, nil
	case "ns":
		return engine.VulnNorthSouth, nil
	case "ew":
		return engine.VulnEastWest, nil
	case "both":
		return engine.VulnBoth, nil
	default:
		return engine.VulnNone, errors.New("invalid vulnerability")
	}
}
