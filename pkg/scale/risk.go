package scale

import (
	"encoding/json"
	"fmt"
)

// RiskLevel is the five-level risk classification produced by the risk
// matrix. Value returns the matching numeric risk value 1–5.
type RiskLevel int

const (
	RiskNegligible RiskLevel = iota
	RiskLow
	RiskMedium
	RiskHigh
	RiskCritical
)

var riskTokens = [...]string{
	RiskNegligible: "negligible",
	RiskLow:        "low",
	RiskMedium:     "medium",
	RiskHigh:       "high",
	RiskCritical:   "critical",
}

func (r RiskLevel) String() string {
	if r < RiskNegligible || r > RiskCritical {
		return fmt.Sprintf("risk(%d)", int(r))
	}
	return riskTokens[r]
}

// MarshalJSON renders the level as its wire token.
func (r RiskLevel) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// Value returns the numeric risk value, 1 for negligible through 5 for
// critical.
func (r RiskLevel) Value() int {
	return int(r) + 1
}

// RiskLevelFromValue is the inverse of Value.
func RiskLevelFromValue(value int) (RiskLevel, error) {
	if value < 1 || value > 5 {
		return RiskNegligible, fmt.Errorf("risk value %d: %w", value, ErrUnknownLevel)
	}
	return RiskLevel(value - 1), nil
}

// CAL is the Cybersecurity Assurance Level, 1 (least rigorous) through 4.
type CAL int

const (
	CAL1 CAL = iota + 1
	CAL2
	CAL3
	CAL4
)

func (c CAL) String() string {
	if c < CAL1 || c > CAL4 {
		return fmt.Sprintf("cal(%d)", int(c))
	}
	return fmt.Sprintf("CAL%d", int(c))
}
