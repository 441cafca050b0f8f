package scale

import (
	"encoding/json"
	"fmt"
)

// Feasibility is the five-level attack feasibility scale. It is strictly
// decreasing in attack-potential score: the harder the attack, the lower
// the feasibility.
type Feasibility int

const (
	FeasibilityVeryLow Feasibility = iota
	FeasibilityLow
	FeasibilityMedium
	FeasibilityHigh
	FeasibilityVeryHigh
)

var feasibilityTokens = [...]string{
	FeasibilityVeryLow:  "very_low",
	FeasibilityLow:      "low",
	FeasibilityMedium:   "medium",
	FeasibilityHigh:     "high",
	FeasibilityVeryHigh: "very_high",
}

func (f Feasibility) String() string {
	if f < FeasibilityVeryLow || f > FeasibilityVeryHigh {
		return fmt.Sprintf("feasibility(%d)", int(f))
	}
	return feasibilityTokens[f]
}

// MarshalJSON renders the level as its wire token.
func (f Feasibility) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

// ParseFeasibility converts a wire token to a Feasibility level.
func ParseFeasibility(token string) (Feasibility, error) {
	for level, t := range feasibilityTokens {
		if t == token {
			return Feasibility(level), nil
		}
	}
	return FeasibilityVeryLow, fmt.Errorf("feasibility level %q: %w", token, ErrUnknownLevel)
}

// Likelihood is the four-level attack likelihood scale consumed by the risk
// matrix. It has one level fewer than Feasibility: very-low and low
// feasibility are not distinguished for risk purposes.
type Likelihood int

const (
	LikelihoodLow Likelihood = iota
	LikelihoodMedium
	LikelihoodHigh
	LikelihoodVeryHigh
)

var likelihoodTokens = [...]string{
	LikelihoodLow:      "low",
	LikelihoodMedium:   "medium",
	LikelihoodHigh:     "high",
	LikelihoodVeryHigh: "very_high",
}

func (l Likelihood) String() string {
	if l < LikelihoodLow || l > LikelihoodVeryHigh {
		return fmt.Sprintf("likelihood(%d)", int(l))
	}
	return likelihoodTokens[l]
}

// MarshalJSON renders the level as its wire token.
func (l Likelihood) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// ParseLikelihood converts a wire token to a Likelihood level.
func ParseLikelihood(token string) (Likelihood, error) {
	for level, t := range likelihoodTokens {
		if t == token {
			return Likelihood(level), nil
		}
	}
	return LikelihoodLow, fmt.Errorf("likelihood level %q: %w", token, ErrUnknownLevel)
}
