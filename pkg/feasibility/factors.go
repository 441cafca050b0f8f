// Package feasibility rates attack feasibility from the four
// attack-potential factors of ISO/SAE 21434 (following the ISO 18045
// attack-potential method): attacker expertise, elapsed time, equipment and
// knowledge of the item. Each factor is a closed ordinal level mapped to an
// integer point value; the factor sum is thresholded into a feasibility
// rating and reduced to the four-level likelihood scale the risk matrix
// consumes.
package feasibility

import (
	"errors"
	"fmt"

	"github.com/tarakit/tarakit/pkg/scale"
)

// ErrMissingFactor is returned (wrapped) when a required attack-potential
// factor is absent from the input.
var ErrMissingFactor = errors.New("missing attack-potential factor")

// Expertise is the attacker capability required for the attack path.
type Expertise int

const (
	Layman Expertise = iota
	Proficient
	Expert
	MultipleExperts
)

// expertisePoints follows the ISO 18045 table.
var expertisePoints = [...]int{
	Layman:          0,
	Proficient:      3,
	Expert:          6,
	MultipleExperts: 8,
}

var expertiseTokens = [...]string{
	Layman:          "layman",
	Proficient:      "proficient",
	Expert:          "expert",
	MultipleExperts: "multiple_experts",
}

// Points returns the attack-potential contribution of the level.
func (e Expertise) Points() int { return expertisePoints[e] }

func (e Expertise) String() string { return expertiseTokens[e] }

// ParseExpertise converts a wire token to an Expertise level.
func ParseExpertise(token string) (Expertise, error) {
	if token == "" {
		return Layman, fmt.Errorf("expertise: %w", ErrMissingFactor)
	}
	for level, t := range expertiseTokens {
		if t == token {
			return Expertise(level), nil
		}
	}
	return Layman, fmt.Errorf("expertise level %q: %w", token, scale.ErrUnknownLevel)
}

// ElapsedTime is the total time required to identify and exploit the attack
// path.
type ElapsedTime int

const (
	OneWeek ElapsedTime = iota
	OneMonth
	SixMonths
	ThreeYears
	BeyondThreeYears
)

var elapsedTimePoints = [...]int{
	OneWeek:          0,
	OneMonth:         1,
	SixMonths:        4,
	ThreeYears:       10,
	BeyondThreeYears: 19,
}

var elapsedTimeTokens = [...]string{
	OneWeek:          "one_week",
	OneMonth:         "one_month",
	SixMonths:        "six_months",
	ThreeYears:       "three_years",
	BeyondThreeYears: "beyond_three_years",
}

// Points returns the attack-potential contribution of the level.
func (t ElapsedTime) Points() int { return elapsedTimePoints[t] }

func (t ElapsedTime) String() string { return elapsedTimeTokens[t] }

// ParseElapsedTime converts a wire token to an ElapsedTime level.
func ParseElapsedTime(token string) (ElapsedTime, error) {
	if token == "" {
		return OneWeek, fmt.Errorf("elapsed_time: %w", ErrMissingFactor)
	}
	for level, t := range elapsedTimeTokens {
		if t == token {
			return ElapsedTime(level), nil
		}
	}
	return OneWeek, fmt.Errorf("elapsed_time level %q: %w", token, scale.ErrUnknownLevel)
}

// Equipment is the tooling required for the attack path.
type Equipment int

const (
	Standard Equipment = iota
	Specialized
	Bespoke
	MultipleBespoke
)

var equipmentPoints = [...]int{
	Standard:        0,
	Specialized:     4,
	Bespoke:         7,
	MultipleBespoke: 9,
}

var equipmentTokens = [...]string{
	Standard:        "standard",
	Specialized:     "specialized",
	Bespoke:         "bespoke",
	MultipleBespoke: "multiple_bespoke",
}

// Points returns the attack-potential contribution of the level.
func (e Equipment) Points() int { return equipmentPoints[e] }

func (e Equipment) String() string { return equipmentTokens[e] }

// ParseEquipment converts a wire token to an Equipment level.
func ParseEquipment(token string) (Equipment, error) {
	if token == "" {
		return Standard, fmt.Errorf("equipment: %w", ErrMissingFactor)
	}
	for level, t := range equipmentTokens {
		if t == token {
			return Equipment(level), nil
		}
	}
	return Standard, fmt.Errorf("equipment level %q: %w", token, scale.ErrUnknownLevel)
}

// Knowledge is the level of knowledge of the item required for the attack
// path.
type Knowledge int

const (
	Public Knowledge = iota
	Restricted
	Confidential
	StrictlyConfidential
)

var knowledgePoints = [...]int{
	Public:               0,
	Restricted:           3,
	Confidential:         7,
	StrictlyConfidential: 11,
}

var knowledgeTokens = [...]string{
	Public:               "public",
	Restricted:           "restricted",
	Confidential:         "confidential",
	StrictlyConfidential: "strictly_confidential",
}

// Points returns the attack-potential contribution of the level.
func (k Knowledge) Points() int { return knowledgePoints[k] }

func (k Knowledge) String() string { return knowledgeTokens[k] }

// ParseKnowledge converts a wire token to a Knowledge level.
func ParseKnowledge(token string) (Knowledge, error) {
	if token == "" {
		return Public, fmt.Errorf("knowledge: %w", ErrMissingFactor)
	}
	for level, t := range knowledgeTokens {
		if t == token {
			return Knowledge(level), nil
		}
	}
	return Public, fmt.Errorf("knowledge level %q: %w", token, scale.ErrUnknownLevel)
}
