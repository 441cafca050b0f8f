package feasibility

import "github.com/tarakit/tarakit/pkg/scale"

// Factors describes one attack path in terms of the four attack-potential
// factors. The zero value is the easiest possible attack (layman, under a
// week, standard equipment, public knowledge).
type Factors struct {
	Expertise   Expertise
	ElapsedTime ElapsedTime
	Equipment   Equipment
	Knowledge   Knowledge
}

// FactorTokens is the token-level form of Factors as supplied by external
// callers. Every field is required.
type FactorTokens struct {
	Expertise   string `json:"expertise" yaml:"expertise"`
	ElapsedTime string `json:"elapsed_time" yaml:"elapsed_time"`
	Equipment   string `json:"equipment" yaml:"equipment"`
	Knowledge   string `json:"knowledge" yaml:"knowledge"`
}

// ParseFactors converts token-level factors to typed ones, failing on the
// first missing or unrecognized token.
func ParseFactors(in FactorTokens) (Factors, error) {
	var f Factors
	var err error
	if f.Expertise, err = ParseExpertise(in.Expertise); err != nil {
		return Factors{}, err
	}
	if f.ElapsedTime, err = ParseElapsedTime(in.ElapsedTime); err != nil {
		return Factors{}, err
	}
	if f.Equipment, err = ParseEquipment(in.Equipment); err != nil {
		return Factors{}, err
	}
	if f.Knowledge, err = ParseKnowledge(in.Knowledge); err != nil {
		return Factors{}, err
	}
	return f, nil
}

// ratingThresholds maps ascending attack-potential scores to descending
// feasibility: a score above each bound drops the rating one level.
var ratingThresholds = []struct {
	maxScore int
	rating   scale.Feasibility
}{
	{9, scale.FeasibilityVeryHigh},
	{13, scale.FeasibilityHigh},
	{19, scale.FeasibilityMedium},
	{24, scale.FeasibilityLow},
}

// AttackPotential sums the four factor point values and derives the
// feasibility rating. The score is non-negative and the rating strictly
// decreases as the score grows.
func AttackPotential(f Factors) (score int, rating scale.Feasibility) {
	score = f.Expertise.Points() + f.ElapsedTime.Points() + f.Equipment.Points() + f.Knowledge.Points()
	for _, t := range ratingThresholds {
		if score <= t.maxScore {
			return score, t.rating
		}
	}
	return score, scale.FeasibilityVeryLow
}

// Likelihood reduces a feasibility rating to the four-level likelihood
// scale: the identity mapping except that very-low feasibility collapses
// into low likelihood.
func Likelihood(rating scale.Feasibility) scale.Likelihood {
	switch rating {
	case scale.FeasibilityVeryLow, scale.FeasibilityLow:
		return scale.LikelihoodLow
	case scale.FeasibilityMedium:
		return scale.LikelihoodMedium
	case scale.FeasibilityHigh:
		return scale.LikelihoodHigh
	default:
		return scale.LikelihoodVeryHigh
	}
}
