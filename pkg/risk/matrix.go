package risk

import "github.com/tarakit/tarakit/pkg/scale"

// matrix is the complete 5×4 risk matrix, indexed [impact][likelihood]. It
// is total over both scales and monotonic along each axis: raising either
// input never lowers the resulting level.
var matrix = [5][4]scale.RiskLevel{
	// likelihood:   low              medium           high             very_high
	/* negligible */ {scale.RiskNegligible, scale.RiskNegligible, scale.RiskNegligible, scale.RiskLow},
	/* minor      */ {scale.RiskNegligible, scale.RiskLow, scale.RiskLow, scale.RiskMedium},
	/* moderate   */ {scale.RiskLow, scale.RiskMedium, scale.RiskMedium, scale.RiskHigh},
	/* major      */ {scale.RiskLow, scale.RiskMedium, scale.RiskHigh, scale.RiskCritical},
	/* severe     */ {scale.RiskMedium, scale.RiskHigh, scale.RiskCritical, scale.RiskCritical},
}

// Calculate maps an overall impact and an attack likelihood to a risk level
// and its numeric value 1–5. The matrix covers every combination of the two
// scales, so Calculate cannot fail for in-range inputs.
func Calculate(impact scale.Impact, likelihood scale.Likelihood) (scale.RiskLevel, int) {
	level := matrix[impact][likelihood]
	return level, level.Value()
}
