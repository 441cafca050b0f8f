// Package risk holds the impact-aggregation rule, the risk matrix and the
// CAL step function of the TARA engine. All tables are constant data fixed
// at init; every function is pure.
package risk

import (
	"fmt"

	"github.com/tarakit/tarakit/pkg/scale"
)

// DamageScenario rates one way an asset's compromise harms stakeholders,
// across the four impact categories of ISO/SAE 21434. Each field's zero
// value is negligible, so omitted categories rate as the least severe
// level.
type DamageScenario struct {
	Safety      scale.Impact
	Financial   scale.Impact
	Operational scale.Impact
	Privacy     scale.Impact
}

// ScenarioTokens is the token-level form of DamageScenario as supplied by
// external callers. Empty fields default to negligible; unknown tokens are
// errors.
type ScenarioTokens struct {
	Safety      string `json:"safety" yaml:"safety"`
	Financial   string `json:"financial" yaml:"financial"`
	Operational string `json:"operational" yaml:"operational"`
	Privacy     string `json:"privacy" yaml:"privacy"`
}

// ParseScenario converts token-level impact ratings to a typed
// DamageScenario, failing on the first unrecognized token.
func ParseScenario(in ScenarioTokens) (DamageScenario, error) {
	var s DamageScenario
	fields := []struct {
		name  string
		token string
		dst   *scale.Impact
	}{
		{"safety", in.Safety, &s.Safety},
		{"financial", in.Financial, &s.Financial},
		{"operational", in.Operational, &s.Operational},
		{"privacy", in.Privacy, &s.Privacy},
	}
	for _, f := range fields {
		if f.token == "" {
			continue // absent category rates negligible
		}
		level, err := scale.ParseImpact(f.token)
		if err != nil {
			return DamageScenario{}, fmt.Errorf("%s: %w", f.name, err)
		}
		*f.dst = level
	}
	return s, nil
}

// OverallImpact aggregates the four category ratings into the scenario's
// overall impact: always the maximum, never an average. A scenario is as
// severe as its worst consequence.
func OverallImpact(s DamageScenario) scale.Impact {
	return scale.MaxImpact(s.Safety, s.Financial, s.Operational, s.Privacy)
}
