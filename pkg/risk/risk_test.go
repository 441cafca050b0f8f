package risk

import (
	"errors"
	"testing"

	"github.com/tarakit/tarakit/pkg/scale"
)

func TestOverallImpactWorstCategoryDominates(t *testing.T) {
	impact := OverallImpact(DamageScenario{
		Safety:      scale.Severe,
		Financial:   scale.Major,
		Operational: scale.Moderate,
		Privacy:     scale.Minor,
	})
	if impact != scale.Severe {
		t.Errorf("overall impact = %v, want severe", impact)
	}
}

func TestOverallImpactZeroScenario(t *testing.T) {
	if impact := OverallImpact(DamageScenario{}); impact != scale.Negligible {
		t.Errorf("empty scenario impact = %v, want negligible", impact)
	}
}

func TestParseScenarioDefaultsAbsentCategories(t *testing.T) {
	s, err := ParseScenario(ScenarioTokens{Privacy: "major"})
	if err != nil {
		t.Fatalf("ParseScenario: %v", err)
	}
	if s.Safety != scale.Negligible || s.Financial != scale.Negligible || s.Operational != scale.Negligible {
		t.Errorf("absent categories should default to negligible, got %+v", s)
	}
	if s.Privacy != scale.Major {
		t.Errorf("privacy = %v, want major", s.Privacy)
	}
}

func TestParseScenarioUnknownToken(t *testing.T) {
	_, err := ParseScenario(ScenarioTokens{Safety: "apocalyptic"})
	if !errors.Is(err, scale.ErrUnknownLevel) {
		t.Errorf("err = %v, want ErrUnknownLevel", err)
	}
}

func TestCalculateAnchorCells(t *testing.T) {
	cases := []struct {
		impact     scale.Impact
		likelihood scale.Likelihood
		level      scale.RiskLevel
		value      int
	}{
		{scale.Severe, scale.LikelihoodVeryHigh, scale.RiskCritical, 5},
		{scale.Negligible, scale.LikelihoodLow, scale.RiskNegligible, 1},
		{scale.Moderate, scale.LikelihoodMedium, scale.RiskMedium, 3},
	}
	for _, c := range cases {
		level, value := Calculate(c.impact, c.likelihood)
		if level != c.level || value != c.value {
			t.Errorf("Calculate(%v, %v) = (%v, %d), want (%v, %d)",
				c.impact, c.likelihood, level, value, c.level, c.value)
		}
	}
}

func TestCalculateCoversEveryCombination(t *testing.T) {
	for impact := scale.Negligible; impact <= scale.Severe; impact++ {
		for likelihood := scale.LikelihoodLow; likelihood <= scale.LikelihoodVeryHigh; likelihood++ {
			level, value := Calculate(impact, likelihood)
			if value < 1 || value > 5 {
				t.Errorf("Calculate(%v, %v) value = %d, outside [1,5]", impact, likelihood, value)
			}
			if level.Value() != value {
				t.Errorf("Calculate(%v, %v) level %v disagrees with value %d", impact, likelihood, level, value)
			}
		}
	}
}

func TestCalculateMonotonic(t *testing.T) {
	for impact := scale.Negligible; impact <= scale.Severe; impact++ {
		for likelihood := scale.LikelihoodLow; likelihood <= scale.LikelihoodVeryHigh; likelihood++ {
			_, value := Calculate(impact, likelihood)
			if impact < scale.Severe {
				if _, up := Calculate(impact+1, likelihood); up < value {
					t.Errorf("raising impact from %v lowered risk: %d -> %d", impact, value, up)
				}
			}
			if likelihood < scale.LikelihoodVeryHigh {
				if _, up := Calculate(impact, likelihood+1); up < value {
					t.Errorf("raising likelihood from %v lowered risk: %d -> %d", likelihood, value, up)
				}
			}
		}
	}
}

func TestDetermineCAL(t *testing.T) {
	cases := []struct {
		riskValue int
		want      scale.CAL
	}{
		{1, scale.CAL1},
		{2, scale.CAL1},
		{3, scale.CAL2},
		{4, scale.CAL3},
		{5, scale.CAL4},
	}
	for _, c := range cases {
		if got := DetermineCAL(c.riskValue); got != c.want {
			t.Errorf("DetermineCAL(%d) = %v, want %v", c.riskValue, got, c.want)
		}
	}
}

func TestDetermineCALMonotonic(t *testing.T) {
	prev := DetermineCAL(1)
	for v := 2; v <= 5; v++ {
		cur := DetermineCAL(v)
		if cur < prev {
			t.Errorf("DetermineCAL(%d) = %v below DetermineCAL(%d) = %v", v, cur, v-1, prev)
		}
		prev = cur
	}
}
