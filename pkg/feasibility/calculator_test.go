package feasibility

import (
	"errors"
	"testing"

	"github.com/tarakit/tarakit/pkg/scale"
)

func TestAttackPotentialTrivialAttack(t *testing.T) {
	score, rating := AttackPotential(Factors{})
	if score != 0 {
		t.Errorf("score = %d, want 0", score)
	}
	if rating != scale.FeasibilityVeryHigh {
		t.Errorf("rating = %v, want very_high", rating)
	}
}

func TestAttackPotentialHardAttack(t *testing.T) {
	score, rating := AttackPotential(Factors{
		Expertise:   MultipleExperts,
		ElapsedTime: ThreeYears,
		Equipment:   Bespoke,
		Knowledge:   Confidential,
	})
	if score < 20 {
		t.Errorf("score = %d, want at least 20", score)
	}
	if rating != scale.FeasibilityLow && rating != scale.FeasibilityVeryLow {
		t.Errorf("rating = %v, want low or very_low", rating)
	}
}

func TestAttackPotentialThresholds(t *testing.T) {
	cases := []struct {
		name    string
		factors Factors
		score   int
		rating  scale.Feasibility
	}{
		{"top of very_high", Factors{Layman, OneWeek, MultipleBespoke, Public}, 9, scale.FeasibilityVeryHigh},
		{"bottom of high", Factors{Layman, ThreeYears, Standard, Public}, 10, scale.FeasibilityHigh},
		{"top of high", Factors{Proficient, ThreeYears, Standard, Public}, 13, scale.FeasibilityHigh},
		{"bottom of medium", Factors{Proficient, OneWeek, Standard, StrictlyConfidential}, 14, scale.FeasibilityMedium},
		{"top of medium", Factors{Layman, BeyondThreeYears, Standard, Public}, 19, scale.FeasibilityMedium},
		{"bottom of low", Factors{Expert, ThreeYears, Specialized, Public}, 20, scale.FeasibilityLow},
		{"top of low", Factors{MultipleExperts, OneMonth, Specialized, StrictlyConfidential}, 24, scale.FeasibilityLow},
		{"bottom of very_low", Factors{Expert, OneMonth, Bespoke, StrictlyConfidential}, 25, scale.FeasibilityVeryLow},
		{"deep very_low", Factors{MultipleExperts, BeyondThreeYears, MultipleBespoke, StrictlyConfidential}, 47, scale.FeasibilityVeryLow},
	}
	for _, c := range cases {
		score, rating := AttackPotential(c.factors)
		if score != c.score {
			t.Errorf("%s: score = %d, want %d", c.name, score, c.score)
		}
		if rating != c.rating {
			t.Errorf("%s: rating = %v, want %v", c.name, rating, c.rating)
		}
	}
}

func TestLikelihoodReduction(t *testing.T) {
	cases := []struct {
		rating scale.Feasibility
		want   scale.Likelihood
	}{
		{scale.FeasibilityVeryLow, scale.LikelihoodLow}, // collapses: no very_low likelihood
		{scale.FeasibilityLow, scale.LikelihoodLow},
		{scale.FeasibilityMedium, scale.LikelihoodMedium},
		{scale.FeasibilityHigh, scale.LikelihoodHigh},
		{scale.FeasibilityVeryHigh, scale.LikelihoodVeryHigh},
	}
	for _, c := range cases {
		if got := Likelihood(c.rating); got != c.want {
			t.Errorf("Likelihood(%v) = %v, want %v", c.rating, got, c.want)
		}
	}
}

func TestParseFactors(t *testing.T) {
	f, err := ParseFactors(FactorTokens{
		Expertise:   "expert",
		ElapsedTime: "six_months",
		Equipment:   "specialized",
		Knowledge:   "restricted",
	})
	if err != nil {
		t.Fatalf("ParseFactors: %v", err)
	}
	want := Factors{Expert, SixMonths, Specialized, Restricted}
	if f != want {
		t.Errorf("ParseFactors = %+v, want %+v", f, want)
	}
}

func TestParseFactorsMissing(t *testing.T) {
	_, err := ParseFactors(FactorTokens{
		ElapsedTime: "one_week",
		Equipment:   "standard",
		Knowledge:   "public",
	})
	if !errors.Is(err, ErrMissingFactor) {
		t.Errorf("err = %v, want ErrMissingFactor", err)
	}
}

func TestParseFactorsUnknownToken(t *testing.T) {
	_, err := ParseFactors(FactorTokens{
		Expertise:   "wizard",
		ElapsedTime: "one_week",
		Equipment:   "standard",
		Knowledge:   "public",
	})
	if !errors.Is(err, scale.ErrUnknownLevel) {
		t.Errorf("err = %v, want ErrUnknownLevel", err)
	}
}

func TestFactorPointsStrictlyIncrease(t *testing.T) {
	expertise := []Expertise{Layman, Proficient, Expert, MultipleExperts}
	for i := 1; i < len(expertise); i++ {
		if expertise[i-1].Points() >= expertise[i].Points() {
			t.Errorf("expertise points not increasing at %v", expertise[i])
		}
	}
	times := []ElapsedTime{OneWeek, OneMonth, SixMonths, ThreeYears, BeyondThreeYears}
	for i := 1; i < len(times); i++ {
		if times[i-1].Points() >= times[i].Points() {
			t.Errorf("elapsed-time points not increasing at %v", times[i])
		}
	}
	equipment := []Equipment{Standard, Specialized, Bespoke, MultipleBespoke}
	for i := 1; i < len(equipment); i++ {
		if equipment[i-1].Points() >= equipment[i].Points() {
			t.Errorf("equipment points not increasing at %v", equipment[i])
		}
	}
	knowledge := []Knowledge{Public, Restricted, Confidential, StrictlyConfidential}
	for i := 1; i < len(knowledge); i++ {
		if knowledge[i-1].Points() >= knowledge[i].Points() {
			t.Errorf("knowledge points not increasing at %v", knowledge[i])
		}
	}
}
