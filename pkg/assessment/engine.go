// Package assessment composes the TARA engine into one end-to-end
// computation per (asset, damage scenario, attack path) triple: impact
// aggregation, attack-feasibility scoring, risk-matrix lookup and CAL
// assignment, in that order.
//
// The typed Assess path cannot fail; the token-level Evaluate path parses
// caller-supplied strings first and fails fast on the first invalid token,
// returning no partial result.
package assessment

import (
	"go.uber.org/zap"

	"github.com/tarakit/tarakit/pkg/feasibility"
	"github.com/tarakit/tarakit/pkg/risk"
	"github.com/tarakit/tarakit/pkg/scale"
	"github.com/tarakit/tarakit/pkg/stride"
)

// Result is the immutable outcome of one assessment.
type Result struct {
	Impact          scale.Impact      `json:"impact"`
	Likelihood      scale.Likelihood  `json:"likelihood"`
	RiskLevel       scale.RiskLevel   `json:"risk_level"`
	RiskValue       int               `json:"risk_value"`
	CAL             scale.CAL         `json:"cal"`
	AttackPotential int               `json:"attack_potential"`
	Feasibility     scale.Feasibility `json:"feasibility"`
}

// Engine runs assessments. It holds only a logger; all scoring state lives
// in the package-level constant tables, so a single Engine is safe for
// unbounded concurrent use.
type Engine struct {
	logger *zap.Logger
}

// NewEngine creates an Engine. A nil logger disables logging.
func NewEngine(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{logger: logger}
}

// Threats enumerates the candidate STRIDE threats for the asset.
func (e *Engine) Threats(asset stride.Asset) []stride.Threat {
	threats := stride.AnalyzeAsset(asset)
	e.logger.Debug("enumerated threats",
		zap.Int("asset_id", asset.ID),
		zap.String("asset_type", asset.Type),
		zap.Int("count", len(threats)))
	return threats
}

// Assess computes the risk assessment for one typed triple. It is a pure
// sequence of the engine stages and has no failure modes.
func (e *Engine) Assess(asset stride.Asset, scenario risk.DamageScenario, factors feasibility.Factors) Result {
	impact := risk.OverallImpact(scenario)
	score, rating := feasibility.AttackPotential(factors)
	likelihood := feasibility.Likelihood(rating)
	level, value := risk.Calculate(impact, likelihood)
	cal := risk.DetermineCAL(value)

	e.logger.Debug("assessed risk",
		zap.Int("asset_id", asset.ID),
		zap.Stringer("impact", impact),
		zap.Int("attack_potential", score),
		zap.Stringer("likelihood", likelihood),
		zap.Stringer("risk_level", level),
		zap.Stringer("cal", cal))

	return Result{
		Impact:          impact,
		Likelihood:      likelihood,
		RiskLevel:       level,
		RiskValue:       value,
		CAL:             cal,
		AttackPotential: score,
		Feasibility:     rating,
	}
}

// Evaluate parses token-level scenario and factor inputs and runs Assess.
// Any unrecognized ordinal token or missing factor surfaces as an error
// (scale.ErrUnknownLevel or feasibility.ErrMissingFactor) before any
// scoring happens; there are no partial results.
func (e *Engine) Evaluate(asset stride.Asset, scenario risk.ScenarioTokens, factors feasibility.FactorTokens) (*Result, error) {
	s, err := risk.ParseScenario(scenario)
	if err != nil {
		return nil, err
	}
	f, err := feasibility.ParseFactors(factors)
	if err != nil {
		return nil, err
	}
	result := e.Assess(asset, s, f)
	return &result, nil
}
