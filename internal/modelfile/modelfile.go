// Package modelfile loads the YAML model files consumed by the tarakit CLI.
// A model file lists the technical assets of an item and, optionally, the
// damage scenarios and attack paths to assess against them.
//
// The loader validates structure only (required fields, unique asset ids,
// resolvable scenario references). Ordinal tokens such as impact levels and
// attack-potential factors pass through untouched; the engine parses them
// so invalid tokens surface through its typed errors.
package modelfile

import (
	"bytes"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/tarakit/tarakit/pkg/feasibility"
	"github.com/tarakit/tarakit/pkg/risk"
	"github.com/tarakit/tarakit/pkg/stride"
)

// Model is a decoded model file.
type Model struct {
	Title     string     `yaml:"title"`
	Assets    []Asset    `yaml:"assets" validate:"required,min=1,dive"`
	Scenarios []Scenario `yaml:"scenarios" validate:"dive"`
}

// Asset declares one technical asset of the item under assessment.
type Asset struct {
	ID   int    `yaml:"id" validate:"required,min=1"`
	Name string `yaml:"name" validate:"required"`
	Type string `yaml:"type" validate:"required"`
}

// Scenario pairs an asset with one damage scenario and one attack path.
type Scenario struct {
	Asset  int                      `yaml:"asset" validate:"required,min=1"`
	Damage risk.ScenarioTokens      `yaml:"damage"`
	Attack feasibility.FactorTokens `yaml:"attack"`
}

var validate = validator.New()

// Load reads and validates a model file.
func Load(path string) (*Model, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model file: %w", err)
	}
	return Parse(raw)
}

// Parse decodes and validates model-file content.
func Parse(raw []byte) (*Model, error) {
	var m Model
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("decode model file: %w", err)
	}
	if err := validate.Struct(&m); err != nil {
		return nil, fmt.Errorf("invalid model file: %w", err)
	}

	seen := make(map[int]bool, len(m.Assets))
	for _, a := range m.Assets {
		if seen[a.ID] {
			return nil, fmt.Errorf("invalid model file: duplicate asset id %d", a.ID)
		}
		seen[a.ID] = true
	}
	for i, s := range m.Scenarios {
		if !seen[s.Asset] {
			return nil, fmt.Errorf("invalid model file: scenario %d references unknown asset %d", i, s.Asset)
		}
	}
	return &m, nil
}

// AssetByID resolves an asset reference to the engine's asset descriptor.
func (m *Model) AssetByID(id int) (stride.Asset, bool) {
	for _, a := range m.Assets {
		if a.ID == id {
			return stride.Asset{ID: a.ID, Name: a.Name, Type: a.Type}, true
		}
	}
	return stride.Asset{}, false
}

// EngineAssets returns every declared asset as an engine asset descriptor,
// in declaration order.
func (m *Model) EngineAssets() []stride.Asset {
	assets := make([]stride.Asset, len(m.Assets))
	for i, a := range m.Assets {
		assets[i] = stride.Asset{ID: a.ID, Name: a.Name, Type: a.Type}
	}
	return assets
}
