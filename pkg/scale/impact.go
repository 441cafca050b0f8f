package scale

import (
	"encoding/json"
	"fmt"
)

// Impact is the five-level impact severity scale applied to each damage
// category of a damage scenario. The zero value is Negligible, so an
// unspecified category naturally rates as the least severe level.
type Impact int

const (
	Negligible Impact = iota
	Minor
	Moderate
	Major
	Severe
)

// impactTokens maps each level to its canonical wire token, in scale order.
var impactTokens = [...]string{
	Negligible: "negligible",
	Minor:      "minor",
	Moderate:   "moderate",
	Major:      "major",
	Severe:     "severe",
}

func (i Impact) String() string {
	if i < Negligible || i > Severe {
		return fmt.Sprintf("impact(%d)", int(i))
	}
	return impactTokens[i]
}

// MarshalJSON renders the level as its wire token.
func (i Impact) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.String())
}

// ParseImpact converts a wire token to an Impact level.
func ParseImpact(token string) (Impact, error) {
	for level, t := range impactTokens {
		if t == token {
			return Impact(level), nil
		}
	}
	return Negligible, fmt.Errorf("impact level %q: %w", token, ErrUnknownLevel)
}

// MaxImpact returns the most severe of the given levels, or Negligible when
// called with none.
func MaxImpact(levels ...Impact) Impact {
	result := Negligible
	for _, l := range levels {
		if l > result {
			result = l
		}
	}
	return result
}
