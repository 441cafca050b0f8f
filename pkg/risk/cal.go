package risk

import "github.com/tarakit/tarakit/pkg/scale"

// DetermineCAL maps a risk value to the required Cybersecurity Assurance
// Level. The step function is monotonic non-decreasing: assurance rigor
// scales with assessed risk.
func DetermineCAL(riskValue int) scale.CAL {
	switch {
	case riskValue >= 5:
		return scale.CAL4
	case riskValue == 4:
		return scale.CAL3
	case riskValue == 3:
		return scale.CAL2
	default:
		return scale.CAL1
	}
}
