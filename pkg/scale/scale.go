// Package scale defines the ordinal rating scales used throughout the TARA
// engine: impact severity, attack feasibility, likelihood, risk level and
// CAL. Each scale is a small closed enumeration backed by an int, so two
// levels on the same scale compare with the ordinary < and > operators.
//
// Parsing is strict: an unrecognized token is reported via ErrUnknownLevel
// and is never coerced to a default level.
package scale

import "errors"

// ErrUnknownLevel is returned (wrapped) by every ParseX function in this
// package when the input token does not name a level on that scale.
var ErrUnknownLevel = errors.New("unknown scale level")
