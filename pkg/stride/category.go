// Package stride enumerates candidate threats for technical assets of a
// vehicle E/E architecture using the STRIDE taxonomy. A static catalog maps
// each known asset type to the STRIDE categories it is exposed to; asset
// types the catalog has never heard of fall back to a minimal default set
// rather than failing, so enumeration stays total over future taxonomies.
package stride

import (
	"encoding/json"
	"fmt"
)

// Category is one of the six STRIDE threat categories.
type Category int

const (
	Spoofing Category = iota
	Tampering
	Repudiation
	InformationDisclosure
	DenialOfService
	ElevationOfPrivilege
)

// Categories lists all six categories in canonical STRIDE order. Catalog
// entries and generator output follow this order.
var Categories = [...]Category{
	Spoofing,
	Tampering,
	Repudiation,
	InformationDisclosure,
	DenialOfService,
	ElevationOfPrivilege,
}

var categoryNames = [...]string{
	Spoofing:              "Spoofing",
	Tampering:             "Tampering",
	Repudiation:           "Repudiation",
	InformationDisclosure: "Information Disclosure",
	DenialOfService:       "Denial of Service",
	ElevationOfPrivilege:  "Elevation of Privilege",
}

func (c Category) String() string {
	if c < Spoofing || c > ElevationOfPrivilege {
		return fmt.Sprintf("category(%d)", int(c))
	}
	return categoryNames[c]
}

// MarshalJSON renders the category as its display name.
func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}
