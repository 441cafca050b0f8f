package stride

// threatTemplate builds the name and description of one generated threat
// from the target asset's name.
type threatTemplate struct {
	name        string // fmt verb %s receives the asset name
	description string
}

// templates holds one name/description template per STRIDE category. The
// wording is deliberately generic: the asset name carries the specifics.
var templates = map[Category]threatTemplate{
	Spoofing: {
		name:        "Spoofing of %s",
		description: "An attacker impersonates %s or forges messages attributed to it, causing peers to act on illegitimate input.",
	},
	Tampering: {
		name:        "Tampering with %s",
		description: "An attacker modifies the firmware, configuration or in-transit data of %s, violating its integrity.",
	},
	Repudiation: {
		name:        "Repudiation of actions on %s",
		description: "Actions performed on or through %s cannot be reliably attributed, allowing an actor to deny having performed them.",
	},
	InformationDisclosure: {
		name:        "Information disclosure from %s",
		description: "An attacker extracts confidential data handled by %s, such as personal data, credentials or calibration secrets.",
	},
	DenialOfService: {
		name:        "Denial of service against %s",
		description: "An attacker degrades or suspends the function provided by %s, for example by flooding its bus interface or exhausting its resources.",
	},
	ElevationOfPrivilege: {
		name:        "Elevation of privilege via %s",
		description: "An attacker leverages %s to obtain capabilities beyond those intended, pivoting from a low-privilege foothold to privileged vehicle functions.",
	},
}

// catalog maps each known asset type to the STRIDE categories it is exposed
// to. Entries are listed in canonical STRIDE order and fixed at init; the
// generator never mutates them.
var catalog = map[string][]Category{
	// Networked control units expose the full remote attack surface short of
	// repudiation concerns.
	"ecu": {Spoofing, Tampering, InformationDisclosure, DenialOfService, ElevationOfPrivilege},

	// Gateways route between domains and are in scope for every category,
	// including repudiation of forwarded traffic.
	"gateway": {Spoofing, Tampering, Repudiation, InformationDisclosure, DenialOfService, ElevationOfPrivilege},

	// Sensors emit data; the concern is the integrity and confidentiality of
	// that data and the availability of the reading.
	"sensor": {Tampering, InformationDisclosure, DenialOfService},

	// Actuators accept commands; forged or replayed commands and loss of
	// actuation dominate.
	"actuator": {Spoofing, Tampering, DenialOfService},

	// External interfaces (cellular, Wi-Fi, Bluetooth, OBD) are the entry
	// points for remote attackers.
	"external_interface": {Spoofing, Tampering, InformationDisclosure, DenialOfService, ElevationOfPrivilege},

	// In-vehicle buses carry unauthenticated frames between many nodes.
	"communication_bus": {Spoofing, Tampering, InformationDisclosure, DenialOfService},

	// Telematics units combine an external interface with backend
	// connectivity and logging duties.
	"telematics_unit": {Spoofing, Tampering, Repudiation, InformationDisclosure, DenialOfService, ElevationOfPrivilege},

	// Diagnostic interfaces grant privileged access by design.
	"diagnostic_interface": {Spoofing, Tampering, InformationDisclosure, DenialOfService, ElevationOfPrivilege},
}

// defaultCategories applies to asset types absent from the catalog: every
// connected component is nominally exposed to tampering and denial of
// service.
var defaultCategories = []Category{Tampering, DenialOfService}

// CatalogTypes returns the asset types with a dedicated catalog entry.
func CatalogTypes() []string {
	types := make([]string, 0, len(catalog))
	for t := range catalog {
		types = append(types, t)
	}
	return types
}

// ApplicableCategories returns the STRIDE categories for the given asset
// type, in canonical order. Unknown types get the default minimal set; the
// returned slice is a copy and safe to modify.
func ApplicableCategories(assetType string) []Category {
	cats, ok := catalog[assetType]
	if !ok {
		cats = defaultCategories
	}
	out := make([]Category, len(cats))
	copy(out, cats)
	return out
}
