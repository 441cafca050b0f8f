package stride

import "fmt"

// Asset identifies the subject of a threat enumeration. Type selects the
// catalog entry; Name is interpolated into threat names and descriptions.
type Asset struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// Threat is one STRIDE-categorized candidate threat for one asset. Threats
// are computed values; the engine does not store them.
type Threat struct {
	AssetID     int      `json:"asset_id"`
	Category    Category `json:"stride_category"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
}

// AnalyzeAsset enumerates the candidate threats for the given asset, one
// per STRIDE category the catalog marks applicable to its type, in
// canonical category order. The function is pure: identical input yields an
// identical, order-stable list.
func AnalyzeAsset(asset Asset) []Threat {
	cats := ApplicableCategories(asset.Type)
	threats := make([]Threat, 0, len(cats))
	for _, cat := range cats {
		tpl := templates[cat]
		threats = append(threats, Threat{
			AssetID:     asset.ID,
			Category:    cat,
			Name:        fmt.Sprintf(tpl.name, asset.Name),
			Description: fmt.Sprintf(tpl.description, asset.Name),
		})
	}
	return threats
}
