package domain

// Competitor is a static registry entry. PageSearchTerm feeds the Ad Library
// search and is never exposed through the API.
type Competitor struct {
	Name           string `json:"name"`
	Category       string `json:"category"`
	Justification  string `json:"justification"`
	PageSearchTerm string `json:"-"`
}

type Brand struct {
	Key            string       `json:"key"`
	DisplayName    string       `json:"display_name"`
	Category       string       `json:"category"`
	TargetAudience string       `json:"target_audience"`
	Competitors    []Competitor `json:"competitors"`
}
