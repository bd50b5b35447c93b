package domain

import "github.com/google/uuid"

// Winegrower is a producer that grows grape varieties and makes wine from them.
// Latitude and Longitude are zero when the location has not been geocoded.
type Winegrower struct {
	ID             uuid.UUID `json:"id"`
	BusinessName   string    `json:"business_name"`
	Slug           string    `json:"slug"`
	City           string    `json:"city,omitempty"`
	StateProvince  string    `json:"state_province"`
	Country        string    `json:"country"`
	Website        string    `json:"website,omitempty"`
	Latitude       float64   `json:"latitude,omitempty"`
	Longitude      float64   `json:"longitude,omitempty"`
	GrapeVarieties []string  `json:"grape_varieties"`
	WineTypes      []string  `json:"wine_types"`
	Wines          []Wine    `json:"wines"`
}

// HasLocation reports whether the grower carries coordinates.
func (w Winegrower) HasLocation() bool {
	return w.Latitude != 0 || w.Longitude != 0
}

// Wine is one entry of a winegrower's wine list.
type Wine struct {
	Name      string   `json:"name"`
	Type      string   `json:"type"`
	Vintage   int      `json:"vintage,omitempty"` // 0 for non-vintage
	Varieties []string `json:"varieties"`
}

// WinegrowerDetail is a Winegrower together with the varieties of its
// GrapeVarieties list that exist in the dataset.
type WinegrowerDetail struct {
	Winegrower
	Varieties         []Variety
	UnlinkedVarieties []string
}
