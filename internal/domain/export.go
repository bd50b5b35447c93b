package domain

// ExportRow is a single row of the downloadable wine list.
// It is a flat, denormalized view: one row per wine, with winegrower fields
// repeated for every wine of that grower. Growers with no wines yield one
// row with zero values for all wine fields.
//
// WineVarieties keeps the order of the wine record.
// Callers that need a joined string (e.g. CSV) should join with "|".
type ExportRow struct {
	// Winegrower fields, repeated for every wine of the grower.
	WinegrowerID  string `json:"winegrower_id"`
	BusinessName  string `json:"business_name"`
	City          string `json:"city,omitempty"`
	StateProvince string `json:"state_province"`
	Country       string `json:"country"`

	// Wine fields, zero values when the grower lists no wine.
	WineName      string   `json:"wine_name,omitempty"`
	WineType      string   `json:"wine_type,omitempty"`
	Vintage       int      `json:"vintage,omitempty"`
	WineVarieties []string `json:"wine_varieties"`
}
