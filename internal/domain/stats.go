package domain

// Stats holds the aggregate counts shown in page metadata and dashboards.
type Stats struct {
	TotalVarieties   int `json:"total_varieties"`
	TotalWinegrowers int `json:"total_winegrowers"`
	TotalWines       int `json:"total_wines"`
	TotalCountries   int `json:"total_countries"`
}

// Count is a label with a number, used for chart series and facet lists.
type Count struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// Facets lists the distinct values the index filters can take.
type Facets struct {
	Species        []string
	Colors         []string
	Countries      []string
	StateProvinces []string
	WineTypes      []string
}
