// Package domain contains the core data types for the GrapeGeek site.
// This package has no dependencies on other internal packages and is imported
// by every other internal package (dataset, repo, service, handler, view).
package domain

import "github.com/google/uuid"

// Variety is a grape cultivar with its lineage and growing characteristics.
// A single entry in ParentCrosses means the variety is a bud mutation of that
// parent; two entries mean a cross.
type Variety struct {
	ID               uuid.UUID         `json:"id"`
	Name             string            `json:"name"`
	Slug             string            `json:"slug"`
	Species          []string          `json:"species"`
	ParentCrosses    []string          `json:"parent_crosses"`
	SimilarVarieties []string          `json:"similar_varieties"`
	Color            string            `json:"color,omitempty"`
	CountryOfOrigin  string            `json:"country_of_origin,omitempty"`
	Breeder          string            `json:"breeder,omitempty"`
	YearOfCrossing   int               `json:"year_of_crossing,omitempty"` // 0 when unknown
	Hardiness        string            `json:"hardiness,omitempty"`
	Ripening         string            `json:"ripening,omitempty"`
	Characteristics  map[string]string `json:"characteristics,omitempty"`
	Description      string            `json:"description,omitempty"`
}

// IsMutation reports whether the variety descends from a single parent.
func (v Variety) IsMutation() bool {
	return len(v.ParentCrosses) == 1
}

// VarietyDetail is a Variety together with the records it links to.
// Parents and similar varieties that are not in the dataset are kept by name
// only, in UnlinkedParents and UnlinkedSimilar.
type VarietyDetail struct {
	Variety
	Parents         []Variety
	UnlinkedParents []string
	Children        []Variety
	Similar         []Variety
	UnlinkedSimilar []string
	Growers         []Winegrower
}
