package service

import (
	"strings"

	"github.com/p-gag/grapegeek-sub001/internal/domain"
	"github.com/p-gag/grapegeek-sub001/internal/slug"
)

// matchVariety reports whether v satisfies every non-empty field of f.
// Comparisons ignore case and diacritics.
func matchVariety(v domain.Variety, f domain.VarietyFilter) bool {
	if f.Species != "" && !containsFolded(v.Species, slug.Fold(f.Species)) {
		return false
	}
	if f.Color != "" && slug.Fold(v.Color) != slug.Fold(f.Color) {
		return false
	}
	if f.Letter != "" && slug.Initial(v.Name) != strings.ToUpper(slug.Fold(f.Letter)) {
		return false
	}
	if q := slug.Fold(strings.TrimSpace(f.Query)); q != "" {
		hay := []string{v.Name, v.Breeder, v.CountryOfOrigin}
		hay = append(hay, v.Species...)
		if !anyContains(hay, q) {
			return false
		}
	}
	return true
}

// matchWinegrower reports whether w satisfies every non-empty field of f.
func matchWinegrower(w domain.Winegrower, f domain.WinegrowerFilter) bool {
	if f.Country != "" && slug.Fold(w.Country) != slug.Fold(f.Country) {
		return false
	}
	if f.StateProvince != "" && slug.Fold(w.StateProvince) != slug.Fold(f.StateProvince) {
		return false
	}
	if f.Variety != "" && !containsFolded(w.GrapeVarieties, slug.Fold(f.Variety)) {
		return false
	}
	if f.WineType != "" && !containsFolded(w.WineTypes, slug.Fold(f.WineType)) {
		return false
	}
	if q := slug.Fold(strings.TrimSpace(f.Query)); q != "" {
		if !anyContains([]string{w.BusinessName, w.City, w.StateProvince, w.Country}, q) {
			return false
		}
	}
	return true
}

// containsFolded reports whether any element of list folds to key.
func containsFolded(list []string, key string) bool {
	for _, s := range list {
		if slug.Fold(s) == key {
			return true
		}
	}
	return false
}

// anyContains reports whether any element of hay contains the folded needle.
func anyContains(hay []string, needle string) bool {
	for _, s := range hay {
		if strings.Contains(slug.Fold(s), needle) {
			return true
		}
	}
	return false
}
