package domain

// VarietyFilter narrows the variety index. Empty fields match everything.
// Letter matches the first letter of the name; Query matches a substring of
// the name, the species or the breeder.
type VarietyFilter struct {
	Species string
	Color   string
	Letter  string
	Query   string
}

// WinegrowerFilter narrows the winegrower index and the map.
// Variety matches growers whose GrapeVarieties list contains it.
type WinegrowerFilter struct {
	Country       string
	StateProvince string
	Variety       string
	WineType      string
	Query         string
}

// IsZero reports whether no filter field is set.
func (f WinegrowerFilter) IsZero() bool {
	return f == WinegrowerFilter{}
}
