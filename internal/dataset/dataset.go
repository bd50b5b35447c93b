// Package dataset loads the curated variety and winegrower records.
// The records ship with the binary as seed.yaml; Load validates them and
// derives the slugs and IDs every other layer relies on.
package dataset

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/p-gag/grapegeek-sub001/internal/domain"
	"github.com/p-gag/grapegeek-sub001/internal/slug"
)

//go:embed seed.yaml
var seedYAML []byte

// namespace seeds the uuid v5 IDs so a record keeps its ID across builds.
var namespace = uuid.MustParse("6f1c2b1e-4a58-4d0e-9a57-3c1b9f0d2e11")

// Dataset is a validated, immutable snapshot of all records, sorted by name.
type Dataset struct {
	Varieties   []domain.Variety
	Winegrowers []domain.Winegrower
}

type file struct {
	Varieties   []varietyRecord    `yaml:"varieties" validate:"dive"`
	Winegrowers []winegrowerRecord `yaml:"winegrowers" validate:"dive"`
}

type varietyRecord struct {
	Name             string            `yaml:"name" validate:"required"`
	Species          []string          `yaml:"species" validate:"dive,required"`
	ParentCrosses    []string          `yaml:"parent_crosses" validate:"max=2,dive,required"`
	SimilarVarieties []string          `yaml:"similar_varieties" validate:"dive,required"`
	Color            string            `yaml:"color" validate:"omitempty,oneof=white red rose gray"`
	CountryOfOrigin  string            `yaml:"country_of_origin"`
	Breeder          string            `yaml:"breeder"`
	YearOfCrossing   int               `yaml:"year_of_crossing" validate:"gte=0"`
	Hardiness        string            `yaml:"hardiness"`
	Ripening         string            `yaml:"ripening" validate:"omitempty,oneof=early mid late"`
	Characteristics  map[string]string `yaml:"characteristics"`
	Description      string            `yaml:"description"`
}

type winegrowerRecord struct {
	BusinessName   string       `yaml:"business_name" validate:"required"`
	City           string       `yaml:"city"`
	StateProvince  string       `yaml:"state_province" validate:"required"`
	Country        string       `yaml:"country" validate:"required"`
	Website        string       `yaml:"website" validate:"omitempty,url"`
	Latitude       float64      `yaml:"latitude" validate:"gte=-90,lte=90"`
	Longitude      float64      `yaml:"longitude" validate:"gte=-180,lte=180"`
	GrapeVarieties []string     `yaml:"grape_varieties" validate:"dive,required"`
	WineTypes      []string     `yaml:"wine_types" validate:"dive,oneof=red white rose sparkling dessert fortified orange ice"`
	Wines          []wineRecord `yaml:"wines" validate:"dive"`
}

type wineRecord struct {
	Name      string   `yaml:"name" validate:"required"`
	Type      string   `yaml:"type" validate:"required,oneof=red white rose sparkling dessert fortified orange ice"`
	Vintage   int      `yaml:"vintage" validate:"gte=0"`
	Varieties []string `yaml:"varieties" validate:"dive,required"`
}

// LoadSeed returns the dataset embedded in the binary.
func LoadSeed() (Dataset, error) {
	return Load(bytes.NewReader(seedYAML))
}

// LoadFile reads a dataset from a YAML file on disk.
func LoadFile(path string) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("dataset.LoadFile: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load parses and validates a YAML dataset. Unknown fields, records missing a
// required field and two records sharing a slug are rejected with an error
// wrapping domain.ErrValidation.
func Load(r io.Reader) (Dataset, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f file
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return Dataset{}, fmt.Errorf("dataset.Load: decode: %w", err)
	}

	f.trim()
	if err := validator.New().Struct(f); err != nil {
		return Dataset{}, fmt.Errorf("dataset.Load: %w: %s", domain.ErrValidation, describe(err))
	}

	ds := Dataset{
		Varieties:   make([]domain.Variety, 0, len(f.Varieties)),
		Winegrowers: make([]domain.Winegrower, 0, len(f.Winegrowers)),
	}

	seen := make(map[string]string)
	for _, rec := range f.Varieties {
		v := rec.toDomain()
		if v.Slug == "" {
			return Dataset{}, fmt.Errorf("dataset.Load: %w: variety %q has no letters or digits for a slug",
				domain.ErrValidation, v.Name)
		}
		if other, dup := seen["v/"+v.Slug]; dup {
			return Dataset{}, fmt.Errorf("dataset.Load: %w: varieties %q and %q share slug %q",
				domain.ErrValidation, other, v.Name, v.Slug)
		}
		seen["v/"+v.Slug] = v.Name
		ds.Varieties = append(ds.Varieties, v)
	}
	for _, rec := range f.Winegrowers {
		w := rec.toDomain()
		if w.Slug == "" {
			return Dataset{}, fmt.Errorf("dataset.Load: %w: winegrower %q has no letters or digits for a slug",
				domain.ErrValidation, w.BusinessName)
		}
		if other, dup := seen["w/"+w.Slug]; dup {
			return Dataset{}, fmt.Errorf("dataset.Load: %w: winegrowers %q and %q share slug %q",
				domain.ErrValidation, other, w.BusinessName, w.Slug)
		}
		seen["w/"+w.Slug] = w.BusinessName
		ds.Winegrowers = append(ds.Winegrowers, w)
	}

	SortVarieties(ds.Varieties)
	SortWinegrowers(ds.Winegrowers)
	return ds, nil
}

// VarietyID returns the stable ID of the variety with the given name.
func VarietyID(name string) uuid.UUID {
	return uuid.NewSHA1(namespace, []byte("variety/"+name))
}

// WinegrowerID returns the stable ID of the winegrower with the given business name.
func WinegrowerID(name string) uuid.UUID {
	return uuid.NewSHA1(namespace, []byte("winegrower/"+name))
}

// SortVarieties orders varieties by folded name.
func SortVarieties(vs []domain.Variety) {
	sort.SliceStable(vs, func(i, j int) bool {
		return slug.Fold(vs[i].Name) < slug.Fold(vs[j].Name)
	})
}

// SortWinegrowers orders winegrowers by folded business name.
func SortWinegrowers(ws []domain.Winegrower) {
	sort.SliceStable(ws, func(i, j int) bool {
		return slug.Fold(ws[i].BusinessName) < slug.Fold(ws[j].BusinessName)
	})
}

// trim strips surrounding blanks from the fields validation requires, so a
// blank value fails "required".
func (f *file) trim() {
	for i := range f.Varieties {
		v := &f.Varieties[i]
		v.Name = strings.TrimSpace(v.Name)
		trimAll(v.Species)
		trimAll(v.ParentCrosses)
		trimAll(v.SimilarVarieties)
	}
	for i := range f.Winegrowers {
		w := &f.Winegrowers[i]
		w.BusinessName = strings.TrimSpace(w.BusinessName)
		w.City = strings.TrimSpace(w.City)
		w.StateProvince = strings.TrimSpace(w.StateProvince)
		w.Country = strings.TrimSpace(w.Country)
		trimAll(w.GrapeVarieties)
		for j := range w.Wines {
			w.Wines[j].Name = strings.TrimSpace(w.Wines[j].Name)
			trimAll(w.Wines[j].Varieties)
		}
	}
}

func trimAll(s []string) {
	for i := range s {
		s[i] = strings.TrimSpace(s[i])
	}
}

func (r varietyRecord) toDomain() domain.Variety {
	name := r.Name
	return domain.Variety{
		ID:               VarietyID(name),
		Name:             name,
		Slug:             slug.Make(name),
		Species:          nonNil(r.Species),
		ParentCrosses:    nonNil(r.ParentCrosses),
		SimilarVarieties: nonNil(r.SimilarVarieties),
		Color:            r.Color,
		CountryOfOrigin:  r.CountryOfOrigin,
		Breeder:          r.Breeder,
		YearOfCrossing:   r.YearOfCrossing,
		Hardiness:        r.Hardiness,
		Ripening:         r.Ripening,
		Characteristics:  r.Characteristics,
		Description:      strings.TrimSpace(r.Description),
	}
}

func (r winegrowerRecord) toDomain() domain.Winegrower {
	name := r.BusinessName
	wines := make([]domain.Wine, 0, len(r.Wines))
	for _, wr := range r.Wines {
		wines = append(wines, domain.Wine{
			Name:      wr.Name,
			Type:      wr.Type,
			Vintage:   wr.Vintage,
			Varieties: nonNil(wr.Varieties),
		})
	}
	return domain.Winegrower{
		ID:             WinegrowerID(name),
		BusinessName:   name,
		Slug:           slug.Make(name),
		City:           r.City,
		StateProvince:  r.StateProvince,
		Country:        r.Country,
		Website:        r.Website,
		Latitude:       r.Latitude,
		Longitude:      r.Longitude,
		GrapeVarieties: nonNil(r.GrapeVarieties),
		WineTypes:      nonNil(r.WineTypes),
		Wines:          wines,
	}
}

// nonNil keeps JSON output as [] rather than null for empty lists.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// describe flattens validator errors into "Field: rule" pairs.
func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}
