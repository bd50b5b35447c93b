package handler

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/oapi-codegen/runtime"

	"github.com/p-gag/grapegeek-sub001/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// listQuery holds the query parameters shared by the index pages.
type listQuery struct {
	Page  *int `validate:"omitempty,gte=1,lte=100000"`
	Limit *int `validate:"omitempty,gte=1"` // capped at 100 by NewPaginationParams
}

type varietyQuery struct {
	listQuery
	Species string `validate:"max=100"`
	Color   string `validate:"omitempty,oneof=white red rose gray"`
	Letter  string `validate:"omitempty,len=1"`
	Q       string `validate:"max=100"`
}

type winegrowerQuery struct {
	listQuery
	Country       string `validate:"max=100"`
	StateProvince string `validate:"max=100"`
	Variety       string `validate:"max=100"`
	WineType      string `validate:"omitempty,oneof=red white rose sparkling dessert fortified orange ice"`
	Q             string `validate:"max=100"`
}

// binding pairs a query parameter name with its destination.
type binding struct {
	name string
	dest any
}

// bindQuery binds form-style query parameters with the OpenAPI runtime
// binder. A malformed value wraps domain.ErrValidation.
func bindQuery(q url.Values, params ...binding) error {
	for _, p := range params {
		if err := runtime.BindQueryParameter("form", true, false, p.name, q, p.dest); err != nil {
			return fmt.Errorf("handler.bindQuery: %w: %s: %s", domain.ErrValidation, p.name, err.Error())
		}
	}
	return nil
}

// check validates a bound query struct.
func check(v any) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("handler.check: %w: %s", domain.ErrValidation, describe(err))
	}
	return nil
}

func bindVarietyQuery(q url.Values) (domain.VarietyFilter, domain.PaginationParams, error) {
	var v varietyQuery
	var species, color, letter, query *string
	err := bindQuery(q,
		binding{"page", &v.Page},
		binding{"limit", &v.Limit},
		binding{"species", &species},
		binding{"color", &color},
		binding{"letter", &letter},
		binding{"q", &query},
	)
	if err != nil {
		return domain.VarietyFilter{}, domain.PaginationParams{}, err
	}
	v.Species, v.Color, v.Letter, v.Q = deref(species), deref(color), deref(letter), deref(query)
	if err := check(&v); err != nil {
		return domain.VarietyFilter{}, domain.PaginationParams{}, err
	}
	f := domain.VarietyFilter{Species: v.Species, Color: v.Color, Letter: v.Letter, Query: v.Q}
	return f, domain.NewPaginationParams(v.Page, v.Limit), nil
}

func bindWinegrowerQuery(q url.Values) (domain.WinegrowerFilter, domain.PaginationParams, error) {
	var v winegrowerQuery
	var country, state, variety, wineType, query *string
	err := bindQuery(q,
		binding{"page", &v.Page},
		binding{"limit", &v.Limit},
		binding{"country", &country},
		binding{"state_province", &state},
		binding{"variety", &variety},
		binding{"wine_type", &wineType},
		binding{"q", &query},
	)
	if err != nil {
		return domain.WinegrowerFilter{}, domain.PaginationParams{}, err
	}
	v.Country, v.StateProvince, v.Variety, v.WineType, v.Q =
		deref(country), deref(state), deref(variety), deref(wineType), deref(query)
	if err := check(&v); err != nil {
		return domain.WinegrowerFilter{}, domain.PaginationParams{}, err
	}
	f := domain.WinegrowerFilter{
		Country:       v.Country,
		StateProvince: v.StateProvince,
		Variety:       v.Variety,
		WineType:      v.WineType,
		Query:         v.Q,
	}
	return f, domain.NewPaginationParams(v.Page, v.Limit), nil
}

// bindString binds one optional string parameter.
func bindString(q url.Values, name string) (string, error) {
	var s *string
	if err := bindQuery(q, binding{name, &s}); err != nil {
		return "", err
	}
	return deref(s), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

// describe flattens validator errors into "Field: rule" pairs.
func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s failed %q", fe.Field(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}
