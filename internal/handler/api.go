package handler

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/p-gag/grapegeek-sub001/internal/domain"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"winegrower_id", "business_name", "city", "state_province", "country",
	"wine_name", "wine_type", "vintage", "wine_varieties",
}

// GetTreeData handles GET /api/tree-data (and its .json alias used by the
// static build). Any failure is logged and answered with a JSON 500.
func (s *Server) GetTreeData(w http.ResponseWriter, r *http.Request) {
	td, err := s.catalog.TreeData(r.Context())
	if err != nil {
		s.log.ErrorContext(r.Context(), "tree data", "error", err)
		s.writeJSON(w, r, http.StatusInternalServerError, internalBody())
		return
	}
	s.writeJSON(w, r, http.StatusOK, td)
}

// GetExport handles GET /api/export.
// It returns one row per wine with the grower fields repeated.
// Use ?format=csv to receive CSV; default is JSON.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	format, err := bindString(r.URL.Query(), "format")
	if err == nil && format != "" && format != "csv" && format != "json" {
		err = fmt.Errorf("handler.GetExport: %w: format must be csv or json", domain.ErrValidation)
	}
	if err != nil {
		s.failJSON(w, r, err)
		return
	}

	rows, err := s.catalog.ExportRows(r.Context())
	if err != nil {
		s.failJSON(w, r, err)
		return
	}

	if format == "csv" {
		body := buildCSV(rows)
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="grapegeek-wines.csv"`)
		w.Header().Set("Content-Length", strconv.Itoa(body.Len()))
		w.WriteHeader(http.StatusOK)
		_, _ = body.WriteTo(w)
		return
	}
	s.writeJSON(w, r, http.StatusOK, rows)
}

// buildCSV encodes rows as CSV.
// Varieties within a row are pipe-separated ("|") to keep each wine on a single CSV line.
func buildCSV(rows []domain.ExportRow) *bytes.Buffer {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	//nolint:errcheck // bytes.Buffer.Write never returns an error.
	w.Write(csvHeaders)
	for _, r := range rows {
		//nolint:errcheck
		w.Write(rowToCSVRecord(r))
	}
	w.Flush()
	return &buf
}

// rowToCSVRecord encodes a domain.ExportRow as a flat string slice.
// A zero vintage is encoded as an empty string.
func rowToCSVRecord(r domain.ExportRow) []string {
	vintage := ""
	if r.Vintage > 0 {
		vintage = strconv.Itoa(r.Vintage)
	}
	return []string{
		r.WinegrowerID,
		r.BusinessName,
		r.City,
		r.StateProvince,
		r.Country,
		r.WineName,
		r.WineType,
		vintage,
		strings.Join(r.WineVarieties, "|"),
	}
}
