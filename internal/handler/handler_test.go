package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/p-gag/grapegeek-sub001/internal/dataset"
	"github.com/p-gag/grapegeek-sub001/internal/domain"
	"github.com/p-gag/grapegeek-sub001/internal/handler"
	"github.com/p-gag/grapegeek-sub001/internal/i18n"
	"github.com/p-gag/grapegeek-sub001/internal/repo"
	"github.com/p-gag/grapegeek-sub001/internal/service"
)

// mockCatalog is a test double for handler.CatalogServicer.
// Set only the method fields your test needs.
type mockCatalog struct {
	allVarieties   func(ctx context.Context, f domain.VarietyFilter) ([]domain.Variety, error)
	variety        func(ctx context.Context, slug string) (domain.VarietyDetail, error)
	letters        func(ctx context.Context) ([]string, error)
	allWinegrowers func(ctx context.Context, f domain.WinegrowerFilter) ([]domain.Winegrower, error)
	winegrower     func(ctx context.Context, slug string) (domain.WinegrowerDetail, error)
	stats          func(ctx context.Context) (domain.Stats, error)
	facets         func(ctx context.Context) (domain.Facets, error)
	treeData       func(ctx context.Context) (domain.TreeData, error)
	mapView        func(ctx context.Context, f domain.WinegrowerFilter) (service.MapView, error)
	charts         func(ctx context.Context, t service.Translate) ([]service.Chart, error)
	exportRows     func(ctx context.Context) ([]domain.ExportRow, error)
}

func (m *mockCatalog) AllVarieties(ctx context.Context, f domain.VarietyFilter) ([]domain.Variety, error) {
	return m.allVarieties(ctx, f)
}
func (m *mockCatalog) Variety(ctx context.Context, slug string) (domain.VarietyDetail, error) {
	return m.variety(ctx, slug)
}
func (m *mockCatalog) Letters(ctx context.Context) ([]string, error) {
	return m.letters(ctx)
}
func (m *mockCatalog) AllWinegrowers(ctx context.Context, f domain.WinegrowerFilter) ([]domain.Winegrower, error) {
	return m.allWinegrowers(ctx, f)
}
func (m *mockCatalog) Winegrower(ctx context.Context, slug string) (domain.WinegrowerDetail, error) {
	return m.winegrower(ctx, slug)
}
func (m *mockCatalog) Stats(ctx context.Context) (domain.Stats, error) {
	return m.stats(ctx)
}
func (m *mockCatalog) Facets(ctx context.Context) (domain.Facets, error) {
	return m.facets(ctx)
}
func (m *mockCatalog) TreeData(ctx context.Context) (domain.TreeData, error) {
	return m.treeData(ctx)
}
func (m *mockCatalog) MapView(ctx context.Context, f domain.WinegrowerFilter) (service.MapView, error) {
	return m.mapView(ctx, f)
}
func (m *mockCatalog) Charts(ctx context.Context, t service.Translate) ([]service.Chart, error) {
	return m.charts(ctx, t)
}
func (m *mockCatalog) ExportRows(ctx context.Context) ([]domain.ExportRow, error) {
	return m.exportRows(ctx)
}

// compile-time check: mockCatalog must satisfy handler.CatalogServicer.
var _ handler.CatalogServicer = (*mockCatalog)(nil)

// ---- helpers ---------------------------------------------------------------

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func newTranslator(t *testing.T) *i18n.Translator {
	t.Helper()
	tr, err := i18n.New("en")
	require.NoError(t, err)
	return tr
}

// newRouter wires a Server into the router exactly as main.go does.
func newRouter(t *testing.T, catalog handler.CatalogServicer) http.Handler {
	t.Helper()
	srv := handler.NewServer(catalog, newTranslator(t), discardLogger())
	return handler.NewRouter(srv, handler.RouterOptions{
		CORSOrigins:  []string{"http://localhost:5173"},
		MaxBodyBytes: 1 << 20,
	}, discardLogger())
}

// newSeedRouter serves the embedded dataset through the real service layer.
func newSeedRouter(t *testing.T) http.Handler {
	t.Helper()
	ds, err := dataset.LoadSeed()
	require.NoError(t, err)
	catalog := service.NewCatalog(
		repo.NewMemoryVarietyRepo(ds),
		repo.NewMemoryWinegrowerRepo(ds),
		service.MapConfig{EmbedURL: "https://maps.example.com/embed"},
	)
	return newRouter(t, catalog)
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

var errBoom = errors.New("boom")

// ---- routing ----------------------------------------------------------------

func TestRoot_RedirectsToNegotiatedLocale(t *testing.T) {
	h := newSeedRouter(t)

	tests := []struct {
		accept string
		want   string
	}{
		{"fr-CA,fr;q=0.9", "/fr/"},
		{"en-GB", "/en/"},
		{"", "/en/"},
	}
	for _, tc := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Language", tc.accept)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusFound, rec.Code, tc.accept)
		assert.Equal(t, tc.want, rec.Header().Get("Location"), tc.accept)
	}
}

func TestPages_OK(t *testing.T) {
	h := newSeedRouter(t)

	tests := []struct {
		path string
		want string
	}{
		{"/en/", "Grapes that survive the winter"},
		{"/fr/", "Des raisins qui survivent"},
		{"/en/varieties", "15 varieties"},
		{"/en/varieties?letter=L", "La Crescent"},
		{"/en/varieties?q=marechal", "Maréchal Foch"},
		{"/fr/varieties/marquette", "Cultivé par"},
		{"/en/varieties/frontenac-gris", "Bud mutation of Frontenac"},
		{"/en/winegrowers", "8 winegrowers"},
		{"/en/winegrowers?country=Norway", "Fjellvin Gård"},
		{"/en/winegrowers/annapolis-ridge-winery", "Ridge Traditional Method"},
		{"/en/family-tree?focus=marquette", `data-focus="marquette"`},
		{"/en/map?state_province=Qu%C3%A9bec", "Without coordinates"},
		{"/fr/stats", `<canvas id="chart-top-varieties"`},
	}
	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			rec := get(t, h, tc.path)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
			assert.Contains(t, rec.Body.String(), tc.want)
		})
	}
}

func TestVarietyIndex_LetterFilterExcludesOthers(t *testing.T) {
	rec := get(t, newSeedRouter(t), "/en/varieties?letter=L")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "4 varieties")
	assert.NotContains(t, rec.Body.String(), ">Marquette<")
}

func TestPages_NotFound(t *testing.T) {
	h := newSeedRouter(t)

	for _, path := range []string{
		"/en/varieties/does-not-exist",
		"/en/winegrowers/does-not-exist",
		"/xx/varieties",
		"/en/nowhere",
		"/nowhere/at/all",
	} {
		t.Run(path, func(t *testing.T) {
			rec := get(t, h, path)

			require.Equal(t, http.StatusNotFound, rec.Code)
			assert.Contains(t, rec.Body.String(), "Page not found")
		})
	}
}

func TestPages_NotFoundKeepsLocale(t *testing.T) {
	rec := get(t, newSeedRouter(t), "/fr/varieties/inconnu")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Page introuvable")
	assert.Contains(t, rec.Body.String(), `<html lang="fr">`)
}

func TestPages_MalformedQuery(t *testing.T) {
	h := newSeedRouter(t)

	for _, path := range []string{
		"/en/varieties?page=abc",
		"/en/varieties?limit=0",
		"/en/varieties?color=blue",
		"/en/varieties?letter=AB",
		"/en/winegrowers?wine_type=beer",
		"/en/map?page=x",
		"/en/varieties?page=9223372036854775807",
		"/en/winegrowers?page=9223372036854775807",
		"/en/winegrowers?page=100001",
	} {
		t.Run(path, func(t *testing.T) {
			rec := get(t, h, path)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "Bad request")
		})
	}
}

func TestPages_ServiceFailure(t *testing.T) {
	h := newRouter(t, &mockCatalog{
		stats: func(context.Context) (domain.Stats, error) { return domain.Stats{}, errBoom },
	})

	rec := get(t, h, "/en/")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestVarietyDetail_ServiceFailureRendersErrorPage(t *testing.T) {
	h := newRouter(t, &mockCatalog{
		stats: func(context.Context) (domain.Stats, error) { return domain.Stats{TotalVarieties: 1}, nil },
		variety: func(context.Context, string) (domain.VarietyDetail, error) {
			return domain.VarietyDetail{}, errBoom
		},
	})

	rec := get(t, h, "/en/varieties/marquette")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Something went wrong")
	assert.NotContains(t, rec.Body.String(), "boom")
}

// ---- JSON API -----------------------------------------------------------------

func TestGetTreeData_EdgesReferenceNodes(t *testing.T) {
	h := newSeedRouter(t)

	for _, path := range []string{"/api/tree-data", handler.TreeDataPath} {
		rec := get(t, h, path)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var td domain.TreeData
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&td))
		require.NotEmpty(t, td.Nodes)
		require.NotEmpty(t, td.Edges)

		ids := make(map[string]bool, len(td.Nodes))
		for _, n := range td.Nodes {
			ids[n.ID] = true
		}
		for _, e := range td.Edges {
			assert.True(t, ids[e.Source], "edge source %q", e.Source)
			assert.True(t, ids[e.Target], "edge target %q", e.Target)
		}
	}
}

func TestGetTreeData_FailureReturnsJSON500(t *testing.T) {
	h := newRouter(t, &mockCatalog{
		treeData: func(context.Context) (domain.TreeData, error) { return domain.TreeData{}, errBoom },
	})

	rec := get(t, h, "/api/tree-data")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var body handler.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "internal_error", body.Error.Code)
	assert.NotEmpty(t, body.Error.Message)
	assert.NotContains(t, body.Error.Message, "boom")
}

func TestGetTreeData_CORS(t *testing.T) {
	h := newSeedRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/tree-data", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestGetExport_CSV(t *testing.T) {
	rec := get(t, newSeedRouter(t), "/api/export?format=csv")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	assert.Equal(t, "winegrower_id,business_name,city,state_province,country,wine_name,wine_type,vintage,wine_varieties", lines[0])
	assert.Len(t, lines, 1+22)
	assert.Contains(t, lines[1], "Annapolis Ridge Winery,Wolfville,Nova Scotia,Canada,Ridge Traditional Method,sparkling,2019,L'Acadie Blanc")
}

func TestGetExport_JSONDefault(t *testing.T) {
	h := newRouter(t, &mockCatalog{
		exportRows: func(context.Context) ([]domain.ExportRow, error) {
			return []domain.ExportRow{{BusinessName: "Vines", WineName: "Louise", WineVarieties: []string{"Louise Swenson"}}}, nil
		},
	})

	rec := get(t, h, "/api/export")

	require.Equal(t, http.StatusOK, rec.Code)
	var rows []domain.ExportRow
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "Louise", rows[0].WineName)
}

func TestGetExport_UnknownFormat(t *testing.T) {
	rec := get(t, newSeedRouter(t), "/api/export?format=xml")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body handler.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "validation_error", body.Error.Code)
	assert.Equal(t, "format must be csv or json", body.Error.Message)
}
