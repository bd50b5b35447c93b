// Package export renders the whole site into a directory of static files by
// driving the HTTP router in-process. The result can be served by any static
// file host.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/p-gag/grapegeek-sub001/internal/domain"
)

// DefaultParallelism bounds the number of routes rendered at once.
const DefaultParallelism = 8

// notFoundProbe is a path no route serves; its response becomes 404.html.
const notFoundProbe = "/__grapegeek_not_found__"

// Lister is the part of the catalog the build needs to enumerate detail pages.
type Lister interface {
	AllVarieties(ctx context.Context, f domain.VarietyFilter) ([]domain.Variety, error)
	AllWinegrowers(ctx context.Context, f domain.WinegrowerFilter) ([]domain.Winegrower, error)
}

// Options configures a build.
type Options struct {
	OutDir      string
	Locales     []string // first entry is the locale "/" redirects to
	Parallelism int
	Now         func() time.Time
}

// Manifest describes a finished build. It is written to manifest.json.
type Manifest struct {
	BuildID   uuid.UUID `json:"build_id"`
	BuiltAt   time.Time `json:"built_at"`
	Locales   []string  `json:"locales"`
	PageCount int       `json:"page_count"`
	Files     []string  `json:"files"`
}

// Builder renders every route of a router to files.
type Builder struct {
	h       http.Handler
	catalog Lister
	log     *slog.Logger
	opts    Options
}

// NewBuilder constructs a Builder. h is the site router.
func NewBuilder(h http.Handler, catalog Lister, log *slog.Logger, opts Options) *Builder {
	if opts.Parallelism <= 0 {
		opts.Parallelism = DefaultParallelism
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Builder{h: h, catalog: catalog, log: log, opts: opts}
}

// job is one route to render and the file it is written to.
type job struct {
	target string // request URI
	file   string // slash-separated path below OutDir
	status int    // expected status
	page   bool   // counts as an HTML page
}

// Build renders every page for every locale, the 404 page, the tree data
// and the wine list downloads, then writes manifest.json. It fails on the
// first route answering with an unexpected status.
func (b *Builder) Build(ctx context.Context) (Manifest, error) {
	if len(b.opts.Locales) == 0 {
		return Manifest{}, fmt.Errorf("export.Builder.Build: %w: no locale", domain.ErrValidation)
	}
	jobs, err := b.plan(ctx)
	if err != nil {
		return Manifest{}, fmt.Errorf("export.Builder.Build: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.opts.Parallelism)
	for _, j := range jobs {
		g.Go(func() error {
			return b.run(gctx, j)
		})
	}
	if err := g.Wait(); err != nil {
		return Manifest{}, fmt.Errorf("export.Builder.Build: %w", err)
	}

	if err := b.write("index.html", redirectPage("/"+b.opts.Locales[0]+"/")); err != nil {
		return Manifest{}, fmt.Errorf("export.Builder.Build: %w", err)
	}

	m := Manifest{
		BuildID: uuid.New(),
		BuiltAt: b.opts.Now().UTC(),
		Locales: slices.Clone(b.opts.Locales),
		Files:   []string{"index.html"},
	}
	for _, j := range jobs {
		m.Files = append(m.Files, j.file)
		if j.page {
			m.PageCount++
		}
	}
	slices.Sort(m.Files)

	raw, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return Manifest{}, fmt.Errorf("export.Builder.Build: %w", err)
	}
	if err := b.write("manifest.json", raw); err != nil {
		return Manifest{}, fmt.Errorf("export.Builder.Build: %w", err)
	}

	b.log.InfoContext(ctx, "export finished",
		"out", b.opts.OutDir, "pages", m.PageCount, "files", len(m.Files)+1, "build_id", m.BuildID)
	return m, nil
}

// plan lists every route of the site.
func (b *Builder) plan(ctx context.Context) ([]job, error) {
	varieties, err := b.catalog.AllVarieties(ctx, domain.VarietyFilter{})
	if err != nil {
		return nil, err
	}
	growers, err := b.catalog.AllWinegrowers(ctx, domain.WinegrowerFilter{})
	if err != nil {
		return nil, err
	}

	var jobs []job
	add := func(target string) {
		jobs = append(jobs, job{target: target, file: htmlFile(target), status: http.StatusOK, page: true})
	}
	for _, l := range b.opts.Locales {
		for _, p := range []string{"/", "/varieties", "/winegrowers", "/family-tree", "/map", "/stats"} {
			add("/" + l + p)
		}
		for _, v := range varieties {
			add("/" + l + "/varieties/" + v.Slug)
		}
		for _, w := range growers {
			add("/" + l + "/winegrowers/" + w.Slug)
		}
	}

	return append(jobs,
		job{target: "/" + b.opts.Locales[0] + notFoundProbe, file: "404.html", status: http.StatusNotFound, page: true},
		job{target: "/api/tree-data.json", file: "api/tree-data.json", status: http.StatusOK},
		job{target: "/api/export", file: "api/export.json", status: http.StatusOK},
		job{target: "/api/export?format=csv", file: "api/export.csv", status: http.StatusOK},
		job{target: "/openapi.yaml", file: "openapi.yaml", status: http.StatusOK},
	), nil
}

// run renders one route and writes it out.
func (b *Builder) run(ctx context.Context, j job) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, j.target, nil)
	if err != nil {
		return err
	}
	rec := httptest.NewRecorder()
	b.h.ServeHTTP(rec, req)
	if rec.Code != j.status {
		return fmt.Errorf("GET %s: status %d, want %d", j.target, rec.Code, j.status)
	}
	return b.write(j.file, rec.Body.Bytes())
}

func (b *Builder) write(file string, data []byte) error {
	full := filepath.Join(b.opts.OutDir, filepath.FromSlash(file))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return err
	}
	return os.WriteFile(full, data, 0o644)
}

// htmlFile maps a page path to the index.html of its directory, so
// "/en/varieties" is served from "en/varieties/index.html".
func htmlFile(target string) string {
	return path.Join(strings.TrimPrefix(target, "/"), "index.html")
}

// redirectPage sends visitors of the site root to the default locale.
func redirectPage(to string) []byte {
	return []byte(`<!DOCTYPE html><html><head><meta charset="utf-8">` +
		`<meta http-equiv="refresh" content="0; url=` + to + `">` +
		`<link rel="canonical" href="` + to + `"></head><body>` +
		`<a href="` + to + `">` + to + `</a></body></html>` + "\n")
}
