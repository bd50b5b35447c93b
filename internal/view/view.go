// Package view renders the HTML pages of the site as templ components.
//
// Components are plain templ.ComponentFunc values. Every piece of user data
// goes through templ.EscapeString before it reaches the writer, and every
// string shown to the reader is looked up in the page's translator.
package view

import (
	"context"
	"io"
	"net/url"
	"strings"

	"github.com/a-h/templ"

	"github.com/p-gag/grapegeek-sub001/internal/domain"
)

// Language is one entry of the language switcher.
type Language struct {
	Code string
	Name string
}

// Page carries what every page needs besides its own data.
type Page struct {
	Locale    string
	Languages []Language
	// Path is the request path below the locale prefix, e.g. "/varieties".
	// The language switcher links to the same Path in every locale.
	Path  string
	Stats domain.Stats
	T     func(key string, args ...any) string
}

// Href prefixes path with the page locale.
func (p Page) Href(path string) string {
	return "/" + p.Locale + path
}

// label translates prefix+"."+key, falling back to a readable form of key
// when the catalogs have no entry for it.
func (p Page) label(prefix, key string) string {
	k := prefix + "." + key
	if s := p.T(k); s != k {
		return s
	}
	return strings.ReplaceAll(key, "_", " ")
}

// htmlWriter remembers the first write error so components can write a page
// without checking every call.
type htmlWriter struct {
	ctx context.Context
	w   io.Writer
	err error
}

func newWriter(ctx context.Context, w io.Writer) *htmlWriter {
	return &htmlWriter{ctx: ctx, w: w}
}

// raw writes trusted markup.
func (h *htmlWriter) raw(parts ...string) {
	for _, s := range parts {
		if h.err != nil {
			return
		}
		_, h.err = io.WriteString(h.w, s)
	}
}

// text writes escaped text.
func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

// attr writes ` name="value"` with value escaped.
func (h *htmlWriter) attr(name, value string) {
	h.raw(" ", name, `="`, templ.EscapeString(value), `"`)
}

// link writes an anchor with escaped href and text.
func (h *htmlWriter) link(href, text string) {
	h.raw("<a")
	h.attr("href", href)
	h.raw(">")
	h.text(text)
	h.raw("</a>")
}

// el writes text wrapped in a tag without attributes.
func (h *htmlWriter) el(tag, text string) {
	h.raw("<", tag, ">")
	h.text(text)
	h.raw("</", tag, ">")
}

func (h *htmlWriter) render(c templ.Component) {
	if h.err != nil {
		return
	}
	h.err = c.Render(h.ctx, h.w)
}

// component adapts a write function to templ.Component.
func component(fn func(h *htmlWriter)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(ctx, w)
		fn(h)
		return h.err
	})
}

// withQuery appends the non-empty values of q to path.
func withQuery(path string, q url.Values) string {
	clean := url.Values{}
	for k, vs := range q {
		for _, v := range vs {
			if v != "" {
				clean.Add(k, v)
			}
		}
	}
	if len(clean) == 0 {
		return path
	}
	return path + "?" + clean.Encode()
}

// slugPath escapes a slug for use as a path segment.
func slugPath(prefix, slug string) string {
	return prefix + "/" + url.PathEscape(slug)
}
