package view

import (
	"net/url"
	"strconv"

	"github.com/p-gag/grapegeek-sub001/internal/domain"
)

// selectField renders a labelled <select> with an "any" option. display
// translates option values; nil shows them as they are.
func selectField(h *htmlWriter, p Page, name, label, current string, options []string, display func(string) string) {
	h.raw("<label>")
	h.text(label)
	h.raw(" <select")
	h.attr("name", name)
	h.raw(`><option value="">`)
	h.text(p.T("filter.any"))
	h.raw("</option>")
	for _, o := range options {
		h.raw("<option")
		h.attr("value", o)
		if o == current {
			h.raw(" selected")
		}
		h.raw(">")
		if display != nil {
			h.text(display(o))
		} else {
			h.text(o)
		}
		h.raw("</option>")
	}
	h.raw("</select></label>")
}

func textField(h *htmlWriter, name, label, current string) {
	h.raw("<label>")
	h.text(label)
	h.raw(` <input type="search"`)
	h.attr("name", name)
	h.attr("value", current)
	h.raw("></label>")
}

// pagination renders previous/next links that keep the filter query.
func pagination(h *htmlWriter, p Page, base string, q url.Values, params domain.PaginationParams, pages int, hasPrev, hasNext bool) {
	if pages <= 1 {
		return
	}
	if params.Limit != 20 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}
	h.raw(`<nav class="pagination">`)
	if hasPrev {
		q.Set("page", strconv.Itoa(params.Page-1))
		h.raw(`<a rel="prev"`)
		h.attr("href", withQuery(base, q))
		h.raw(">")
		h.text(p.T("pagination.prev"))
		h.raw("</a>")
	}
	h.raw("<span>")
	h.text(p.T("pagination.page", "page", strconv.Itoa(params.Page), "pages", strconv.Itoa(pages)))
	h.raw("</span>")
	if hasNext {
		q.Set("page", strconv.Itoa(params.Page+1))
		h.raw(`<a rel="next"`)
		h.attr("href", withQuery(base, q))
		h.raw(">")
		h.text(p.T("pagination.next"))
		h.raw("</a>")
	}
	h.raw("</nav>")
}
