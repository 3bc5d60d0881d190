package response

import (
	"net/url"
	"strconv"

	"backoffice/internal/util"
)

// pagerWindow is how many page buttons the pager shows.
const pagerWindow = 5

// Pager is the "Showing x to y of z" line and the page buttons of a list screen.
type Pager struct {
	From, To, Total int
	Prev, Next      string
	Links           []PageLink
}

// PageLink is one page button.
type PageLink struct {
	Number  int
	URL     string
	Current bool
}

// NewPager builds the pager of page, keeping the other query parameters.
func NewPager[T any](path string, params url.Values, page util.Page[T]) Pager {
	link := func(n int) string {
		q := url.Values{}
		for k, v := range params {
			if len(v) > 0 && v[0] != "" {
				q[k] = v
			}
		}
		q.Set("page", strconv.Itoa(n))

		return path + "?" + q.Encode()
	}

	pager := Pager{From: page.From, To: page.To, Total: page.TotalItems}
	if page.HasPrev() {
		pager.Prev = link(page.PrevPage())
	}
	if page.HasNext() {
		pager.Next = link(page.NextPage())
	}
	for _, n := range page.Window(pagerWindow) {
		pager.Links = append(pager.Links, PageLink{Number: n, URL: link(n), Current: n == page.Page})
	}

	return pager
}
