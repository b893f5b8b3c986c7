package scraper

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const (
	// SearchBase is the chileautos search-results page.
	SearchBase = "https://www.chileautos.cl/vehiculos/"
	// SiteHost prefixes relative listing hrefs when building absolute URLs.
	SiteHost = "https://www.chileautos.cl"
	// PageSize is how many listings chileautos returns per results page.
	PageSize = 12

	// sortOrder keeps result ordering stable across pages.
	sortOrder = "~Price"
)

// buildSearchURL builds the search URL for a keyword and offset against base.
// The keyword is trimmed, inner whitespace runs collapse to a single '+', and
// the result is embedded in the carsales-style boolean expression the site
// expects in its q parameter. offset is omitted entirely for the first page,
// matching the URLs the site itself produces.
//
// Pure and deterministic. Callers validate keyword non-emptiness beforehand.
func buildSearchURL(base, keyword string, offset int) string {
	kw := strings.Join(strings.Fields(keyword), "+")

	params := url.Values{}
	params.Set("q", fmt.Sprintf("(And.Service.ChileAutos._.CarAll.keyword(%s).)", kw))
	params.Set("sort", sortOrder)
	if offset > 0 {
		params.Set("offset", strconv.Itoa(offset))
	}

	return base + "?" + params.Encode()
}
