package scraper

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func parseQuery(t *testing.T, rawURL string) url.Values {
	t.Helper()
	parsed, err := url.Parse(rawURL)
	require.NoError(t, err)
	return parsed.Query()
}

func TestBuildSearchURLKeywordCollapsing(t *testing.T) {
	raw := buildSearchURL(SearchBase, "  ford   focus  ", 0)
	query := parseQuery(t, raw)

	require.Equal(t, "(And.Service.ChileAutos._.CarAll.keyword(ford+focus).)", query.Get("q"))
	require.Equal(t, "~Price", query.Get("sort"))
}

func TestBuildSearchURLOffsetOmittedForFirstPage(t *testing.T) {
	raw := buildSearchURL(SearchBase, "toyota", 0)
	query := parseQuery(t, raw)

	require.False(t, query.Has("offset"), "offset must be omitted for the first page, got %q", raw)
}

func TestBuildSearchURLOffsetIncluded(t *testing.T) {
	raw := buildSearchURL(SearchBase, "toyota", 12)
	query := parseQuery(t, raw)

	require.Equal(t, "12", query.Get("offset"))
}

func TestBuildSearchURLDeterministic(t *testing.T) {
	first := buildSearchURL(SearchBase, "kia rio", 24)
	second := buildSearchURL(SearchBase, "kia rio", 24)

	require.Equal(t, first, second)
}
