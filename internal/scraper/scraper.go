package scraper

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"chileautosearch/internal/logging"
	"chileautosearch/internal/models"
)

// Scraper extracts normalized vehicle listings from chileautos.cl search
// results. It keeps no per-search state, so one instance is safe for
// concurrent use.
type Scraper struct {
	client     *resty.Client
	searchBase string
	siteHost   string
}

// New creates a scraper pointed at the live site.
func New() *Scraper {
	return &Scraper{
		client:     resty.New().SetTimeout(20 * time.Second),
		searchBase: SearchBase,
		siteHost:   SiteHost,
	}
}

// NewWithBase creates a scraper against an alternate host. Tests use this to
// point at a local fixture server.
func NewWithBase(searchBase, siteHost string) *Scraper {
	return &Scraper{
		client:     resty.New().SetTimeout(20 * time.Second),
		searchBase: searchBase,
		siteHost:   siteHost,
	}
}

// Search fetches one results page and extracts its listings in document order.
// A page that parses to zero cards is an empty success, not an error; the
// forgiving HTML parser never rejects malformed input.
func (s *Scraper) Search(ctx context.Context, keyword string, offset int) (*models.SearchResponse, error) {
	pageURL := buildSearchURL(s.searchBase, keyword, offset)

	body, err := s.fetchPage(ctx, pageURL)
	if err != nil {
		logging.Logger.Warn("results page fetch failed",
			zap.String("keyword", keyword),
			zap.Int("offset", offset),
			zap.Error(err))
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		// Only reachable on reader failure; malformed HTML parses fine.
		return nil, fmt.Errorf("parse results page: %w", err)
	}

	listings := extractListings(doc, s.siteHost)

	logging.Logger.Info("extracted results page",
		zap.String("keyword", keyword),
		zap.Int("offset", offset),
		zap.Int("total", len(listings)))

	return &models.SearchResponse{
		Keyword:  keyword,
		Offset:   offset,
		Total:    len(listings),
		Listings: listings,
	}, nil
}

// SearchAll walks result pages with offsets 0, PageSize, 2*PageSize, ... until
// maxPages pages were fetched or a short page signals the end of the result
// set. Pages are fetched strictly one at a time; bursting the site with
// parallel requests is a fast way to get the IP blocked.
//
// The first page-level failure aborts the whole aggregation and listings from
// pages fetched before it are discarded. Callers that want partial results can
// drive Search page by page themselves.
func (s *Scraper) SearchAll(ctx context.Context, keyword string, maxPages int) (*models.MultiPageResponse, error) {
	if maxPages < 1 {
		maxPages = 1
	}

	all := []*models.ListingRecord{}
	pagesFetched := 0

	for page := 0; page < maxPages; page++ {
		resp, err := s.Search(ctx, keyword, page*PageSize)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", page, err)
		}
		pagesFetched++
		all = append(all, resp.Listings...)

		if resp.Total < PageSize {
			break
		}
	}

	return &models.MultiPageResponse{
		Keyword:      keyword,
		PagesFetched: pagesFetched,
		Total:        len(all),
		Listings:     all,
	}, nil
}
