package scraper

import (
	"context"
)

// Headers sent with every upstream request. chileautos serves a stripped page
// to clients that look like bots, so these mimic a desktop Chrome in Chile.
var spoofedHeaders = map[string]string{
	"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
	"Accept-Language": "es-CL,es;q=0.9,en;q=0.8",
}

// fetchPage performs exactly one GET for a results page and returns the raw
// HTML body. Non-2xx responses become an *UpstreamStatusError, network-level
// failures a *TransportError. No retries here: the site publishes no
// retry-after semantics, so retry policy belongs to the caller.
func (s *Scraper) fetchPage(ctx context.Context, pageURL string) (string, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeaders(spoofedHeaders).
		Get(pageURL)
	if err != nil {
		return "", &TransportError{Err: err}
	}
	if !resp.IsSuccess() {
		return "", &UpstreamStatusError{StatusCode: resp.StatusCode()}
	}
	return string(resp.Body()), nil
}
