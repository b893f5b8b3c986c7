// Package client is the thin wrapper the rest of the dealership application
// uses to call the listing search API through its function gateway.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"chileautosearch/internal/models"
)

// Client calls the listing search endpoint and normalizes gateway failures into
// a single error message.
type Client struct {
	http *resty.Client
}

// New creates a client against the API base URL, e.g. "http://localhost:8080".
func New(baseURL string) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(60 * time.Second),
	}
}

// gatewayError decodes both error body shapes the gateway produces: a flat
// {"error": "..."} and a nested {"error": {"message": "..."}}.
type gatewayError struct {
	Error  json.RawMessage `json:"error"`
	Status int             `json:"status"`
}

func (g *gatewayError) message() string {
	var flat string
	if err := json.Unmarshal(g.Error, &flat); err == nil && flat != "" {
		return flat
	}
	var nested struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(g.Error, &nested); err == nil && nested.Message != "" {
		return nested.Message
	}
	return "search request failed"
}

// Search performs a keyword search through the API. Gateway error bodies are
// mapped to one error message; a success payload without a listings array is
// rejected as an invalid response rather than returned half-empty.
func (c *Client) Search(ctx context.Context, keyword string, offset int) (*models.SearchResponse, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("q", keyword).
		SetQueryParam("offset", fmt.Sprintf("%d", offset)).
		Get("/api/search")
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}

	if !resp.IsSuccess() {
		var gw gatewayError
		if err := json.Unmarshal(resp.Body(), &gw); err == nil && len(gw.Error) > 0 {
			return nil, fmt.Errorf("%s", gw.message())
		}
		return nil, fmt.Errorf("search request failed with status %d", resp.StatusCode())
	}

	var payload models.SearchResponse
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, fmt.Errorf("invalid response from search service: %w", err)
	}
	if payload.Listings == nil {
		return nil, fmt.Errorf("invalid response from search service: missing listings")
	}

	return &payload, nil
}
