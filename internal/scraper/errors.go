package scraper

import "fmt"

// UpstreamStatusError means chileautos answered with a non-2xx status.
// The status code is kept so the HTTP layer can surface it as a gateway error
// instead of pretending the search returned zero results.
type UpstreamStatusError struct {
	StatusCode int
}

func (e *UpstreamStatusError) Error() string {
	return fmt.Sprintf("upstream returned status %d", e.StatusCode)
}

// TransportError wraps a network-level failure (DNS, timeout, connection reset)
// before any HTTP status was received.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "upstream request failed: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
