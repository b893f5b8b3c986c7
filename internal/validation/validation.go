package validation

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	maxKeywordLength = 120
	// MaxPages caps how many result pages one aggregation request may fetch.
	MaxPages = 10
)

// ValidateKeyword checks the search keyword and returns it trimmed.
func ValidateKeyword(keyword string) (string, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return "", fmt.Errorf("search keyword is required")
	}
	if len(keyword) > maxKeywordLength {
		return "", fmt.Errorf("search keyword must be at most %d characters", maxKeywordLength)
	}
	return keyword, nil
}

// ParseOffset parses the offset query parameter, falling back to 0 on
// anything missing, non-numeric or negative.
func ParseOffset(raw string) int {
	offset, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || offset < 0 {
		return 0
	}
	return offset
}

// ParsePages parses the pages query parameter and clamps it to 1..MaxPages.
// Missing or invalid input falls back to fallback.
func ParsePages(raw string, fallback int) int {
	pages, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		pages = fallback
	}
	if pages < 1 {
		pages = 1
	}
	if pages > MaxPages {
		pages = MaxPages
	}
	return pages
}
