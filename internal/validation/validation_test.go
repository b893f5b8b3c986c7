package validation

import (
	"strings"
	"testing"
)

func TestValidateKeyword(t *testing.T) {
	keyword, err := ValidateKeyword("  ford focus  ")
	if err != nil {
		t.Fatalf("expected valid keyword, got %v", err)
	}
	if keyword != "ford focus" {
		t.Fatalf("expected trimmed keyword, got %q", keyword)
	}

	for _, bad := range []string{"", "   ", "\t\n"} {
		if _, err := ValidateKeyword(bad); err == nil {
			t.Fatalf("expected error for blank keyword %q", bad)
		}
	}

	if _, err := ValidateKeyword(strings.Repeat("a", 200)); err == nil {
		t.Fatalf("expected error for oversized keyword")
	}
}

func TestParseOffset(t *testing.T) {
	cases := []struct {
		raw      string
		expected int
	}{
		{"", 0},
		{"abc", 0},
		{"-5", 0},
		{"0", 0},
		{"12", 12},
		{" 24 ", 24},
	}

	for _, tc := range cases {
		if got := ParseOffset(tc.raw); got != tc.expected {
			t.Fatalf("ParseOffset(%q) = %d, expected %d", tc.raw, got, tc.expected)
		}
	}
}

func TestParsePages(t *testing.T) {
	cases := []struct {
		raw      string
		expected int
	}{
		{"", 3},
		{"junk", 3},
		{"0", 1},
		{"-2", 1},
		{"5", 5},
		{"99", MaxPages},
	}

	for _, tc := range cases {
		if got := ParsePages(tc.raw, 3); got != tc.expected {
			t.Fatalf("ParsePages(%q) = %d, expected %d", tc.raw, got, tc.expected)
		}
	}
}
