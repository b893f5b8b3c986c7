package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(r http.Handler, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRateLimitMiddleware(t *testing.T) {
	limiter := NewRateLimiter(rate.Limit(1), 1)
	r := gin.New()
	r.Use(RateLimitMiddleware(limiter))
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	rec1 := performRequest(r, http.MethodGet, "/")
	if rec1.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec1.Code)
	}

	rec2 := performRequest(r, http.MethodGet, "/")
	if rec2.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 on rapid second request, got %d", rec2.Code)
	}
}

func TestSecurityHeaders(t *testing.T) {
	r := gin.New()
	r.Use(SecurityHeaders())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "headers") })

	rec := performRequest(r, http.MethodGet, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}

	required := []string{"X-Frame-Options", "X-Content-Type-Options", "Referrer-Policy", "Content-Security-Policy"}
	for _, header := range required {
		if rec.Header().Get(header) == "" {
			t.Fatalf("expected header %s to be set", header)
		}
	}
}

func TestMethodFilter(t *testing.T) {
	r := gin.New()
	r.Use(MethodFilter([]string{http.MethodGet}))
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	recOK := performRequest(r, http.MethodGet, "/")
	if recOK.Code != http.StatusOK {
		t.Fatalf("expected GET to pass, got %d", recOK.Code)
	}

	recBlocked := performRequest(r, http.MethodPost, "/")
	if recBlocked.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405 for blocked method, got %d", recBlocked.Code)
	}
	if allow := recBlocked.Header().Get("Allow"); allow != "GET" {
		t.Fatalf("expected Allow header GET, got %q", allow)
	}
}
