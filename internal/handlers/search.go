package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"chileautosearch/internal/scraper"
	"chileautosearch/internal/util"
	"chileautosearch/internal/validation"
)

// DefaultPages is how many result pages an aggregation request fetches when
// the caller doesn't say.
const DefaultPages = 3

// SearchHandler serves the listing search endpoints
type SearchHandler struct {
	scraper *scraper.Scraper
}

// NewSearchHandler creates a search handler backed by the given scraper
func NewSearchHandler(s *scraper.Scraper) *SearchHandler {
	return &SearchHandler{scraper: s}
}

// Search godoc
// @Summary Search chileautos listings
// @Description Fetches one chileautos.cl results page for a keyword and returns the normalized listings. Fields missing from the source markup come back as null, never silently dropped.
// @Tags search
// @Produce json
// @Param q query string true "Search keyword"
// @Param offset query int false "Result offset (multiples of 12; invalid or negative values fall back to 0)"
// @Success 200 {object} models.SearchResponse
// @Failure 400 {object} map[string]string "error: search keyword is required"
// @Failure 429 {object} map[string]string "error: too many requests"
// @Failure 502 {object} map[string]interface{} "error + upstream status"
// @Failure 500 {object} map[string]string "error"
// @Router /api/search [get]
func (h *SearchHandler) Search(c *gin.Context) {
	keyword, err := validation.ValidateKeyword(c.Query("q"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	offset := validation.ParseOffset(c.Query("offset"))

	resp, err := h.scraper.Search(c.Request.Context(), keyword, offset)
	if err != nil {
		h.respondScrapeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// SearchAll godoc
// @Summary Search chileautos listings across several pages
// @Description Sequentially fetches up to `pages` result pages (clamped to 1..10) and concatenates the listings, stopping early once a short page signals the end of the result set. Fails as a whole on the first page error.
// @Tags search
// @Produce json
// @Param q query string true "Search keyword"
// @Param pages query int false "Maximum pages to fetch (default 3, max 10)"
// @Success 200 {object} models.MultiPageResponse
// @Failure 400 {object} map[string]string "error: search keyword is required"
// @Failure 429 {object} map[string]string "error: too many requests"
// @Failure 502 {object} map[string]interface{} "error + upstream status"
// @Failure 500 {object} map[string]string "error"
// @Router /api/search/all [get]
func (h *SearchHandler) SearchAll(c *gin.Context) {
	keyword, err := validation.ValidateKeyword(c.Query("q"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	pages := validation.ParsePages(c.Query("pages"), DefaultPages)

	resp, err := h.scraper.SearchAll(c.Request.Context(), keyword, pages)
	if err != nil {
		h.respondScrapeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// respondScrapeError maps scraper failures onto the HTTP surface: upstream
// non-2xx becomes a 502 carrying the upstream status, everything else a 500
// with a safe message.
func (h *SearchHandler) respondScrapeError(c *gin.Context, err error) {
	var upstream *scraper.UpstreamStatusError
	if errors.As(err, &upstream) {
		c.JSON(http.StatusBadGateway, gin.H{
			"error":  "chileautos returned an error page",
			"status": upstream.StatusCode,
		})
		return
	}

	util.SafeErrorResponse(c, http.StatusInternalServerError, "failed to fetch listings", err)
}
