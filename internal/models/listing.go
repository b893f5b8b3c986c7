package models

// ListingRecord represents one normalized vehicle listing from a chileautos
// search-results page.
//
// Optional fields are pointers so a caller can tell "attribute missing from the
// markup" (nil, JSON null) apart from "attribute present but empty" (pointer to
// ""). Price stays a raw string to preserve whatever formatting the site ships,
// the same way mileage like "41,565 Miles" is kept verbatim elsewhere.
type ListingRecord struct {
	ID             *string  `json:"id"`
	Title          *string  `json:"title"`
	Make           *string  `json:"make"`
	Model          *string  `json:"model"`
	Price          *string  `json:"price"`
	PriceText      *string  `json:"priceText"`
	State          *string  `json:"state"`
	Bodystyle      *string  `json:"bodystyle"`
	Vehcategory    *string  `json:"vehcategory"`
	Details        []string `json:"details"`
	SellerType     *string  `json:"sellerType"`
	SellerLocation *string  `json:"sellerLocation"`
	URL            *string  `json:"url"`
}

// SearchResponse is the result of extracting a single results page.
// Listings are in document order; Total counts this page only.
type SearchResponse struct {
	Keyword  string           `json:"keyword"`
	Offset   int              `json:"offset"`
	Total    int              `json:"total"`
	Listings []*ListingRecord `json:"listings"`
}

// MultiPageResponse is the concatenation of several sequentially fetched pages,
// page order then document order.
type MultiPageResponse struct {
	Keyword      string           `json:"keyword"`
	PagesFetched int              `json:"pagesFetched"`
	Total        int              `json:"total"`
	Listings     []*ListingRecord `json:"listings"`
}
