package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"chileautosearch/internal/models"
)

// Selectors for the chileautos results markup. When the site reshuffles its
// cards, this block and the listingFields table are the only places to touch.
const (
	selCard           = "div.listing-item"
	selTitleLink      = "h3 a"
	selPrice          = "div.price a"
	selDetails        = "ul.key-details li"
	selSellerType     = "div.seller-info .seller-type"
	selSellerLocation = "div.seller-info .seller-location"
)

type extractKind int

const (
	readAttr extractKind = iota
	readFirstText
	readHrefResolved
	collectListText
)

// fieldRule maps one ListingRecord field to the strategy that fills it.
// assign receives nil when the source markup has nothing for the field;
// collectListText rules use assignAll instead.
type fieldRule struct {
	kind      extractKind
	selector  string
	attr      string
	assign    func(rec *models.ListingRecord, v *string)
	assignAll func(rec *models.ListingRecord, vs []string)
}

var listingFields = []fieldRule{
	{kind: readAttr, attr: "data-networkid", assign: func(r *models.ListingRecord, v *string) { r.ID = v }},
	{kind: readAttr, attr: "data-make", assign: func(r *models.ListingRecord, v *string) { r.Make = v }},
	{kind: readAttr, attr: "data-model", assign: func(r *models.ListingRecord, v *string) { r.Model = v }},
	{kind: readAttr, attr: "data-price", assign: func(r *models.ListingRecord, v *string) { r.Price = v }},
	{kind: readAttr, attr: "data-state", assign: func(r *models.ListingRecord, v *string) { r.State = v }},
	{kind: readAttr, attr: "data-bodystyle", assign: func(r *models.ListingRecord, v *string) { r.Bodystyle = v }},
	{kind: readAttr, attr: "data-vehcategory", assign: func(r *models.ListingRecord, v *string) { r.Vehcategory = v }},
	{kind: readFirstText, selector: selTitleLink, assign: func(r *models.ListingRecord, v *string) { r.Title = v }},
	{kind: readHrefResolved, selector: selTitleLink, assign: func(r *models.ListingRecord, v *string) { r.URL = v }},
	{kind: readFirstText, selector: selPrice, assign: func(r *models.ListingRecord, v *string) { r.PriceText = v }},
	{kind: collectListText, selector: selDetails, assignAll: func(r *models.ListingRecord, vs []string) { r.Details = vs }},
	{kind: readFirstText, selector: selSellerType, assign: func(r *models.ListingRecord, v *string) { r.SellerType = v }},
	{kind: readFirstText, selector: selSellerLocation, assign: func(r *models.ListingRecord, v *string) { r.SellerLocation = v }},
}

// extractListings walks every listing card in document order and applies the
// field table to each. A card missing some fields still yields a record with
// those fields nil; one damaged card never drops the card or aborts the page.
func extractListings(doc *goquery.Document, siteHost string) []*models.ListingRecord {
	records := []*models.ListingRecord{}

	doc.Find(selCard).Each(func(_ int, card *goquery.Selection) {
		rec := &models.ListingRecord{Details: []string{}}
		for _, rule := range listingFields {
			switch rule.kind {
			case readAttr:
				rule.assign(rec, attrValue(card, rule.attr))
			case readFirstText:
				rule.assign(rec, firstMatchText(card, rule.selector))
			case readHrefResolved:
				rule.assign(rec, resolvedHref(card, rule.selector, siteHost))
			case collectListText:
				rule.assignAll(rec, collectText(card, rule.selector))
			}
		}
		records = append(records, rec)
	})

	return records
}

// attrValue keeps the present-but-empty distinction: a missing attribute is
// nil, an empty one is a pointer to "".
func attrValue(s *goquery.Selection, name string) *string {
	v, ok := s.Attr(name)
	if !ok {
		return nil
	}
	return &v
}

func firstMatchText(s *goquery.Selection, selector string) *string {
	node := s.Find(selector).First()
	if node.Length() == 0 {
		return nil
	}
	text := strings.TrimSpace(node.Text())
	if text == "" {
		return nil
	}
	return &text
}

// resolvedHref reads the first matching element's href and rewrites relative
// links to absolute against siteHost, inserting the '/' separator when the
// href lacks one. Absolute links pass through untouched.
func resolvedHref(s *goquery.Selection, selector, siteHost string) *string {
	href, ok := s.Find(selector).First().Attr("href")
	if !ok {
		return nil
	}
	href = strings.TrimSpace(href)
	if href == "" {
		return nil
	}
	if strings.HasPrefix(href, "http") {
		return &href
	}
	if !strings.HasPrefix(href, "/") {
		href = "/" + href
	}
	abs := siteHost + href
	return &abs
}

func collectText(s *goquery.Selection, selector string) []string {
	items := []string{}
	s.Find(selector).Each(func(_ int, li *goquery.Selection) {
		if text := strings.TrimSpace(li.Text()); text != "" {
			items = append(items, text)
		}
	})
	return items
}
