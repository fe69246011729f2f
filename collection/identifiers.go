package collection

import (
	"regexp"

	"github.com/PuerkitoBio/goquery"
)

// Identifier is one entry of a navigation listing: an institution, a
// term, or a subject, keyed by the query parameter its link carries.
type Identifier struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

var (
	instParam    = regexp.MustCompile(`i=(\w+)`)
	termParam    = regexp.MustCompile(`t=([0-9]+)`)
	subjectParam = regexp.MustCompile(`s=(\w+)`)
)

// extractIdentifiers pulls every list-item link whose href carries the
// wanted parameter. Links without it are navigation chrome and are
// skipped.
func extractIdentifiers(doc *goquery.Document, param *regexp.Regexp) []Identifier {
	var ids []Identifier
	seen := map[string]struct{}{}
	doc.Find("li a").Each(func(_ int, a *goquery.Selection) {
		href, ok := a.Attr("href")
		if !ok {
			return
		}
		match := param.FindStringSubmatch(href)
		if match == nil {
			return
		}
		if _, dup := seen[match[1]]; dup {
			return
		}
		seen[match[1]] = struct{}{}
		ids = append(ids, Identifier{ID: match[1], Name: cleanText(a.Text())})
	})
	return ids
}
