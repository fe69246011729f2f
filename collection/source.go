// Package collection fetches and decodes timetable pages from the
// registration system. One Collector serves the whole process; every
// fetch goes through its rate limited retrying client.
package collection

import (
	"net/url"
	"strings"
)

// DefaultRoot is the public availability page of the registration
// system.
const DefaultRoot = "https://www.sis.hawaii.edu/uhdad/avail.classes"

// Source addresses one page of the availability site. The site keys
// everything off three query parameters: the root page alone lists
// institutions, adding i lists an institution's terms, adding t lists
// a term's subjects, and adding s yields a subject's section table.
type Source struct {
	Root      string
	InstID    string
	TermID    string
	SubjectID string
}

// URL renders the page address. Identifier case is normalized upward
// because the site is case sensitive about its own identifiers.
func (s Source) URL() string {
	root := s.Root
	if root == "" {
		root = DefaultRoot
	}
	values := url.Values{}
	if s.InstID != "" {
		values.Set("i", strings.ToUpper(s.InstID))
	}
	if s.TermID != "" {
		values.Set("t", s.TermID)
	}
	if s.SubjectID != "" {
		values.Set("s", strings.ToUpper(s.SubjectID))
	}
	if len(values) == 0 {
		return root
	}
	return root + "?" + values.Encode()
}
