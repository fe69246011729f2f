package timetable

import (
	"fmt"
	"regexp"
	"strings"
)

// FilterConfig collects raw filter criteria, typically straight from
// request query parameters. Zero values accept everything.
type FilterConfig struct {
	// course reference numbers, matched exactly
	CRNs []string
	// subjects ("ICS", "FIRE"), matched case-insensitively
	Subjects []string
	// course numbers ("101", "3*", "4**"); '*' is a digit wildcard
	Numbers []string
	// full course ids ("ICS 101", "ZOOL 4**"); overrides Subjects and
	// Numbers when set
	Courses []string
	// day codes; a leading '!' inverts ("!M" = not on Monday)
	Days []string
	// "HHmm" bounds on meeting times
	StartAfter string
	EndBefore  string
	// "true"/"false" online and synchronous preferences; empty accepts
	// both
	Online      string
	Synchronous string
	// instructor and course-title patterns; a leading '!' inverts
	Instructors []string
	Keywords    []string
}

// preference is a tri-state include/exclude/either toggle.
type preference int

const (
	either  preference = -1
	exclude preference = 0
	only    preference = 1
)

func parsePreference(s string) preference {
	switch strings.ToLower(s) {
	case "":
		return either
	case "true", "1":
		return only
	default:
		return exclude
	}
}

// Filter decides which sections and subjects survive extraction. A nil
// *Filter accepts everything.
type Filter struct {
	crns        map[string]struct{}
	subjects    map[string]struct{}
	numbers     *regexp.Regexp
	fullCourses *regexp.Regexp
	days        *patternFilter
	startAfter  Time
	endBefore   Time
	online      preference
	synchronous preference
	instructors *patternFilter
	keywords    *patternFilter
}

// NewFilter compiles a filter from raw criteria. Malformed times or
// patterns are reported rather than silently accepted.
func NewFilter(cfg FilterConfig) (*Filter, error) {
	f := &Filter{
		online:      parsePreference(cfg.Online),
		synchronous: parsePreference(cfg.Synchronous),
	}

	if len(cfg.CRNs) > 0 {
		f.crns = make(map[string]struct{}, len(cfg.CRNs))
		for _, crn := range cfg.CRNs {
			f.crns[strings.TrimSpace(crn)] = struct{}{}
		}
	}

	if len(cfg.Courses) > 0 {
		// specific courses override the subject and number criteria;
		// their subject halves still gate the subject pages fetched
		re, err := wildcardPattern(stripSpaces(cfg.Courses))
		if err != nil {
			return nil, err
		}
		f.fullCourses = re
		f.subjects = make(map[string]struct{}, len(cfg.Courses))
		leadingLetters := regexp.MustCompile(`^[A-Za-z]+`)
		for _, course := range cfg.Courses {
			if subject := leadingLetters.FindString(course); subject != "" {
				f.subjects[strings.ToUpper(subject)] = struct{}{}
			}
		}
	} else {
		if len(cfg.Subjects) > 0 {
			f.subjects = make(map[string]struct{}, len(cfg.Subjects))
			for _, subject := range cfg.Subjects {
				f.subjects[strings.ToUpper(subject)] = struct{}{}
			}
		}
		if len(cfg.Numbers) > 0 {
			re, err := wildcardPattern(cfg.Numbers)
			if err != nil {
				return nil, err
			}
			f.numbers = re
		}
	}

	var err error
	if f.days, err = newPatternFilter(cfg.Days, true); err != nil {
		return nil, err
	}
	if f.instructors, err = newPatternFilter(cfg.Instructors, false); err != nil {
		return nil, err
	}
	if f.keywords, err = newPatternFilter(cfg.Keywords, false); err != nil {
		return nil, err
	}

	if cfg.StartAfter != "" {
		if f.startAfter, err = ParseTime(cfg.StartAfter); err != nil {
			return nil, err
		}
	}
	if cfg.EndBefore != "" {
		if f.endBefore, err = ParseTime(cfg.EndBefore); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// ValidSubject reports whether a subject page is worth fetching.
func (f *Filter) ValidSubject(subject string) bool {
	if f == nil || f.subjects == nil {
		return true
	}
	_, ok := f.subjects[strings.ToUpper(subject)]
	return ok
}

// ValidSection applies every configured criterion to a parsed section.
func (f *Filter) ValidSection(s *Section) bool {
	if f == nil {
		return true
	}
	if !f.validCRN(s.CRN) || !f.validCID(s.Course.CID) {
		return false
	}
	if !f.instructors.match(s.Instructor) || !f.keywords.match(s.Course.Title) {
		return false
	}

	numOnline, numSync := 0, 0
	for _, m := range s.Meetings {
		if !f.days.match(m.Day.Code()) {
			return false
		}
		// reject a section starting at or before the bound; TBA times
		// pass because the comparison is indeterminate
		if f.startAfter.Valid && m.Start.BeforeOrEqual(f.startAfter) {
			return false
		}
		if f.endBefore.Valid && m.End.AfterOrEqual(f.endBefore) {
			return false
		}

		room := strings.ToLower(m.Room)
		if strings.Contains(room, "online") {
			numOnline++
		}
		if !strings.Contains(room, "asynchronous") {
			numSync++ // in person or online synchronous
		}
	}

	total := len(s.Meetings)
	return validMeetingType(f.online, numOnline, total) &&
		validMeetingType(f.synchronous, numSync, total)
}

func (f *Filter) validCRN(crn int) bool {
	if f.crns == nil {
		return true
	}
	_, ok := f.crns[fmt.Sprint(crn)]
	return ok
}

func (f *Filter) validCID(cid string) bool {
	if f.subjects == nil && f.numbers == nil && f.fullCourses == nil {
		return true
	}
	if f.fullCourses != nil {
		return f.fullCourses.MatchString(strings.ReplaceAll(cid, " ", ""))
	}
	subject, number, _ := strings.Cut(cid, " ")
	if f.subjects != nil {
		if _, ok := f.subjects[strings.ToUpper(subject)]; !ok {
			return false
		}
	}
	if f.numbers != nil && !f.numbers.MatchString(number) {
		return false
	}
	return true
}

// validMeetingType checks a tri-state preference against how many of a
// section's meetings match it: exclude means none may match, only
// means all must.
func validMeetingType(pref preference, count, total int) bool {
	switch pref {
	case exclude:
		return count == 0
	case only:
		return count == total
	default:
		return true
	}
}

// patternFilter splits patterns into accept and reject groups; a
// leading '!' rejects. Nil groups are unconstrained.
type patternFilter struct {
	accept *regexp.Regexp
	reject *regexp.Regexp
}

// newPatternFilter compiles the groups. anchored adds "{1}$" to each
// pattern, which the day filter uses so "T" cannot match "TBA".
func newPatternFilter(patterns []string, anchored bool) (*patternFilter, error) {
	if len(patterns) == 0 {
		return nil, nil
	}
	var accept, reject []string
	for _, p := range patterns {
		if p == "" {
			continue
		}
		target := &accept
		if p[0] == '!' {
			p = p[1:]
			target = &reject
		}
		if anchored {
			p += "{1}$"
		}
		*target = append(*target, p)
	}
	pf := &patternFilter{}
	var err error
	if len(accept) > 0 {
		if pf.accept, err = compileAlternation(accept); err != nil {
			return nil, err
		}
	}
	if len(reject) > 0 {
		if pf.reject, err = compileAlternation(reject); err != nil {
			return nil, err
		}
	}
	return pf, nil
}

// match is true when the string clears both groups. A nil filter
// accepts everything.
func (pf *patternFilter) match(s string) bool {
	if pf == nil {
		return true
	}
	if pf.accept != nil && !pf.accept.MatchString(s) {
		return false
	}
	if pf.reject != nil && pf.reject.MatchString(s) {
		return false
	}
	return true
}

func compileAlternation(patterns []string) (*regexp.Regexp, error) {
	re, err := regexp.Compile("(?i)" + strings.Join(patterns, "|"))
	if err != nil {
		return nil, fmt.Errorf("bad filter pattern: %w", err)
	}
	return re, nil
}

// wildcardPattern turns course number globs into a regexp: "1**"
// matches any 100 level number. Globs are anchored so "1" cannot
// match "101".
func wildcardPattern(globs []string) (*regexp.Regexp, error) {
	anchored := make([]string, len(globs))
	for i, glob := range globs {
		glob = strings.ReplaceAll(glob, "**", "[0-9]{2}")
		glob = strings.ReplaceAll(glob, "*", "[0-9]")
		anchored[i] = "^(?:" + glob + ")$"
	}
	return compileAlternation(anchored)
}

func stripSpaces(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ReplaceAll(s, " ", "")
	}
	return out
}
