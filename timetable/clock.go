package timetable

import (
	"fmt"
	"strconv"
	"strings"
)

const tbaString = "TBA"

const minutesPerDay = 24 * 60

// Time is a clock time in minutes since midnight. Valid is false for
// TBA times, which are never comparable to anything. Minutes may run
// past one day after the afternoon heuristic rolls a start time
// forward; String wraps the value back into a 24 hour clock.
type Time struct {
	Minutes int
	Valid   bool
}

// ParseTime parses an "HHmm" token. "TBA" (any case) yields the
// invalid zero Time without an error.
func ParseTime(s string) (Time, error) {
	if strings.EqualFold(s, tbaString) {
		return Time{}, nil
	}
	if len(s) != 4 {
		return Time{}, fmt.Errorf("time %q is not in HHmm form", s)
	}
	hours, err := strconv.Atoi(s[:2])
	if err != nil {
		return Time{}, fmt.Errorf("time %q has a bad hour: %w", s, err)
	}
	minutes, err := strconv.Atoi(s[2:])
	if err != nil {
		return Time{}, fmt.Errorf("time %q has a bad minute: %w", s, err)
	}
	return Time{Minutes: hours*60 + minutes, Valid: true}, nil
}

// BeforeOrEqual is false whenever either time is TBA, so a TBA operand
// can never produce a false conflict.
func (t Time) BeforeOrEqual(o Time) bool {
	return t.Valid && o.Valid && t.Minutes <= o.Minutes
}

// AfterOrEqual is false whenever either time is TBA.
func (t Time) AfterOrEqual(o Time) bool {
	return t.Valid && o.Valid && t.Minutes >= o.Minutes
}

// Hours is the whole-hour distance between two times, truncated.
// Returns -1 when either time is TBA.
func (t Time) Hours(o Time) int {
	if !t.Valid || !o.Valid {
		return -1
	}
	diff := t.Minutes - o.Minutes
	if diff < 0 {
		diff = -diff
	}
	return diff / 60
}

// MarshalJSON renders the clock form, "TBA" for invalid times.
func (t Time) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

func (t Time) String() string {
	if !t.Valid {
		return tbaString
	}
	m := t.Minutes % minutesPerDay
	if m < 0 {
		m += minutesPerDay
	}
	hour, minute := m/60, m%60
	meridiem := "AM"
	if hour >= 12 {
		meridiem = "PM"
	}
	hour %= 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%02d:%02d %s", hour, minute, meridiem)
}

// Date is a month/day pair without a year, matching the source format.
// Valid is false for TBA dates.
type Date struct {
	Month int
	Day   int
	Valid bool
}

// ParseDate parses an "MM/DD" token. "TBA" (any case) yields the
// invalid zero Date without an error.
func ParseDate(s string) (Date, error) {
	if strings.EqualFold(s, tbaString) {
		return Date{}, nil
	}
	month, day, ok := strings.Cut(s, "/")
	if !ok {
		return Date{}, fmt.Errorf("date %q is not in MM/DD form", s)
	}
	m, err := strconv.Atoi(month)
	if err != nil {
		return Date{}, fmt.Errorf("date %q has a bad month: %w", s, err)
	}
	d, err := strconv.Atoi(day)
	if err != nil {
		return Date{}, fmt.Errorf("date %q has a bad day: %w", s, err)
	}
	return Date{Month: m, Day: d, Valid: true}, nil
}

func (d Date) ordinal() int { return d.Month*100 + d.Day }

// BeforeOrEqual is false whenever either date is TBA.
func (d Date) BeforeOrEqual(o Date) bool {
	return d.Valid && o.Valid && d.ordinal() <= o.ordinal()
}

// AfterOrEqual is false whenever either date is TBA.
func (d Date) AfterOrEqual(o Date) bool {
	return d.Valid && o.Valid && d.ordinal() >= o.ordinal()
}

// MarshalJSON renders the "MM/DD" form, "TBA" for invalid dates.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d Date) String() string {
	if !d.Valid {
		return tbaString
	}
	return fmt.Sprintf("%02d/%02d", d.Month, d.Day)
}
