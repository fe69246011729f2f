package timetable

import "strings"

// Day is a day of the week as the registration system encodes it.
// TBA is the "to be announced" sentinel: it sorts after Saturday and
// never counts as equal to, before, or after a concrete day when
// checking meeting conflicts.
type Day int

const (
	Sunday Day = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	TBA
)

// Dow is the ordinal day-of-week number used for sorting meetings.
func (d Day) Dow() int { return int(d) }

// Code returns the single character source code, or "TBA".
func (d Day) Code() string {
	switch d {
	case Sunday:
		return "U"
	case Monday:
		return "M"
	case Tuesday:
		return "T"
	case Wednesday:
		return "W"
	case Thursday:
		return "R"
	case Friday:
		return "F"
	case Saturday:
		return "S"
	default:
		return "TBA"
	}
}

// MarshalJSON renders the day name rather than its ordinal.
func (d Day) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d Day) String() string {
	switch d {
	case Sunday:
		return "Sunday"
	case Monday:
		return "Monday"
	case Tuesday:
		return "Tuesday"
	case Wednesday:
		return "Wednesday"
	case Thursday:
		return "Thursday"
	case Friday:
		return "Friday"
	case Saturday:
		return "Saturday"
	default:
		return "TBA"
	}
}

func parseDay(code string) (Day, bool) {
	switch strings.ToLower(code) {
	case "u":
		return Sunday, true
	case "m":
		return Monday, true
	case "t":
		return Tuesday, true
	case "w":
		return Wednesday, true
	case "r":
		return Thursday, true
	case "f":
		return Friday, true
	case "s":
		return Saturday, true
	case "tba":
		return TBA, true
	default:
		return 0, false
	}
}

// ParseDays decodes a day code string. A string matching a single
// recognized token ("M", "tba", ...) yields that one day; anything else
// is treated as a concatenation of single letter codes ("MWF").
// Unrecognized characters are dropped, so an all-garbage input yields
// an empty slice rather than an error.
func ParseDays(code string) []Day {
	if day, ok := parseDay(code); ok {
		return []Day{day}
	}
	var days []Day
	for _, r := range code {
		if day, ok := parseDay(string(r)); ok {
			days = append(days, day)
		}
	}
	return days
}
