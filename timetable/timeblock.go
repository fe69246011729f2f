package timetable

import (
	"fmt"
	"strings"
)

// TimeBlock is the decoded time and date range of one timetable row.
type TimeBlock struct {
	Start     Time
	End       Time
	StartDate Date
	EndDate   Date
}

// earliest plausible class start; a 'p' start at or before this is
// assumed to actually be in the afternoon
const earliestStart = 6 * 60

// ParseTimeBlock decodes the paired time and date columns of a row.
// timeString is "HHMM-HHMM" with a single trailing 'a' or 'p' that
// applies to both ends, or "TBA". dateString is "MM/DD" or
// "MM/DD-MM/DD"; a single date means the class meets once.
//
// The trailing indicator is ambiguous: "0100-0200p" starts at 1pm but
// "0900-0200p" starts at 9am. For 'p' the start is moved to the
// afternoon only when it is at or before 06:00 and the end only when
// it is at or before noon; if the block then spans more than 5 whole
// hours the start gets a further 12 hours, rolling it back around the
// clock. 'a' times are taken as is.
func ParseTimeBlock(timeString, dateString string) (TimeBlock, error) {
	var tb TimeBlock

	startDate, endDate, ok := strings.Cut(dateString, "-")
	if !ok {
		endDate = startDate
	}
	var err error
	if tb.StartDate, err = ParseDate(startDate); err != nil {
		return tb, err
	}
	if tb.EndDate, err = ParseDate(endDate); err != nil {
		return tb, err
	}

	if strings.EqualFold(timeString, tbaString) {
		return tb, nil
	}
	if len(timeString) < 2 {
		return tb, fmt.Errorf("time range %q is too short", timeString)
	}

	indicator := timeString[len(timeString)-1]
	start, end, ok := strings.Cut(timeString[:len(timeString)-1], "-")
	if !ok {
		return tb, fmt.Errorf("time range %q is missing a '-'", timeString)
	}
	if tb.Start, err = ParseTime(start); err != nil {
		return tb, err
	}
	if tb.End, err = ParseTime(end); err != nil {
		return tb, err
	}

	if indicator == 'p' {
		if tb.Start.Valid && tb.Start.Minutes <= earliestStart {
			tb.Start.Minutes += 12 * 60
		}
		if tb.End.Valid && tb.End.Minutes <= 12*60 {
			tb.End.Minutes += 12 * 60
		}
		// a class over 5 hours long probably started in the morning
		if tb.Start.Hours(tb.End) > 5 {
			tb.Start.Minutes += 12 * 60
		}
	}

	return tb, nil
}
