package timetable

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNoSection is returned by Cursor.Section when the cursor is not
// positioned on a section-start row, which means the caller skipped a
// successful FindSection.
var ErrNoSection = errors.New("no section at cursor")

// Row is one table row of a timetable page. Implementations must
// return "" for any cell index that does not exist so that shape
// probing never panics. CellTitle reads the tooltip attribute of the
// abbreviation inside a cell; the source renders instructor and room
// names that way instead of as plain text.
type Row interface {
	Cells() int
	Cell(i int) string
	CellTitle(i int) string
}

// Cursor walks the ordered rows of one subject page and materializes
// sections. One section usually spans several physical rows: the
// section-start row carries the course and enrollment columns, and the
// rows after it carry additional meetings and free-text annotations.
//
// The cursor is an index over an immutable row slice, so a partially
// consumed table stays inspectable.
type Cursor struct {
	rows []Row
	pos  int
}

func NewCursor(rows []Row) *Cursor {
	return &Cursor{rows: rows}
}

// columnOffset computes the shift applied to the meeting columns of a
// row. Wait-list row variants carry 2 extra leading columns (15 total
// instead of the usual 13), and some row shapes drop a blank column,
// which shows up as day codes already decodable one column early. Row
// shapes vary within a single section block, so this is recomputed for
// every row.
func columnOffset(r Row) int {
	offset := 0
	if r.Cells() == 15 {
		offset = 2
	}
	if len(ParseDays(r.Cell(8+offset))) > 0 {
		offset--
	}
	return offset
}

// hasSection probes the fixed section-start columns: crn, cid, section
// number, title, credits, instructor tooltip, enrolled, seats.
func hasSection(r Row) bool {
	if r.Cell(2) == "" || r.Cell(4) == "" || r.Cell(5) == "" {
		return false
	}
	if r.Cell(1) == "" || r.Cell(3) == "" {
		return false
	}
	if r.CellTitle(6) == "" {
		return false
	}
	return r.Cell(7) != "" && r.Cell(8) != ""
}

// hasMeeting probes the day/time/room/date columns at their
// offset-adjusted positions.
func hasMeeting(r Row) bool {
	offset := columnOffset(r)
	if r.Cell(9+offset) == "" || r.Cell(10+offset) == "" {
		return false
	}
	if r.CellTitle(11+offset) == "" {
		return false
	}
	return r.Cell(12+offset) != ""
}

// rowMeetings decodes the meeting columns of a row.
func rowMeetings(r Row) ([]Meeting, error) {
	offset := columnOffset(r)
	return NewMeetings(
		r.Cell(9+offset),
		r.Cell(10+offset),
		r.CellTitle(11+offset),
		r.Cell(12+offset),
	)
}

// dataCells counts the non-empty cells of a row.
func dataCells(r Row) int {
	n := 0
	for i := 0; i < r.Cells(); i++ {
		if r.Cell(i) != "" {
			n++
		}
	}
	return n
}

// FindSection advances to the next section-start row, skipping
// decorative and annotation rows. Returns false when the rows are
// exhausted.
func (c *Cursor) FindSection() bool {
	for c.pos < len(c.rows) {
		if hasSection(c.rows[c.pos]) {
			return true
		}
		c.pos++
	}
	return false
}

// findMeeting advances to the next row carrying a meeting. Returns
// false when the rows are exhausted.
func (c *Cursor) findMeeting() bool {
	for c.pos < len(c.rows) {
		if hasMeeting(c.rows[c.pos]) {
			return true
		}
		c.pos++
	}
	return false
}

// Section materializes the section at the cursor and consumes all of
// its body rows, leaving the cursor ready for the next FindSection.
// Meeting rows that fail to parse bump the section's FailedMeetings
// count instead of aborting; only calling Section without a prior
// successful FindSection is an error. A section-start row with
// non-numeric count columns is consumed and reported so the caller can
// skip it.
func (c *Cursor) Section() (*Section, error) {
	if c.pos >= len(c.rows) || !hasSection(c.rows[c.pos]) {
		return nil, ErrNoSection
	}
	row := c.rows[c.pos]

	crn, err := atoiCell(row, 1)
	if err == nil {
		var enrolled, seats int
		if enrolled, err = atoiCell(row, 7); err == nil {
			seats, err = atoiCell(row, 8)
			if err == nil {
				section := &Section{
					CRN: crn,
					Course: Course{
						CID:     strings.ToUpper(row.Cell(2)),
						Title:   row.Cell(4),
						Credits: row.Cell(5),
					},
					Number:         strings.TrimSpace(row.Cell(3)),
					Instructor:     strings.TrimSpace(row.CellTitle(6)),
					Enrolled:       enrolled,
					SeatsAvailable: seats,
				}
				c.consumeBody(section)
				return section, nil
			}
		}
	}
	// consume the unusable start row so callers can keep scanning
	c.pos++
	return nil, fmt.Errorf("%w: %v", ErrNoSection, err)
}

// consumeBody walks the rows belonging to the current section:
// meetings, annotation cells, and trailing detail rows, stopping at
// the next section-start row or the end of the table.
func (c *Cursor) consumeBody(section *Section) {
	for {
		row := c.rows[c.pos]

		if hasMeeting(row) {
			if meetings, err := rowMeetings(row); err != nil {
				section.FailedMeetings++
			} else {
				section.addMeetings(meetings)
			}
		}

		// requirement / designation codes live in the first column
		if row.Cell(0) != "" {
			section.addDetail(row.Cell(0))
		}

		c.pos++

		// a trailing annotation row has first-column text but no other
		// data, so it would never be visited as a meeting row
		if c.pos < len(c.rows) {
			next := c.rows[c.pos]
			if !hasSection(next) && next.Cell(0) != "" && dataCells(next) <= 1 {
				section.addDetail(next.Cell(0))
			}
		}

		// keep scanning forward: the very next row lacking a meeting
		// does not end the section
		if !c.findMeeting() {
			return
		}
		if hasSection(c.rows[c.pos]) {
			return
		}
	}
}

func atoiCell(r Row, i int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(r.Cell(i)))
	if err != nil {
		return 0, fmt.Errorf("column %d %q is not a number", i, r.Cell(i))
	}
	return n, nil
}
