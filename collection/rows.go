package collection

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/kekoav/kala/timetable"
)

// tableRow adapts one goquery table row to the cursor's Row view.
// Cell text is whitespace collapsed because the source pads cells
// with layout newlines and non breaking spaces.
type tableRow struct {
	cells []*goquery.Selection
}

func (r tableRow) Cells() int { return len(r.cells) }

func (r tableRow) Cell(i int) string {
	if i < 0 || i >= len(r.cells) {
		return ""
	}
	return cleanText(r.cells[i].Text())
}

// CellTitle reads the tooltip of the abbreviation inside a cell; the
// site renders instructor and room names that way.
func (r tableRow) CellTitle(i int) string {
	if i < 0 || i >= len(r.cells) {
		return ""
	}
	title, _ := r.cells[i].Find("abbr").Attr("title")
	return cleanText(title)
}

// newRows collects every table row of the document in order.
func newRows(doc *goquery.Document) []timetable.Row {
	var rows []timetable.Row
	doc.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		var row tableRow
		tr.Find("td, th").Each(func(_ int, cell *goquery.Selection) {
			row.cells = append(row.cells, cell)
		})
		rows = append(rows, row)
	})
	return rows
}

func cleanText(s string) string {
	return strings.Join(strings.Fields(strings.ReplaceAll(s, " ", " ")), " ")
}
