package collection

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kekoav/kala/timetable"
)

const institutionsPage = `<html><body><ul>
<li><a href="avail.classes?i=MAN">UH Manoa</a></li>
<li><a href="avail.classes?i=HIL">UH Hilo</a></li>
</ul></body></html>`

const termsPage = `<html><body><ul>
<li><a href="avail.classes?i=MAN&t=202510">Fall 2025</a></li>
<li><a href="avail.classes?i=MAN&t=202530">Spring 2026</a></li>
</ul></body></html>`

const subjectsPage = `<html><body><ul>
<li><a href="avail.classes?i=MAN&t=202510&s=ICS">Information &amp; Computer Sciences</a></li>
<li><a href="avail.classes?i=MAN&t=202510&s=MATH">Mathematics</a></li>
<li><a href="avail.classes?i=MAN&t=202510&s=HAW">Hawaiian</a></li>
</ul></body></html>`

const icsSectionsPage = `<html><body><table>
<tr><th>Gen Ed</th><th>CRN</th><th>Course</th><th>Sec</th><th>Title</th><th>Cr</th>
<th>Instructor</th><th>Enrl</th><th>Avail</th><th>Days</th><th>Time</th><th>Room</th><th>Dates</th></tr>
<tr>
<td></td><td>12345</td><td>ICS 101</td><td>001</td><td>Intro to Computing</td><td>3</td>
<td><abbr title="J Doe">J Doe</abbr></td><td>24</td><td>6</td>
<td>MW</td><td>0900-1015a</td><td><abbr title="KELLER 301">KELLER</abbr></td><td>08/24-12/18</td>
</tr>
<tr>
<td></td><td></td><td></td><td></td><td></td><td></td>
<td></td><td></td><td></td>
<td>F</td><td>0900-0950a</td><td><abbr title="POST 127">POST</abbr></td><td>08/24-12/18</td>
</tr>
<tr>
<td>Approval required</td><td></td><td></td><td></td><td></td><td></td>
<td></td><td></td><td></td><td></td><td></td><td></td><td></td>
</tr>
</table></body></html>`

const mathSectionsPage = `<html><body><table>
<tr>
<td></td><td>20001</td><td>MATH 241</td><td>001</td><td>Calculus I</td><td>4</td>
<td><abbr title="R Ito">R Ito</abbr></td><td>30</td><td>2</td>
<td>TR</td><td>1030-1145a</td><td><abbr title="KELLER 402">KELLER</abbr></td><td>08/24-12/18</td>
</tr>
</table></body></html>`

func newTestCollector(t *testing.T) (*Collector, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		switch {
		case q.Get("s") == "ICS":
			w.Write([]byte(icsSectionsPage))
		case q.Get("s") == "MATH":
			w.Write([]byte(mathSectionsPage))
		case q.Get("s") != "":
			http.Error(w, "no such subject", http.StatusInternalServerError)
		case q.Get("t") != "":
			w.Write([]byte(subjectsPage))
		case q.Get("i") != "":
			w.Write([]byte(termsPage))
		default:
			w.Write([]byte(institutionsPage))
		}
	}))
	t.Cleanup(server.Close)
	return New(Config{Root: server.URL, Client: server.Client(), SubjectWorkers: 2}), server
}

func TestCollectorListings(t *testing.T) {
	c, _ := newTestCollector(t)
	ctx := context.Background()

	institutions, err := c.Institutions(ctx)
	require.NoError(t, err)
	require.Len(t, institutions, 2)
	assert.Equal(t, "MAN", institutions[0].ID)

	terms, err := c.Terms(ctx, "MAN")
	require.NoError(t, err)
	require.Len(t, terms, 2)
	assert.Equal(t, "Fall 2025", terms[0].Name)

	subjects, err := c.Subjects(ctx, "MAN", "202510")
	require.NoError(t, err)
	require.Len(t, subjects, 3)
	assert.Equal(t, "Information & Computer Sciences", subjects[0].Name)
}

func TestCollectorSubjectSections(t *testing.T) {
	c, server := newTestCollector(t)

	sections, err := c.SubjectSections(context.Background(), "MAN", "202510", "ICS", nil)
	require.NoError(t, err)
	require.Len(t, sections, 1)

	s := sections[0]
	assert.Equal(t, 12345, s.CRN)
	assert.Equal(t, "ICS 101", s.Course.CID)
	assert.Equal(t, "J Doe", s.Instructor)
	assert.Contains(t, s.Source, server.URL)

	require.Len(t, s.Meetings, 3)
	assert.Equal(t, timetable.Monday, s.Meetings[0].Day)
	assert.Equal(t, timetable.Friday, s.Meetings[2].Day)
	assert.Equal(t, "POST 127", s.Meetings[2].Room)

	require.Len(t, s.Details, 1)
	assert.Equal(t, "Approval required", s.Details[0])
}

func TestCollectorSectionsFanOut(t *testing.T) {
	c, _ := newTestCollector(t)

	sections, err := c.Sections(context.Background(), "MAN", "202510", nil)
	require.NoError(t, err)
	require.Len(t, sections, 2)
	// merged results are ordered by cid
	assert.Equal(t, "ICS 101", sections[0].Course.CID)
	assert.Equal(t, "MATH 241", sections[1].Course.CID)
}

func TestCollectorSectionsSkipsFailedSubject(t *testing.T) {
	c, _ := newTestCollector(t)

	// HAW pages return 500; its sections are simply absent
	filter, err := timetable.NewFilter(timetable.FilterConfig{
		Subjects: []string{"ICS", "MATH", "HAW"},
	})
	require.NoError(t, err)

	sections, err := c.Sections(context.Background(), "MAN", "202510", filter)
	require.NoError(t, err)
	require.Len(t, sections, 2)
}

func TestCollectorSectionsFiltered(t *testing.T) {
	c, _ := newTestCollector(t)

	filter, err := timetable.NewFilter(timetable.FilterConfig{Subjects: []string{"MATH"}})
	require.NoError(t, err)

	sections, err := c.Sections(context.Background(), "MAN", "202510", filter)
	require.NoError(t, err)
	require.Len(t, sections, 1)
	assert.Equal(t, "MATH 241", sections[0].Course.CID)
}

func TestCollectorUpstreamStatus(t *testing.T) {
	c, _ := newTestCollector(t)

	_, err := c.SubjectSections(context.Background(), "MAN", "202510", "NOPE", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadUpstream)

	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusInternalServerError, upstream.Status)
}
