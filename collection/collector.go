package collection

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/kekoav/kala/timetable"
)

// DefaultSubjectWorkers bounds concurrent subject page fetches per
// term; the availability site tolerates modest parallelism.
const DefaultSubjectWorkers = 8

// Config tunes a Collector. Zero values fall back to the public site,
// a fresh rate limited client, and the standard logger.
type Config struct {
	Root           string
	Client         *http.Client
	Logger         *log.Entry
	SubjectWorkers int
}

// Collector fetches and decodes availability pages. Safe for
// concurrent use.
type Collector struct {
	root    string
	client  *http.Client
	logger  *log.Entry
	workers int
}

func New(cfg Config) *Collector {
	c := &Collector{
		root:    cfg.Root,
		client:  cfg.Client,
		logger:  cfg.Logger,
		workers: cfg.SubjectWorkers,
	}
	if c.root == "" {
		c.root = DefaultRoot
	}
	if c.logger == nil {
		c.logger = log.WithField("component", "collection")
	}
	if c.client == nil {
		c.client = NewRetryClient(c.logger, NewAdaptiveRateLimiter(4, 4, 2))
	}
	if c.workers <= 0 {
		c.workers = DefaultSubjectWorkers
	}
	return c
}

// Institutions lists every campus on the root page.
func (c *Collector) Institutions(ctx context.Context) ([]Identifier, error) {
	doc, err := c.fetch(ctx, "institutions", Source{Root: c.root})
	if err != nil {
		return nil, err
	}
	return extractIdentifiers(doc, instParam), nil
}

// Terms lists the terms currently published for an institution.
func (c *Collector) Terms(ctx context.Context, instID string) ([]Identifier, error) {
	doc, err := c.fetch(ctx, "terms", Source{Root: c.root, InstID: instID})
	if err != nil {
		return nil, err
	}
	return extractIdentifiers(doc, termParam), nil
}

// Subjects lists the subjects offered in a term.
func (c *Collector) Subjects(ctx context.Context, instID, termID string) ([]Identifier, error) {
	doc, err := c.fetch(ctx, "subjects", Source{Root: c.root, InstID: instID, TermID: termID})
	if err != nil {
		return nil, err
	}
	return extractIdentifiers(doc, subjectParam), nil
}

// SubjectSections fetches one subject page and materializes every
// section the cursor can find. Sections the filter rejects are
// dropped; rows the cursor cannot use are logged and skipped.
func (c *Collector) SubjectSections(
	ctx context.Context,
	instID, termID, subjectID string,
	filter *timetable.Filter,
) ([]*timetable.Section, error) {
	source := Source{Root: c.root, InstID: instID, TermID: termID, SubjectID: subjectID}
	logger := c.logger.WithFields(log.Fields{
		"institution": instID,
		"term":        termID,
		"subject":     subjectID,
	})

	start := time.Now()
	doc, err := c.fetch(ctx, "sections", source)
	if err != nil {
		return nil, err
	}

	var sections []*timetable.Section
	cursor := timetable.NewCursor(newRows(doc))
	for cursor.FindSection() {
		section, err := cursor.Section()
		if err != nil {
			logger.WithError(err).Warn("skipping unusable section row")
			continue
		}
		section.Source = source.URL()
		sectionsParsed.Inc()
		if section.FailedMeetings > 0 {
			meetingFailures.Add(float64(section.FailedMeetings))
			logger.WithFields(log.Fields{
				"crn":    section.CRN,
				"failed": section.FailedMeetings,
			}).Warn("section has undecodable meeting rows")
		}
		if filter.ValidSection(section) {
			sections = append(sections, section)
		}
	}

	logger.WithFields(log.Fields{
		"sections": len(sections),
		"elapsed":  time.Since(start),
	}).Debug("subject page collected")
	return sections, nil
}

// Sections fetches every subject the filter allows and merges their
// sections, ordered by CID then CRN. Subject pages fan out over a
// bounded worker group. A failed subject contributes nothing: it is
// logged and its sections are absent, but sibling subjects proceed.
func (c *Collector) Sections(
	ctx context.Context,
	instID, termID string,
	filter *timetable.Filter,
) ([]*timetable.Section, error) {
	subjects, err := c.Subjects(ctx, instID, termID)
	if err != nil {
		return nil, err
	}

	var mu sync.Mutex
	var sections []*timetable.Section

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(c.workers)
	for _, subject := range subjects {
		subject := subject
		if !filter.ValidSubject(subject.ID) {
			continue
		}
		eg.Go(func() error {
			subjectSections, err := c.SubjectSections(ctx, instID, termID, subject.ID, filter)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				c.logger.WithError(err).WithFields(log.Fields{
					"institution": instID,
					"term":        termID,
					"subject":     subject.ID,
				}).Warn("skipping subject that could not be collected")
				return nil
			}
			mu.Lock()
			sections = append(sections, subjectSections...)
			mu.Unlock()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(sections, func(i, j int) bool {
		if sections[i].Course.CID != sections[j].Course.CID {
			return sections[i].Course.CID < sections[j].Course.CID
		}
		return sections[i].CRN < sections[j].CRN
	})
	return sections, nil
}

// fetch gets one page and parses it, translating transport and status
// failures into upstream errors.
func (c *Collector) fetch(ctx context.Context, kind string, source Source) (*goquery.Document, error) {
	url := source.URL()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		pageFailures.WithLabelValues(kind).Inc()
		return nil, fmt.Errorf("%w: %s: %v", ErrBadUpstream, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		pageFailures.WithLabelValues(kind).Inc()
		return nil, &UpstreamError{Source: url, Status: resp.StatusCode}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		pageFailures.WithLabelValues(kind).Inc()
		return nil, fmt.Errorf("%w: %s: %v", ErrBadUpstream, url, err)
	}
	pagesFetched.WithLabelValues(kind).Inc()
	return doc, nil
}
