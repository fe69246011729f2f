package collection

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	pagesFetched = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "kala",
		Name:      "pages_fetched_total",
		Help:      "Timetable pages fetched, by listing kind.",
	}, []string{"kind"})

	pageFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "kala",
		Name:      "page_failures_total",
		Help:      "Timetable page fetches that failed, by listing kind.",
	}, []string{"kind"})

	sectionsParsed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "kala",
		Name:      "sections_parsed_total",
		Help:      "Sections successfully materialized from subject pages.",
	})

	meetingFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "kala",
		Name:      "meeting_failures_total",
		Help:      "Meeting rows that could not be decoded.",
	})
)
