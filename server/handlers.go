package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"

	"github.com/kekoav/kala/collection"
	"github.com/kekoav/kala/scheduler"
	"github.com/kekoav/kala/timetable"
)

// Directory is the collection surface the handlers consume, kept
// narrow so tests can fake the upstream site.
type Directory interface {
	Institutions(ctx context.Context) ([]collection.Identifier, error)
	Terms(ctx context.Context, instID string) ([]collection.Identifier, error)
	Subjects(ctx context.Context, instID, termID string) ([]collection.Identifier, error)
	Sections(ctx context.Context, instID, termID string, filter *timetable.Filter) ([]*timetable.Section, error)
}

type handler struct {
	directory Directory
	logger    *log.Entry
}

func (h *handler) getCampuses(w http.ResponseWriter, r *http.Request) {
	campuses, err := h.directory.Institutions(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, identifierResponse{Count: len(campuses), Items: campuses})
}

func (h *handler) getTerms(w http.ResponseWriter, r *http.Request) {
	terms, err := h.directory.Terms(r.Context(), chi.URLParam(r, "instID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, identifierResponse{Count: len(terms), Items: terms})
}

func (h *handler) getSubjects(w http.ResponseWriter, r *http.Request) {
	subjects, err := h.directory.Subjects(
		r.Context(),
		chi.URLParam(r, "instID"),
		chi.URLParam(r, "termID"),
	)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, identifierResponse{Count: len(subjects), Items: subjects})
}

func (h *handler) getCourses(w http.ResponseWriter, r *http.Request) {
	filter, err := filterFromQuery(r.URL.Query())
	if err != nil {
		h.writeStatus(w, http.StatusBadRequest, err.Error())
		return
	}
	sections, err := h.directory.Sections(
		r.Context(),
		chi.URLParam(r, "instID"),
		chi.URLParam(r, "termID"),
		filter,
	)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, newCourseDTOs(sections))
}

func (h *handler) getSchedules(w http.ResponseWriter, r *http.Request) {
	filter, err := filterFromQuery(r.URL.Query())
	if err != nil {
		h.writeStatus(w, http.StatusBadRequest, err.Error())
		return
	}
	sections, err := h.directory.Sections(
		r.Context(),
		chi.URLParam(r, "instID"),
		chi.URLParam(r, "termID"),
		filter,
	)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	required := make(map[string]struct{})
	for _, s := range sections {
		required[s.Course.CID] = struct{}{}
	}
	results := scheduler.Solve(sections, required)
	missing := scheduler.MissingCourses(results, required)
	h.writeJSON(w, newSchedulesResponse(results, missing))
}

// filterFromQuery translates the request's query parameters into a
// section filter. Every parameter repeats to widen the criterion.
func filterFromQuery(query url.Values) (*timetable.Filter, error) {
	return timetable.NewFilter(timetable.FilterConfig{
		CRNs:        query["crn"],
		Subjects:    query["subject"],
		Numbers:     query["code"],
		Courses:     query["cid"],
		Days:        query["day"],
		StartAfter:  query.Get("start-after"),
		EndBefore:   query.Get("end-before"),
		Online:      query.Get("online"),
		Synchronous: query.Get("sync"),
		Instructors: query["instructor"],
		Keywords:    query["keyword"],
	})
}

func (h *handler) writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.WithError(err).Error("could not encode response")
	}
}

// writeError maps upstream failures to a client-visible 400 carrying
// the upstream status; everything else is a plain 500.
func (h *handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var upstream *collection.UpstreamError
	if errors.As(err, &upstream) {
		h.logger.WithFields(log.Fields{
			"path":   r.URL.Path,
			"source": upstream.Source,
			"status": upstream.Status,
		}).Warn("upstream request failed")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(errorResponse{
			Error:          "the timetable site rejected the request",
			UpstreamStatus: upstream.Status,
		})
		return
	}
	if errors.Is(err, collection.ErrBadUpstream) {
		h.logger.WithError(err).WithField("path", r.URL.Path).Warn("upstream request failed")
		h.writeStatus(w, http.StatusBadRequest, "the timetable site could not be reached")
		return
	}
	h.logger.WithError(err).WithField("path", r.URL.Path).Error("request failed")
	h.writeStatus(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}

func (h *handler) writeStatus(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{Error: msg})
}
