package server

import (
	log "github.com/sirupsen/logrus"

	"github.com/go-chi/chi/v5"
)

func populateRoutes(r chi.Router, directory Directory, logger *log.Entry) {
	h := &handler{directory: directory, logger: logger}

	r.Get("/campuses", h.getCampuses)
	r.Route("/campuses/{instID}", func(r chi.Router) {
		r.Get("/terms", h.getTerms)
		r.Route("/terms/{termID}", func(r chi.Router) {
			r.Get("/subjects", h.getSubjects)
			r.Get("/courses", h.getCourses)
		})
	})
	r.Get("/scheduler/{instID}/terms/{termID}", h.getSchedules)
}
