// Package server exposes the collection and scheduling surfaces over
// HTTP.
package server

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

// Serve blocks running the API on the given port.
func Serve(directory Directory, port int) error {
	logger := log.WithField("component", "server")

	r := chi.NewRouter()
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders: []string{"Link"},
		MaxAge:         300, // Maximum age for preflight requests
	})
	r.Use(c.Handler)
	r.Use(requestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/v1", func(r chi.Router) {
		populateRoutes(r, directory, logger)
	})
	r.Handle("/metrics", promhttp.Handler())

	logger.WithField("port", port).Info("running server")
	return http.ListenAndServe(fmt.Sprintf(":%d", port), r)
}
