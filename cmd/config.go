package cmd

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/kekoav/kala/collection"
)

type config struct {
	Port           int
	SourceRoot     string
	SubjectWorkers int
}

// loadConfig reads the environment, optionally seeded from a .env
// file. A missing .env is fine; the defaults point at the public
// site.
func loadConfig() config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.WithError(err).Warn("could not load .env file")
	}

	return config{
		Port:           envInt("KALA_PORT", 3000),
		SourceRoot:     os.Getenv("KALA_SOURCE_ROOT"),
		SubjectWorkers: envInt("KALA_SUBJECT_WORKERS", collection.DefaultSubjectWorkers),
	}
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.WithField(key, raw).Warnf("ignoring non numeric %s", key)
		return fallback
	}
	return value
}

func newCollector(logger *log.Entry, cfg config) *collection.Collector {
	return collection.New(collection.Config{
		Root:           cfg.SourceRoot,
		Logger:         logger,
		SubjectWorkers: cfg.SubjectWorkers,
	})
}
