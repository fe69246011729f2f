package cmd

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kekoav/kala/server"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Runs the api service",
	Long:  `Runs the api service`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		logger := log.WithFields(log.Fields{
			"job": "serve",
		})
		directory := newCollector(logger, cfg)
		if err := server.Serve(directory, cfg.Port); err != nil {
			logger.WithError(err).Fatal("server stopped")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
