package cmd

import (
	"context"
	"encoding/json"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// campusesCmd represents the campuses command
var campusesCmd = &cobra.Command{
	Use:   "campuses",
	Short: "Lists every campus on the availability site",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		logger := log.WithFields(log.Fields{
			"job": "campuses",
		})
		collector := newCollector(logger, cfg)

		campuses, err := collector.Institutions(context.Background())
		if err != nil {
			logger.WithError(err).Fatal("could not list campuses")
		}
		printJSON(campuses)
	},
}

func init() {
	rootCmd.AddCommand(campusesCmd)
}

func printJSON(payload any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(payload); err != nil {
		log.WithError(err).Fatal("could not encode output")
	}
}
