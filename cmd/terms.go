package cmd

import (
	"context"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// termsCmd represents the terms command
var termsCmd = &cobra.Command{
	Use:   "terms",
	Short: "Lists the published terms of a campus",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		campus, _ := cmd.Flags().GetString("campus")
		logger := log.WithFields(log.Fields{
			"job":    "terms",
			"campus": campus,
		})
		collector := newCollector(logger, cfg)

		terms, err := collector.Terms(context.Background(), campus)
		if err != nil {
			logger.WithError(err).Fatal("could not list terms")
		}
		printJSON(terms)
	},
}

func init() {
	rootCmd.AddCommand(termsCmd)
	termsCmd.Flags().String("campus", "MAN", "The campus to list terms for")
}
