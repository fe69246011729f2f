package cmd

import (
	"context"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// subjectsCmd represents the subjects command
var subjectsCmd = &cobra.Command{
	Use:   "subjects",
	Short: "Lists the subjects offered in a term",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		campus, _ := cmd.Flags().GetString("campus")
		term, _ := cmd.Flags().GetString("term")
		logger := log.WithFields(log.Fields{
			"job":    "subjects",
			"campus": campus,
			"term":   term,
		})
		collector := newCollector(logger, cfg)

		subjects, err := collector.Subjects(context.Background(), campus, term)
		if err != nil {
			logger.WithError(err).Fatal("could not list subjects")
		}
		printJSON(subjects)
	},
}

func init() {
	rootCmd.AddCommand(subjectsCmd)
	subjectsCmd.Flags().String("campus", "MAN", "The campus to list subjects for")
	subjectsCmd.Flags().String("term", "", "The term id (from the terms command)")
	subjectsCmd.MarkFlagRequired("term")
}
