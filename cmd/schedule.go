package cmd

import (
	"context"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kekoav/kala/scheduler"
	"github.com/kekoav/kala/timetable"
)

// scheduleCmd represents the schedule command
var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Enumerates conflict-free schedules for the filtered sections",
	Long: `Scrapes the filtered sections of a term and prints every
conflict-free combination covering one section per course`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		campus, _ := cmd.Flags().GetString("campus")
		term, _ := cmd.Flags().GetString("term")
		logger := log.WithFields(log.Fields{
			"job":    "schedule",
			"campus": campus,
			"term":   term,
		})
		collector := newCollector(logger, cfg)

		filter, err := filterFromFlags(cmd)
		if err != nil {
			logger.WithError(err).Fatal("bad filter flags")
		}
		sections, err := collector.Sections(context.Background(), campus, term, filter)
		if err != nil {
			logger.WithError(err).Fatal("could not collect sections")
		}

		required := make(map[string]struct{})
		for _, s := range sections {
			required[s.Course.CID] = struct{}{}
		}
		results := scheduler.Solve(sections, required)
		logger.WithFields(log.Fields{
			"sections":  len(sections),
			"schedules": len(results),
		}).Info("search finished")

		if missing := scheduler.MissingCourses(results, required); len(missing) > 0 {
			for _, cid := range missing {
				logger.WithField("cid", cid).Warn("course cannot fit any schedule")
			}
		}

		type schedule struct {
			Sections []*timetable.Section `json:"sections"`
		}
		out := make([]schedule, 0, len(results))
		for _, ps := range results {
			out = append(out, schedule{Sections: ps.Sections()})
		}
		printJSON(out)
	},
}

func init() {
	rootCmd.AddCommand(scheduleCmd)
	addScrapeFlags(scheduleCmd)
}
