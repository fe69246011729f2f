package cmd

import (
	"context"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kekoav/kala/timetable"
)

// sectionsCmd represents the sections command
var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "Scrapes the sections of a term, optionally filtered",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		campus, _ := cmd.Flags().GetString("campus")
		term, _ := cmd.Flags().GetString("term")
		logger := log.WithFields(log.Fields{
			"job":    "sections",
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
		logger.WithField("sections", len(sections)).Info("collection finished")
		printJSON(sections)
	},
}

func init() {
	rootCmd.AddCommand(sectionsCmd)
	addScrapeFlags(sectionsCmd)
}

// addScrapeFlags registers the flags shared by every filtered scrape.
func addScrapeFlags(cmd *cobra.Command) {
	cmd.Flags().String("campus", "MAN", "The campus to scrape")
	cmd.Flags().String("term", "", "The term id (from the terms command)")
	cmd.MarkFlagRequired("term")

	cmd.Flags().StringSlice("crn", nil, "Only these reference numbers")
	cmd.Flags().StringSlice("subject", nil, "Only these subjects (ICS, MATH)")
	cmd.Flags().StringSlice("code", nil, "Only these course numbers; * is a digit wildcard (1**)")
	cmd.Flags().StringSlice("cid", nil, "Only these courses (ICS 101); overrides subject and code")
	cmd.Flags().StringSlice("day", nil, "Only meetings on these day codes; !M excludes Monday")
	cmd.Flags().String("start-after", "", "Only meetings starting after HHmm")
	cmd.Flags().String("end-before", "", "Only meetings ending before HHmm")
	cmd.Flags().String("online", "", "true for online only, false to exclude online")
	cmd.Flags().String("sync", "", "true for synchronous only, false to exclude synchronous")
	cmd.Flags().StringSlice("instructor", nil, "Only matching instructors; !name excludes")
	cmd.Flags().StringSlice("keyword", nil, "Only course titles matching these patterns")
}

func filterFromFlags(cmd *cobra.Command) (*timetable.Filter, error) {
	crns, _ := cmd.Flags().GetStringSlice("crn")
	subjects, _ := cmd.Flags().GetStringSlice("subject")
	codes, _ := cmd.Flags().GetStringSlice("code")
	cids, _ := cmd.Flags().GetStringSlice("cid")
	days, _ := cmd.Flags().GetStringSlice("day")
	startAfter, _ := cmd.Flags().GetString("start-after")
	endBefore, _ := cmd.Flags().GetString("end-before")
	online, _ := cmd.Flags().GetString("online")
	sync, _ := cmd.Flags().GetString("sync")
	instructors, _ := cmd.Flags().GetStringSlice("instructor")
	keywords, _ := cmd.Flags().GetStringSlice("keyword")

	return timetable.NewFilter(timetable.FilterConfig{
		CRNs:        crns,
		Subjects:    subjects,
		Numbers:     codes,
		Courses:     cids,
		Days:        days,
		StartAfter:  startAfter,
		EndBefore:   endBefore,
		Online:      online,
		Synchronous: sync,
		Instructors: instructors,
		Keywords:    keywords,
	})
}
