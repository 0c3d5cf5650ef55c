package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/teemow/meetfinder/internal/calendar"
	"github.com/teemow/meetfinder/internal/interval"
	"github.com/teemow/meetfinder/internal/slot"
)

func newFindCmd() *cobra.Command {
	var (
		calendarsDir    string
		durationMinutes int
		minPeople       int
	)

	cmd := &cobra.Command{
		Use:   "find",
		Short: "Find the earliest slot where enough people are free",
		Long: `Read busy calendars from a directory (one .txt file per person, one busy
record per line) and print the earliest time at which at least the given
number of people share a free stretch of the requested length.

Busy records come in two forms:
  2022-05-14 09:00:00 - 2022-05-14 10:00:00   explicit range
  2022-05-14                                  busy for the whole day`,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()

			busy, err := calendar.LoadDir(calendarsDir, now)
			if err != nil {
				return fmt.Errorf("failed to load calendars: %w", err)
			}

			req := slot.Request{
				DurationMinutes: durationMinutes,
				MinPeople:       minPeople,
			}

			start, err := slot.FindEarliest(busy, req, now)
			if err != nil {
				return err
			}

			fmt.Printf("Closest available slot: %s\n", start.Format(interval.LayoutDateTime))
			return nil
		},
	}

	cmd.Flags().StringVar(&calendarsDir, "calendars", "calendars", "Directory containing calendar files (one .txt file per person)")
	cmd.Flags().IntVar(&durationMinutes, "duration-minutes", 30, "Meeting duration in minutes")
	cmd.Flags().IntVar(&minPeople, "min-people", 2, "Minimum number of people that must be free at the same time")

	return cmd
}
