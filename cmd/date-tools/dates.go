package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/username/date-tools/pkg/dateutil"
	"go.uber.org/zap"
)

func enddateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "enddate DD/MM/YYYY N",
		Short:   "Print the date N days after (or before, when negative) a start date",
		Example: "  date-tools enddate 31/12/1999 1\n  date-tools enddate 01/03/2024 -1",
		Args:    cobra.MatchAll(cobra.ExactArgs(2), dateArgs(0), intArgs(1), offsetInRange),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, _ := parseDateArg(args[0])
			days, _ := parseIntArg(args[1])

			end := dateutil.AddDays(start, days)
			logger.Debug("End date computed",
				zap.Stringer("start", start),
				zap.Int("days", days),
				zap.Stringer("end", end))

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "The end date is %s, %s.\n", dateutil.DayOfWeek(end), end)
			return err
		},
	}

	// Negative offsets must not be parsed as flags
	cmd.Flags().SetInterspersed(false)

	return cmd
}

// offsetInRange rejects offsets that step outside the supported years
func offsetInRange(cmd *cobra.Command, args []string) error {
	start, _ := parseDateArg(args[0])
	days, _ := parseIntArg(args[1])
	if !dateutil.CanAddDays(start, days) {
		return fmt.Errorf("offset %d from %s leaves the supported years 1 to %d", days, start, dateutil.MaxYear)
	}
	return nil
}

func weekendsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "weekends DD/MM/YYYY DD/MM/YYYY",
		Short: "Count the Saturdays and Sundays between two dates, inclusive",
		Args:  cobra.MatchAll(cobra.ExactArgs(2), dateArgs(0, 1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, _ := parseDateArg(args[0])
			b, _ := parseDateArg(args[1])
			start, end := dateutil.Ordered(a, b)

			count := dateutil.CountWeekendDays(start, end)
			logger.Debug("Weekend days counted",
				zap.Stringer("start", start),
				zap.Stringer("end", end),
				zap.Int("weekend_days", count))

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "The period between %s and %s includes %d weekend days.\n", start, end, count)
			return err
		},
	}
}

func weekdayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "weekday DD/MM/YYYY",
		Short: "Print the day of the week of a date",
		Args:  cobra.MatchAll(cobra.ExactArgs(1), dateArgs(0)),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, _ := parseDateArg(args[0])

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s is a %s.\n", date, dateutil.DayOfWeek(date))
			return err
		},
	}
}
