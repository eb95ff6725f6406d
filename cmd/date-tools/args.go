package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/username/date-tools/pkg/dateutil"
)

func parseDateArg(s string) (dateutil.CalendarDate, error) {
	date, err := dateutil.Parse(s)
	if err != nil {
		return dateutil.CalendarDate{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return date, nil
}

func parseIntArg(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return n, nil
}

// dateArgs validates that the positional arguments at the given indexes
// are DD/MM/YYYY dates.
func dateArgs(indexes ...int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		for _, i := range indexes {
			if i >= len(args) {
				continue
			}
			if _, err := parseDateArg(args[i]); err != nil {
				return err
			}
		}
		return nil
	}
}

// intArgs validates that the positional arguments at the given indexes
// are integers.
func intArgs(indexes ...int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		for _, i := range indexes {
			if i >= len(args) {
				continue
			}
			if _, err := parseIntArg(args[i]); err != nil {
				return err
			}
		}
		return nil
	}
}
