package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/username/date-tools/internal/calendar"
	"github.com/username/date-tools/pkg/dateutil"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Month summary output formats
const (
	formatText = "text"
	formatYAML = "yaml"
	formatJSON = "json"
)

type dayView struct {
	Date    string `json:"date" yaml:"date"`
	Weekday string `json:"weekday" yaml:"weekday"`
	Type    string `json:"type" yaml:"type"`
	Note    string `json:"note,omitempty" yaml:"note,omitempty"`
}

type monthView struct {
	Year     int       `json:"year" yaml:"year"`
	Month    int       `json:"month" yaml:"month"`
	WorkDays int       `json:"work_days" yaml:"work_days"`
	Weekends int       `json:"weekends" yaml:"weekends"`
	Holidays int       `json:"holidays" yaml:"holidays"`
	Days     []dayView `json:"days" yaml:"days"`
}

func newMonthView(monthInfo *calendar.MonthInfo) monthView {
	view := monthView{
		Year:     monthInfo.Year,
		Month:    monthInfo.Month,
		WorkDays: monthInfo.WorkDays,
		Weekends: monthInfo.Weekends,
		Holidays: monthInfo.Holidays,
		Days:     make([]dayView, 0, len(monthInfo.Days)),
	}
	for _, day := range monthInfo.Days {
		view.Days = append(view.Days, dayView{
			Date:    day.Date.String(),
			Weekday: day.Weekday.String(),
			Type:    day.Type.String(),
			Note:    day.Note,
		})
	}
	return view
}

// parseMonthArg parses MM/YYYY
func parseMonthArg(s string) (dateutil.CalendarDate, error) {
	first, err := dateutil.Parse("01/" + s)
	if err != nil {
		return dateutil.CalendarDate{}, fmt.Errorf("invalid month %q, expected MM/YYYY: %w", s, err)
	}
	return first, nil
}

func monthCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "month [MM/YYYY]",
		Short: "Summarize working days, weekends and holidays of a month",
		Long:  "Summarize a month against the configured calendar. Defaults to the current month.",
		Args: cobra.MatchAll(cobra.MaximumNArgs(1), func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				if _, err := parseMonthArg(args[0]); err != nil {
					return err
				}
			}
			switch format {
			case formatText, formatYAML, formatJSON:
				return nil
			default:
				return fmt.Errorf("unknown format %q, expected text, yaml or json", format)
			}
		}),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			first := dateutil.Today()
			if len(args) == 1 {
				first, _ = parseMonthArg(args[0])
			}

			cal, err := calendar.New(&cfg.Calendar, logger)
			if err != nil {
				return err
			}

			monthInfo, err := calendar.GetMonthInfo(cal, first.Year, first.Month)
			if err != nil {
				return fmt.Errorf("failed to get month info: %w", err)
			}

			logger.Debug("Month summarized",
				zap.Int("year", monthInfo.Year),
				zap.Int("month", monthInfo.Month),
				zap.Int("work_days", monthInfo.WorkDays))

			return writeMonth(cmd.OutOrStdout(), monthInfo, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatText, "Output format (text, yaml, json)")

	return cmd
}

func writeMonth(w io.Writer, monthInfo *calendar.MonthInfo, format string) error {
	switch format {
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(newMonthView(monthInfo)); err != nil {
			return fmt.Errorf("failed to encode month: %w", err)
		}
		return enc.Close()

	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(newMonthView(monthInfo)); err != nil {
			return fmt.Errorf("failed to encode month: %w", err)
		}
		return nil

	default:
		return writeMonthText(w, monthInfo)
	}
}

// writeMonthText prints one line per day, with weeks separated by a blank line
func writeMonthText(w io.Writer, monthInfo *calendar.MonthInfo) error {
	if _, err := fmt.Fprintf(w, "%02d/%d: %d working days, %d weekend days, %d holidays\n",
		monthInfo.Month, monthInfo.Year,
		monthInfo.WorkDays, monthInfo.Weekends, monthInfo.Holidays); err != nil {
		return err
	}

	var week dateutil.CalendarDate
	for _, day := range monthInfo.Days {
		if start := dateutil.StartOfWeek(day.Date); start != week {
			week = start
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}

		line := fmt.Sprintf("  %s %s %s", day.Date, day.Weekday, day.Type)
		if day.Note != "" {
			line += " (" + day.Note + ")"
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func workdaysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "workdays DD/MM/YYYY DD/MM/YYYY",
		Short: "Count working days between two dates, inclusive",
		Args:  cobra.MatchAll(cobra.ExactArgs(2), dateArgs(0, 1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			a, _ := parseDateArg(args[0])
			b, _ := parseDateArg(args[1])
			start, end := dateutil.Ordered(a, b)

			cal, err := calendar.New(&cfg.Calendar, logger)
			if err != nil {
				return err
			}

			count, err := calendar.CountWorkdays(cal, start, end)
			if err != nil {
				return fmt.Errorf("failed to count working days: %w", err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "The period between %s and %s includes %d working days.\n", start, end, count)
			return err
		},
	}
}
