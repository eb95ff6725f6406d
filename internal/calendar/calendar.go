package calendar

import (
	"errors"
	"fmt"

	"github.com/username/date-tools/pkg/dateutil"
)

// ErrDayNotFound is returned by sources that only know some days
var ErrDayNotFound = errors.New("day not found in calendar")

// DayType represents the type of day
type DayType int

const (
	DayTypeWorkday DayType = iota + 1
	DayTypeWeekend
	DayTypeHoliday
	DayTypeShortened
)

var dayTypeNames = map[DayType]string{
	DayTypeWorkday:   "workday",
	DayTypeWeekend:   "weekend",
	DayTypeHoliday:   "holiday",
	DayTypeShortened: "shortened",
}

func (t DayType) String() string {
	if name, ok := dayTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("DayType(%d)", int(t))
}

// IsWorkday reports whether days of this type are working days
func (t DayType) IsWorkday() bool {
	return t == DayTypeWorkday || t == DayTypeShortened
}

// ParseDayType parses the textual form used in holiday files
func ParseDayType(s string) (DayType, error) {
	for t, name := range dayTypeNames {
		if name == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown day type: %q", s)
}

// DayInfo represents information about a specific day
type DayInfo struct {
	Date    dateutil.CalendarDate
	Weekday dateutil.Weekday
	Type    DayType
	Note    string
}

// IsWorkday reports whether the day is a working day
func (d DayInfo) IsWorkday() bool {
	return d.Type.IsWorkday()
}

// MonthInfo represents calendar information for a month
type MonthInfo struct {
	Year     int
	Month    int
	WorkDays int
	Weekends int
	Holidays int
	Days     []DayInfo
}

// Calendar classifies individual days
type Calendar interface {
	// GetDayInfo returns detailed info for a specific day
	GetDayInfo(date dateutil.CalendarDate) (*DayInfo, error)
}

// GetMonthInfo walks every day of the month through cal and aggregates
// the totals.
func GetMonthInfo(cal Calendar, year, month int) (*MonthInfo, error) {
	days, err := dateutil.DaysInMonth(month, year)
	if err != nil {
		return nil, err
	}

	monthInfo := &MonthInfo{
		Year:  year,
		Month: month,
		Days:  make([]DayInfo, 0, days),
	}

	first := dateutil.Date(1, month, year)
	last := dateutil.Date(days, month, year)
	for d := first; !d.After(last); d = dateutil.NextDay(d) {
		dayInfo, err := cal.GetDayInfo(d)
		if err != nil {
			return nil, fmt.Errorf("failed to classify %s: %w", d, err)
		}

		switch {
		case dayInfo.IsWorkday():
			monthInfo.WorkDays++
		case dayInfo.Type == DayTypeWeekend:
			monthInfo.Weekends++
		default:
			monthInfo.Holidays++
		}
		monthInfo.Days = append(monthInfo.Days, *dayInfo)
	}

	return monthInfo, nil
}

// CountWorkdays counts working days from start to end inclusive.
// start must not be after end.
func CountWorkdays(cal Calendar, start, end dateutil.CalendarDate) (int, error) {
	count := 0
	for d := start; !d.After(end); d = dateutil.NextDay(d) {
		dayInfo, err := cal.GetDayInfo(d)
		if err != nil {
			return 0, fmt.Errorf("failed to classify %s: %w", d, err)
		}
		if dayInfo.IsWorkday() {
			count++
		}
	}
	return count, nil
}
