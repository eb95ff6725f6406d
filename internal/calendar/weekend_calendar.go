package calendar

import (
	"fmt"

	"github.com/username/date-tools/pkg/dateutil"
)

// WeekendCalendar treats Saturdays and Sundays as weekends and every other
// day as a workday.
type WeekendCalendar struct{}

// NewWeekendCalendar creates a new WeekendCalendar
func NewWeekendCalendar() *WeekendCalendar {
	return &WeekendCalendar{}
}

// GetDayInfo returns detailed info for a specific day
func (WeekendCalendar) GetDayInfo(date dateutil.CalendarDate) (*DayInfo, error) {
	if !dateutil.IsValidDate(date) {
		return nil, fmt.Errorf("%w: %s", dateutil.ErrInvalidDate, date)
	}
	return weekdayInfo(date), nil
}

// weekdayInfo classifies a valid date by the weekend rule alone
func weekdayInfo(date dateutil.CalendarDate) *DayInfo {
	weekday := dateutil.DayOfWeek(date)
	dayType := DayTypeWorkday
	if weekday.IsWeekend() {
		dayType = DayTypeWeekend
	}
	return &DayInfo{
		Date:    date,
		Weekday: weekday,
		Type:    dayType,
	}
}
