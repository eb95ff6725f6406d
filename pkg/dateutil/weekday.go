package dateutil

import (
	"fmt"
	"time"
)

// Weekday is a day of the week, numbered like time.Weekday (Sunday = 0).
type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var weekdayNames = [...]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// String returns the three-letter abbreviation ("Sun", "Mon", ...)
func (w Weekday) String() string {
	if w < Sunday || w > Saturday {
		return fmt.Sprintf("Weekday(%d)", int(w))
	}
	return weekdayNames[w]
}

// IsWeekend returns true for Saturday and Sunday
func (w Weekday) IsWeekend() bool {
	return w == Saturday || w == Sunday
}

// Std converts w to a time.Weekday
func (w Weekday) Std() time.Weekday {
	return time.Weekday(w)
}

// Per-month offsets for Sakamoto's method, January first.
var sakamotoOffset = [12]int{0, 3, 2, 5, 0, 3, 5, 1, 4, 6, 2, 4}

// DayOfWeek returns the weekday of d using Sakamoto's method.
// d must be valid.
func DayOfWeek(d CalendarDate) Weekday {
	y := d.Year
	if d.Month < 3 {
		y--
	}
	n := (y + y/4 - y/100 + y/400 + sakamotoOffset[d.Month-1] + d.Day) % 7
	return Weekday(n)
}

// CountWeekendDays counts the Saturdays and Sundays from start to end,
// both inclusive. start must not be after end.
func CountWeekendDays(start, end CalendarDate) int {
	count := 0
	for d := start; !d.After(end); d = NextDay(d) {
		if DayOfWeek(d).IsWeekend() {
			count++
		}
	}
	return count
}
