// Package dateutil implements proleptic Gregorian calendar arithmetic on
// plain civil dates: validity, leap years, month lengths, day stepping and
// day-of-week computation. Results are reliable for years after 1582.
package dateutil

import (
	"cmp"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrParse is returned when text does not decompose into DD/MM/YYYY integers.
	ErrParse = errors.New("malformed date")
	// ErrInvalidDate is returned when the fields do not name a real calendar day.
	ErrInvalidDate = errors.New("invalid date")
	// ErrInvalidMonth is returned for a month outside 1-12.
	ErrInvalidMonth = errors.New("month out of range")
)

// MaxYear is the largest year accepted as valid. Day numbers and
// day-of-week sums for years up to MaxYear fit comfortably in an int.
const MaxYear = 1 << 40

// CalendarDate is a civil date without time of day or location.
// Values are compared with == and never modified in place.
type CalendarDate struct {
	Day   int
	Month int
	Year  int
}

// Date returns the CalendarDate for the given day, month and year.
// It does not validate its arguments.
func Date(day, month, year int) CalendarDate {
	return CalendarDate{Day: day, Month: month, Year: year}
}

// String formats the date as DD/MM/YYYY
func (d CalendarDate) String() string {
	return fmt.Sprintf("%02d/%02d/%d", d.Day, d.Month, d.Year)
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to
// or after other in calendar order.
func (d CalendarDate) Compare(other CalendarDate) int {
	if c := cmp.Compare(d.Year, other.Year); c != 0 {
		return c
	}
	if c := cmp.Compare(d.Month, other.Month); c != 0 {
		return c
	}
	return cmp.Compare(d.Day, other.Day)
}

// Before reports whether d is earlier than other
func (d CalendarDate) Before(other CalendarDate) bool {
	return d.Compare(other) < 0
}

// After reports whether d is later than other
func (d CalendarDate) After(other CalendarDate) bool {
	return d.Compare(other) > 0
}

// Ordered returns a and b in chronological order.
func Ordered(a, b CalendarDate) (CalendarDate, CalendarDate) {
	if b.Before(a) {
		return b, a
	}
	return a, b
}

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	if year%400 == 0 {
		return true
	}
	if year%100 == 0 {
		return false
	}
	return year%4 == 0
}

var monthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// monthLength assumes 1 <= month <= 12.
func monthLength(month, year int) int {
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return monthDays[month-1]
}

// DaysInMonth returns the number of days in month of year.
func DaysInMonth(month, year int) (int, error) {
	if month < 1 || month > 12 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidMonth, month)
	}
	return monthLength(month, year), nil
}

// IsValidDate reports whether d names a day of the proleptic Gregorian
// calendar with a year from 1 to MaxYear.
func IsValidDate(d CalendarDate) bool {
	if d.Year < 1 || d.Year > MaxYear || d.Month < 1 || d.Month > 12 {
		return false
	}
	return d.Day >= 1 && d.Day <= monthLength(d.Month, d.Year)
}

// Parse parses a DD/MM/YYYY date. Errors wrap ErrParse when the text is not
// three integers and ErrInvalidDate when the integers are out of range.
func Parse(s string) (CalendarDate, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return CalendarDate{}, fmt.Errorf("%w: %q, expected DD/MM/YYYY", ErrParse, s)
	}

	var fields [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return CalendarDate{}, fmt.Errorf("%w: %q: %v", ErrParse, s, err)
		}
		fields[i] = n
	}

	d := Date(fields[0], fields[1], fields[2])
	if !IsValidDate(d) {
		return CalendarDate{}, fmt.Errorf("%w: %s", ErrInvalidDate, s)
	}
	return d, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) CalendarDate {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// ValidDate reports whether s parses as a valid DD/MM/YYYY date.
func ValidDate(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// FromTime returns the civil date of t in t's location
func FromTime(t time.Time) CalendarDate {
	year, month, day := t.Date()
	return Date(day, int(month), year)
}

// Time returns midnight of d in loc
func (d CalendarDate) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, loc)
}

// Today returns today's date in the local timezone
func Today() CalendarDate {
	return FromTime(time.Now())
}

// StartOfWeek returns the Monday on or before d
func StartOfWeek(d CalendarDate) CalendarDate {
	daysFromMonday := (int(DayOfWeek(d)) + 6) % 7
	return AddDays(d, -daysFromMonday)
}
