package dateutil

// Cumulative days before each month in a common year.
var daysBeforeMonth = [12]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

const daysPer400Years = 146097

func daysBeforeYear(year int) int {
	y := year - 1
	return y*365 + y/4 - y/100 + y/400
}

// Ordinal returns the proleptic Gregorian day number of d, where
// 01/01/0001 is day 1. d must be valid.
func Ordinal(d CalendarDate) int {
	n := daysBeforeYear(d.Year) + daysBeforeMonth[d.Month-1] + d.Day
	if d.Month > 2 && IsLeapYear(d.Year) {
		n++
	}
	return n
}

// FromOrdinal is the inverse of Ordinal. n must be positive.
func FromOrdinal(n int) CalendarDate {
	year := n*400/daysPer400Years + 1
	for year > 1 && daysBeforeYear(year) >= n {
		year--
	}
	for daysBeforeYear(year+1) < n {
		year++
	}

	day := n - daysBeforeYear(year)
	month := 1
	for day > monthLength(month, year) {
		day -= monthLength(month, year)
		month++
	}
	return Date(day, month, year)
}

// maxOrdinal is the day number of 31/12/MaxYear
var maxOrdinal = Ordinal(Date(31, 12, MaxYear))

// CanAddDays reports whether AddDays(d, n) is a valid date, that is whether
// it stays between 01/01/0001 and 31/12/MaxYear. d must be valid.
func CanAddDays(d CalendarDate, n int) bool {
	ord := Ordinal(d)
	if n >= 0 {
		return n <= maxOrdinal-ord
	}
	return n >= 1-ord
}

// DaysBetween returns the number of days from a to b; negative when b is
// before a.
func DaysBetween(a, b CalendarDate) int {
	return Ordinal(b) - Ordinal(a)
}
