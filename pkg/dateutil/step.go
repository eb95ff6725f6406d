package dateutil

// NextDay returns the day after d. d must be valid.
func NextDay(d CalendarDate) CalendarDate {
	d.Day++
	if d.Day > monthLength(d.Month, d.Year) {
		d.Day = 1
		d.Month++
		if d.Month > 12 {
			d.Month = 1
			d.Year++
		}
	}
	return d
}

// PreviousDay returns the day before d. d must be valid.
func PreviousDay(d CalendarDate) CalendarDate {
	d.Day--
	if d.Day < 1 {
		d.Month--
		if d.Month < 1 {
			d.Month = 12
			d.Year--
		}
		d.Day = monthLength(d.Month, d.Year)
	}
	return d
}

// AddDays steps n days forward, or backward when n is negative, one day at
// a time. d must be valid. Use CanAddDays to check that the result stays
// within the valid years.
func AddDays(d CalendarDate, n int) CalendarDate {
	for ; n > 0; n-- {
		d = NextDay(d)
	}
	for ; n < 0; n++ {
		d = PreviousDay(d)
	}
	return d
}
