package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

// validDate draws dates from the Gregorian era up to year 9999.
var validDate = rapid.Custom(func(t *rapid.T) CalendarDate {
	year := rapid.IntRange(1583, 9999).Draw(t, "year")
	month := rapid.IntRange(1, 12).Draw(t, "month")
	day := rapid.IntRange(1, monthLength(month, year)).Draw(t, "day")
	return Date(day, month, year)
})

func TestProperty_LeapYearRule(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		y := rapid.IntRange(1, 100000).Draw(t, "year")
		want := y%400 == 0 || (y%4 == 0 && y%100 != 0)
		assert.Equal(t, want, IsLeapYear(y), "year %d", y)
	})
}

func TestProperty_StepRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		d := validDate.Draw(t, "date")

		assert.True(t, IsValidDate(d))
		assert.Equal(t, d, PreviousDay(NextDay(d)))
		assert.Equal(t, d, NextDay(PreviousDay(d)))
		assert.True(t, IsValidDate(NextDay(d)))
		assert.True(t, IsValidDate(PreviousDay(d)))
	})
}

func TestProperty_AddDaysRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		d := validDate.Draw(t, "date")
		n := rapid.IntRange(-3000, 3000).Draw(t, "n")

		assert.Equal(t, d, AddDays(AddDays(d, n), -n))
	})
}

func TestProperty_WeekdayPeriod(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		d := validDate.Draw(t, "date")

		assert.Equal(t, DayOfWeek(d), DayOfWeek(AddDays(d, 7)))
		assert.Equal(t, (DayOfWeek(d)+1)%7, DayOfWeek(NextDay(d)))
	})
}

func TestProperty_AgreesWithTimePackage(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		d := validDate.Draw(t, "date")
		ref := d.Time(time.UTC)

		assert.Equal(t, ref.Weekday(), DayOfWeek(d).Std())
		assert.Equal(t, FromTime(ref.AddDate(0, 0, 1)), NextDay(d))
		assert.Equal(t, FromTime(ref.AddDate(0, 0, -1)), PreviousDay(d))
	})
}

func TestProperty_OrdinalMatchesIteration(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		d := validDate.Draw(t, "date")
		n := rapid.IntRange(-1000, 1000).Draw(t, "n")

		assert.Equal(t, d, FromOrdinal(Ordinal(d)))
		assert.Equal(t, AddDays(d, n), FromOrdinal(Ordinal(d)+n))
		assert.Equal(t, Weekday(Ordinal(d)%7), DayOfWeek(d))
	})
}

func TestProperty_WeekendCountBounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		start := validDate.Draw(t, "start")
		span := rapid.IntRange(0, 400).Draw(t, "span")
		end := AddDays(start, span)

		count := CountWeekendDays(start, end)
		days := DaysBetween(start, end) + 1
		weeks := days / 7

		// Every full week contributes exactly two weekend days.
		assert.GreaterOrEqual(t, count, 2*weeks)
		assert.LessOrEqual(t, count, 2*weeks+2)
	})
}
