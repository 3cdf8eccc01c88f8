// Package date provides a calendar date free of clock time and time zone.
//
// The standard library's time.Time is always a specific point in time in
// a specific zone, which makes it an awkward carrier for date-only values
// such as business days: it is never canonically clear which clock time
// and zone stand in for the date. Date keeps only the calendar fields and
// converts to time.Time explicitly when a zone is chosen.
package date

import (
	"fmt"
	"time"
)

// A Date is a calendar date in the proleptic Gregorian calendar.
// Dates are comparable with ==.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// New returns the Date with the given fields. The arguments may be
// outside their usual ranges and will be normalized during the
// conversion, just as for time.Date. For example, October 32 converts to
// November 1.
func New(year int, month time.Month, day int) Date {
	return Of(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// Of returns the Date on which t falls, in t's location.
func Of(t time.Time) Date {
	year, month, day := t.Date()
	return Date{year, month, day}
}

// Today returns the current date in the given location.
func Today(loc *time.Location) Date {
	return Of(time.Now().In(loc))
}

// Time returns the given moment of the date in the given location.
func (d Date) Time(hour, min, sec, nsec int, loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, hour, min, sec, nsec, loc)
}

// AddDays returns the date n calendar days after d. n may be negative.
func (d Date) AddDays(n int) Date {
	return Of(d.Time(0, 0, 0, 0, time.UTC).AddDate(0, 0, n))
}

// Weekday returns the day of the week specified by d.
func (d Date) Weekday() time.Weekday {
	return d.Time(0, 0, 0, 0, time.UTC).Weekday()
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// String returns the date in ISO 8601 form, e.g. "2017-11-02".
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}
