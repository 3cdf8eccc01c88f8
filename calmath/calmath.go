// Package calmath provides timezone-correct calendar arithmetic: grid
// rounding, day and month boundaries, business-day stepping and
// normalization of mixed date and instant values.
//
// All operations are pure functions of their inputs. Grid rounding works
// on the wall clock of the instant's own zone, so a 15 minute grid stays
// a 15 minute grid across daylight saving transitions instead of being
// shifted by the UTC offset.
package calmath

import (
	"fmt"
	"math/bits"
	"time"

	"github.com/ngrash/go-chrono/date"
	"github.com/ngrash/go-chrono/internal/datemath"
	"github.com/ngrash/go-chrono/tsparse"
)

// The minimum and maximum representable instants.
var (
	MinTime = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)
	MaxTime = time.Date(9999, time.December, 31, 23, 59, 59, 999999000, time.UTC)
)

// Localize reinterprets the wall clock reading of t as local to loc,
// discarding whatever zone t carried.
func Localize(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
}

// DayStart returns midnight of d in loc.
func DayStart(d date.Date, loc *time.Location) time.Time {
	return d.Time(0, 0, 0, 0, loc)
}

// DayEnd returns the last second of d in loc, 23:59:59.
func DayEnd(d date.Date, loc *time.Location) time.Time {
	return d.Time(23, 59, 59, 0, loc)
}

// MonthStart returns midnight of the first day of the month in loc.
func MonthStart(year int, month time.Month, loc *time.Location) time.Time {
	return DayStart(date.Date{Year: year, Month: month, Day: 1}, loc)
}

// MonthEnd returns the last second of the last day of the month in loc.
// Month lengths follow the proleptic Gregorian calendar including leap
// years.
func MonthEnd(year int, month time.Month, loc *time.Location) time.Time {
	return DayEnd(date.Date{Year: year, Month: month, Day: datemath.DaysIn(month, year)}, loc)
}

// IsBusinessDay reports whether d falls on Monday through Friday.
func IsBusinessDay(d date.Date) bool {
	wd := d.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// NextBusinessDay returns the first business day after d. The starting
// date is never returned, even if it is a business day itself.
func NextBusinessDay(d date.Date) date.Date {
	return stepBusinessDay(d, 1)
}

// PreviousBusinessDay returns the first business day before d. The
// starting date is never returned, even if it is a business day itself.
func PreviousBusinessDay(d date.Date) date.Date {
	return stepBusinessDay(d, -1)
}

func stepBusinessDay(d date.Date, dir int) date.Date {
	next := d.AddDays(dir)
	for !IsBusinessDay(next) {
		next = next.AddDays(dir)
	}
	return next
}

// Floor rounds t down to the previous multiple of grid, measured on the
// wall clock of t's zone from the minimum representable instant. An
// instant already on the grid is returned unchanged. A grid that is not
// positive returns t unchanged.
func Floor(t time.Time, grid time.Duration) time.Time {
	if grid <= 0 {
		return t
	}
	r := gridRemainder(t, grid)
	if r == 0 {
		return t
	}
	return addWall(t, -r)
}

// Ceil rounds t up to the next multiple of grid, measured on the wall
// clock of t's zone from the minimum representable instant. An instant
// already on the grid is returned unchanged. A grid that is not positive
// returns t unchanged.
func Ceil(t time.Time, grid time.Duration) time.Time {
	if grid <= 0 {
		return t
	}
	r := gridRemainder(t, grid)
	if r == 0 {
		return t
	}
	return addWall(t, grid-r)
}

// gridRemainder returns the offset of t's wall clock reading from the
// previous grid line. The elapsed span since year 1 overflows
// time.Duration, so the modulo is taken in 128-bit arithmetic.
func gridRemainder(t time.Time, grid time.Duration) time.Duration {
	w := Localize(t, time.UTC)
	sec := uint64(w.Unix() - MinTime.Unix())

	hi, lo := bits.Mul64(sec, uint64(time.Second))
	lo, carry := bits.Add64(lo, uint64(w.Nanosecond()), 0)
	hi += carry
	g := uint64(grid)
	_, rem := bits.Div64(hi%g, lo, g)
	return time.Duration(rem)
}

// addWall shifts the wall clock reading of t by d and reattaches t's
// zone.
func addWall(t time.Time, d time.Duration) time.Time {
	return Localize(Localize(t, time.UTC).Add(d), t.Location())
}

// CommonZone derives a single zone from a mix of dates and instants: the
// zone of the first zone-bearing instant encountered, else UTC. Accepted
// value types are date.Date, tsparse.Instant and time.Time; a plain
// time.Time always bears its zone.
func CommonZone(values ...any) *time.Location {
	for _, v := range values {
		switch x := v.(type) {
		case tsparse.Instant:
			if x.Zoned {
				return x.Location()
			}
		case time.Time:
			return x.Location()
		}
	}
	return time.UTC
}

// Normalize converts a mix of dates and instants to mutually comparable
// zone-aware times under the zone chosen by CommonZone. Dates become
// that zone's day start and naive instants are localized to it;
// zone-bearing instants pass through unchanged.
func Normalize(values ...any) ([]time.Time, error) {
	loc := CommonZone(values...)
	out := make([]time.Time, len(values))
	for i, v := range values {
		switch x := v.(type) {
		case date.Date:
			out[i] = DayStart(x, loc)
		case tsparse.Instant:
			if x.Zoned {
				out[i] = x.Time
			} else {
				out[i] = Localize(x.Time, loc)
			}
		case time.Time:
			out[i] = x
		default:
			return nil, fmt.Errorf("cannot normalize value of type %T", v)
		}
	}
	return out, nil
}
