// Package isodur parses ISO 8601 durations into calendar deltas.
//
// The grammar extends ISO 8601 with a leading sign and accepts both "."
// and "," as the decimal separator. The result is a calendar-relative
// Delta, not a fixed span: applying it to an instant honors month
// lengths and daylight saving transitions, so its absolute length
// depends on the anchor.
package isodur

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/ngrash/go-chrono/internal/datemath"
	"github.com/ngrash/go-chrono/tsparse"
)

// Errors
var (
	ErrFormat    = errors.New("parse duration")
	ErrAmbiguous = errors.New("ambiguous duration")
)

// formatError returns a duration format error carrying the original
// text, which unwraps to ErrFormat.
func formatError(text string) error {
	return fmt.Errorf("%w: %q", ErrFormat, text)
}

// ambiguousError returns an ambiguous duration error carrying the
// offending field, which unwraps to ErrAmbiguous.
func ambiguousError(field string) error {
	return fmt.Errorf("%w: %q does not resolve to a whole number of months", ErrAmbiguous, field)
}

var durationRE = regexp.MustCompile(
	`^(?P<sign>[+-])?` +
		`P` +
		`(?P<years>[0-9]+([,.][0-9]+)?Y)?` +
		`(?P<months>[0-9]+([,.][0-9]+)?M)?` +
		`(?P<weeks>[0-9]+([,.][0-9]+)?W)?` +
		`(?P<days>[0-9]+([,.][0-9]+)?D)?` +
		`(T` +
		`(?P<hours>[0-9]+([,.][0-9]+)?H)?` +
		`(?P<minutes>[0-9]+([,.][0-9]+)?M)?` +
		`(?P<seconds>[0-9]+([,.][0-9]+)?S)?` +
		`)?$`)

// A Delta is a signed calendar-relative offset. Years and months are
// whole numbers because their absolute length is context-dependent; the
// remaining components are fixed-duration units and may be fractional.
// A Delta is a value: arithmetic produces new values.
type Delta struct {
	Years, Months                        int
	Weeks, Days, Hours, Minutes, Seconds float64
}

// Parse parses an ISO 8601 duration.
//
// Fractional months are rejected with ErrAmbiguous because a fraction of
// a month has no defined length. Fractional years are accepted only when
// the fraction resolves to a whole number of months: "P0.5Y" is six
// months, "P0.4Y" is ErrAmbiguous. A leading sign negates every
// component.
//
// Text that does not match the grammar is given one fallback
// interpretation: the leading "P" is stripped and the remainder parsed
// as a date-time literal whose fields become the corresponding Delta
// components. Text failing both interpretations yields ErrFormat.
func Parse(text string) (Delta, error) {
	m := durationRE.FindStringSubmatch(text)
	if m == nil {
		return parseDateLiteral(text)
	}

	field := func(name string) string {
		return m[durationRE.SubexpIndex(name)]
	}

	sign := 1
	if field("sign") == "-" {
		sign = -1
	}

	years, extraMonths, err := parseYears(field("years"))
	if err != nil {
		return Delta{}, err
	}
	months, err := parseMonths(field("months"))
	if err != nil {
		return Delta{}, err
	}

	f := float64(sign)
	return Delta{
		Years:   sign * years,
		Months:  sign * (months + extraMonths),
		Weeks:   f * value(field("weeks")),
		Days:    f * value(field("days")),
		Hours:   f * value(field("hours")),
		Minutes: f * value(field("minutes")),
		Seconds: f * value(field("seconds")),
	}, nil
}

// value converts a matched duration field to its numeric value. The
// match includes the trailing unit letter; an absent field is zero.
// The decimal fraction may use either a comma or a full stop, as in
// "P0,5D" or "P0.5D".
func value(field string) float64 {
	if field == "" {
		return 0
	}
	v, _ := strconv.ParseFloat(strings.ReplaceAll(field[:len(field)-1], ",", "."), 64)
	return v
}

// parseYears splits a years field into whole years and the months its
// fraction stands for. A fraction that does not land on a whole number
// of months is ambiguous.
func parseYears(field string) (years, months int, err error) {
	if field == "" {
		return 0, 0, nil
	}
	v := value(field)
	years = int(v)
	if float64(years) == v {
		return years, 0, nil
	}
	m := (v - float64(years)) * 12
	if float64(int(m)) != m {
		return 0, 0, ambiguousError(field)
	}
	return years, int(m), nil
}

// parseMonths rejects fractional month values: a fraction of a month has
// no defined exact length.
func parseMonths(field string) (int, error) {
	if field == "" {
		return 0, nil
	}
	v := value(field)
	if float64(int(v)) != v {
		return 0, ambiguousError(field)
	}
	return int(v), nil
}

// parseDateLiteral interprets "P<date-time>" as a Delta whose components
// are the date-time fields themselves, e.g. "P0001-02-03T04:05:06" is
// one year, two months, three days, four hours, five minutes and six
// seconds.
func parseDateLiteral(text string) (Delta, error) {
	if !strings.HasPrefix(text, "P") {
		return Delta{}, formatError(text)
	}
	in, err := tsparse.Parse(text[1:])
	if err != nil {
		return Delta{}, formatError(text)
	}
	return Delta{
		Years:   in.Year(),
		Months:  int(in.Month()),
		Days:    float64(in.Day()),
		Hours:   float64(in.Hour()),
		Minutes: float64(in.Minute()),
		Seconds: float64(in.Second()),
	}, nil
}

// IsZero reports whether every component of d is zero.
func (d Delta) IsZero() bool {
	return d == Delta{}
}

// Neg returns d with every component negated.
func (d Delta) Neg() Delta {
	return Delta{
		Years:   -d.Years,
		Months:  -d.Months,
		Weeks:   -d.Weeks,
		Days:    -d.Days,
		Hours:   -d.Hours,
		Minutes: -d.Minutes,
		Seconds: -d.Seconds,
	}
}

// AddTo applies d to t using calendar-aware addition. The year and month
// components move through the calendar, clamping the day to the target
// month's length (one month after January 31 is the last day of
// February). The fixed-duration components are then added as elapsed
// time with microsecond resolution.
func (d Delta) AddTo(t time.Time) time.Time {
	year, month, day := t.Date()
	m := int(month) - 1 + d.Months + 12*d.Years
	year, m = norm(year, m, 12)
	month = time.Month(m + 1)
	if dim := datemath.DaysIn(month, year); day > dim {
		day = dim
	}
	shifted := time.Date(year, month, day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())

	seconds := (d.Weeks*7+d.Days)*24*3600 + d.Hours*3600 + d.Minutes*60 + d.Seconds
	return shifted.Add(time.Duration(math.Round(seconds*1e6)) * time.Microsecond)
}

// Fixed materializes d into a flat elapsed span by applying it to a
// reference instant and subtracting the reference back out. This makes
// the calendar-relative components concrete for that specific anchor. A
// zero ref means the current instant in UTC.
func (d Delta) Fixed(ref time.Time) time.Duration {
	if ref.IsZero() {
		ref = time.Now().UTC()
	}
	return d.AddTo(ref).Sub(ref)
}

// norm returns nhi, nlo such that
//
//	hi * base + lo == nhi * base + nlo
//	0 <= nlo < base
func norm(hi, lo, base int) (nhi, nlo int) {
	if lo < 0 {
		n := (-lo-1)/base + 1
		hi -= n
		lo += n * base
	}
	if lo >= base {
		n := lo / base
		hi += n
		lo -= n * base
	}
	return hi, lo
}
