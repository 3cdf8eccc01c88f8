// Package tsparse parses textual timestamps into instants.
//
// The fast path recognizes exactly the machine-generated profile
//
//	YYYY-MM-DDThh:mm[:ss[.fff|.ffffff]][Z|±hh:mm|±hhmm]
//
// by inspecting fixed character positions instead of tokenizing. Any
// structural mismatch defers the full original text to the generic
// fallback parser (github.com/araddon/dateparse), a one-shot escalation.
package tsparse

import (
	"errors"
	"fmt"
	"time"

	"github.com/araddon/dateparse"

	"github.com/ngrash/go-chrono/date"
	"github.com/ngrash/go-chrono/internal/datemath"
)

// Errors
var (
	ErrTimestampFormat = errors.New("parse timestamp")
	ErrDateFormat      = errors.New("parse date")
)

// timestampFormatError returns a timestamp format error carrying the
// original text, which unwraps to ErrTimestampFormat.
func timestampFormatError(text string) error {
	return fmt.Errorf("%w: %q", ErrTimestampFormat, text)
}

// dateFormatError returns a date format error carrying the original
// text, which unwraps to ErrDateFormat.
func dateFormatError(text string) error {
	return fmt.Errorf("%w: %q", ErrDateFormat, text)
}

// An Instant is a parsed timestamp. Zoned reports whether the value
// carries zone information: an instant parsed from text without a zone
// designator is naive and holds its wall clock reading in UTC.
type Instant struct {
	time.Time
	Zoned bool
}

// Parse parses text into an Instant. Text without a zone designator
// yields a naive Instant.
func Parse(text string) (Instant, error) {
	return ParseIn(text, nil)
}

// ParseIn parses text into an Instant. If def is non-nil and the text
// carries no zone designator, the wall clock fields are interpreted as
// local to def. An explicit zone or offset in the text always wins over
// def.
func ParseIn(text string, def *time.Location) (Instant, error) {
	c, ok := scan(text)
	if !ok {
		return parseFallback(text, def)
	}
	loc, zoned := c.loc, true
	if loc == nil {
		if def != nil {
			loc = def
		} else {
			loc, zoned = time.UTC, false
		}
	}
	t := time.Date(c.year, c.month, c.day, c.hour, c.min, c.sec, c.micro*1000, loc)
	return Instant{Time: t, Zoned: zoned}, nil
}

// components is the result of a successful fast-path scan. loc is nil
// when the text carried no zone designator.
type components struct {
	year       int
	month      time.Month
	day        int
	hour, min  int
	sec, micro int
	loc        *time.Location
}

// scan matches text against the fast-path profile. A false return means
// the text did not match and the caller should defer to the fallback
// parser; it never means a partial result.
func scan(text string) (components, bool) {
	var c components
	if len(text) < 16 {
		return c, false
	}
	if text[4] != '-' || text[7] != '-' || text[10] != 'T' || text[13] != ':' {
		return c, false
	}
	year, ok1 := digits(text, 0, 4)
	month, ok2 := digits(text, 5, 7)
	day, ok3 := digits(text, 8, 10)
	hour, ok4 := digits(text, 11, 13)
	min, ok5 := digits(text, 14, 16)
	if !ok1 || !ok2 || !ok3 || !ok4 || !ok5 {
		return c, false
	}

	i := 16
	var sec int
	if i < len(text) && text[i] == ':' {
		if len(text) < 19 {
			return c, false
		}
		var ok bool
		if sec, ok = digits(text, 17, 19); !ok {
			return c, false
		}
		i = 19
	}

	// A fraction is only valid directly after a seconds field;
	// "hh:mm.fff" is not part of the profile.
	var micro int
	if i == 19 && i < len(text) && text[i] == '.' {
		j := i + 1
		for j < len(text) && text[j] >= '0' && text[j] <= '9' {
			j++
		}
		frac, _ := digits(text, i+1, j)
		// Exactly 3 digits are milliseconds, exactly 6 are
		// microseconds. Any other count is a mismatch.
		switch j - (i + 1) {
		case 3:
			micro = frac * 1000
		case 6:
			micro = frac
		default:
			return c, false
		}
		i = j
	}

	var loc *time.Location
	switch {
	case i == len(text):
		// no zone designator
	case text[i] == 'Z' && i == len(text)-1:
		loc = time.UTC
	case len(text)-i == 6 && (text[i] == '+' || text[i] == '-') && text[i+3] == ':':
		hh, ok1 := digits(text, i+1, i+3)
		mm, ok2 := digits(text, i+4, i+6)
		if !ok1 || !ok2 {
			return c, false
		}
		loc = fixedZone(text[i], hh, mm)
	case len(text)-i == 5 && (text[i] == '+' || text[i] == '-'):
		hh, ok1 := digits(text, i+1, i+3)
		mm, ok2 := digits(text, i+3, i+5)
		if !ok1 || !ok2 {
			return c, false
		}
		loc = fixedZone(text[i], hh, mm)
	default:
		return c, false
	}

	// Tolerate all-zero date fields from malformed producers by
	// clamping to the first valid value instead of rejecting.
	year = max(1, year)
	month = max(1, month)
	day = max(1, day)

	if month > 12 || day > datemath.DaysIn(time.Month(month), year) {
		return c, false
	}
	if hour > 23 || min > 59 || sec > 59 {
		return c, false
	}

	c.year, c.month, c.day = year, time.Month(month), day
	c.hour, c.min = hour, min
	c.sec, c.micro = sec, micro
	c.loc = loc
	return c, true
}

// probeZone exists to reveal whether the fallback parser honored a zone
// in the input: naive text parsed in probeZone yields a different
// instant than the same text parsed in UTC.
var probeZone = time.FixedZone("probe", 12*3600+34*60)

func parseFallback(text string, def *time.Location) (Instant, error) {
	utc, err := dateparse.ParseIn(text, time.UTC)
	if err != nil {
		return Instant{}, timestampFormatError(text)
	}
	if probe, err := dateparse.ParseIn(text, probeZone); err == nil && utc.Equal(probe) {
		return Instant{Time: utc, Zoned: true}, nil
	}
	if def != nil {
		t, err := dateparse.ParseIn(text, def)
		if err != nil {
			return Instant{}, timestampFormatError(text)
		}
		return Instant{Time: t, Zoned: true}, nil
	}
	return Instant{Time: utc, Zoned: false}, nil
}

// ParseDate parses text into a calendar date. The fast path recognizes
// exactly YYYY-MM-DD; anything else is deferred to the fallback parser
// and reduced to its date portion.
func ParseDate(text string) (date.Date, error) {
	if len(text) == 10 && text[4] == '-' && text[7] == '-' {
		y, ok1 := digits(text, 0, 4)
		m, ok2 := digits(text, 5, 7)
		d, ok3 := digits(text, 8, 10)
		if ok1 && ok2 && ok3 &&
			y >= 1 && m >= 1 && m <= 12 &&
			d >= 1 && d <= datemath.DaysIn(time.Month(m), y) {
			return date.Date{Year: y, Month: time.Month(m), Day: d}, nil
		}
	}
	t, err := dateparse.ParseIn(text, time.UTC)
	if err != nil {
		return date.Date{}, dateFormatError(text)
	}
	return date.Of(t), nil
}

// FromUnix converts a Unix timestamp in seconds to a time in loc.
// A nil loc means UTC.
func FromUnix(sec int64, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Unix(sec, 0).In(loc)
}

// FromUnixMilli converts a Unix timestamp in milliseconds to a time in
// loc. A nil loc means UTC.
func FromUnixMilli(msec int64, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.UnixMilli(msec).In(loc)
}

func fixedZone(sign byte, hh, mm int) *time.Location {
	offset := hh*3600 + mm*60
	if sign == '-' {
		offset = -offset
	}
	return time.FixedZone("", offset)
}

func digits(s string, i, j int) (int, bool) {
	n := 0
	for ; i < j; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}
