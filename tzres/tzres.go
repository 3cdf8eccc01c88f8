// Package tzres resolves time zone identifiers to locations.
//
// Identifiers are looked up in the IANA catalog first. On a miss the
// identifier is treated as a Windows zone display name, translated to its
// IANA form and looked up again. The resolved *time.Location is the zone
// handle used throughout the module; the catalog caches locations, so
// resolving the same identifier repeatedly returns the same handle.
package tzres

import (
	"errors"
	"fmt"
	"time"

	"github.com/ngrash/go-chrono/date"
	"github.com/ngrash/go-chrono/internal/winzones"
)

// ErrUnknownZone is returned when an identifier is found in neither the
// IANA catalog nor the Windows zone name table.
var ErrUnknownZone = errors.New("unknown time zone")

// unknownZoneError returns an unknown zone error carrying the original
// identifier, which unwraps to ErrUnknownZone.
func unknownZoneError(id string) error {
	return fmt.Errorf("%w: %q", ErrUnknownZone, id)
}

// Resolve returns the location for an IANA zone identifier or a Windows
// zone display name.
func Resolve(id string) (*time.Location, error) {
	// The catalog resolves "" to UTC; an empty identifier is a caller
	// bug, not a zone.
	if id == "" {
		return nil, unknownZoneError(id)
	}
	if loc, err := time.LoadLocation(id); err == nil {
		return loc, nil
	}
	iana, ok := winzones.ToIANA(id)
	if !ok {
		return nil, unknownZoneError(id)
	}
	loc, err := time.LoadLocation(iana)
	if err != nil {
		return nil, unknownZoneError(id)
	}
	return loc, nil
}

// CurrentOffsetHours resolves id and returns the whole-hour UTC offset
// the zone observes right now. Sub-hour offsets are truncated, which
// makes the result suitable for reporting but not for arithmetic.
func CurrentOffsetHours(id string) (int, error) {
	loc, err := Resolve(id)
	if err != nil {
		return 0, err
	}
	_, offset := time.Now().In(loc).Zone()
	return offset / 3600, nil
}

// ToWindows translates an IANA zone identifier to its Windows zone
// display name.
func ToWindows(iana string) (string, bool) {
	return winzones.ToWindows(iana)
}

// FromWindows translates a Windows zone display name to its canonical
// IANA identifier.
func FromWindows(name string) (string, bool) {
	return winzones.ToIANA(name)
}

// Now resolves id and returns the current time in that zone.
func Now(id string) (time.Time, error) {
	loc, err := Resolve(id)
	if err != nil {
		return time.Time{}, err
	}
	return time.Now().In(loc), nil
}

// Today resolves id and returns the current date in that zone.
func Today(id string) (date.Date, error) {
	loc, err := Resolve(id)
	if err != nil {
		return date.Date{}, err
	}
	return date.Today(loc), nil
}
