// Package datemath provides proleptic Gregorian calendar helpers shared
// by the parsing and calendar arithmetic packages.
package datemath

import "time"

// IsLeap determines if the year is a leap year.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysIn returns the number of days in a given month for a specific year.
func DaysIn(month time.Month, year int) int {
	if month == time.February {
		if IsLeap(year) {
			return 29
		}
		return 28
	}
	switch month {
	case time.April, time.June, time.September, time.November:
		return 30
	}
	return 31
}
