// Package engine implements the calendrical and identity calculation core:
// age breakdowns, the Javanese Weton/Neptu system, Western zodiac, Chinese
// Shio, commemorative (haul) dates, milestone scanning, working-day counting
// and the derived novelty estimates.
//
// Every function is a pure computation over its inputs plus an explicit "now";
// nothing in this package reads the system clock, performs I/O or holds state.
package engine

import "time"

const (
	hoursPerDay    = 24
	daysPerWeek    = 7
	monthsPerYear  = 12
	msPerDay       = hoursPerDay * 60 * 60 * 1000
	februaryDay29  = 29
	februaryDay28  = 28
	leapDayDivisor = 4
)

// IsLeapYear reports whether a year is a Gregorian leap year.
// Years divisible by 100 but not 400 are not leap (1900 is not, 2000 is).
func IsLeapYear(year int) bool {
	if year%400 == 0 {
		return true
	}
	return year%100 != 0 && year%leapDayDivisor == 0
}

// DaysInMonth returns the exact day count of a calendar month.
func DaysInMonth(year int, month time.Month) int {
	// Day 0 of the next month normalizes to the last day of this month.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// IsLeapDayBirthday reports whether a date is February 29.
func IsLeapDayBirthday(date time.Time) bool {
	return date.Month() == time.February && date.Day() == februaryDay29
}

// NextLeapDayBirthday resolves the next birthday observance for a person born
// on February 29, seen from fromDate. In non-leap years the conventional
// substitute is February 28.
//
// Note: CalculateAge applies a different substitute (March 1) inside its
// next-birthday field. The two policies are deliberately kept separate; see
// DESIGN.md.
//
// Returns ErrNotLeapDayBirth when birthDate is not February 29; that is a
// caller bug, not a user-facing condition.
func NextLeapDayBirthday(birthDate, fromDate time.Time) (time.Time, error) {
	if !IsLeapDayBirthday(birthDate) {
		return time.Time{}, ErrNotLeapDayBirth
	}

	from := Midnight(fromDate)
	candidate := leapDayObservance(from.Year())
	if candidate.Before(from) {
		candidate = leapDayObservance(from.Year() + 1)
	}
	return candidate, nil
}

func leapDayObservance(year int) time.Time {
	day := februaryDay28
	if IsLeapYear(year) {
		day = februaryDay29
	}
	return time.Date(year, time.February, day, 0, 0, 0, 0, time.UTC)
}

// Midnight truncates a timestamp to its UTC calendar date.
// All cyclical day arithmetic in this package runs on these normalized dates.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the whole calendar days from a to b (negative when b
// precedes a). Both endpoints are normalized to midnight first.
func DaysBetween(a, b time.Time) int {
	return int(Midnight(b).Sub(Midnight(a)) / (hoursPerDay * time.Hour))
}

// EuclidMod normalizes x into [0, n) regardless of sign. Go's % operator
// returns negative remainders for negative dividends, which would break the
// cyclical lookups for dates before their anchor.
func EuclidMod(x, n int) int {
	return ((x % n) + n) % n
}
