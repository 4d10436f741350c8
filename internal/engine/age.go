package engine

import (
	"time"

	"github.com/wetonku/go-weton/internal/config"
)

// AgeBreakdown is the full result of an age computation.
//
// Years/Months/Days form a calendar-remainder decomposition: Months is the
// remainder after subtracting full years, Days the remainder after full years
// and months, so the three never double count. The Total* fields are
// independent whole-unit conversions of the elapsed wall-clock time and are
// not required to be mutually consistent with the decomposition.
type AgeBreakdown struct {
	Years  int `json:"years"`
	Months int `json:"months"`
	Days   int `json:"days"`

	TotalMonths  int64 `json:"totalMonths"`
	TotalWeeks   int64 `json:"totalWeeks"`
	TotalDays    int64 `json:"totalDays"`
	TotalHours   int64 `json:"totalHours"`
	TotalMinutes int64 `json:"totalMinutes"`
	TotalSeconds int64 `json:"totalSeconds"`

	NextBirthday time.Time `json:"nextBirthday"`
	NextAge      int       `json:"nextAge"`

	IsLeapYearBirth bool `json:"isLeapYearBirth"`
	IsLeapDayBirth  bool `json:"isLeapDayBirth"`

	CountdownMonths int `json:"countdownMonths"`
	CountdownDays   int `json:"countdownDays"`
	CountdownHours  int `json:"countdownHours"`
}

// ParseBirthDate parses and validates a user-entered YYYY-MM-DD birth date.
// Any failure is a ValidationError carrying the user-facing reason.
func ParseBirthDate(value string, now time.Time) (time.Time, error) {
	birth, err := time.Parse(config.DateFormatFullDash, value)
	if err != nil {
		return time.Time{}, newValidationError(config.ErrBirthDateFormat)
	}
	if err := ValidateBirthDate(birth, now); err != nil {
		return time.Time{}, err
	}
	return Midnight(birth), nil
}

// ValidateBirthDate enforces the input contract shared by every calculator:
// not in the future, year 1900 or later, and an implied age of at most 150.
func ValidateBirthDate(birth, now time.Time) error {
	if Midnight(birth).After(Midnight(now)) {
		return newValidationError(config.ErrBirthDateFuture)
	}
	if birth.Year() < config.MinBirthYear {
		return newValidationError(config.ErrBirthYearTooOld)
	}
	if birth.Year() < now.Year()-config.MaxAgeYears {
		return newValidationError(config.ErrAgeImplausible)
	}
	return nil
}

// CalculateAge converts (birth, now) into an AgeBreakdown.
// Returns a ValidationError when the birth date violates the input contract.
func CalculateAge(birth, now time.Time) (AgeBreakdown, error) {
	if err := ValidateBirthDate(birth, now); err != nil {
		return AgeBreakdown{}, err
	}

	birthDay := Midnight(birth)
	years, months, days := calendarDiff(birthDay, Midnight(now))

	elapsed := now.Sub(birthDay)
	totalDays := int64(DaysBetween(birthDay, now))

	next := nextBirthday(birthDay, now)

	b := AgeBreakdown{
		Years:  years,
		Months: months,
		Days:   days,

		TotalMonths:  int64(years)*monthsPerYear + int64(months),
		TotalWeeks:   totalDays / daysPerWeek,
		TotalDays:    totalDays,
		TotalHours:   int64(elapsed.Hours()),
		TotalMinutes: int64(elapsed.Minutes()),
		TotalSeconds: int64(elapsed.Seconds()),

		NextBirthday: next,
		NextAge:      next.Year() - birthDay.Year(),

		IsLeapYearBirth: IsLeapYear(birthDay.Year()),
		IsLeapDayBirth:  IsLeapDayBirthday(birthDay),
	}

	// The countdown is decomposed the same calendar-aware way as the age
	// itself. The hour remainder is totalHoursUntil % 24, a simplification
	// that can drift by an hour across DST transitions; acceptable for a
	// ticking display.
	cYears, cMonths, cDays := calendarDiff(Midnight(now), next)
	b.CountdownMonths = cYears*monthsPerYear + cMonths
	b.CountdownDays = cDays
	if until := next.Sub(now); until > 0 {
		b.CountdownHours = int(until.Hours()) % hoursPerDay
	}

	return b, nil
}

// calendarDiff decomposes the span from a to b (a <= b, both midnights) into
// full years, remaining months and remaining days, borrowing from the
// previous calendar month when the day-of-month is smaller.
func calendarDiff(a, b time.Time) (years, months, days int) {
	years = b.Year() - a.Year()
	months = int(b.Month()) - int(a.Month())
	days = b.Day() - a.Day()

	// Borrow whole months until the day remainder is non-negative. At most
	// two iterations: only a 29th-or-later birth day measured against early
	// March can leave the remainder negative after the first borrow.
	// The cursor sits on the first of the month so stepping back is exact;
	// AddDate from a late day-of-month would normalize through short months.
	prev := time.Date(b.Year(), b.Month(), 1, 0, 0, 0, 0, time.UTC)
	for days < 0 {
		months--
		prev = prev.AddDate(0, -1, 0)
		days += DaysInMonth(prev.Year(), prev.Month())
	}
	if months < 0 {
		years--
		months += monthsPerYear
	}
	return years, months, days
}

// nextBirthday returns the upcoming anniversary of the birth date.
//
// For a February 29 birth in a non-leap target year, time.Date normalizes the
// candidate to March 1. This is the documented policy for this field, intentionally
// different from NextLeapDayBirthday's February 28 substitute.
func nextBirthday(birthDay, now time.Time) time.Time {
	todayStart := Midnight(now)
	candidate := time.Date(now.Year(), birthDay.Month(), birthDay.Day(), 0, 0, 0, 0, time.UTC)
	if candidate.Before(todayStart) {
		candidate = time.Date(now.Year()+1, birthDay.Month(), birthDay.Day(), 0, 0, 0, 0, time.UTC)
	}
	return candidate
}
