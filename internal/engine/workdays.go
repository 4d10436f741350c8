package engine

import (
	"math"
	"time"

	"github.com/wetonku/go-weton/internal/config"
	"github.com/wetonku/go-weton/internal/data"
)

// WorkingDaysResult summarizes business days between two dates.
//
// Weekends is derived as totalDays - workingDays - weekdayHolidays rather
// than counted independently; it is a display figure only.
type WorkingDaysResult struct {
	TotalDays       int            `json:"totalDays"`
	WorkingDays     int            `json:"workingDays"`
	Weekends        int            `json:"weekends"`
	WeekdayHolidays int            `json:"weekdayHolidays"`
	Holidays        []data.Holiday `json:"holidays"`
}

// RetirementResult projects the retirement date and progress towards it.
type RetirementResult struct {
	RetirementDate       time.Time `json:"retirementDate"`
	Age                  int       `json:"age"`
	RetirementAge        int       `json:"retirementAge"`
	RemainingDays        int       `json:"remainingDays"`
	RemainingWorkingDays int       `json:"remainingWorkingDays"`
	CompletedPercentage  float64   `json:"completedPercentage"`
}

// CalculateWorkingDays counts Monday-Friday days in [start, end] and
// subtracts holidays from the static table that fall on a weekday in range.
func CalculateWorkingDays(start, end time.Time, holidays []data.Holiday) (WorkingDaysResult, error) {
	s, e := Midnight(start), Midnight(end)
	if e.Before(s) {
		return WorkingDaysResult{}, newValidationError(config.ErrRangeInverted)
	}

	total := DaysBetween(s, e) + 1

	working := 0
	for d := s; !d.After(e); d = d.AddDate(0, 0, 1) {
		if isWeekday(d) {
			working++
		}
	}

	var inRange []data.Holiday
	weekdayHolidays := 0
	for _, h := range holidays {
		day := Midnight(h.Date)
		if day.Before(s) || day.After(e) {
			continue
		}
		inRange = append(inRange, h)
		if isWeekday(day) {
			weekdayHolidays++
		}
	}

	working -= weekdayHolidays

	return WorkingDaysResult{
		TotalDays:       total,
		WorkingDays:     working,
		Weekends:        total - working - weekdayHolidays,
		WeekdayHolidays: weekdayHolidays,
		Holidays:        inRange,
	}, nil
}

func isWeekday(d time.Time) bool {
	wd := d.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// CalculateRetirement projects retirement at birth + retirementAge years and
// measures completion as elapsed(birth→now) / elapsed(birth→retirement),
// clamped to [0,100].
func CalculateRetirement(birth time.Time, retirementAge int, now time.Time, holidays []data.Holiday) (RetirementResult, error) {
	b, err := CalculateAge(birth, now)
	if err != nil {
		return RetirementResult{}, err
	}
	if retirementAge <= b.Years {
		return RetirementResult{}, newValidationError(config.ErrRetirementAge)
	}

	birthDay := Midnight(birth)
	retirementDate := birthDay.AddDate(retirementAge, 0, 0)

	elapsed := Midnight(now).Sub(birthDay)
	span := retirementDate.Sub(birthDay)
	pct := math.Min(math.Max(float64(elapsed)/float64(span)*100, 0), 100)

	remaining, err := CalculateWorkingDays(now, retirementDate, holidays)
	if err != nil {
		return RetirementResult{}, err
	}

	return RetirementResult{
		RetirementDate:       retirementDate,
		Age:                  b.Years,
		RetirementAge:        retirementAge,
		RemainingDays:        remaining.TotalDays,
		RemainingWorkingDays: remaining.WorkingDays,
		CompletedPercentage:  pct,
	}, nil
}
