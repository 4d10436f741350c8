package engine

import (
	"time"

	"github.com/wetonku/go-weton/internal/config"
)

// WetonCriteria selects dates by weekday name and pasaran, e.g. the classic
// "Jumat Kliwon". Both fields use the canonical casing of the cycle tables.
type WetonCriteria struct {
	Day     string `json:"day"`
	Pasaran string `json:"pasaran"`
}

// ValidCriteria reports whether both criteria name real cycle members.
func ValidCriteria(c WetonCriteria) error {
	if _, ok := dayIndex(c.Day); !ok {
		return newValidationError(config.ErrUnknownDayName)
	}
	if _, ok := pasaranNeptu[c.Pasaran]; !ok {
		return newValidationError(config.ErrUnknownPasaran)
	}
	return nil
}

func dayIndex(name string) (int, bool) {
	for i, d := range dayNames {
		if d == name {
			return i, true
		}
	}
	return 0, false
}

// FindSpecialDates returns the next count dates on or after startDate whose
// Weton matches the criteria.
//
// The first hit is found by a linear scan bounded at 40 days: every valid
// (day, pasaran) pair recurs within the 35-day Selapan cycle, so the bound is
// a safety margin, not a tuning knob. Subsequent hits are exactly 35 days
// apart, so no further scanning is needed. An empty slice means no match
// within the bound; that cannot happen for criteria naming real cycle
// members.
func FindSpecialDates(startDate time.Time, criteria WetonCriteria, count int) []time.Time {
	if count <= 0 {
		return nil
	}

	first, ok := scanFirstMatch(Midnight(startDate), criteria)
	if !ok {
		return nil
	}

	dates := make([]time.Time, 0, count)
	dates = append(dates, first)
	for len(dates) < count {
		dates = append(dates, dates[len(dates)-1].AddDate(0, 0, config.SelapanCycleDays))
	}
	return dates
}

func scanFirstMatch(start time.Time, criteria WetonCriteria) (time.Time, bool) {
	for i := 0; i < config.SelapanScanBound; i++ {
		candidate := start.AddDate(0, 0, i)
		w := CalculateWeton(candidate)
		if w.Day == criteria.Day && w.Pasaran == criteria.Pasaran {
			return candidate, true
		}
	}
	return time.Time{}, false
}
