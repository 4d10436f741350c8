package engine

import (
	"time"

	"github.com/wetonku/go-weton/internal/config"
	"github.com/wetonku/go-weton/internal/data"
)

// BiologicalEstimate holds the multiplicative "fun fact" figures derived
// from elapsed time. Deterministic arithmetic, no correctness claim beyond
// that.
type BiologicalEstimate struct {
	Heartbeats int64   `json:"heartbeats"`
	Breaths    int64   `json:"breaths"`
	SleepDays  int64   `json:"sleepDays"`
	SleepYears float64 `json:"sleepYears"`
}

// EstimateBiological derives resting-average body statistics from the
// breakdown's minute and day totals.
func EstimateBiological(b AgeBreakdown) BiologicalEstimate {
	sleepDays := b.TotalDays / config.SleepFractionOfDay
	return BiologicalEstimate{
		Heartbeats: b.TotalMinutes * config.RestingHeartRatePerMin,
		Breaths:    b.TotalMinutes * config.BreathsPerMin,
		SleepDays:  sleepDays,
		SleepYears: float64(sleepDays) / config.DaysPerYear,
	}
}

// RelativityEstimate holds the ratio-based novelty statistics.
type RelativityEstimate struct {
	// IndependencePercentage is the user's lifetime as a share of the time
	// since the Indonesian proclamation of independence (1945-08-17).
	IndependencePercentage float64 `json:"independencePercentage"`

	// ProductGenerations counts entries of the release timeline the user has
	// lived through (released on or after their birth date).
	ProductGenerations int `json:"productGenerations"`

	// CosmicMillis compresses the universe's age to a single day and maps the
	// user's lifetime onto it, in milliseconds.
	CosmicMillis float64 `json:"cosmicMillis"`
}

// EstimateRelativity computes the comparison statistics for a birth date.
func EstimateRelativity(birth, now time.Time, releases []data.ProductRelease) RelativityEstimate {
	lived := now.Sub(Midnight(birth))
	sinceIndependence := now.Sub(config.IndependenceDate)

	generations := 0
	birthDay := Midnight(birth)
	for _, r := range releases {
		if !r.Date.Before(birthDay) {
			generations++
		}
	}

	ageYears := float64(lived) / (config.DaysPerYear * hoursPerDay * float64(time.Hour))

	return RelativityEstimate{
		IndependencePercentage: float64(lived) / float64(sinceIndependence) * 100,
		ProductGenerations:     generations,
		CosmicMillis:           ageYears / config.UniverseAgeYears * msPerDay,
	}
}
