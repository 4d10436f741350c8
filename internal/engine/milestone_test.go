package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScanMilestones evaluates the catalog against the 34-year reference
// breakdown (12419 total days).
func TestScanMilestones(t *testing.T) {
	birth := time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)

	b, err := CalculateAge(birth, now)
	require.NoError(t, err)

	report := ScanMilestones(b, now)
	require.Len(t, report.Milestones, len(thresholdCatalog))

	byLabel := make(map[string]Milestone)
	for _, m := range report.Milestones {
		byLabel[m.Label] = m
	}

	m10k := byLabel["10.000 Hari"]
	assert.True(t, m10k.Reached)
	assert.Equal(t, 0, m10k.DaysUntil, "Reached milestones report zero days until")
	assert.Equal(t, float64(100), m10k.Percentage, "Reached milestones clamp at 100")
	assert.True(t, m10k.Date.Before(now), "Crossing moment lies in the past")

	m15k := byLabel["15.000 Hari"]
	assert.False(t, m15k.Reached)
	assert.Equal(t, 2581, m15k.DaysUntil, "15000 - 12419 days remaining")
	assert.InDelta(t, 82.79, m15k.Percentage, 0.01)
	assert.True(t, m15k.Date.After(now))

	mSec := byLabel["1 Miliar Detik"]
	assert.True(t, mSec.Reached, "12419 days exceed one billion seconds")
}

func TestScanMilestones_PercentageBounds(t *testing.T) {
	birth := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	b, err := CalculateAge(birth, now)
	require.NoError(t, err)

	report := ScanMilestones(b, now)
	for _, m := range report.Milestones {
		assert.GreaterOrEqual(t, m.Percentage, float64(0), "%s", m.Label)
		assert.LessOrEqual(t, m.Percentage, float64(100), "%s", m.Label)
		if m.Reached {
			assert.Equal(t, 0, m.DaysUntil, "%s", m.Label)
		} else {
			assert.Greater(t, m.DaysUntil, 0, "%s", m.Label)
		}
	}
}

func TestScanMilestones_UpcomingOrdering(t *testing.T) {
	birth := time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)

	b, err := CalculateAge(birth, now)
	require.NoError(t, err)

	upcoming := ScanMilestones(b, now).Upcoming
	require.Len(t, upcoming, 3)

	for i, m := range upcoming {
		assert.False(t, m.Reached, "Upcoming entries are pending by definition")
		if i > 0 {
			assert.GreaterOrEqual(t, m.DaysUntil, upcoming[i-1].DaysUntil,
				"Upcoming list sorted by proximity")
		}
	}
	assert.Equal(t, "15.000 Hari", upcoming[0].Label, "Nearest pending threshold")
}

func TestYearProgress(t *testing.T) {
	report := ScanMilestones(AgeBreakdown{}, time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC))

	yp := report.Year
	assert.Equal(t, 366, yp.DaysInYear, "2024 is a leap year")
	assert.Equal(t, 136, yp.DaysElapsed, "May 15 is day 136 of a leap year")
	assert.Equal(t, 230, yp.DaysRemaining)
	assert.InDelta(t, 37.16, yp.Percentage, 0.01)

	nonLeap := ScanMilestones(AgeBreakdown{}, time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)).Year
	assert.Equal(t, 365, nonLeap.DaysInYear)
	assert.Equal(t, 0, nonLeap.DaysRemaining)
	assert.InDelta(t, 100.0, nonLeap.Percentage, 0.001)
}
