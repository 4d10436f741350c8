package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wetonku/go-weton/internal/config"
)

func TestValidCriteria(t *testing.T) {
	assert.NoError(t, ValidCriteria(WetonCriteria{Day: "Jumat", Pasaran: "Kliwon"}))
	assert.NoError(t, ValidCriteria(WetonCriteria{Day: "Minggu", Pasaran: "Legi"}))

	err := ValidCriteria(WetonCriteria{Day: "Friday", Pasaran: "Kliwon"})
	require.Error(t, err, "English day names are not cycle members")
	assert.True(t, IsValidationError(err))

	err = ValidCriteria(WetonCriteria{Day: "Jumat", Pasaran: "kliwon"})
	require.Error(t, err, "Pasaran matching is case sensitive")
	assert.True(t, IsValidationError(err))
}

func TestFindSpecialDates(t *testing.T) {
	// 2024-01-19 is a Jumat Kliwon; search from New Year must land on it.
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	criteria := WetonCriteria{Day: "Jumat", Pasaran: "Kliwon"}

	dates := FindSpecialDates(start, criteria, 5)
	require.Len(t, dates, 5)

	assert.Equal(t, time.Date(2024, 1, 19, 0, 0, 0, 0, time.UTC), dates[0])

	for i, d := range dates {
		w := CalculateWeton(d)
		assert.Equal(t, criteria.Day, w.Day, "Result %d weekday", i)
		assert.Equal(t, criteria.Pasaran, w.Pasaran, "Result %d pasaran", i)
		if i > 0 {
			assert.Equal(t, config.SelapanCycleDays, DaysBetween(dates[i-1], d),
				"Consecutive matches must be one Selapan apart")
		}
	}
}

func TestFindSpecialDates_StartDateMatches(t *testing.T) {
	// A start date that already satisfies the criteria is the first result.
	start := time.Date(2024, 1, 19, 0, 0, 0, 0, time.UTC)
	dates := FindSpecialDates(start, WetonCriteria{Day: "Jumat", Pasaran: "Kliwon"}, 1)

	require.Len(t, dates, 1)
	assert.Equal(t, start, dates[0])
}

func TestFindSpecialDates_FirstMatchWithinOneCycle(t *testing.T) {
	// Any valid pair must be found within 35 days of any start date.
	start := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	for _, day := range dayNames {
		for _, pasaran := range PasaranCycle {
			dates := FindSpecialDates(start, WetonCriteria{Day: day, Pasaran: pasaran}, 1)
			require.Len(t, dates, 1, "%s %s", day, pasaran)
			assert.Less(t, DaysBetween(start, dates[0]), config.SelapanCycleDays,
				"%s %s found too far out", day, pasaran)
		}
	}
}

func TestFindSpecialDates_CountGuards(t *testing.T) {
	criteria := WetonCriteria{Day: "Senin", Pasaran: "Pahing"}
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Nil(t, FindSpecialDates(start, criteria, 0))
	assert.Nil(t, FindSpecialDates(start, criteria, -3))
}
