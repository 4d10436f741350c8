package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wetonku/go-weton/internal/data"
)

func TestCalculateWorkingDays(t *testing.T) {
	// 2024-01-01 is a Monday; the first week of January is a clean sample.
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC)

	holidays := []data.Holiday{
		{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Name: "Tahun Baru 2024", National: true},
		{Date: time.Date(2024, 2, 8, 0, 0, 0, 0, time.UTC), Name: "Isra Mikraj", National: true},
	}

	res, err := CalculateWorkingDays(start, end, holidays)
	require.NoError(t, err)

	assert.Equal(t, 7, res.TotalDays, "Range is inclusive on both ends")
	assert.Equal(t, 4, res.WorkingDays, "Five weekdays minus the New Year holiday")
	assert.Equal(t, 2, res.Weekends)
	assert.Equal(t, 1, res.WeekdayHolidays)
	require.Len(t, res.Holidays, 1, "Only holidays inside the range are reported")
	assert.Equal(t, "Tahun Baru 2024", res.Holidays[0].Name)
}

func TestCalculateWorkingDays_WeekendHoliday(t *testing.T) {
	// A holiday falling on a Saturday must not reduce the working count.
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC) // Saturday
	end := time.Date(2024, 6, 7, 0, 0, 0, 0, time.UTC)   // Friday

	holidays := []data.Holiday{
		{Date: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), Name: "Hari Lahir Pancasila", National: true},
	}

	res, err := CalculateWorkingDays(start, end, holidays)
	require.NoError(t, err)

	assert.Equal(t, 5, res.WorkingDays)
	assert.Equal(t, 0, res.WeekdayHolidays)
	assert.Len(t, res.Holidays, 1, "Weekend holidays still appear in the listing")
}

func TestCalculateWorkingDays_SingleDay(t *testing.T) {
	day := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC) // Wednesday
	res, err := CalculateWorkingDays(day, day, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, res.TotalDays)
	assert.Equal(t, 1, res.WorkingDays)

	sunday := time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC)
	res, err = CalculateWorkingDays(sunday, sunday, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, res.WorkingDays)
	assert.Equal(t, 1, res.Weekends)
}

func TestCalculateWorkingDays_InvertedRange(t *testing.T) {
	start := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := CalculateWorkingDays(start, end, nil)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestCalculateRetirement(t *testing.T) {
	birth := time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)

	res, err := CalculateRetirement(birth, 55, now, nil)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2045, 5, 15, 0, 0, 0, 0, time.UTC), res.RetirementDate)
	assert.Equal(t, 34, res.Age)
	assert.Equal(t, 55, res.RetirementAge)
	assert.InDelta(t, 61.82, res.CompletedPercentage, 0.05, "12419 of 20089 days elapsed")
	assert.Greater(t, res.RemainingDays, 0)
	assert.Greater(t, res.RemainingWorkingDays, 0)
	assert.Less(t, res.RemainingWorkingDays, res.RemainingDays,
		"Working days exclude weekends")
}

func TestCalculateRetirement_AlreadyRetired(t *testing.T) {
	birth := time.Date(1960, 1, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)

	_, err := CalculateRetirement(birth, 55, now, nil)
	require.Error(t, err, "Retirement age at or below current age is rejected")
	assert.True(t, IsValidationError(err))
}
