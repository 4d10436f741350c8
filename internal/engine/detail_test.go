package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribeAge_Formats(t *testing.T) {
	birth := time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 7, 20, 0, 0, 0, 0, time.UTC)

	b, err := CalculateAge(birth, now)
	require.NoError(t, err)
	require.Equal(t, 34, b.Years)
	require.Equal(t, 2, b.Months)
	require.Equal(t, 5, b.Days)

	d := DescribeAge(b, birth, now)
	assert.Equal(t, "34 tahun", d.Short)
	assert.Equal(t, "34 tahun 2 bulan", d.Medium)
	assert.Equal(t, "34 tahun 2 bulan 5 hari", d.Long)
	assert.Contains(t, d.Exact, "34 tahun 2 bulan 5 hari")
	assert.Contains(t, d.Exact, "jam")
}

// TestHumanAge checks the leading-zero-unit omission. Only leading zeros
// drop; an embedded zero month stays so the phrase remains unambiguous.
func TestHumanAge(t *testing.T) {
	tests := []struct {
		name string
		b    AgeBreakdown
		want string
	}{
		{"Days only", AgeBreakdown{Years: 0, Months: 0, Days: 12}, "12 hari"},
		{"Months and days", AgeBreakdown{Years: 0, Months: 5, Days: 2}, "5 bulan dan 2 hari"},
		{"Embedded zero month kept", AgeBreakdown{Years: 1, Months: 0, Days: 3}, "1 tahun, 0 bulan dan 3 hari"},
		{"Full form", AgeBreakdown{Years: 34, Months: 2, Days: 5}, "34 tahun, 2 bulan dan 5 hari"},
		{"Newborn", AgeBreakdown{}, "0 hari"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, humanAge(tt.b))
		})
	}
}

func TestDescribeAge_LifePercentage(t *testing.T) {
	birth := time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)

	b, err := CalculateAge(birth, now)
	require.NoError(t, err)

	d := DescribeAge(b, birth, now)
	// 12419 days against an 80-year expectancy (29220 days).
	assert.InDelta(t, 42.50, d.LifePercentage, 0.01)
	assert.Equal(t, d.LifePercentageExact, d.LifePercentage, "No clamping below 100")

	// A 150-year-old input exceeds expectancy; display value clamps, exact
	// value does not.
	old, err := CalculateAge(time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	dOld := DescribeAge(old, time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, float64(100), dOld.LifePercentage)
	assert.Greater(t, dOld.LifePercentageExact, float64(100))
}

func TestDescribeAge_NamedMilestones(t *testing.T) {
	birth := time.Date(2007, 3, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)

	b, err := CalculateAge(birth, now)
	require.NoError(t, err)

	d := DescribeAge(b, birth, now)

	assert.NotEmpty(t, d.Passed)
	assert.LessOrEqual(t, len(d.Passed), 5)
	assert.LessOrEqual(t, len(d.Upcoming), 3)

	for i := 1; i < len(d.Passed); i++ {
		assert.False(t, d.Passed[i].Date.Before(d.Passed[i-1].Date), "Passed list sorted by date")
	}
	for _, m := range d.Passed {
		assert.False(t, m.Date.After(Midnight(now)), "%s is not passed yet", m.Label)
	}
	for _, m := range d.Upcoming {
		assert.True(t, m.Date.After(Midnight(now)), "%s already passed", m.Label)
	}

	// A 17-year-old's next year landmark is legal adulthood at 18.
	var labels []string
	for _, m := range d.Upcoming {
		labels = append(labels, m.Label)
	}
	assert.Contains(t, labels, "Legal Adult")
}

func TestFormatThousands(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1.000"},
		{12419, "12.419"},
		{25000000, "25.000.000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatThousands(tt.in), "%d", tt.in)
	}
}
