package config_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/wetonku/go-weton/internal/config"
)

// TestConstants_Integrity ensures critical constants are not empty or malformed.
// This prevents accidental deletion of keys required for runtime or API logic.
func TestConstants_Integrity(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"AppName", config.AppName},
		{"AppID", config.AppID},
		{"Version", config.Version},
		{"UserAgent", config.UserAgent},
		{"ICalVersion", config.ICalVersion},
		{"ICalProdid", config.ICalProdid},
		{"RouteCalendar", config.RouteCalendar},
		{"RouteAPIPrefix", config.RouteAPIPrefix},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEmpty(t, tt.value, "Critical constant %s should not be empty", tt.name)
		})
	}
}

// TestCalendarAnchors pins the epoch values the whole cyclical arithmetic
// hangs on. Changing either silently shifts every Weton in the system.
func TestCalendarAnchors(t *testing.T) {
	assert.Equal(t, time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC), config.WetonAnchor)
	assert.Equal(t, time.Monday, config.WetonAnchor.Weekday(), "The anchor is documented as a Monday Pahing")

	assert.Equal(t, time.Date(1945, 8, 17, 0, 0, 0, 0, time.UTC), config.IndependenceDate)
}

// TestDefaults_Sanity checks that default values make sense logically.
func TestDefaults_Sanity(t *testing.T) {
	assert.Greater(t, config.DefaultSyncMinutes, 0, "Default sync interval must be positive")
	assert.Equal(t, 2000, config.DefaultLeapYear, "Default leap year must be 2000 for consistency")
	assert.Equal(t, 35, config.SelapanCycleDays, "lcm of the 7-day week and 5-day pasaran")
	assert.GreaterOrEqual(t, config.SelapanScanBound, config.SelapanCycleDays,
		"Scan bound must cover at least one full cycle")
	assert.Greater(t, config.MaxAgeYears, 0)
	assert.Greater(t, config.LifeExpectancyYears, 0)

	assert.Equal(t, 30*time.Second, config.HTTPTimeout)
}

// TestUserAgent_Format ensures the UA string follows the standard format.
func TestUserAgent_Format(t *testing.T) {
	assert.True(t, strings.HasPrefix(config.UserAgent, "Go-Weton/"), "UserAgent must start with AppName/")
}

// TestTimeoutsAndLimits ensures that operational constraints are reasonable.
func TestTimeoutsAndLimits(t *testing.T) {
	t.Parallel()

	assert.Greater(t, config.HTTPTimeout, 0*time.Second, "HTTPTimeout must be positive")
	assert.LessOrEqual(t, config.HTTPTimeout, 2*time.Minute, "HTTPTimeout should not be excessively long")
	assert.Greater(t, config.ShutdownTimeout, 0*time.Second, "ShutdownTimeout must be positive")

	assert.Greater(t, config.MaxHTTPResponseSize, 0, "MaxHTTPResponseSize must be positive")
	assert.GreaterOrEqual(t, int64(config.MaxHTTPResponseSize), int64(50*1024*1024), "MaxHTTPResponseSize should be at least 50MB for real-world usage")
	assert.Less(t, int64(config.MaxHTTPResponseSize), int64(1*1024*1024*1024), "MaxHTTPResponseSize should stay under 1GB to protect RAM")
}
