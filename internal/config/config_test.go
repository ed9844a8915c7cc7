package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-worldclock/internal/config"
)

// TestConstants_Integrity ensures critical constants are not empty or malformed.
// This prevents accidental deletion of keys required for runtime or UI logic.
func TestConstants_Integrity(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"AppName", config.AppName},
		{"AppID", config.AppID},
		{"Version", config.Version},
		{"DBFileName", config.DBFileName},
		{"LogFileName", config.LogFileName},
		{"StoreTableName", config.StoreTableName},
		{"StoreListOrder", config.StoreListOrder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEmpty(t, tt.value, "Critical constant %s should not be empty", tt.name)
		})
	}
}

// TestDefaults_Sanity checks that default values make sense logically.
func TestDefaults_Sanity(t *testing.T) {
	assert.Contains(t, config.SupportedLanguages, config.DefaultLanguage,
		"Default language must be among the supported languages")

	assert.Equal(t, 1*time.Second, config.DigitalTickInterval)
	assert.Less(t, config.HandTickInterval, config.DigitalTickInterval,
		"Analog hands must refresh faster than the digital list")
}

// TestDaytimeWindow ensures the day/night classification window stays a valid
// half-open hour range inside a single day.
func TestDaytimeWindow(t *testing.T) {
	assert.GreaterOrEqual(t, config.DaytimeStartHour, 0)
	assert.Less(t, config.DaytimeStartHour, config.DaytimeEndHour)
	assert.LessOrEqual(t, config.DaytimeEndHour, 24)
}

// TestDialGeometry ensures the angle constants describe a consistent dial.
func TestDialGeometry(t *testing.T) {
	t.Parallel()

	// 60 ticks of 6 degrees and 12 hours of 30 degrees both close the circle.
	assert.Equal(t, 360.0, config.SecondsPerMinute*config.DegreesPerTick)
	assert.Equal(t, 360.0, float64(config.HoursOnDial)*config.DegreesPerHour)

	// Hands stay inside the dial and keep their relative lengths.
	assert.Less(t, config.HourHandRatio, config.MinuteHandRatio)
	assert.Less(t, config.MinuteHandRatio, config.SecondHandRatio)
	assert.LessOrEqual(t, config.SecondHandRatio, float32(1.0))
}

// TestSeparators guards the persisted identifier format: changing the store
// separator would corrupt round-tripping of existing databases.
func TestSeparators(t *testing.T) {
	assert.Equal(t, ", ", config.UTCIdentifierSeparator)
	assert.Equal(t, ",", config.RegionInputSeparator)
}

// TestPermissions verifies owner-only access for created files and dirs.
func TestPermissions(t *testing.T) {
	assert.EqualValues(t, 0600, config.FilePermUserRW)
	assert.EqualValues(t, 0700, config.DirPermUserRWX)
}
