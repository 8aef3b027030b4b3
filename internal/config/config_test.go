package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-ringclock/internal/config"
)

// TestConstants_Integrity ensures critical constants are not empty or malformed.
func TestConstants_Integrity(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"AppName", config.AppName},
		{"AppID", config.AppID},
		{"Version", config.Version},
		{"LogFileName", config.LogFileName},
		{"TimeFormatHMS", config.TimeFormatHMS},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEmpty(t, tt.value, "Critical constant %s should not be empty", tt.name)
		})
	}
}

// TestGeometry_Sanity checks that the reference geometry is self-consistent.
func TestGeometry_Sanity(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 400.0, config.ReferenceSize)
	assert.Equal(t, 30.0, config.HandTailLength, "Tail length is fixed at 30 reference units")
	assert.Equal(t, 360.0, config.SegmentCount*config.SegmentSpanDeg, "Segments must cover the full dial")
	assert.Equal(t, 60.0, config.SegmentCount*config.BucketSeconds, "Buckets must cover a full minute")

	// The ring and markers must fit inside the reference square.
	assert.Less(t, config.RingRadius+config.MaxArcThickness/2, config.ReferenceSize/2)
	assert.Less(t, config.MarkerRadius+config.MarkerBaseHeight/2, config.ReferenceSize/2)
}

// TestDefaults_WithinSliderRanges guarantees the settings panel can represent every default.
func TestDefaults_WithinSliderRanges(t *testing.T) {
	t.Parallel()

	assert.GreaterOrEqual(t, config.DefaultArcThickness, config.MinArcThickness)
	assert.LessOrEqual(t, config.DefaultArcThickness, config.MaxArcThickness)
	assert.GreaterOrEqual(t, config.DefaultMarkerWidth, config.MinMarkerWidth)
	assert.LessOrEqual(t, config.DefaultMarkerWidth, config.MaxMarkerWidth)

	for _, w := range []float64{config.DefaultHourHandWidth, config.DefaultMinuteHandWidth, config.DefaultSecondHandWidth} {
		assert.GreaterOrEqual(t, w, config.MinHandWidth)
		assert.LessOrEqual(t, w, config.MaxHandWidth)
	}
	for _, l := range []float64{config.DefaultHourHandLength, config.DefaultMinuteHandLength, config.DefaultSecondHandLength} {
		assert.GreaterOrEqual(t, l, config.MinHandLength)
		assert.LessOrEqual(t, l, config.MaxHandLength)
	}
}

// TestFrameLoop_Timing ensures the frame loop runs at a display-like cadence.
func TestFrameLoop_Timing(t *testing.T) {
	t.Parallel()

	assert.Greater(t, config.FrameInterval, 0*time.Second)
	assert.LessOrEqual(t, config.FrameInterval, 50*time.Millisecond, "Frame interval should stay animation-smooth")
	assert.Equal(t, config.MaxHMSLength, len(config.TimeFormatHMS))
}
