package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const epsilon = 1e-9

// TestDeriveAngles verifies the hand formulas for both motion modes.
func TestDeriveAngles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		tp         TimePoint
		motion     MotionMode
		wantHour   float64
		wantMinute float64
		wantSecond float64
		wantSegSec float64
	}{
		{
			name:   "Midnight",
			tp:     TimePoint{},
			motion: MotionStepped,
		},
		{
			name:       "Noon folds onto 12",
			tp:         TimePoint{Hours: 12},
			motion:     MotionSmooth,
			wantHour:   0,
			wantMinute: 0,
		},
		{
			name:       "Stepped drops milliseconds from second hand only",
			tp:         TimePoint{Hours: 3, Minutes: 30, Seconds: 15, Milliseconds: 500},
			motion:     MotionStepped,
			wantHour:   105,
			wantMinute: 181.55,
			wantSecond: 90,
			wantSegSec: 15,
		},
		{
			name:       "Smooth keeps milliseconds",
			tp:         TimePoint{Hours: 3, Minutes: 30, Seconds: 15, Milliseconds: 500},
			motion:     MotionSmooth,
			wantHour:   105,
			wantMinute: 181.55,
			wantSecond: 93,
			wantSegSec: 15.5,
		},
		{
			name:       "Evening hours fold",
			tp:         TimePoint{Hours: 21, Minutes: 59, Seconds: 59, Milliseconds: 999},
			motion:     MotionStepped,
			wantHour:   299.5,
			wantMinute: 359.9999,
			wantSecond: 354,
			wantSegSec: 59,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveAngles(tt.tp, tt.motion)
			assert.InDelta(t, tt.wantHour, got.Hour, epsilon)
			assert.InDelta(t, tt.wantMinute, got.Minute, epsilon)
			assert.InDelta(t, tt.wantSecond, got.Second, epsilon)
			assert.InDelta(t, tt.wantSegSec, got.SegmentSeconds, epsilon)
		})
	}
}

// TestMinuteAngle_StrictlyIncreasing walks an hour in 250ms steps.
func TestMinuteAngle_StrictlyIncreasing(t *testing.T) {
	t.Parallel()

	base := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	prev := -1.0
	for step := time.Duration(0); step < time.Hour; step += 250 * time.Millisecond {
		got := DeriveAngles(FromTime(base.Add(step)), MotionStepped).Minute
		if !assert.Greater(t, got, prev, "minute angle must increase at %s", step) {
			return
		}
		prev = got
	}
}

// TestHourAngle_HalfDegreePerMinute checks the hour hand rate.
func TestHourAngle_HalfDegreePerMinute(t *testing.T) {
	t.Parallel()

	for m := 0; m < 59; m++ {
		a := DeriveAngles(TimePoint{Hours: 7, Minutes: m}, MotionSmooth).Hour
		b := DeriveAngles(TimePoint{Hours: 7, Minutes: m + 1}, MotionSmooth).Hour
		assert.InDelta(t, 0.5, b-a, epsilon)
	}
}

func TestTimePoint_Derived(t *testing.T) {
	tp := FromTime(time.Date(2025, 1, 1, 23, 4, 5, 678*int(time.Millisecond), time.UTC))

	assert.Equal(t, TimePoint{Hours: 23, Minutes: 4, Seconds: 5, Milliseconds: 678}, tp)
	assert.Equal(t, 11, tp.Hours12())
	assert.InDelta(t, 5.678, tp.RawSeconds(), epsilon)
	assert.Equal(t, "23:04:05.678", tp.String())
}

type fixedClock time.Time

func (c fixedClock) Now() time.Time { return time.Time(c) }

func TestSample(t *testing.T) {
	c := fixedClock(time.Date(2025, 7, 4, 6, 30, 15, 250*int(time.Millisecond), time.UTC))
	assert.Equal(t, TimePoint{Hours: 6, Minutes: 30, Seconds: 15, Milliseconds: 250}, Sample(c))

	assert.WithinDuration(t, time.Now(), RealClock{}.Now(), time.Second)
}
