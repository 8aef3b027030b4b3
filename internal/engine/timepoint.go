package engine

import (
	"fmt"
	"time"
)

// Clock is the wall-clock source sampled once per frame.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock in local time.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// Sample reads c and converts the instant to a TimePoint.
func Sample(c Clock) TimePoint {
	return FromTime(c.Now())
}

// TimePoint is a wall-clock time of day with millisecond resolution.
type TimePoint struct {
	Hours        int // 0-23
	Minutes      int // 0-59
	Seconds      int // 0-59
	Milliseconds int // 0-999
}

// FromTime samples the time of day from t in t's own location.
func FromTime(t time.Time) TimePoint {
	return TimePoint{
		Hours:        t.Hour(),
		Minutes:      t.Minute(),
		Seconds:      t.Second(),
		Milliseconds: t.Nanosecond() / int(time.Millisecond),
	}
}

// Hours12 folds the hour onto the dial.
func (tp TimePoint) Hours12() int {
	return tp.Hours % 12
}

// RawSeconds returns the seconds including the fractional millisecond part.
func (tp TimePoint) RawSeconds() float64 {
	return float64(tp.Seconds) + float64(tp.Milliseconds)/1000
}

func (tp TimePoint) String() string {
	return fmt.Sprintf("%02d:%02d:%02d.%03d", tp.Hours, tp.Minutes, tp.Seconds, tp.Milliseconds)
}
