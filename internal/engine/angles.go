package engine

import "math"

// Angles are hand rotations in degrees, clockwise from 12 o'clock.
type Angles struct {
	Hour   float64
	Minute float64
	Second float64

	// SegmentSeconds drives the ring state machine. It follows the
	// second hand: whole seconds when stepped, fractional when smooth.
	SegmentSeconds float64
}

// DeriveAngles converts a time of day into hand rotations. The minute hand
// always creeps with the raw seconds; only the second hand and the ring obey
// the motion mode.
func DeriveAngles(tp TimePoint, motion MotionMode) Angles {
	raw := tp.RawSeconds()
	seconds := raw
	if motion != MotionSmooth {
		seconds = math.Floor(raw)
	}

	return Angles{
		Hour:           float64(tp.Hours12())*30 + float64(tp.Minutes)*0.5,
		Minute:         float64(tp.Minutes)*6 + raw*0.1,
		Second:         seconds * 6,
		SegmentSeconds: seconds,
	}
}
