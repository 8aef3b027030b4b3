package engine

import (
	"image/color"
	"math"

	"github.com/tartampluch/go-ringclock/internal/config"
)

// Phase is the direction the ring is animating in during the current minute.
type Phase int

const (
	BuildUp   Phase = iota // segments fill clockwise
	BuildDown              // an eraser sweeps the full ring clockwise
)

func (p Phase) String() string {
	if p == BuildDown {
		return "build-down"
	}
	return "build-up"
}

// SegmentState reports where a segment is in its bucket.
type SegmentState int

const (
	SegmentEmpty SegmentState = iota
	SegmentPartial
	SegmentFull
)

func (s SegmentState) String() string {
	switch s {
	case SegmentPartial:
		return "partial"
	case SegmentFull:
		return "full"
	default:
		return "empty"
	}
}

// Segment is one 30° ring arc owning a 5-second bucket.
type Segment struct {
	Index int

	// BaseStart and BaseEnd are the inset angular span in degrees.
	BaseStart float64
	BaseEnd   float64

	// RenderStart and RenderEnd are the part drawn this tick.
	RenderStart float64
	RenderEnd   float64

	State SegmentState
	Color color.NRGBA
}

// Visible reports whether the segment has a drawable span.
func (s Segment) Visible() bool {
	return s.RenderEnd > s.RenderStart
}

// Span returns the inset angular width of the segment.
func (s Segment) Span() float64 {
	return s.BaseEnd - s.BaseStart
}

// CoverageDegrees converts a linear marker width into the angle it covers
// on the ring.
func CoverageDegrees(markerWidth float64) float64 {
	return markerWidth / (2 * math.Pi * config.RingRadius) * 360
}

// GapAngle is the inset trimmed from each end of a segment so markers stay clear.
func GapAngle(markerWidth float64) float64 {
	return CoverageDegrees(markerWidth)/2 + config.GapPaddingDeg
}

// PhaseFor picks the animation direction. Alternating faces build on even
// minutes and erase on odd ones.
func PhaseFor(tp TimePoint, cfg ClockConfig) Phase {
	if !cfg.Alternating || tp.Minutes%2 == 0 {
		return BuildUp
	}
	return BuildDown
}

// Segments computes all twelve ring segments for one tick. Invisible
// segments are still returned so callers can inspect their state.
func Segments(tp TimePoint, cfg ClockConfig) [config.SegmentCount]Segment {
	var out [config.SegmentCount]Segment

	gap := GapAngle(cfg.MarkerWidth)
	t := DeriveAngles(tp, cfg.Motion).SegmentSeconds
	raw := tp.RawSeconds()
	phase := PhaseFor(tp, cfg)

	for i := range out {
		seg := Segment{
			Index:     i,
			BaseStart: float64(i)*config.SegmentSpanDeg + gap,
			BaseEnd:   float64(i+1)*config.SegmentSpanDeg - gap,
			Color:     SegmentColor(i, raw, cfg),
		}

		if cfg.FullRing {
			seg.fill()
		} else {
			start := float64(i) * config.BucketSeconds
			progress := (t - start) / config.BucketSeconds

			switch phase {
			case BuildDown:
				seg.eraseStep(progress, cfg.Fill)
			default:
				seg.buildStep(progress, cfg.Fill)
			}
		}

		out[i] = seg
	}

	return out
}

// buildStep grows the segment from BaseStart. progress is the fraction of
// the bucket elapsed; below 0 the bucket is not reached, at 1 or more it is done.
func (s *Segment) buildStep(progress float64, fill FillMode) {
	switch {
	case progress >= 1:
		s.fill()
	case progress >= 0:
		if fill == FillFluent {
			s.State = SegmentPartial
			s.RenderStart = s.BaseStart
			s.RenderEnd = s.BaseStart + s.Span()*progress
			return
		}
		s.fill()
	default:
		s.State = SegmentEmpty
	}
}

// eraseStep shrinks the segment from BaseStart towards BaseEnd.
func (s *Segment) eraseStep(progress float64, fill FillMode) {
	switch {
	case progress >= 1:
		s.State = SegmentEmpty
	case progress >= 0:
		if fill == FillFluent {
			s.State = SegmentPartial
			s.RenderStart = s.BaseStart + s.Span()*progress
			s.RenderEnd = s.BaseEnd
			return
		}
		// Stepped erase holds the segment until the bucket ends.
		s.fill()
	default:
		s.fill()
	}
}

func (s *Segment) fill() {
	s.State = SegmentFull
	s.RenderStart = s.BaseStart
	s.RenderEnd = s.BaseEnd
}
