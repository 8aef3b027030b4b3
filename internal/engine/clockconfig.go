package engine

import "github.com/tartampluch/go-ringclock/internal/config"

// MotionMode selects how the second hand moves.
type MotionMode int

const (
	MotionStepped MotionMode = iota // ticks once per second
	MotionSmooth                    // sweeps continuously
)

// FillMode selects how an in-progress ring segment is drawn.
type FillMode int

const (
	FillStepped FillMode = iota // snaps to full on bucket entry
	FillFluent                  // interpolates across the bucket
)

// ColorMode selects the segment palette.
type ColorMode int

const (
	ColorRainbow ColorMode = iota // one fixed color per segment index
	ColorUniform                  // every segment shares the current bucket's color
)

// HandSpec is the width and length of one hand, in reference units.
type HandSpec struct {
	Width  float64
	Length float64
}

// ClockConfig holds every rendering knob of the face. It is a value type:
// hosts replace it wholesale and the engine never mutates it.
type ClockConfig struct {
	Motion MotionMode
	Fill   FillMode
	Color  ColorMode

	ForceWhite     bool
	ShowTrack      bool
	FullRing       bool
	Alternating    bool
	ShowSecondHand bool
	CenterCap      bool

	ArcThickness float64
	MarkerWidth  float64

	HourHand   HandSpec
	MinuteHand HandSpec
	SecondHand HandSpec

	// Size is the rendered edge length in pixels. Zero renders at the
	// reference size.
	Size float64
}

// DefaultConfig returns the out-of-the-box face.
func DefaultConfig() ClockConfig {
	return ClockConfig{
		Motion:         MotionStepped,
		Fill:           FillFluent,
		Color:          ColorRainbow,
		ShowTrack:      true,
		ShowSecondHand: true,
		CenterCap:      true,
		ArcThickness:   config.DefaultArcThickness,
		MarkerWidth:    config.DefaultMarkerWidth,
		HourHand:       HandSpec{Width: config.DefaultHourHandWidth, Length: config.DefaultHourHandLength},
		MinuteHand:     HandSpec{Width: config.DefaultMinuteHandWidth, Length: config.DefaultMinuteHandLength},
		SecondHand:     HandSpec{Width: config.DefaultSecondHandWidth, Length: config.DefaultSecondHandLength},
		Size:           config.ReferenceSize,
	}
}

// Scale returns the factor applied to every reference-unit length.
func (c ClockConfig) Scale() float64 {
	if c.Size <= 0 {
		return 1
	}
	return c.Size / config.ReferenceSize
}

// RenderedSize returns the edge length the face is laid out in.
func (c ClockConfig) RenderedSize() float64 {
	if c.Size <= 0 {
		return config.ReferenceSize
	}
	return c.Size
}
