package engine

import (
	"image/color"
	"math"

	"github.com/tartampluch/go-ringclock/internal/config"
)

// Palette is one color per ring segment, indexed 0 (12 o'clock) to 11.
type Palette [config.SegmentCount]color.NRGBA

// RainbowPalette colors each segment by its index, independent of time.
var RainbowPalette = Palette{
	{R: 0xFF, G: 0x3B, B: 0x30, A: 0xFF}, // red
	{R: 0xFF, G: 0x6D, B: 0x1F, A: 0xFF},
	{R: 0xFF, G: 0x9F, B: 0x0A, A: 0xFF}, // orange
	{R: 0xFF, G: 0xD6, B: 0x0A, A: 0xFF}, // yellow
	{R: 0xB5, G: 0xE6, B: 0x1D, A: 0xFF},
	{R: 0x34, G: 0xC7, B: 0x59, A: 0xFF}, // green
	{R: 0x00, G: 0xC7, B: 0xBE, A: 0xFF},
	{R: 0x32, G: 0xAD, B: 0xE6, A: 0xFF}, // cyan
	{R: 0x0A, G: 0x84, B: 0xFF, A: 0xFF}, // blue
	{R: 0x5E, G: 0x5C, B: 0xE6, A: 0xFF},
	{R: 0xAF, G: 0x52, B: 0xDE, A: 0xFF}, // purple
	{R: 0xFF, G: 0x2D, B: 0x92, A: 0xFF}, // magenta
}

// UniformPalette holds the shared ring color for each 5-second bucket.
// Adjacent entries are close so the ring drifts through the minute.
var UniformPalette = Palette{
	{R: 0x00, G: 0xE5, B: 0xFF, A: 0xFF},
	{R: 0x00, G: 0xB8, B: 0xFF, A: 0xFF},
	{R: 0x29, G: 0x79, B: 0xFF, A: 0xFF},
	{R: 0x65, G: 0x1F, B: 0xFF, A: 0xFF},
	{R: 0xAA, G: 0x00, B: 0xFF, A: 0xFF},
	{R: 0xD5, G: 0x00, B: 0xF9, A: 0xFF},
	{R: 0xF5, G: 0x00, B: 0x57, A: 0xFF},
	{R: 0xFF, G: 0x17, B: 0x44, A: 0xFF},
	{R: 0xFF, G: 0x6E, B: 0x40, A: 0xFF},
	{R: 0xFF, G: 0xAB, B: 0x40, A: 0xFF},
	{R: 0xC6, G: 0xFF, B: 0x00, A: 0xFF},
	{R: 0x64, G: 0xFF, B: 0xDA, A: 0xFF},
}

// Fixed face colors.
var (
	White       = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	TrackColor  = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: config.TrackAlpha}
	MarkerColor = White
	HandColor   = White
	SecondColor = color.NRGBA{R: 0xFF, G: 0x3B, B: 0x30, A: 0xFF}
	CapColor    = White
)

// UniformBucket returns the 5-second bucket index for raw seconds, clamped to [0, 11].
func UniformBucket(rawSeconds float64) int {
	b := int(math.Floor(rawSeconds / config.BucketSeconds))
	if b < 0 {
		return 0
	}
	if b > config.SegmentCount-1 {
		return config.SegmentCount - 1
	}
	return b
}

// SegmentColor resolves a segment's color: forced white, then the uniform
// bucket color, then the rainbow entry for the index.
func SegmentColor(index int, rawSeconds float64, cfg ClockConfig) color.NRGBA {
	switch {
	case cfg.ForceWhite:
		return White
	case cfg.Color == ColorUniform:
		return UniformPalette[UniformBucket(rawSeconds)]
	default:
		return RainbowPalette[index%config.SegmentCount]
	}
}
