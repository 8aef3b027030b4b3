package engine

import (
	"fmt"
	"image/color"
	"math"

	"github.com/tartampluch/go-ringclock/internal/config"
)

// Point is a position in face coordinates (origin top-left, y down).
type Point struct {
	X, Y float64
}

// Polar returns the point at radius r and dial angle deg (0° = 12 o'clock, clockwise).
func Polar(center Point, r, deg float64) Point {
	rad := (deg - 90) * math.Pi / 180
	return Point{
		X: center.X + r*math.Cos(rad),
		Y: center.Y + r*math.Sin(rad),
	}
}

// ArcPathSpec describes a clockwise circular arc in SVG terms.
type ArcPathSpec struct {
	Center   Point
	Radius   float64
	From     Point
	To       Point
	LargeArc bool
	// Sweep is always true: arcs run clockwise on screen.
	Sweep bool
}

// ArcPath builds the arc from start to end (dial degrees) at radius r.
// It returns false when the span is empty.
func ArcPath(center Point, startDeg, endDeg, r float64) (ArcPathSpec, bool) {
	if endDeg <= startDeg {
		return ArcPathSpec{}, false
	}
	return ArcPathSpec{
		Center:   center,
		Radius:   r,
		From:     Polar(center, r, startDeg),
		To:       Polar(center, r, endDeg),
		LargeArc: endDeg-startDeg > 180,
		Sweep:    true,
	}, true
}

// SVG renders the path as an SVG "d" attribute.
func (a ArcPathSpec) SVG() string {
	large, sweep := 0, 0
	if a.LargeArc {
		large = 1
	}
	if a.Sweep {
		sweep = 1
	}
	return fmt.Sprintf("M %.3f %.3f A %.3f %.3f 0 %d %d %.3f %.3f",
		a.From.X, a.From.Y, a.Radius, a.Radius, large, sweep, a.To.X, a.To.Y)
}

// Marker is one hour position on the dial.
type Marker struct {
	Index int
	// Pill marks the cardinal positions (12, 3, 6, 9).
	Pill bool
	// Angle orients the pill radially, in dial degrees.
	Angle  float64
	Center Point
	// Width is tangential, Height radial. Circles use Width for both.
	Width  float64
	Height float64
	Color  color.NRGBA
}

// Kind implements Primitive.
func (m Marker) Kind() Kind {
	if m.Pill {
		return KindMarkerPill
	}
	return KindMarkerCircle
}

// Markers lays out the twelve hour markers for cfg.
func Markers(cfg ClockConfig) [config.SegmentCount]Marker {
	var out [config.SegmentCount]Marker

	scale := cfg.Scale()
	size := cfg.RenderedSize()
	center := Point{X: size / 2, Y: size / 2}
	width := cfg.MarkerWidth * scale

	for i := range out {
		angle := float64(i) * config.SegmentSpanDeg
		m := Marker{
			Index:  i,
			Pill:   i%config.CardinalStep == 0,
			Angle:  angle,
			Center: Polar(center, config.MarkerRadius*scale, angle),
			Width:  width,
			Height: width,
			Color:  MarkerColor,
		}
		if m.Pill {
			m.Height = config.MarkerBaseHeight * scale
		}
		out[i] = m
	}

	return out
}
