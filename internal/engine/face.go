package engine

import (
	"image/color"

	"github.com/tartampluch/go-ringclock/internal/config"
)

// Kind tags a drawable primitive.
type Kind string

const (
	KindArc          Kind = "arc"
	KindHand         Kind = "hand"
	KindMarkerPill   Kind = "marker-pill"
	KindMarkerCircle Kind = "marker-circle"
	KindCenterCap    Kind = "center-cap"
)

// Primitive is anything a renderer can draw. Concrete types are Arc, Hand,
// Marker and CenterCap.
type Primitive interface {
	Kind() Kind
}

// ArcLayer distinguishes the dim background track from live ring segments.
type ArcLayer int

const (
	LayerTrack ArcLayer = iota
	LayerSegment
)

// Arc is a stroked ring arc.
type Arc struct {
	Layer ArcLayer
	// Segment is the ring segment index the arc belongs to.
	Segment int
	// Start and End are dial degrees.
	Start     float64
	End       float64
	Path      ArcPathSpec
	Thickness float64
	Color     color.NRGBA
}

// Kind implements Primitive.
func (Arc) Kind() Kind { return KindArc }

// HandKind identifies a hand.
type HandKind int

const (
	HandHour HandKind = iota
	HandMinute
	HandSecond
)

func (h HandKind) String() string {
	switch h {
	case HandMinute:
		return "minute"
	case HandSecond:
		return "second"
	default:
		return "hour"
	}
}

// Hand is a rotated bar through the pivot with a counterweight tail.
type Hand struct {
	Which  HandKind
	Angle  float64
	Width  float64
	Length float64
	Tail   float64
	Pivot  Point
	// Tip and TailEnd are the two endpoints of the bar.
	Tip     Point
	TailEnd Point
	Color   color.NRGBA
}

// Kind implements Primitive.
func (Hand) Kind() Kind { return KindHand }

// CenterCap covers the pivot.
type CenterCap struct {
	Center Point
	Radius float64
	Color  color.NRGBA
}

// Kind implements Primitive.
func (CenterCap) Kind() Kind { return KindCenterCap }

// FaceModel is the drawable result of one tick, in paint order.
type FaceModel struct {
	Size       float64
	Center     Point
	Phase      Phase
	Angles     Angles
	Primitives []Primitive
}

// ComputeFace lays out the whole face for tp under cfg. It is a pure
// function: every call depends only on its arguments, and any numeric input
// yields a (possibly degenerate) face.
//
// Paint order: track, ring segments, markers, hour, minute, second hand, cap.
func ComputeFace(tp TimePoint, cfg ClockConfig) FaceModel {
	size := cfg.RenderedSize()
	scale := cfg.Scale()
	center := Point{X: size / 2, Y: size / 2}
	angles := DeriveAngles(tp, cfg.Motion)

	face := FaceModel{
		Size:       size,
		Center:     center,
		Phase:      PhaseFor(tp, cfg),
		Angles:     angles,
		Primitives: make([]Primitive, 0, 2*config.SegmentCount+config.SegmentCount+4),
	}

	radius := config.RingRadius * scale
	thickness := cfg.ArcThickness * scale
	segments := Segments(tp, cfg)

	if cfg.ShowTrack {
		for _, seg := range segments {
			if arc, ok := newArc(LayerTrack, seg.Index, seg.BaseStart, seg.BaseEnd, center, radius, thickness, TrackColor); ok {
				face.Primitives = append(face.Primitives, arc)
			}
		}
	}

	for _, seg := range segments {
		if !seg.Visible() {
			continue
		}
		if arc, ok := newArc(LayerSegment, seg.Index, seg.RenderStart, seg.RenderEnd, center, radius, thickness, seg.Color); ok {
			face.Primitives = append(face.Primitives, arc)
		}
	}

	for _, m := range Markers(cfg) {
		face.Primitives = append(face.Primitives, m)
	}

	tail := config.HandTailLength * scale
	face.Primitives = append(face.Primitives,
		newHand(HandHour, angles.Hour, cfg.HourHand, scale, tail, center, HandColor),
		newHand(HandMinute, angles.Minute, cfg.MinuteHand, scale, tail, center, HandColor),
	)
	if cfg.ShowSecondHand {
		face.Primitives = append(face.Primitives,
			newHand(HandSecond, angles.Second, cfg.SecondHand, scale, tail, center, SecondColor))
	}

	if cfg.CenterCap {
		face.Primitives = append(face.Primitives, CenterCap{
			Center: center,
			Radius: config.CenterCapRadius * scale,
			Color:  CapColor,
		})
	}

	return face
}

func newArc(layer ArcLayer, index int, start, end float64, center Point, radius, thickness float64, c color.NRGBA) (Arc, bool) {
	path, ok := ArcPath(center, start, end, radius)
	if !ok {
		return Arc{}, false
	}
	return Arc{
		Layer:     layer,
		Segment:   index,
		Start:     start,
		End:       end,
		Path:      path,
		Thickness: thickness,
		Color:     c,
	}, true
}

func newHand(which HandKind, angle float64, spec HandSpec, scale, tail float64, pivot Point, c color.NRGBA) Hand {
	length := spec.Length * scale
	return Hand{
		Which:   which,
		Angle:   angle,
		Width:   spec.Width * scale,
		Length:  length,
		Tail:    tail,
		Pivot:   pivot,
		Tip:     Polar(pivot, length, angle),
		TailEnd: Polar(pivot, tail, angle+180),
		Color:   c,
	}
}

// Arcs returns the arcs of one layer, in paint order.
func (f FaceModel) Arcs(layer ArcLayer) []Arc {
	var out []Arc
	for _, p := range f.Primitives {
		if a, ok := p.(Arc); ok && a.Layer == layer {
			out = append(out, a)
		}
	}
	return out
}

// SegmentArc returns the live arc drawn for a segment index, if any.
func (f FaceModel) SegmentArc(index int) (Arc, bool) {
	for _, a := range f.Arcs(LayerSegment) {
		if a.Segment == index {
			return a, true
		}
	}
	return Arc{}, false
}

// Hand returns the requested hand, if present.
func (f FaceModel) Hand(which HandKind) (Hand, bool) {
	for _, p := range f.Primitives {
		if h, ok := p.(Hand); ok && h.Which == which {
			return h, true
		}
	}
	return Hand{}, false
}

// Count returns how many primitives of kind k the face holds.
func (f FaceModel) Count(k Kind) int {
	n := 0
	for _, p := range f.Primitives {
		if p.Kind() == k {
			n++
		}
	}
	return n
}
