package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-ringclock/internal/config"
)

func TestPolar_DialOrientation(t *testing.T) {
	t.Parallel()

	c := Point{X: 200, Y: 200}
	tests := []struct {
		name string
		deg  float64
		want Point
	}{
		{"12 o'clock", 0, Point{X: 200, Y: 100}},
		{"3 o'clock", 90, Point{X: 300, Y: 200}},
		{"6 o'clock", 180, Point{X: 200, Y: 300}},
		{"9 o'clock", 270, Point{X: 100, Y: 200}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Polar(c, 100, tt.deg)
			assert.InDelta(t, tt.want.X, got.X, 1e-9)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-9)
		})
	}
}

func TestArcPath(t *testing.T) {
	t.Parallel()

	c := Point{X: 200, Y: 200}

	t.Run("Empty span is absent", func(t *testing.T) {
		_, ok := ArcPath(c, 30, 30, 100)
		assert.False(t, ok)
		_, ok = ArcPath(c, 40, 30, 100)
		assert.False(t, ok)
	})

	t.Run("Quarter arc", func(t *testing.T) {
		arc, ok := ArcPath(c, 0, 90, 100)
		require.True(t, ok)
		assert.False(t, arc.LargeArc)
		assert.True(t, arc.Sweep)
		assert.InDelta(t, 200, arc.From.X, 1e-9)
		assert.InDelta(t, 100, arc.From.Y, 1e-9)
		assert.InDelta(t, 300, arc.To.X, 1e-9)
		assert.InDelta(t, 200, arc.To.Y, 1e-9)
		assert.Equal(t, "M 200.000 100.000 A 100.000 100.000 0 0 1 300.000 200.000", arc.SVG())
	})

	t.Run("Large arc flag above 180", func(t *testing.T) {
		arc, ok := ArcPath(c, 0, 180, 100)
		require.True(t, ok)
		assert.False(t, arc.LargeArc, "exactly 180 is not large")

		arc, ok = ArcPath(c, 0, 180.5, 100)
		require.True(t, ok)
		assert.True(t, arc.LargeArc)
	})
}

func TestMarkers_Layout(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	markers := Markers(cfg)
	center := Point{X: config.ReferenceSize / 2, Y: config.ReferenceSize / 2}

	pills := 0
	for i, m := range markers {
		assert.Equal(t, i, m.Index)
		assert.InDelta(t, float64(i)*30, m.Angle, epsilon)

		dx, dy := m.Center.X-center.X, m.Center.Y-center.Y
		assert.InDelta(t, config.MarkerRadius*config.MarkerRadius, dx*dx+dy*dy, 1e-6, "marker %d radius", i)
		assert.Equal(t, cfg.MarkerWidth, m.Width)

		if m.Pill {
			pills++
			assert.Equal(t, KindMarkerPill, m.Kind())
			assert.Equal(t, config.MarkerBaseHeight, m.Height)
		} else {
			assert.Equal(t, KindMarkerCircle, m.Kind())
			assert.Equal(t, m.Width, m.Height)
		}
	}

	assert.Equal(t, 4, pills)
	for _, i := range []int{0, 3, 6, 9} {
		assert.True(t, markers[i].Pill, "index %d is cardinal", i)
	}
}

func TestMarkers_Scale(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Size = 800
	m := Markers(cfg)[3]

	assert.InDelta(t, 400+2*config.MarkerRadius, m.Center.X, 1e-9)
	assert.InDelta(t, 400, m.Center.Y, 1e-9)
	assert.Equal(t, 2*cfg.MarkerWidth, m.Width)
	assert.Equal(t, 2*config.MarkerBaseHeight, m.Height)
}
