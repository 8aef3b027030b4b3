package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-ringclock/internal/engine"
)

func fullRingFace() engine.FaceModel {
	cfg := engine.DefaultConfig()
	cfg.FullRing = true
	cfg.ShowTrack = false
	return engine.ComputeFace(engine.TimePoint{}, cfg)
}

func assertNear(t *testing.T, want color.Color, got color.Color, delta float64, msgAndArgs ...interface{}) {
	t.Helper()
	wr, wg, wb, _ := want.RGBA()
	gr, gg, gb, _ := got.RGBA()
	assert.InDelta(t, float64(wr>>8), float64(gr>>8), delta, msgAndArgs...)
	assert.InDelta(t, float64(wg>>8), float64(gg>>8), delta, msgAndArgs...)
	assert.InDelta(t, float64(wb>>8), float64(gb>>8), delta, msgAndArgs...)
}

func TestImage_Bounds(t *testing.T) {
	img, err := Image(fullRingFace(), 400, 300, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 400, 300), img.Bounds())
}

func TestImage_RejectsEmptyFrame(t *testing.T) {
	_, err := Image(fullRingFace(), 0, 10, DefaultOptions())
	assert.Error(t, err)
}

func TestImage_Pixels(t *testing.T) {
	img, err := Image(fullRingFace(), 400, 400, DefaultOptions())
	require.NoError(t, err)

	assertNear(t, Background, img.At(0, 0), 1, "corner shows the backdrop")
	assertNear(t, engine.CapColor, img.At(200, 200), 1, "the cap is painted last")

	// Middle of segment 0, at 15° on the ring.
	p := engine.Polar(engine.Point{X: 200, Y: 200}, 170, 15)
	assertNear(t, engine.RainbowPalette[0], img.At(int(p.X), int(p.Y)), 2, "segment 0 at %v", p)
}

func TestImage_NilBackgroundFallsBack(t *testing.T) {
	img, err := Image(fullRingFace(), 50, 50, Options{})
	require.NoError(t, err)
	assertNear(t, Background, img.At(0, 0), 1)
}

func TestImage_CRTChangesPixels(t *testing.T) {
	plain, err := Image(fullRingFace(), 200, 200, DefaultOptions())
	require.NoError(t, err)

	opts := DefaultOptions()
	opts.CRT = true
	crt, err := Image(fullRingFace(), 200, 200, opts)
	require.NoError(t, err)

	assert.NotEqual(t, plain.Pix, crt.Pix)
}

func TestWritePNG_Decodes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, fullRingFace(), 120, 80, DefaultOptions()))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 120, img.Bounds().Dx())
	assert.Equal(t, 80, img.Bounds().Dy())
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "face.png")
	require.NoError(t, SavePNG(path, fullRingFace(), 64, 64, DefaultOptions()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.Width)
}

func TestSavePNG_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "face.png")
	assert.Error(t, SavePNG(path, fullRingFace(), 64, 64, DefaultOptions()))
}

func TestDialToRadians(t *testing.T) {
	t.Parallel()

	x, y := radial(0)
	assert.InDelta(t, 0, x, 1e-12)
	assert.InDelta(t, -1, y, 1e-12, "12 o'clock points up")

	x, y = radial(90)
	assert.InDelta(t, 1, x, 1e-12)
	assert.InDelta(t, 0, y, 1e-12)
}
