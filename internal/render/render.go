// Package render rasterizes an engine.FaceModel with gogpu/gg and applies
// the optional CRT overlay.
package render

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"math"
	"os"
	"time"

	"github.com/gogpu/gg"
	xdraw "golang.org/x/image/draw"

	"github.com/tartampluch/go-ringclock/internal/config"
	"github.com/tartampluch/go-ringclock/internal/engine"
)

// Background is the default face backdrop.
var Background = color.NRGBA{R: 0x0B, G: 0x0D, B: 0x12, A: 0xFF}

// Options controls how a face is turned into pixels.
type Options struct {
	Background color.Color
	CRT        bool
	CRTOptions CRTOptions
}

// DefaultOptions renders on the default backdrop without the overlay.
func DefaultOptions() Options {
	return Options{
		Background: Background,
		CRTOptions: DefaultCRTOptions(),
	}
}

// Draw paints face onto dc with the face's top-left corner at (ox, oy).
func Draw(dc *gg.Context, face engine.FaceModel, ox, oy float64) error {
	for _, p := range face.Primitives {
		var err error
		switch v := p.(type) {
		case engine.Arc:
			err = drawArc(dc, v, ox, oy)
		case engine.Marker:
			err = drawMarker(dc, v, ox, oy)
		case engine.Hand:
			err = drawHand(dc, v, ox, oy)
		case engine.CenterCap:
			err = drawDisc(dc, v.Center.X+ox, v.Center.Y+oy, v.Radius, v.Color)
		}
		if err != nil {
			return fmt.Errorf("%s %s: %w", config.ErrSnapshotEncode, p.Kind(), err)
		}
	}
	return nil
}

// Image renders face centred in a width x height frame.
func Image(face engine.FaceModel, width, height int, opts Options) (*image.RGBA, error) {
	if width < config.MinFacePixels || height < config.MinFacePixels {
		return nil, fmt.Errorf("%s: %dx%d", config.ErrSizeInvalid, width, height)
	}

	dc := gg.NewContext(width, height)
	defer func() { _ = dc.Close() }()

	bg := opts.Background
	if bg == nil {
		bg = Background
	}
	dc.ClearWithColor(gg.FromColor(bg))

	ox := (float64(width) - face.Size) / 2
	oy := (float64(height) - face.Size) / 2
	if err := Draw(dc, face, ox, oy); err != nil {
		return nil, err
	}

	if err := dc.FlushGPU(); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrSnapshotEncode, err)
	}
	src := dc.Image()
	out := image.NewRGBA(src.Bounds())
	xdraw.Draw(out, out.Bounds(), src, src.Bounds().Min, xdraw.Src)

	if opts.CRT {
		ApplyCRT(out, opts.CRTOptions)
	}
	return out, nil
}

// WritePNG renders face and encodes it as PNG to w.
func WritePNG(w io.Writer, face engine.FaceModel, width, height int, opts Options) error {
	img, err := Image(face, width, height, opts)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("%s: %w", config.ErrSnapshotEncode, err)
	}
	return nil
}

// SavePNG renders face to a PNG file at path.
func SavePNG(path string, face engine.FaceModel, width, height int, opts Options) error {
	start := time.Now()

	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, config.FilePermSnapshot)
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrSnapshotWrite, err)
	}

	bw := bufio.NewWriter(f)
	if err := WritePNG(bw, face, width, height, opts); err != nil {
		_ = f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("%s: %w", config.ErrSnapshotWrite, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%s: %w", config.ErrSnapshotWrite, err)
	}

	slog.Info(config.MsgSnapshotWritten,
		config.LogKeyComponent, config.CompRender,
		config.LogKeyFile, path,
		config.LogKeySize, width,
		config.LogKeyCRT, opts.CRT,
		config.LogKeyDuration, time.Since(start).Milliseconds(),
	)
	return nil
}

func drawArc(dc *gg.Context, a engine.Arc, ox, oy float64) error {
	if a.Thickness <= 0 || a.Path.Radius <= 0 {
		return nil
	}
	dc.SetColor(a.Color)
	dc.SetLineWidth(a.Thickness)
	dc.SetLineCap(gg.LineCapButt)
	dc.DrawArc(a.Path.Center.X+ox, a.Path.Center.Y+oy, a.Path.Radius, dialToRadians(a.Start), dialToRadians(a.End))
	return dc.Stroke()
}

// drawMarker draws circles as discs and pills as a round-capped stroke
// along the radius, which keeps the pill oriented without a transform.
func drawMarker(dc *gg.Context, m engine.Marker, ox, oy float64) error {
	cx, cy := m.Center.X+ox, m.Center.Y+oy
	if !m.Pill || m.Height <= m.Width {
		return drawDisc(dc, cx, cy, m.Width/2, m.Color)
	}
	if m.Width <= 0 {
		return nil
	}

	half := (m.Height - m.Width) / 2
	dx, dy := radial(m.Angle)
	dc.SetColor(m.Color)
	dc.SetLineWidth(m.Width)
	dc.SetLineCap(gg.LineCapRound)
	dc.DrawLine(cx-dx*half, cy-dy*half, cx+dx*half, cy+dy*half)
	return dc.Stroke()
}

func drawHand(dc *gg.Context, h engine.Hand, ox, oy float64) error {
	if h.Width <= 0 {
		return nil
	}
	dc.SetColor(h.Color)
	dc.SetLineWidth(h.Width)
	dc.SetLineCap(gg.LineCapRound)
	dc.DrawLine(h.TailEnd.X+ox, h.TailEnd.Y+oy, h.Tip.X+ox, h.Tip.Y+oy)
	return dc.Stroke()
}

func drawDisc(dc *gg.Context, x, y, r float64, c color.Color) error {
	if r <= 0 {
		return nil
	}
	dc.SetColor(c)
	dc.DrawCircle(x, y, r)
	return dc.Fill()
}

// dialToRadians maps dial degrees (0 at 12 o'clock, clockwise) to gg's
// angles (0 at 3 o'clock, clockwise on a y-down canvas).
func dialToRadians(deg float64) float64 {
	return (deg - 90) * math.Pi / 180
}

// radial returns the unit vector pointing outward at dial angle deg.
func radial(deg float64) (float64, float64) {
	rad := dialToRadians(deg)
	return math.Cos(rad), math.Sin(rad)
}
