package render

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/tartampluch/go-ringclock/internal/config"
)

// CRTOptions tunes the retro monitor overlay. A zero field disables its pass.
type CRTOptions struct {
	// ScanlineDim multiplies every odd row. Values outside (0,1) skip the pass.
	ScanlineDim float64
	// VignetteStrength darkens towards the corners by strength*(d/dmax)^2.
	VignetteStrength float64
	// GlowMix is how much of the blurred copy is added back.
	GlowMix float64
	// GlowDownscale is the blur factor; 1 or less skips the glow.
	GlowDownscale int
}

// DefaultCRTOptions returns the stock overlay.
func DefaultCRTOptions() CRTOptions {
	return CRTOptions{
		ScanlineDim:      config.CRTScanlineDim,
		VignetteStrength: config.CRTVignetteStrength,
		GlowMix:          config.CRTGlowMix,
		GlowDownscale:    config.CRTGlowDownscale,
	}
}

// ApplyCRT post-processes img in place: glow, then scanlines, then vignette.
func ApplyCRT(img *image.RGBA, opts CRTOptions) {
	if img == nil || img.Bounds().Empty() {
		return
	}
	if opts.GlowMix > 0 && opts.GlowDownscale > 1 {
		glow(img, opts.GlowDownscale, opts.GlowMix)
	}
	if opts.ScanlineDim > 0 && opts.ScanlineDim < 1 {
		scanlines(img, opts.ScanlineDim)
	}
	if opts.VignetteStrength > 0 {
		vignette(img, opts.VignetteStrength)
	}
}

// glow blurs img by scaling it down and back up, then adds the blurred
// copy on top. Channels stay premultiplied.
func glow(img *image.RGBA, factor int, mix float64) {
	b := img.Bounds()
	sw := max(b.Dx()/factor, 1)
	sh := max(b.Dy()/factor, 1)

	small := image.NewRGBA(image.Rect(0, 0, sw, sh))
	xdraw.BiLinear.Scale(small, small.Bounds(), img, b, xdraw.Src, nil)
	blur := image.NewRGBA(b)
	xdraw.BiLinear.Scale(blur, b, small, small.Bounds(), xdraw.Src, nil)

	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.PixOffset(b.Min.X, y)
		brow := blur.PixOffset(b.Min.X, y)
		for x := 0; x < b.Dx(); x++ {
			i, j := row+x*4, brow+x*4
			a := float64(img.Pix[i+3])
			for c := 0; c < 3; c++ {
				v := float64(img.Pix[i+c]) + float64(blur.Pix[j+c])*mix
				img.Pix[i+c] = uint8(math.Min(v, a))
			}
		}
	}
}

func scanlines(img *image.RGBA, dim float64) {
	b := img.Bounds()
	for y := b.Min.Y + 1; y < b.Max.Y; y += 2 {
		row := img.PixOffset(b.Min.X, y)
		for x := 0; x < b.Dx(); x++ {
			i := row + x*4
			for c := 0; c < 3; c++ {
				img.Pix[i+c] = uint8(float64(img.Pix[i+c]) * dim)
			}
		}
	}
}

func vignette(img *image.RGBA, strength float64) {
	b := img.Bounds()
	cx := float64(b.Min.X+b.Max.X) / 2
	cy := float64(b.Min.Y+b.Max.Y) / 2
	dmax := math.Hypot(float64(b.Dx())/2, float64(b.Dy())/2)
	if dmax == 0 {
		return
	}

	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.PixOffset(b.Min.X, y)
		for x := 0; x < b.Dx(); x++ {
			d := math.Hypot(float64(b.Min.X+x)+0.5-cx, float64(y)+0.5-cy) / dmax
			f := math.Max(0, 1-strength*d*d)
			i := row + x*4
			for c := 0; c < 3; c++ {
				img.Pix[i+c] = uint8(float64(img.Pix[i+c]) * f)
			}
		}
	}
}
