package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestApplyCRT_Scanlines(t *testing.T) {
	img := solid(4, 4, color.RGBA{R: 200, G: 100, B: 50, A: 255})
	ApplyCRT(img, CRTOptions{ScanlineDim: 0.5})

	assert.Equal(t, color.RGBA{R: 200, G: 100, B: 50, A: 255}, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{R: 100, G: 50, B: 25, A: 255}, img.RGBAAt(0, 1))
	assert.Equal(t, color.RGBA{R: 200, G: 100, B: 50, A: 255}, img.RGBAAt(3, 2))
	assert.Equal(t, color.RGBA{R: 100, G: 50, B: 25, A: 255}, img.RGBAAt(3, 3))
}

func TestApplyCRT_Vignette(t *testing.T) {
	img := solid(100, 100, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	ApplyCRT(img, CRTOptions{VignetteStrength: 0.5})

	center := img.RGBAAt(50, 50)
	corner := img.RGBAAt(0, 0)
	assert.Greater(t, center.R, corner.R)
	assert.GreaterOrEqual(t, center.R, uint8(250))
	assert.Equal(t, uint8(255), corner.A, "alpha is untouched")
}

func TestApplyCRT_Glow(t *testing.T) {
	img := solid(40, 40, color.RGBA{A: 255})
	for y := 12; y < 28; y++ {
		for x := 12; x < 28; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}
	before := append([]uint8(nil), img.Pix...)

	ApplyCRT(img, CRTOptions{GlowMix: 0.5, GlowDownscale: 4})

	for i := range img.Pix {
		assert.GreaterOrEqual(t, img.Pix[i], before[i], "glow never darkens (byte %d)", i)
	}
	assert.Greater(t, img.RGBAAt(11, 20).R, uint8(0), "light bleeds past the block edge")
	assert.Equal(t, uint8(0), img.RGBAAt(0, 0).R, "far corner stays dark")
}

func TestApplyCRT_ZeroOptionsIsNoop(t *testing.T) {
	img := solid(8, 8, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	before := append([]uint8(nil), img.Pix...)

	ApplyCRT(img, CRTOptions{})
	assert.Equal(t, before, img.Pix)

	assert.NotPanics(t, func() { ApplyCRT(nil, DefaultCRTOptions()) })
	assert.NotPanics(t, func() { ApplyCRT(image.NewRGBA(image.Rect(0, 0, 1, 1)), DefaultCRTOptions()) })
}
