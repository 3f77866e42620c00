package render

import (
	"image/color"
	"testing"

	"github.com/tdewolff/test"

	"github.com/dewolffkit/raster"
)

func TestImageDataIndex(t *testing.T) {
	img := NewImage(10, 10)
	test.T(t, img.Width(), 10)
	test.T(t, img.Height(), 10)
	test.T(t, img.DataIndex(1, 0)-img.DataIndex(0, 0), 4)
}

func TestImageImplementsRasterImage(t *testing.T) {
	img := NewImage(4, 4)
	var _ raster.Image = img
}

func TestMaskApplyOpacity(t *testing.T) {
	m := NewMask(2, 2)
	for i := range m.Pix() {
		m.Pix()[i] = 200
	}
	m.ApplyOpacity(0.5)
	for _, v := range m.Pix() {
		test.T(t, v, uint8(100))
	}
}

func TestMaskApplyOpacityClamps(t *testing.T) {
	m := NewMask(1, 1)
	m.Pix()[0] = 100
	m.ApplyOpacity(2.0)
	test.T(t, m.Pix()[0], uint8(100))
	m.ApplyOpacity(-1.0)
	test.T(t, m.Pix()[0], uint8(0))
}

func TestMaskToImage(t *testing.T) {
	m := NewMask(2, 2)
	m.Alpha.SetAlpha(0, 0, color.Alpha{A: 255})
	img := m.ToImage(color.RGBA{R: 200, G: 0, B: 0, A: 255})
	i := img.PixOffset(0, 0)
	test.T(t, img.Pix[i], uint8(200))
	j := img.PixOffset(1, 1)
	test.T(t, img.Pix[j+3], uint8(0))
}

func TestRGBAConversion(t *testing.T) {
	c := RGBA(color.RGBA{R: 10, G: 20, B: 30, A: 255})
	test.T(t, c, [4]byte{10, 20, 30, 255})
}
