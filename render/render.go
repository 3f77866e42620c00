// Package render provides reference Image and Mask implementations atop the
// standard image package and golang.org/x/image/draw, so that tests and the
// cmd/rastercli example have a concrete destination to hand the raster
// package's fill/stroke calls. Nothing in the raster core package depends on
// this package; it is purely a collaborator implementing raster.Image and
// raster.Mask.
package render

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/dewolffkit/raster"
)

// Image wraps an *image.RGBA as a raster.Image, storing premultiplied RGBA
// pixels exactly as the core expects.
type Image struct {
	*image.RGBA
}

// NewImage allocates a transparent w-by-h Image.
func NewImage(w, h int) *Image {
	return &Image{image.NewRGBA(image.Rect(0, 0, w, h))}
}

func (img *Image) Width() int  { return img.Rect.Dx() }
func (img *Image) Height() int { return img.Rect.Dy() }
func (img *Image) Pix() []byte { return img.RGBA.Pix }

func (img *Image) DataIndex(x, y int) int {
	return img.RGBA.PixOffset(x+img.Rect.Min.X, y+img.Rect.Min.Y)
}

// DrawOver composites src onto img within dstRect with draw.Over, placing
// src's origin at dstRect.Min; it applies no transform or scaling.
func (img *Image) DrawOver(src image.Image, dstRect image.Rectangle) {
	draw.Draw(img.RGBA, dstRect, src, image.Point{}, draw.Over)
}

// Mask wraps an *image.Alpha as a raster.Mask.
type Mask struct {
	*image.Alpha
}

// NewMask allocates a zero-coverage w-by-h Mask.
func NewMask(w, h int) *Mask {
	return &Mask{image.NewAlpha(image.Rect(0, 0, w, h))}
}

func (m *Mask) Width() int  { return m.Rect.Dx() }
func (m *Mask) Height() int { return m.Rect.Dy() }
func (m *Mask) Pix() []byte { return m.Alpha.Pix }

func (m *Mask) DataIndex(x, y int) int {
	return m.Alpha.PixOffset(x+m.Rect.Min.X, y+m.Rect.Min.Y)
}

// ApplyOpacity scales every coverage byte in the mask by opacity (0..1).
func (m *Mask) ApplyOpacity(opacity float64) {
	if opacity < 0.0 {
		opacity = 0.0
	}
	if opacity > 1.0 {
		opacity = 1.0
	}
	for i, v := range m.Alpha.Pix {
		m.Alpha.Pix[i] = uint8(float64(v) * opacity)
	}
}

// ToImage premultiplies solid color c by the mask's per-pixel coverage,
// producing an *image.RGBA suitable for compositing elsewhere (e.g. as an
// intermediate opaque layer for a non-solid Paint, per spec.md §6).
func (m *Mask) ToImage(c color.RGBA) *image.RGBA {
	out := image.NewRGBA(m.Rect)
	for y := m.Rect.Min.Y; y < m.Rect.Max.Y; y++ {
		for x := m.Rect.Min.X; x < m.Rect.Max.X; x++ {
			a := m.AlphaAt(x, y).A
			if a == 0 {
				continue
			}
			i := out.PixOffset(x, y)
			out.Pix[i+0] = uint8(uint16(c.R) * uint16(a) / 255)
			out.Pix[i+1] = uint8(uint16(c.G) * uint16(a) / 255)
			out.Pix[i+2] = uint8(uint16(c.B) * uint16(a) / 255)
			out.Pix[i+3] = a
		}
	}
	return out
}

// RGBA converts a color.Color into the core's premultiplied [4]byte pixel
// representation, taking the high byte of each alpha-premultiplied channel
// that c.RGBA() returns.
func RGBA(c color.Color) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

var (
	_ raster.Image = (*Image)(nil)
	_ raster.Mask  = (*Mask)(nil)
)
