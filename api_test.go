package raster_test

import (
	"testing"

	"github.com/tdewolff/test"

	"github.com/dewolffkit/raster"
	"github.com/dewolffkit/raster/render"
)

func TestFillPathSolidColor(t *testing.T) {
	img := render.NewImage(20, 20)
	p := raster.MustParsePath("M2 2L18 2L18 18L2 18Z")
	raster.FillPath(img, p, [4]byte{255, 0, 0, 255}, nil, raster.NonZero, raster.BlendNormal)

	i := img.DataIndex(10, 10)
	test.T(t, img.Pix()[i], uint8(255))
	test.T(t, img.Pix()[i+3], uint8(255))

	o := img.DataIndex(0, 0)
	test.T(t, img.Pix()[o+3], uint8(0))
}

func TestStrokePath(t *testing.T) {
	img := render.NewImage(20, 20)
	p := raster.MustParsePath("M2 10L18 10")
	raster.StrokePath(img, p, [4]byte{0, 0, 0, 255}, nil, 4, raster.CapButt, raster.JoinMiter, 4, raster.Dashes{}, raster.NonZero, raster.BlendNormal)

	i := img.DataIndex(10, 10)
	test.T(t, img.Pix()[i+3], uint8(255))
}

func TestFillPathMask(t *testing.T) {
	mask := render.NewMask(20, 20)
	p := raster.MustParsePath("M2 2L18 2L18 18L2 18Z")
	raster.FillPathMask(mask, p, nil, raster.NonZero, raster.BlendMask)

	inside := mask.DataIndex(10, 10)
	outside := mask.DataIndex(0, 0)
	test.T(t, mask.Pix()[inside], uint8(255))
	test.T(t, mask.Pix()[outside], uint8(0))
}

func TestFillPathMaskClearsOutsideBounds(t *testing.T) {
	mask := render.NewMask(20, 20)
	for i := range mask.Pix() {
		mask.Pix()[i] = 200
	}
	p := raster.MustParsePath("M2 2L10 2L10 10L2 10Z")
	raster.FillPathMask(mask, p, nil, raster.NonZero, raster.BlendMask)

	outside := mask.DataIndex(15, 15)
	test.T(t, mask.Pix()[outside], uint8(0))
}

func TestFillPathPaintGradient(t *testing.T) {
	img := render.NewImage(20, 20)
	p := raster.MustParsePath("M0 0L20 0L20 20L0 20Z")
	grad := raster.LinearGradientPaint{
		Start: raster.Point{X: 0, Y: 0},
		End:   raster.Point{X: 20, Y: 0},
		Stops: raster.GradientStops{
			{Offset: 0, Color: [4]byte{255, 0, 0, 255}},
			{Offset: 1, Color: [4]byte{0, 0, 255, 255}},
		},
	}
	raster.FillPathPaint(img, p, grad, nil, raster.NonZero, raster.BlendNormal)

	left := img.DataIndex(1, 10)
	right := img.DataIndex(18, 10)
	test.That(t, img.Pix()[left] > img.Pix()[left+2])
	test.That(t, img.Pix()[right+2] > img.Pix()[right])
}

func TestFillImageTransparentColorIsNoop(t *testing.T) {
	img := render.NewImage(10, 10)
	p := raster.MustParsePath("M0 0L10 0L10 10L0 10Z")
	raster.FillImage(img, p, [4]byte{255, 0, 0, 0}, raster.NonZero)
	i := img.DataIndex(5, 5)
	test.T(t, img.Pix()[i+3], uint8(0))
}
