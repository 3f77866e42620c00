package raster

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestGradientStopsAt(t *testing.T) {
	var stops GradientStops
	stops.Add(0, [4]byte{255, 0, 0, 255})
	stops.Add(1, [4]byte{0, 0, 255, 255})
	mid := stops.At(0.5)
	test.T(t, mid, [4]byte{128, 0, 128, 255})
}

func TestGradientStopsClampOutsideRange(t *testing.T) {
	var stops GradientStops
	stops.Add(0.2, [4]byte{255, 0, 0, 255})
	stops.Add(0.8, [4]byte{0, 0, 255, 255})
	test.T(t, stops.At(-1), [4]byte{255, 0, 0, 255})
	test.T(t, stops.At(2), [4]byte{0, 0, 255, 255})
}

func TestGradientStopsReplaceSameOffset(t *testing.T) {
	var stops GradientStops
	stops.Add(0.5, [4]byte{255, 0, 0, 255})
	stops.Add(0.5, [4]byte{0, 255, 0, 255})
	test.T(t, len(stops), 1)
	test.T(t, stops[0].Color, [4]byte{0, 255, 0, 255})
}

func TestLinearGradientPaint(t *testing.T) {
	g := LinearGradientPaint{
		Start: Point{0, 0},
		End:   Point{10, 0},
		Stops: GradientStops{
			{Offset: 0, Color: [4]byte{255, 0, 0, 255}},
			{Offset: 1, Color: [4]byte{0, 0, 255, 255}},
		},
	}
	test.T(t, g.At(0, 0), [4]byte{255, 0, 0, 255})
	test.T(t, g.At(10, 0), [4]byte{0, 0, 255, 255})
}

func TestRadialGradientPaint(t *testing.T) {
	g := RadialGradientPaint{
		C0: Point{0, 0}, R0: 0,
		C1: Point{0, 0}, R1: 10,
		Stops: GradientStops{
			{Offset: 0, Color: [4]byte{255, 0, 0, 255}},
			{Offset: 1, Color: [4]byte{0, 0, 255, 255}},
		},
	}
	test.T(t, g.At(0, 0), [4]byte{255, 0, 0, 255})
	c := g.At(10, 0)
	test.T(t, c, [4]byte{0, 0, 255, 255})
}

func TestAngularGradientPaint(t *testing.T) {
	g := AngularGradientPaint{
		Center: Point{0, 0},
		Angle0: 0,
		Stops: GradientStops{
			{Offset: 0, Color: [4]byte{255, 0, 0, 255}},
			{Offset: 1, Color: [4]byte{0, 0, 255, 255}},
		},
	}
	test.T(t, g.At(0, 0), [4]byte{255, 0, 0, 255})
}

type constImageSource struct {
	w, h int
	c    [4]byte
}

func (s constImageSource) Width() int  { return s.w }
func (s constImageSource) Height() int { return s.h }
func (s constImageSource) At(x, y int) [4]byte {
	if x < 0 || y < 0 || x >= s.w || y >= s.h {
		return [4]byte{}
	}
	return s.c
}

func TestImagePaintOutsideBoundsIsTransparent(t *testing.T) {
	src := constImageSource{w: 4, h: 4, c: [4]byte{10, 20, 30, 255}}
	p := ImagePaint{Src: src, Inverse: Identity}
	test.T(t, p.At(1, 1), [4]byte{10, 20, 30, 255})
	test.T(t, p.At(100, 100), [4]byte{})
}

func TestTiledImagePaintWraps(t *testing.T) {
	src := constImageSource{w: 2, h: 2, c: [4]byte{5, 6, 7, 255}}
	p := TiledImagePaint{Src: src, Cell: SquareCell(2)}
	test.T(t, p.At(1, 1), [4]byte{5, 6, 7, 255})
	test.T(t, p.At(3, 3), [4]byte{5, 6, 7, 255})
}

func TestSolveQuadratic(t *testing.T) {
	r0, r1 := solveQuadratic(1, -3, 2)
	test.Float(t, r0, 1.0)
	test.Float(t, r1, 2.0)
}
