package raster

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestFlattenLine(t *testing.T) {
	p := MustParsePath("M0 0L10 0L10 10")
	shapes := Flatten(p, 1.0, false)
	test.T(t, len(shapes), 1)
	pts := shapes[0].Points()
	test.T(t, pts[0], Point{0, 0})
	test.T(t, pts[len(pts)-1], Point{10, 10})
}

func TestFlattenClosesSubpaths(t *testing.T) {
	p := MustParsePath("M0 0L10 0L10 10")
	shapes := Flatten(p, 1.0, true)
	test.That(t, shapes[0].Closed())
}

func TestFlattenDoesNotCloseWhenDisabled(t *testing.T) {
	p := MustParsePath("M0 0L10 0L10 10")
	shapes := Flatten(p, 1.0, false)
	test.That(t, !shapes[0].Closed())
}

func TestFlattenMultipleSubpaths(t *testing.T) {
	p := MustParsePath("M0 0L10 0M20 20L30 20")
	shapes := Flatten(p, 1.0, false)
	test.T(t, len(shapes), 2)
}

func TestFlattenCubicApproximatesCircle(t *testing.T) {
	p := &Path{}
	p.Circle(0, 0, 10)
	shapes := Flatten(p, 1.0, true)
	test.T(t, len(shapes), 1)
	for _, pt := range shapes[0].Points() {
		d := pt.Length()
		test.That(t, math.Abs(d-10) < 0.3)
	}
}

func TestFlattenCubicSubdivisionDensity(t *testing.T) {
	p := &Path{}
	p.MoveTo(0, 0)
	p.BezierCurveTo(0, 100, 100, 100, 100, 0)
	coarse := Flatten(p, 0.1, false)
	fine := Flatten(p, 10.0, false)
	// a smaller pixelScale (larger permitted error) should subdivide less
	test.That(t, len(coarse[0].Points()) <= len(fine[0].Points()))
}

func TestFlattenQuad(t *testing.T) {
	p := &Path{}
	p.MoveTo(0, 0)
	p.QuadraticCurveTo(50, 100, 100, 0)
	shapes := Flatten(p, 1.0, false)
	pts := shapes[0].Points()
	test.T(t, pts[0], Point{0, 0})
	test.T(t, pts[len(pts)-1], Point{100, 0})
	// midpoint of the curve must bulge toward the control point
	mid := pts[len(pts)/2]
	test.That(t, mid.Y > 0)
}

func TestFlattenArc(t *testing.T) {
	p := &Path{}
	p.MoveTo(10, 0)
	p.EllipticalArcTo(10, 10, 0, false, true, -10, 0)
	shapes := Flatten(p, 1.0, false)
	pts := shapes[0].Points()
	for _, pt := range pts {
		test.That(t, math.Abs(pt.Length()-10) < 0.3)
	}
}

func TestFlattenEmptyPath(t *testing.T) {
	p := &Path{}
	shapes := Flatten(p, 1.0, true)
	test.T(t, len(shapes), 0)
}
