package raster

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestComputeBoundsRect(t *testing.T) {
	p := MustParsePath("M0 0L10 0L10 10L0 10Z")
	r := ComputeBounds(p, nil)
	test.T(t, r, Rect{0, 0, 10, 10})
}

func TestComputeBoundsWithTransform(t *testing.T) {
	p := MustParsePath("M0 0L10 0L10 10L0 10Z")
	m := Identity.Translate(5, 5).Scale(2, 2)
	r := ComputeBounds(p, &m)
	test.T(t, r, Rect{5, 5, 20, 20})
}

func TestComputeBoundsEmptyPath(t *testing.T) {
	r := ComputeBounds(&Path{}, nil)
	test.T(t, r, Rect{})
}

func TestBoundsOfShapesNaNYieldsZeroRect(t *testing.T) {
	shapes := []Shape{{pts: []Point{{0, 0}, {math.NaN(), 10}}}}
	r := boundsOfShapes(shapes)
	test.That(t, r.Empty())
}
