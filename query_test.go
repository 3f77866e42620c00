package raster

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestFillOverlapsInsideRect(t *testing.T) {
	p := MustParsePath("M0 0L10 0L10 10L0 10Z")
	test.That(t, FillOverlaps(p, Point{5, 5}, nil, NonZero))
	test.That(t, !FillOverlaps(p, Point{15, 5}, nil, NonZero))
}

func TestFillOverlapsEvenOddHole(t *testing.T) {
	// outer square with an inner square cut out, wound oppositely
	p := MustParsePath("M0 0L10 0L10 10L0 10ZM3 3L3 7L7 7L7 3Z")
	test.That(t, FillOverlaps(p, Point{1, 1}, nil, EvenOdd))
	test.That(t, !FillOverlaps(p, Point{5, 5}, nil, EvenOdd))
}

func TestFillOverlapsWithTransform(t *testing.T) {
	p := MustParsePath("M0 0L10 0L10 10L0 10Z")
	m := Identity.Translate(100, 100)
	test.That(t, !FillOverlaps(p, Point{5, 5}, &m, NonZero))
	test.That(t, FillOverlaps(p, Point{105, 105}, &m, NonZero))
}

func TestStrokeOverlaps(t *testing.T) {
	p := MustParsePath("M0 0L10 0")
	test.That(t, StrokeOverlaps(p, Point{5, 0}, nil, 4, CapButt, JoinMiter, 4, NonZero))
	test.That(t, !StrokeOverlaps(p, Point{5, 10}, nil, 4, CapButt, JoinMiter, 4, NonZero))
}

func TestWindingAtOpenShapeIsZero(t *testing.T) {
	s := Shape{pts: []Point{{0, 0}}}
	test.T(t, windingAt(s, Point{0, 0}), 0)
}
