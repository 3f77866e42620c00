package raster

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func flatten(s string) []Shape {
	return Flatten(MustParsePath(s), 1.0, false)
}

func TestStrokeWidthZeroIsNoop(t *testing.T) {
	shapes := Stroke(flatten("M0 0L10 0"), 0, CapButt, JoinMiter, 4, Dashes{}, 1.0)
	test.T(t, len(shapes), 0)
}

func TestStrokeButtCapIsFlush(t *testing.T) {
	shapes := Stroke(flatten("M0 0L10 0"), 2, CapButt, JoinMiter, 4, Dashes{}, 1.0)
	test.T(t, len(shapes), 1)
	for _, p := range shapes[0].Points() {
		test.That(t, p.X >= -1e-6 && p.X <= 10+1e-6)
	}
}

func TestStrokeSquareCapExtendsHalfWidth(t *testing.T) {
	shapes := Stroke(flatten("M0 0L10 0"), 2, CapSquare, JoinMiter, 4, Dashes{}, 1.0)
	maxX := math.Inf(-1)
	for _, p := range shapes[0].Points() {
		maxX = math.Max(maxX, p.X)
	}
	test.That(t, maxX > 10.5)
}

func TestStrokeRoundCapBulges(t *testing.T) {
	shapes := Stroke(flatten("M0 0L10 0"), 2, CapRound, JoinMiter, 4, Dashes{}, 1.0)
	maxX := math.Inf(-1)
	for _, p := range shapes[0].Points() {
		maxX = math.Max(maxX, p.X)
	}
	test.That(t, maxX > 10.5)
}

func TestStrokeClosedShapeProducesTwoOutlines(t *testing.T) {
	shapes := Stroke(flatten("M0 0L10 0L10 10L0 10Z"), 2, CapButt, JoinMiter, 4, Dashes{}, 1.0)
	test.T(t, len(shapes), 2)
}

func TestStrokeMiterJoin(t *testing.T) {
	shapes := Stroke(flatten("M0 0L10 0L10 10"), 2, CapButt, JoinMiter, 10, Dashes{}, 1.0)
	test.T(t, len(shapes), 1)
	// reach is measured along the corner's outward diagonal (+x, -y)
	reach := math.Inf(-1)
	for _, p := range shapes[0].Points() {
		reach = math.Max(reach, p.X-p.Y)
	}
	// the outer corner of a 90deg miter, (11,-1), extends beyond the
	// unmitered corner points (10,-1) and (11,0), which reach only 11
	test.That(t, reach > 11.0)
}

func TestStrokeBevelJoinStaysCloser(t *testing.T) {
	miter := Stroke(flatten("M0 0L10 0L10 10"), 2, CapButt, JoinMiter, 10, Dashes{}, 1.0)
	bevel := Stroke(flatten("M0 0L10 0L10 10"), 2, CapButt, JoinBevel, 10, Dashes{}, 1.0)
	// reach along the corner's outward diagonal (+x, -y)
	maxMiter, maxBevel := math.Inf(-1), math.Inf(-1)
	for _, p := range miter[0].Points() {
		maxMiter = math.Max(maxMiter, p.X-p.Y)
	}
	for _, p := range bevel[0].Points() {
		maxBevel = math.Max(maxBevel, p.X-p.Y)
	}
	test.That(t, maxBevel < maxMiter)
}

func TestStrokeDashes(t *testing.T) {
	shapes := Stroke(flatten("M0 0L20 0"), 2, CapButt, JoinMiter, 4,
		Dashes{Pattern: []float64{5, 5}}, 1.0)
	test.That(t, len(shapes) >= 2)
}

func TestStrokeDashOffset(t *testing.T) {
	a := Stroke(flatten("M0 0L20 0"), 2, CapButt, JoinMiter, 4,
		Dashes{Pattern: []float64{5, 5}, Offset: 0}, 1.0)
	b := Stroke(flatten("M0 0L20 0"), 2, CapButt, JoinMiter, 4,
		Dashes{Pattern: []float64{5, 5}, Offset: 2.5}, 1.0)
	test.That(t, len(a) > 0 && len(b) > 0)
}
