package raster

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestScanlineCoverageFullRect(t *testing.T) {
	shapes := Flatten(MustParsePath("M0 0L10 0L10 10L0 10Z"), 1.0, true)
	segs := SegmentsAll(shapes)
	part := Partition(segs)

	cov := make([]uint8, 10)
	ScanlineCoverage(&part, NonZero, 5, 10, cov)
	for _, c := range cov {
		test.T(t, c, uint8(255))
	}
}

func TestScanlineCoverageOutsideShape(t *testing.T) {
	shapes := Flatten(MustParsePath("M0 0L10 0L10 10L0 10Z"), 1.0, true)
	segs := SegmentsAll(shapes)
	part := Partition(segs)

	cov := make([]uint8, 10)
	ScanlineCoverage(&part, NonZero, 100, 10, cov)
	for _, c := range cov {
		test.T(t, c, uint8(0))
	}
}

func TestScanlineCoverageHalfPixelEdge(t *testing.T) {
	shapes := Flatten(MustParsePath("M0.5 0L10.5 0L10.5 10L0.5 10Z"), 1.0, true)
	segs := SegmentsAll(shapes)
	part := Partition(segs)

	cov := make([]uint8, 12)
	ScanlineCoverage(&part, NonZero, 5, 12, cov)
	test.That(t, cov[0] > 0 && cov[0] < 255)
	test.T(t, cov[5], uint8(255))
}

func TestEvenOddVsNonZeroOverlap(t *testing.T) {
	// two same-wound overlapping rectangles: nonzero fills the union,
	// evenodd punches a hole where they both cover.
	shapes := Flatten(MustParsePath("M0 0L10 0L10 10L0 10Z"), 1.0, true)
	shapes = append(shapes, Flatten(MustParsePath("M5 0L15 0L15 10L5 10Z"), 1.0, true)...)
	segs := SegmentsAll(shapes)
	part := Partition(segs)

	covNZ := make([]uint8, 20)
	ScanlineCoverage(&part, NonZero, 5, 20, covNZ)
	covEO := make([]uint8, 20)
	ScanlineCoverage(&part, EvenOdd, 5, 20, covEO)

	test.T(t, covNZ[7], uint8(255))
	test.T(t, covEO[7], uint8(0))
}

func TestShouldFill(t *testing.T) {
	test.That(t, shouldFill(NonZero, 1))
	test.That(t, shouldFill(NonZero, -2))
	test.That(t, !shouldFill(NonZero, 0))
	test.That(t, shouldFill(EvenOdd, 1))
	test.That(t, !shouldFill(EvenOdd, 2))
}

func TestPartitionEmptySegments(t *testing.T) {
	part := Partition(nil)
	test.T(t, len(part.Strips), 0)
}

func TestPartitionStripCount(t *testing.T) {
	shapes := Flatten(MustParsePath("M0 0L10 0L10 40L0 40Z"), 1.0, true)
	segs := SegmentsAll(shapes)
	part := Partition(segs)
	test.That(t, len(part.Strips) >= 1)
	test.Float(t, part.StartY, 0.0)
}
