package sweep

import (
	"fmt"
	"testing"

	"github.com/tdewolff/test"

	"github.com/dewolffkit/raster"
)

func rectSegments(x0, y0, x1, y1 float64) []raster.Segment {
	d := fmt.Sprintf("M%g %gL%g %gL%g %gL%g %gZ", x0, y0, x1, y0, x1, y1, x0, y1)
	shapes := raster.Flatten(raster.MustParsePath(d), 1.0, true)
	return raster.SegmentsAll(shapes)
}

func TestScanlineCoverageFullRow(t *testing.T) {
	segs := rectSegments(0, 0, 10, 10)
	cov := make([]uint8, 10)
	ScanlineCoverage(segs, raster.NonZero, 5, 10, cov)
	for _, c := range cov {
		test.T(t, c, uint8(255))
	}
}

func TestScanlineCoverageOutsideShape(t *testing.T) {
	segs := rectSegments(0, 0, 10, 10)
	cov := make([]uint8, 10)
	ScanlineCoverage(segs, raster.NonZero, 20, 10, cov)
	for _, c := range cov {
		test.T(t, c, uint8(0))
	}
}

func TestScanlineCoverageHalfPixelEdge(t *testing.T) {
	segs := rectSegments(0.5, 0, 10.5, 10)
	cov := make([]uint8, 12)
	ScanlineCoverage(segs, raster.NonZero, 5, 12, cov)
	test.That(t, cov[0] > 0 && cov[0] < 255)
	test.T(t, cov[5], uint8(255))
}

func TestAddFractionalSinglePixel(t *testing.T) {
	out := make([]float64, 4)
	addFractional(out, 4, 1.2, 1.8)
	test.Float(t, out[1], 0.6)
}

func TestAddFractionalMultiPixel(t *testing.T) {
	out := make([]float64, 4)
	addFractional(out, 4, 0.5, 2.5)
	test.Float(t, out[0], 0.5)
	test.Float(t, out[1], 1.0)
	test.Float(t, out[2], 0.5)
}
