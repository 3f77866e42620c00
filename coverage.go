package raster

import "math"

// FillRule selects how the running winding count at a point decides
// whether that point is filled.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

func shouldFill(rule FillRule, winding int) bool {
	if rule == EvenOdd {
		return winding%2 != 0
	}
	return winding != 0
}

const aaQuality = 5

// aaSampleOffsets are the five vertical sub-pixel sample offsets within a
// scanline, step 1/5 starting at 1/10, nudged by epsilon so a sample never
// lands exactly on an edge's endpoint y.
var aaSampleOffsets = [aaQuality]float64{
	0.1 + 1e-7, 0.3 + 1e-7, 0.5 + 1e-7, 0.7 + 1e-7, 0.9 + 1e-7,
}

// ScanlineCoverage computes the per-pixel coverage (0..255) of one
// destination scanline (the pixel row [y, y+1)) into cov, which must be at
// least width bytes and is fully overwritten (including zeroed where
// uncovered). part is the partitioning over the filled shapes' segments.
func ScanlineCoverage(part *Partitioning, rule FillRule, y, width int, cov []uint8) {
	for i := range cov[:width] {
		cov[i] = 0
	}
	if len(part.Strips) == 0 || part.StripHeight <= 0 {
		return
	}
	stripIdx := int((float64(y) - part.StartY) / part.StripHeight)
	if stripIdx < 0 || stripIdx >= len(part.Strips) {
		return
	}
	strip := &part.Strips[stripIdx]
	if len(strip.Entries) == 0 {
		return
	}

	if !strip.RequiresAntiAliasing {
		accumulateSample(strip, rule, float64(y)+0.5+1e-7, 255, width, cov, true)
		return
	}

	increment := uint16(255 / aaQuality)
	for _, off := range aaSampleOffsets {
		accumulateSample(strip, rule, float64(y)+off, increment, width, cov, false)
	}
}

// accumulateSample computes hits for one horizontal sample line, sorts
// them, walks the filled spans, and adds weight coverage to cov -- full
// weight to interior pixels and fractional weight to the two pixels that
// straddle each span's edges when exact is false (antialiased mode). When
// exact is true (non-AA single sample) whole pixels in range are set to 255.
func accumulateSample(strip *Strip, rule FillRule, yLine float64, weight uint16, width int, cov []uint8, exact bool) {
	hits := make([]hit, 0, len(strip.Entries))
	for _, e := range strip.Entries {
		lo, hi := e.At.Y, e.To.Y
		if yLine < lo || hi <= yLine {
			continue
		}
		x := e.xAt(yLine)
		if x > float64(width) {
			x = float64(width)
		}
		hits = append(hits, hit{X: x, Winding: e.Winding})
	}
	if len(hits) == 0 {
		return
	}
	sortHits(hits)

	winding := 0
	i := 0
	var prevX float64
	inSpan := false
	for i < len(hits) {
		x := hits[i].X
		sum := 0
		for i < len(hits) && Equal(hits[i].X, x) {
			sum += int(hits[i].Winding)
			i++
		}
		wasFilled := shouldFill(rule, winding)
		winding += sum
		nowFilled := shouldFill(rule, winding)

		if !wasFilled && nowFilled {
			prevX = x
			inSpan = true
		} else if wasFilled && !nowFilled && inSpan {
			addSpanCoverage(cov, width, prevX, x, weight, exact)
			inSpan = false
		}
	}
}

func addSpanCoverage(cov []uint8, width int, x0, x1 float64, weight uint16, exact bool) {
	if x1 <= x0 {
		return
	}
	if x0 < 0 {
		x0 = 0
	}
	if x1 > float64(width) {
		x1 = float64(width)
	}
	if x1 <= x0 {
		return
	}

	if exact {
		p0 := int(math.Floor(x0))
		p1 := int(math.Ceil(x1))
		for px := p0; px < p1 && px < width; px++ {
			if px >= 0 {
				cov[px] = 255
			}
		}
		return
	}

	left := int(math.Floor(x0))
	right := int(math.Floor(x1))
	if left == right {
		addCoverage(cov, left, width, weight, x1-x0)
		return
	}
	addCoverage(cov, left, width, weight, float64(left+1)-x0)
	for px := left + 1; px < right; px++ {
		addCoverage(cov, px, width, weight, 1.0)
	}
	if right < width {
		addCoverage(cov, right, width, weight, x1-float64(right))
	}
}

func addCoverage(cov []uint8, px, width int, weight uint16, frac float64) {
	if px < 0 || px >= width || frac <= 0.0 {
		return
	}
	add := uint16(float64(weight) * frac)
	v := uint16(cov[px]) + add
	if v > 255 {
		v = 255
	}
	cov[px] = uint8(v)
}
