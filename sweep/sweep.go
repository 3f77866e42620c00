// Package sweep is the compile-time-optional analytic rasterizer
// referenced by spec.md §6's "Environment/tuning flags": instead of binning
// segments into fixed-height strips and supersampling 5 fixed sub-pixel
// rows per scanline (the default engine in the raster package), it cuts
// each scanline at the y-events where any edge actually enters or leaves
// it, so within each resulting band no edge crossing changes which edges
// are active or in what x-order. Each band's coverage is then computed by
// the trapezoid rule: evaluate the exact fractional pixel coverage at the
// band's top and bottom y and average them, weighted by the band's height.
// Because every edge is affine in y and no topology change occurs within a
// band, this reduces to exact quadrature wherever a band's edges do not
// additionally cross a pixel column boundary mid-band; where they do, the
// two-point average is an approximation, which is the one place this
// engine's output can differ from the default strip/supersample engine.
// The package itself carries no build tag; it is not used unless a caller
// imports it explicitly (cmd/rastercli does so when built with -tags
// sweep), and the default raster package never references it. Its behavior on self-intersecting shapes (more than one
// edge occupying the same x at the same y) is unspecified, same as the
// default engine's hit-coalescing rule.
package sweep

import (
	"math"
	"sort"

	"github.com/dewolffkit/raster"
)

// ScanlineCoverage computes pixel coverage (0..255) for one destination
// scanline (the row [y, y+1)) from the raw segment list segs, writing into
// cov (which must be at least width bytes, fully overwritten). Unlike
// raster.ScanlineCoverage, it does not consume a precomputed Partitioning:
// the sweep engine's whole point is a different, partition-free strategy,
// so it re-scans segs for every call.
func ScanlineCoverage(segs []raster.Segment, rule raster.FillRule, y, width int, cov []uint8) {
	for i := range cov[:width] {
		cov[i] = 0
	}
	rowTop, rowBot := float64(y), float64(y+1)

	type active struct {
		at, to  raster.Point
		winding int8
	}
	var actives []active
	events := map[float64]bool{rowTop: true, rowBot: true}
	for _, s := range segs {
		at, to := s.At, s.To
		if to.Y <= rowTop || at.Y >= rowBot {
			continue
		}
		actives = append(actives, active{at, to, s.Winding})
		if at.Y > rowTop && at.Y < rowBot {
			events[at.Y] = true
		}
		if to.Y > rowTop && to.Y < rowBot {
			events[to.Y] = true
		}
	}
	if len(actives) == 0 {
		return
	}

	ys := make([]float64, 0, len(events))
	for e := range events {
		ys = append(ys, e)
	}
	sort.Float64s(ys)

	accum := make([]float64, width)
	xAt := func(a active, y float64) float64 {
		dy := a.to.Y - a.at.Y
		if dy == 0 {
			return a.at.X
		}
		t := (y - a.at.Y) / dy
		return a.at.X + t*(a.to.X-a.at.X)
	}

	lineCoverage := func(yLine, yMid float64, out []float64) {
		type hit struct {
			x float64
			w int8
		}
		var hits []hit
		for _, a := range actives {
			if yMid < a.at.Y || a.to.Y <= yMid {
				continue
			}
			x := xAt(a, yLine)
			if x > float64(width) {
				x = float64(width)
			}
			hits = append(hits, hit{x, a.winding})
		}
		if len(hits) == 0 {
			return
		}
		sort.Slice(hits, func(i, j int) bool { return hits[i].x < hits[j].x })

		winding := 0
		i := 0
		var spanStart float64
		inSpan := false
		shouldFill := func(w int) bool {
			if rule == raster.EvenOdd {
				return w%2 != 0
			}
			return w != 0
		}
		for i < len(hits) {
			x := hits[i].x
			sum := 0
			for i < len(hits) && hits[i].x == x {
				sum += int(hits[i].w)
				i++
			}
			was := shouldFill(winding)
			winding += sum
			now := shouldFill(winding)
			if !was && now {
				spanStart = x
				inSpan = true
			} else if was && !now && inSpan {
				addFractional(out, width, spanStart, x)
				inSpan = false
			}
		}
	}

	top := make([]float64, width)
	bot := make([]float64, width)
	for i := 0; i < len(ys)-1; i++ {
		yA, yB := ys[i], ys[i+1]
		bandH := yB - yA
		if bandH <= 0 {
			continue
		}
		for j := range top {
			top[j], bot[j] = 0, 0
		}
		yMid := (yA + yB) / 2
		lineCoverage(yA, yMid, top)
		lineCoverage(yB, yMid, bot)
		for x := 0; x < width; x++ {
			accum[x] += (top[x] + bot[x]) / 2.0 * bandH
		}
	}

	for x, v := range accum {
		c := int(v*255.0 + 0.5)
		if c < 0 {
			c = 0
		} else if c > 255 {
			c = 255
		}
		cov[x] = uint8(c)
	}
}

// addFractional adds exact fractional pixel coverage for the filled span
// [x0,x1) into out, clamped to [0,width): full 1.0 to interior pixels,
// fractional coverage to the two pixels the span's edges land in.
func addFractional(out []float64, width int, x0, x1 float64) {
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
	left := int(math.Floor(x0))
	right := int(math.Floor(x1))
	if left == right {
		if left >= 0 && left < width {
			out[left] += x1 - x0
		}
		return
	}
	if left >= 0 && left < width {
		out[left] += float64(left+1) - x0
	}
	for px := left + 1; px < right; px++ {
		if px >= 0 && px < width {
			out[px] += 1.0
		}
	}
	if right >= 0 && right < width {
		out[right] += x1 - float64(right)
	}
}
