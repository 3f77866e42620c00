//go:build sweep

package main

import (
	"github.com/dewolffkit/raster"
	"github.com/dewolffkit/raster/sweep"
)

// scanlineCoverage swaps in the analytic sweep engine (raster/sweep) when
// the binary is built with -tags sweep, per spec.md §6's optional
// "alternative sweep rasterizer" toggle.
func scanlineCoverage(segs []raster.Segment, rule raster.FillRule, y, width int, cov []uint8) {
	sweep.ScanlineCoverage(segs, rule, y, width, cov)
}

const engineName = "sweep"
