//go:build !sweep

package main

import "github.com/dewolffkit/raster"

// scanlineCoverage is the default strip-partitioned, 5x-supersampled
// engine. Built under the "sweep" tag's negation so exactly one of this
// file and engine_sweep.go compiles into the binary.
func scanlineCoverage(segs []raster.Segment, rule raster.FillRule, y, width int, cov []uint8) {
	part := raster.Partition(segs)
	raster.ScanlineCoverage(&part, rule, y, width, cov)
}

const engineName = "strip"
