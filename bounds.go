package raster

import "math"

// ComputeBounds returns the smallest rectangle enclosing path's flattened
// geometry, after applying transform if non-nil. If any coordinate
// produced is NaN (e.g. from a degenerate arc), it silently returns the
// zero Rect rather than signaling an error; callers should treat an empty
// bounds as "no geometry" rather than a failure.
func ComputeBounds(path *Path, transform *Matrix) Rect {
	p := path
	pixelScale := 1.0
	if transform != nil {
		p = path.Copy().Transform(*transform)
		pixelScale = transform.PixelScale()
	}
	return boundsOfShapes(Flatten(p, pixelScale, false))
}

// boundsOfShapes is the ComputeBounds logic applied directly to already
// flattened shapes, used internally once a fill/stroke call has its
// segments in hand so it needn't re-flatten.
func boundsOfShapes(shapes []Shape) Rect {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	any := false
	for _, s := range shapes {
		for _, pt := range s.pts {
			if math.IsNaN(pt.X) || math.IsNaN(pt.Y) {
				return Rect{}
			}
			any = true
			minX, maxX = math.Min(minX, pt.X), math.Max(maxX, pt.X)
			minY, maxY = math.Min(minY, pt.Y), math.Max(maxY, pt.Y)
		}
	}
	if !any {
		return Rect{}
	}
	return Rect{minX, minY, maxX - minX, maxY - minY}
}
