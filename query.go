package raster

// FillOverlaps reports whether point p lies inside path when filled under
// rule, after applying transform if non-nil. It flattens the path, casts a
// horizontal ray from (-inf, p.y), and sums the winding of every edge
// crossing to the left of p.x.
func FillOverlaps(path *Path, p Point, transform *Matrix, rule FillRule) bool {
	q := path
	pixelScale := 1.0
	if transform != nil {
		q = path.Copy().Transform(*transform)
		pixelScale = transform.PixelScale()
	}
	shapes := Flatten(q, pixelScale, true)
	return shapesContain(shapes, p, rule)
}

// StrokeOverlaps reports whether point p lies within strokeWidth/2 of
// path's outline, i.e. whether it would be painted by a stroke of the
// given width/cap/join.
func StrokeOverlaps(path *Path, p Point, transform *Matrix, strokeWidth float64, cap LineCap, join LineJoin, miterLimit float64, rule FillRule) bool {
	q := path
	pixelScale := 1.0
	if transform != nil {
		q = path.Copy().Transform(*transform)
		pixelScale = transform.PixelScale()
	}
	shapes := Flatten(q, pixelScale, false)
	outline := Stroke(shapes, strokeWidth, cap, join, miterLimit, Dashes{}, pixelScale)
	return shapesContain(outline, p, rule)
}

func shapesContain(shapes []Shape, p Point, rule FillRule) bool {
	winding := 0
	for _, s := range shapes {
		winding += windingAt(s, p)
	}
	return shouldFill(rule, winding)
}

// windingAt returns the signed number of times shape s's boundary winds
// around p, via a horizontal ray cast to (-inf, p.y) and summing the
// winding sign of every edge that ray crosses to the left of p.x.
func windingAt(s Shape, p Point) int {
	pts := s.pts
	if len(pts) < 2 {
		return 0
	}
	winding := 0
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		if Equal(a.Y, b.Y) {
			continue
		}
		lo, hi, sign := a, b, int8(1)
		if a.Y > b.Y {
			lo, hi, sign = b, a, -1
		}
		if p.Y < lo.Y || hi.Y <= p.Y {
			continue
		}
		x := lo.X + (hi.X-lo.X)*(p.Y-lo.Y)/(hi.Y-lo.Y)
		if x < p.X {
			winding += int(sign)
		}
	}
	return winding
}
