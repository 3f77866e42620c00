package raster

import "math"

// flattenState threads the per-command context a flattening traversal
// needs beyond the running pen: which kind the previous command was (to
// decide the implicit control point of a smooth curve) and its trailing
// control points. Plain locals, not package state, so flattening is safe
// to run concurrently over independent paths.
type flattenState struct {
	prevKind  CommandKind
	prevCtrl  Point  // last control point of a cubic/smooth-cubic
	prevCtrl2 Point  // first control point of a quadratic/smooth-quadratic (its only one)
	pen       Point
	start     Point
}

// Flatten converts p's commands into ordered polygonal sub-paths, adaptively
// subdividing curves and arcs so that no emitted segment deviates from the
// true curve by more than 0.2/pixelScale. If closeSubpaths is true, any
// sub-path left open at the end of the path is closed with a final edge
// back to its start.
func Flatten(p *Path, pixelScale float64, closeSubpaths bool) []Shape {
	if pixelScale <= 0.0 {
		pixelScale = 1.0
	}
	errMargin := 0.2 / pixelScale
	errMargin2 := errMargin * errMargin

	var shapes []Shape
	var cur []Point
	var st flattenState

	flush := func() {
		if len(cur) > 1 {
			shapes = append(shapes, Shape{pts: cur})
		}
		cur = nil
	}
	emit := func(pt Point) {
		if len(cur) > 0 && cur[len(cur)-1].Equals(pt) {
			return
		}
		cur = append(cur, pt)
	}

	for _, c := range p.cmds {
		base := st.pen
		switch c.Kind {
		case MoveAbs, MoveRel:
			flush()
			end := c.endpoint(base, st.start)
			st.pen, st.start = end, end
			emit(end)
		case LineAbs, LineRel, HLineAbs, HLineRel, VLineAbs, VLineRel:
			end := c.endpoint(base, st.start)
			emit(end)
			st.pen = end
		case CubeAbs, CubeRel:
			rel := c.Kind.IsRelative()
			cp1 := resolvePoint(c.Args[0], c.Args[1], base, rel)
			cp2 := resolvePoint(c.Args[2], c.Args[3], base, rel)
			end := resolvePoint(c.Args[4], c.Args[5], base, rel)
			flattenCubic(base, cp1, cp2, end, errMargin2, emit)
			st.prevCtrl = cp2
			st.pen = end
		case SmoothCubeAbs, SmoothCubeRel:
			rel := c.Kind.IsRelative()
			var cp1 Point
			if st.prevKind == CubeAbs || st.prevKind == CubeRel || st.prevKind == SmoothCubeAbs || st.prevKind == SmoothCubeRel {
				cp1 = base.Mul(2).Sub(st.prevCtrl)
			} else {
				cp1 = base
			}
			cp2 := resolvePoint(c.Args[0], c.Args[1], base, rel)
			end := resolvePoint(c.Args[2], c.Args[3], base, rel)
			flattenCubic(base, cp1, cp2, end, errMargin2, emit)
			st.prevCtrl = cp2
			st.pen = end
		case QuadAbs, QuadRel:
			rel := c.Kind.IsRelative()
			cp := resolvePoint(c.Args[0], c.Args[1], base, rel)
			end := resolvePoint(c.Args[2], c.Args[3], base, rel)
			flattenQuad(base, cp, end, errMargin2, emit)
			st.prevCtrl2 = cp
			st.pen = end
		case SmoothQuadAbs, SmoothQuadRel:
			rel := c.Kind.IsRelative()
			var cp Point
			if st.prevKind == QuadAbs || st.prevKind == QuadRel || st.prevKind == SmoothQuadAbs || st.prevKind == SmoothQuadRel {
				cp = base.Mul(2).Sub(st.prevCtrl2)
			} else {
				cp = base
			}
			end := resolvePoint(c.Args[0], c.Args[1], base, rel)
			flattenQuad(base, cp, end, errMargin2, emit)
			st.prevCtrl2 = cp
			st.pen = end
		case ArcAbs, ArcRel:
			rel := c.Kind.IsRelative()
			rx, ry, rot := c.Args[0], c.Args[1], c.Args[2]
			largeArc, sweep := c.Args[3] != 0.0, c.Args[4] != 0.0
			end := resolvePoint(c.Args[5], c.Args[6], base, rel)
			flattenArc(base, end, rx, ry, rot, largeArc, sweep, errMargin2, emit)
			st.pen = end
		case Close:
			if len(cur) > 0 && !cur[len(cur)-1].Equals(st.start) {
				emit(st.start)
			}
			st.pen = st.start
			flush()
		}
		st.prevKind = c.Kind
	}
	if closeSubpaths && len(cur) > 0 {
		if !cur[len(cur)-1].Equals(st.start) {
			emit(st.start)
		}
	}
	flush()
	return shapes
}

func resolvePoint(x, y float64, base Point, rel bool) Point {
	if rel {
		return base.Add(Point{x, y})
	}
	return Point{x, y}
}

func cubicAt(p0, p1, p2, p3 Point, t float64) Point {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return Point{
		a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}

func quadAt(p0, p1, p2 Point, t float64) Point {
	mt := 1 - t
	a := mt * mt
	b := 2 * mt * t
	c := t * t
	return Point{
		a*p0.X + b*p1.X + c*p2.X,
		a*p0.Y + b*p1.Y + c*p2.Y,
	}
}

// flattenCubic adaptively subdivides the cubic Bézier (p0,p1,p2,p3) into
// line segments. It walks t forward with a trial step, halving the step
// whenever the midpoint of the chord between the previous and next sample
// deviates from the true curve's own midpoint sample by more than the
// (squared) error margin, and otherwise doubling the step optimistically
// (clamped so it never overshoots t=1).
func flattenCubic(p0, p1, p2, p3 Point, errMargin2 float64, emit func(Point)) {
	t := 0.0
	step := 1.0
	prev := p0
	for t < 1.0 {
		if step > 1.0-t {
			step = 1.0 - t
		}
		next := cubicAt(p0, p1, p2, p3, t+step)
		mid := cubicAt(p0, p1, p2, p3, t+step/2)
		chordMid := prev.Interpolate(next, 0.5)
		dx, dy := mid.X-chordMid.X, mid.Y-chordMid.Y
		dist2 := dx*dx + dy*dy
		if dist2 > errMargin2 && step > 1e-6 {
			step /= 2
			continue
		}
		emit(next)
		t += step
		prev = next
		step *= 2
	}
}

// flattenQuad is the quadratic analogue of flattenCubic, with a latch that
// forbids doubling the step once a subdivision has been forced, which
// avoids oscillating between halving and doubling near an inflection.
func flattenQuad(p0, p1, p2 Point, errMargin2 float64, emit func(Point)) {
	t := 0.0
	step := 1.0
	prev := p0
	forced := false
	for t < 1.0 {
		if step > 1.0-t {
			step = 1.0 - t
		}
		next := quadAt(p0, p1, p2, t+step)
		mid := quadAt(p0, p1, p2, t+step/2)
		chordMid := prev.Interpolate(next, 0.5)
		dx, dy := mid.X-chordMid.X, mid.Y-chordMid.Y
		dist2 := dx*dx + dy*dy
		if dist2 > errMargin2 && step > 1e-6 {
			step /= 2
			forced = true
			continue
		}
		emit(next)
		t += step
		prev = next
		if !forced {
			step *= 2
		}
	}
}

// flattenArc converts the SVG endpoint arc parameterization to center form
// and adaptively subdivides it the same way as a cubic.
func flattenArc(from, to Point, rx, ry, rot float64, largeArc, sweep bool, errMargin2 float64, emit func(Point)) {
	if Equal(rx, 0.0) || Equal(ry, 0.0) || from.Equals(to) {
		emit(to)
		return
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	phi := rot * math.Pi / 180.0
	sinphi, cosphi := math.Sincos(phi)

	// step 1: compute (x1',y1'), the midpoint-frame coordinates of "from"
	dx2, dy2 := (from.X-to.X)/2, (from.Y-to.Y)/2
	x1p := cosphi*dx2 + sinphi*dy2
	y1p := -sinphi*dx2 + cosphi*dy2

	// step 2: correct out-of-range radii
	lambda := (x1p*x1p)/(rx*rx) + (y1p*y1p)/(ry*ry)
	if lambda > 1.0 {
		scale := math.Sqrt(lambda)
		rx *= scale
		ry *= scale
	}

	// step 3: compute (cx',cy')
	num := rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p
	den := rx*rx*y1p*y1p + ry*ry*x1p*x1p
	co := 0.0
	if den > 0.0 && num > 0.0 {
		co = math.Sqrt(num / den)
	}
	if largeArc == sweep {
		co = -co
	}
	cxp := co * (rx * y1p / ry)
	cyp := co * -(ry * x1p / rx)

	// step 4: compute (cx,cy) from (cx',cy')
	mid := Point{(from.X + to.X) / 2, (from.Y + to.Y) / 2}
	cx := mid.X + cosphi*cxp - sinphi*cyp
	cy := mid.Y + sinphi*cxp + cosphi*cyp

	// step 5: compute theta1 and delta-theta
	ux, uy := (x1p-cxp)/rx, (y1p-cyp)/ry
	vx, vy := (-x1p-cxp)/rx, (-y1p-cyp)/ry
	theta1 := math.Atan2(uy, ux)
	delta := math.Atan2(ux*vy-uy*vx, ux*vx+uy*vy)
	if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	} else if sweep && delta < 0 {
		delta += 2 * math.Pi
	}

	center := Point{cx, cy}
	arcAt := func(theta float64) Point {
		st, ct := math.Sincos(theta)
		x := rx * ct
		y := ry * st
		return Point{
			center.X + cosphi*x - sinphi*y,
			center.Y + sinphi*x + cosphi*y,
		}
	}

	t := 0.0
	step := 1.0
	prev := from
	for t < 1.0 {
		if step > 1.0-t {
			step = 1.0 - t
		}
		next := arcAt(theta1 + delta*(t+step))
		midPt := arcAt(theta1 + delta*(t+step/2))
		chordMid := prev.Interpolate(next, 0.5)
		ddx, ddy := midPt.X-chordMid.X, midPt.Y-chordMid.Y
		dist2 := ddx*ddx + ddy*ddy
		if dist2 > errMargin2 && step > 1e-6 {
			step /= 2
			continue
		}
		emit(next)
		t += step
		prev = next
		step *= 2
	}
}
