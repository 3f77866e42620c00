package raster

import "math"

// NOTE: the overall rhs/lhs accumulation strategy below is adapted from
// the stroke expansion in github.com/golang/freetype/raster, reworked to
// walk already-flattened polylines (Shape) instead of path commands.

// LineCap selects how an open sub-path's two ends are finished.
type LineCap int

const (
	CapButt LineCap = iota
	CapRound
	CapSquare
)

// LineJoin selects how consecutive edges of a stroked polyline are joined.
type LineJoin int

const (
	JoinMiter LineJoin = iota
	JoinRound
	JoinBevel
)

// Dashes holds an alternating on/off length pattern. An odd-length pattern
// is conceptually doubled (concatenated with itself) so it always has an
// even number of phases.
type Dashes struct {
	Pattern []float64
	Offset  float64
}

func (d Dashes) normalized() []float64 {
	if len(d.Pattern) == 0 {
		return nil
	}
	if len(d.Pattern)%2 == 1 {
		return append(append([]float64{}, d.Pattern...), d.Pattern...)
	}
	return d.Pattern
}

// Stroke expands each shape into the filled outline of stroking it with
// the given width, cap, join, miter limit (a ratio converted to an angle
// via 2*arcsin(1/limit)), and optional dash pattern. pixelScale bounds the
// chord error of round caps/joins the same way the flattener bounds curve
// error.
func Stroke(shapes []Shape, width float64, cap LineCap, join LineJoin, miterLimit float64, dashes Dashes, pixelScale float64) []Shape {
	if width <= 0.0 {
		return nil
	}
	if pixelScale <= 0.0 {
		pixelScale = 1.0
	}
	errMargin := 0.2 / pixelScale
	halfWidth := width / 2.0

	var out []Shape
	for _, s := range shapes {
		for _, dashed := range splitDashes(s, dashes) {
			if len(dashed.pts) < 2 {
				continue
			}
			out = append(out, strokeOpenOrClosed(dashed, halfWidth, cap, join, miterLimit, errMargin)...)
		}
	}
	return out
}

// splitDashes slices shape s into open sub-polylines alternating on/off per
// the dash pattern; with no pattern, s passes through unchanged.
func splitDashes(s Shape, d Dashes) []Shape {
	pattern := d.normalized()
	if len(pattern) == 0 {
		return []Shape{s}
	}
	total := 0.0
	for _, l := range pattern {
		total += l
	}
	if total <= 0.0 {
		return []Shape{s}
	}

	pos := math.Mod(d.Offset, total)
	if pos < 0 {
		pos += total
	}
	idx := 0
	for pos >= pattern[idx] {
		pos -= pattern[idx]
		idx = (idx + 1) % len(pattern)
	}
	on := idx%2 == 0
	remaining := pattern[idx] - pos

	var result []Shape
	var cur []Point
	if on {
		cur = append(cur, s.pts[0])
	}
	for i := 1; i < len(s.pts); i++ {
		a, b := s.pts[i-1], s.pts[i]
		edgeLen := b.Sub(a).Length()
		walked := 0.0
		for walked < edgeLen {
			step := math.Min(remaining, edgeLen-walked)
			walked += step
			pt := a.Interpolate(b, walked/edgeLen)
			if on {
				cur = append(cur, pt)
			}
			remaining -= step
			if remaining <= 1e-9 {
				if on && len(cur) > 1 {
					result = append(result, Shape{pts: cur})
				}
				on = !on
				idx = (idx + 1) % len(pattern)
				remaining = pattern[idx]
				if on {
					cur = []Point{pt}
				} else {
					cur = nil
				}
			}
		}
	}
	if on && len(cur) > 1 {
		result = append(result, Shape{pts: cur})
	}
	return result
}

func strokeOpenOrClosed(s Shape, halfWidth float64, capStyle LineCap, joinStyle LineJoin, miterLimit, errMargin float64) []Shape {
	pts := s.pts
	closed := s.Closed()
	if closed {
		pts = pts[:len(pts)-1]
	}
	if len(pts) < 2 {
		return nil
	}

	var rhs, lhs []Point
	n := len(pts)
	edgeCount := n - 1
	if closed {
		edgeCount = n
	}

	normal := func(a, b Point) Point {
		return b.Sub(a).Rot90CW().Norm(halfWidth)
	}

	var n0First Point
	for i := 0; i < edgeCount; i++ {
		a := pts[i]
		b := pts[(i+1)%n]
		nrm := normal(a, b)
		if i == 0 {
			rhs = append(rhs, a.Add(nrm))
			lhs = append(lhs, a.Sub(nrm))
			n0First = nrm
		} else {
			prevB := pts[i]
			prevNrm := normal(pts[i-1], prevB)
			joinAppend(&rhs, &lhs, prevB, prevNrm, nrm, halfWidth, joinStyle, miterLimit, errMargin)
		}
		rhs = append(rhs, b.Add(nrm))
		lhs = append(lhs, b.Sub(nrm))
	}

	if closed {
		joinAppend(&rhs, &lhs, pts[0], normal(pts[n-1], pts[0]), n0First, halfWidth, joinStyle, miterLimit, errMargin)
		rhsShape := Shape{pts: append(append([]Point{}, rhs...), rhs[0])}
		closedLhs := append(append([]Point{}, lhs...), lhs[0])
		lhsShape := Shape{pts: reversePoints(closedLhs)}
		return []Shape{rhsShape, lhsShape}
	}

	lastN := normal(pts[n-2], pts[n-1])
	var outline []Point
	outline = append(outline, rhs...)
	outline = appendCap(outline, pts[n-1], lastN, halfWidth, capStyle, errMargin)
	for i := len(lhs) - 1; i >= 0; i-- {
		outline = append(outline, lhs[i])
	}
	outline = appendCap(outline, pts[0], n0First.Neg(), halfWidth, capStyle, errMargin)
	outline = append(outline, outline[0])
	return []Shape{{pts: outline}}
}

func reversePoints(pts []Point) []Point {
	rev := make([]Point, len(pts))
	for i, p := range pts {
		rev[len(pts)-1-i] = p
	}
	return rev
}

// joinAppend emits the join geometry between the edge ending at pivot
// (with outward normal n0) and the edge starting there (with normal n1),
// onto the right-hand and left-hand offset polylines. Degenerate joins
// (no bend, within errMargin) are skipped.
func joinAppend(rhs, lhs *[]Point, pivot, n0, n1 Point, halfWidth float64, style LineJoin, miterLimit, errMargin float64) {
	if n0.Sub(n1).Length() < errMargin {
		return
	}
	cw := n0.Rot90CW().Dot(n1) <= 0
	// the inner side gets no join geometry, only the start of the next edge
	if cw {
		*lhs = append(*lhs, pivot.Sub(n1))
	} else {
		*rhs = append(*rhs, pivot.Add(n1))
	}

	switch style {
	case JoinRound:
		if cw {
			*rhs = append(*rhs, sampleArc(pivot, n0, n1, true, errMargin)...)
		} else {
			*lhs = append(*lhs, sampleArc(pivot, n0.Neg(), n1.Neg(), false, errMargin)...)
		}
	case JoinMiter:
		angle := n0.Angle() - n1.Angle()
		for angle > math.Pi {
			angle -= 2 * math.Pi
		}
		for angle < -math.Pi {
			angle += 2 * math.Pi
		}
		halfAngle := math.Abs(angle) / 2
		// miterAngleLimit is the bend angle below which the join falls
		// back to a bevel: 2*arcsin(1/miterLimit).
		miterAngleLimit := 2 * math.Asin(clamp01(1.0/miterLimit))
		bend := math.Pi - math.Abs(angle)
		if bend < miterAngleLimit || halfAngle < 1e-9 {
			appendBevel(rhs, lhs, pivot, n1, cw)
			return
		}
		miterLen := halfWidth / math.Cos(halfAngle)
		bisector := n0.Add(n1).Norm(miterLen)
		if cw {
			*rhs = append(*rhs, pivot.Add(bisector))
		} else {
			*lhs = append(*lhs, pivot.Sub(bisector))
		}
	default: // JoinBevel
		appendBevel(rhs, lhs, pivot, n1, cw)
	}
}

func appendBevel(rhs, lhs *[]Point, pivot, n1 Point, cw bool) {
	if cw {
		*rhs = append(*rhs, pivot.Add(n1))
	} else {
		*lhs = append(*lhs, pivot.Sub(n1))
	}
}

func appendCap(pts []Point, pivot, n0 Point, halfWidth float64, style LineCap, errMargin float64) []Point {
	switch style {
	case CapRound:
		return append(pts, sampleArc(pivot, n0, n0.Neg(), true, errMargin)...)
	case CapSquare:
		e := n0.Rot90CCW()
		return append(pts, pivot.Add(n0).Add(e), pivot.Sub(n0).Add(e), pivot.Sub(n0))
	default: // CapButt
		return append(pts, pivot.Sub(n0))
	}
}

// sampleArc walks from pivot+n0 to pivot+n1 along a circle of radius
// n0.Length() centered at pivot, clockwise or counter-clockwise, with
// enough steps that the chord sagitta stays within errMargin.
func sampleArc(pivot, n0, n1 Point, cw bool, errMargin float64) []Point {
	radius := n0.Length()
	a0 := n0.Angle()
	a1 := n1.Angle()
	delta := a1 - a0
	if cw {
		for delta < 0 {
			delta += 2 * math.Pi
		}
	} else {
		for delta > 0 {
			delta -= 2 * math.Pi
		}
	}
	if math.Abs(delta) < 1e-9 {
		return nil
	}
	step := 2 * math.Acos(clamp01(1.0-errMargin/math.Max(radius, errMargin)))
	if step <= 1e-6 || math.IsNaN(step) {
		step = math.Pi / 16
	}
	nSteps := int(math.Ceil(math.Abs(delta) / step))
	if nSteps < 1 {
		nSteps = 1
	}
	pts := make([]Point, 0, nSteps)
	for i := 1; i <= nSteps; i++ {
		a := a0 + delta*float64(i)/float64(nSteps)
		sin, cos := math.Sincos(a)
		pts = append(pts, Point{pivot.X + radius*cos, pivot.Y + radius*sin})
	}
	return pts
}

func clamp01(f float64) float64 {
	if f < -1.0 {
		return -1.0
	}
	if f > 1.0 {
		return 1.0
	}
	return f
}
