package raster

import (
	"fmt"
	"math"
)

// CommandKind tags the 19 path command variants: absolute and relative
// forms of move, line, horizontal/vertical line, cubic and smooth-cubic
// Bézier, quadratic and smooth-quadratic Bézier, elliptical arc, plus
// close. Each kind has a fixed declared arity (0, 1, 2, 4, 6, or 7).
type CommandKind uint8

const (
	MoveAbs CommandKind = iota
	MoveRel
	LineAbs
	LineRel
	HLineAbs
	HLineRel
	VLineAbs
	VLineRel
	CubeAbs
	CubeRel
	SmoothCubeAbs
	SmoothCubeRel
	QuadAbs
	QuadRel
	SmoothQuadAbs
	SmoothQuadRel
	ArcAbs
	ArcRel
	Close
)

// Arity returns the number of floats the command's payload carries.
func (k CommandKind) Arity() int {
	switch k {
	case Close:
		return 0
	case HLineAbs, HLineRel, VLineAbs, VLineRel:
		return 1
	case MoveAbs, MoveRel, LineAbs, LineRel, SmoothQuadAbs, SmoothQuadRel:
		return 2
	case QuadAbs, QuadRel, SmoothCubeAbs, SmoothCubeRel:
		return 4
	case CubeAbs, CubeRel:
		return 6
	case ArcAbs, ArcRel:
		return 7
	}
	panic("raster: unknown command kind")
}

// IsRelative reports whether the command's coordinates are relative to
// the current pen position.
func (k CommandKind) IsRelative() bool {
	switch k {
	case MoveRel, LineRel, HLineRel, VLineRel, CubeRel, SmoothCubeRel, QuadRel, SmoothQuadRel, ArcRel:
		return true
	}
	return false
}

func (k CommandKind) String() string {
	switch k {
	case MoveAbs:
		return "M"
	case MoveRel:
		return "m"
	case LineAbs:
		return "L"
	case LineRel:
		return "l"
	case HLineAbs:
		return "H"
	case HLineRel:
		return "h"
	case VLineAbs:
		return "V"
	case VLineRel:
		return "v"
	case CubeAbs:
		return "C"
	case CubeRel:
		return "c"
	case SmoothCubeAbs:
		return "S"
	case SmoothCubeRel:
		return "s"
	case QuadAbs:
		return "Q"
	case QuadRel:
		return "q"
	case SmoothQuadAbs:
		return "T"
	case SmoothQuadRel:
		return "t"
	case ArcAbs:
		return "A"
	case ArcRel:
		return "a"
	case Close:
		return "Z"
	}
	return "?"
}

// PathCommand is a tagged variant over the 19 command kinds, carrying its
// payload in a fixed-size inline array so appending a command never heap
// allocates on its own.
type PathCommand struct {
	Kind CommandKind
	Args [7]float64
}

func cmd(kind CommandKind, args ...float64) PathCommand {
	if len(args) != kind.Arity() {
		panic(fmt.Sprintf("raster: command %v expects %d args, got %d", kind, kind.Arity(), len(args)))
	}
	var c PathCommand
	c.Kind = kind
	copy(c.Args[:], args)
	return c
}

// endpoint returns the absolute end point of the command given the pen
// position base immediately before it (and, for Close, the current
// sub-path start). Horizontal/vertical lines use the other axis from base.
func (c PathCommand) endpoint(base, start Point) Point {
	rel := c.Kind.IsRelative()
	switch c.Kind {
	case MoveAbs, MoveRel, LineAbs, LineRel:
		p := Point{c.Args[0], c.Args[1]}
		if rel {
			p = base.Add(p)
		}
		return p
	case HLineAbs, HLineRel:
		x := c.Args[0]
		if rel {
			x = base.X + x
		}
		return Point{x, base.Y}
	case VLineAbs, VLineRel:
		y := c.Args[0]
		if rel {
			y = base.Y + y
		}
		return Point{base.X, y}
	case CubeAbs, CubeRel:
		p := Point{c.Args[4], c.Args[5]}
		if rel {
			p = base.Add(p)
		}
		return p
	case SmoothCubeAbs, SmoothCubeRel:
		p := Point{c.Args[2], c.Args[3]}
		if rel {
			p = base.Add(p)
		}
		return p
	case QuadAbs, QuadRel:
		p := Point{c.Args[2], c.Args[3]}
		if rel {
			p = base.Add(p)
		}
		return p
	case SmoothQuadAbs, SmoothQuadRel:
		p := Point{c.Args[0], c.Args[1]}
		if rel {
			p = base.Add(p)
		}
		return p
	case ArcAbs, ArcRel:
		p := Point{c.Args[5], c.Args[6]}
		if rel {
			p = base.Add(p)
		}
		return p
	case Close:
		return start
	}
	panic("raster: unknown command kind")
}

// Path is a mutable, ordered sequence of path commands plus the two
// running points (start of the current sub-path, and the pen) that
// builder operations maintain. A zero Path is empty and ready to use.
type Path struct {
	cmds  []PathCommand
	start Point
	at    Point
}

// Empty reports whether p has no commands, or only MoveTo/Close commands.
func (p *Path) Empty() bool {
	for _, c := range p.cmds {
		if c.Kind != MoveAbs && c.Kind != MoveRel && c.Kind != Close {
			return false
		}
	}
	return true
}

// Commands returns the path's command sequence. The returned slice must
// not be mutated.
func (p *Path) Commands() []PathCommand {
	return p.cmds
}

// Pos returns the current pen position, i.e. the endpoint of the last command.
func (p *Path) Pos() Point { return p.at }

// StartPos returns the start of the current sub-path (the last MoveTo).
func (p *Path) StartPos() Point { return p.start }

// Copy returns an independent copy of p.
func (p *Path) Copy() *Path {
	q := &Path{start: p.start, at: p.at}
	q.cmds = append(q.cmds, p.cmds...)
	return q
}

func (p *Path) append(c PathCommand) {
	end := c.endpoint(p.at, p.start)
	if c.Kind == MoveAbs || c.Kind == MoveRel {
		p.start = end
	}
	p.at = end
	p.cmds = append(p.cmds, c)
}

////////////////////////////////////////////////////////////////
// Builder operations. These always append absolute-form commands; the
// relative kinds are only produced by ParsePath, and are preserved
// through transforms and serialization for round-trip fidelity.

// MoveTo starts a new sub-path at (x,y) without connecting to the previous one.
func (p *Path) MoveTo(x, y float64) *Path {
	p.append(cmd(MoveAbs, x, y))
	return p
}

// LineTo adds a straight line from the pen to (x,y).
func (p *Path) LineTo(x, y float64) *Path {
	p.append(cmd(LineAbs, x, y))
	return p
}

// BezierCurveTo adds a cubic Bézier with the given control points and end point.
func (p *Path) BezierCurveTo(cp1x, cp1y, cp2x, cp2y, x, y float64) *Path {
	p.append(cmd(CubeAbs, cp1x, cp1y, cp2x, cp2y, x, y))
	return p
}

// QuadraticCurveTo adds a quadratic Bézier with the given control point and end point.
func (p *Path) QuadraticCurveTo(cpx, cpy, x, y float64) *Path {
	p.append(cmd(QuadAbs, cpx, cpy, x, y))
	return p
}

// EllipticalArcTo adds an elliptical arc per the SVG arc parameterization.
func (p *Path) EllipticalArcTo(rx, ry, rot float64, largeArc, sweep bool, x, y float64) *Path {
	p.append(cmd(ArcAbs, rx, ry, rot, boolToFloat(largeArc), boolToFloat(sweep), x, y))
	return p
}

func boolToFloat(b bool) float64 {
	if b {
		return 1.0
	}
	return 0.0
}

// ClosePath closes the current sub-path with a line back to its start.
func (p *Path) ClosePath() *Path {
	p.append(cmd(Close))
	return p
}

// AddPath appends the commands of q to p. If p is non-empty and q does not
// start with a Move, an implicit MoveTo(0,0) is inserted first so that q's
// first real command still has a well-defined pen to act from, mirroring
// how builders commonly splice in sub-paths.
func (p *Path) AddPath(q *Path) *Path {
	if q == nil || len(q.cmds) == 0 {
		return p
	}
	if len(p.cmds) > 0 {
		first := q.cmds[0].Kind
		if first != MoveAbs && first != MoveRel {
			p.MoveTo(0.0, 0.0)
		}
	}
	for _, c := range q.cmds {
		p.append(c)
	}
	return p
}

// Arc adds a circular arc centered at (cx,cy) with radius r, running from
// angle a0 to a1 (radians). ccw selects the sweep direction. Radius 0 is a
// no-op; negative radius is a fatal input error.
func (p *Path) Arc(cx, cy, r, a0, a1 float64, ccw bool) (*Path, error) {
	if r < 0.0 {
		return p, &Error{Op: "Arc", Msg: "radius must not be negative"}
	}
	if r == 0.0 {
		return p, nil
	}

	x0 := cx + r*math.Cos(a0)
	y0 := cy + r*math.Sin(a0)
	if p.Empty() && len(p.cmds) == 0 {
		p.MoveTo(x0, y0)
	} else if !p.Pos().Equals(Point{x0, y0}) {
		p.LineTo(x0, y0)
	}

	delta := a1 - a0
	if ccw {
		for delta > 0 {
			delta -= 2 * math.Pi
		}
	} else {
		for delta < 0 {
			delta += 2 * math.Pi
		}
	}

	full := math.Abs(delta) >= 2*math.Pi-Epsilon
	if full {
		mid := a0 + delta/2
		xm := cx + r*math.Cos(mid)
		ym := cy + r*math.Sin(mid)
		sweep := delta > 0
		p.EllipticalArcTo(r, r, 0, false, sweep, xm, ym)
		x1 := cx + r*math.Cos(a0) // back to start, two half-circles
		y1 := cy + r*math.Sin(a0)
		p.EllipticalArcTo(r, r, 0, false, sweep, x1, y1)
		return p, nil
	}

	x1 := cx + r*math.Cos(a1)
	y1 := cy + r*math.Sin(a1)
	largeArc := math.Abs(delta) > math.Pi
	sweep := delta > 0
	p.EllipticalArcTo(r, r, 0, largeArc, sweep, x1, y1)
	return p, nil
}

// ArcTo adds a circular arc of radius r that is tangent to the two lines
// (pen->c1) and (c1->c2), per the HTML canvas arcTo semantics. Negative
// radius is a fatal error; a zero radius or collinear control points
// degenerate to a straight LineTo(c1).
func (p *Path) ArcTo(c1, c2 Point, r float64) (*Path, error) {
	if r < 0.0 {
		return p, &Error{Op: "ArcTo", Msg: "radius must not be negative"}
	}
	p0 := p.Pos()
	v0 := p0.Sub(c1)
	v1 := c2.Sub(c1)
	if r == 0.0 || Equal(v0.PerpDot(v1), 0.0) {
		p.LineTo(c1.X, c1.Y)
		return p, nil
	}

	a0 := v0.Angle()
	a1 := v1.Angle()
	half := angleNorm(a1-a0) / 2
	if half > math.Pi/2 {
		half -= math.Pi
	}
	// distance from c1 to the tangent points along each leg
	dist := r / math.Abs(math.Tan(half))
	if math.IsInf(dist, 0) || math.IsNaN(dist) {
		p.LineTo(c1.X, c1.Y)
		return p, nil
	}

	t0 := c1.Add(v0.Norm(dist))
	t1 := c1.Add(v1.Norm(dist))

	// center of the arc circle lies along the bisector at distance r/sin(half)
	bisectorLen := r / math.Sin(math.Abs(half))
	center := c1.Add(v0.Norm(1.0).Add(v1.Norm(1.0)).Norm(bisectorLen))

	sweep := v0.PerpDot(v1) < 0
	ca0 := t0.Sub(center).Angle()
	ca1 := t1.Sub(center).Angle()
	delta := angleNorm(ca1 - ca0)
	if !sweep {
		delta = delta - 2*math.Pi
	}
	largeArc := math.Abs(delta) > math.Pi

	if !p.Pos().Equals(t0) {
		p.LineTo(t0.X, t0.Y)
	}
	p.EllipticalArcTo(r, r, 0, largeArc, sweep, t1.X, t1.Y)
	return p, nil
}

// Transform applies the affine transform m in place. Relative commands have
// their translation component zeroed (only the linear part applies). Arc
// radii are scaled by the transform's axis scale; arc endpoints are fully
// transformed. If the first command is a relative move, it is promoted to
// absolute first since there is no pen to be relative to.
func (p *Path) Transform(m Matrix) *Path {
	if len(p.cmds) > 0 && p.cmds[0].Kind == MoveRel {
		p.cmds[0].Kind = MoveAbs
	}
	sx, sy := m.AxisScale()
	var start, pen Point // untransformed pen, for absolute H/V
	for i := range p.cmds {
		c := &p.cmds[i]
		base := pen
		pen = c.endpoint(base, start)
		if c.Kind == MoveAbs || c.Kind == MoveRel {
			start = pen
		}
		rel := c.Kind.IsRelative()
		transformPoint := func(x, y float64) (float64, float64) {
			var q Point
			if rel {
				q = m.DotLinear(Point{x, y})
			} else {
				q = m.Dot(Point{x, y})
			}
			return q.X, q.Y
		}
		switch c.Kind {
		case MoveAbs, MoveRel, LineAbs, LineRel:
			c.Args[0], c.Args[1] = transformPoint(c.Args[0], c.Args[1])
		case HLineAbs, HLineRel:
			// promote to a general line so the transform's shear/rotation applies
			x, y := c.Args[0], 0.0
			if c.Kind == HLineAbs {
				y = base.Y
				c.Kind = LineAbs
			} else {
				c.Kind = LineRel
			}
			c.Args[0], c.Args[1] = transformPoint(x, y)
		case VLineAbs, VLineRel:
			x, y := 0.0, c.Args[0]
			if c.Kind == VLineAbs {
				x = base.X
				c.Kind = LineAbs
			} else {
				c.Kind = LineRel
			}
			c.Args[0], c.Args[1] = transformPoint(x, y)
		case CubeAbs, CubeRel:
			c.Args[0], c.Args[1] = transformPoint(c.Args[0], c.Args[1])
			c.Args[2], c.Args[3] = transformPoint(c.Args[2], c.Args[3])
			c.Args[4], c.Args[5] = transformPoint(c.Args[4], c.Args[5])
		case SmoothCubeAbs, SmoothCubeRel:
			c.Args[0], c.Args[1] = transformPoint(c.Args[0], c.Args[1])
			c.Args[2], c.Args[3] = transformPoint(c.Args[2], c.Args[3])
		case QuadAbs, QuadRel:
			c.Args[0], c.Args[1] = transformPoint(c.Args[0], c.Args[1])
			c.Args[2], c.Args[3] = transformPoint(c.Args[2], c.Args[3])
		case SmoothQuadAbs, SmoothQuadRel:
			c.Args[0], c.Args[1] = transformPoint(c.Args[0], c.Args[1])
		case ArcAbs, ArcRel:
			c.Args[0] *= sx
			c.Args[1] *= sy
			c.Args[5], c.Args[6] = transformPoint(c.Args[5], c.Args[6])
		case Close:
		}
	}
	p.recomputePen()
	return p
}

// recomputePen walks the command list to restore the cached start/at
// points after an in-place mutation such as Transform.
func (p *Path) recomputePen() {
	var start, at Point
	for _, c := range p.cmds {
		end := c.endpoint(at, start)
		if c.Kind == MoveAbs || c.Kind == MoveRel {
			start = end
		}
		at = end
	}
	p.start, p.at = start, at
}

// Error reports a fatal input-validation failure.
type Error struct {
	Op  string
	Msg string
}

func (e *Error) Error() string { return fmt.Sprintf("raster: %s: %s", e.Op, e.Msg) }
