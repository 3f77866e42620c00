package raster

// Shape is an ordered, immutable sequence of points produced by the
// flattener: a polyline approximating one sub-path of a Path. A shape is
// closed when its first and last points are equal.
type Shape struct {
	pts []Point
}

// Points returns the shape's vertices. The returned slice must not be mutated.
func (s Shape) Points() []Point { return s.pts }

// Closed reports whether the shape's first and last points coincide.
func (s Shape) Closed() bool {
	return len(s.pts) > 1 && s.pts[0].Equals(s.pts[len(s.pts)-1])
}

// Reverse returns a new shape with the point order reversed, used to test
// even-odd fill symmetry and to build NonZero-cancelling mirror shapes.
func (s Shape) Reverse() Shape {
	rev := make([]Point, len(s.pts))
	for i, p := range s.pts {
		rev[len(s.pts)-1-i] = p
	}
	return Shape{pts: rev}
}

// ToPath rebuilds a Path tracing the shape's vertices, closing it if the
// shape itself is closed.
func (s Shape) ToPath() *Path {
	p := &Path{}
	if len(s.pts) == 0 {
		return p
	}
	p.MoveTo(s.pts[0].X, s.pts[0].Y)
	last := len(s.pts) - 1
	if s.Closed() {
		last--
	}
	for _, pt := range s.pts[1 : last+1] {
		p.LineTo(pt.X, pt.Y)
	}
	if s.Closed() {
		p.ClosePath()
	}
	return p
}
