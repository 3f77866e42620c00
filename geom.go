package raster

import (
	"fmt"
	"math"
)

// Epsilon is the smallest number below which a value is treated as zero,
// to avoid numerical floating point issues during flattening and hit-testing.
var Epsilon = 1e-10

// Equal returns true if a and b are equal within Epsilon tolerance.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// angleNorm returns theta normalized to the range [0, 2*Pi).
func angleNorm(theta float64) float64 {
	theta = math.Mod(theta, 2.0*math.Pi)
	if theta < 0.0 {
		theta += 2.0 * math.Pi
	}
	return theta
}

// Origin is the point (0,0).
var Origin = Point{0.0, 0.0}

// Point is a coordinate in 2D space.
type Point struct {
	X, Y float64
}

// Equals returns true if p and q are equal within Epsilon tolerance.
func (p Point) Equals(q Point) bool {
	return Equal(p.X, q.X) && Equal(p.Y, q.Y)
}

func (p Point) Neg() Point          { return Point{-p.X, -p.Y} }
func (p Point) Add(q Point) Point   { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point   { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) Mul(f float64) Point { return Point{f * p.X, f * p.Y} }
func (p Point) Div(f float64) Point { return Point{p.X / f, p.Y / f} }

// Rot90CW rotates the vector OP by 90 degrees clockwise.
func (p Point) Rot90CW() Point { return Point{p.Y, -p.X} }

// Rot90CCW rotates the vector OP by 90 degrees counter-clockwise.
func (p Point) Rot90CCW() Point { return Point{-p.Y, p.X} }

// Rot rotates P about p0 by phi radians counter-clockwise.
func (p Point) Rot(phi float64, p0 Point) Point {
	sinphi, cosphi := math.Sincos(phi)
	return Point{
		p0.X + cosphi*(p.X-p0.X) - sinphi*(p.Y-p0.Y),
		p0.Y + sinphi*(p.X-p0.X) + cosphi*(p.Y-p0.Y),
	}
}

// Dot returns the dot product between OP and OQ.
func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }

// PerpDot returns the perp dot product between OP and OQ.
func (p Point) PerpDot(q Point) float64 { return p.X*q.Y - p.Y*q.X }

// Length returns the length of OP.
func (p Point) Length() float64 { return math.Hypot(p.X, p.Y) }

// Angle returns the angle in radians between the x-axis and OP.
func (p Point) Angle() float64 { return math.Atan2(p.Y, p.X) }

// Norm returns OP scaled to the given length.
func (p Point) Norm(length float64) Point {
	d := p.Length()
	if Equal(d, 0.0) {
		return Point{}
	}
	return Point{p.X / d * length, p.Y / d * length}
}

// Interpolate returns the point on segment PQ at parameter t in [0,1].
func (p Point) Interpolate(q Point, t float64) Point {
	return Point{(1-t)*p.X + t*q.X, (1-t)*p.Y + t*q.Y}
}

func (p Point) String() string { return fmt.Sprintf("(%g,%g)", p.X, p.Y) }

// Rect is an axis-aligned rectangle, position plus width and height.
type Rect struct {
	X, Y, W, H float64
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool { return r.W <= 0.0 || r.H <= 0.0 }

// Add returns the smallest rectangle enclosing both r and q. A rectangle
// with no area is treated as "no geometry" and does not contribute.
func (r Rect) Add(q Rect) Rect {
	if q.Empty() {
		return r
	} else if r.Empty() {
		return q
	}
	x0 := math.Min(r.X, q.X)
	y0 := math.Min(r.Y, q.Y)
	x1 := math.Max(r.X+r.W, q.X+q.W)
	y1 := math.Max(r.Y+r.H, q.Y+q.H)
	return Rect{x0, y0, x1 - x0, y1 - y0}
}

// Contains reports whether p lies within the closed rectangle.
func (r Rect) Contains(p Point) bool {
	return r.X <= p.X && p.X <= r.X+r.W && r.Y <= p.Y && p.Y <= r.Y+r.H
}

// Transform returns the axis-aligned bounds of r after applying m.
func (r Rect) Transform(m Matrix) Rect {
	p0 := m.Dot(Point{r.X, r.Y})
	p1 := m.Dot(Point{r.X + r.W, r.Y})
	p2 := m.Dot(Point{r.X + r.W, r.Y + r.H})
	p3 := m.Dot(Point{r.X, r.Y + r.H})
	xmin := math.Min(p0.X, math.Min(p1.X, math.Min(p2.X, p3.X)))
	xmax := math.Max(p0.X, math.Max(p1.X, math.Max(p2.X, p3.X)))
	ymin := math.Min(p0.Y, math.Min(p1.Y, math.Min(p2.Y, p3.Y)))
	ymax := math.Max(p0.Y, math.Max(p1.Y, math.Max(p2.Y, p3.Y)))
	return Rect{xmin, ymin, xmax - xmin, ymax - ymin}
}

// SnapToPixels rounds a Rect outward to integer pixel boundaries.
func (r Rect) SnapToPixels() Rect {
	if r.Empty() {
		return Rect{}
	}
	x0 := math.Floor(r.X)
	y0 := math.Floor(r.Y)
	x1 := math.Ceil(r.X + r.W)
	y1 := math.Ceil(r.Y + r.H)
	return Rect{x0, y0, x1 - x0, y1 - y0}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g)-(%g,%g)", r.X, r.Y, r.X+r.W, r.Y+r.H)
}

// Matrix is a 2x3 affine transformation matrix: [a b tx; c d ty].
// Concatenation is right-to-left, so Identity.Rotate(30).Translate(20,0)
// first translates and then rotates.
type Matrix [2][3]float64

// Identity is the affine transform that maps every point to itself.
var Identity = Matrix{
	{1.0, 0.0, 0.0},
	{0.0, 1.0, 0.0},
}

// Mul combines m and q, applying q first (i.e. m.Mul(q) == m after q).
func (m Matrix) Mul(q Matrix) Matrix {
	return Matrix{{
		m[0][0]*q[0][0] + m[0][1]*q[1][0],
		m[0][0]*q[0][1] + m[0][1]*q[1][1],
		m[0][0]*q[0][2] + m[0][1]*q[1][2] + m[0][2],
	}, {
		m[1][0]*q[0][0] + m[1][1]*q[1][0],
		m[1][0]*q[0][1] + m[1][1]*q[1][1],
		m[1][0]*q[0][2] + m[1][1]*q[1][2] + m[1][2],
	}}
}

// Dot applies the transformation to point p.
func (m Matrix) Dot(p Point) Point {
	return Point{
		m[0][0]*p.X + m[0][1]*p.Y + m[0][2],
		m[1][0]*p.X + m[1][1]*p.Y + m[1][2],
	}
}

// DotLinear applies only the linear (2x2) part of the transform, ignoring
// translation. Used when transforming vectors/normals rather than points.
func (m Matrix) DotLinear(p Point) Point {
	return Point{
		m[0][0]*p.X + m[0][1]*p.Y,
		m[1][0]*p.X + m[1][1]*p.Y,
	}
}

func (m Matrix) Translate(x, y float64) Matrix {
	return m.Mul(Matrix{{1.0, 0.0, x}, {0.0, 1.0, y}})
}

func (m Matrix) Rotate(rot float64) Matrix {
	sintheta, costheta := math.Sincos(rot * math.Pi / 180.0)
	return m.Mul(Matrix{{costheta, -sintheta, 0.0}, {sintheta, costheta, 0.0}})
}

func (m Matrix) Scale(sx, sy float64) Matrix {
	return m.Mul(Matrix{{sx, 0.0, 0.0}, {0.0, sy, 0.0}})
}

func (m Matrix) Shear(sx, sy float64) Matrix {
	return m.Mul(Matrix{{1.0, sx, 0.0}, {sy, 1.0, 0.0}})
}

// Det returns the matrix determinant.
func (m Matrix) Det() float64 {
	return m[0][0]*m[1][1] - m[0][1]*m[1][0]
}

// Inv returns the matrix inverse. Panics if the matrix is singular; callers
// that accept arbitrary user matrices should check Det first.
func (m Matrix) Inv() Matrix {
	det := m.Det()
	if Equal(det, 0.0) {
		panic("raster: affine transform is singular")
	}
	return Matrix{{
		m[1][1] / det,
		-m[0][1] / det,
		-(m[1][1]*m[0][2] - m[0][1]*m[1][2]) / det,
	}, {
		-m[1][0] / det,
		m[0][0] / det,
		-(-m[1][0]*m[0][2] + m[0][0]*m[1][2]) / det,
	}}
}

// AxisScale returns the scale factors applied to the x and y axes,
// i.e. the lengths of the transformed unit vectors. Used to derive
// arc radii scaling under transform (see (*Path).Transform).
func (m Matrix) AxisScale() (float64, float64) {
	return Point{m[0][0], m[1][0]}.Length(), Point{m[0][1], m[1][1]}.Length()
}

// PixelScale returns the largest singular value of the linear part of m,
// used by the Flattener as its pixel-error scale factor.
func (m Matrix) PixelScale() float64 {
	a, b, c, d := m[0][0], m[0][1], m[1][0], m[1][1]
	// largest singular value of [[a,b],[c,d]]
	s1 := a*a + b*b + c*c + d*d
	s2 := math.Sqrt(math.Max(0, (a*a+b*b-c*c-d*d)*(a*a+b*b-c*c-d*d)+4*(a*c+b*d)*(a*c+b*d)))
	return math.Sqrt((s1 + s2) / 2.0)
}

func (m Matrix) Equals(q Matrix) bool {
	return Equal(m[0][0], q[0][0]) && Equal(m[0][1], q[0][1]) && Equal(m[1][0], q[1][0]) &&
		Equal(m[1][1], q[1][1]) && Equal(m[0][2], q[0][2]) && Equal(m[1][2], q[1][2])
}

func (m Matrix) String() string {
	return fmt.Sprintf("(%g %g; %g %g) + (%g,%g)", m[0][0], m[0][1], m[1][0], m[1][1], m[0][2], m[1][2])
}
