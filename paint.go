package raster

import "math"

// paintKind tags which Paint variant a value holds, letting the
// fill/composite loop dispatch without a type switch over concrete types.
type paintKind int

const (
	paintSolid paintKind = iota
	paintLinearGradient
	paintRadialGradient
	paintAngularGradient
	paintImage
	paintTiledImage
)

// Paint is a fill source: a color sampler evaluated once per covered
// pixel. The concrete variants below cover spec.md §6's solid, linear,
// radial, angular and (tiled) image cases.
type Paint interface {
	paintKind() paintKind
	// At returns the premultiplied RGBA color at device coordinate (x,y).
	At(x, y float64) [4]byte
}

// SolidPaint fills with a single premultiplied color, ignoring position.
type SolidPaint struct {
	Color [4]byte
}

func (SolidPaint) paintKind() paintKind        { return paintSolid }
func (p SolidPaint) At(x, y float64) [4]byte   { return p.Color }

// GradientStop is a color anchored at an offset along a gradient's [0,1]
// parameterization.
type GradientStop struct {
	Offset float64
	Color  [4]byte
}

// GradientStops is a sorted-by-offset list of color stops, sampled by
// linear interpolation between bracketing stops and clamped outside
// [stops[0].Offset, stops[len-1].Offset].
type GradientStops []GradientStop

// Add inserts stop t (clamped to [0,1]) in sorted order, replacing any
// existing stop at the same offset.
func (g *GradientStops) Add(t float64, color [4]byte) {
	t = math.Min(math.Max(t, 0.0), 1.0)
	stop := GradientStop{t, color}
	for i := range *g {
		if Equal((*g)[i].Offset, t) {
			(*g)[i] = stop
			return
		} else if t < (*g)[i].Offset {
			*g = append((*g)[:i], append(GradientStops{stop}, (*g)[i:]...)...)
			return
		}
	}
	*g = append(*g, stop)
}

// At samples the gradient at parameter t, extending the end stops flat
// beyond [0,1].
func (g GradientStops) At(t float64) [4]byte {
	if len(g) == 0 {
		return [4]byte{}
	} else if len(g) == 1 || t <= g[0].Offset {
		return g[0].Color
	} else if g[len(g)-1].Offset <= t {
		return g[len(g)-1].Color
	}
	for i := 1; i < len(g); i++ {
		if t < g[i].Offset {
			before, after := g[i-1], g[i]
			u := (t - before.Offset) / (after.Offset - before.Offset)
			return colorLerp(before.Color, after.Color, u)
		}
	}
	return g[len(g)-1].Color
}

func colorLerp(c0, c1 [4]byte, t float64) [4]byte {
	var out [4]byte
	for i := 0; i < 4; i++ {
		out[i] = uint8(float64(c0[i])*(1.0-t) + float64(c1[i])*t + 0.5)
	}
	return out
}

// LinearGradientPaint varies color along the line from Start to End: the
// stop at offset 0 lands on Start, offset 1 on End, and the gradient is
// constant along lines perpendicular to Start-End.
type LinearGradientPaint struct {
	Start, End Point
	Stops      GradientStops
}

func (LinearGradientPaint) paintKind() paintKind { return paintLinearGradient }

func (p LinearGradientPaint) At(x, y float64) [4]byte {
	d := p.End.Sub(p.Start)
	d2 := d.Dot(d)
	if Equal(d2, 0.0) {
		return p.Stops.At(0)
	}
	v := Point{x, y}.Sub(p.Start)
	return p.Stops.At(v.Dot(d) / d2)
}

// RadialGradientPaint interpolates between two circles (C0,R0) at offset
// 0 and (C1,R1) at offset 1, following the same two-circle construction
// as SVG/CSS radial gradients.
type RadialGradientPaint struct {
	C0 Point
	R0 float64
	C1 Point
	R1 float64
	Stops GradientStops
}

func (RadialGradientPaint) paintKind() paintKind { return paintRadialGradient }

func (p RadialGradientPaint) At(x, y float64) [4]byte {
	cd := p.C1.Sub(p.C0)
	dr := p.R1 - p.R0
	a := cd.Dot(cd) - dr*dr

	pd := Point{x, y}.Sub(p.C0)
	b := pd.Dot(cd) + p.R0*dr
	c := pd.Dot(pd) - p.R0*p.R0
	t0, t1 := solveQuadratic(a, -2.0*b, c)
	if !math.IsNaN(t1) {
		return p.Stops.At(t1)
	} else if !math.IsNaN(t0) {
		return p.Stops.At(t0)
	}
	return [4]byte{}
}

// AngularGradientPaint (a conic/sweep gradient) varies color by the
// angle of (x,y) around Center, measured from Angle0 going clockwise,
// wrapping offset 1 back to offset 0.
type AngularGradientPaint struct {
	Center Point
	Angle0 float64
	Stops  GradientStops
}

func (AngularGradientPaint) paintKind() paintKind { return paintAngularGradient }

func (p AngularGradientPaint) At(x, y float64) [4]byte {
	v := Point{x, y}.Sub(p.Center)
	if Equal(v.X, 0.0) && Equal(v.Y, 0.0) {
		return p.Stops.At(0)
	}
	theta := angleNorm(v.Angle() - p.Angle0)
	return p.Stops.At(theta / (2.0 * math.Pi))
}

// ImageSource is a sampleable raster image supplied by the caller. The
// Image destination interface and render.Image do not implement it, since
// neither has an At method returning a [4]byte pixel.
type ImageSource interface {
	Width() int
	Height() int
	// At returns the premultiplied RGBA color at integer pixel (x,y);
	// out-of-range coordinates return the zero (transparent) color.
	At(x, y int) [4]byte
}

// ImagePaint samples src through Inverse, the transform mapping device
// coordinates back into src's pixel space, with nearest-neighbor
// sampling and transparent-black outside src's bounds.
type ImagePaint struct {
	Src     ImageSource
	Inverse Matrix
}

func (ImagePaint) paintKind() paintKind { return paintImage }

func (p ImagePaint) At(x, y float64) [4]byte {
	q := p.Inverse.Dot(Point{x, y})
	px, py := int(math.Floor(q.X)), int(math.Floor(q.Y))
	if px < 0 || py < 0 || px >= p.Src.Width() || py >= p.Src.Height() {
		return [4]byte{}
	}
	return p.Src.At(px, py)
}

// TiledImagePaint repeats Src across the plane according to Cell, the
// matrix mapping one repeat unit of src's pixel space onto the device
// plane (see PrimitiveCell/SquareCell/RectangleCell).
type TiledImagePaint struct {
	Src  ImageSource
	Cell Matrix
}

func (TiledImagePaint) paintKind() paintKind { return paintTiledImage }

func (p TiledImagePaint) At(x, y float64) [4]byte {
	invCell := p.Cell.Inv()
	q := invCell.Dot(Point{x, y})
	w, h := p.Src.Width(), p.Src.Height()
	if w == 0 || h == 0 {
		return [4]byte{}
	}
	px := int(math.Floor(q.X*float64(w))) % w
	py := int(math.Floor(q.Y*float64(h))) % h
	if px < 0 {
		px += w
	}
	if py < 0 {
		py += h
	}
	return p.Src.At(px, py)
}

// solveQuadratic finds the two real roots of a*t^2+b*t+c=0 in ascending
// order (NaN for a missing root), using the numerically stable form that
// avoids cancellation when b and sqrt(discriminant) are nearly equal.
func solveQuadratic(a, b, c float64) (float64, float64) {
	if a == 0.0 {
		if b == 0.0 {
			return math.NaN(), math.NaN()
		}
		return -c / b, math.NaN()
	}
	discriminant := b*b - 4.0*a*c
	if discriminant < 0.0 {
		return math.NaN(), math.NaN()
	} else if discriminant == 0.0 {
		return -b / (2.0 * a), math.NaN()
	}
	q := -0.5 * (b + math.Copysign(math.Sqrt(discriminant), b))
	r0, r1 := q/a, c/q
	if r1 < r0 {
		r0, r1 = r1, r0
	}
	return r0, r1
}
