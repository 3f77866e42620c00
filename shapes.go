package raster

import "math"

// kappa is the Bézier handle length that best approximates a quarter
// circle of unit radius: k = 4(sqrt(2)-1)/3.
const kappa = 4.0 * (math.Sqrt2 - 1.0) / 3.0

// Rect appends an axis-aligned rectangle at (x,y) with size (w,h) as a
// closed sub-path, wound clockwise in a y-down coordinate system.
func (p *Path) Rect(x, y, w, h float64) *Path {
	if Equal(w, 0.0) || Equal(h, 0.0) {
		return p
	}
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.ClosePath()
	return p
}

// RoundedRect appends a rectangle at (x,y) with size (w,h) whose four
// corners (nw, ne, se, sw) are rounded with the given radii. Radii are
// clamped to [0, min(w,h)/2]; if all are zero it degenerates to Rect.
// clockwise selects the winding direction of the corner arcs.
func (p *Path) RoundedRect(x, y, w, h, nw, ne, se, sw float64, clockwise bool) *Path {
	if Equal(w, 0.0) || Equal(h, 0.0) {
		return p
	}
	maxR := math.Min(w, h) / 2.0
	clamp := func(r float64) float64 {
		if r < 0.0 {
			r = 0.0
		}
		if r > maxR {
			r = maxR
		}
		return r
	}
	nw, ne, se, sw = clamp(nw), clamp(ne), clamp(se), clamp(sw)
	if Equal(nw, 0.0) && Equal(ne, 0.0) && Equal(se, 0.0) && Equal(sw, 0.0) {
		return p.Rect(x, y, w, h)
	}

	sweep := clockwise
	p.MoveTo(x+nw, y)
	p.LineTo(x+w-ne, y)
	if ne > 0 {
		p.arcCorner(x+w-ne, y+ne, ne, sweep)
	}
	p.LineTo(x+w, y+h-se)
	if se > 0 {
		p.arcCorner(x+w-se, y+h-se, se, sweep)
	}
	p.LineTo(x+sw, y+h)
	if sw > 0 {
		p.arcCorner(x+sw, y+h-sw, sw, sweep)
	}
	p.LineTo(x, y+nw)
	if nw > 0 {
		p.arcCorner(x+nw, y+nw, nw, sweep)
	}
	p.ClosePath()
	return p
}

// arcCorner appends a quarter-circle Bézier approximation around center at
// radius r, from the pen to the point a quarter turn further on: clockwise
// (in y-down coordinates) when sweep is true, counter-clockwise otherwise.
func (p *Path) arcCorner(cx, cy, r float64, sweep bool) {
	from := p.Pos()
	vx, vy := from.X-cx, from.Y-cy
	// rotate the radius vector 90 degrees to find the end point and the
	// tangent direction at each endpoint (perpendicular to its radius).
	var ex, ey float64
	if sweep {
		ex, ey = -vy, vx
	} else {
		ex, ey = vy, -vx
	}
	toX, toY := cx+ex, cy+ey

	h := kappa * r
	fromTanX, fromTanY := -vy, vx
	toTanX, toTanY := -ey, ex
	if !sweep {
		fromTanX, fromTanY = vy, -vx
		toTanX, toTanY = ey, -ex
	}
	cp1x := from.X + fromTanX/r*h
	cp1y := from.Y + fromTanY/r*h
	cp2x := toX - toTanX/r*h
	cp2y := toY - toTanY/r*h
	p.BezierCurveTo(cp1x, cp1y, cp2x, cp2y, toX, toY)
}

// Ellipse appends a full ellipse centered at (cx,cy) with radii (rx,ry) as
// a closed sub-path, built from four Bézier quarter arcs.
func (p *Path) Ellipse(cx, cy, rx, ry float64) *Path {
	if Equal(rx, 0.0) || Equal(ry, 0.0) {
		return p
	}
	h := kappa
	p.MoveTo(cx+rx, cy)
	p.BezierCurveTo(cx+rx, cy+h*ry, cx+h*rx, cy+ry, cx, cy+ry)
	p.BezierCurveTo(cx-h*rx, cy+ry, cx-rx, cy+h*ry, cx-rx, cy)
	p.BezierCurveTo(cx-rx, cy-h*ry, cx-h*rx, cy-ry, cx, cy-ry)
	p.BezierCurveTo(cx+h*rx, cy-ry, cx+rx, cy-h*ry, cx+rx, cy)
	p.ClosePath()
	return p
}

// Circle appends a full circle centered at (cx,cy) with radius r.
func (p *Path) Circle(cx, cy, r float64) *Path {
	return p.Ellipse(cx, cy, r, r)
}

// Polygon appends a regular polygon centered at center, with the given
// circumradius (size) and number of sides (sides must be >= 3). The first
// vertex points straight up (north).
func (p *Path) Polygon(center Point, size float64, sides int) *Path {
	if sides < 3 || Equal(size, 0.0) {
		return p
	}
	dtheta := 2.0 * math.Pi / float64(sides)
	theta0 := -math.Pi / 2.0
	for i := 0; i < sides; i++ {
		theta := theta0 + float64(i)*dtheta
		x := center.X + size*math.Cos(theta)
		y := center.Y + size*math.Sin(theta)
		if i == 0 {
			p.MoveTo(x, y)
		} else {
			p.LineTo(x, y)
		}
	}
	p.ClosePath()
	return p
}
