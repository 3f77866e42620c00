package raster

import "math"

// PrimitiveCell returns the matrix mapping the unit square onto the
// parallelogram spanned by vectors a and b, the most general repeat
// cell a tiled image can be placed on.
func PrimitiveCell(a, b Point) Matrix {
	A := a.Length()
	B := a.PerpDot(b) / A
	s := a.Dot(b) / A / B
	return Identity.Rotate(a.Angle() * 180.0 / math.Pi).Shear(s, 0.0).Scale(A, B)
}

// SquareCell returns the repeat cell for a square tile with side a.
func SquareCell(a float64) Matrix {
	return Identity.Scale(a, a)
}

// RectangleCell returns the repeat cell for a w-by-h rectangular tile.
func RectangleCell(w, h float64) Matrix {
	return Identity.Scale(w, h)
}

// RhombusCell returns the repeat cell for a rhombus tile with side a,
// its two spanning edges at 120 degrees.
func RhombusCell(a float64) Matrix {
	return PrimitiveCell(Point{a, 0.0}, Point{a, 0.0}.Rot(120.0*math.Pi/180.0, Point{}))
}

// ParallelogramCell returns the repeat cell for a parallelogram tile
// with sides a and b at angle rot (degrees) to each other.
func ParallelogramCell(a, b, rot float64) Matrix {
	return PrimitiveCell(Point{a, 0.0}, Point{b, 0.0}.Rot(rot*math.Pi/180.0, Point{}))
}

// TileCells enumerates every placement of cell that is needed to cover
// dst (a clip/fill region's bounds) with copies of a tile whose own
// extent is src, returning one translated Matrix per placement. Used to
// expand a TiledImagePaint's single Cell into the concrete set of
// repeats overlapping a fill's bounding box, e.g. for a renderer that
// wants to draw individual tile instances instead of sampling Cell's
// inverse per pixel.
func TileCells(cell Matrix, dst, src Rect) []Matrix {
	invCell := cell.Inv()
	corners := []Point{
		invCell.Dot(Point{dst.X, dst.Y}),
		invCell.Dot(Point{dst.X + dst.W, dst.Y}),
		invCell.Dot(Point{dst.X + dst.W, dst.Y + dst.H}),
		invCell.Dot(Point{dst.X, dst.Y + dst.H}),
	}
	x0, x1 := corners[0].X, corners[0].X
	y0, y1 := corners[0].Y, corners[0].Y
	for _, c := range corners[1:] {
		x0 = math.Min(x0, c.X)
		x1 = math.Max(x1, c.X)
		y0 = math.Min(y0, c.Y)
		y1 = math.Max(y1, c.Y)
	}

	cellBounds := src.Transform(invCell)
	x0 -= cellBounds.X + cellBounds.W - 1.0
	y0 -= cellBounds.Y + cellBounds.H - 1.0
	x1 -= cellBounds.X
	y1 -= cellBounds.Y

	var cells []Matrix
	for y := math.Floor(y0); y < y1; y += 1.0 {
		for x := math.Floor(x0); x < x1; x += 1.0 {
			p := cell.Dot(Point{x, y})
			if rectsOverlap(src.Transform(Identity.Translate(p.X, p.Y)), dst) {
				cells = append(cells, cell.Translate(x, y))
			}
		}
	}
	return cells
}

func rectsOverlap(a, b Rect) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H
}
