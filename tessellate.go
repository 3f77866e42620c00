package raster

import (
	poly2tri "github.com/ByteArena/poly2tri-go"
)

// Triangulate returns a constrained Delaunay triangulation of a closed
// shape's interior, for callers that want to hand the fill off to a
// triangle-mesh renderer (e.g. a GPU path) instead of the scanline
// coverage engine. Open shapes cannot be triangulated.
func (s Shape) Triangulate() ([][3]Point, error) {
	if !s.Closed() || len(s.pts) < 4 {
		return nil, &Error{Op: "Triangulate", Msg: "shape must be closed with at least 3 distinct vertices"}
	}
	contour := make([]*poly2tri.Point, 0, len(s.pts)-1)
	for _, p := range s.pts[:len(s.pts)-1] {
		contour = append(contour, poly2tri.NewPoint(p.X, p.Y))
	}

	swctx := poly2tri.NewSweepContext(contour, false)
	swctx.Triangulate()

	var triangles [][3]Point
	for _, tr := range swctx.GetTriangles() {
		triangles = append(triangles, [3]Point{
			{tr.Points[0].X, tr.Points[0].Y},
			{tr.Points[1].X, tr.Points[1].Y},
			{tr.Points[2].X, tr.Points[2].Y},
		})
	}
	return triangles, nil
}
