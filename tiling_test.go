package raster

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestSquareCell(t *testing.T) {
	m := SquareCell(10)
	test.T(t, m.Dot(Point{1, 1}), Point{10, 10})
}

func TestRectangleCell(t *testing.T) {
	m := RectangleCell(10, 20)
	test.T(t, m.Dot(Point{1, 1}), Point{10, 20})
}

func TestPrimitiveCellAxisAligned(t *testing.T) {
	m := PrimitiveCell(Point{10, 0}, Point{0, 10})
	p := m.Dot(Point{1, 1})
	test.That(t, p.Equals(Point{10, 10}))
}

func TestTileCellsCoversDestination(t *testing.T) {
	cell := SquareCell(10)
	dst := Rect{0, 0, 25, 25}
	src := Rect{0, 0, 10, 10}
	cells := TileCells(cell, dst, src)
	// a 25x25 region tiled by 10x10 cells needs at least a 3x3 grid
	test.That(t, len(cells) >= 9)
}

func TestRectsOverlap(t *testing.T) {
	test.That(t, rectsOverlap(Rect{0, 0, 10, 10}, Rect{5, 5, 10, 10}))
	test.That(t, !rectsOverlap(Rect{0, 0, 10, 10}, Rect{20, 20, 10, 10}))
}
