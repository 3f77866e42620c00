package raster

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestTriangulateSquare(t *testing.T) {
	shapes := Flatten(MustParsePath("M0 0L10 0L10 10L0 10Z"), 1.0, true)
	tris, err := shapes[0].Triangulate()
	test.Error(t, err)
	test.That(t, len(tris) >= 2)
}

func TestTriangulateOpenShapeErrors(t *testing.T) {
	shapes := Flatten(MustParsePath("M0 0L10 0L10 10"), 1.0, false)
	_, err := shapes[0].Triangulate()
	test.That(t, err != nil)
}
