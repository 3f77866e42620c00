package raster

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestPathBuilder(t *testing.T) {
	p := &Path{}
	p.MoveTo(0, 0).LineTo(10, 0).LineTo(10, 10).ClosePath()
	test.T(t, len(p.Commands()), 4)
	test.T(t, p.Pos(), Point{0, 0})
	test.That(t, !p.Empty())
}

func TestPathEmpty(t *testing.T) {
	p := &Path{}
	test.That(t, p.Empty())
	p.MoveTo(5, 5)
	test.That(t, p.Empty())
	p.LineTo(10, 5)
	test.That(t, !p.Empty())
}

func TestPathCopy(t *testing.T) {
	p := MustParsePath("M0 0L10 0")
	q := p.Copy()
	q.LineTo(10, 10)
	test.T(t, len(p.Commands()), 2)
	test.T(t, len(q.Commands()), 3)
}

func TestPathArc(t *testing.T) {
	p := &Path{}
	_, err := p.Arc(0, 0, 5, 0, 3.14159265/2, false)
	test.Error(t, err)
	test.T(t, len(p.Commands()), 2) // MoveTo + EllipticalArcTo

	p2 := &Path{}
	_, err = p2.Arc(0, 0, -1, 0, 1, false)
	test.That(t, err != nil)
}

func TestPathArcZeroRadius(t *testing.T) {
	p := &Path{}
	_, err := p.Arc(0, 0, 0, 0, 1, false)
	test.Error(t, err)
	test.T(t, len(p.Commands()), 0)
}

func TestPathArcTo(t *testing.T) {
	p := &Path{}
	p.MoveTo(0, 0)
	_, err := p.ArcTo(Point{10, 0}, Point{10, 10}, 2)
	test.Error(t, err)
	test.That(t, len(p.Commands()) > 1)
}

func TestPathArcToDegenerate(t *testing.T) {
	p := &Path{}
	p.MoveTo(0, 0)
	_, err := p.ArcTo(Point{5, 0}, Point{10, 0}, 2)
	test.Error(t, err)
	// collinear control points degenerate to a straight LineTo
	cmds := p.Commands()
	test.T(t, cmds[len(cmds)-1].Kind, LineAbs)
}

func TestPathTransform(t *testing.T) {
	p := MustParsePath("M0 0L10 0L10 10z")
	p.Transform(Identity.Translate(5, 5))
	test.T(t, p.Pos(), Point{5, 5})
}

func TestPathTransformPromotesRelativeMove(t *testing.T) {
	p := MustParsePath("m5 5l10 0")
	p.Transform(Identity.Translate(1, 1))
	test.T(t, p.Commands()[0].Kind, MoveAbs)
}

func TestPathAddPath(t *testing.T) {
	p := MustParsePath("M0 0L10 0")
	q := (&Path{}).LineTo(10, 10)
	p.AddPath(q)
	// q doesn't start with a Move, so AddPath splices an implicit MoveTo(0,0)
	cmds := p.Commands()
	test.T(t, len(cmds), 4)
	test.T(t, cmds[2].Kind, MoveAbs)
}

func TestCommandKindArity(t *testing.T) {
	test.T(t, Close.Arity(), 0)
	test.T(t, HLineAbs.Arity(), 1)
	test.T(t, LineAbs.Arity(), 2)
	test.T(t, QuadAbs.Arity(), 4)
	test.T(t, CubeAbs.Arity(), 6)
	test.T(t, ArcAbs.Arity(), 7)
}

func TestCommandKindString(t *testing.T) {
	test.String(t, MoveAbs.String(), "M")
	test.String(t, LineRel.String(), "l")
	test.String(t, Close.String(), "Z")
}
