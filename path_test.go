package paintlog

import "testing"

func TestPathBuilder(t *testing.T) {
	p := NewPath()
	if !p.IsEmpty() {
		t.Error("new path IsEmpty() = false")
	}

	p.MoveTo(10, 10)
	p.LineTo(20, 10)
	p.QuadraticTo(25, 15, 20, 20)
	p.CubicTo(15, 25, 10, 25, 10, 20)
	p.Close()

	els := p.Elements()
	if len(els) != 5 {
		t.Fatalf("len(Elements()) = %d, want 5", len(els))
	}
	if _, ok := els[0].(MoveTo); !ok {
		t.Errorf("els[0] = %T, want MoveTo", els[0])
	}
	if _, ok := els[2].(QuadTo); !ok {
		t.Errorf("els[2] = %T, want QuadTo", els[2])
	}
	if _, ok := els[4].(Close); !ok {
		t.Errorf("els[4] = %T, want Close", els[4])
	}
}

func TestPathCurrentPoint(t *testing.T) {
	p := NewPath()
	p.MoveTo(1, 2)
	p.LineTo(3, 4)
	if p.CurrentPoint() != Pt(3, 4) {
		t.Errorf("CurrentPoint() = %+v, want (3,4)", p.CurrentPoint())
	}

	// Close returns to the subpath start.
	p.Close()
	if p.CurrentPoint() != Pt(1, 2) {
		t.Errorf("CurrentPoint() after Close = %+v, want (1,2)", p.CurrentPoint())
	}
}

func TestPathClear(t *testing.T) {
	p := NewPath()
	p.MoveTo(1, 1)
	p.LineTo(2, 2)
	p.Clear()
	if !p.IsEmpty() {
		t.Error("IsEmpty() = false after Clear")
	}
	if p.CurrentPoint() != Pt(0, 0) {
		t.Errorf("CurrentPoint() after Clear = %+v", p.CurrentPoint())
	}
}

func TestPathCloneIsolation(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(5, 5)

	clone := p.Clone()
	p.LineTo(10, 10)

	if len(clone.Elements()) != 2 {
		t.Errorf("clone has %d elements, want 2", len(clone.Elements()))
	}
	clone.LineTo(1, 1)
	if len(p.Elements()) != 3 {
		t.Errorf("original has %d elements, want 3", len(p.Elements()))
	}
}

func TestPathBounds(t *testing.T) {
	p := NewPath()
	p.MoveTo(10, 10)
	p.LineTo(30, 40)
	p.LineTo(-5, 20)

	b := p.Bounds()
	want := NewRectFromPoints(-5, 10, 30, 40)
	if b != want {
		t.Errorf("Bounds() = %+v, want %+v", b, want)
	}
}

func TestPathBoundsIncludesControlPoints(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.QuadraticTo(50, -20, 10, 0)

	b := p.Bounds()
	if b.MaxX < 50 || b.MinY > -20 {
		t.Errorf("Bounds() = %+v, must cover control points", b)
	}
}

func TestPathBoundsEmpty(t *testing.T) {
	if got := NewPath().Bounds(); got != (Rect{}) {
		t.Errorf("empty path Bounds() = %+v, want zero rect", got)
	}
}
