package text

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func testFace(t *testing.T, size float64) *Face {
	t.Helper()
	face, err := NewFace(goregular.TTF, size)
	if err != nil {
		t.Fatalf("NewFace() error = %v", err)
	}
	return face
}

func TestNewFaceMetrics(t *testing.T) {
	face := testFace(t, 16)
	defer face.Close()

	if face.Size() != 16 {
		t.Errorf("Size() = %v, want 16", face.Size())
	}
	m := face.Metrics()
	if m.Ascent <= 0 || m.Descent <= 0 {
		t.Errorf("Metrics() = %+v, want positive ascent and descent", m)
	}
	if m.Height < m.Ascent {
		t.Errorf("line height %v below ascent %v", m.Height, m.Ascent)
	}
}

func TestNewFaceRejectsGarbage(t *testing.T) {
	if _, err := NewFace([]byte("not a font"), 12); err == nil {
		t.Error("NewFace(garbage) error = nil, want error")
	}
}

func TestWithSize(t *testing.T) {
	face := testFace(t, 12)
	defer face.Close()

	bigger, err := face.WithSize(24)
	if err != nil {
		t.Fatalf("WithSize() error = %v", err)
	}
	if bigger.Size() != 24 {
		t.Errorf("Size() = %v, want 24", bigger.Size())
	}
	if bigger.Metrics().Ascent <= face.Metrics().Ascent {
		t.Error("larger size must have larger ascent")
	}

	same, err := face.WithSize(12)
	if err != nil {
		t.Fatalf("WithSize(same) error = %v", err)
	}
	if same != face {
		t.Error("WithSize(current size) must return the same face")
	}
}

func TestShapeRun(t *testing.T) {
	face := testFace(t, 14)
	defer face.Close()

	shaper := NewShaper()
	runs := SegmentString("hello")
	if len(runs) != 1 {
		t.Fatalf("len(runs) = %d, want 1", len(runs))
	}

	glyphs := shaper.ShapeRun(runs[0], face)
	if len(glyphs) != 5 {
		t.Fatalf("len(glyphs) = %d, want 5", len(glyphs))
	}

	prevX := -1.0
	for i, g := range glyphs {
		if g.XAdvance <= 0 {
			t.Errorf("glyph %d XAdvance = %v, want > 0", i, g.XAdvance)
		}
		if g.X <= prevX && i > 0 {
			t.Errorf("glyph %d X = %v, positions must advance", i, g.X)
		}
		prevX = g.X
		if g.Cluster < 0 || g.Cluster >= len("hello") {
			t.Errorf("glyph %d Cluster = %d, out of range", i, g.Cluster)
		}
	}
}

func TestShapeRunEmpty(t *testing.T) {
	face := testFace(t, 14)
	defer face.Close()

	if glyphs := NewShaper().ShapeRun(Run{}, face); glyphs != nil {
		t.Errorf("ShapeRun(empty) = %v, want nil", glyphs)
	}
	if glyphs := NewShaper().ShapeRun(Run{Text: "x"}, nil); glyphs != nil {
		t.Errorf("ShapeRun(nil face) = %v, want nil", glyphs)
	}
}

func TestAdvanceScalesWithSize(t *testing.T) {
	small := testFace(t, 10)
	defer small.Close()
	large, err := small.WithSize(20)
	if err != nil {
		t.Fatalf("WithSize() error = %v", err)
	}

	shaper := NewShaper()
	run := SegmentString("measure")[0]

	a := shaper.Advance(run, small)
	b := shaper.Advance(run, large)
	if a <= 0 {
		t.Fatalf("Advance() = %v, want > 0", a)
	}
	if b <= a {
		t.Errorf("Advance at 20pt (%v) must exceed advance at 10pt (%v)", b, a)
	}
}

func TestShaperConcurrent(t *testing.T) {
	face := testFace(t, 12)
	defer face.Close()

	shaper := NewShaper()
	run := SegmentString("concurrent shaping")[0]

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 20; j++ {
				if got := shaper.Advance(run, face); got <= 0 {
					t.Errorf("Advance() = %v, want > 0", got)
					return
				}
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
