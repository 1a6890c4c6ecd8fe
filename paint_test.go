package paintlog

import "testing"

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{PolygonEvenOdd.String(), "EvenOdd"},
		{PolygonWinding.String(), "Winding"},
		{PolygonConvex.String(), "Convex"},
		{Polyline.String(), "Polyline"},
		{PolygonMode(99).String(), "Unknown"},
		{ClipReplace.String(), "Replace"},
		{ClipIntersect.String(), "Intersect"},
		{ClipUnion.String(), "Union"},
		{ClipNone.String(), "None"},
		{CompositionSourceOver.String(), "SourceOver"},
		{CompositionClear.String(), "Clear"},
		{CompositionMode(99).String(), "Unknown"},
		{BrushSolid.String(), "Solid"},
		{BrushTexture.String(), "Texture"},
		{BrushNone.String(), "None"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("String() = %q, want %q", tt.got, tt.want)
		}
	}
}

func TestRenderHintsHas(t *testing.T) {
	h := HintAntialiasing | HintTextAntialiasing
	if !h.Has(HintAntialiasing) {
		t.Error("Has(HintAntialiasing) = false")
	}
	if !h.Has(HintAntialiasing | HintTextAntialiasing) {
		t.Error("Has(both) = false")
	}
	if h.Has(HintSmoothPixmapTransform) {
		t.Error("Has(HintSmoothPixmapTransform) = true")
	}
}

func TestSolidBrush(t *testing.T) {
	b := SolidBrush(RGB(1, 0, 0))
	if b.Style != BrushSolid {
		t.Errorf("Style = %v, want BrushSolid", b.Style)
	}
	if b.Texture != nil {
		t.Error("solid brush must have no texture")
	}
}

func TestTextureBrushCloneIsolation(t *testing.T) {
	tex := NewPixmap(1, 1)
	tex.SetPixel(0, 0, White)

	b := TextureBrush(tex)
	clone := b.Clone()
	tex.SetPixel(0, 0, Black)

	if got := clone.Texture.GetPixel(0, 0); got.R < 0.99 {
		t.Errorf("clone texture pixel = %+v, want white", got)
	}
}

func TestBrushCloneWithoutTexture(t *testing.T) {
	b := SolidBrush(Black)
	clone := b.Clone()
	if clone.Texture != nil {
		t.Error("Clone() of solid brush must not allocate a texture")
	}
}

func TestDefaultPen(t *testing.T) {
	p := DefaultPen()
	if p.Color != Black || p.Width != 1 {
		t.Errorf("DefaultPen() = %+v", p)
	}
	if p.Cap != LineCapButt || p.Join != LineJoinMiter {
		t.Errorf("default cap/join = %v/%v", p.Cap, p.Join)
	}
	if p.DashPattern != nil {
		t.Error("default pen must be solid")
	}
}

func TestPenCloneIsolation(t *testing.T) {
	p := DefaultPen()
	p.DashPattern = []float64{2, 1}

	clone := p.Clone()
	p.DashPattern[0] = 99

	if clone.DashPattern[0] != 2 {
		t.Errorf("clone dash = %v, want [2 1]", clone.DashPattern)
	}
}

func TestDefaultFont(t *testing.T) {
	f := DefaultFont()
	if f.Size <= 0 {
		t.Errorf("default font size = %v, want > 0", f.Size)
	}
	if f.Weight != FontWeightNormal || f.Italic {
		t.Errorf("DefaultFont() = %+v", f)
	}
}
