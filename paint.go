package paintlog

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// PolygonMode selects how a polygon command is drawn at replay time.
// The mode is a caller assertion recorded with the polygon; it is never
// re-derived from the geometry.
type PolygonMode int

const (
	// PolygonEvenOdd fills the polygon using the even-odd rule.
	PolygonEvenOdd PolygonMode = iota
	// PolygonWinding fills the polygon using the non-zero winding rule.
	PolygonWinding
	// PolygonConvex fills the polygon as a convex shape.
	// This is an optimization hint; the geometry is not validated.
	PolygonConvex
	// Polyline draws the points as an open polyline with no closing edge.
	Polyline
)

var polygonModeNames = [...]string{
	PolygonEvenOdd: "EvenOdd",
	PolygonWinding: "Winding",
	PolygonConvex:  "Convex",
	Polyline:       "Polyline",
}

// String returns the string representation of a PolygonMode.
func (m PolygonMode) String() string {
	if int(m) < len(polygonModeNames) {
		return polygonModeNames[m]
	}
	return "Unknown"
}

// ClipOp specifies how a clip command combines with the existing clip.
type ClipOp int

const (
	// ClipNone leaves the clip untouched.
	ClipNone ClipOp = iota
	// ClipReplace replaces the clip.
	ClipReplace
	// ClipIntersect intersects the clip with the new area.
	ClipIntersect
	// ClipUnion unites the clip with the new area.
	ClipUnion
)

var clipOpNames = [...]string{
	ClipNone:      "None",
	ClipReplace:   "Replace",
	ClipIntersect: "Intersect",
	ClipUnion:     "Union",
}

// String returns the string representation of a ClipOp.
func (op ClipOp) String() string {
	if int(op) < len(clipOpNames) {
		return clipOpNames[op]
	}
	return "Unknown"
}

// CompositionMode specifies how source pixels are combined with the
// destination during drawing (Porter-Duff subset).
type CompositionMode int

const (
	// CompositionSourceOver draws the source over the destination.
	CompositionSourceOver CompositionMode = iota
	// CompositionSource replaces the destination with the source.
	CompositionSource
	// CompositionDestinationOver draws the source under the destination.
	CompositionDestinationOver
	// CompositionClear clears the destination.
	CompositionClear
	// CompositionXor combines source and destination where they do not overlap.
	CompositionXor
)

var compositionModeNames = [...]string{
	CompositionSourceOver:      "SourceOver",
	CompositionSource:          "Source",
	CompositionDestinationOver: "DestinationOver",
	CompositionClear:           "Clear",
	CompositionXor:             "Xor",
}

// String returns the string representation of a CompositionMode.
func (m CompositionMode) String() string {
	if int(m) < len(compositionModeNames) {
		return compositionModeNames[m]
	}
	return "Unknown"
}

// BGMode specifies whether the background brush fills behind drawing.
type BGMode int

const (
	// TransparentMode leaves the background untouched.
	TransparentMode BGMode = iota
	// OpaqueMode fills the background with the background brush.
	OpaqueMode
)

// RenderHints is a bit set of render-quality hints.
type RenderHints uint8

const (
	// HintAntialiasing requests antialiased shape edges.
	HintAntialiasing RenderHints = 1 << iota
	// HintTextAntialiasing requests antialiased text.
	HintTextAntialiasing
	// HintSmoothPixmapTransform requests filtered pixmap scaling.
	HintSmoothPixmapTransform
)

// Has returns true if all hints in h are set.
func (r RenderHints) Has(h RenderHints) bool {
	return r&h == h
}

// ImageConversionFlags controls pixel format conversion when drawing images.
type ImageConversionFlags uint32

const (
	// AutoColor selects the conversion automatically.
	AutoColor ImageConversionFlags = 0
	// ColorOnly forces a color conversion.
	ColorOnly ImageConversionFlags = 1 << iota
	// MonoOnly forces a monochrome conversion.
	MonoOnly
)

// BrushStyle discriminates the fill pattern of a Brush.
type BrushStyle int

const (
	// BrushNone is an empty brush; fills are skipped.
	BrushNone BrushStyle = iota
	// BrushSolid fills with a solid color.
	BrushSolid
	// BrushTexture fills by tiling a pixmap.
	BrushTexture
)

var brushStyleNames = [...]string{
	BrushNone:    "None",
	BrushSolid:   "Solid",
	BrushTexture: "Texture",
}

// String returns the string representation of a BrushStyle.
func (s BrushStyle) String() string {
	if int(s) < len(brushStyleNames) {
		return brushStyleNames[s]
	}
	return "Unknown"
}

// Brush describes a fill style.
type Brush struct {
	// Style discriminates how the brush fills.
	Style BrushStyle
	// Color is the fill color for solid brushes.
	Color RGBA
	// Texture is the tile pixmap for texture brushes.
	Texture *Pixmap
}

// SolidBrush creates a solid color brush.
func SolidBrush(c RGBA) Brush {
	return Brush{Style: BrushSolid, Color: c}
}

// TextureBrush creates a brush that tiles the given pixmap.
func TextureBrush(pm *Pixmap) Brush {
	return Brush{Style: BrushTexture, Texture: pm}
}

// Clone returns a deep copy of the brush.
func (b Brush) Clone() Brush {
	clone := b
	if b.Texture != nil {
		clone.Texture = b.Texture.Clone()
	}
	return clone
}

// Pen describes a stroke style.
type Pen struct {
	// Color is the stroke color.
	Color RGBA
	// Width is the line width in pixels.
	Width float64
	// Cap is the shape of line endpoints.
	Cap LineCap
	// Join is the shape of line joins.
	Join LineJoin
	// MiterLimit is the limit for miter joins.
	MiterLimit float64
	// DashPattern is the dash pattern (nil for solid line).
	DashPattern []float64
	// DashOffset is the starting offset into the dash pattern.
	DashOffset float64
}

// DefaultPen returns a Pen with default settings: solid black, 1px wide,
// butt caps and miter joins.
func DefaultPen() Pen {
	return Pen{
		Color:      Black,
		Width:      1.0,
		Cap:        LineCapButt,
		Join:       LineJoinMiter,
		MiterLimit: 4.0,
	}
}

// Clone returns a deep copy of the pen.
func (p Pen) Clone() Pen {
	clone := p
	if p.DashPattern != nil {
		clone.DashPattern = make([]float64, len(p.DashPattern))
		copy(clone.DashPattern, p.DashPattern)
	}
	return clone
}

// FontWeight is the weight of a font, on the usual 100-900 scale.
type FontWeight int

const (
	// FontWeightNormal is the regular font weight.
	FontWeightNormal FontWeight = 400
	// FontWeightBold is the bold font weight.
	FontWeightBold FontWeight = 700
)

// Font describes the typeface used for text commands.
// Only the description is recorded; face resolution happens in the
// replaying painter.
type Font struct {
	// Family is the font family name.
	Family string
	// Size is the point size.
	Size float64
	// Weight is the font weight.
	Weight FontWeight
	// Italic selects an italic face.
	Italic bool
}

// DefaultFont returns the default font description.
func DefaultFont() Font {
	return Font{Family: "sans-serif", Size: 12, Weight: FontWeightNormal}
}
