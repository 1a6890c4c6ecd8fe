package record

import (
	"image"
	"image/draw"

	"github.com/gogpu/paintlog"
)

// Kind identifies the type of a command.
// Each kind corresponds to one Painter primitive.
type Kind uint8

const (
	// Drawing commands
	KindEllipse     Kind = iota // Draw an ellipse
	KindImage                   // Draw an image
	KindLines                   // Draw a line batch
	KindPath                    // Draw a path
	KindPixmap                  // Draw a pixmap
	KindPoints                  // Draw a point batch
	KindPolygon                 // Draw a polygon or polyline
	KindRects                   // Draw a rectangle batch
	KindText                    // Draw a text run
	KindTiledPixmap             // Draw a tiled pixmap fill

	// State commands
	KindBackground     // Set background brush
	KindBackgroundMode // Set background fill mode
	KindBrush          // Set fill brush
	KindBrushOrigin    // Set fill-pattern origin
	KindClipRegion     // Combine clip region
	KindClipPath       // Combine clip path
	KindComposition    // Set composition mode
	KindFont           // Set font
	KindTransform      // Set transform
	KindClipEnabled    // Toggle clipping
	KindPen            // Set pen
	KindRenderHints    // Set render hints
)

// kindNames maps Kind values to their string representation.
var kindNames = [...]string{
	KindEllipse:        "Ellipse",
	KindImage:          "Image",
	KindLines:          "Lines",
	KindPath:           "Path",
	KindPixmap:         "Pixmap",
	KindPoints:         "Points",
	KindPolygon:        "Polygon",
	KindRects:          "Rects",
	KindText:           "Text",
	KindTiledPixmap:    "TiledPixmap",
	KindBackground:     "Background",
	KindBackgroundMode: "BackgroundMode",
	KindBrush:          "Brush",
	KindBrushOrigin:    "BrushOrigin",
	KindClipRegion:     "ClipRegion",
	KindClipPath:       "ClipPath",
	KindComposition:    "Composition",
	KindFont:           "Font",
	KindTransform:      "Transform",
	KindClipEnabled:    "ClipEnabled",
	KindPen:            "Pen",
	KindRenderHints:    "RenderHints",
}

// String returns the string representation of a Kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Command is an immutable record of one drawing or state-change operation.
//
// A command holds a deep snapshot of every argument it needs; it keeps no
// reference to caller-owned mutable state and reads nothing outside itself
// and the painter passed to Replay. Replaying a command issues exactly the
// single primitive it represents and returns the painter's error unmodified.
type Command interface {
	// Kind returns the Kind for this command.
	Kind() Kind

	// Replay issues the recorded operation against p.
	Replay(p Painter) error
}

// copyImage snapshots an image into a fresh RGBA buffer so the command
// stays valid if the caller mutates or discards the original.
func copyImage(img image.Image) *image.RGBA {
	if img == nil {
		return nil
	}
	bounds := img.Bounds()
	dst := image.NewRGBA(bounds)
	draw.Draw(dst, bounds, img, bounds.Min, draw.Src)
	return dst
}

// --------------------------------------------------------------------------
// Drawing Commands
// --------------------------------------------------------------------------

// EllipseCommand draws the ellipse inscribed in a rectangle.
type EllipseCommand struct {
	Rect paintlog.Rect
}

// NewEllipse creates an ellipse command.
func NewEllipse(rect paintlog.Rect) EllipseCommand {
	return EllipseCommand{Rect: rect}
}

// Kind implements Command.
func (EllipseCommand) Kind() Kind { return KindEllipse }

// Replay implements Command.
func (c EllipseCommand) Replay(p Painter) error { return p.DrawEllipse(c.Rect) }

// ImageCommand draws an image.
type ImageCommand struct {
	// Dst is the destination rectangle in canvas coordinates.
	Dst paintlog.Rect
	// Image is the snapshotted pixel data.
	Image *image.RGBA
	// Src is the source rectangle in image coordinates.
	Src paintlog.Rect
	// Flags controls pixel format conversion.
	Flags paintlog.ImageConversionFlags
}

// NewImage creates an image command, copying the image pixels.
func NewImage(dst paintlog.Rect, img image.Image, src paintlog.Rect, flags paintlog.ImageConversionFlags) ImageCommand {
	return ImageCommand{Dst: dst, Image: copyImage(img), Src: src, Flags: flags}
}

// Kind implements Command.
func (ImageCommand) Kind() Kind { return KindImage }

// Replay implements Command.
func (c ImageCommand) Replay(p Painter) error {
	return p.DrawImage(c.Dst, c.Image, c.Src, c.Flags)
}

// LinesCommand draws a batch of line segments.
type LinesCommand struct {
	Lines []paintlog.Line
}

// NewLines creates a line batch command, copying the segments.
// The caller-owned slice may be reused or freed after this returns.
func NewLines(lines []paintlog.Line) LinesCommand {
	snapshot := make([]paintlog.Line, len(lines))
	copy(snapshot, lines)
	return LinesCommand{Lines: snapshot}
}

// Kind implements Command.
func (LinesCommand) Kind() Kind { return KindLines }

// Replay implements Command.
func (c LinesCommand) Replay(p Painter) error { return p.DrawLines(c.Lines) }

// PathCommand draws a vector path.
type PathCommand struct {
	Path *paintlog.Path
}

// NewPathCommand creates a path command, cloning the path.
func NewPathCommand(path *paintlog.Path) PathCommand {
	if path == nil {
		return PathCommand{}
	}
	return PathCommand{Path: path.Clone()}
}

// Kind implements Command.
func (PathCommand) Kind() Kind { return KindPath }

// Replay implements Command.
func (c PathCommand) Replay(p Painter) error { return p.DrawPath(c.Path) }

// PixmapCommand draws a portion of a pixmap.
type PixmapCommand struct {
	Dst    paintlog.Rect
	Pixmap *paintlog.Pixmap
	Src    paintlog.Rect
}

// NewPixmapCommand creates a pixmap command, cloning the pixmap.
func NewPixmapCommand(dst paintlog.Rect, pm *paintlog.Pixmap, src paintlog.Rect) PixmapCommand {
	c := PixmapCommand{Dst: dst, Src: src}
	if pm != nil {
		c.Pixmap = pm.Clone()
	}
	return c
}

// Kind implements Command.
func (PixmapCommand) Kind() Kind { return KindPixmap }

// Replay implements Command.
func (c PixmapCommand) Replay(p Painter) error {
	return p.DrawPixmap(c.Dst, c.Pixmap, c.Src)
}

// PointsCommand draws a batch of points.
type PointsCommand struct {
	Points []paintlog.Point
}

// NewPoints creates a point batch command, copying the points.
func NewPoints(points []paintlog.Point) PointsCommand {
	snapshot := make([]paintlog.Point, len(points))
	copy(snapshot, points)
	return PointsCommand{Points: snapshot}
}

// Kind implements Command.
func (PointsCommand) Kind() Kind { return KindPoints }

// Replay implements Command.
func (c PointsCommand) Replay(p Painter) error { return p.DrawPoints(c.Points) }

// PolygonCommand draws a polygon or polyline.
// The recorded mode selects the replay primitive; a convex-mode polygon
// replays as convex even if the geometry is not.
type PolygonCommand struct {
	Points []paintlog.Point
	Mode   paintlog.PolygonMode
}

// NewPolygon creates a polygon command, copying the points.
func NewPolygon(points []paintlog.Point, mode paintlog.PolygonMode) PolygonCommand {
	snapshot := make([]paintlog.Point, len(points))
	copy(snapshot, points)
	return PolygonCommand{Points: snapshot, Mode: mode}
}

// Kind implements Command.
func (PolygonCommand) Kind() Kind { return KindPolygon }

// Replay implements Command.
func (c PolygonCommand) Replay(p Painter) error {
	return p.DrawPolygon(c.Points, c.Mode)
}

// RectsCommand draws a batch of rectangles.
type RectsCommand struct {
	Rects []paintlog.Rect
}

// NewRects creates a rectangle batch command, copying the rectangles.
func NewRects(rects []paintlog.Rect) RectsCommand {
	snapshot := make([]paintlog.Rect, len(rects))
	copy(snapshot, rects)
	return RectsCommand{Rects: snapshot}
}

// Kind implements Command.
func (RectsCommand) Kind() Kind { return KindRects }

// Replay implements Command.
func (c RectsCommand) Replay(p Painter) error { return p.DrawRects(c.Rects) }

// TextCommand draws a text run.
// Only the rendered string is recorded; shaping and formatting state of
// the originating text item is not needed to reproduce the draw.
type TextCommand struct {
	Pos  paintlog.Point
	Text string
}

// NewText creates a text command.
func NewText(pos paintlog.Point, s string) TextCommand {
	return TextCommand{Pos: pos, Text: s}
}

// Kind implements Command.
func (TextCommand) Kind() Kind { return KindText }

// Replay implements Command.
func (c TextCommand) Replay(p Painter) error { return p.DrawText(c.Pos, c.Text) }

// TiledPixmapCommand fills a rectangle by tiling a pixmap.
type TiledPixmapCommand struct {
	Rect   paintlog.Rect
	Pixmap *paintlog.Pixmap
	Origin paintlog.Point
}

// NewTiledPixmap creates a tiled pixmap command, cloning the pixmap.
func NewTiledPixmap(rect paintlog.Rect, pm *paintlog.Pixmap, origin paintlog.Point) TiledPixmapCommand {
	c := TiledPixmapCommand{Rect: rect, Origin: origin}
	if pm != nil {
		c.Pixmap = pm.Clone()
	}
	return c
}

// Kind implements Command.
func (TiledPixmapCommand) Kind() Kind { return KindTiledPixmap }

// Replay implements Command.
func (c TiledPixmapCommand) Replay(p Painter) error {
	return p.DrawTiledPixmap(c.Rect, c.Pixmap, c.Origin)
}
