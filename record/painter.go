package record

import (
	"image"

	"github.com/gogpu/paintlog"
)

// DeviceType identifies the kind of painter behind a device.
// Concrete renderers use the built-in values below DeviceTypeUser;
// custom engines declare types at or above DeviceTypeUser.
type DeviceType int

const (
	// DeviceTypeRaster is the software raster painter.
	DeviceTypeRaster DeviceType = iota
	// DeviceTypeGPU is a GPU-accelerated painter.
	DeviceTypeGPU
	// DeviceTypePDF is a PDF export painter.
	DeviceTypePDF
	// DeviceTypeSVG is an SVG export painter.
	DeviceTypeSVG

	// DeviceTypeUser is the first identifier available to custom engines.
	DeviceTypeUser DeviceType = 50
)

// Device is the minimal surface handle the engine binds to.
// The recording Surface implements it; Begin rejects any other Device.
type Device interface {
	// Width returns the device width in pixels.
	Width() int

	// Height returns the device height in pixels.
	Height() int
}

// Painter is the capability interface commands replay against.
// Implementations translate each call to their output (raster pixels,
// PDF content streams, SVG elements, ...).
//
// Every method returns an error; a failure propagates unmodified through
// Command.Replay and Log.Replay, which never retry or continue past it.
//
// Painters are created via the registry using NewPainter(name) and
// registered via Register() in their init() functions.
type Painter interface {
	// Begin prepares the painter for a replay at the given dimensions.
	Begin(width, height int) error

	// End finalizes the replay output.
	End() error

	// DrawEllipse draws the ellipse inscribed in rect.
	DrawEllipse(rect paintlog.Rect) error

	// DrawImage draws the src portion of img into dst.
	DrawImage(dst paintlog.Rect, img image.Image, src paintlog.Rect, flags paintlog.ImageConversionFlags) error

	// DrawLines draws a batch of line segments with the current pen.
	DrawLines(lines []paintlog.Line) error

	// DrawPath fills and strokes a vector path with the current brush and pen.
	DrawPath(path *paintlog.Path) error

	// DrawPixmap draws the src portion of pm into dst.
	DrawPixmap(dst paintlog.Rect, pm *paintlog.Pixmap, src paintlog.Rect) error

	// DrawPoints draws a batch of points with the current pen.
	DrawPoints(points []paintlog.Point) error

	// DrawPolygon draws a polygon or polyline according to mode.
	DrawPolygon(points []paintlog.Point, mode paintlog.PolygonMode) error

	// DrawRects draws a batch of rectangles with the current brush and pen.
	DrawRects(rects []paintlog.Rect) error

	// DrawText draws s with its baseline origin at pos, using the current
	// font and pen color.
	DrawText(pos paintlog.Point, s string) error

	// DrawTiledPixmap tiles pm across rect, starting at origin.
	DrawTiledPixmap(rect paintlog.Rect, pm *paintlog.Pixmap, origin paintlog.Point) error

	// SetBackground sets the background brush.
	SetBackground(brush paintlog.Brush) error

	// SetBackgroundMode toggles opaque background filling.
	SetBackgroundMode(mode paintlog.BGMode) error

	// SetBrush sets the fill brush.
	SetBrush(brush paintlog.Brush) error

	// SetBrushOrigin sets the fill-pattern origin.
	SetBrushOrigin(origin paintlog.Point) error

	// SetClipRegion combines region into the clip using op.
	SetClipRegion(region paintlog.Region, op paintlog.ClipOp) error

	// SetClipPath combines path into the clip using op.
	SetClipPath(path *paintlog.Path, op paintlog.ClipOp) error

	// SetCompositionMode sets the blend mode for subsequent drawing.
	SetCompositionMode(mode paintlog.CompositionMode) error

	// SetFont sets the font for subsequent text.
	SetFont(font paintlog.Font) error

	// SetTransform replaces the current transformation matrix.
	SetTransform(m paintlog.Matrix) error

	// SetClipEnabled toggles clipping.
	SetClipEnabled(enabled bool) error

	// SetPen sets the stroke pen.
	SetPen(pen paintlog.Pen) error

	// SetRenderHints sets the render-quality hints.
	SetRenderHints(hints paintlog.RenderHints) error
}
