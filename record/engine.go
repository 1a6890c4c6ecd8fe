package record

import (
	"image"

	"github.com/gogpu/paintlog"
)

// EngineType is the capability identifier the recording engine reports.
// The offset into the user range is arbitrary; what matters is that it
// never equals a built-in painter identifier, so host dispatch cannot
// mistake the engine for a concrete renderer.
const EngineType = DeviceTypeUser + 34

// StateFlags is a bit set marking which painter-state attributes changed
// in one update notification.
type StateFlags uint16

const (
	// DirtyBackground marks a background brush change.
	DirtyBackground StateFlags = 1 << iota
	// DirtyBackgroundMode marks a background fill mode change.
	DirtyBackgroundMode
	// DirtyBrush marks a fill brush change.
	DirtyBrush
	// DirtyBrushOrigin marks a fill-pattern origin change.
	DirtyBrushOrigin
	// DirtyClipRegion marks a clip region change.
	DirtyClipRegion
	// DirtyClipPath marks a clip path change.
	DirtyClipPath
	// DirtyComposition marks a composition mode change.
	DirtyComposition
	// DirtyFont marks a font change.
	DirtyFont
	// DirtyTransform marks a transform change.
	DirtyTransform
	// DirtyClipEnabled marks a clip toggle.
	DirtyClipEnabled
	// DirtyPen marks a pen change.
	DirtyPen
	// DirtyRenderHints marks a render hints change.
	DirtyRenderHints
)

// DirtyAll has every state flag set.
const DirtyAll = DirtyBackground | DirtyBackgroundMode | DirtyBrush |
	DirtyBrushOrigin | DirtyClipRegion | DirtyClipPath | DirtyComposition |
	DirtyFont | DirtyTransform | DirtyClipEnabled | DirtyPen | DirtyRenderHints

// State is the current-value accessor set a state-change notification
// carries. The engine pulls the current value of each dirty attribute at
// notification time; values are not reconstructible later.
type State interface {
	// Background returns the current background brush.
	Background() paintlog.Brush

	// BackgroundMode returns the current background fill mode.
	BackgroundMode() paintlog.BGMode

	// Brush returns the current fill brush.
	Brush() paintlog.Brush

	// BrushOrigin returns the current fill-pattern origin.
	BrushOrigin() paintlog.Point

	// ClipRegion returns the current clip region.
	ClipRegion() paintlog.Region

	// ClipPath returns the current clip path.
	ClipPath() *paintlog.Path

	// ClipOperation returns the combine operation for clip changes.
	ClipOperation() paintlog.ClipOp

	// CompositionMode returns the current composition mode.
	CompositionMode() paintlog.CompositionMode

	// Font returns the current font.
	Font() paintlog.Font

	// Transform returns the current transformation matrix.
	Transform() paintlog.Matrix

	// ClipEnabled returns whether clipping is enabled.
	ClipEnabled() bool

	// Pen returns the current stroke pen.
	Pen() paintlog.Pen

	// RenderHints returns the current render-quality hints.
	RenderHints() paintlog.RenderHints
}

// stateExpansion maps each dirty flag to its command constructor. The
// table is walked in order, so one notification with several flags set
// always appends the same commands in the same sequence.
var stateExpansion = []struct {
	flag  StateFlags
	build func(State) Command
}{
	{DirtyBackground, func(s State) Command { return NewBackground(s.Background()) }},
	{DirtyBackgroundMode, func(s State) Command { return NewBackgroundMode(s.BackgroundMode()) }},
	{DirtyBrush, func(s State) Command { return NewBrush(s.Brush()) }},
	{DirtyBrushOrigin, func(s State) Command { return NewBrushOrigin(s.BrushOrigin()) }},
	{DirtyClipRegion, func(s State) Command { return NewClipRegion(s.ClipRegion(), s.ClipOperation()) }},
	{DirtyClipPath, func(s State) Command { return NewClipPath(s.ClipPath(), s.ClipOperation()) }},
	{DirtyComposition, func(s State) Command { return NewComposition(s.CompositionMode()) }},
	{DirtyFont, func(s State) Command { return NewFont(s.Font()) }},
	{DirtyTransform, func(s State) Command { return NewTransform(s.Transform()) }},
	{DirtyClipEnabled, func(s State) Command { return NewClipEnabled(s.ClipEnabled()) }},
	{DirtyPen, func(s State) Command { return NewPen(s.Pen()) }},
	{DirtyRenderHints, func(s State) Command { return NewRenderHints(s.RenderHints()) }},
}

// Engine translates host drawing and state-change notifications into
// commands appended to the bound surface's log.
//
// The engine is Idle until Begin binds it to a Surface and Idle again
// after End. Notifications are only valid while Recording; the host
// guarantees none arrive while Idle. The engine is not safe for
// concurrent use, and each notification is handled to completion before
// the next.
type Engine struct {
	surface *Surface
}

// NewEngine creates an engine with no bound surface.
func NewEngine() *Engine {
	return &Engine{}
}

// Type returns the engine's capability identifier.
// It is distinct from every built-in painter identifier.
func (e *Engine) Type() DeviceType {
	return EngineType
}

// Recording returns true if a surface is bound.
func (e *Engine) Recording() bool {
	return e.surface != nil
}

// Begin binds the engine to a recording surface and starts a session.
// It returns false if dev is not a recording Surface.
func (e *Engine) Begin(dev Device) bool {
	surface, ok := dev.(*Surface)
	if !ok {
		paintlog.Logger().Warn("record: begin on non-recording device",
			"device", dev)
		return false
	}
	e.surface = surface
	return true
}

// End unbinds the engine and finishes the session.
// The recorded log stays with the surface untouched.
func (e *Engine) End() bool {
	e.surface = nil
	return true
}

// add appends a command to the bound surface's log.
func (e *Engine) add(c Command) {
	if e.surface == nil {
		paintlog.Logger().Warn("record: notification without bound surface",
			"kind", c.Kind().String())
		return
	}
	e.surface.AddCommand(c)
}

// DrawEllipse records an ellipse.
func (e *Engine) DrawEllipse(rect paintlog.Rect) {
	e.add(NewEllipse(rect))
}

// DrawImage records an image draw, snapshotting the pixels.
func (e *Engine) DrawImage(dst paintlog.Rect, img image.Image, src paintlog.Rect, flags paintlog.ImageConversionFlags) {
	e.add(NewImage(dst, img, src, flags))
}

// DrawLines records a line batch, copying the segments.
func (e *Engine) DrawLines(lines []paintlog.Line) {
	e.add(NewLines(lines))
}

// DrawPath records a path draw, cloning the path.
func (e *Engine) DrawPath(path *paintlog.Path) {
	e.add(NewPathCommand(path))
}

// DrawPixmap records a pixmap draw, cloning the pixmap.
func (e *Engine) DrawPixmap(dst paintlog.Rect, pm *paintlog.Pixmap, src paintlog.Rect) {
	e.add(NewPixmapCommand(dst, pm, src))
}

// DrawPoints records a point batch, copying the points.
func (e *Engine) DrawPoints(points []paintlog.Point) {
	e.add(NewPoints(points))
}

// DrawPolygon records a polygon draw with its mode, copying the points.
func (e *Engine) DrawPolygon(points []paintlog.Point, mode paintlog.PolygonMode) {
	e.add(NewPolygon(points, mode))
}

// DrawRects records a rectangle batch, copying the rectangles.
func (e *Engine) DrawRects(rects []paintlog.Rect) {
	e.add(NewRects(rects))
}

// DrawText records a text run. Only the rendered string is kept.
func (e *Engine) DrawText(pos paintlog.Point, item TextItem) {
	e.add(NewText(pos, item.String()))
}

// DrawTiledPixmap records a tiled pixmap fill, cloning the pixmap.
func (e *Engine) DrawTiledPixmap(rect paintlog.Rect, pm *paintlog.Pixmap, origin paintlog.Point) {
	e.add(NewTiledPixmap(rect, pm, origin))
}

// UpdateState records one state command per dirty flag, pulling the
// current attribute value from state. Flags not set produce nothing.
// Expansion follows the fixed table order, so logically equivalent
// notifications record identical command sequences.
func (e *Engine) UpdateState(flags StateFlags, state State) {
	for _, entry := range stateExpansion {
		if flags&entry.flag != 0 {
			e.add(entry.build(state))
		}
	}
}

// TextItem is the host-side text notification payload. Implementations
// may carry full shaping state; the engine records only String().
type TextItem interface {
	// String returns the rendered text content.
	String() string
}
