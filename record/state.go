package record

import "github.com/gogpu/paintlog"

// State commands carry the new value of exactly one painter attribute.
// Replaying one issues the matching Set* call; a state command affects
// later drawing commands in the same log and nothing else.

// BackgroundCommand sets the background brush.
type BackgroundCommand struct {
	Brush paintlog.Brush
}

// NewBackground creates a background brush command, cloning the brush.
func NewBackground(brush paintlog.Brush) BackgroundCommand {
	return BackgroundCommand{Brush: brush.Clone()}
}

// Kind implements Command.
func (BackgroundCommand) Kind() Kind { return KindBackground }

// Replay implements Command.
func (c BackgroundCommand) Replay(p Painter) error { return p.SetBackground(c.Brush) }

// BackgroundModeCommand toggles opaque background filling.
type BackgroundModeCommand struct {
	Mode paintlog.BGMode
}

// NewBackgroundMode creates a background mode command.
func NewBackgroundMode(mode paintlog.BGMode) BackgroundModeCommand {
	return BackgroundModeCommand{Mode: mode}
}

// Kind implements Command.
func (BackgroundModeCommand) Kind() Kind { return KindBackgroundMode }

// Replay implements Command.
func (c BackgroundModeCommand) Replay(p Painter) error { return p.SetBackgroundMode(c.Mode) }

// BrushCommand sets the fill brush.
type BrushCommand struct {
	Brush paintlog.Brush
}

// NewBrush creates a brush command, cloning the brush.
func NewBrush(brush paintlog.Brush) BrushCommand {
	return BrushCommand{Brush: brush.Clone()}
}

// Kind implements Command.
func (BrushCommand) Kind() Kind { return KindBrush }

// Replay implements Command.
func (c BrushCommand) Replay(p Painter) error { return p.SetBrush(c.Brush) }

// BrushOriginCommand sets the fill-pattern origin.
type BrushOriginCommand struct {
	Origin paintlog.Point
}

// NewBrushOrigin creates a brush origin command.
func NewBrushOrigin(origin paintlog.Point) BrushOriginCommand {
	return BrushOriginCommand{Origin: origin}
}

// Kind implements Command.
func (BrushOriginCommand) Kind() Kind { return KindBrushOrigin }

// Replay implements Command.
func (c BrushOriginCommand) Replay(p Painter) error { return p.SetBrushOrigin(c.Origin) }

// ClipRegionCommand combines a region into the clip.
type ClipRegionCommand struct {
	Region paintlog.Region
	Op     paintlog.ClipOp
}

// NewClipRegion creates a clip region command, cloning the region.
func NewClipRegion(region paintlog.Region, op paintlog.ClipOp) ClipRegionCommand {
	return ClipRegionCommand{Region: region.Clone(), Op: op}
}

// Kind implements Command.
func (ClipRegionCommand) Kind() Kind { return KindClipRegion }

// Replay implements Command.
func (c ClipRegionCommand) Replay(p Painter) error { return p.SetClipRegion(c.Region, c.Op) }

// ClipPathCommand combines a path into the clip.
type ClipPathCommand struct {
	Path *paintlog.Path
	Op   paintlog.ClipOp
}

// NewClipPath creates a clip path command, cloning the path.
func NewClipPath(path *paintlog.Path, op paintlog.ClipOp) ClipPathCommand {
	c := ClipPathCommand{Op: op}
	if path != nil {
		c.Path = path.Clone()
	}
	return c
}

// Kind implements Command.
func (ClipPathCommand) Kind() Kind { return KindClipPath }

// Replay implements Command.
func (c ClipPathCommand) Replay(p Painter) error { return p.SetClipPath(c.Path, c.Op) }

// CompositionCommand sets the composition (blend) mode.
type CompositionCommand struct {
	Mode paintlog.CompositionMode
}

// NewComposition creates a composition mode command.
func NewComposition(mode paintlog.CompositionMode) CompositionCommand {
	return CompositionCommand{Mode: mode}
}

// Kind implements Command.
func (CompositionCommand) Kind() Kind { return KindComposition }

// Replay implements Command.
func (c CompositionCommand) Replay(p Painter) error { return p.SetCompositionMode(c.Mode) }

// FontCommand sets the font.
type FontCommand struct {
	Font paintlog.Font
}

// NewFont creates a font command.
func NewFont(font paintlog.Font) FontCommand {
	return FontCommand{Font: font}
}

// Kind implements Command.
func (FontCommand) Kind() Kind { return KindFont }

// Replay implements Command.
func (c FontCommand) Replay(p Painter) error { return p.SetFont(c.Font) }

// TransformCommand sets the transformation matrix.
type TransformCommand struct {
	Matrix paintlog.Matrix
}

// NewTransform creates a transform command.
func NewTransform(m paintlog.Matrix) TransformCommand {
	return TransformCommand{Matrix: m}
}

// Kind implements Command.
func (TransformCommand) Kind() Kind { return KindTransform }

// Replay implements Command.
func (c TransformCommand) Replay(p Painter) error { return p.SetTransform(c.Matrix) }

// ClipEnabledCommand toggles clipping.
type ClipEnabledCommand struct {
	Enabled bool
}

// NewClipEnabled creates a clip-enabled command.
func NewClipEnabled(enabled bool) ClipEnabledCommand {
	return ClipEnabledCommand{Enabled: enabled}
}

// Kind implements Command.
func (ClipEnabledCommand) Kind() Kind { return KindClipEnabled }

// Replay implements Command.
func (c ClipEnabledCommand) Replay(p Painter) error { return p.SetClipEnabled(c.Enabled) }

// PenCommand sets the stroke pen.
type PenCommand struct {
	Pen paintlog.Pen
}

// NewPen creates a pen command, cloning the pen.
func NewPen(pen paintlog.Pen) PenCommand {
	return PenCommand{Pen: pen.Clone()}
}

// Kind implements Command.
func (PenCommand) Kind() Kind { return KindPen }

// Replay implements Command.
func (c PenCommand) Replay(p Painter) error { return p.SetPen(c.Pen) }

// RenderHintsCommand sets the render-quality hints.
type RenderHintsCommand struct {
	Hints paintlog.RenderHints
}

// NewRenderHints creates a render hints command.
func NewRenderHints(hints paintlog.RenderHints) RenderHintsCommand {
	return RenderHintsCommand{Hints: hints}
}

// Kind implements Command.
func (RenderHintsCommand) Kind() Kind { return KindRenderHints }

// Replay implements Command.
func (c RenderHintsCommand) Replay(p Painter) error { return p.SetRenderHints(c.Hints) }
