// Package paintlog provides the shared value types for the paintlog
// paint-command recording and replay engine.
//
// The root package holds the immutable building blocks drawing commands
// snapshot: geometry (Point, Line, Rect), the affine Matrix, colors,
// vector paths, clip regions, pixmaps, and painter attributes (Pen,
// Brush, Font, render hints, composition modes).
//
// The recording core lives in the record package: a record.Engine
// translates drawing and state-change notifications from a host painter
// into immutable commands appended to the record.Log of a record.Surface,
// and the log replays those commands in order onto any record.Painter.
//
// A software reference painter is provided in record/backends/raster, and
// the text package supplies the run segmentation and shaping it uses for
// text commands.
package paintlog
