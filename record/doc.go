// Package record implements the paint-command recording and replay core.
//
// An Engine receives drawing and state-change notifications from a host
// painting layer and converts each into an immutable Command holding a
// deep snapshot of its arguments. Commands are appended, in notification
// order, to the Log owned by the Surface the engine is bound to. Replaying
// the log issues the same primitive calls, in the same order, against any
// Painter implementation.
//
//	surface := record.NewSurface(800, 600)
//	engine := record.NewEngine()
//	engine.Begin(surface)
//	engine.DrawLines([]paintlog.Line{paintlog.Ln(0, 0, 100, 100)})
//	engine.End()
//
//	painter, _ := record.NewPainter("raster")
//	err := surface.Replay(painter)
//
// Recording is single-threaded: the engine, surface, and log are not safe
// for concurrent use. A log must not be appended to while it is being
// replayed; use Log.Snapshot to replay a point-in-time copy while a
// recording session continues.
package record
