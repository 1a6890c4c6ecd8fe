package record

import (
	"errors"
	"image"
	"testing"

	"github.com/gogpu/paintlog"
)

// tracePainter records the sequence of Painter calls it receives and
// keeps the argument values needed by assertions. If failOn is set, the
// matching call returns failErr.
type tracePainter struct {
	calls []string

	failOn  string
	failErr error

	beginW, beginH int
	lines          []paintlog.Line
	points         []paintlog.Point
	polygonMode    paintlog.PolygonMode
	text           string
	textPos        paintlog.Point
	pen            paintlog.Pen
	brush          paintlog.Brush
	font           paintlog.Font
	transform      paintlog.Matrix
}

func (t *tracePainter) call(name string) error {
	t.calls = append(t.calls, name)
	if name == t.failOn {
		return t.failErr
	}
	return nil
}

func (t *tracePainter) Begin(w, h int) error {
	t.beginW, t.beginH = w, h
	return t.call("Begin")
}
func (t *tracePainter) End() error { return t.call("End") }

func (t *tracePainter) DrawEllipse(paintlog.Rect) error { return t.call("DrawEllipse") }
func (t *tracePainter) DrawImage(paintlog.Rect, image.Image, paintlog.Rect, paintlog.ImageConversionFlags) error {
	return t.call("DrawImage")
}
func (t *tracePainter) DrawLines(lines []paintlog.Line) error {
	t.lines = lines
	return t.call("DrawLines")
}
func (t *tracePainter) DrawPath(*paintlog.Path) error { return t.call("DrawPath") }
func (t *tracePainter) DrawPixmap(paintlog.Rect, *paintlog.Pixmap, paintlog.Rect) error {
	return t.call("DrawPixmap")
}
func (t *tracePainter) DrawPoints(points []paintlog.Point) error {
	t.points = points
	return t.call("DrawPoints")
}
func (t *tracePainter) DrawPolygon(points []paintlog.Point, mode paintlog.PolygonMode) error {
	t.points = points
	t.polygonMode = mode
	return t.call("DrawPolygon")
}
func (t *tracePainter) DrawRects([]paintlog.Rect) error { return t.call("DrawRects") }
func (t *tracePainter) DrawText(pos paintlog.Point, s string) error {
	t.textPos = pos
	t.text = s
	return t.call("DrawText")
}
func (t *tracePainter) DrawTiledPixmap(paintlog.Rect, *paintlog.Pixmap, paintlog.Point) error {
	return t.call("DrawTiledPixmap")
}

func (t *tracePainter) SetBackground(paintlog.Brush) error      { return t.call("SetBackground") }
func (t *tracePainter) SetBackgroundMode(paintlog.BGMode) error { return t.call("SetBackgroundMode") }
func (t *tracePainter) SetBrush(b paintlog.Brush) error {
	t.brush = b
	return t.call("SetBrush")
}
func (t *tracePainter) SetBrushOrigin(paintlog.Point) error { return t.call("SetBrushOrigin") }
func (t *tracePainter) SetClipRegion(paintlog.Region, paintlog.ClipOp) error {
	return t.call("SetClipRegion")
}
func (t *tracePainter) SetClipPath(*paintlog.Path, paintlog.ClipOp) error {
	return t.call("SetClipPath")
}
func (t *tracePainter) SetCompositionMode(paintlog.CompositionMode) error {
	return t.call("SetCompositionMode")
}
func (t *tracePainter) SetFont(f paintlog.Font) error {
	t.font = f
	return t.call("SetFont")
}
func (t *tracePainter) SetTransform(m paintlog.Matrix) error {
	t.transform = m
	return t.call("SetTransform")
}
func (t *tracePainter) SetClipEnabled(bool) error { return t.call("SetClipEnabled") }
func (t *tracePainter) SetPen(p paintlog.Pen) error {
	t.pen = p
	return t.call("SetPen")
}
func (t *tracePainter) SetRenderHints(paintlog.RenderHints) error { return t.call("SetRenderHints") }

// fakeState is a State with fixed attribute values.
type fakeState struct {
	background paintlog.Brush
	bgMode     paintlog.BGMode
	brush      paintlog.Brush
	origin     paintlog.Point
	region     paintlog.Region
	path       *paintlog.Path
	clipOp     paintlog.ClipOp
	comp       paintlog.CompositionMode
	font       paintlog.Font
	transform  paintlog.Matrix
	clip       bool
	pen        paintlog.Pen
	hints      paintlog.RenderHints
}

func (s *fakeState) Background() paintlog.Brush               { return s.background }
func (s *fakeState) BackgroundMode() paintlog.BGMode          { return s.bgMode }
func (s *fakeState) Brush() paintlog.Brush                    { return s.brush }
func (s *fakeState) BrushOrigin() paintlog.Point              { return s.origin }
func (s *fakeState) ClipRegion() paintlog.Region              { return s.region }
func (s *fakeState) ClipPath() *paintlog.Path                 { return s.path }
func (s *fakeState) ClipOperation() paintlog.ClipOp           { return s.clipOp }
func (s *fakeState) CompositionMode() paintlog.CompositionMode { return s.comp }
func (s *fakeState) Font() paintlog.Font                      { return s.font }
func (s *fakeState) Transform() paintlog.Matrix               { return s.transform }
func (s *fakeState) ClipEnabled() bool                        { return s.clip }
func (s *fakeState) Pen() paintlog.Pen                        { return s.pen }
func (s *fakeState) RenderHints() paintlog.RenderHints        { return s.hints }

func newFakeState() *fakeState {
	return &fakeState{
		background: paintlog.SolidBrush(paintlog.White),
		brush:      paintlog.SolidBrush(paintlog.RGB(1, 0, 0)),
		region:     paintlog.NewRegion(paintlog.NewRect(0, 0, 10, 10)),
		path:       paintlog.NewPath(),
		clipOp:     paintlog.ClipReplace,
		font:       paintlog.DefaultFont(),
		transform:  paintlog.Translate(5, 5),
		pen:        paintlog.DefaultPen(),
		hints:      paintlog.HintAntialiasing,
	}
}

// stringItem is a minimal TextItem.
type stringItem string

func (s stringItem) String() string { return string(s) }

func newBoundEngine(t *testing.T) (*Engine, *Surface) {
	t.Helper()
	surface := NewSurface(100, 80)
	engine := NewEngine()
	if !engine.Begin(surface) {
		t.Fatal("Begin(surface) = false, want true")
	}
	return engine, surface
}

func logKinds(log *Log) []Kind {
	kinds := make([]Kind, log.Len())
	for i := range kinds {
		kinds[i] = log.At(i).Kind()
	}
	return kinds
}

func TestEngineType(t *testing.T) {
	e := NewEngine()
	if e.Type() < DeviceTypeUser {
		t.Errorf("Type() = %d, want >= %d", e.Type(), DeviceTypeUser)
	}
	for _, builtin := range []DeviceType{DeviceTypeRaster, DeviceTypeGPU, DeviceTypePDF, DeviceTypeSVG} {
		if e.Type() == builtin {
			t.Errorf("Type() collides with built-in device type %d", builtin)
		}
	}
}

type bareDevice struct{}

func (bareDevice) Width() int  { return 10 }
func (bareDevice) Height() int { return 10 }

func TestBeginRejectsNonRecordingDevice(t *testing.T) {
	e := NewEngine()
	if e.Begin(bareDevice{}) {
		t.Error("Begin(bareDevice) = true, want false")
	}
	if e.Recording() {
		t.Error("Recording() = true after rejected Begin")
	}
}

func TestBeginEndSession(t *testing.T) {
	surface := NewSurface(10, 10)
	e := NewEngine()

	if e.Recording() {
		t.Error("Recording() = true before Begin")
	}
	if !e.Begin(surface) {
		t.Fatal("Begin(surface) = false")
	}
	if !e.Recording() {
		t.Error("Recording() = false after Begin")
	}

	e.DrawEllipse(paintlog.NewRect(0, 0, 5, 5))

	if !e.End() {
		t.Error("End() = false")
	}
	if e.Recording() {
		t.Error("Recording() = true after End")
	}
	if got := surface.CommandLog().Len(); got != 1 {
		t.Errorf("log.Len() after End = %d, want 1 (log must survive the session)", got)
	}
}

func TestDrawCommandsAppendInOrder(t *testing.T) {
	engine, surface := newBoundEngine(t)

	engine.DrawEllipse(paintlog.NewRect(0, 0, 10, 10))
	engine.DrawLines([]paintlog.Line{paintlog.Ln(0, 0, 5, 5)})
	engine.DrawText(paintlog.Pt(1, 2), stringItem("hi"))
	engine.DrawRects([]paintlog.Rect{paintlog.NewRect(1, 1, 2, 2)})

	want := []Kind{KindEllipse, KindLines, KindText, KindRects}
	got := logKinds(surface.CommandLog())
	if len(got) != len(want) {
		t.Fatalf("log kinds = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("log[%d].Kind() = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestUpdateStateExpansionOrder(t *testing.T) {
	tests := []struct {
		name  string
		flags StateFlags
		want  []Kind
	}{
		{
			name:  "single flag",
			flags: DirtyPen,
			want:  []Kind{KindPen},
		},
		{
			name:  "several flags expand in canonical order",
			flags: DirtyPen | DirtyFont | DirtyTransform,
			want:  []Kind{KindFont, KindTransform, KindPen},
		},
		{
			name:  "all flags",
			flags: DirtyAll,
			want: []Kind{
				KindBackground, KindBackgroundMode, KindBrush, KindBrushOrigin,
				KindClipRegion, KindClipPath, KindComposition, KindFont,
				KindTransform, KindClipEnabled, KindPen, KindRenderHints,
			},
		},
		{
			name:  "no flags",
			flags: 0,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, surface := newBoundEngine(t)
			engine.UpdateState(tt.flags, newFakeState())

			got := logKinds(surface.CommandLog())
			if len(got) != len(tt.want) {
				t.Fatalf("log kinds = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("log[%d].Kind() = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestUpdateStatePullsCurrentValues(t *testing.T) {
	engine, surface := newBoundEngine(t)

	state := newFakeState()
	state.pen.Width = 3.5
	engine.UpdateState(DirtyPen|DirtyTransform, state)

	// Mutating the state afterwards must not affect recorded commands.
	state.pen.Width = 99
	state.transform = paintlog.Scale(7, 7)

	painter := &tracePainter{}
	if err := surface.CommandLog().Replay(painter); err != nil {
		t.Fatalf("Replay() error = %v", err)
	}
	if painter.pen.Width != 3.5 {
		t.Errorf("replayed pen width = %v, want 3.5", painter.pen.Width)
	}
	if painter.transform != paintlog.Translate(5, 5) {
		t.Errorf("replayed transform = %+v, want translation by (5,5)", painter.transform)
	}
}

func TestDrawLinesSnapshotIsolation(t *testing.T) {
	engine, surface := newBoundEngine(t)

	lines := []paintlog.Line{paintlog.Ln(0, 0, 10, 10), paintlog.Ln(5, 5, 6, 6)}
	engine.DrawLines(lines)

	// Caller reuses its slice after recording.
	lines[0] = paintlog.Ln(-1, -1, -2, -2)

	painter := &tracePainter{}
	if err := surface.CommandLog().Replay(painter); err != nil {
		t.Fatalf("Replay() error = %v", err)
	}
	if painter.lines[0] != paintlog.Ln(0, 0, 10, 10) {
		t.Errorf("replayed line = %+v, want the value at record time", painter.lines[0])
	}
}

func TestDrawPolygonModePreserved(t *testing.T) {
	engine, surface := newBoundEngine(t)

	pts := []paintlog.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 8}}
	engine.DrawPolygon(pts, paintlog.PolygonConvex)

	painter := &tracePainter{}
	if err := surface.CommandLog().Replay(painter); err != nil {
		t.Fatalf("Replay() error = %v", err)
	}
	if painter.polygonMode != paintlog.PolygonConvex {
		t.Errorf("replayed mode = %v, want %v", painter.polygonMode, paintlog.PolygonConvex)
	}
}

func TestDrawTextRecordsRenderedString(t *testing.T) {
	engine, surface := newBoundEngine(t)

	engine.DrawText(paintlog.Pt(10, 20), stringItem("hello"))

	painter := &tracePainter{}
	if err := surface.CommandLog().Replay(painter); err != nil {
		t.Fatalf("Replay() error = %v", err)
	}
	if painter.text != "hello" {
		t.Errorf("replayed text = %q, want %q", painter.text, "hello")
	}
	if painter.textPos != paintlog.Pt(10, 20) {
		t.Errorf("replayed pos = %+v, want (10,20)", painter.textPos)
	}
}

func TestNotificationWithoutSurfaceIsDropped(t *testing.T) {
	e := NewEngine()

	// Must not panic; nothing to record into.
	e.DrawEllipse(paintlog.NewRect(0, 0, 5, 5))
	e.UpdateState(DirtyPen, newFakeState())
}

func TestReplayIsIdempotent(t *testing.T) {
	engine, surface := newBoundEngine(t)

	engine.UpdateState(DirtyBrush, newFakeState())
	engine.DrawEllipse(paintlog.NewRect(0, 0, 10, 10))
	engine.DrawPoints([]paintlog.Point{{X: 1, Y: 1}})

	first := &tracePainter{}
	if err := surface.CommandLog().Replay(first); err != nil {
		t.Fatalf("first Replay() error = %v", err)
	}
	second := &tracePainter{}
	if err := surface.CommandLog().Replay(second); err != nil {
		t.Fatalf("second Replay() error = %v", err)
	}

	if len(first.calls) != len(second.calls) {
		t.Fatalf("replay traces differ in length: %d vs %d", len(first.calls), len(second.calls))
	}
	for i := range first.calls {
		if first.calls[i] != second.calls[i] {
			t.Errorf("call %d: %q vs %q", i, first.calls[i], second.calls[i])
		}
	}
}

func TestReplayErrorAbortsAndPropagates(t *testing.T) {
	engine, surface := newBoundEngine(t)

	engine.DrawEllipse(paintlog.NewRect(0, 0, 10, 10))
	engine.DrawLines([]paintlog.Line{paintlog.Ln(0, 0, 1, 1)})
	engine.DrawRects([]paintlog.Rect{paintlog.NewRect(0, 0, 1, 1)})

	sentinel := errors.New("lines failed")
	painter := &tracePainter{failOn: "DrawLines", failErr: sentinel}

	err := surface.CommandLog().Replay(painter)
	if err != sentinel {
		t.Fatalf("Replay() error = %v, want the painter's error unmodified", err)
	}
	want := []string{"DrawEllipse", "DrawLines"}
	if len(painter.calls) != len(want) {
		t.Fatalf("calls = %v, want %v (replay must stop at the failure)", painter.calls, want)
	}
}
