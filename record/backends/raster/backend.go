// Package raster provides a software painter for replaying recorded
// command logs to pixel images.
//
// The raster painter serves multiple purposes:
//   - Architecture validation for the recording system
//   - Reference implementation for other painters
//   - Pixel-accurate comparison testing
//
// # Supported Features
//
//   - Solid and texture brushes
//   - Line, point, rectangle, and polygon batches
//   - Path and ellipse fills via golang.org/x/image/vector
//   - Image and pixmap blits with bilinear scaling
//   - Text runs with bidi segmentation and HarfBuzz shaping
//   - Transform matrix, rectangular clipping, composition mode subset
//
// # Limitations
//
// Even-odd polygon and path fills rasterize with the non-zero winding
// rule (the rasterizer has no fill-rule control). Dash patterns, line
// caps, and joins beyond a flat bevel are not applied. Clipping is
// rectangular: clip regions and clip paths are reduced to their bounds.
//
// # Example
//
//	// Import to register the painter
//	import _ "github.com/gogpu/paintlog/record/backends/raster"
//
//	painter, _ := record.NewPainter("raster")
//	err := surface.Replay(painter)
//
//	img := painter.(*raster.Painter).Image()
package raster

import (
	"image"
	stddraw "image/draw"
	"image/png"
	"io"
	"math"
	"os"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/paintlog"
	"github.com/gogpu/paintlog/record"
	"github.com/gogpu/paintlog/text"
)

func init() {
	record.Register("raster", func() record.Painter {
		return NewPainter()
	})
}

// Painter renders replayed commands to a pixel image.
// It implements record.Painter.
//
// The painter must be initialized with Begin before use; Surface.Replay
// does this automatically.
type Painter struct {
	width, height int
	dst           *image.RGBA

	pen         paintlog.Pen
	brush       paintlog.Brush
	brushOrigin paintlog.Point
	background  paintlog.Brush
	bgMode      paintlog.BGMode
	transform   paintlog.Matrix
	comp        paintlog.CompositionMode
	hints       paintlog.RenderHints
	clip        image.Rectangle
	clipEnabled bool

	fontDesc paintlog.Font
	face     *text.Face
	shaper   *text.Shaper
}

var _ record.Painter = (*Painter)(nil)

// NewPainter creates a raster painter.
func NewPainter() *Painter {
	return &Painter{shaper: text.NewShaper()}
}

// Begin allocates the output image and resets the painter state.
func (p *Painter) Begin(width, height int) error {
	p.width = width
	p.height = height
	p.dst = image.NewRGBA(image.Rect(0, 0, width, height))

	p.pen = paintlog.DefaultPen()
	p.brush = paintlog.Brush{}
	p.brushOrigin = paintlog.Point{}
	p.background = paintlog.SolidBrush(paintlog.White)
	p.bgMode = paintlog.TransparentMode
	p.transform = paintlog.Identity()
	p.comp = paintlog.CompositionSourceOver
	p.hints = paintlog.HintAntialiasing
	p.clip = p.dst.Bounds()
	p.clipEnabled = false

	p.fontDesc = paintlog.DefaultFont()
	face, err := text.NewFace(goregular.TTF, p.fontDesc.Size)
	if err != nil {
		return err
	}
	p.face = face
	return nil
}

// End finalizes the replay. Output methods can be used afterwards.
func (p *Painter) End() error {
	return nil
}

// Image returns the rendered image.
func (p *Painter) Image() *image.RGBA {
	return p.dst
}

// Pixmap returns the rendered pixels as a pixmap copy.
func (p *Painter) Pixmap() *paintlog.Pixmap {
	if p.dst == nil {
		return nil
	}
	return paintlog.PixmapFromImage(p.dst)
}

// WriteTo writes the rendered image to w in PNG format.
func (p *Painter) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	err := png.Encode(cw, p.dst)
	return cw.n, err
}

// SaveToFile saves the rendered image to a PNG file.
func (p *Painter) SaveToFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, p.dst)
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(b []byte) (int, error) {
	n, err := c.w.Write(b)
	c.n += int64(n)
	return n, err
}

// --------------------------------------------------------------------------
// State
// --------------------------------------------------------------------------

// SetBackground sets the background brush.
func (p *Painter) SetBackground(brush paintlog.Brush) error {
	p.background = brush
	return nil
}

// SetBackgroundMode toggles opaque background filling behind text.
func (p *Painter) SetBackgroundMode(mode paintlog.BGMode) error {
	p.bgMode = mode
	return nil
}

// SetBrush sets the fill brush.
func (p *Painter) SetBrush(brush paintlog.Brush) error {
	p.brush = brush
	return nil
}

// SetBrushOrigin sets the texture brush origin.
func (p *Painter) SetBrushOrigin(origin paintlog.Point) error {
	p.brushOrigin = origin
	return nil
}

// SetClipRegion combines the region's bounds into the clip rectangle.
func (p *Painter) SetClipRegion(region paintlog.Region, op paintlog.ClipOp) error {
	p.combineClip(region.Bounds(), op)
	return nil
}

// SetClipPath combines the path's bounds into the clip rectangle.
func (p *Painter) SetClipPath(path *paintlog.Path, op paintlog.ClipOp) error {
	if path == nil {
		return nil
	}
	p.combineClip(path.Bounds(), op)
	return nil
}

func (p *Painter) combineClip(r paintlog.Rect, op paintlog.ClipOp) {
	rect := p.deviceRect(r)
	switch op {
	case paintlog.ClipReplace:
		p.clip = rect
	case paintlog.ClipIntersect:
		p.clip = p.clip.Intersect(rect)
	case paintlog.ClipUnion:
		p.clip = p.clip.Union(rect)
	case paintlog.ClipNone:
	}
	p.clipEnabled = op != paintlog.ClipNone
}

// SetCompositionMode sets the composition mode.
// Modes beyond SourceOver, Source, and Clear fall back to SourceOver.
func (p *Painter) SetCompositionMode(mode paintlog.CompositionMode) error {
	p.comp = mode
	return nil
}

// SetFont sets the font for subsequent text. Only the size is applied;
// all text renders with the painter's built-in face.
func (p *Painter) SetFont(f paintlog.Font) error {
	p.fontDesc = f
	if p.face == nil || f.Size <= 0 {
		return nil
	}
	face, err := p.face.WithSize(f.Size)
	if err != nil {
		return err
	}
	p.face = face
	return nil
}

// SetTransform replaces the transformation matrix.
func (p *Painter) SetTransform(m paintlog.Matrix) error {
	p.transform = m
	return nil
}

// SetClipEnabled toggles clipping.
func (p *Painter) SetClipEnabled(enabled bool) error {
	p.clipEnabled = enabled
	return nil
}

// SetPen sets the stroke pen.
func (p *Painter) SetPen(pen paintlog.Pen) error {
	p.pen = pen
	return nil
}

// SetRenderHints sets the render-quality hints.
func (p *Painter) SetRenderHints(hints paintlog.RenderHints) error {
	p.hints = hints
	return nil
}

// --------------------------------------------------------------------------
// Drawing
// --------------------------------------------------------------------------

// DrawEllipse draws the ellipse inscribed in rect with the current brush
// and pen.
func (p *Painter) DrawEllipse(rect paintlog.Rect) error {
	path := ellipsePath(rect)
	if err := p.fillPath(path, p.brush); err != nil {
		return err
	}
	return p.strokePath(path)
}

// DrawImage draws the src portion of img into dst.
func (p *Painter) DrawImage(dst paintlog.Rect, img image.Image, src paintlog.Rect, flags paintlog.ImageConversionFlags) error {
	if img == nil {
		return nil
	}
	p.blit(dst, img, src)
	return nil
}

// DrawPixmap draws the src portion of pm into dst.
func (p *Painter) DrawPixmap(dst paintlog.Rect, pm *paintlog.Pixmap, src paintlog.Rect) error {
	if pm == nil {
		return nil
	}
	p.blit(dst, pm.Image(), src)
	return nil
}

// DrawTiledPixmap tiles pm across rect, starting at origin.
func (p *Painter) DrawTiledPixmap(rect paintlog.Rect, pm *paintlog.Pixmap, origin paintlog.Point) error {
	if pm == nil || pm.Width() <= 0 || pm.Height() <= 0 {
		return nil
	}

	tile := pm.Image()
	target := p.deviceRect(rect)
	dst := p.clippedDst()

	tw, th := pm.Width(), pm.Height()
	startX := target.Min.X - ((target.Min.X-int(origin.X))%tw+tw)%tw
	startY := target.Min.Y - ((target.Min.Y-int(origin.Y))%th+th)%th

	for y := startY; y < target.Max.Y; y += th {
		for x := startX; x < target.Max.X; x += tw {
			r := image.Rect(x, y, x+tw, y+th).Intersect(target)
			if r.Empty() {
				continue
			}
			sp := image.Pt(r.Min.X-x, r.Min.Y-y)
			stddraw.Draw(dst, r, tile, sp, p.drawOp())
		}
	}
	return nil
}

// DrawLines draws a batch of line segments with the current pen.
func (p *Painter) DrawLines(lines []paintlog.Line) error {
	for _, l := range lines {
		p.strokeSegment(l.P1, l.P2)
	}
	return nil
}

// DrawPoints draws each point as a pen-width square.
func (p *Painter) DrawPoints(points []paintlog.Point) error {
	half := math.Max(p.pen.Width, 1) / 2
	for _, pt := range points {
		x, y := p.transform.TransformPoint(pt.X, pt.Y)
		quad := [4]paintlog.Point{
			{X: x - half, Y: y - half},
			{X: x + half, Y: y - half},
			{X: x + half, Y: y + half},
			{X: x - half, Y: y + half},
		}
		p.fillDeviceQuad(quad, paintlog.SolidBrush(p.pen.Color))
	}
	return nil
}

// DrawPolygon draws a polygon or polyline according to mode.
// The mode is honored as recorded: a convex-mode polygon is filled as
// convex even when the geometry is not.
func (p *Painter) DrawPolygon(points []paintlog.Point, mode paintlog.PolygonMode) error {
	if len(points) < 2 {
		return nil
	}

	if mode == paintlog.Polyline {
		for i := 1; i < len(points); i++ {
			p.strokeSegment(points[i-1], points[i])
		}
		return nil
	}

	if err := p.fillPolygon(points, p.brush); err != nil {
		return err
	}
	for i := 1; i < len(points); i++ {
		p.strokeSegment(points[i-1], points[i])
	}
	p.strokeSegment(points[len(points)-1], points[0])
	return nil
}

// DrawRects draws a batch of rectangles with the current brush and pen.
func (p *Painter) DrawRects(rects []paintlog.Rect) error {
	for _, r := range rects {
		corners := []paintlog.Point{
			{X: r.MinX, Y: r.MinY},
			{X: r.MaxX, Y: r.MinY},
			{X: r.MaxX, Y: r.MaxY},
			{X: r.MinX, Y: r.MaxY},
		}
		if err := p.fillPolygon(corners, p.brush); err != nil {
			return err
		}
		for i := 1; i < len(corners); i++ {
			p.strokeSegment(corners[i-1], corners[i])
		}
		p.strokeSegment(corners[3], corners[0])
	}
	return nil
}

// DrawPath fills and strokes a vector path.
func (p *Painter) DrawPath(path *paintlog.Path) error {
	if path == nil || path.IsEmpty() {
		return nil
	}
	if err := p.fillPath(path, p.brush); err != nil {
		return err
	}
	return p.strokePath(path)
}

// DrawText draws s with its baseline origin at pos.
// The string is segmented into bidi runs; each run is shaped to obtain
// its advance and rasterized with the current face.
func (p *Painter) DrawText(pos paintlog.Point, s string) error {
	if s == "" || p.face == nil {
		return nil
	}

	x, y := p.transform.TransformPoint(pos.X, pos.Y)
	dst := p.clippedDst()
	src := image.NewUniform(p.pen.Color.Color())

	if p.bgMode == paintlog.OpaqueMode && p.background.Style != paintlog.BrushNone {
		p.fillTextBackground(x, y, s)
	}

	drawer := &font.Drawer{
		Dst:  dst,
		Src:  src,
		Face: p.face.Raster(),
	}

	dot := fixed.Point26_6{X: floatToFixed(x), Y: floatToFixed(y)}
	for _, run := range text.SegmentString(s) {
		advance := p.shaper.Advance(run, p.face)
		drawer.Dot = dot
		drawer.DrawString(run.Text)
		dot.X += floatToFixed(advance)
	}
	return nil
}

// fillTextBackground fills the text's bounding box with the background
// brush before the glyphs are drawn.
func (p *Painter) fillTextBackground(x, y float64, s string) {
	total := 0.0
	for _, run := range text.SegmentString(s) {
		total += p.shaper.Advance(run, p.face)
	}
	m := p.face.Metrics()
	quad := [4]paintlog.Point{
		{X: x, Y: y - m.Ascent},
		{X: x + total, Y: y - m.Ascent},
		{X: x + total, Y: y + m.Descent},
		{X: x, Y: y + m.Descent},
	}
	p.fillDeviceQuad(quad, p.background)
}

// --------------------------------------------------------------------------
// Rasterization helpers
// --------------------------------------------------------------------------

// drawOp maps the composition mode to an image/draw operator.
func (p *Painter) drawOp() stddraw.Op {
	switch p.comp {
	case paintlog.CompositionSource, paintlog.CompositionClear:
		return stddraw.Src
	default:
		return stddraw.Over
	}
}

// clippedDst returns the destination restricted to the active clip.
func (p *Painter) clippedDst() *image.RGBA {
	if !p.clipEnabled {
		return p.dst
	}
	return p.dst.SubImage(p.clip).(*image.RGBA)
}

// deviceRect maps a logical rectangle through the transform and returns
// its integer device-space bounding box.
func (p *Painter) deviceRect(r paintlog.Rect) image.Rectangle {
	x1, y1 := p.transform.TransformPoint(r.MinX, r.MinY)
	x2, y2 := p.transform.TransformPoint(r.MaxX, r.MaxY)
	x3, y3 := p.transform.TransformPoint(r.MinX, r.MaxY)
	x4, y4 := p.transform.TransformPoint(r.MaxX, r.MinY)

	minX := math.Min(math.Min(x1, x2), math.Min(x3, x4))
	minY := math.Min(math.Min(y1, y2), math.Min(y3, y4))
	maxX := math.Max(math.Max(x1, x2), math.Max(x3, x4))
	maxY := math.Max(math.Max(y1, y2), math.Max(y3, y4))

	return image.Rect(int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)))
}

// brushSource returns the fill source image and alignment point for box.
func (p *Painter) brushSource(brush paintlog.Brush, box image.Rectangle) (image.Image, image.Point) {
	if brush.Style == paintlog.BrushTexture && brush.Texture != nil {
		return tileImage(brush.Texture, box, p.brushOrigin), image.Point{}
	}
	return image.NewUniform(brush.Color.Color()), image.Point{}
}

// tileImage repeats the texture pixmap across box, aligned to origin.
func tileImage(pm *paintlog.Pixmap, box image.Rectangle, origin paintlog.Point) *image.RGBA {
	tiled := image.NewRGBA(image.Rect(0, 0, box.Dx(), box.Dy()))
	tile := pm.Image()
	tw, th := pm.Width(), pm.Height()
	if tw <= 0 || th <= 0 {
		return tiled
	}

	offX := ((box.Min.X-int(origin.X))%tw + tw) % tw
	offY := ((box.Min.Y-int(origin.Y))%th + th) % th

	for y := -offY; y < box.Dy(); y += th {
		for x := -offX; x < box.Dx(); x += tw {
			stddraw.Draw(tiled, image.Rect(x, y, x+tw, y+th), tile, image.Point{}, stddraw.Src)
		}
	}
	return tiled
}

// fillPolygon fills a logical-space polygon with the given brush.
func (p *Painter) fillPolygon(points []paintlog.Point, brush paintlog.Brush) error {
	if brush.Style == paintlog.BrushNone || len(points) < 3 {
		return nil
	}

	device := make([]paintlog.Point, len(points))
	for i, pt := range points {
		x, y := p.transform.TransformPoint(pt.X, pt.Y)
		device[i] = paintlog.Pt(x, y)
	}
	p.fillDevicePolygon(device, brush)
	return nil
}

// fillDeviceQuad fills a device-space quad with the given brush.
func (p *Painter) fillDeviceQuad(quad [4]paintlog.Point, brush paintlog.Brush) {
	if brush.Style == paintlog.BrushNone {
		return
	}
	p.fillDevicePolygon(quad[:], brush)
}

// fillDevicePolygon rasterizes a device-space polygon.
func (p *Painter) fillDevicePolygon(points []paintlog.Point, brush paintlog.Brush) {
	box := deviceBounds(points).Intersect(p.clippedDst().Bounds())
	if box.Empty() {
		return
	}

	ras := vector.NewRasterizer(box.Dx(), box.Dy())
	ox, oy := float32(box.Min.X), float32(box.Min.Y)
	ras.MoveTo(float32(points[0].X)-ox, float32(points[0].Y)-oy)
	for _, pt := range points[1:] {
		ras.LineTo(float32(pt.X)-ox, float32(pt.Y)-oy)
	}
	ras.ClosePath()

	src, sp := p.brushSource(brush, box)
	ras.DrawOp = p.drawOp()
	ras.Draw(p.clippedDst(), box, src, sp)
}

// fillPath rasterizes a logical-space path with the given brush.
func (p *Painter) fillPath(path *paintlog.Path, brush paintlog.Brush) error {
	if brush.Style == paintlog.BrushNone || path.IsEmpty() {
		return nil
	}

	subpaths := p.flattenPath(path)
	var all []paintlog.Point
	for _, sp := range subpaths {
		all = append(all, sp.points...)
	}
	if len(all) < 3 {
		return nil
	}

	box := deviceBounds(all).Intersect(p.clippedDst().Bounds())
	if box.Empty() {
		return nil
	}

	ras := vector.NewRasterizer(box.Dx(), box.Dy())
	ox, oy := float32(box.Min.X), float32(box.Min.Y)
	for _, sp := range subpaths {
		if len(sp.points) < 2 {
			continue
		}
		ras.MoveTo(float32(sp.points[0].X)-ox, float32(sp.points[0].Y)-oy)
		for _, pt := range sp.points[1:] {
			ras.LineTo(float32(pt.X)-ox, float32(pt.Y)-oy)
		}
		ras.ClosePath()
	}

	src, spt := p.brushSource(brush, box)
	ras.DrawOp = p.drawOp()
	ras.Draw(p.clippedDst(), box, src, spt)
	return nil
}

// strokePath strokes a logical-space path with the current pen.
func (p *Painter) strokePath(path *paintlog.Path) error {
	for _, sp := range p.flattenPath(path) {
		for i := 1; i < len(sp.points); i++ {
			p.strokeDeviceSegment(sp.points[i-1], sp.points[i])
		}
		if sp.closed && len(sp.points) > 2 {
			p.strokeDeviceSegment(sp.points[len(sp.points)-1], sp.points[0])
		}
	}
	return nil
}

// strokeSegment strokes one logical-space segment with the current pen.
func (p *Painter) strokeSegment(a, b paintlog.Point) {
	x1, y1 := p.transform.TransformPoint(a.X, a.Y)
	x2, y2 := p.transform.TransformPoint(b.X, b.Y)
	p.strokeDeviceSegment(paintlog.Pt(x1, y1), paintlog.Pt(x2, y2))
}

// strokeDeviceSegment fills the quad covering a device-space segment at
// pen width.
func (p *Painter) strokeDeviceSegment(a, b paintlog.Point) {
	if p.pen.Color.A == 0 {
		return
	}

	dx := b.X - a.X
	dy := b.Y - a.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}

	width := p.pen.Width * p.transform.ScaleFactor()
	if width < 1 {
		width = 1
	}
	half := width / 2
	nx := -dy / length * half
	ny := dx / length * half

	quad := [4]paintlog.Point{
		{X: a.X + nx, Y: a.Y + ny},
		{X: b.X + nx, Y: b.Y + ny},
		{X: b.X - nx, Y: b.Y - ny},
		{X: a.X - nx, Y: a.Y - ny},
	}
	p.fillDeviceQuad(quad, paintlog.SolidBrush(p.pen.Color))
}

// blit scales the src portion of img into the transformed dst rectangle.
func (p *Painter) blit(dst paintlog.Rect, img image.Image, src paintlog.Rect) {
	target := p.deviceRect(dst)
	if target.Empty() {
		return
	}

	srcRect := image.Rect(int(src.MinX), int(src.MinY), int(math.Ceil(src.MaxX)), int(math.Ceil(src.MaxY)))
	if srcRect.Empty() {
		srcRect = img.Bounds()
	}

	var scaler xdraw.Scaler = xdraw.ApproxBiLinear
	if !p.hints.Has(paintlog.HintSmoothPixmapTransform) {
		scaler = xdraw.NearestNeighbor
	}
	scaler.Scale(p.clippedDst(), target, img, srcRect, xdraw.Op(p.drawOp()), nil)
}

// --------------------------------------------------------------------------
// Path flattening
// --------------------------------------------------------------------------

type subpath struct {
	points []paintlog.Point
	closed bool
}

// flattenPath converts a path into device-space polylines, sampling
// curves at a fixed step count.
func (p *Painter) flattenPath(path *paintlog.Path) []subpath {
	const steps = 16

	var result []subpath
	var current subpath
	var cursor paintlog.Point

	flush := func() {
		if len(current.points) > 0 {
			result = append(result, current)
		}
		current = subpath{}
	}

	dev := func(pt paintlog.Point) paintlog.Point {
		x, y := p.transform.TransformPoint(pt.X, pt.Y)
		return paintlog.Pt(x, y)
	}

	for _, el := range path.Elements() {
		switch e := el.(type) {
		case paintlog.MoveTo:
			flush()
			cursor = e.Point
			current.points = append(current.points, dev(e.Point))
		case paintlog.LineTo:
			cursor = e.Point
			current.points = append(current.points, dev(e.Point))
		case paintlog.QuadTo:
			for i := 1; i <= steps; i++ {
				t := float64(i) / steps
				current.points = append(current.points, dev(quadPoint(cursor, e.Control, e.Point, t)))
			}
			cursor = e.Point
		case paintlog.CubicTo:
			for i := 1; i <= steps; i++ {
				t := float64(i) / steps
				current.points = append(current.points, dev(cubicPoint(cursor, e.Control1, e.Control2, e.Point, t)))
			}
			cursor = e.Point
		case paintlog.Close:
			current.closed = true
			flush()
		}
	}
	flush()
	return result
}

func quadPoint(p0, c, p1 paintlog.Point, t float64) paintlog.Point {
	u := 1 - t
	return paintlog.Pt(
		u*u*p0.X+2*u*t*c.X+t*t*p1.X,
		u*u*p0.Y+2*u*t*c.Y+t*t*p1.Y,
	)
}

func cubicPoint(p0, c1, c2, p1 paintlog.Point, t float64) paintlog.Point {
	u := 1 - t
	return paintlog.Pt(
		u*u*u*p0.X+3*u*u*t*c1.X+3*u*t*t*c2.X+t*t*t*p1.X,
		u*u*u*p0.Y+3*u*u*t*c1.Y+3*u*t*t*c2.Y+t*t*t*p1.Y,
	)
}

// ellipsePath builds the cubic approximation of the ellipse inscribed
// in rect.
func ellipsePath(rect paintlog.Rect) *paintlog.Path {
	const k = 0.5522847498307936 // 4/3 * (sqrt(2) - 1)

	cx := (rect.MinX + rect.MaxX) / 2
	cy := (rect.MinY + rect.MaxY) / 2
	rx := rect.Width() / 2
	ry := rect.Height() / 2
	ox := rx * k
	oy := ry * k

	path := paintlog.NewPath()
	path.MoveTo(cx+rx, cy)
	path.CubicTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry)
	path.CubicTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy)
	path.CubicTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry)
	path.CubicTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy)
	path.Close()
	return path
}

// deviceBounds returns the integer bounding box of device-space points.
func deviceBounds(points []paintlog.Point) image.Rectangle {
	if len(points) == 0 {
		return image.Rectangle{}
	}
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, pt := range points[1:] {
		minX = math.Min(minX, pt.X)
		minY = math.Min(minY, pt.Y)
		maxX = math.Max(maxX, pt.X)
		maxY = math.Max(maxY, pt.Y)
	}
	return image.Rect(int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)))
}

// floatToFixed converts a float64 to fixed.Int26_6.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}
