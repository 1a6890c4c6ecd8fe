package text

import (
	"bytes"
	"fmt"

	gtfont "github.com/go-text/typesetting/font"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Metrics holds the vertical metrics of a face at its size, in pixels.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of a line.
	Ascent float64
	// Descent is the distance from the baseline to the bottom of a line.
	Descent float64
	// Height is the recommended line height.
	Height float64
}

// Face is a font loaded at a specific size.
//
// The same font data is parsed twice: once with x/image/opentype for
// rasterization, once with go-text/typesetting for shaping. Both parsed
// forms are retained so WithSize can derive faces without re-parsing.
type Face struct {
	data   []byte
	size   float64
	parsed *opentype.Font
	raster font.Face
	shaped *gtfont.Font
}

// NewFace parses TTF/OTF font data and returns a face at the given size
// in points (at 72 DPI, points equal pixels).
func NewFace(ttf []byte, size float64) (*Face, error) {
	parsed, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("text: parse font: %w", err)
	}

	gtFace, err := gtfont.ParseTTF(bytes.NewReader(ttf))
	if err != nil {
		return nil, fmt.Errorf("text: parse font for shaping: %w", err)
	}

	return newFaceAt(ttf, parsed, gtFace.Font, size)
}

func newFaceAt(ttf []byte, parsed *opentype.Font, shaped *gtfont.Font, size float64) (*Face, error) {
	raster, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("text: create face: %w", err)
	}

	return &Face{
		data:   ttf,
		size:   size,
		parsed: parsed,
		raster: raster,
		shaped: shaped,
	}, nil
}

// WithSize returns a face for the same font at a different size.
// The underlying font data is not re-parsed.
func (f *Face) WithSize(size float64) (*Face, error) {
	if size == f.size {
		return f, nil
	}
	return newFaceAt(f.data, f.parsed, f.shaped, size)
}

// Size returns the face size in points.
func (f *Face) Size() float64 {
	return f.size
}

// Raster returns the x/image face used for glyph rasterization.
// The returned face is not safe for concurrent use.
func (f *Face) Raster() font.Face {
	return f.raster
}

// Metrics returns the face's vertical metrics in pixels.
func (f *Face) Metrics() Metrics {
	m := f.raster.Metrics()
	return Metrics{
		Ascent:  fixedToFloat(m.Ascent),
		Descent: fixedToFloat(m.Descent),
		Height:  fixedToFloat(m.Height),
	}
}

// Close releases the rasterization face.
// After Close, the face must not be used.
func (f *Face) Close() error {
	return f.raster.Close()
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}

// floatToFixed converts a float64 to fixed.Int26_6.
// The fixed-point representation uses 6 fractional bits.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}
