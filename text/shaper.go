package text

import (
	"sync"

	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
)

// Glyph is one positioned glyph produced by shaping a run.
type Glyph struct {
	// GID is the glyph index in the font.
	GID uint32
	// Cluster is the byte index of the source text this glyph maps to.
	Cluster int
	// X and Y position the glyph relative to the run origin.
	X, Y float64
	// XAdvance and YAdvance move the pen after this glyph.
	XAdvance, YAdvance float64
}

// Shaper converts text runs into positioned glyphs using HarfBuzz
// shaping from go-text/typesetting, applying kerning, ligatures, and
// script-specific substitution.
//
// Shaper is safe for concurrent use. HarfbuzzShaper instances have
// internal mutable state and are pooled per call; gtfont.Font is
// read-only and shared, while the per-call gtfont.Face is created fresh
// since it is not safe for concurrent use.
type Shaper struct {
	pool sync.Pool
}

// NewShaper creates a shaper.
func NewShaper() *Shaper {
	return &Shaper{
		pool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
	}
}

// ShapeRun shapes a single direction-uniform run with the given face.
func (s *Shaper) ShapeRun(run Run, face *Face) []Glyph {
	if run.Text == "" || face == nil {
		return nil
	}

	runes := []rune(run.Text)
	dir := mapDirection(run.Direction)

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir,
		Face:      gtfont.NewFace(face.shaped),
		Size:      floatToFixed(face.size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := s.pool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	s.pool.Put(hb)

	return convertGlyphs(output.Glyphs)
}

// Advance returns the total horizontal advance of a run in pixels.
func (s *Shaper) Advance(run Run, face *Face) float64 {
	total := 0.0
	for _, g := range s.ShapeRun(run, face) {
		total += g.XAdvance
	}
	return total
}

// mapDirection converts a run direction to go-text's di.Direction.
func mapDirection(d Direction) di.Direction {
	if d == DirectionRTL {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// detectScript inspects the runes and returns the script of the first
// non-space character. Runs are already direction-uniform; mixed-script
// runs shape with the first script found.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// convertGlyphs converts go-text output glyphs, accumulating pen advances
// into absolute run-relative positions.
func convertGlyphs(glyphs []shaping.Glyph) []Glyph {
	if len(glyphs) == 0 {
		return nil
	}

	result := make([]Glyph, len(glyphs))
	var x, y float64

	for i, g := range glyphs {
		xOff := fixedToFloat(g.XOffset)
		yOff := fixedToFloat(g.YOffset)

		result[i] = Glyph{
			GID:     uint32(g.GlyphID),
			Cluster: g.TextIndex(),
			X:       x + xOff,
			Y:       y + yOff,
		}

		adv := fixedToFloat(g.Advance)
		result[i].XAdvance = adv
		x += adv
	}

	return result
}
