// Package text provides the run segmentation, shaping, and font face
// handling the raster replay painter uses to draw recorded text commands.
//
// A recorded text command carries only the rendered string; this package
// turns that string into direction-uniform runs (via Unicode bidi
// resolution), shapes each run into positioned glyphs (via HarfBuzz
// shaping from go-text/typesetting), and exposes the font face metrics
// needed to place the runs on the baseline.
package text
