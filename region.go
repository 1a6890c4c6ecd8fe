package paintlog

// Region represents a clip region as a set of rectangles.
// The region covers the union of its rectangles.
type Region []Rect

// NewRegion creates a region covering a single rectangle.
func NewRegion(r Rect) Region {
	return Region{r}
}

// Clone returns a deep copy of the region.
func (r Region) Clone() Region {
	if r == nil {
		return nil
	}
	clone := make(Region, len(r))
	copy(clone, r)
	return clone
}

// IsEmpty returns true if the region covers no area.
func (r Region) IsEmpty() bool {
	for _, rect := range r {
		if !rect.IsEmpty() {
			return false
		}
	}
	return true
}

// Bounds returns the bounding rectangle of the region.
func (r Region) Bounds() Rect {
	var bounds Rect
	first := true
	for _, rect := range r {
		if rect.IsEmpty() {
			continue
		}
		if first {
			bounds = rect
			first = false
			continue
		}
		bounds = bounds.Union(rect)
	}
	return bounds
}

// Contains returns true if the point lies within any rectangle of the region.
func (r Region) Contains(x, y float64) bool {
	for _, rect := range r {
		if rect.Contains(x, y) {
			return true
		}
	}
	return false
}
