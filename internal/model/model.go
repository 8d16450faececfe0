package model

import (
	"errors"
	"fmt"
)

// ErrInvalidInput marks validation failures on caller-supplied geometry.
// Wrap with fmt.Errorf("%w: ...") and test with errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// Rect is an axis-aligned rectangle size in whole units.
// Orientation is significant: Rect{3, 4} and Rect{4, 3} are different values.
type Rect struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (r Rect) String() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

// Area returns the surface area of the rectangle.
func (r Rect) Area() int {
	return r.Width * r.Height
}

// Rotated returns the rectangle with its dimensions swapped.
func (r Rect) Rotated() Rect {
	return Rect{Width: r.Height, Height: r.Width}
}

// Canonical returns the rectangle normalized so the smaller dimension comes
// first. Used for grouping equal shapes regardless of orientation, never for
// placement.
func (r Rect) Canonical() Rect {
	if r.Width > r.Height {
		return Rect{Width: r.Height, Height: r.Width}
	}
	return r
}

// IsSquare reports whether rotating the rectangle is a no-op.
func (r Rect) IsSquare() bool {
	return r.Width == r.Height
}

// Validate reports whether the rectangle is a well-formed size.
func (r Rect) Validate() error {
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("%w: rectangle %s must have positive dimensions", ErrInvalidInput, r)
	}
	return nil
}

// ValidateRects checks every rectangle in a multiset, failing on the first
// malformed entry.
func ValidateRects(rects []Rect) error {
	for i, r := range rects {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}
	return nil
}

// ValidateBin checks bin bounds.
func ValidateBin(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: bin %dx%d must have positive dimensions", ErrInvalidInput, width, height)
	}
	return nil
}

// Point is a placement position on a sheet, measured from the top-left
// corner of the bin.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Packing is one feasible non-overlapping layout of oriented rectangles
// inside a single bin. Sizes[i] sits at Positions[i]; both slices always
// have equal length. Density is the placement backend's score for the
// layout, in (0, 1].
type Packing struct {
	Sizes     []Rect  `json:"sizes"`
	Positions []Point `json:"positions"`
	Density   float64 `json:"density"`
}

// UsedArea returns the summed area of all placed rectangles.
func (p Packing) UsedArea() int {
	total := 0
	for _, s := range p.Sizes {
		total += s.Area()
	}
	return total
}

// Count returns the number of placed rectangles.
func (p Packing) Count() int {
	return len(p.Sizes)
}

// Sheet is one fixed-bounds bin holding a completed packing.
// Sheets are immutable once appended to a Result.
type Sheet struct {
	Width   int     `json:"width"`
	Height  int     `json:"height"`
	Packing Packing `json:"packing"`
}

// Area returns the total sheet area.
func (s Sheet) Area() int {
	return s.Width * s.Height
}

// Coverage returns the fraction of the sheet consumed by placed rectangles.
func (s Sheet) Coverage() float64 {
	area := s.Area()
	if area == 0 {
		return 0
	}
	return float64(s.Packing.UsedArea()) / float64(area)
}

// Result is the outcome of a multi-sheet allocation run. Unplaced holds the
// items that could not be started on a fresh sheet; callers must inspect it
// to detect partial allocation.
type Result struct {
	Sheets   []Sheet `json:"sheets"`
	Unplaced []Rect  `json:"unplaced,omitempty"`
}

// PlacedCount returns the number of rectangles placed across all sheets.
func (r Result) PlacedCount() int {
	total := 0
	for _, s := range r.Sheets {
		total += s.Packing.Count()
	}
	return total
}

// SheetCount returns the number of sheets used.
func (r Result) SheetCount() int {
	return len(r.Sheets)
}

// TotalCoverage returns the fraction of all sheet area consumed by placed
// rectangles, or 0 when no sheets were used.
func (r Result) TotalCoverage() float64 {
	var used, total int
	for _, s := range r.Sheets {
		used += s.Packing.UsedArea()
		total += s.Area()
	}
	if total == 0 {
		return 0
	}
	return float64(used) / float64(total)
}

// Group is a canonical shape paired with how many input items share it.
type Group struct {
	Shape Rect `json:"shape"` // canonical, smaller dimension first
	Count int  `json:"count"`
}

// Symmetric reports whether rotation is meaningless for the group's shape.
func (g Group) Symmetric() bool {
	return g.Shape.IsSquare()
}

// GroupRects buckets a multiset of rectangles by canonical shape. Groups are
// returned in order of first appearance so repeated calls over the same input
// enumerate identically.
func GroupRects(rects []Rect) []Group {
	index := make(map[Rect]int, len(rects))
	groups := make([]Group, 0, len(rects))
	for _, r := range rects {
		c := r.Canonical()
		if i, ok := index[c]; ok {
			groups[i].Count++
			continue
		}
		index[c] = len(groups)
		groups = append(groups, Group{Shape: c, Count: 1})
	}
	return groups
}
