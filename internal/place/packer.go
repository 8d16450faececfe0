package place

import (
	"github.com/ForeverZer0/rectpack"

	"github.com/nhansendev/RectanglePack/internal/model"
)

// Packer is a placement backend over the rectpack library. A Packer is
// stateless: every Place call builds a fresh underlying packer, so a single
// value can be shared across goroutines. Rectangles are never flipped by
// the backend; orientation decisions belong to the search layer.
type Packer struct {
	heuristic Heuristic
}

// New creates a Packer using the given heuristic.
func New(h Heuristic) Packer {
	return Packer{heuristic: h}
}

// Default returns a Packer with the MaxRects best-short-side-fit heuristic.
func Default() Packer {
	return New(MaxRectsBSSF)
}

// Heuristic returns the heuristic this Packer places with.
func (p Packer) Heuristic() Heuristic {
	return p.heuristic
}

// Place lays the sizes out inside a width x height bin. It returns one
// position per size, in input order, or false when the heuristic finds no
// arrangement that fits them all.
func (p Packer) Place(sizes []model.Rect, width, height int) ([]model.Point, bool) {
	packer, err := rectpack.NewPacker(width, height, p.heuristic.preset())
	if err != nil {
		return nil, false
	}
	packer.AllowFlip(false)
	for i, s := range sizes {
		packer.InsertSize(i, s.Width, s.Height)
	}
	if !packer.Pack() {
		return nil, false
	}

	placed := packer.Map()
	positions := make([]model.Point, len(sizes))
	for i := range sizes {
		rect, ok := placed[i]
		if !ok {
			return nil, false
		}
		positions[i] = model.Point{X: rect.X, Y: rect.Y}
	}
	return positions, true
}

// Density scores a placement as occupied area over the area of its bounding
// box, in (0, 1]. An empty placement scores 0.
func (p Packer) Density(sizes []model.Rect, positions []model.Point) float64 {
	var used, right, bottom int
	for i, s := range sizes {
		used += s.Area()
		if r := positions[i].X + s.Width; r > right {
			right = r
		}
		if b := positions[i].Y + s.Height; b > bottom {
			bottom = b
		}
	}
	if right == 0 || bottom == 0 {
		return 0
	}
	return float64(used) / float64(right*bottom)
}
