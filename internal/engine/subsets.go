package engine

import (
	"fmt"
	"sort"

	"github.com/nhansendev/RectanglePack/internal/model"
)

// Subset is a candidate item selection with its precomputed total area.
// Rects holds canonical shapes; orientation is decided later by the
// rotation search.
type Subset struct {
	Rects []model.Rect
	Area  int
}

// SubsetsByArea enumerates every way of keeping some number of each shape
// from the input multiset, ranked by total area. Selection is
// orientation-agnostic: the multiset is grouped by canonical shape and each
// group of size N offers keep-counts 0..N. The all-zero selection is
// dropped, candidates with area outside (0, budget] are discarded, and when
// coverage is non-zero only candidates with area >= coverage*budget
// survive. The result is sorted by area descending; equal-area candidates
// keep their generation order, so repeated calls enumerate identically.
//
// An empty result is a normal outcome, not an error.
func SubsetsByArea(rects []model.Rect, budget int, coverage float64) ([]Subset, error) {
	if err := model.ValidateRects(rects); err != nil {
		return nil, err
	}
	if budget <= 0 {
		return nil, fmt.Errorf("%w: area budget %d must be positive", model.ErrInvalidInput, budget)
	}
	if coverage < 0 || coverage > 1 {
		return nil, fmt.Errorf("%w: coverage %v must be in [0, 1]", model.ErrInvalidInput, coverage)
	}

	groups := model.GroupRects(rects)
	options := make([][][]model.Rect, len(groups))
	for i, g := range groups {
		options[i] = keepOptions(g.Shape, g.Count)
	}

	floor := coverage * float64(budget)
	candidates := combine(nil, options, len(rects))
	subsets := make([]Subset, 0, len(candidates))
	for _, c := range candidates {
		area := 0
		for _, r := range c {
			area += r.Area()
		}
		if area <= 0 || area > budget {
			continue
		}
		if coverage > 0 && float64(area) < floor {
			continue
		}
		subsets = append(subsets, Subset{Rects: c, Area: area})
	}

	sort.SliceStable(subsets, func(i, j int) bool {
		return subsets[i].Area > subsets[j].Area
	})
	return subsets, nil
}

// keepOptions lists the k = 0..count ways of keeping copies of one shape.
func keepOptions(shape model.Rect, count int) [][]model.Rect {
	out := make([][]model.Rect, 0, count+1)
	for k := 0; k <= count; k++ {
		kept := make([]model.Rect, k)
		for i := range kept {
			kept[i] = shape
		}
		out = append(out, kept)
	}
	return out
}
