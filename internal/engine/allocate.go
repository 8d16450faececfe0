package engine

import (
	"github.com/nhansendev/RectanglePack/internal/model"
)

// DefaultCoverage is the conventional minimum bin coverage for standalone
// MaxUsage calls. The multi-sheet allocator always searches without a floor.
const DefaultCoverage = 0.9

// MaxUsage finds the best-covering feasible packing of one bin: candidate
// subsets of the input are tried in descending total-area order and the
// first one that packs wins. Because the order is by area alone, the winner
// is the best utilization reachable by this area-first rule, not a proven
// optimum. A non-zero coverage discards candidate subsets covering less
// than that fraction of the bin up front. The second return is false when
// no subset packs, a normal outcome.
func (s *Searcher) MaxUsage(rects []model.Rect, width, height int, coverage float64) (model.Packing, bool, error) {
	if err := model.ValidateBin(width, height); err != nil {
		return model.Packing{}, false, err
	}
	subsets, err := SubsetsByArea(rects, width*height, coverage)
	if err != nil {
		return model.Packing{}, false, err
	}

	for _, sub := range subsets {
		packing, ok, err := s.BestPacking(sub.Rects, width, height)
		if err != nil {
			return model.Packing{}, false, err
		}
		if ok {
			return packing, true, nil
		}
	}
	return model.Packing{}, false, nil
}

// PackSheets allocates the whole input multiset onto as many width x height
// sheets as needed. Each iteration packs one fresh sheet with the
// best-covering feasible subset of the remaining pool and removes the placed
// items from it. The loop stops when the pool is empty or no non-empty
// subset can start another sheet; whatever remains is returned in
// Result.Unplaced rather than dropped. The input slice is never mutated.
func (s *Searcher) PackSheets(rects []model.Rect, width, height int) (model.Result, error) {
	if err := model.ValidateRects(rects); err != nil {
		return model.Result{}, err
	}
	if err := model.ValidateBin(width, height); err != nil {
		return model.Result{}, err
	}

	pool := append([]model.Rect(nil), rects...)
	var result model.Result
	for len(pool) > 0 {
		packing, ok, err := s.MaxUsage(pool, width, height, 0)
		if err != nil {
			return model.Result{}, err
		}
		if !ok {
			break
		}

		result.Sheets = append(result.Sheets, model.Sheet{
			Width:   width,
			Height:  height,
			Packing: packing,
		})

		before := len(pool)
		pool = removePlaced(pool, packing.Sizes)
		if len(pool) == before {
			// A backend reporting placements absent from the pool would
			// otherwise loop forever.
			break
		}
	}

	if len(pool) > 0 {
		result.Unplaced = pool
	}
	return result, nil
}

// Leftover returns a copy of pool with one instance removed per placed
// size, matching the exact orientation first and the swapped orientation
// second. Callers use it to account for what a single-sheet packing left
// behind; neither input slice is modified.
func Leftover(pool, placed []model.Rect) []model.Rect {
	return removePlaced(append([]model.Rect(nil), pool...), placed)
}

// removePlaced deletes one pool instance per placed size, preferring an
// exact-orientation match and falling back to the swapped orientation.
// Every placed size consumes at most one pool item.
func removePlaced(pool []model.Rect, placed []model.Rect) []model.Rect {
	for _, size := range placed {
		if i := indexOf(pool, size); i >= 0 {
			pool = append(pool[:i], pool[i+1:]...)
			continue
		}
		if i := indexOf(pool, size.Rotated()); i >= 0 {
			pool = append(pool[:i], pool[i+1:]...)
		}
	}
	return pool
}

// indexOf returns the position of the first pool item equal to r, or -1.
func indexOf(pool []model.Rect, r model.Rect) int {
	for i, p := range pool {
		if p == r {
			return i
		}
	}
	return -1
}
