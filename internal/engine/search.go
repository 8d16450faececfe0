package engine

import (
	"sync"

	"github.com/nhansendev/RectanglePack/internal/model"
)

// Placer lays out an ordered list of oriented rectangles inside a bounded
// bin, or reports that no arrangement was found. Place returns one position
// per size, in input order; a false return is a normal negative outcome.
// Returned placements are trusted: the search never re-verifies bounds or
// overlap. Density scores a completed placement in (0, 1], higher is better;
// its exact formula belongs to the backend.
//
// Implementations must be deterministic for a given input, and safe for
// concurrent use when the search runs with more than one worker.
type Placer interface {
	Place(sizes []model.Rect, width, height int) ([]model.Point, bool)
	Density(sizes []model.Rect, positions []model.Point) float64
}

// Searcher drives the combinatorial packing search against a placement
// backend.
type Searcher struct {
	placer Placer

	// Workers caps how many rotation assignments BestPacking evaluates
	// concurrently. Values below 2 keep the search strictly sequential.
	// The merged outcome is identical either way.
	Workers int
}

// New creates a Searcher using the given placement backend.
func New(p Placer) *Searcher {
	return &Searcher{placer: p}
}

// BestPacking finds the densest feasible packing of a fixed item multiset
// into one width x height bin, trying every distinct rotation assignment.
// Infeasible assignments are skipped; the best result is replaced only on a
// strict density improvement, so the first assignment seen wins ties. The
// second return is false when every assignment was infeasible, or when the
// multiset is empty. Malformed input is the only error.
func (s *Searcher) BestPacking(rects []model.Rect, width, height int) (model.Packing, bool, error) {
	if err := model.ValidateBin(width, height); err != nil {
		return model.Packing{}, false, err
	}
	sequences, err := RotationSets(rects)
	if err != nil {
		return model.Packing{}, false, err
	}
	if len(rects) == 0 {
		return model.Packing{}, false, nil
	}

	if s.Workers > 1 && len(sequences) > 1 {
		packing, ok := s.bestConcurrent(sequences, width, height)
		return packing, ok, nil
	}

	var best model.Packing
	found := false
	for _, seq := range sequences {
		positions, ok := s.placer.Place(seq, width, height)
		if !ok {
			continue
		}
		density := s.placer.Density(seq, positions)
		if !found || density > best.Density {
			best = model.Packing{Sizes: seq, Positions: positions, Density: density}
			found = true
		}
	}
	return best, found, nil
}

// bestConcurrent evaluates rotation assignments across a bounded set of
// goroutines. Each worker strides over the sequence list and records its
// outcomes by index; the final scan merges by maximum density with the
// lowest index winning ties, which reproduces the sequential first-seen
// result exactly.
func (s *Searcher) bestConcurrent(sequences [][]model.Rect, width, height int) (model.Packing, bool) {
	type outcome struct {
		packing model.Packing
		ok      bool
	}

	workers := s.Workers
	if workers > len(sequences) {
		workers = len(sequences)
	}

	outcomes := make([]outcome, len(sequences))
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(start int) {
			defer wg.Done()
			for i := start; i < len(sequences); i += workers {
				positions, ok := s.placer.Place(sequences[i], width, height)
				if !ok {
					continue
				}
				density := s.placer.Density(sequences[i], positions)
				outcomes[i] = outcome{
					packing: model.Packing{Sizes: sequences[i], Positions: positions, Density: density},
					ok:      true,
				}
			}
		}(w)
	}
	wg.Wait()

	var best model.Packing
	found := false
	for _, o := range outcomes {
		if o.ok && (!found || o.packing.Density > best.Density) {
			best = o.packing
			found = true
		}
	}
	return best, found
}
