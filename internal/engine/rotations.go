// Package engine implements the combinatorial search that places a multiset
// of rectangles onto fixed-size sheets: orientation enumeration for groups of
// identical rectangles, area-ranked subset enumeration, densest single-bin
// search and the greedy multi-sheet allocation loop. The geometric placement
// itself is delegated to a Placer backend.
package engine

import (
	"github.com/nhansendev/RectanglePack/internal/model"
)

// OrientationSequences returns every distinct orientation assignment for a
// group of count copies of the same shape. Copies are interchangeable, so
// only the number rotated matters: a rotatable shape yields count+1
// sequences, the k-th holding k copies as given followed by count-k swapped
// copies, for k = 0..count. A square shape yields a single sequence, since
// rotating it is a no-op. A count below 1 yields one empty sequence.
//
// The shape is assumed well formed; RotationSets validates caller input.
func OrientationSequences(shape model.Rect, count int) [][]model.Rect {
	if count < 1 {
		return [][]model.Rect{{}}
	}

	repeat := func(r model.Rect, n int) []model.Rect {
		seq := make([]model.Rect, n)
		for i := range seq {
			seq[i] = r
		}
		return seq
	}

	if shape.IsSquare() {
		return [][]model.Rect{repeat(shape, count)}
	}

	swapped := shape.Rotated()
	sequences := make([][]model.Rect, 0, count+1)
	for kept := 0; kept <= count; kept++ {
		seq := make([]model.Rect, 0, count)
		seq = append(seq, repeat(shape, kept)...)
		seq = append(seq, repeat(swapped, count-kept)...)
		sequences = append(sequences, seq)
	}
	return sequences
}

// RotationSets enumerates every distinct orientation assignment of a whole
// multiset. The input is grouped by canonical shape; square groups form a
// fixed prefix shared by all output sequences, and each rotatable group of
// size N contributes its N+1 sequences to a Cartesian product (the last
// group varies fastest). The total count is the product of (N+1) over the
// rotatable groups. An empty input yields one empty sequence.
//
// Enumeration order is deterministic for a given input, which downstream
// first-seen tie-breaking relies on.
func RotationSets(rects []model.Rect) ([][]model.Rect, error) {
	if err := model.ValidateRects(rects); err != nil {
		return nil, err
	}

	groups := model.GroupRects(rects)
	var prefix []model.Rect
	var options [][][]model.Rect
	for _, g := range groups {
		if g.Symmetric() {
			for i := 0; i < g.Count; i++ {
				prefix = append(prefix, g.Shape)
			}
			continue
		}
		options = append(options, OrientationSequences(g.Shape, g.Count))
	}

	return combine(prefix, options, len(rects)), nil
}

// combine builds the Cartesian product of per-group sequence options, each
// element prefixed by the shared symmetric items. The rightmost group
// advances first, matching the enumeration order of the per-group lists.
func combine(prefix []model.Rect, options [][][]model.Rect, seqLen int) [][]model.Rect {
	total := 1
	for _, opts := range options {
		total *= len(opts)
	}

	out := make([][]model.Rect, 0, total)
	idx := make([]int, len(options))
	for {
		seq := make([]model.Rect, 0, seqLen)
		seq = append(seq, prefix...)
		for gi, oi := range idx {
			seq = append(seq, options[gi][oi]...)
		}
		out = append(out, seq)

		carry := len(idx) - 1
		for carry >= 0 {
			idx[carry]++
			if idx[carry] < len(options[carry]) {
				break
			}
			idx[carry] = 0
			carry--
		}
		if carry < 0 {
			return out
		}
	}
}
