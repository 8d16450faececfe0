package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhansendev/RectanglePack/internal/model"
)

// shelfPlacer is a minimal deterministic backend for tests: items fill
// left-to-right rows, wrapping below the tallest item of the current row.
// Being this simple makes every expected outcome checkable by hand.
type shelfPlacer struct{}

func (shelfPlacer) Place(sizes []model.Rect, width, height int) ([]model.Point, bool) {
	positions := make([]model.Point, len(sizes))
	x, y, rowH := 0, 0, 0
	for i, s := range sizes {
		if x+s.Width > width {
			y += rowH
			x, rowH = 0, 0
		}
		if x+s.Width > width || y+s.Height > height {
			return nil, false
		}
		positions[i] = model.Point{X: x, Y: y}
		x += s.Width
		if s.Height > rowH {
			rowH = s.Height
		}
	}
	return positions, true
}

func (shelfPlacer) Density(sizes []model.Rect, positions []model.Point) float64 {
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

func TestBestPacking_FindsFeasibleRotation(t *testing.T) {
	// Two 4x3 pieces fit a 6x5 bin only as side-by-side 3x4 columns, the
	// last assignment enumerated.
	s := New(shelfPlacer{})
	packing, ok, err := s.BestPacking([]model.Rect{{Width: 4, Height: 3}, {Width: 4, Height: 3}}, 6, 5)

	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []model.Rect{{Width: 3, Height: 4}, {Width: 3, Height: 4}}, packing.Sizes)
	assert.Equal(t, []model.Point{{X: 0, Y: 0}, {X: 3, Y: 0}}, packing.Positions)
	assert.Equal(t, 1.0, packing.Density)
}

func TestBestPacking_FirstSeenWinsTies(t *testing.T) {
	// A lone 2x3 scores 1.0 in either orientation; the swapped form is
	// enumerated first and a later equal score must not displace it.
	s := New(shelfPlacer{})
	packing, ok, err := s.BestPacking([]model.Rect{{Width: 2, Height: 3}}, 5, 5)

	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []model.Rect{{Width: 3, Height: 2}}, packing.Sizes)
	assert.Equal(t, 1.0, packing.Density)
}

func TestBestPacking_PicksDensestRotation(t *testing.T) {
	// Keeping the 1x3 upright tightens the bounding box: 7/9 beats 7/10.
	s := New(shelfPlacer{})
	packing, ok, err := s.BestPacking([]model.Rect{{Width: 2, Height: 2}, {Width: 1, Height: 3}}, 5, 5)

	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []model.Rect{{Width: 2, Height: 2}, {Width: 1, Height: 3}}, packing.Sizes)
	assert.Equal(t, 7.0/9.0, packing.Density)
}

func TestBestPacking_DensityIsMaximal(t *testing.T) {
	s := New(shelfPlacer{})
	rects := []model.Rect{{Width: 2, Height: 2}, {Width: 1, Height: 3}, {Width: 4, Height: 1}}
	packing, ok, err := s.BestPacking(rects, 6, 6)
	require.NoError(t, err)
	require.True(t, ok)

	// No enumerated assignment may beat the reported density.
	sequences, err := RotationSets(rects)
	require.NoError(t, err)
	placer := shelfPlacer{}
	for _, seq := range sequences {
		positions, feasible := placer.Place(seq, 6, 6)
		if !feasible {
			continue
		}
		assert.LessOrEqual(t, placer.Density(seq, positions), packing.Density)
	}
}

func TestBestPacking_NoFeasiblePacking(t *testing.T) {
	// Too large in both orientations: a negative outcome, not an error.
	s := New(shelfPlacer{})
	_, ok, err := s.BestPacking([]model.Rect{{Width: 7, Height: 9}}, 6, 5)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBestPacking_EmptyInput(t *testing.T) {
	s := New(shelfPlacer{})
	_, ok, err := s.BestPacking(nil, 6, 5)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBestPacking_InvalidInput(t *testing.T) {
	s := New(shelfPlacer{})
	_, _, err := s.BestPacking([]model.Rect{{Width: 0, Height: 3}}, 6, 5)
	assert.ErrorIs(t, err, model.ErrInvalidInput)

	_, _, err = s.BestPacking([]model.Rect{{Width: 2, Height: 3}}, 0, 5)
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestBestPacking_ConcurrentMatchesSequential(t *testing.T) {
	// 12 assignments across two rotatable groups, merged back to the same
	// outcome the sequential walk produces.
	rects := []model.Rect{{Width: 1, Height: 2}, {Width: 1, Height: 2}, {Width: 1, Height: 2}, {Width: 2, Height: 3}, {Width: 2, Height: 3}, {Width: 2, Height: 2}}

	sequential := New(shelfPlacer{})
	wantPacking, wantOK, err := sequential.BestPacking(rects, 7, 7)
	require.NoError(t, err)

	concurrent := New(shelfPlacer{})
	concurrent.Workers = 4
	gotPacking, gotOK, err := concurrent.BestPacking(rects, 7, 7)
	require.NoError(t, err)

	assert.Equal(t, wantOK, gotOK)
	assert.Equal(t, wantPacking, gotPacking)
}

func TestBestPacking_ConcurrentTieBreak(t *testing.T) {
	s := New(shelfPlacer{})
	s.Workers = 3
	packing, ok, err := s.BestPacking([]model.Rect{{Width: 2, Height: 3}}, 5, 5)

	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []model.Rect{{Width: 3, Height: 2}}, packing.Sizes, "lowest assignment index wins density ties")
}
