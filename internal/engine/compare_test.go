package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhansendev/RectanglePack/internal/model"
)

// soloPlacer refuses any layout with more than one rectangle, forcing one
// sheet per item. Useful as a deliberately weak comparison scenario.
type soloPlacer struct{}

func (soloPlacer) Place(sizes []model.Rect, width, height int) ([]model.Point, bool) {
	if len(sizes) != 1 {
		return nil, false
	}
	return shelfPlacer{}.Place(sizes, width, height)
}

func (soloPlacer) Density(sizes []model.Rect, positions []model.Point) float64 {
	return shelfPlacer{}.Density(sizes, positions)
}

func TestCompareScenarios(t *testing.T) {
	scenarios := []ComparisonScenario{
		{Name: "shelf", Placer: shelfPlacer{}},
		{Name: "one per sheet", Placer: soloPlacer{}},
	}
	rects := []model.Rect{{Width: 2, Height: 2}, {Width: 2, Height: 2}}

	results, err := CompareScenarios(scenarios, rects, 10, 10)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "shelf", results[0].Scenario.Name)
	assert.Equal(t, 1, results[0].SheetsUsed)
	assert.Equal(t, 2, results[0].PlacedCount)
	assert.Equal(t, 0, results[0].UnplacedCount)
	assert.InDelta(t, 92.0, results[0].WastePercent, 1e-9)

	assert.Equal(t, 2, results[1].SheetsUsed, "the weak backend needs one sheet per square")
	assert.Equal(t, 0, results[1].UnplacedCount)
}

func TestCompareScenarios_PropagatesError(t *testing.T) {
	scenarios := []ComparisonScenario{{Name: "shelf", Placer: shelfPlacer{}}}
	_, err := CompareScenarios(scenarios, []model.Rect{{Width: 0, Height: 2}}, 10, 10)
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestBestScenario(t *testing.T) {
	results := []ComparisonResult{
		{SheetsUsed: 1, UnplacedCount: 2, WastePercent: 10},
		{SheetsUsed: 5, UnplacedCount: 0, WastePercent: 40},
		{SheetsUsed: 4, UnplacedCount: 0, WastePercent: 35},
	}
	assert.Equal(t, 2, BestScenario(results), "fewest unplaced wins, then fewest sheets")

	tied := []ComparisonResult{
		{SheetsUsed: 2, UnplacedCount: 0, WastePercent: 30},
		{SheetsUsed: 2, UnplacedCount: 0, WastePercent: 20},
	}
	assert.Equal(t, 1, BestScenario(tied), "least waste breaks full ties")

	assert.Equal(t, -1, BestScenario(nil))
}

func TestCompareScenariosEndToEnd(t *testing.T) {
	scenarios := []ComparisonScenario{
		{Name: "one per sheet", Placer: soloPlacer{}},
		{Name: "shelf", Placer: shelfPlacer{}},
	}
	results, err := CompareScenarios(scenarios, []model.Rect{{Width: 2, Height: 2}, {Width: 2, Height: 2}, {Width: 2, Height: 2}}, 10, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, BestScenario(results), "the shelf run uses fewer sheets")
}
