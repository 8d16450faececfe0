package engine

import (
	"github.com/nhansendev/RectanglePack/internal/model"
)

// ComparisonScenario is a named placement backend to evaluate against the
// same input.
type ComparisonScenario struct {
	Name   string
	Placer Placer
}

// ComparisonResult holds the allocation result and computed statistics for
// a single scenario.
type ComparisonResult struct {
	Scenario      ComparisonScenario
	Result        model.Result
	SheetsUsed    int
	PlacedCount   int
	WastePercent  float64
	UnplacedCount int
}

// CompareScenarios runs a full multi-sheet allocation per scenario and
// returns the results in scenario order, enabling side-by-side comparison
// of placement backends on one cutlist. The first error aborts the run.
func CompareScenarios(scenarios []ComparisonScenario, rects []model.Rect, width, height int) ([]ComparisonResult, error) {
	results := make([]ComparisonResult, 0, len(scenarios))

	for _, scenario := range scenarios {
		searcher := New(scenario.Placer)
		result, err := searcher.PackSheets(rects, width, height)
		if err != nil {
			return nil, err
		}

		results = append(results, ComparisonResult{
			Scenario:      scenario,
			Result:        result,
			SheetsUsed:    result.SheetCount(),
			PlacedCount:   result.PlacedCount(),
			WastePercent:  100.0 - result.TotalCoverage()*100.0,
			UnplacedCount: len(result.Unplaced),
		})
	}

	return results, nil
}

// BestScenario returns the index of the most effective comparison result:
// fewest unplaced items first, then fewest sheets, then least waste. Returns
// -1 for an empty list.
func BestScenario(results []ComparisonResult) int {
	best := -1
	for i, r := range results {
		if best < 0 {
			best = i
			continue
		}
		b := results[best]
		switch {
		case r.UnplacedCount != b.UnplacedCount:
			if r.UnplacedCount < b.UnplacedCount {
				best = i
			}
		case r.SheetsUsed != b.SheetsUsed:
			if r.SheetsUsed < b.SheetsUsed {
				best = i
			}
		case r.WastePercent < b.WastePercent:
			best = i
		}
	}
	return best
}
