package model

import (
	"sort"

	"github.com/google/uuid"
)

// Remnant is a usable rectangular area left free on a packed sheet.
// Remnants are sheet-local leftovers; Result.Unplaced holds the pool-level
// leftovers that never fit any sheet.
type Remnant struct {
	ID         string `json:"id"`
	SheetIndex int    `json:"sheet_index"` // index of the source sheet in the result
	X          int    `json:"x"`
	Y          int    `json:"y"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
}

// Area returns the area of the remnant.
func (r Remnant) Area() int {
	return r.Width * r.Height
}

// Size converts the remnant into a rectangle, e.g. as input for a later run.
func (r Remnant) Size() Rect {
	return Rect{Width: r.Width, Height: r.Height}
}

// MinRemnantDimension is the minimum width or height for a free area to be
// considered usable. Smaller strips are treated as waste.
const MinRemnantDimension = 2

// MinRemnantArea is the minimum area for a free area to be considered usable.
const MinRemnantArea = 4

// DetectRemnants identifies the usable free strips on one packed sheet: the
// full-height strip right of all placements and the strip below them, up to
// the placed bounding box so the two never overlap.
func DetectRemnants(sheet Sheet, sheetIndex int) []Remnant {
	if sheet.Packing.Count() == 0 {
		// Entire sheet is free.
		return []Remnant{{
			ID:         uuid.New().String()[:8],
			SheetIndex: sheetIndex,
			Width:      sheet.Width,
			Height:     sheet.Height,
		}}
	}

	var maxRight, maxBottom int
	for i, s := range sheet.Packing.Sizes {
		p := sheet.Packing.Positions[i]
		if right := p.X + s.Width; right > maxRight {
			maxRight = right
		}
		if bottom := p.Y + s.Height; bottom > maxBottom {
			maxBottom = bottom
		}
	}

	var remnants []Remnant

	rightW := sheet.Width - maxRight
	if rightW >= MinRemnantDimension && sheet.Height >= MinRemnantDimension && rightW*sheet.Height >= MinRemnantArea {
		remnants = append(remnants, Remnant{
			ID:         uuid.New().String()[:8],
			SheetIndex: sheetIndex,
			X:          maxRight,
			Y:          0,
			Width:      rightW,
			Height:     sheet.Height,
		})
	}

	bottomH := sheet.Height - maxBottom
	bottomW := min(maxRight, sheet.Width)
	if bottomH >= MinRemnantDimension && bottomW >= MinRemnantDimension && bottomH*bottomW >= MinRemnantArea {
		remnants = append(remnants, Remnant{
			ID:         uuid.New().String()[:8],
			SheetIndex: sheetIndex,
			X:          0,
			Y:          maxBottom,
			Width:      bottomW,
			Height:     bottomH,
		})
	}

	sort.Slice(remnants, func(i, j int) bool {
		return remnants[i].Area() > remnants[j].Area()
	})
	return remnants
}

// DetectAllRemnants finds remnants across every sheet of a result.
func DetectAllRemnants(result Result) []Remnant {
	var all []Remnant
	for i, sheet := range result.Sheets {
		all = append(all, DetectRemnants(sheet, i)...)
	}
	return all
}

// TotalRemnantArea returns the summed area of the given remnants.
func TotalRemnantArea(remnants []Remnant) int {
	total := 0
	for _, r := range remnants {
		total += r.Area()
	}
	return total
}
