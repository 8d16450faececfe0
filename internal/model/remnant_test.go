package model

import (
	"testing"
)

func TestDetectRemnantsEmptySheet(t *testing.T) {
	sheet := Sheet{Width: 100, Height: 50}
	remnants := DetectRemnants(sheet, 0)
	if len(remnants) != 1 {
		t.Fatalf("expected 1 remnant for empty sheet, got %d", len(remnants))
	}
	if remnants[0].Width != 100 || remnants[0].Height != 50 {
		t.Errorf("expected full sheet as remnant, got %dx%d", remnants[0].Width, remnants[0].Height)
	}
	if len(remnants[0].ID) != 8 {
		t.Errorf("remnant should have an 8-char ID, got %q", remnants[0].ID)
	}
}

func TestDetectRemnantsRightStrip(t *testing.T) {
	sheet := Sheet{
		Width:  100,
		Height: 50,
		Packing: Packing{
			Sizes:     []Rect{{40, 50}},
			Positions: []Point{{0, 0}},
		},
	}
	remnants := DetectRemnants(sheet, 0)
	foundRight := false
	for _, r := range remnants {
		if r.X == 40 && r.Width == 60 && r.Height == 50 {
			foundRight = true
		}
	}
	if !foundRight {
		t.Errorf("expected right strip at x=40 width 60, got %+v", remnants)
	}
}

func TestDetectRemnantsBottomStrip(t *testing.T) {
	sheet := Sheet{
		Width:  100,
		Height: 50,
		Packing: Packing{
			Sizes:     []Rect{{100, 30}},
			Positions: []Point{{0, 0}},
		},
	}
	remnants := DetectRemnants(sheet, 0)
	foundBottom := false
	for _, r := range remnants {
		if r.Y == 30 && r.Height == 20 && r.Width == 100 {
			foundBottom = true
		}
	}
	if !foundBottom {
		t.Errorf("expected bottom strip at y=30 height 20, got %+v", remnants)
	}
}

func TestDetectRemnantsSmallStripIgnored(t *testing.T) {
	sheet := Sheet{
		Width:  100,
		Height: 50,
		Packing: Packing{
			Sizes:     []Rect{{99, 49}},
			Positions: []Point{{0, 0}},
		},
	}
	remnants := DetectRemnants(sheet, 0)
	if len(remnants) != 0 {
		t.Errorf("1-wide strips should be ignored, got %+v", remnants)
	}
}

func TestDetectRemnantsSortedByArea(t *testing.T) {
	sheet := Sheet{
		Width:  100,
		Height: 50,
		Packing: Packing{
			Sizes:     []Rect{{60, 40}},
			Positions: []Point{{0, 0}},
		},
	}
	remnants := DetectRemnants(sheet, 3)
	if len(remnants) != 2 {
		t.Fatalf("expected right and bottom strips, got %d", len(remnants))
	}
	if remnants[0].Area() < remnants[1].Area() {
		t.Errorf("remnants should be sorted by area descending: %d then %d",
			remnants[0].Area(), remnants[1].Area())
	}
	for _, r := range remnants {
		if r.SheetIndex != 3 {
			t.Errorf("remnant should carry its sheet index, got %d", r.SheetIndex)
		}
	}
}

func TestDetectAllRemnants(t *testing.T) {
	result := Result{
		Sheets: []Sheet{
			{Width: 100, Height: 50, Packing: Packing{
				Sizes:     []Rect{{40, 50}},
				Positions: []Point{{0, 0}},
			}},
			{Width: 100, Height: 50},
		},
	}
	all := DetectAllRemnants(result)
	if len(all) != 2 {
		t.Fatalf("expected 2 remnants across sheets, got %d", len(all))
	}
	if all[0].SheetIndex != 0 || all[1].SheetIndex != 1 {
		t.Errorf("remnants should keep sheet order, got indices %d and %d",
			all[0].SheetIndex, all[1].SheetIndex)
	}
	if got := TotalRemnantArea(all); got != 60*50+100*50 {
		t.Errorf("TotalRemnantArea = %d, want %d", got, 60*50+100*50)
	}
}

func TestRemnantSize(t *testing.T) {
	r := Remnant{Width: 60, Height: 50}
	if got := r.Size(); got != (Rect{60, 50}) {
		t.Errorf("Size() = %v, want 60x50", got)
	}
	if got := r.Area(); got != 3000 {
		t.Errorf("Area() = %d, want 3000", got)
	}
}
