package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/nhansendev/RectanglePack/internal/model"
)

func buildLabelsTestResult() model.Result {
	return model.Result{
		Sheets: []model.Sheet{
			{
				Width:  2440,
				Height: 1220,
				Packing: model.Packing{
					Sizes: []model.Rect{
						{Width: 600, Height: 400},
						{Width: 300, Height: 500},
					},
					Positions: []model.Point{
						{X: 0, Y: 0},
						{X: 600, Y: 0},
					},
					Density: 0.9,
				},
			},
			{
				Width:  1200,
				Height: 600,
				Packing: model.Packing{
					Sizes:     []model.Rect{{Width: 800, Height: 500}},
					Positions: []model.Point{{X: 0, Y: 0}},
					Density:   1.0,
				},
			},
		},
	}
}

func TestExportLabels_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "labels.pdf")

	err := ExportLabels(path, buildLabelsTestResult())
	if err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("PDF file is empty")
	}
	if info.Size() < 500 {
		t.Errorf("PDF file seems too small: %d bytes", info.Size())
	}
}

func TestExportLabels_EmptyResult(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.pdf")

	err := ExportLabels(path, model.Result{})
	if err == nil {
		t.Fatal("expected error for empty result, got nil")
	}
}

func TestExportLabels_NoPlacements(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "no_placements.pdf")

	result := model.Result{
		Sheets: []model.Sheet{{Width: 1000, Height: 500}},
	}
	err := ExportLabels(path, result)
	if err == nil {
		t.Fatal("expected error for result with no placed pieces, got nil")
	}
}

func TestCollectLabelInfos(t *testing.T) {
	labels := CollectLabelInfos(buildLabelsTestResult())

	if len(labels) != 3 {
		t.Fatalf("expected 3 labels, got %d", len(labels))
	}

	first := labels[0]
	if first.Sheet != 1 || first.Index != 0 {
		t.Errorf("expected sheet 1 piece 0, got sheet %d piece %d", first.Sheet, first.Index)
	}
	if first.Width != 600 || first.Height != 400 {
		t.Errorf("wrong dimensions: got %dx%d, want 600x400", first.Width, first.Height)
	}
	if first.Rotated {
		t.Error("expected landscape piece not to be marked rotated")
	}

	// The 300x500 piece stands on its short side
	if !labels[1].Rotated {
		t.Error("expected second label to be marked rotated")
	}
	if labels[1].X != 600 || labels[1].Y != 0 {
		t.Errorf("expected position (600, 0), got (%d, %d)", labels[1].X, labels[1].Y)
	}

	if labels[2].Sheet != 2 {
		t.Errorf("expected sheet 2 for third label, got %d", labels[2].Sheet)
	}
}

func TestLabelInfo_JSONRoundTrip(t *testing.T) {
	info := LabelInfo{
		Sheet:   1,
		Index:   4,
		Width:   300,
		Height:  200,
		X:       50,
		Y:       100,
		Rotated: true,
	}

	data, err := json.Marshal(info)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}

	var decoded LabelInfo
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if decoded != info {
		t.Errorf("round trip mismatch: got %+v, want %+v", decoded, info)
	}
}

func TestExportLabels_ManyPieces(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "many_labels.pdf")

	// 35 pieces forces a second label page
	var sizes []model.Rect
	var positions []model.Point
	for i := 0; i < 35; i++ {
		sizes = append(sizes, model.Rect{Width: 100 + i*10, Height: 50 + i*5})
		positions = append(positions, model.Point{X: i * 110, Y: 10})
	}

	result := model.Result{
		Sheets: []model.Sheet{
			{
				Width:  5000,
				Height: 3000,
				Packing: model.Packing{
					Sizes:     sizes,
					Positions: positions,
					Density:   0.6,
				},
			},
		},
	}

	err := ExportLabels(path, result)
	if err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("PDF file is empty")
	}
}
