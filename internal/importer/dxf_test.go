package importer

import (
	"math"
	"testing"
)

// square returns the four segments of an axis-aligned square with the given
// corner and side length.
func square(x, y, side float64) []segment {
	a := point{x, y}
	b := point{x + side, y}
	c := point{x + side, y + side}
	d := point{x, y + side}
	return []segment{
		{start: a, end: b},
		{start: b, end: c},
		{start: c, end: d},
		{start: d, end: a},
	}
}

func TestChainSegments_ClosedSquare(t *testing.T) {
	closed, open := chainSegments(square(0, 0, 10), 0.01)

	if len(closed) != 1 {
		t.Fatalf("expected 1 closed contour, got %d", len(closed))
	}
	if len(open) != 0 {
		t.Errorf("expected no open contours, got %d", len(open))
	}
	if len(closed[0]) != 4 {
		t.Errorf("expected 4 corner points, got %d", len(closed[0]))
	}

	w, h := contourExtent(closed[0])
	if w != 10 || h != 10 {
		t.Errorf("expected extent 10x10, got %gx%g", w, h)
	}
}

func TestChainSegments_OpenChain(t *testing.T) {
	segs := []segment{
		{start: point{0, 0}, end: point{10, 0}},
		{start: point{10, 0}, end: point{10, 5}},
	}
	closed, open := chainSegments(segs, 0.01)

	if len(closed) != 0 {
		t.Errorf("expected no closed contours, got %d", len(closed))
	}
	if len(open) != 1 {
		t.Fatalf("expected 1 open contour, got %d", len(open))
	}
	if len(open[0]) != 3 {
		t.Errorf("expected 3 points in the open chain, got %d", len(open[0]))
	}
}

func TestChainSegments_ReversedSegment(t *testing.T) {
	// The middle segment runs backwards; chaining must still connect it.
	segs := []segment{
		{start: point{0, 0}, end: point{10, 0}},
		{start: point{10, 10}, end: point{10, 0}},
		{start: point{10, 10}, end: point{0, 10}},
		{start: point{0, 10}, end: point{0, 0}},
	}
	closed, open := chainSegments(segs, 0.01)

	if len(closed) != 1 {
		t.Fatalf("expected 1 closed contour, got %d (open: %d)", len(closed), len(open))
	}
}

func TestChainSegments_ToleranceJoins(t *testing.T) {
	// Endpoints 0.005 apart must be treated as connected at tolerance 0.01.
	segs := []segment{
		{start: point{0, 0}, end: point{10, 0}},
		{start: point{10.005, 0}, end: point{10, 10}},
		{start: point{10, 10}, end: point{0, 10}},
		{start: point{0, 10}, end: point{0, 0.005}},
	}
	closed, _ := chainSegments(segs, 0.01)

	if len(closed) != 1 {
		t.Fatalf("expected tolerant joining to close the loop, got %d closed", len(closed))
	}
}

func TestChainSegments_MultipleLoops(t *testing.T) {
	segs := append(square(0, 0, 10), square(100, 100, 5)...)
	closed, open := chainSegments(segs, 0.01)

	if len(closed) != 2 {
		t.Fatalf("expected 2 closed contours, got %d", len(closed))
	}
	if len(open) != 0 {
		t.Errorf("expected no open contours, got %d", len(open))
	}
}

func TestChainSegments_Empty(t *testing.T) {
	closed, open := chainSegments(nil, 0.01)
	if closed != nil || open != nil {
		t.Errorf("expected nil results for no segments, got %v / %v", closed, open)
	}
}

func TestContourExtent(t *testing.T) {
	c := contour{{5, 5}, {8, 5}, {8, 7}, {5, 7}}
	w, h := contourExtent(c)
	if w != 3 || h != 2 {
		t.Errorf("expected extent 3x2, got %gx%g", w, h)
	}
}

func TestContourArea(t *testing.T) {
	unit := contour{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	if got := contourArea(unit); got != 1 {
		t.Errorf("unit square area: expected 1, got %g", got)
	}

	// Clockwise winding must give the same absolute area
	cw := contour{{0, 0}, {0, 1}, {1, 1}, {1, 0}}
	if got := contourArea(cw); got != 1 {
		t.Errorf("clockwise square area: expected 1, got %g", got)
	}

	tri := contour{{0, 0}, {4, 0}, {0, 3}}
	if got := contourArea(tri); got != 6 {
		t.Errorf("triangle area: expected 6, got %g", got)
	}

	if got := contourArea(contour{{0, 0}, {1, 1}}); got != 0 {
		t.Errorf("degenerate contour area: expected 0, got %g", got)
	}
}

func TestRoundUp(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{400, 400},
		{400.2, 401},
		{399.99999999999, 400}, // float noise below a unit boundary
		{0.5, 1},
	}
	for _, tt := range tests {
		if got := roundUp(tt.in); got != tt.want {
			t.Errorf("roundUp(%v): expected %d, got %d", tt.in, tt.want, got)
		}
	}
}

func TestBulgeArcPoints_Semicircle(t *testing.T) {
	// Bulge 1 is a half circle: chord 10 wide, arc reaching 5 units off it.
	pts := bulgeArcPoints(point{0, 0}, point{10, 0}, 1, 32)

	if len(pts) != 33 {
		t.Fatalf("expected 33 points, got %d", len(pts))
	}
	if !pointsClose(pts[0], point{0, 0}, 1e-9) {
		t.Errorf("arc must start at the first endpoint, got %+v", pts[0])
	}
	if !pointsClose(pts[len(pts)-1], point{10, 0}, 1e-9) {
		t.Errorf("arc must end at the second endpoint, got %+v", pts[len(pts)-1])
	}

	w, h := contourExtent(pts)
	if math.Abs(w-10) > 1e-9 {
		t.Errorf("expected arc width 10, got %g", w)
	}
	if math.Abs(h-5) > 1e-9 {
		t.Errorf("expected arc height 5, got %g", h)
	}

	// Every point sits on the circle of radius 5 around the chord midpoint
	for i, p := range pts {
		dx, dy := p.x-5, p.y
		if r := math.Sqrt(dx*dx + dy*dy); math.Abs(r-5) > 1e-9 {
			t.Fatalf("point %d is off the arc: radius %g", i, r)
		}
	}
}

func TestPointsToSegments(t *testing.T) {
	pts := []point{{0, 0}, {1, 0}, {1, 1}}
	segs := pointsToSegments(pts)
	if len(segs) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segs))
	}
	if segs[0].start != (point{0, 0}) || segs[0].end != (point{1, 0}) {
		t.Errorf("unexpected first segment: %+v", segs[0])
	}
	if segs[1].start != (point{1, 0}) || segs[1].end != (point{1, 1}) {
		t.Errorf("unexpected second segment: %+v", segs[1])
	}
}

func TestImportDXF_FileNotFound(t *testing.T) {
	result := ImportDXF("/nonexistent/drawing.dxf")

	if len(result.Errors) == 0 {
		t.Error("expected error for nonexistent file")
	}
}
