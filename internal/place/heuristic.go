// Package place provides placement backends for the packing search, built
// on the rectpack library's MaxRects, Guillotine and Skyline algorithms.
package place

import (
	"fmt"
	"strings"

	"github.com/ForeverZer0/rectpack"
)

// Heuristic selects the placement algorithm and fit rule a Packer uses.
type Heuristic int

const (
	// MaxRectsBSSF places each rectangle where the leftover short side is
	// smallest. The best general-purpose choice and the default.
	MaxRectsBSSF Heuristic = iota
	// MaxRectsBAF prefers the free rectangle with the least leftover area.
	MaxRectsBAF
	// MaxRectsBL places as far towards the bottom-left as possible.
	MaxRectsBL
	// MaxRectsCP maximizes contact with already placed rectangles.
	MaxRectsCP
	// GuillotineBAF uses guillotine splits with best-area-fit selection.
	GuillotineBAF
	// SkylineBLF tracks a skyline and fills bottom-left first.
	SkylineBLF
	// SkylineMinWaste tracks a skyline and minimizes wasted area.
	SkylineMinWaste
)

var heuristicNames = [...]string{
	MaxRectsBSSF:    "maxrects-bssf",
	MaxRectsBAF:     "maxrects-baf",
	MaxRectsBL:      "maxrects-bl",
	MaxRectsCP:      "maxrects-cp",
	GuillotineBAF:   "guillotine-baf",
	SkylineBLF:      "skyline-blf",
	SkylineMinWaste: "skyline-minwaste",
}

var heuristicPresets = [...]rectpack.Heuristic{
	MaxRectsBSSF:    rectpack.MaxRectsBSSF,
	MaxRectsBAF:     rectpack.MaxRectsBAF,
	MaxRectsBL:      rectpack.MaxRectsBL,
	MaxRectsCP:      rectpack.MaxRectsCP,
	GuillotineBAF:   rectpack.GuillotineBAF,
	SkylineBLF:      rectpack.SkylineBLF,
	SkylineMinWaste: rectpack.SkylineMinWaste,
}

func (h Heuristic) String() string {
	if h < 0 || int(h) >= len(heuristicNames) {
		return "unknown"
	}
	return heuristicNames[h]
}

// preset maps onto the underlying library's heuristic bitmask. Out-of-range
// values fall back to the default so a zero or junk Heuristic never panics
// the backend.
func (h Heuristic) preset() rectpack.Heuristic {
	if h < 0 || int(h) >= len(heuristicPresets) {
		return rectpack.MaxRectsBSSF
	}
	return heuristicPresets[h]
}

// ParseHeuristic resolves a heuristic by its flag/config name.
func ParseHeuristic(name string) (Heuristic, error) {
	for i, n := range heuristicNames {
		if n == name {
			return Heuristic(i), nil
		}
	}
	return 0, fmt.Errorf("unknown placement heuristic %q (valid: %s)", name, strings.Join(Names(), ", "))
}

// All returns every selectable heuristic in display order.
func All() []Heuristic {
	out := make([]Heuristic, len(heuristicNames))
	for i := range out {
		out[i] = Heuristic(i)
	}
	return out
}

// Names returns the flag/config names of every heuristic.
func Names() []string {
	return append([]string(nil), heuristicNames[:]...)
}
