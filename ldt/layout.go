package ldt

import (
	"fmt"
	"math"
)

// Symmetry is the EULUMDAT symmetry code (line 3).
type Symmetry int

const (
	SymmetryNone      Symmetry = iota + 1 // no symmetry, all C-planes stored
	SymmetryVertical                      // symmetric about the vertical axis
	SymmetryC0C180                        // symmetric to the C0-C180 plane
	SymmetryC90C270                       // symmetric to the C90-C270 plane
	SymmetryQuadrants                     // symmetric to both planes
)

// ColumnBounds returns the 1-based first and last C-plane index of the stored
// intensity table for a symmetry code and Mc C-plane angles.
func ColumnBounds(sym Symmetry, mc int) (mc1, mc2 int, err error) {
	switch sym {
	case SymmetryNone:
		return 1, mc, nil
	case SymmetryVertical:
		return 1, 1, nil
	case SymmetryC0C180:
		return 1, mc/2 + 1, nil
	case SymmetryC90C270:
		// 3*mc/4+1 and 5*mc/4+1 without overflowing for large mc
		return mc - ceilQuarter(mc) + 1, mc + mc/4 + 1, nil
	case SymmetryQuadrants:
		return 1, mc/4 + 1, nil
	default:
		return 0, 0, fmt.Errorf("unknown symmetry code %d", int(sym))
	}
}

// IntensityCount returns the length of the flattened intensity table,
// capped at math.MaxInt.
func IntensityCount(sym Symmetry, mc, ng int) (int, error) {
	mc1, mc2, err := ColumnBounds(sym, mc)
	if err != nil {
		return 0, err
	}

	return satMul(mc2-mc1+1, ng), nil
}

func ceilQuarter(n int) int {
	if n%4 == 0 {
		return n / 4
	}

	return n/4 + 1
}

// satAdd and satMul operate on non-negative counts and clamp at math.MaxInt.
func satAdd(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}

	return a + b
}

func satMul(a, b int) int {
	if a != 0 && b > math.MaxInt/a {
		return math.MaxInt
	}

	return a * b
}

// cursor walks the input lines. Taking past the end yields a short (possibly
// empty) block but still advances the position.
type cursor struct {
	lines []string
	pos   int
}

func (c cursor) take(n int) ([]string, cursor) {
	start := min(c.pos, len(c.lines))
	end := min(c.pos+n, len(c.lines))

	return c.lines[start:end], cursor{lines: c.lines, pos: c.pos + n}
}
