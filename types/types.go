// Package types contains shared data structures for pirots2ascii.
package types

import (
	"fmt"
	"math"
	"strconv"

	"github.com/zyedidia/generic/mapset"
)

// MaskSize is the side of the fixed positional space addressed by a mask.
const MaskSize = 8

// NaN marks a coordinate component that could not be parsed.
// It is negative, so every bounds check rejects it.
const NaN = math.MinInt

// Board is a decoded window, indexed as Board[row][col].
// Rows may differ in length; Cols uses row 0 as the authority.
type Board [][]string

// Rows returns the number of rows.
func (b Board) Rows() int {
	return len(b)
}

// Cols returns the length of the first row.
func (b Board) Cols() int {
	if len(b) == 0 {
		return 0
	}
	return len(b[0])
}

// At returns the symbol at (row, col), or a blank for cells missing from a jagged row.
func (b Board) At(row, col int) string {
	if row < 0 || row >= len(b) || col < 0 || col >= len(b[row]) {
		return " "
	}
	if b[row][col] == "" {
		return " "
	}
	return b[row][col]
}

// Blank returns true if the board holds nothing but placeholder glyphs.
func (b Board) Blank() bool {
	for _, row := range b {
		for _, cell := range row {
			if cell != "" && cell != " " && cell != "·" && cell != "-" {
				return false
			}
		}
	}
	return true
}

// Position is a (row, col) cell in raw, unrotated board space.
type Position struct {
	Row int
	Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// HighlightSet is the set of positions marked by a mask.
// Positions keeps ascending bit order for listings.
type HighlightSet struct {
	positions []Position
	index     mapset.Set[Position]
}

// NewHighlightSet builds a set from positions, dropping duplicates.
func NewHighlightSet(positions ...Position) HighlightSet {
	h := HighlightSet{index: mapset.New[Position]()}
	for _, p := range positions {
		if h.index.Has(p) {
			continue
		}
		h.index.Put(p)
		h.positions = append(h.positions, p)
	}
	return h
}

// Len returns the number of highlighted positions.
func (h HighlightSet) Len() int {
	return len(h.positions)
}

// Has reports whether p is highlighted.
func (h HighlightSet) Has(p Position) bool {
	if h.index.Size() == 0 {
		return false
	}
	return h.index.Has(p)
}

// Positions returns a copy of the positions in bit order.
func (h HighlightSet) Positions() []Position {
	out := make([]Position, len(h.positions))
	copy(out, h.positions)
	return out
}

// PointKind classifies a point on a step path.
type PointKind int

const (
	Start PointKind = iota
	Path
	End
)

func (k PointKind) String() string {
	switch k {
	case Start:
		return "Start"
	case Path:
		return "Path"
	case End:
		return "End"
	}
	return "Unknown"
}

// PathPoint is a point in domain coordinates (bottom-left origin).
type PathPoint struct {
	X    int
	Y    int
	Kind PointKind
}

// String formats the point as "(x,y)", printing NaN for unparsable components.
func (p PathPoint) String() string {
	return fmt.Sprintf("(%s,%s)", FormatCoord(p.X), FormatCoord(p.Y))
}

// FormatCoord formats one coordinate component.
func FormatCoord(v int) string {
	if v == NaN {
		return "NaN"
	}
	return strconv.Itoa(v)
}
