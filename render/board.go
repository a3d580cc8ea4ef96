package render

import (
	"strings"

	"pirots2ascii/types"
)

// Board renders a board with the default theme.
func Board(board types.Board, title string, highlights types.HighlightSet, mode Mode) string {
	return DefaultTheme.Board(board, title, highlights, mode)
}

// Board renders a decoded window rotated 90° clockwise: left is shown as
// down, right as up, up as right and down as left. Each output line walks
// one source column, last column first.
//
// A highlight at mask position P marks source cell (7-P.Row, P.Col).
func (t Theme) Board(board types.Board, title string, highlights types.HighlightSet, mode Mode) string {
	if board.Rows() == 0 {
		return ""
	}

	var b strings.Builder
	if title != "" {
		b.WriteString("\n=== " + escape(title, mode) + " ===\n")
	}

	rows, cols := board.Rows(), board.Cols()
	border := "+" + strings.Repeat("-", rows*2+1) + "+\n"
	b.WriteString(border)

	for col := cols - 1; col >= 0; col-- {
		b.WriteString("| ")
		for row := 0; row < rows; row++ {
			symbol := board.At(row, col)
			pos := types.Position{Row: types.MaskSize - 1 - row, Col: col}
			if highlights.Has(pos) {
				b.WriteString(t.emphasise(symbol, mode))
			} else {
				b.WriteString(escape(symbol, mode))
			}
			b.WriteString(" ")
		}
		b.WriteString("|\n")
	}

	b.WriteString(border)
	return b.String()
}
