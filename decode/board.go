package decode

import (
	"strings"

	"pirots2ascii/types"
)

const (
	rowSep   = "|"
	cellSep  = ";"
	fieldSep = ","

	symbolField = 2
)

// Board decodes a window string like "0,0,a;0,1,-|1,0,B;1,1,3".
// Rows are separated by '|', cells by ';' and cell fields by ','.
// Cells with fewer than three fields decode to a blank.
func (d *Decoder) Board(encoded string) types.Board {
	if encoded == "" {
		return types.Board{}
	}

	rows := strings.Split(encoded, rowSep)
	board := make(types.Board, 0, len(rows))
	for _, r := range rows {
		cells := strings.Split(r, cellSep)
		row := make([]string, 0, len(cells))
		for _, c := range cells {
			fields := strings.Split(c, fieldSep)
			if len(fields) <= symbolField {
				row = append(row, " ")
				continue
			}
			row = append(row, d.symbols.Lookup(fields[symbolField]))
		}
		board = append(board, row)
	}
	return board
}
