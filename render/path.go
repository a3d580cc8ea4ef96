package render

import (
	"fmt"
	"strings"

	"pirots2ascii/types"
)

// DefaultGrid is the side of the grid used for step paths.
const DefaultGrid = 8

const emptyCell = "·"

// Label returns the marker for the index-th path point: 1-9, then a, b, c...
func Label(index int) string {
	if index < 9 {
		return fmt.Sprintf("%d", index+1)
	}
	return string(rune('a' + index - 9))
}

// Path renders step points on a width x height grid. Points use domain
// coordinates with a bottom-left origin, so (x, y) lands on grid row
// height-1-y. Points off the grid, including unparsable ones, are skipped.
//
// Path points are labelled by their index among the step's path points,
// which keeps the grid and the summary lines in agreement.
func Path(points []types.PathPoint, title string, width, height int) string {
	if width <= 0 {
		width = DefaultGrid
	}
	if height <= 0 {
		height = DefaultGrid
	}
	grid := make([][]string, height)
	for i := range grid {
		grid[i] = make([]string, width)
		for j := range grid[i] {
			grid[i][j] = emptyCell
		}
	}

	pathIndex := 0
	for _, p := range points {
		var glyph string
		switch p.Kind {
		case types.Start:
			glyph = "S"
		case types.End:
			glyph = "E"
		default:
			glyph = Label(pathIndex)
			pathIndex++
		}
		if p.X < 0 || p.X >= width || p.Y < 0 || p.Y >= height {
			continue
		}
		grid[height-1-p.Y][p.X] = glyph
	}

	var b strings.Builder
	b.WriteString(title + "\n")
	border := "+" + strings.Repeat("-", width*2+1) + "+\n"
	b.WriteString(border)
	for _, row := range grid {
		b.WriteString("| " + strings.Join(row, " ") + " |\n")
	}
	b.WriteString(border)

	var starts, paths, ends []string
	for _, p := range points {
		switch p.Kind {
		case types.Start:
			starts = append(starts, p.String())
		case types.End:
			ends = append(ends, p.String())
		default:
			paths = append(paths, Label(len(paths))+":"+p.String())
		}
	}
	if len(starts) > 0 {
		b.WriteString("Start Point(S): " + strings.Join(starts, ", ") + "\n")
	}
	if len(paths) > 0 {
		b.WriteString("Path Points: " + strings.Join(paths, " → ") + "\n")
	}
	if len(ends) > 0 {
		b.WriteString("End Point(E): " + strings.Join(ends, ", ") + "\n")
	}
	return b.String()
}
