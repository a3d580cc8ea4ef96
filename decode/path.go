package decode

import (
	"strconv"
	"strings"

	"pirots2ascii/types"
)

// Coord is an unclassified (x, y) pair.
type Coord struct {
	X int
	Y int
}

// Point parses a single "x,y" pair. Components that are missing or not
// integers become types.NaN.
func Point(pair string) Coord {
	fields := strings.Split(pair, fieldSep)
	c := Coord{X: types.NaN, Y: types.NaN}
	if len(fields) > 0 {
		c.X = parseComponent(fields[0])
	}
	if len(fields) > 1 {
		c.Y = parseComponent(fields[1])
	}
	return c
}

// PathList parses a semicolon-separated list of "x,y" pairs in listed order.
func PathList(coords string) []Coord {
	if coords == "" {
		return nil
	}
	pairs := strings.Split(coords, cellSep)
	out := make([]Coord, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, Point(p))
	}
	return out
}

// StepPoints assembles the points of one step: the previous position as
// Start, then every path point, then the position as End. Empty attributes
// contribute nothing.
func StepPoints(prevPos, path, pos string) []types.PathPoint {
	var points []types.PathPoint
	if prevPos != "" {
		c := Point(prevPos)
		points = append(points, types.PathPoint{X: c.X, Y: c.Y, Kind: types.Start})
	}
	for _, c := range PathList(path) {
		points = append(points, types.PathPoint{X: c.X, Y: c.Y, Kind: types.Path})
	}
	if pos != "" {
		c := Point(pos)
		points = append(points, types.PathPoint{X: c.X, Y: c.Y, Kind: types.End})
	}
	return points
}

func parseComponent(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return types.NaN
	}
	return n
}
