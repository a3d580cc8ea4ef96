// Package render draws decoded boards and step paths as bordered text grids.
package render

import (
	"fmt"
	"html"

	"github.com/gookit/color"
)

// Mode selects how highlighted cells are emphasised.
type Mode int

const (
	// Plain wraps highlighted cells in terminal color escapes.
	Plain Mode = iota
	// Markup wraps highlighted cells in an HTML span.
	Markup
)

const markupHighlight = `<span style="background-color: yellow; color: black; font-weight: bold;">%s</span>`

// Theme holds the styling used by the board renderer.
type Theme struct {
	Highlight color.Style
}

// DefaultTheme highlights with a yellow background.
var DefaultTheme = Theme{
	Highlight: color.Style{color.BgYellow},
}

// ThemeWithBackground returns a theme highlighting with the given ANSI background code.
func ThemeWithBackground(code int) Theme {
	return Theme{Highlight: color.Style{color.Color(code)}}
}

// emphasise wraps a symbol for a highlighted cell.
// Plain mode always emits the escape; StripColor removes it.
func (t Theme) emphasise(symbol string, mode Mode) string {
	if mode == Markup {
		return fmt.Sprintf(markupHighlight, html.EscapeString(symbol))
	}
	return fmt.Sprintf(color.FullColorTpl, t.Highlight.Code(), symbol)
}

// escape prepares free text for the given mode.
func escape(s string, mode Mode) string {
	if mode == Markup {
		return html.EscapeString(s)
	}
	return s
}

// StripColor removes terminal escapes from plain output.
func StripColor(s string) string {
	return color.ClearCode(s)
}
