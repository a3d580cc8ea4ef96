package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"pirots2ascii/config"
)

// Colors is the browser palette.
type Colors struct {
	Border    tcell.Color // list and preview borders
	Title     tcell.Color
	Label     tcell.Color // list entries and panel text
	Hint      tcell.Color
	Selected  tcell.Color // selected list entry background
	Window    tcell.Color // window state marker
	Path      tcell.Color // path state marker
	Highlight tcell.Color
}

// DefaultColors is the palette built from config.DefaultColors.
var DefaultColors = NewColors(config.DefaultColors)

// NewColors maps configured palette indices to tcell colors.
func NewColors(c config.BrowserColors) Colors {
	return Colors{
		Border:    tcell.PaletteColor(c.Border),
		Title:     tcell.PaletteColor(c.Title),
		Label:     tcell.PaletteColor(c.Label),
		Hint:      tcell.PaletteColor(c.Hint),
		Selected:  tcell.PaletteColor(c.Selected),
		Window:    tcell.PaletteColor(c.Window),
		Path:      tcell.PaletteColor(c.Path),
		Highlight: tcell.PaletteColor(c.Highlight),
	}
}

// colorTag returns a tview color tag for c.
func colorTag(c tcell.Color) string {
	return fmt.Sprintf("[#%06x]", c.Hex())
}

// kindColor is the marker color for a state kind.
func (c Colors) kindColor(kind string) tcell.Color {
	if kind == "path" {
		return c.Path
	}
	return c.Window
}
