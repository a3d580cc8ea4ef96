package ui

import (
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"pirots2ascii/config"
	"pirots2ascii/render"
	"pirots2ascii/types"
)

// ColorConfigUI lets the user pick the highlight background with a live preview.
type ColorConfigUI struct {
	flex      *tview.Flex
	colorList *tview.List
	preview   *tview.TextView
	cfg       *config.Config
	selected  int
	onDone    func(render.Theme)
}

// Highlight backgrounds to choose from (ANSI background codes)
var highlightColors = []struct {
	code int
	name string
}{
	{43, "Yellow"},
	{103, "Bright Yellow"},
	{41, "Red"},
	{101, "Bright Red"},
	{42, "Green"},
	{102, "Bright Green"},
	{44, "Blue"},
	{104, "Bright Blue"},
	{45, "Magenta"},
	{105, "Bright Magenta"},
	{46, "Cyan"},
	{106, "Bright Cyan"},
	{47, "White"},
	{107, "Bright White"},
	{40, "Black"},
	{100, "Gray"},
}

// previewBoard is the sample window shown in the preview.
var (
	previewBoard = types.Board{
		{"a", "b", "c", "d"},
		{"E", "w", "F", "a"},
		{"b", "M", "c", "X"},
		{"d", "a", "E", "b"},
	}
	previewHighlights = types.NewHighlightSet(
		types.Position{Row: 7, Col: 1},
		types.Position{Row: 6, Col: 2},
		types.Position{Row: 5, Col: 3},
	)
)

// NewColorConfig creates the highlight color screen. onDone receives the
// theme for the chosen color.
func NewColorConfig(cfg *config.Config, colors Colors, onDone func(render.Theme)) *ColorConfigUI {
	cc := &ColorConfigUI{
		cfg:      cfg,
		selected: cfg.Render.HighlightColor,
		onDone:   onDone,
	}

	cc.colorList = tview.NewList()
	cc.colorList.SetBorder(true)
	cc.colorList.SetBorderColor(colors.Border)
	cc.colorList.SetTitle(" Highlight Color ")
	cc.colorList.ShowSecondaryText(false)
	cc.populateColorList()

	cc.colorList.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		if index >= 0 && index < len(highlightColors) {
			cc.selected = highlightColors[index].code
			cc.updatePreview()
		}
	})

	cc.colorList.SetSelectedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		if index < 0 || index >= len(highlightColors) {
			return
		}
		cc.Apply(highlightColors[index].code)
	})

	cc.preview = tview.NewTextView()
	cc.preview.SetDynamicColors(true)
	cc.preview.SetBorder(true)
	cc.preview.SetBorderColor(colors.Border)
	cc.preview.SetTitle(" Preview ")

	// Layout: list on left, preview on right
	cc.flex = tview.NewFlex().
		AddItem(cc.colorList, 30, 0, true).
		AddItem(cc.preview, 0, 1, false)

	cc.updatePreview()
	return cc
}

// populateColorList fills the list and selects the configured color.
func (cc *ColorConfigUI) populateColorList() {
	cc.colorList.Clear()
	for i, c := range highlightColors {
		cc.colorList.AddItem(fmt.Sprintf("%s████[-] %s (%d)", colorTag(ansiBackground(c.code)), c.name, c.code),
			"", rune('a'+i), nil)
	}
	for i, c := range highlightColors {
		if c.code == cc.selected {
			cc.colorList.SetCurrentItem(i)
			break
		}
	}
}

func (cc *ColorConfigUI) updatePreview() {
	theme := render.ThemeWithBackground(cc.selected)
	cc.preview.SetText(tview.TranslateANSI(theme.Board(previewBoard, "", previewHighlights, render.Plain)) +
		fmt.Sprintf("\n[dimgray]code %d[-]", cc.selected))
}

// Apply stores code as the highlight color, saves the config and hands
// the new theme to onDone.
func (cc *ColorConfigUI) Apply(code int) {
	cc.selected = code
	cc.cfg.Render.HighlightColor = code
	if err := cc.cfg.Save(); err != nil {
		log.Printf("save config: %v", err)
	}
	if cc.onDone != nil {
		cc.onDone(render.ThemeWithBackground(code))
	}
}

// Flex returns the flex container for this UI.
func (cc *ColorConfigUI) Flex() *tview.Flex {
	return cc.flex
}

// SetInputCapture sets the input capture for the color list.
func (cc *ColorConfigUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	cc.colorList.SetInputCapture(capture)
}

// ansiBackground maps an ANSI background code to the matching palette color.
func ansiBackground(code int) tcell.Color {
	switch {
	case code >= 40 && code <= 47:
		return tcell.PaletteColor(code - 40)
	case code >= 100 && code <= 107:
		return tcell.PaletteColor(code - 100 + 8)
	}
	return tcell.ColorDefault
}
