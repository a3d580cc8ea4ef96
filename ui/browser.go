// Package ui provides the tview screens for browsing replay states in the terminal.
package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"pirots2ascii/render"
	"pirots2ascii/replay"
	"pirots2ascii/types"
)

// ReplayBrowser lists the game states of one replay next to a preview.
type ReplayBrowser struct {
	flex      *tview.Flex
	stateList *tview.List
	preview   *tview.TextView
	panel     *StatePanel
	hint      *tview.TextView
	states    []types.GameState
	theme     render.Theme
	colors    Colors
	selected  int
	showRaw   bool
	onDone    func()
	onColors  func()
}

// NewReplayBrowser creates a browser for the states of r.
func NewReplayBrowser(r *replay.Replay, theme render.Theme, colors Colors, onDone func()) *ReplayBrowser {
	rb := &ReplayBrowser{
		theme:  theme,
		colors: colors,
		onDone: onDone,
	}

	// State list (left panel)
	rb.stateList = tview.NewList()
	rb.stateList.SetBorder(true)
	rb.stateList.SetBorderColor(colors.Border)
	rb.stateList.SetTitle(" " + tview.Escape(r.FileName) + " ")
	rb.stateList.SetTitleColor(colors.Title)
	rb.stateList.ShowSecondaryText(false)
	rb.stateList.SetHighlightFullLine(true)
	rb.stateList.SetMainTextStyle(tcell.StyleDefault.Foreground(colors.Label))
	rb.stateList.SetSelectedStyle(tcell.StyleDefault.
		Foreground(colors.Title).
		Background(colors.Selected))

	// Preview (middle)
	rb.preview = tview.NewTextView()
	rb.preview.SetDynamicColors(true)
	rb.preview.SetWrap(false)
	rb.preview.SetBorder(true)
	rb.preview.SetBorderColor(colors.Border)
	rb.preview.SetTitleColor(colors.Title)

	rb.panel = NewStatePanel(colors)

	// Hint bar
	rb.hint = tview.NewTextView()
	rb.hint.SetDynamicColors(true)
	rb.hint.SetBorder(false)
	rb.hint.SetTextColor(colors.Hint)
	rb.hint.SetText("  [dimgray]j/k[-] move  [dimgray]r[-] raw  [dimgray]c[-] colors  [dimgray]q[-] quit")

	rb.stateList.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		rb.show(index)
	})
	rb.stateList.SetInputCapture(rb.handleInput)

	// Layout: list left, preview center, panel right, hint bottom
	topRow := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(rb.stateList, 48, 0, true).
		AddItem(rb.preview, 0, 1, false).
		AddItem(rb.panel.Box(), 28, 0, false)

	rb.flex = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(topRow, 0, 1, true).
		AddItem(rb.hint, 1, 0, false)

	rb.load(r.States)
	return rb
}

// Flex returns the flex container for this UI.
func (rb *ReplayBrowser) Flex() *tview.Flex {
	return rb.flex
}

// load fills the list with the states' titles.
func (rb *ReplayBrowser) load(states []types.GameState) {
	rb.stateList.Clear()
	rb.states = states
	rb.selected = 0

	if len(states) == 0 {
		rb.stateList.AddItem("[dimgray]No game states found[-]", "", 0, nil)
		return
	}
	for _, s := range states {
		label := fmt.Sprintf("%s●[-] %s", colorTag(rb.colors.kindColor(s.Kind())), tview.Escape(s.Heading()))
		rb.stateList.AddItem(label, "", 0, nil)
	}
	rb.show(0)
}

// show selects the state at index and refreshes the preview.
func (rb *ReplayBrowser) show(index int) {
	if index < 0 || index >= len(rb.states) {
		return
	}
	rb.selected = index
	s := rb.states[index]
	rb.preview.SetTitle(" " + tview.Escape(s.Heading()) + " ")
	rb.preview.SetText(previewText(rb.theme, s, rb.showRaw))
	rb.preview.ScrollToBeginning()
	rb.panel.SetState(s)
}

// ToggleRaw switches the raw encoding under the preview on or off.
func (rb *ReplayBrowser) ToggleRaw() {
	rb.showRaw = !rb.showRaw
	rb.show(rb.selected)
}

// SetTheme swaps the highlight theme and redraws the preview.
func (rb *ReplayBrowser) SetTheme(theme render.Theme) {
	rb.theme = theme
	rb.show(rb.selected)
}

// SetColorsFunc sets the handler for the color configuration key.
func (rb *ReplayBrowser) SetColorsFunc(f func()) {
	rb.onColors = f
}

// handleInput processes keyboard input for the replay browser.
func (rb *ReplayBrowser) handleInput(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyEscape:
		if rb.onDone != nil {
			rb.onDone()
		}
		return nil
	case tcell.KeyRune:
		switch event.Rune() {
		case 'q':
			if rb.onDone != nil {
				rb.onDone()
			}
			return nil
		case 'r':
			rb.ToggleRaw()
			return nil
		case 'c':
			if rb.onColors != nil {
				rb.onColors()
			}
			return nil
		case 'j':
			return tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone)
		case 'k':
			return tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)
		}
	}
	return event
}

// previewText renders s as tview text. Board highlights come from the
// plain renderer's ANSI output.
func previewText(theme render.Theme, s types.GameState, showRaw bool) string {
	var text string
	switch st := s.(type) {
	case *types.BoardState:
		text = tview.TranslateANSI(theme.Board(st.Board, "", st.Highlights, render.Plain))
	case *types.PathState:
		text = tview.Escape(st.Rendering)
	}
	if showRaw {
		text += fmt.Sprintf("\n[dimgray]raw:[-] %s\n", tview.Escape(s.RawData()))
	}
	return text
}
