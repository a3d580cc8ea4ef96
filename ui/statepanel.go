package ui

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"

	"pirots2ascii/types"
)

// StatePanel displays the attributes of the selected game state.
type StatePanel struct {
	box    *tview.TextView
	colors Colors
	state  types.GameState
}

// NewStatePanel creates a new state panel.
func NewStatePanel(colors Colors) *StatePanel {
	panel := &StatePanel{
		box:    tview.NewTextView(),
		colors: colors,
	}

	panel.box.SetDynamicColors(true)
	panel.box.SetBorder(false)
	panel.box.SetTextAlign(tview.AlignLeft)
	panel.box.SetWrap(true)

	return panel
}

// Box returns the underlying tview component.
func (p *StatePanel) Box() *tview.TextView {
	return p.box
}

// SetState updates the panel with s.
func (p *StatePanel) SetState(s types.GameState) {
	p.state = s
	p.box.SetText(stateDetails(s, p.colors))
}

const panelRule = "[dimgray]──────────────────────[-:-:-]\n"

// stateDetails formats the panel text for s.
func stateDetails(s types.GameState, colors Colors) string {
	if s == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("[white::b]State[-:-:-]\n")
	b.WriteString(panelRule)
	fmt.Fprintf(&b, "[white]Seq:[-:-:-] %d\n", s.Seq())
	fmt.Fprintf(&b, "[white]Type:[-:-:-] %s%s[-]\n", colorTag(colors.kindColor(s.Kind())), strings.ToUpper(s.Kind()))

	switch st := s.(type) {
	case *types.BoardState:
		fmt.Fprintf(&b, "[white]Action:[-:-:-] %s\n", tview.Escape(st.ActionName))
		fmt.Fprintf(&b, "[white]Size:[-:-:-] %dx%d\n", st.Board.Rows(), st.Board.Cols())
		if st.Mask != "" {
			fmt.Fprintf(&b, "[white]Mask:[-:-:-] %s\n", tview.Escape(st.Mask))
		}
		if st.Highlights.Len() > 0 {
			b.WriteString("\n[white::b]Highlights[-:-:-]\n")
			b.WriteString(panelRule)
			for _, pos := range st.Highlights.Positions() {
				fmt.Fprintf(&b, "%s%s[-]\n", colorTag(colors.Highlight), pos)
			}
		}
	case *types.PathState:
		step := st.Step
		fmt.Fprintf(&b, "[white]Action:[-:-:-] %s\n", tview.Escape(st.ActionName))
		b.WriteString("\n[white::b]Step[-:-:-]\n")
		b.WriteString(panelRule)
		fmt.Fprintf(&b, "[white]Symbol:[-:-:-] %s\n", tview.Escape(orDefault(step.Symbol, "N/A")))
		fmt.Fprintf(&b, "[white]Pos:[-:-:-] %s\n", tview.Escape(orDefault(step.Position, "N/A")))
		fmt.Fprintf(&b, "[white]Prev:[-:-:-] %s\n", tview.Escape(orDefault(step.PrevPos, "N/A")))
		fmt.Fprintf(&b, "[white]Win:[-:-:-] %s\n", tview.Escape(orDefault(step.Win, "0")))
		if step.FirstStep != "" {
			b.WriteString("[dimgray]first step[-]\n")
		}
		if step.LastStep != "" {
			b.WriteString("[dimgray]last step[-]\n")
		}
		if step.AngryBirds != "" {
			fmt.Fprintf(&b, "[white]Angry birds:[-:-:-] %s\n", tview.Escape(step.AngryBirds))
		}
	}
	return b.String()
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
