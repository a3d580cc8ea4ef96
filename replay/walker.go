package replay

import (
	"fmt"

	"pirots2ascii/decode"
	"pirots2ascii/render"
	"pirots2ascii/types"
)

const unknownAction = "Unknown"

// Walker turns a parsed payload into game states.
type Walker struct {
	decoder    *decode.Decoder
	gridWidth  int
	gridHeight int
}

// NewWalker creates a walker that decodes windows with d and renders step
// paths on a width x height grid.
func NewWalker(d *decode.Decoder, width, height int) *Walker {
	if d == nil {
		d = decode.NewDecoder(nil)
	}
	return &Walker{decoder: d, gridWidth: width, gridHeight: height}
}

// Walk uses a default walker.
func Walk(doc *Purchases) ([]types.GameState, error) {
	return NewWalker(nil, render.DefaultGrid, render.DefaultGrid).Walk(doc)
}

// Walk visits results, then actions, then steps in document order. Every
// emitted state takes the next number from one counter shared by boards
// and paths, starting at 1.
func (w *Walker) Walk(doc *Purchases) ([]types.GameState, error) {
	if doc == nil || doc.Purchase == nil {
		return nil, ErrNoPurchase
	}

	var states []types.GameState
	seq := 1
	for resultIndex, result := range doc.Purchase.Results {
		for _, action := range result.OrderedActions() {
			name := action.Name
			if name == "" {
				name = unknownAction
			}

			if action.Window != "" {
				states = append(states, w.boardState(seq, resultIndex, name, action))
				seq++
			}

			for stepIndex, step := range action.Steps {
				st := w.pathState(seq, resultIndex, stepIndex, name, action.Name, step)
				if st == nil {
					continue
				}
				states = append(states, st)
				seq++
			}
		}
	}
	return states, nil
}

func (w *Walker) boardState(seq, resultIndex int, name string, action Action) *types.BoardState {
	highlights := types.NewHighlightSet()
	maskInfo := ""
	if action.Mask != "" {
		highlights = decode.Mask(action.Mask)
		maskInfo = fmt.Sprintf(" (Mask: %s, %d positions)", action.Mask, highlights.Len())
	}
	return &types.BoardState{
		Sequence:   seq,
		Title:      fmt.Sprintf("%d. Result %d - Action: %s%s", seq, resultIndex, name, maskInfo),
		Board:      w.decoder.Board(action.Window),
		Highlights: highlights,
		Mask:       action.Mask,
		Raw:        action.Window,
		ActionName: action.Name,
	}
}

// pathState returns nil for a step without any position attributes.
func (w *Walker) pathState(seq, resultIndex, stepIndex int, name, actionName string, step Step) *types.PathState {
	points := decode.StepPoints(step.PrevPos, step.Path, step.Pos)
	if len(points) == 0 {
		return nil
	}
	inner := fmt.Sprintf("Action: %s - Step %d", name, stepIndex+1)
	return &types.PathState{
		Sequence:   seq,
		Title:      fmt.Sprintf("%d. Result %d - %s Path", seq, resultIndex, inner),
		Points:     points,
		Rendering:  render.Path(points, inner, w.gridWidth, w.gridHeight),
		Raw:        fmt.Sprintf("Path: %s, Position: %s, Previous: %s", orNA(step.Path), orNA(step.Pos), orNA(step.PrevPos)),
		ActionName: actionName,
		Step: types.StepAttributes{
			Path:       step.Path,
			Symbol:     step.Sym,
			Position:   step.Pos,
			PrevPos:    step.PrevPos,
			Win:        step.Win,
			FirstStep:  step.FirstStep,
			LastStep:   step.LastStep,
			AngryBirds: step.AngryBirds,
		},
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
