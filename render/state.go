package render

import "pirots2ascii/types"

// State renders any game state. Board states are drawn on demand with the
// board's own title; path states return their precomputed rendering.
func (t Theme) State(s types.GameState, mode Mode) string {
	switch st := s.(type) {
	case *types.BoardState:
		return t.Board(st.Board, st.Title, st.Highlights, mode)
	case *types.PathState:
		return escape(st.Rendering, mode)
	}
	return ""
}

// State renders s with the default theme.
func State(s types.GameState, mode Mode) string {
	return DefaultTheme.State(s, mode)
}
