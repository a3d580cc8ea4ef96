package ui

import (
	"testing"

	"github.com/adrg/xdg"
	"github.com/gdamore/tcell/v2"

	"pirots2ascii/config"
	"pirots2ascii/render"
)

func TestAnsiBackground(t *testing.T) {
	tests := []struct {
		code int
		want tcell.Color
	}{
		{40, tcell.PaletteColor(0)},
		{43, tcell.PaletteColor(3)},
		{103, tcell.PaletteColor(11)},
		{33, tcell.ColorDefault},
	}
	for _, tt := range tests {
		if got := ansiBackground(tt.code); got != tt.want {
			t.Errorf("ansiBackground(%d) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestColorConfigApply(t *testing.T) {
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	xdg.Reload()

	cfg := config.DefaultConfig
	var got render.Theme
	cc := NewColorConfig(&cfg, DefaultColors, func(th render.Theme) { got = th })

	if n := cc.colorList.GetItemCount(); n != len(highlightColors) {
		t.Fatalf("item count = %d, want %d", n, len(highlightColors))
	}
	if cur := cc.colorList.GetCurrentItem(); highlightColors[cur].code != 43 {
		t.Errorf("current item = %d, want the configured yellow", cur)
	}

	cc.Apply(41)
	if cfg.Render.HighlightColor != 41 {
		t.Errorf("HighlightColor = %d, want 41", cfg.Render.HighlightColor)
	}
	if got.Highlight.Code() != render.ThemeWithBackground(41).Highlight.Code() {
		t.Errorf("theme code = %q, want 41", got.Highlight.Code())
	}
}
