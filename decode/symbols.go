// Package decode turns the raw attribute strings of a replay into boards,
// highlight sets and path points.
package decode

// SymbolTable maps raw game symbols to display glyphs.
type SymbolTable map[string]string

// DefaultSymbols returns a fresh copy of the game's symbol table.
func DefaultSymbols() SymbolTable {
	t := SymbolTable{
		"e": "E",
		"f": "F",
		"B": "F",
		"-": "·",
	}
	for _, s := range []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "a", "b", "c", "d", "w", "M", "X"} {
		t[s] = s
	}
	return t
}

// Lookup returns the glyph for raw, or raw itself when it is not mapped.
func (t SymbolTable) Lookup(raw string) string {
	if glyph, ok := t[raw]; ok && glyph != "" {
		return glyph
	}
	return raw
}

// Decoder decodes window encodings with a fixed symbol table.
type Decoder struct {
	symbols SymbolTable
}

// NewDecoder creates a decoder. A nil table falls back to DefaultSymbols.
func NewDecoder(symbols SymbolTable) *Decoder {
	if symbols == nil {
		symbols = DefaultSymbols()
	}
	return &Decoder{symbols: symbols}
}
