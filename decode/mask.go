package decode

import (
	"strconv"
	"strings"

	"pirots2ascii/types"
)

// maxHexDigits is the number of hex digits that fit the 64-bit mask space.
const maxHexDigits = 16

// Mask decodes a hexadecimal highlight mask. Bit i, counted from the least
// significant bit, marks position {Row: i / 8, Col: i % 8}.
// Parsing stops at the first non-hex character; only the low 64 bits count.
func Mask(hex string) types.HighlightSet {
	value := parseHexPrefix(strings.TrimLeft(hex, "0"))
	if value == 0 {
		return types.NewHighlightSet()
	}

	var positions []types.Position
	for i := 0; i < types.MaskSize*types.MaskSize; i++ {
		if value&(1<<uint(i)) == 0 {
			continue
		}
		positions = append(positions, types.Position{
			Row: i / types.MaskSize,
			Col: i % types.MaskSize,
		})
	}
	return types.NewHighlightSet(positions...)
}

// parseHexPrefix parses the leading run of hex digits in s.
func parseHexPrefix(s string) uint64 {
	end := 0
	for end < len(s) && isHexDigit(s[end]) {
		end++
	}
	if end == 0 {
		return 0
	}
	digits := s[:end]
	if len(digits) > maxHexDigits {
		digits = digits[len(digits)-maxHexDigits:]
	}
	v, err := strconv.ParseUint(digits, 16, 64)
	if err != nil {
		return 0
	}
	return v
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
