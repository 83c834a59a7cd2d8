package table

import (
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// newCollator builds the collator used for non-numeric cell comparison.
func newCollator() *collate.Collator {
	return collate.New(language.Und, collate.IgnoreCase)
}

// compareCells orders two cell values: numerically when both parse as
// numbers, otherwise as locale-aware strings. Returns <0, 0 or >0.
func compareCells(c *collate.Collator, a, b string) int {
	na, okA := parseNumeric(a)
	nb, okB := parseNumeric(b)
	if okA && okB {
		switch {
		case na < nb:
			return -1
		case na > nb:
			return 1
		default:
			return 0
		}
	}
	return c.CompareString(a, b)
}

// parseNumeric accepts plain integers and decimals, with surrounding
// whitespace. Values like "12 beds" are not numeric.
func parseNumeric(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
