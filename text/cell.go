// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"unicode"

	"golang.org/x/text/width"
)

// CellMeasurer measures text in terminal cells: one cell per rune,
// two for East Asian wide and fullwidth runes, none for control and
// combining runes. Lines are one cell high.
type CellMeasurer struct{}

func (CellMeasurer) Advance(s string) float64 {
	var n int
	for _, r := range s {
		n += RuneCells(r)
	}
	return float64(n)
}

func (CellMeasurer) Metrics() Metrics {
	return Metrics{Ascent: 1, LineHeight: 1}
}

// RuneCells returns the number of terminal cells r occupies.
func RuneCells(r rune) int {
	if unicode.IsControl(r) || unicode.Is(unicode.Mn, r) {
		return 0
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}
