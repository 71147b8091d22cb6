// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"strings"
	"unicode"

	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax14"
)

// Segments splits s at its line break opportunities as defined by
// Unicode Standard Annex #14. Each segment keeps its trailing
// spaces, so the segments concatenate back to s.
func Segments(s string) []string {
	if s == "" {
		return nil
	}
	seg := segment.NewSegmenter(uax14.NewLineWrap())
	seg.Init(strings.NewReader(s))
	var segs []string
	for seg.Next() {
		segs = append(segs, seg.Text())
	}
	return segs
}

// wrap fills rows greedily with segments while their trimmed width
// fits in width. Every row holds at least one segment; a segment
// ending in a newline ends its row.
func wrap(m Measurer, segs []string, width float64) []string {
	var rows []string
	var row string
	for _, s := range segs {
		if row != "" && m.Advance(trimSpace(row+s)) > width {
			rows = append(rows, trimSpace(row))
			row = ""
		}
		row += s
		if strings.HasSuffix(s, "\n") {
			rows = append(rows, trimSpace(row))
			row = ""
		}
	}
	if row != "" {
		rows = append(rows, trimSpace(row))
	}
	return rows
}

func trimSpace(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}
