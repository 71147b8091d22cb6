// SPDX-License-Identifier: Unlicense OR MIT

// Package text implements text content for flex items: labels that
// wrap at line break opportunities and measure themselves with a
// pluggable Measurer.
package text

// Metrics are the vertical metrics of a line of text.
type Metrics struct {
	// Ascent is the height above the baseline.
	Ascent float64
	// Descent is the depth below the baseline.
	Descent float64
	// LineHeight is the distance between consecutive baselines.
	LineHeight float64
}

// Measurer measures runs of text in layout pixels.
type Measurer interface {
	// Advance returns the width of s laid out on a single line.
	Advance(s string) float64
	Metrics() Metrics
}
