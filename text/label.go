// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"math"

	"flexlayout.org/layout"
)

// Label is a layout.Measurable for a paragraph of text. It wraps
// at line break opportunities to fit the width it is offered, and
// its minimum width is that of its widest unbreakable segment.
//
// A Label memoizes its wrapped rows and is not safe for concurrent
// use. Changing Measurer after the first measurement is not
// supported.
type Label struct {
	Text     string
	Measurer Measurer
	// Padding is added around the text.
	Padding layout.Spacing
	// MaxLines limits the number of rows. Zero means no limit.
	MaxLines int
	// Width and Height are the requested size; see NewLabel.
	Width, Height float64
	// Min and Max bound the measured size. A zero Max dimension
	// means unbounded.
	Min, Max layout.Size

	baseline float64
	cache    layoutCache
	// minWidth memoizes the widest segment of minText.
	minText  string
	minWidth float64
	minValid bool
}

// NewLabel returns a label that wraps its content.
func NewLabel(text string, m Measurer) *Label {
	return &Label{
		Text:     text,
		Measurer: m,
		Width:    layout.WrapContent,
		Height:   layout.WrapContent,
	}
}

func (l *Label) RequestedWidth() float64  { return l.Width }
func (l *Label) RequestedHeight() float64 { return l.Height }

// MinWidth returns the width of the widest unbreakable segment
// plus padding.
func (l *Label) MinWidth() float64 {
	if !l.minValid || l.minText != l.Text {
		var w float64
		m := l.measurer()
		for _, s := range Segments(l.Text) {
			w = max(w, m.Advance(trimSpace(s)))
		}
		l.minText, l.minWidth, l.minValid = l.Text, w, true
	}
	return max(l.Min.Width, l.minWidth+l.Padding.Horizontal())
}

func (l *Label) MinHeight() float64 {
	return max(l.Min.Height, l.Padding.Vertical())
}

func (l *Label) MaxWidth() float64  { return bound(l.Max.Width) }
func (l *Label) MaxHeight() float64 { return bound(l.Max.Height) }

// Baseline returns the baseline of the first row as of the last
// measurement.
func (l *Label) Baseline() float64 {
	return l.baseline
}

// Measure wraps the text to the offered width. An Unspecified width
// keeps each paragraph on a single row.
func (l *Label) Measure(widthSpec, heightSpec layout.MeasureSpec) layout.Size {
	m := l.measurer()
	maxWidth := math.Inf(+1)
	if widthSpec.Mode != layout.Unspecified {
		maxWidth = widthSpec.Size - l.Padding.Horizontal()
	}
	rows := l.Lines(maxWidth)
	var w float64
	for _, r := range rows {
		w = max(w, m.Advance(r))
	}
	met := m.Metrics()
	l.baseline = l.Padding.Top + met.Ascent
	return layout.Size{
		Width:  layout.ResolveSize(w+l.Padding.Horizontal(), widthSpec),
		Height: layout.ResolveSize(float64(len(rows))*met.LineHeight+l.Padding.Vertical(), heightSpec),
	}
}

// Lines returns the rows of text wrapped to width, excluding
// padding.
func (l *Label) Lines(width float64) []string {
	k := layoutKey{maxWidth: width, maxLines: l.MaxLines, str: l.Text}
	if rows, ok := l.cache.Get(k); ok {
		return rows
	}
	rows := wrap(l.measurer(), Segments(l.Text), width)
	if l.MaxLines > 0 && len(rows) > l.MaxLines {
		rows = rows[:l.MaxLines]
	}
	l.cache.Put(k, rows)
	return rows
}

func (l *Label) measurer() Measurer {
	if l.Measurer == nil {
		return CellMeasurer{}
	}
	return l.Measurer
}

func bound(v float64) float64 {
	if v <= 0 {
		return math.Inf(+1)
	}
	return v
}
