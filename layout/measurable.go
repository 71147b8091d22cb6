// SPDX-License-Identifier: Unlicense OR MIT

package layout

import "math"

// Requested size sentinels. Any non-negative request is a literal
// size.
const (
	// MatchParent asks for all the space the parent offers.
	MatchParent = -1.0
	// WrapContent asks to be as large as the content.
	WrapContent = -2.0
)

// Measurable is the content of a flex item. The solver reads its
// requested size and bounds, and asks it to measure itself when a
// dimension cannot be resolved otherwise.
type Measurable interface {
	RequestedWidth() float64
	RequestedHeight() float64
	MinWidth() float64
	MinHeight() float64
	MaxWidth() float64
	MaxHeight() float64
	// Measure returns the size the content wants under the given
	// specs. The solver clamps the result to the bounds above.
	Measure(widthSpec, heightSpec MeasureSpec) Size
}

// Baseliner is implemented by measurables that have a text
// baseline. The solver copies the baseline into the item after each
// measurement.
type Baseliner interface {
	Baseline() float64
}

// Box is a Measurable without content. Width and Height are the
// requested sizes; a zero Max dimension means unbounded.
type Box struct {
	Width, Height float64
	Min, Max      Size
}

func (b Box) RequestedWidth() float64  { return b.Width }
func (b Box) RequestedHeight() float64 { return b.Height }
func (b Box) MinWidth() float64        { return b.Min.Width }
func (b Box) MinHeight() float64       { return b.Min.Height }
func (b Box) MaxWidth() float64        { return unbounded(b.Max.Width) }
func (b Box) MaxHeight() float64       { return unbounded(b.Max.Height) }

// Measure resolves the requested size against the specs. Sentinel
// requests have no content and measure as zero.
func (b Box) Measure(widthSpec, heightSpec MeasureSpec) Size {
	return Size{
		Width:  ResolveSize(max(b.Width, 0), widthSpec),
		Height: ResolveSize(max(b.Height, 0), heightSpec),
	}
}

func unbounded(v float64) float64 {
	if v <= 0 {
		return math.Inf(+1)
	}
	return v
}
