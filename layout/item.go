// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"image"
	"math"
)

// Spacing is the space around an item or inside a container.
type Spacing struct {
	Left, Top, Right, Bottom float64
}

// FlexItem is a child of a Container: a Measurable together with
// its flex properties and, after Container.Measure, its resolved
// size and position relative to the container.
type FlexItem struct {
	Measurable Measurable
	// FlexGrow is the share of free space the item takes when its
	// line has room to spare.
	FlexGrow float64
	// FlexShrink is the share of overflow the item gives up when its
	// line is too long. Zero disables shrinking.
	FlexShrink float64
	// FlexBasisPercent, when not UnsetFlexBasis, replaces the
	// requested main size by a fraction of an exactly sized
	// container.
	FlexBasisPercent float64
	AlignSelf        AlignSelf
	Margin           Spacing
	// WrapBefore forces the item to start a new line in a wrapping
	// container.
	WrapBefore bool
	// Baseline is the distance from the item's top to its text
	// baseline, or UnsetBaseline. It is overwritten on measurement
	// when Measurable implements Baseliner.
	Baseline float64

	Width, Height            float64
	Left, Top, Right, Bottom float64
}

// FlexLine is a run of consecutive items laid out along the main
// axis. A line without items is a spacer that only occupies
// CrossSize.
type FlexLine struct {
	// FirstIndex is the index of the first item in the line.
	FirstIndex int
	ItemCount  int
	// MainSize is the sum of the item main sizes and margins,
	// including the container's main margins.
	MainSize  float64
	CrossSize float64
	// MaxBaseline is the largest item baseline plus leading margin.
	MaxBaseline            float64
	TotalFlexGrow          float64
	TotalFlexShrink        float64
	AnyItemsHaveFlexGrow   bool
	AnyItemsHaveFlexShrink bool
	// SumCrossSizeBefore is the cross size taken by earlier lines.
	SumCrossSizeBefore float64
}

const (
	DefaultFlexGrow   = 0.0
	DefaultFlexShrink = 1.0
	UnsetFlexBasis    = -1.0
	UnsetBaseline     = -1.0
)

// NewItem returns an item for m with the default flex properties.
func NewItem(m Measurable) FlexItem {
	return FlexItem{
		Measurable:       m,
		FlexGrow:         DefaultFlexGrow,
		FlexShrink:       DefaultFlexShrink,
		FlexBasisPercent: UnsetFlexBasis,
		Baseline:         UnsetBaseline,
	}
}

// UniformSpacing returns a Spacing of v on every side.
func UniformSpacing(v float64) Spacing {
	return Spacing{Left: v, Top: v, Right: v, Bottom: v}
}

// Horizontal returns the sum of the left and right spacing.
func (s Spacing) Horizontal() float64 { return s.Left + s.Right }

// Vertical returns the sum of the top and bottom spacing.
func (s Spacing) Vertical() float64 { return s.Top + s.Bottom }

// Frame returns the item bounds in whole pixels. Edges are floored
// so that equal fractions keep the width.
func (it FlexItem) Frame() image.Rectangle {
	return image.Rect(
		int(math.Floor(it.Left)), int(math.Floor(it.Top)),
		int(math.Floor(it.Right)), int(math.Floor(it.Bottom)),
	)
}

// measurable returns the item content, an empty box if unset.
func (it *FlexItem) measurable() Measurable {
	if it.Measurable == nil {
		return Box{Width: WrapContent, Height: WrapContent}
	}
	return it.Measurable
}

// LastIndex returns the index of the last item in the line, or -1
// for spacers.
func (l FlexLine) LastIndex() int {
	if l.ItemCount == 0 {
		return -1
	}
	return l.FirstIndex + l.ItemCount - 1
}

func (l FlexLine) end() int {
	return l.FirstIndex + l.ItemCount
}

func spacer(crossSize float64) FlexLine {
	return FlexLine{CrossSize: crossSize}
}

func largestMainSize(lines []FlexLine) float64 {
	var size float64
	for _, l := range lines {
		size = max(size, l.MainSize)
	}
	return size
}

func sumCrossSize(lines []FlexLine) float64 {
	var size float64
	for _, l := range lines {
		size += l.CrossSize
	}
	return size
}
