// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"context"
	"log/slog"
	"math"
)

// Container lays out its items in lines along a main axis,
// according to the CSS flexible box rules.
//
// Items is addressed by index during Measure; it must not be
// modified until Measure returns. A Container keeps no other state
// between calls.
type Container struct {
	// FillWidth and FillHeight make the container take all the space
	// an AtMost or Unspecified spec offers.
	FillWidth, FillHeight bool
	Direction             FlexDirection
	Wrap                  FlexWrap
	JustifyContent        JustifyContent
	AlignItems            AlignItems
	AlignContent          AlignContent
	// Margin is the padding between the container edges and its
	// items.
	Margin Spacing
	// MaxLines limits the number of lines in a wrapping container.
	// Values <= 0 mean no limit.
	MaxLines int
	// RoundToInt rounds item sizes to whole pixels and spreads the
	// rounding errors over the items.
	RoundToInt bool
	Items      []FlexItem
}

// FlexDirection is the main axis and its direction.
type FlexDirection uint8

// FlexWrap controls whether items wrap to new lines.
type FlexWrap uint8

// JustifyContent distributes free space along the main axis.
type JustifyContent uint8

// AlignItems aligns items in the cross axis of their line.
type AlignItems uint8

// AlignSelf overrides AlignItems for a single item.
type AlignSelf uint8

// AlignContent distributes free cross space between lines.
type AlignContent uint8

// NotSet is the MaxLines value for no limit.
const NotSet = 0

const (
	Row FlexDirection = iota
	RowReverse
	Column
	ColumnReverse
)

const (
	NoWrap FlexWrap = iota
	Wrap
	WrapReverse
)

const (
	JustifyFlexStart JustifyContent = iota
	JustifyFlexEnd
	JustifyCenter
	// JustifySpaceBetween puts the free space between the items,
	// none at the edges.
	JustifySpaceBetween
	// JustifySpaceAround gives each item the same space on both
	// sides, so the edges get half a gap.
	JustifySpaceAround
	// JustifySpaceEvenly puts equal space between the items and at
	// the edges.
	JustifySpaceEvenly
)

const (
	AlignFlexStart AlignItems = iota
	AlignFlexEnd
	AlignCenter
	AlignBaseline
	AlignStretch
)

const (
	// SelfAuto defers to the container's AlignItems.
	SelfAuto AlignSelf = iota
	SelfFlexStart
	SelfFlexEnd
	SelfCenter
	SelfBaseline
	SelfStretch
)

const (
	ContentFlexStart AlignContent = iota
	ContentFlexEnd
	ContentCenter
	ContentSpaceBetween
	ContentSpaceAround
	ContentStretch
)

// Measure resolves the container size under the given specs and
// the size and position of every item. Positions are relative to
// the container's top left corner.
func (c *Container) Measure(widthSpec, heightSpec MeasureSpec) Size {
	if c.FillWidth && widthSpec.Mode != Exactly && widthSpec.Size > 0 {
		widthSpec = MeasureSpec{Size: widthSpec.Size, Mode: Exactly}
	}
	if c.FillHeight && heightSpec.Mode != Exactly && heightSpec.Size > 0 {
		heightSpec = MeasureSpec{Size: heightSpec.Size, Mode: Exactly}
	}
	lines := c.calculateFlexLines(widthSpec, heightSpec)
	c.determineMainSize(lines, widthSpec, heightSpec)
	if c.Direction.Axis() == Horizontal && c.AlignItems == AlignBaseline {
		c.fitBaselines(lines)
	}
	lines = c.determineCrossSize(lines, widthSpec, heightSpec)
	c.stretchChildren(lines)
	size := c.calculateContainerSize(lines, widthSpec, heightSpec)
	c.layout(lines, size)
	if l := Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("flex: measured",
			"direction", c.Direction,
			"width", widthSpec,
			"height", heightSpec,
			"items", len(c.Items),
			"lines", len(lines),
			"size", size,
		)
	}
	return size
}

// measureItem measures an item under the given specs and stores
// the result clamped to the item's bounds.
func (c *Container) measureItem(it *FlexItem, widthSpec, heightSpec MeasureSpec) {
	m := it.measurable()
	sz := m.Measure(widthSpec, heightSpec)
	it.Width = clamp(sz.Width, m.MinWidth(), m.MaxWidth())
	it.Height = clamp(sz.Height, m.MinHeight(), m.MaxHeight())
	if b, ok := m.(Baseliner); ok {
		it.Baseline = b.Baseline()
	}
}

// fitItem sizes an item under the given specs, measuring its
// content only when a dimension is not exact.
func (c *Container) fitItem(it *FlexItem, widthSpec, heightSpec MeasureSpec) {
	if widthSpec.Mode != Exactly || heightSpec.Mode != Exactly {
		c.measureItem(it, widthSpec, heightSpec)
		return
	}
	m := it.measurable()
	it.Width = clamp(widthSpec.Size, m.MinWidth(), m.MaxWidth())
	it.Height = clamp(heightSpec.Size, m.MinHeight(), m.MaxHeight())
	if b, ok := m.(Baseliner); ok {
		it.Baseline = b.Baseline()
	}
}

// childCrossSpec is the cross spec offered to an item whose line
// starts after sumCrossBefore, with its size clamped to the item's
// cross bounds.
func (c *Container) childCrossSpec(it *FlexItem, crossSpec MeasureSpec, sumCrossBefore float64) MeasureSpec {
	a := c.Direction.Axis()
	m := it.measurable()
	margin := axisCrossMargin(a, c.Margin) + axisCrossMargin(a, it.Margin) + sumCrossBefore
	s := ChildMeasureSpec(crossSpec, margin, axisCrossRequest(a, m))
	lo, hi := axisCrossBounds(a, m)
	s.Size = clamp(s.Size, lo, hi)
	return s
}

func (c *Container) alignOf(it *FlexItem) AlignItems {
	switch it.AlignSelf {
	case SelfAuto:
		return c.AlignItems
	case SelfFlexStart:
		return AlignFlexStart
	case SelfFlexEnd:
		return AlignFlexEnd
	case SelfCenter:
		return AlignCenter
	case SelfBaseline:
		return AlignBaseline
	case SelfStretch:
		return AlignStretch
	default:
		panic("unreachable")
	}
}

// round rounds half up when RoundToInt is set.
func (c *Container) round(v float64) float64 {
	if !c.RoundToInt {
		return v
	}
	return math.Floor(v + .5)
}

// Axis returns the main axis of d.
func (d FlexDirection) Axis() Axis {
	switch d {
	case Row, RowReverse:
		return Horizontal
	case Column, ColumnReverse:
		return Vertical
	default:
		panic("unreachable")
	}
}

func axisSize(a Axis, main, cross float64) Size {
	if a == Horizontal {
		return Size{Width: main, Height: cross}
	} else {
		return Size{Width: cross, Height: main}
	}
}

func axisSpecs(a Axis, main, cross MeasureSpec) (width, height MeasureSpec) {
	if a == Horizontal {
		return main, cross
	} else {
		return cross, main
	}
}

func axisMainSpec(a Axis, width, height MeasureSpec) MeasureSpec {
	if a == Horizontal {
		return width
	} else {
		return height
	}
}

func axisCrossSpec(a Axis, width, height MeasureSpec) MeasureSpec {
	if a == Horizontal {
		return height
	} else {
		return width
	}
}

func axisMainMargin(a Axis, s Spacing) float64 {
	if a == Horizontal {
		return s.Horizontal()
	} else {
		return s.Vertical()
	}
}

func axisCrossMargin(a Axis, s Spacing) float64 {
	if a == Horizontal {
		return s.Vertical()
	} else {
		return s.Horizontal()
	}
}

func axisMainRequest(a Axis, m Measurable) float64 {
	if a == Horizontal {
		return m.RequestedWidth()
	} else {
		return m.RequestedHeight()
	}
}

func axisCrossRequest(a Axis, m Measurable) float64 {
	if a == Horizontal {
		return m.RequestedHeight()
	} else {
		return m.RequestedWidth()
	}
}

func axisMainBounds(a Axis, m Measurable) (float64, float64) {
	if a == Horizontal {
		return m.MinWidth(), m.MaxWidth()
	} else {
		return m.MinHeight(), m.MaxHeight()
	}
}

func axisCrossBounds(a Axis, m Measurable) (float64, float64) {
	if a == Horizontal {
		return m.MinHeight(), m.MaxHeight()
	} else {
		return m.MinWidth(), m.MaxWidth()
	}
}

func axisMain(a Axis, it *FlexItem) float64 {
	if a == Horizontal {
		return it.Width
	} else {
		return it.Height
	}
}

func axisCross(a Axis, it *FlexItem) float64 {
	if a == Horizontal {
		return it.Height
	} else {
		return it.Width
	}
}

func setAxisMain(a Axis, it *FlexItem, v float64) {
	if a == Horizontal {
		it.Width = v
	} else {
		it.Height = v
	}
}

func setAxisCross(a Axis, it *FlexItem, v float64) {
	if a == Horizontal {
		it.Height = v
	} else {
		it.Width = v
	}
}

// axisOuterMain is the item main size including its margins.
func axisOuterMain(a Axis, it *FlexItem) float64 {
	return axisMain(a, it) + axisMainMargin(a, it.Margin)
}

func axisOuterCross(a Axis, it *FlexItem) float64 {
	return axisCross(a, it) + axisCrossMargin(a, it.Margin)
}

func (d FlexDirection) String() string {
	switch d {
	case Row:
		return "Row"
	case RowReverse:
		return "RowReverse"
	case Column:
		return "Column"
	case ColumnReverse:
		return "ColumnReverse"
	default:
		panic("unreachable")
	}
}

func (w FlexWrap) String() string {
	switch w {
	case NoWrap:
		return "NoWrap"
	case Wrap:
		return "Wrap"
	case WrapReverse:
		return "WrapReverse"
	default:
		panic("unreachable")
	}
}

func (j JustifyContent) String() string {
	switch j {
	case JustifyFlexStart:
		return "FlexStart"
	case JustifyFlexEnd:
		return "FlexEnd"
	case JustifyCenter:
		return "Center"
	case JustifySpaceBetween:
		return "SpaceBetween"
	case JustifySpaceAround:
		return "SpaceAround"
	case JustifySpaceEvenly:
		return "SpaceEvenly"
	default:
		panic("unreachable")
	}
}

func (a AlignItems) String() string {
	switch a {
	case AlignFlexStart:
		return "FlexStart"
	case AlignFlexEnd:
		return "FlexEnd"
	case AlignCenter:
		return "Center"
	case AlignBaseline:
		return "Baseline"
	case AlignStretch:
		return "Stretch"
	default:
		panic("unreachable")
	}
}

func (a AlignSelf) String() string {
	switch a {
	case SelfAuto:
		return "Auto"
	case SelfFlexStart:
		return "FlexStart"
	case SelfFlexEnd:
		return "FlexEnd"
	case SelfCenter:
		return "Center"
	case SelfBaseline:
		return "Baseline"
	case SelfStretch:
		return "Stretch"
	default:
		panic("unreachable")
	}
}

func (a AlignContent) String() string {
	switch a {
	case ContentFlexStart:
		return "FlexStart"
	case ContentFlexEnd:
		return "FlexEnd"
	case ContentCenter:
		return "Center"
	case ContentSpaceBetween:
		return "SpaceBetween"
	case ContentSpaceAround:
		return "SpaceAround"
	case ContentStretch:
		return "Stretch"
	default:
		panic("unreachable")
	}
}
