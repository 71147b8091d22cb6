// SPDX-License-Identifier: Unlicense OR MIT

package layout

// layout positions the items inside a container of the given size.
func (c *Container) layout(lines []FlexLine, size Size) {
	switch c.Direction {
	case Row:
		c.layoutHorizontal(lines, size, false)
	case RowReverse:
		c.layoutHorizontal(lines, size, true)
	case Column:
		c.layoutVertical(lines, size, c.Wrap == WrapReverse, false)
	case ColumnReverse:
		c.layoutVertical(lines, size, c.Wrap == WrapReverse, true)
	default:
		panic("unreachable")
	}
}

// justify returns the cursors at the start and at the end of a line
// of a container with the given main size and margins, and the gap
// between adjacent items.
func (c *Container) justify(l FlexLine, size, leading, trailing float64) (start, end, gap float64) {
	free := size - l.MainSize
	n := float64(l.ItemCount)
	start, end = leading, size-trailing
	switch c.JustifyContent {
	case JustifyFlexStart:
	case JustifyFlexEnd:
		start, end = free+leading, l.MainSize-trailing
	case JustifyCenter:
		start, end = leading+free/2, size-trailing-free/2
	case JustifySpaceBetween:
		gap = free / max(n-1, 1)
	case JustifySpaceAround:
		if n > 0 {
			gap = free / n
		}
		start, end = leading+gap/2, size-trailing-gap/2
	case JustifySpaceEvenly:
		gap = free / (n + 1)
		start, end = leading+gap, size-trailing-gap
	default:
		panic("unreachable")
	}
	return start, end, max(gap, 0)
}

func (c *Container) layoutHorizontal(lines []FlexLine, size Size, reverse bool) {
	top := c.Margin.Top
	bottom := size.Height - c.Margin.Bottom
	for _, l := range lines {
		left, right, gap := c.justify(l, size.Width, c.Margin.Left, c.Margin.Right)
		for i := l.FirstIndex; i < l.end(); i++ {
			it := &c.Items[i]
			left += it.Margin.Left
			right -= it.Margin.Right
			x := left
			if reverse {
				x = right - it.Width
			}
			y := top
			if c.Wrap == WrapReverse {
				y = bottom - it.Height
			}
			c.placeInRow(it, l, x, y)
			left += it.Width + gap + it.Margin.Right
			right -= it.Width + gap + it.Margin.Left
		}
		top += l.CrossSize
		bottom -= l.CrossSize
	}
}

// placeInRow aligns an item in the cross axis of a row line. top is
// the line start, or the line end less the item height under
// WrapReverse.
func (c *Container) placeInRow(it *FlexItem, l FlexLine, left, top float64) {
	rev := c.Wrap == WrapReverse
	switch c.alignOf(it) {
	case AlignFlexStart, AlignStretch:
		if !rev {
			top += it.Margin.Top
		} else {
			top -= it.Margin.Bottom
		}
	case AlignBaseline:
		if !rev {
			top += max(l.MaxBaseline-it.Baseline, it.Margin.Top)
		} else {
			top -= max(l.MaxBaseline-it.Height+it.Baseline, it.Margin.Bottom)
		}
	case AlignFlexEnd:
		if !rev {
			top += l.CrossSize - it.Height - it.Margin.Bottom
		} else {
			top += it.Height - l.CrossSize + it.Margin.Top
		}
	case AlignCenter:
		off := (l.CrossSize - it.Height + it.Margin.Top - it.Margin.Bottom) / 2
		if !rev {
			top += off
		} else {
			top += it.Height - l.CrossSize + off
		}
	default:
		panic("unreachable")
	}
	setFrame(it, left, top)
}

func (c *Container) layoutVertical(lines []FlexLine, size Size, rightToLeft, bottomToTop bool) {
	left := c.Margin.Left
	right := size.Width - c.Margin.Right
	for _, l := range lines {
		top, bottom, gap := c.justify(l, size.Height, c.Margin.Top, c.Margin.Bottom)
		for i := l.FirstIndex; i < l.end(); i++ {
			it := &c.Items[i]
			top += it.Margin.Top
			bottom -= it.Margin.Bottom
			x := left
			if rightToLeft {
				x = right - it.Width
			}
			y := top
			if bottomToTop {
				y = bottom - it.Height
			}
			c.placeInColumn(it, l, x, y, rightToLeft)
			top += it.Height + gap + it.Margin.Bottom
			bottom -= it.Height + gap + it.Margin.Top
		}
		left += l.CrossSize
		right -= l.CrossSize
	}
}

// placeInColumn aligns an item in the cross axis of a column line.
// Columns have no baseline alignment; Baseline acts as FlexStart.
func (c *Container) placeInColumn(it *FlexItem, l FlexLine, left, top float64, rightToLeft bool) {
	switch c.alignOf(it) {
	case AlignFlexStart, AlignStretch, AlignBaseline:
		if !rightToLeft {
			left += it.Margin.Left
		} else {
			left -= it.Margin.Right
		}
	case AlignFlexEnd:
		if !rightToLeft {
			left += l.CrossSize - it.Width - it.Margin.Right
		} else {
			left += it.Width - l.CrossSize + it.Margin.Left
		}
	case AlignCenter:
		off := (l.CrossSize - it.Width + it.Margin.Left - it.Margin.Right) / 2
		if !rightToLeft {
			left += off
		} else {
			left += it.Width - l.CrossSize + off
		}
	default:
		panic("unreachable")
	}
	setFrame(it, left, top)
}

func setFrame(it *FlexItem, left, top float64) {
	it.Left = left
	it.Top = top
	it.Right = left + it.Width
	it.Bottom = top + it.Height
}
