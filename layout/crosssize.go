// SPDX-License-Identifier: Unlicense OR MIT

package layout

// determineCrossSize distributes the free cross space of an exactly
// sized container over its lines. The distribution may add spacer
// lines, so the result replaces lines.
func (c *Container) determineCrossSize(lines []FlexLine, widthSpec, heightSpec MeasureSpec) []FlexLine {
	a := c.Direction.Axis()
	crossSpec := axisCrossSpec(a, widthSpec, heightSpec)
	if crossSpec.Mode != Exactly {
		return lines
	}
	margin := axisCrossMargin(a, c.Margin)
	size := crossSpec.Size
	switch len(lines) {
	case 0:
		return lines
	case 1:
		lines[0].CrossSize = size - margin
		return lines
	}
	total := sumCrossSize(lines) + margin
	n := float64(len(lines))
	switch c.AlignContent {
	case ContentFlexStart:
		return lines
	case ContentFlexEnd:
		return append([]FlexLine{spacer(size - total)}, lines...)
	case ContentCenter:
		return centerLines(lines, size-total)
	case ContentStretch:
		if total >= size {
			return lines
		}
		unit := (size - total) / n
		var acc float64
		for i := range lines {
			l := &lines[i]
			raw := l.CrossSize + unit
			if i == len(lines)-1 {
				raw += acc
				acc = 0
			}
			cross := c.round(raw)
			acc += raw - cross
			if acc > 1 {
				cross++
				acc--
			} else if acc < -1 {
				cross--
				acc++
			}
			l.CrossSize = cross
		}
		return lines
	case ContentSpaceBetween:
		if total >= size {
			return lines
		}
		space := (size - total) / (n - 1)
		var acc float64
		out := make([]FlexLine, 0, 2*len(lines)-1)
		for i, l := range lines {
			out = append(out, l)
			if i == len(lines)-1 {
				break
			}
			var gap float64
			if i == len(lines)-2 {
				gap = c.round(space + acc)
				acc = 0
			} else {
				gap = c.round(space)
			}
			acc += space - gap
			if acc > 1 {
				gap++
				acc--
			} else if acc < -1 {
				gap--
				acc++
			}
			out = append(out, spacer(gap))
		}
		return out
	case ContentSpaceAround:
		if total >= size {
			return centerLines(lines, size-total)
		}
		space := (size - total) / (2 * n)
		out := make([]FlexLine, 0, 3*len(lines))
		for _, l := range lines {
			out = append(out, spacer(space), l, spacer(space))
		}
		return out
	default:
		panic("unreachable")
	}
}

// centerLines puts half of free before the first line and half
// after the last.
func centerLines(lines []FlexLine, free float64) []FlexLine {
	out := make([]FlexLine, 0, len(lines)+2)
	out = append(out, spacer(free/2))
	out = append(out, lines...)
	return append(out, spacer(free/2))
}

// stretchChildren sizes the stretched items to the cross size of
// their line.
func (c *Container) stretchChildren(lines []FlexLine) {
	a := c.Direction.Axis()
	for _, l := range lines {
		for i := l.FirstIndex; i < l.end(); i++ {
			it := &c.Items[i]
			if c.alignOf(it) != AlignStretch {
				continue
			}
			lo, hi := axisCrossBounds(a, it.measurable())
			cross := clamp(l.CrossSize-axisCrossMargin(a, it.Margin), lo, hi)
			if cross == axisCross(a, it) {
				continue
			}
			main := axisMain(a, it)
			w, h := axisSpecs(a, Exact(max(main, 0)), Exact(max(cross, 0)))
			c.measureItem(it, w, h)
			setAxisMain(a, it, main)
			setAxisCross(a, it, cross)
		}
	}
}

// calculateContainerSize resolves the container size from its lines.
func (c *Container) calculateContainerSize(lines []FlexLine, widthSpec, heightSpec MeasureSpec) Size {
	a := c.Direction.Axis()
	sz := axisSize(a, largestMainSize(lines), sumCrossSize(lines)+axisCrossMargin(a, c.Margin))
	return Size{
		Width:  ResolveSize(sz.Width, widthSpec),
		Height: ResolveSize(sz.Height, heightSpec),
	}
}
