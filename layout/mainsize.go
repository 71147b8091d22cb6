// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"context"
	"log/slog"
)

// determineMainSize grows or shrinks the flexible items of every
// line to fill the container's main size.
func (c *Container) determineMainSize(lines []FlexLine, widthSpec, heightSpec MeasureSpec) {
	mainSpec := axisMainSpec(c.Direction.Axis(), widthSpec, heightSpec)
	var target float64
	switch mainSpec.Mode {
	case Exactly:
		target = mainSpec.Size
	case AtMost:
		target = min(largestMainSize(lines), mainSpec.Size)
	case Unspecified:
		target = largestMainSize(lines)
	default:
		panic("unreachable")
	}
	// Items frozen at their bounds; shared by all lines.
	frozen := make([]bool, len(c.Items))
	for i := range lines {
		l := &lines[i]
		switch {
		case l.MainSize < target && l.AnyItemsHaveFlexGrow:
			c.flexLine(l, frozen, target, widthSpec, heightSpec, true)
		case l.MainSize > target && l.AnyItemsHaveFlexShrink:
			c.flexLine(l, frozen, target, widthSpec, heightSpec, false)
		}
	}
}

// flexLine distributes the difference between target and the line
// main size over the line's items by their grow (or shrink)
// factors. An item that would cross its main bound is frozen at the
// bound, and the remainder is distributed again over the others.
// Every pass either freezes an item or ends the loop, so there are
// at most ItemCount+1 passes.
func (c *Container) flexLine(l *FlexLine, frozen []bool, target float64, widthSpec, heightSpec MeasureSpec, grow bool) {
	a := c.Direction.Axis()
	crossSpec := axisCrossSpec(a, widthSpec, heightSpec)
	l.CrossSize = 0
	for pass := 0; pass <= l.ItemCount; pass++ {
		total, free := l.TotalFlexShrink, l.MainSize-target
		if grow {
			total, free = l.TotalFlexGrow, target-l.MainSize
		}
		if total <= 0 || free < 0 {
			return
		}
		sizeBefore := l.MainSize
		unit := free / total
		l.MainSize = axisMainMargin(a, c.Margin)
		refreeze := false
		var largestCross, acc float64
		// The last item still flexing absorbs the rounding remainder.
		last := -1
		for i := l.FirstIndex; i < l.end(); i++ {
			if !frozen[i] && c.factor(&c.Items[i], grow) > 0 {
				last = i
			}
		}
		for i := l.FirstIndex; i < l.end(); i++ {
			it := &c.Items[i]
			factor := c.factor(it, grow)
			if !frozen[i] && factor > 0 {
				lo, hi := axisMainBounds(a, it.measurable())
				raw := axisMain(a, it) - unit*factor
				if grow {
					raw = axisMain(a, it) + unit*factor
				}
				if i == last {
					raw += acc
					acc = 0
				}
				size := c.round(raw)
				switch {
				case grow && size > hi:
					size = hi
					frozen[i] = true
					l.TotalFlexGrow -= factor
					refreeze = true
				case !grow && size < lo:
					size = lo
					frozen[i] = true
					l.TotalFlexShrink -= factor
					refreeze = true
				default:
					acc += raw - size
					if acc > 1 {
						size++
						acc--
					} else if acc < -1 {
						size--
						acc++
					}
					size = clamp(size, lo, hi)
				}
				c.resizeMain(it, size, crossSpec, l.SumCrossSizeBefore)
			}
			largestCross = max(largestCross, axisOuterCross(a, it))
			l.MainSize += axisOuterMain(a, it)
		}
		l.CrossSize = max(l.CrossSize, largestCross)
		if !refreeze || sizeBefore == l.MainSize {
			return
		}
		if lg := Logger(); lg.Enabled(context.Background(), slog.LevelDebug) {
			lg.Debug("flex: items frozen, distributing again",
				"grow", grow,
				"line", l.FirstIndex,
				"pass", pass,
				"mainSize", l.MainSize,
				"target", target,
			)
		}
	}
}

func (c *Container) factor(it *FlexItem, grow bool) float64 {
	if grow {
		return it.FlexGrow
	}
	return it.FlexShrink
}

// resizeMain fixes the item main size and resolves its cross size
// for it. The content is measured only when the cross size is not
// already exact.
func (c *Container) resizeMain(it *FlexItem, size float64, crossSpec MeasureSpec, sumCrossBefore float64) {
	a := c.Direction.Axis()
	cs := c.childCrossSpec(it, crossSpec, sumCrossBefore)
	if cs.Mode == Exactly {
		setAxisCross(a, it, cs.Size)
	} else {
		w, h := axisSpecs(a, Exact(size), cs)
		c.measureItem(it, w, h)
	}
	setAxisMain(a, it, size)
}

// fitBaselines grows the cross size of each line of a row so that
// its items fit after being shifted onto a common baseline.
func (c *Container) fitBaselines(lines []FlexLine) {
	for li := range lines {
		l := &lines[li]
		var largest float64
		for i := l.FirstIndex; i < l.end(); i++ {
			it := &c.Items[i]
			var h float64
			if c.Wrap != WrapReverse {
				top := max(l.MaxBaseline-it.Baseline, it.Margin.Top)
				h = it.Height + top + it.Margin.Bottom
			} else {
				bottom := max(l.MaxBaseline-it.Height+it.Baseline, it.Margin.Bottom)
				h = it.Height + it.Margin.Top + bottom
			}
			largest = max(largest, h)
		}
		l.CrossSize = largest
	}
}
