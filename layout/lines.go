// SPDX-License-Identifier: Unlicense OR MIT

package layout

// calculateFlexLines measures every item and splits the items into
// lines along the main axis.
func (c *Container) calculateFlexLines(widthSpec, heightSpec MeasureSpec) []FlexLine {
	a := c.Direction.Axis()
	mainSpec := axisMainSpec(a, widthSpec, heightSpec)
	crossSpec := axisCrossSpec(a, widthSpec, heightSpec)
	mainMargin := axisMainMargin(a, c.Margin)

	var lines []FlexLine
	// Cross size taken by the lines completed so far.
	var sumCross float64
	// Largest item cross size in the current line.
	var largestCross float64
	line := FlexLine{MainSize: mainMargin}
	for i := range c.Items {
		it := &c.Items[i]
		m := it.measurable()

		childMain := axisMainRequest(a, m)
		if it.FlexBasisPercent != UnsetFlexBasis && mainSpec.Mode == Exactly {
			childMain = c.round(it.FlexBasisPercent * mainSpec.Size)
		}
		mainChildSpec := ChildMeasureSpec(mainSpec, mainMargin+axisMainMargin(a, it.Margin), childMain)
		crossChildSpec := ChildMeasureSpec(crossSpec, axisCrossMargin(a, c.Margin)+axisCrossMargin(a, it.Margin)+sumCross, axisCrossRequest(a, m))
		w, h := axisSpecs(a, mainChildSpec, crossChildSpec)
		c.fitItem(it, w, h)

		if c.isWrapRequired(mainSpec, line.MainSize, axisOuterMain(a, it), it, len(lines)) {
			if line.ItemCount > 0 {
				line.SumCrossSizeBefore = sumCross
				lines = append(lines, line)
				sumCross += line.CrossSize
			}
			if axisCrossRequest(a, m) == MatchParent {
				// The cross space left shrank with the completed line.
				crossChildSpec = ChildMeasureSpec(crossSpec, axisCrossMargin(a, c.Margin)+axisCrossMargin(a, it.Margin)+sumCross, MatchParent)
				w, h := axisSpecs(a, mainChildSpec, crossChildSpec)
				c.fitItem(it, w, h)
			}
			line = FlexLine{FirstIndex: i, ItemCount: 1, MainSize: mainMargin}
			largestCross = 0
		} else {
			line.ItemCount++
		}
		line.AnyItemsHaveFlexGrow = line.AnyItemsHaveFlexGrow || it.FlexGrow != 0
		line.AnyItemsHaveFlexShrink = line.AnyItemsHaveFlexShrink || it.FlexShrink != 0
		line.MainSize += axisOuterMain(a, it)
		line.TotalFlexGrow += it.FlexGrow
		line.TotalFlexShrink += it.FlexShrink
		largestCross = max(largestCross, axisOuterCross(a, it))
		line.CrossSize = max(line.CrossSize, largestCross)
		if a == Horizontal {
			if c.Wrap != WrapReverse {
				line.MaxBaseline = max(line.MaxBaseline, it.Baseline+it.Margin.Top)
			} else {
				line.MaxBaseline = max(line.MaxBaseline, it.Height-it.Baseline+it.Margin.Bottom)
			}
		}
		if i == len(c.Items)-1 && line.ItemCount > 0 {
			line.SumCrossSizeBefore = sumCross
			lines = append(lines, line)
			sumCross += line.CrossSize
		}
	}
	return lines
}

// isWrapRequired reports whether an item of outer main size child
// starts a new line when the current line is current long.
func (c *Container) isWrapRequired(mainSpec MeasureSpec, current, child float64, it *FlexItem, lineCount int) bool {
	if c.Wrap == NoWrap {
		return false
	}
	if it.WrapBefore {
		return true
	}
	if mainSpec.Mode == Unspecified {
		return false
	}
	if c.MaxLines > 0 && c.MaxLines <= lineCount+1 {
		return false
	}
	return mainSpec.Size < current+child
}
