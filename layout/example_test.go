// SPDX-License-Identifier: Unlicense OR MIT

package layout_test

import (
	"fmt"

	"flexlayout.org/layout"
)

func ExampleContainer() {
	c := &layout.Container{Direction: layout.Row}
	for i := 0; i < 3; i++ {
		it := layout.NewItem(layout.Box{Width: layout.WrapContent, Height: 50})
		it.FlexGrow = 1
		c.Items = append(c.Items, it)
	}

	sz := c.Measure(layout.Exact(300), layout.Unbounded())

	fmt.Println(sz)
	for _, it := range c.Items {
		fmt.Println(it.Frame())
	}

	// Output:
	// (300,50)
	// (0,0)-(100,50)
	// (100,0)-(200,50)
	// (200,0)-(300,50)
}

func ExampleContainer_wrap() {
	c := &layout.Container{
		Wrap:         layout.Wrap,
		AlignContent: layout.ContentSpaceBetween,
		RoundToInt:   true,
	}
	for i := 0; i < 6; i++ {
		c.Items = append(c.Items, layout.NewItem(layout.Box{Width: 40, Height: 20}))
	}

	sz := c.Measure(layout.Exact(100), layout.Exact(100))

	fmt.Println(sz)
	for _, it := range c.Items {
		fmt.Println(it.Frame().Min)
	}

	// Output:
	// (100,100)
	// (0,0)
	// (40,0)
	// (0,40)
	// (40,40)
	// (0,80)
	// (40,80)
}

func ExampleChildMeasureSpec() {
	parent := layout.Exact(300)

	fmt.Println(layout.ChildMeasureSpec(parent, 20, 100))
	fmt.Println(layout.ChildMeasureSpec(parent, 20, layout.MatchParent))
	fmt.Println(layout.ChildMeasureSpec(parent, 20, layout.WrapContent))

	// Output:
	// Exactly(100)
	// Exactly(280)
	// AtMost(280)
}
