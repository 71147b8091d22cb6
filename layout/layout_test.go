// SPDX-License-Identifier: Unlicense OR MIT

package layout_test

import (
	"math"
	"testing"

	"flexlayout.org/layout"
)

func TestChildMeasureSpec(t *testing.T) {
	tests := []struct {
		parent layout.MeasureSpec
		margin float64
		child  float64
		want   layout.MeasureSpec
	}{
		{layout.Exact(300), 20, 50, layout.Exact(50)},
		{layout.Exact(300), 20, layout.MatchParent, layout.Exact(280)},
		{layout.Exact(300), 20, layout.WrapContent, layout.UpTo(280)},
		{layout.UpTo(300), 20, 0, layout.Exact(0)},
		{layout.UpTo(300), 20, layout.MatchParent, layout.UpTo(280)},
		{layout.UpTo(300), 20, layout.WrapContent, layout.UpTo(280)},
		{layout.Unbounded(), 20, 70, layout.Exact(70)},
		{layout.Unbounded(), 20, layout.MatchParent, layout.Unbounded()},
		{layout.Unbounded(), 20, layout.WrapContent, layout.Unbounded()},
		// Margins larger than the parent leave nothing.
		{layout.Exact(10), 20, layout.MatchParent, layout.Exact(0)},
		{layout.UpTo(10), 20, layout.WrapContent, layout.UpTo(0)},
	}
	for _, test := range tests {
		got := layout.ChildMeasureSpec(test.parent, test.margin, test.child)
		if got != test.want {
			t.Errorf("ChildMeasureSpec(%v, %g, %g) = %v, want %v", test.parent, test.margin, test.child, got, test.want)
		}
	}
}

func TestResolveSize(t *testing.T) {
	tests := []struct {
		calculated float64
		spec       layout.MeasureSpec
		want       float64
	}{
		{120, layout.Exact(100), 100},
		{80, layout.Exact(100), 100},
		{120, layout.UpTo(100), 100},
		{80, layout.UpTo(100), 80},
		{120, layout.Unbounded(), 120},
	}
	for _, test := range tests {
		if got := layout.ResolveSize(test.calculated, test.spec); got != test.want {
			t.Errorf("ResolveSize(%g, %v) = %g, want %g", test.calculated, test.spec, got, test.want)
		}
	}
}

func TestSpecPanics(t *testing.T) {
	for _, size := range []float64{-1, math.NaN()} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Exact(%g) did not panic", size)
				}
			}()
			layout.Exact(size)
		}()
	}
}

func TestBox(t *testing.T) {
	b := layout.Box{Width: 40, Height: layout.WrapContent, Max: layout.Size{Height: 30}}
	if got := b.MaxWidth(); !math.IsInf(got, +1) {
		t.Errorf("MaxWidth = %g, want +Inf", got)
	}
	if got := b.MaxHeight(); got != 30 {
		t.Errorf("MaxHeight = %g, want 30", got)
	}
	got := b.Measure(layout.UpTo(20), layout.UpTo(100))
	if want := (layout.Size{Width: 20, Height: 0}); got != want {
		t.Errorf("Measure = %v, want %v", got, want)
	}
}

func TestStrings(t *testing.T) {
	tests := []struct {
		v    interface{ String() string }
		want string
	}{
		{layout.Exact(12.5), "Exactly(12.5)"},
		{layout.UpTo(3), "AtMost(3)"},
		{layout.Unbounded(), "Unspecified"},
		{layout.Vertical, "Vertical"},
		{layout.ColumnReverse, "ColumnReverse"},
		{layout.WrapReverse, "WrapReverse"},
		{layout.JustifySpaceEvenly, "SpaceEvenly"},
		{layout.AlignBaseline, "Baseline"},
		{layout.SelfAuto, "Auto"},
		{layout.ContentStretch, "Stretch"},
	}
	for _, test := range tests {
		if got := test.v.String(); got != test.want {
			t.Errorf("String() = %q, want %q", got, test.want)
		}
	}
}

func TestUnknownEnumPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Measure with an unknown direction did not panic")
		}
	}()
	c := &layout.Container{Direction: 42}
	c.Measure(layout.Exact(10), layout.Exact(10))
}
