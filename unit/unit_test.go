// SPDX-License-Identifier: Unlicense OR MIT

package unit_test

import (
	"testing"

	"flexlayout.org/unit"
)

func TestMetric_DpToSp(t *testing.T) {
	m := unit.Metric{
		PxPerDp: 2,
		PxPerSp: 3,
	}

	{
		exp := m.Dp(5)
		got := m.Sp(m.DpToSp(5))
		if got != exp {
			t.Errorf("DpToSp conversion mismatch %v != %v", exp, got)
		}
	}

	{
		exp := m.Sp(5)
		got := m.Dp(m.SpToDp(5))
		if got != exp {
			t.Errorf("SpToDp conversion mismatch %v != %v", exp, got)
		}
	}

	{
		exp := unit.Dp(5)
		got := m.PxToDp(m.Dp(5))
		if got != exp {
			t.Errorf("PxToDp conversion mismatch %v != %v", exp, got)
		}
	}

	{
		exp := unit.Sp(5)
		got := m.PxToSp(m.Sp(5))
		if got != exp {
			t.Errorf("PxToSp conversion mismatch %v != %v", exp, got)
		}
	}
}

func TestZeroMetric(t *testing.T) {
	var m unit.Metric
	if got := m.Dp(7); got != 7 {
		t.Errorf("zero metric: 7dp = %vpx, want 7", got)
	}
}

func TestParse(t *testing.T) {
	m := unit.Metric{PxPerDp: 2, PxPerSp: 3}
	tests := []struct {
		in   string
		want unit.Value
		px   float64
	}{
		{"12", unit.Value{V: 12, U: unit.UnitDp}, 24},
		{"12dp", unit.Value{V: 12, U: unit.UnitDp}, 24},
		{" 1.5 px", unit.Value{V: 1.5, U: unit.UnitPx}, 1.5},
		{"4sp", unit.Value{V: 4, U: unit.UnitSp}, 12},
		{"-2", unit.Value{V: -2, U: unit.UnitDp}, -2},
	}
	for _, test := range tests {
		got, err := unit.Parse(test.in)
		if err != nil {
			t.Errorf("Parse(%q): %v", test.in, err)
			continue
		}
		if got != test.want {
			t.Errorf("Parse(%q) = %v, want %v", test.in, got, test.want)
		}
		if px := m.Px(got); px != test.px {
			t.Errorf("Px(%v) = %v, want %v", got, px, test.px)
		}
	}
	if _, err := unit.Parse("wide"); err == nil {
		t.Error("Parse(\"wide\") succeeded")
	}
}
