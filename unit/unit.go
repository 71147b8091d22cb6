// SPDX-License-Identifier: Unlicense OR MIT

/*
Package unit implements device independent units and values.

Device independent pixel, or dp, is the unit for sizes independent of
the underlying display device.

Scaled pixels, or sp, is the unit for text sizes. An sp is like dp with
text scaling applied.

Finally, pixels, or px, is the unit the layout solver works in. A
Metric converts dp and sp values to px for a particular display.
*/
package unit

import (
	"fmt"
	"strconv"
	"strings"
)

// Metric converts Values to device pixels.
type Metric struct {
	// PxPerDp is the device pixels per dp.
	PxPerDp float64
	// PxPerSp is the device pixels per sp.
	PxPerSp float64
}

type (
	// Dp represents device independent pixels. 1 dp will
	// have the same apparent size across platforms and
	// display resolutions.
	Dp float64
	// Sp is like Dp but for font sizes.
	Sp float64
)

// Value is a length with a unit, as written in scene files.
type Value struct {
	V float64
	U Unit
}

// Unit represents a unit for a Value.
type Unit uint8

const (
	// UnitPx represent device pixels.
	UnitPx Unit = iota
	UnitDp
	UnitSp
)

// Dp converts v to pixels.
func (c Metric) Dp(v Dp) float64 {
	return float64(v) * nonZero(c.PxPerDp)
}

// Sp converts v to pixels.
func (c Metric) Sp(v Sp) float64 {
	return float64(v) * nonZero(c.PxPerSp)
}

// DpToSp converts v dp to sp.
func (c Metric) DpToSp(v Dp) Sp {
	return Sp(float64(v) * nonZero(c.PxPerDp) / nonZero(c.PxPerSp))
}

// SpToDp converts v sp to dp.
func (c Metric) SpToDp(v Sp) Dp {
	return Dp(float64(v) * nonZero(c.PxPerSp) / nonZero(c.PxPerDp))
}

// PxToSp converts v px to sp.
func (c Metric) PxToSp(v float64) Sp {
	return Sp(v / nonZero(c.PxPerSp))
}

// PxToDp converts v px to dp.
func (c Metric) PxToDp(v float64) Dp {
	return Dp(v / nonZero(c.PxPerDp))
}

// Px converts v to pixels. Sizes without content, such as the
// negative layout sentinels, are passed through unscaled.
func (c Metric) Px(v Value) float64 {
	if v.V < 0 {
		return v.V
	}
	switch v.U {
	case UnitPx:
		return v.V
	case UnitDp:
		return c.Dp(Dp(v.V))
	case UnitSp:
		return c.Sp(Sp(v.V))
	default:
		panic("unknown unit")
	}
}

// Parse parses a number with an optional px, dp or sp suffix.
// Numbers without a suffix are dp.
func Parse(s string) (Value, error) {
	s = strings.TrimSpace(s)
	v := Value{U: UnitDp}
	for _, u := range []Unit{UnitPx, UnitDp, UnitSp} {
		if strings.HasSuffix(s, u.String()) {
			s = strings.TrimSpace(strings.TrimSuffix(s, u.String()))
			v.U = u
			break
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Value{}, fmt.Errorf("unit: invalid value %q: %w", s, err)
	}
	v.V = f
	return v, nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Value) UnmarshalText(text []byte) error {
	p, err := Parse(string(text))
	if err != nil {
		return err
	}
	*v = p
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (v Value) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v Value) String() string {
	return fmt.Sprintf("%g%s", v.V, v.U)
}

func (u Unit) String() string {
	switch u {
	case UnitPx:
		return "px"
	case UnitDp:
		return "dp"
	case UnitSp:
		return "sp"
	default:
		panic("unknown unit")
	}
}

func nonZero(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}
