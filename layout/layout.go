// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"fmt"
	"math"
)

// Mode is how strictly a MeasureSpec constrains a dimension.
type Mode uint8

// MeasureSpec is the space offered to a dimension. Size is
// ignored when Mode is Unspecified.
type MeasureSpec struct {
	Size float64
	Mode Mode
}

// Size is a resolved width and height.
type Size struct {
	Width, Height float64
}

// Axis is the Horizontal or Vertical direction.
type Axis uint8

const (
	// Unspecified places no bound on the dimension.
	Unspecified Mode = iota
	// Exactly requires the dimension to be exactly Size.
	Exactly
	// AtMost allows any size up to Size.
	AtMost
)

const (
	Horizontal Axis = iota
	Vertical
)

// Exact returns a spec that forces size.
func Exact(size float64) MeasureSpec {
	return spec(size, Exactly)
}

// UpTo returns a spec that allows any size up to size.
func UpTo(size float64) MeasureSpec {
	return spec(size, AtMost)
}

// Unbounded returns a spec without a bound.
func Unbounded() MeasureSpec {
	return MeasureSpec{Mode: Unspecified}
}

func spec(size float64, m Mode) MeasureSpec {
	if size < 0 || math.IsNaN(size) {
		panic(fmt.Sprintf("layout: invalid %v size %v", m, size))
	}
	return MeasureSpec{Size: size, Mode: m}
}

// ChildMeasureSpec derives the spec offered to a child from the
// parent's spec, the space already taken by margins (and earlier
// lines), and the child's requested size. A non-negative request is
// always honored exactly.
func ChildMeasureSpec(parent MeasureSpec, margin, childDimension float64) MeasureSpec {
	if childDimension >= 0 {
		return MeasureSpec{Size: childDimension, Mode: Exactly}
	}
	size := max(0, parent.Size-margin)
	switch parent.Mode {
	case Exactly:
		if childDimension == MatchParent {
			return MeasureSpec{Size: size, Mode: Exactly}
		}
		return MeasureSpec{Size: size, Mode: AtMost}
	case AtMost:
		return MeasureSpec{Size: size, Mode: AtMost}
	case Unspecified:
		return MeasureSpec{Mode: Unspecified}
	default:
		panic("unreachable")
	}
}

// ResolveSize reconciles a calculated size with the spec it must
// satisfy.
func ResolveSize(calculated float64, s MeasureSpec) float64 {
	switch s.Mode {
	case Exactly:
		return s.Size
	case AtMost:
		return min(s.Size, calculated)
	case Unspecified:
		return calculated
	default:
		panic("unreachable")
	}
}

// clamp limits v to [lo, hi]. The lower bound wins when the bounds
// cross.
func clamp(v, lo, hi float64) float64 {
	return max(min(v, hi), lo)
}

func (m Mode) String() string {
	switch m {
	case Unspecified:
		return "Unspecified"
	case Exactly:
		return "Exactly"
	case AtMost:
		return "AtMost"
	default:
		panic("unreachable")
	}
}

func (s MeasureSpec) String() string {
	if s.Mode == Unspecified {
		return "Unspecified"
	}
	return fmt.Sprintf("%v(%g)", s.Mode, s.Size)
}

func (s Size) String() string {
	return fmt.Sprintf("(%g,%g)", s.Width, s.Height)
}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		panic("unreachable")
	}
}
