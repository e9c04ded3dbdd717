// SPDX-License-Identifier: MIT

package outliers

import (
	"math"

	"github.com/katalvlaran/tukey/quartile"
)

// Fences is a (Lower, Upper) bound pair.
//
// Lower <= Upper holds for the default multipliers, but inclusion tests go
// through Min and Max so that any pair behaves the same regardless of order.
type Fences struct {
	Lower float64
	Upper float64
}

// Min returns the smaller bound.
func (f Fences) Min() float64 { return math.Min(f.Lower, f.Upper) }

// Max returns the larger bound.
func (f Fences) Max() float64 { return math.Max(f.Lower, f.Upper) }

// Contains reports whether v lies strictly between the bounds.
// A value equal to either bound is outside.
func (f Fences) Contains(v float64) bool {
	return v > f.Min() && v < f.Max()
}

// Result is the outcome of Classify.
//
//   - Sorted    — ascending copy of the input, the source of both views.
//   - Minor     — Sorted values strictly inside Inner.
//   - Major     — Sorted values strictly inside Outer.
//   - Quartiles — Q1/Q2/Q3 the fences were built from.
//   - Inner     — (Q1 - innerK·IQR, Q3 + innerK·IQR).
//   - Outer     — (Q1 - outerK·IQR, Q3 + outerK·IQR).
//
// Minor and Major are ascending, keep duplicates, and are never nil.
type Result[T quartile.Number] struct {
	Sorted    []T
	Minor     []T
	Major     []T
	Quartiles quartile.Quartiles
	Inner     Fences
	Outer     Fences
}

// MinorOutliers returns the sorted values outside the inner fences,
// i.e. everything Minor dropped.
func (r Result[T]) MinorOutliers() []T {
	return Outside(r.Sorted, r.Inner)
}

// MajorOutliers returns the sorted values outside the outer fences,
// i.e. everything Major dropped.
func (r Result[T]) MajorOutliers() []T {
	return Outside(r.Sorted, r.Outer)
}
