// SPDX-License-Identifier: MIT

package quartile

import "golang.org/x/exp/constraints"

// Number is the set of element types a dataset may hold.
// Quartiles are always reported as float64 regardless of T.
type Number interface {
	constraints.Integer | constraints.Float
}

// Quartiles holds the three quartiles of a dataset.
//
//   - Q1 — median of the lower half.
//   - Q2 — median of the whole dataset.
//   - Q3 — median of the upper half.
type Quartiles struct {
	Q1 float64
	Q2 float64
	Q3 float64
}

// IQR returns the interquartile range Q3 - Q1.
func (q Quartiles) IQR() float64 {
	return q.Q3 - q.Q1
}
