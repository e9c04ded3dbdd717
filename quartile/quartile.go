// SPDX-License-Identifier: MIT

package quartile

import "golang.org/x/exp/slices"

// Median returns Q2 of a dataset already sorted in ascending order.
//
// Algorithm:
//  1. n = len(sorted), mid = n/2.
//  2. Odd n:  median = sorted[mid].
//  3. Even n: median = (sorted[mid] + sorted[mid-1]) / 2.
//
// The average is taken in float64, so integer inputs may yield a fractional
// median ([2 3] → 2.5).
//
// Errors:
//   - ErrEmptyDataset if sorted is empty.
func Median[T Number](sorted []T) (float64, error) {
	n := len(sorted)
	if n == 0 {
		return 0, ErrEmptyDataset
	}

	mid := n / 2
	if n%2 == 0 {
		return (float64(sorted[mid]) + float64(sorted[mid-1])) / 2, nil
	}

	return float64(sorted[mid]), nil
}

// Sorted returns an ascending copy of dataset. The input is never modified.
func Sorted[T Number](dataset []T) []T {
	out := slices.Clone(dataset)
	if out == nil {
		out = []T{}
	}
	slices.Sort(out)

	return out
}

// LowerHalf returns the first n/2 elements of sorted.
// The slice is the same for odd and even n, so for odd n the median element
// is left out.
func LowerHalf[T Number](sorted []T) []T {
	mid := len(sorted) / 2
	half := make([]T, 0, mid)
	for i := 0; i < mid; i++ {
		half = append(half, sorted[i])
	}
	slices.Sort(half)

	return half
}

// UpperHalf returns the top elements of sorted mirroring LowerHalf:
// indices mid..n-1 for even n, mid+1..n-1 for odd n (median excluded).
// The half is collected from the end downwards and re-sorted ascending.
func UpperHalf[T Number](sorted []T) []T {
	n := len(sorted)
	mid := n / 2
	stop := mid
	if n%2 != 0 {
		stop = mid + 1
	}

	half := make([]T, 0, n-stop)
	for i := n - 1; i >= stop; i-- {
		half = append(half, sorted[i])
	}
	slices.Sort(half)

	return half
}

// Compute returns Q1, Q2 and Q3 of dataset using the median-of-halves method.
// dataset may be in any order; a private sorted copy is used.
//
// Errors:
//   - ErrEmptyDataset (wrapped with the failing step) when dataset is empty
//     or has a single element, since the lower half is then empty.
//
// Complexity: O(n log n) time, O(n) memory.
func Compute[T Number](dataset []T) (Quartiles, error) {
	return FromSorted(Sorted(dataset))
}

// FromSorted is Compute for data already sorted ascending. It skips the copy.
func FromSorted[T Number](sorted []T) (Quartiles, error) {
	var q Quartiles
	var err error

	if q.Q2, err = Median(sorted); err != nil {
		return Quartiles{}, quartileErrorf(opCompute, err)
	}
	if q.Q1, err = Median(LowerHalf(sorted)); err != nil {
		return Quartiles{}, quartileErrorf(opQ1, err)
	}
	if q.Q3, err = Median(UpperHalf(sorted)); err != nil {
		return Quartiles{}, quartileErrorf(opQ3, err)
	}

	return q, nil
}
