// SPDX-License-Identifier: MIT
// Package quartile computes the median and the Q1/Q3 quartiles of a numeric
// dataset using the median-of-halves method (Tukey / Moore & McCabe).
//
// What is the median-of-halves method?
//
//	Sort the data, split it at the median, and take the median of each half.
//	For an odd count the median element belongs to neither half:
//
//	  [1 2 3 4 5 6 7]  → lower=[1 2 3]  upper=[5 6 7]  → Q1=2 Q3=6
//	  [1 2 3 4 5 6]    → lower=[1 2 3]  upper=[4 5 6]  → Q1=2 Q3=5
//
// This is NOT the linear-interpolation percentile used by most statistics
// packages; the two disagree on small and even-sized datasets, which moves
// the IQR fences built on top of it (see package outliers).
//
// Usage:
//
//	import "github.com/katalvlaran/tukey/quartile"
//
//	q, err := quartile.Compute([]int{1, 2, 2, 3, 4, 5, 6, 7, 8, 9, 10, 50})
//	if err != nil {
//	  // only quartile.ErrEmptyDataset is possible
//	}
//	fmt.Println(q.Q1, q.Q3, q.IQR()) // 2.5 8.5 6
//
// Performance:
//
//   - Time:   O(n log n), dominated by sorting a private copy
//   - Memory: O(n)
package quartile
