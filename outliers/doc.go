// SPDX-License-Identifier: MIT
// Package outliers classifies a numeric dataset against Tukey's IQR fences.
//
// What are Tukey's fences?
//
//	With Q1/Q3 from the median-of-halves method (package quartile) and
//	IQR = Q3 - Q1:
//	  inner fences = (Q1 - 1.5·IQR, Q3 + 1.5·IQR)  → bounds for minor (mild) outliers
//	  outer fences = (Q1 - 3·IQR,   Q3 + 3·IQR)    → bounds for major (extreme) outliers
//
//	Classify returns two views of the sorted dataset:
//	  Minor — values strictly inside the inner fences,
//	  Major — values strictly inside the outer fences.
//	A value exactly on a fence is excluded. Both views are taken from the same
//	sorted source independently; Major is never derived from Minor.
//
// Usage:
//
//	import "github.com/katalvlaran/tukey/outliers"
//
//	res, err := outliers.Classify([]float64{10, 12, 11, 13, 9, 100})
//	if err != nil {
//	  // errors.Is(err, outliers.ErrEmptyDataset) for len < 2
//	}
//	fmt.Println(res.Minor) // [9 10 11 12 13]
//	fmt.Println(res.Major) // [9 10 11 12 13]
//
// Options (functional, see options.go):
//
//	outliers.Classify(data,
//	  outliers.WithInnerK(1.5),         // default
//	  outliers.WithOuterK(3),           // default
//	  outliers.WithValidateNaNInf(),    // reject NaN/±Inf instead of silently dropping NaN
//	)
//
// Concurrency:
//
//	Classify is a pure function and safe for concurrent use. Filter keeps a
//	dataset between calls and must not be mutated concurrently.
//
// Performance:
//
//   - Time:   O(n log n) (one sort, two linear filters)
//   - Memory: O(n)
package outliers
