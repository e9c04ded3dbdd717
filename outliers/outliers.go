// SPDX-License-Identifier: MIT

package outliers

import (
	"math"

	"github.com/katalvlaran/tukey/quartile"
)

// Classify partitions dataset into its minor and major outlier-free views.
//
// Algorithm:
//  1. sorted = ascending copy of dataset (dataset itself is untouched).
//  2. Q1, Q3 = median-of-halves quartiles of sorted (package quartile).
//  3. IQR = Q3 - Q1.
//  4. inner = (Q1 - innerK·IQR, Q3 + innerK·IQR); outer likewise with outerK.
//  5. Minor = sorted values v with min(inner) < v < max(inner).
//  6. Major = sorted values v with min(outer) < v < max(outer).
//
// Both views read from sorted independently and keep its ascending order
// and multiplicity. With the default options the multipliers are 1.5 and 3.
//
// Errors:
//   - ErrEmptyDataset (wrapped) if dataset is empty or has one element.
//   - ErrNaNInf (wrapped) under WithValidateNaNInf for non-finite values.
//
// There is no partial result: on error the returned Result is zero.
//
// Complexity: O(n log n) time, O(n) memory.
func Classify[T quartile.Number](dataset []T, opts ...Option) (Result[T], error) {
	return classify(dataset, gatherOptions(opts...))
}

func classify[T quartile.Number](dataset []T, o Options) (Result[T], error) {
	if o.validateNaNInf {
		if err := validateFinite(dataset); err != nil {
			return Result[T]{}, outliersErrorf(opClassify, err)
		}
	}

	sorted := quartile.Sorted(dataset)
	q, err := quartile.FromSorted(sorted)
	if err != nil {
		return Result[T]{}, outliersErrorf(opClassify, err)
	}

	inner := InnerFences(q, o.innerK)
	outer := OuterFences(q, o.outerK)

	return Result[T]{
		Sorted:    sorted,
		Minor:     Within(sorted, inner),
		Major:     Within(sorted, outer),
		Quartiles: q,
		Inner:     inner,
		Outer:     outer,
	}, nil
}

// InnerFences returns (Q1 - k·IQR, Q3 + k·IQR); k is 1.5 for Tukey's inner fences.
func InnerFences(q quartile.Quartiles, k float64) Fences {
	return fencesAt(q, k)
}

// OuterFences returns (Q1 - k·IQR, Q3 + k·IQR); k is 3 for Tukey's outer fences.
func OuterFences(q quartile.Quartiles, k float64) Fences {
	return fencesAt(q, k)
}

func fencesAt(q quartile.Quartiles, k float64) Fences {
	iqr := q.IQR()

	return Fences{
		Lower: q.Q1 - iqr*k,
		Upper: q.Q3 + iqr*k,
	}
}

// Within returns the values of sorted that f contains, in input order.
// The result is never nil.
func Within[T quartile.Number](sorted []T, f Fences) []T {
	out := make([]T, 0, len(sorted))
	for _, v := range sorted {
		if f.Contains(float64(v)) {
			out = append(out, v)
		}
	}

	return out
}

// Outside returns the values of sorted that f does not contain, in input order.
// It is the complement of Within. The result is never nil.
func Outside[T quartile.Number](sorted []T, f Fences) []T {
	out := make([]T, 0)
	for _, v := range sorted {
		if !f.Contains(float64(v)) {
			out = append(out, v)
		}
	}

	return out
}

// validateFinite returns ErrNaNInf on the first NaN or ±Inf in dataset.
// Integer datasets always pass.
func validateFinite[T quartile.Number](dataset []T) error {
	for _, v := range dataset {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return ErrNaNInf
		}
	}

	return nil
}
