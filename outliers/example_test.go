// SPDX-License-Identifier: MIT

package outliers_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tukey/outliers"
)

// ExampleClassify drops one extreme value from a small, unsorted set.
func ExampleClassify() {
	res, err := outliers.Classify([]float64{10, 12, 11, 13, 9, 100})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("inner=%v outer=%v\n", res.Inner, res.Outer)
	fmt.Println("minor:", res.Minor)
	fmt.Println("major:", res.Major)
	// Output:
	// inner={5.5 17.5} outer={1 22}
	// minor: [9 10 11 12 13]
	// major: [9 10 11 12 13]
}

// ExampleClassify_mild shows a mild outlier: outside the inner fences but
// inside the outer ones.
func ExampleClassify_mild() {
	res, _ := outliers.Classify([]int{1, 2, 3, 4, 5, 6, 7, 15})
	fmt.Println("minor:", res.Minor, "dropped:", res.MinorOutliers())
	fmt.Println("major:", res.Major, "dropped:", res.MajorOutliers())
	// Output:
	// minor: [1 2 3 4 5 6 7] dropped: [15]
	// major: [1 2 3 4 5 6 7 15] dropped: []
}

// ExampleClassify_empty shows the failure mode.
func ExampleClassify_empty() {
	_, err := outliers.Classify([]float64{})
	fmt.Println(errors.Is(err, outliers.ErrEmptyDataset))
	fmt.Println(err)
	// Output:
	// true
	// Classify: Compute: quartile: dataset must be non-empty
}

// ExampleFilter loads a dataset once and classifies it later.
func ExampleFilter() {
	f := outliers.NewFilter[float64](outliers.WithInnerK(1.5), outliers.WithOuterK(3))
	f.SetDataset([]float64{1, 2, 2, 3, 4, 5, 6, 7, 8, 9, 10, 50})

	res, err := f.FilteredDataset()
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(res.Quartiles.Q1, res.Quartiles.Q3, res.Quartiles.IQR())
	fmt.Println(res.Minor)
	// Output:
	// 2.5 8.5 6
	// [1 2 2 3 4 5 6 7 8 9 10]
}
