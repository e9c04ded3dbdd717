// Package tukey is a small, dependency-light toolkit for spotting outliers in
// numeric datasets with Tukey's interquartile-range fences.
//
// What is in the box?
//
//	• Quartiles: median and Q1/Q3 via the median-of-halves method
//	• Fences:    inner (1.5·IQR) and outer (3·IQR) bounds around Q1..Q3
//	• Filtering: the dataset split into minor- and major-outlier-free views
//
// Why median-of-halves?
//
//	It is the method taught with box plots: split the sorted data at the
//	median and take the median of each half. Linear-interpolation
//	percentiles give different quartiles on small or even-sized data, and
//	therefore different fences; this module never uses them.
//
// Under the hood:
//
//	quartile/ — Median, LowerHalf/UpperHalf, Compute (Q1, Q2, Q3, IQR)
//	outliers/ — Fences, Classify, functional options, Filter
//	examples/ — runnable walkthrough over sensor readings
//
// Quick example:
//
//	data: 9 10 11 12 13 100
//	Q1=10 Q3=13 IQR=3
//	inner fences (5.5, 17.5)   → 100 is a minor outlier
//	outer fences (1, 22)       → 100 is a major outlier
//
//	go get github.com/katalvlaran/tukey
package tukey
