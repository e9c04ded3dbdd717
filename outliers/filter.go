// SPDX-License-Identifier: MIT

package outliers

import (
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/tukey/quartile"
)

// Filter holds a dataset and its options between calls.
//
// It is a convenience around Classify for callers that load data once and
// query it later. Every FilteredDataset call recomputes quartiles and fences
// from scratch; nothing derived is cached.
//
// A Filter is not safe for concurrent use while SetDataset may be called.
type Filter[T quartile.Number] struct {
	dataset []T
	opts    Options
}

// NewFilter returns an empty Filter configured with opts.
func NewFilter[T quartile.Number](opts ...Option) *Filter[T] {
	return &Filter[T]{opts: gatherOptions(opts...)}
}

// SetDataset replaces the held dataset with a copy of dataset.
func (f *Filter[T]) SetDataset(dataset []T) {
	f.dataset = slices.Clone(dataset)
}

// Dataset returns a copy of the held dataset in its original order.
func (f *Filter[T]) Dataset() []T {
	return slices.Clone(f.dataset)
}

// Options returns the effective configuration.
func (f *Filter[T]) Options() Options {
	return f.opts
}

// FilteredDataset classifies the held dataset. See Classify.
//
// Errors:
//   - ErrEmptyDataset (wrapped) if no dataset was set, or it has < 2 values.
//   - ErrNaNInf (wrapped) under WithValidateNaNInf.
func (f *Filter[T]) FilteredDataset() (Result[T], error) {
	res, err := classify(f.dataset, f.opts)
	if err != nil {
		return Result[T]{}, outliersErrorf(opFilteredDataset, err)
	}

	return res, nil
}
