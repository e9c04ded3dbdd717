// SPDX-License-Identifier: MIT

package outliers

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tukey/quartile"
)

var (
	// ErrEmptyDataset is the quartile sentinel, re-exported so callers of this
	// package need not import quartile to match it with errors.Is.
	ErrEmptyDataset = quartile.ErrEmptyDataset

	// ErrNaNInf is returned under WithValidateNaNInf when the dataset holds a
	// NaN or ±Inf value.
	ErrNaNInf = errors.New("outliers: NaN or Inf encountered")
)

// Operation tags used when wrapping sentinels.
const (
	opClassify        = "Classify"
	opFilteredDataset = "FilteredDataset"
)

// Panic messages for invalid option values (programmer error).
const (
	panicInnerKInvalid = "outliers: WithInnerK requires a finite k >= 0"
	panicOuterKInvalid = "outliers: WithOuterK requires a finite k >= 0"
)

func outliersErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
