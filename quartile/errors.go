// SPDX-License-Identifier: MIT

package quartile

import (
	"errors"
	"fmt"
)

// ErrEmptyDataset is returned whenever a median is requested over zero
// elements: an empty dataset, or an empty half derived from it (n == 1).
var ErrEmptyDataset = errors.New("quartile: dataset must be non-empty")

// Operation tags used when wrapping sentinels.
const (
	opCompute = "Compute"
	opQ1      = "Q1"
	opQ3      = "Q3"
)

// quartileErrorf prefixes err with the failing operation, keeping errors.Is intact.
func quartileErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
