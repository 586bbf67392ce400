// SPDX-License-Identifier: MIT

package chart

import (
	"errors"
	"fmt"
)

// ErrDataIntegrity is returned when a reference table violates a shape,
// ordering, finiteness or monotonicity invariant. The wrapped cause is a
// matrix sentinel (matrix.ErrBadShape, matrix.ErrNotMonotone, ...), so both
// errors.Is(err, ErrDataIntegrity) and errors.Is(err, matrix.ErrX) hold.
var ErrDataIntegrity = errors.New("chart: data integrity violation")

// integrityErrorf tags a validation failure with ErrDataIntegrity and the
// check that failed.
func integrityErrorf(check string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrDataIntegrity, check, err)
}
