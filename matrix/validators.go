// SPDX-License-Identifier: MIT
// Package matrix: canonical validation checks shared by the engine's entry
// points. Keeping them here avoids inconsistent guard logic across files;
// all checks are pure, deterministic and allocate nothing.

package matrix

import "fmt"

// validatorErrorf wraps an underlying sentinel with the validator tag, so
// call sites stay uniform while errors.Is keeps matching.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix (wrapped) if m == nil.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
// Errors: ErrNilMatrix if nil, ErrNonSquare if not square (both wrapped).
// Complexity: O(1).
func ValidateSquare(m *Dense) error {
	// NotNil first: a fixed check sequence keeps error priority stable.
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return fmt.Errorf("ValidateSquare: %dx%d: %w", m.Rows(), m.Cols(), ErrNonSquare)
	}

	return nil
}
