// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package radix

import (
	"errors"
	"fmt"
	"strconv"
)

// InvalidNumberError is returned if a value can not be parsed as non-negative
// decimal integer.
type InvalidNumberError struct {
	Input string
	Err   error
}

func (e *InvalidNumberError) Error() string {
	return fmt.Sprintf("invalid number %q: %v", e.Input, e.Err)
}

func (e *InvalidNumberError) Is(other error) bool {
	_, ok := other.(*InvalidNumberError)
	return ok
}

func (e *InvalidNumberError) Unwrap() error {
	return e.Err
}

// ParseDecimal parses s as base-10 non-negative integer.
//
// The returned error is always an [*InvalidNumberError] that wraps the
// [strconv.NumError] cause, so [strconv.ErrSyntax] and [strconv.ErrRange] can
// be checked with [errors.Is].
func ParseDecimal(s string) (uint64, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}

		return 0, &InvalidNumberError{Input: s, Err: err}
	}

	return n, nil
}
