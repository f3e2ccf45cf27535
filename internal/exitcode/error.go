// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package exitcode

import (
	"errors"
	"fmt"
)

const (
	// OK is returned if the number was converted and printed.
	OK = 0
	// Failure is returned for any error without a dedicated code, like
	// numbers that can not be parsed.
	Failure = 1
	// Usage is returned if the command line is incomplete or malformed.
	Usage = 2
)

// Error is an exit code that is considered an error.
type Error int

func (e Error) Error() string {
	return fmt.Sprintf("exit code %d", e)
}

func (Error) Is(other error) bool {
	_, ok := other.(Error)
	return ok
}

// Code returns the exit code as basic int type.
func (e Error) Code() int {
	return int(e)
}

// From returns the exit code for the given error.
//
// If the error is nil, the exit code is [OK]. If the error chain contains an
// [Error] the exit code is the return value of [Error.Code]. Otherwise the
// exit code is [Failure].
func From(err error) int {
	if err == nil {
		return OK
	}

	var exitErr Error
	if errors.As(err, &exitErr) {
		return exitErr.Code()
	}

	return Failure
}
