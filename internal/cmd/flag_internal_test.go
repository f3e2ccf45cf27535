// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"io"
	"math"
	"strconv"
	"testing"

	"github.com/aibor/base2/internal/radix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlags_ParseArgs(t *testing.T) {
	tests := []struct {
		name          string
		args          []string
		expectedFlags *flags
		expectedErr   error
	}{
		{
			name:        "help",
			args:        []string{"-help"},
			expectedErr: ErrHelp,
		},
		{
			name:        "version",
			args:        []string{"-version"},
			expectedErr: ErrHelp,
		},
		{
			name:        "no number",
			args:        []string{"-debug"},
			expectedErr: ErrMissingNumber,
		},
		{
			name:        "too many numbers",
			args:        []string{"4", "2"},
			expectedErr: &ParseArgsError{},
		},
		{
			name:        "unknown method",
			args:        []string{"-method=bits", "4"},
			expectedErr: &ParseArgsError{},
		},
		{
			name:        "negative number is parsed as flag",
			args:        []string{"-5"},
			expectedErr: &ParseArgsError{},
		},
		{
			name:        "negative number after terminator",
			args:        []string{"--", "-5"},
			expectedErr: strconv.ErrSyntax,
		},
		{
			name:        "not a number",
			args:        []string{"abc"},
			expectedErr: &radix.InvalidNumberError{},
		},
		{
			name:        "number out of range",
			args:        []string{"18446744073709551616"},
			expectedErr: strconv.ErrRange,
		},
		{
			name: "number only",
			args: []string{"42"},
			expectedFlags: &flags{
				Number: 42,
				Method: radix.MethodDivision,
			},
		},
		{
			name: "max number",
			args: []string{"18446744073709551615"},
			expectedFlags: &flags{
				Number: math.MaxUint64,
				Method: radix.MethodDivision,
			},
		},
		{
			name: "all flags",
			args: []string{"-method", "powers", "-debug", "5"},
			expectedFlags: &flags{
				Number: 5,
				Method: radix.MethodPowers,
				Debug:  true,
			},
		},
		{
			name: "later flags win",
			args: []string{"-method=powers", "-method=division", "5"},
			expectedFlags: &flags{
				Number: 5,
				Method: radix.MethodDivision,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := parseArgs(tt.args, io.Discard)
			require.ErrorIs(t, err, tt.expectedErr)

			if tt.expectedFlags == nil {
				assert.Nil(t, actual)
				return
			}

			// Ignore flag set for comparison.
			actual.flagSet = nil
			assert.Equal(t, tt.expectedFlags, actual)
		})
	}
}
