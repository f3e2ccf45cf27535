// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package radix

import "strconv"

// Base is the radix of all representations produced by this package.
const Base = 2

// maxDigits is the number of base-2 digits of the largest uint64.
const maxDigits = 64

// Format returns the base-2 representation of n, most significant digit
// first.
//
// The digits are collected as remainders of repeated division by [Base]. They
// are written back to front, so no separate reversal is needed.
func Format(n uint64) string {
	if n == 0 {
		return "0"
	}

	var buf [maxDigits]byte

	pos := len(buf)
	for n > 0 {
		pos--
		buf[pos] = digit(n % Base)
		n /= Base
	}

	return string(buf[pos:])
}

// FormatByPowers returns the base-2 representation of n, most significant
// digit first.
//
// It first searches the highest power of [Base] that does not exceed n and
// then emits one digit per power down to 1.
func FormatByPowers(n uint64) string {
	// Comparing against n / Base keeps the power from overflowing for values
	// beyond 1<<63.
	power := uint64(1)
	for power <= n/Base {
		power *= Base
	}

	buf := make([]byte, 0, maxDigits)

	for ; power > 0; power /= Base {
		d := n / power
		n -= d * power
		buf = append(buf, digit(d))
	}

	return string(buf)
}

// Header returns the line printed ahead of the representation of n.
func Header(n uint64) string {
	return strconv.FormatUint(n, 10) + " -> base" + strconv.Itoa(Base)
}

func digit(d uint64) byte {
	return '0' + byte(d)
}
