// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package radix converts non-negative integers into their base-2 positional
// representation.
//
// Two algorithms are provided. [Format] uses repeated division and is the
// default. [FormatByPowers] finds the highest power of two first and walks
// down from there. Both produce identical results for every input, including
// zero which is represented as "0".
package radix
