// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package radix

import (
	"errors"
	"slices"
)

// ErrMethodInvalid is returned for unknown conversion method names.
var ErrMethodInvalid = errors.New("unknown conversion method")

const (
	// MethodDivision collects remainders of repeated division. See [Format].
	MethodDivision Method = "division"
	// MethodPowers walks down from the highest power of the base. See
	// [FormatByPowers].
	MethodPowers Method = "powers"
)

// Method selects the conversion algorithm.
type Method string

// Methods returns all known conversion methods.
func Methods() []Method {
	return []Method{
		MethodDivision,
		MethodPowers,
	}
}

func (m *Method) isKnown() bool {
	return slices.Contains(Methods(), *m)
}

// String implements [fmt.Stringer].
func (m *Method) String() string {
	if !m.isKnown() {
		return ""
	}

	return string(*m)
}

// MarshalText implements [encoding.TextMarshaler].
func (m Method) MarshalText() ([]byte, error) {
	s := m.String()
	if s == "" {
		return nil, ErrMethodInvalid
	}

	return []byte(s), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (m *Method) UnmarshalText(text []byte) error {
	method := Method(text)

	if !method.isKnown() {
		return ErrMethodInvalid
	}

	*m = method

	return nil
}

// Format returns the base-2 representation of n using the algorithm m
// names. Unknown methods return [ErrMethodInvalid].
func (m Method) Format(n uint64) (string, error) {
	switch m {
	case MethodDivision:
		return Format(n), nil
	case MethodPowers:
		return FormatByPowers(n), nil
	default:
		return "", ErrMethodInvalid
	}
}
