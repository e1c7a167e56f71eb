// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package jsint

import (
	"fmt"
	"strconv"
)

// MaxSafe is the largest integer JavaScript represents exactly
// (2^53 - 1). MinSafe is its negative counterpart.
const (
	MaxSafe = 1<<53 - 1
	MinSafe = -MaxSafe
)

// Int is a signed integer bounded to the JavaScript safe range
// [MinSafe, MaxSafe]. Use for values that may be negative, such as
// power levels and notification counts.
type Int int64

// NewInt validates and wraps a raw int64. Returns an error if the
// value falls outside [MinSafe, MaxSafe].
func NewInt(v int64) (Int, error) {
	if v < MinSafe || v > MaxSafe {
		return 0, fmt.Errorf("jsint: %d outside JavaScript safe-integer range", v)
	}
	return Int(v), nil
}

// MustInt is like NewInt but panics on error. Use in tests and static
// initialization where the input is known-valid.
func MustInt(v int64) Int {
	i, err := NewInt(v)
	if err != nil {
		panic(err.Error())
	}
	return i
}

// Int64 returns the value as a plain int64.
func (i Int) Int64() int64 { return int64(i) }

// String returns the decimal representation.
func (i Int) String() string { return strconv.FormatInt(int64(i), 10) }

// MarshalJSON encodes the value as a bare JSON number.
func (i Int) MarshalJSON() ([]byte, error) {
	if i < MinSafe || i > MaxSafe {
		return nil, fmt.Errorf("jsint: %d outside JavaScript safe-integer range", int64(i))
	}
	return strconv.AppendInt(nil, int64(i), 10), nil
}

// UnmarshalJSON decodes a JSON number, rejecting fractional syntax
// (1.5, 1e3) and values outside [MinSafe, MaxSafe].
func (i *Int) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	v, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("jsint: %q is not a plain integer", data)
	}
	if v < MinSafe || v > MaxSafe {
		return fmt.Errorf("jsint: %d outside JavaScript safe-integer range", v)
	}
	*i = Int(v)
	return nil
}

// UInt is an unsigned integer bounded to [0, MaxSafe]. Use for values
// the protocol defines as non-negative, such as origin_server_ts and
// duration fields.
type UInt uint64

// NewUInt validates and wraps a raw uint64. Returns an error if the
// value exceeds MaxSafe.
func NewUInt(v uint64) (UInt, error) {
	if v > MaxSafe {
		return 0, fmt.Errorf("jsint: %d exceeds JavaScript safe-integer range", v)
	}
	return UInt(v), nil
}

// MustUInt is like NewUInt but panics on error. Use in tests and
// static initialization where the input is known-valid.
func MustUInt(v uint64) UInt {
	u, err := NewUInt(v)
	if err != nil {
		panic(err.Error())
	}
	return u
}

// Uint64 returns the value as a plain uint64.
func (u UInt) Uint64() uint64 { return uint64(u) }

// Int64 returns the value as an int64. Always exact: the domain bound
// is far below the int64 maximum.
func (u UInt) Int64() int64 { return int64(u) }

// String returns the decimal representation.
func (u UInt) String() string { return strconv.FormatUint(uint64(u), 10) }

// MarshalJSON encodes the value as a bare JSON number.
func (u UInt) MarshalJSON() ([]byte, error) {
	if u > MaxSafe {
		return nil, fmt.Errorf("jsint: %d exceeds JavaScript safe-integer range", uint64(u))
	}
	return strconv.AppendUint(nil, uint64(u), 10), nil
}

// UnmarshalJSON decodes a JSON number, rejecting negatives, fractional
// syntax, and values above MaxSafe.
func (u *UInt) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	v, err := strconv.ParseUint(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("jsint: %q is not a plain non-negative integer", data)
	}
	if v > MaxSafe {
		return fmt.Errorf("jsint: %d exceeds JavaScript safe-integer range", v)
	}
	*u = UInt(v)
	return nil
}
