// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package jsint provides integer types restricted to the range that
// JavaScript can represent exactly: Int covers ±(2^53 - 1) and UInt
// covers 0..2^53 - 1.
//
// Matrix exchanges events with clients that parse JSON numbers as IEEE
// 754 doubles, so the protocol never puts a value outside this range
// on the wire. Decoding enforces the domain: a fractional, negative
// (for UInt), or out-of-range number is rejected at parse time rather
// than silently truncated.
package jsint
