// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the standard CBOR encoding configuration.
//
// The module uses two serialization formats with a clear boundary:
//
//   - JSON for the event wire format itself: Matrix events are JSON
//     objects, and package event decodes and re-encodes them as such.
//   - CBOR for container framing: the block headers of the stream
//     archive format, where deterministic bytes matter.
//
// This package provides the shared CBOR encoding and decoding modes so
// that every consumer encodes identically without duplicating
// configuration. The encoder uses Core Deterministic Encoding (RFC 8949
// §4.2): sorted map keys, smallest integer encoding, no
// indefinite-length items. Same logical data always produces identical
// bytes, which keeps stream archives reproducible.
//
//	data, err := codec.Marshal(value)
//	err = codec.Unmarshal(data, &value)
//
// Types carried in CBOR here reuse their `json` struct tags:
// fxamacker/cbor v2 reads `json` tags when `cbor` tags are absent, so
// a single tag controls field naming for both formats.
package codec
