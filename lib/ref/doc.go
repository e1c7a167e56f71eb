// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package ref provides strongly typed, immutable Matrix identifiers:
// user IDs, room IDs, room aliases, event IDs, server names, and
// device IDs.
//
// Each identifier is a validated value type. Constructors check the
// structural format defined by the Matrix specification (sigil prefix,
// localpart, ':server' suffix where the grammar requires one) and
// reject malformed input at the boundary; once constructed, a value is
// immutable. Validation is structural only: localpart character
// restrictions are not enforced, because identifiers arriving in
// federated events may predate the current grammar.
//
// The zero value of every type means "not present". Use IsZero to
// check. JSON serialization goes through encoding.TextMarshaler and
// encoding.TextUnmarshaler, so a malformed identifier inside a JSON
// document fails during structural decoding rather than surviving as
// an unchecked string.
package ref
