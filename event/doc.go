// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package event implements the Matrix event model: a typed codec for
// the JSON events exchanged by Matrix clients and servers.
//
// Every event is a JSON object carrying a "type" discriminant. The
// package maintains a closed registry of the event types defined by
// the Matrix specification (Type constants, Type.Known) and decodes
// each one into a strongly typed record; unrecognized discriminants
// decode into custom catch-all records that preserve the type string
// and content verbatim.
//
// Events come in three capability levels, expressed as nested
// interfaces: Event (content and type), RoomEvent (adds event ID,
// timestamp, optional room ID, sender, optional unsigned data), and
// StateEvent (adds state key and optional previous content). The
// generic envelopes Basic, Room, and State carry a typed content
// payload at each level; per-type aliases (MemberEvent, MessageEvent,
// DummyEvent, ...) name the concrete records.
//
// Decoding is two-phase. Phase 1 parses the wire JSON structurally:
// field types, required keys, identifier formats, and integer domains
// are checked here. Phase 2 validates and lowers the parsed value into
// its public shape: enum values, content discriminants such as the
// encryption algorithm, and representation changes such as the
// ignored-user map becoming a list. Failures of either phase are
// reported as *InvalidEventError, which distinguishes the two classes
// and preserves the offending value for inspection.
//
// The heterogeneous collections AnyEvent, AnyRoomEvent, and
// AnyStateEvent are sealed interfaces holding exactly one decoded
// event of the matching level. DecodeAny, DecodeAnyRoom, and
// DecodeAnyState dispatch on the discriminant, reject events whose
// level does not fit the requested collection, and route unknown
// discriminants to the custom catch-alls.
//
// The package performs no I/O and never caches decoded values; it is
// safe for concurrent use.
package event
