// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Matrix-event is the command line tool for working with Matrix room
// and account events. It decodes single events with full diagnostics
// (decode), checks newline-delimited event streams against an optional
// acceptance policy (validate), and packs, unpacks, and inspects
// compressed event archives (stream pack, stream unpack, stream info).
package main
