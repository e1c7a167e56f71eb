// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli is the command framework for the matrix-event tool: a
// dispatch tree of [Command] values with pflag flag parsing, struct
// tag driven flag binding, --json output support, and structured
// logging that adapts to whether stderr is a terminal.
package cli
