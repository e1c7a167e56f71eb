// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/bureau-foundation/matrix-event/cmd/matrix-event/cli"
	"github.com/bureau-foundation/matrix-event/lib/version"
)

// rootCommand builds the complete matrix-event command tree.
func rootCommand() *cli.Command {
	return &cli.Command{
		Name:    "matrix-event",
		Summary: "Decode, validate, and archive Matrix events",
		Description: `Tools for working with Matrix room and account events.

Events are tagged JSON: a "type" discriminant selects the content
schema, and room events carry routing fields (event_id, room_id,
sender, origin_server_ts) around the content. The decoder accepts
any event type, preserves unknown types raw, and distinguishes
malformed JSON shape (syntactic) from well-formed JSON that violates
an event rule (semantic).`,
		Subcommands: []*cli.Command{
			decodeCommand(),
			validateCommand(),
			streamCommand(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(args []string) error {
					fmt.Printf("matrix-event %s\n", version.Full())
					return nil
				},
			},
		},
		Examples: []cli.Example{
			{
				Description: "Decode one event and print its canonical form",
				Command:     "matrix-event decode event.json",
			},
			{
				Description: "Require the event to carry room fields",
				Command:     "matrix-event decode --level room event.json",
			},
			{
				Description: "Validate a newline-delimited event dump",
				Command:     "matrix-event validate events.ndjson",
			},
			{
				Description: "Validate against an acceptance policy",
				Command:     "matrix-event validate --policy policy.yaml events.ndjson",
			},
			{
				Description: "Pack an event dump into a compressed archive",
				Command:     "matrix-event stream pack events.ndjson -o events.mxev",
			},
			{
				Description: "Inspect archive blocks without unpacking",
				Command:     "matrix-event stream info events.mxev",
			},
		},
	}
}
