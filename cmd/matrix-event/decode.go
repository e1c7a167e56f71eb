// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"github.com/tidwall/jsonc"

	"github.com/bureau-foundation/matrix-event/cmd/matrix-event/cli"
	"github.com/bureau-foundation/matrix-event/event"
)

// decodeParams holds the parameters for the "matrix-event decode"
// command.
type decodeParams struct {
	cli.JSONOutput
	Level string `flag:"level,l" default:"any" desc:"required capability level: any, room, or state"`
}

// decodeReport is the result of decoding one event. With --json it is
// emitted as-is; the text renderer prints the same fields.
type decodeReport struct {
	Source  string          `json:"source"`
	Valid   bool            `json:"valid"`
	Level   string          `json:"level,omitempty"`
	Type    string          `json:"type,omitempty"`
	Known   bool            `json:"known"`
	Event   json.RawMessage `json:"event,omitempty"`
	Failure string          `json:"failure,omitempty"`
	Message string          `json:"message,omitempty"`
}

func decodeCommand() *cli.Command {
	var params decodeParams

	return &cli.Command{
		Name:    "decode",
		Summary: "Decode a single event and print its canonical form",
		Description: `Read one JSON event and report what it is: its capability level
(basic, room, or state), its type, and whether that type is defined by
the Matrix specification or is an extension type carried raw. On
success the event is re-encoded in canonical form (alphabetical keys,
defaults made explicit, absent optionals omitted) and printed.

By default any event shape is accepted. With --level room the event
must carry the room fields (event_id, room_id, sender,
origin_server_ts); with --level state it must additionally carry a
state_key.

Input may contain comments and trailing commas; they are stripped
before decoding. Rejected events are classified as syntactic (the JSON
shape does not match the event schema) or semantic (the shape is fine
but an event rule is violated) and the command exits 1.`,
		Usage: "matrix-event decode [--level any|room|state] [--json] [file]",
		Examples: []cli.Example{
			{
				Description: "Decode an event file",
				Command:     "matrix-event decode event.json",
			},
			{
				Description: "Decode from stdin, requiring state fields",
				Command:     "matrix-event decode --level state < member.json",
			},
			{
				Description: "Machine-readable report",
				Command:     "matrix-event decode --json event.json",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("decode", &params)
		},
		Run: func(args []string) error {
			data, source, err := readInput(args)
			if err != nil {
				return err
			}
			return decodeEvent(data, source, os.Stdout, &params)
		},
	}
}

// decodeEvent decodes data at the requested level and writes a report
// to w (or JSON to stdout with --json). A rejected event is reported,
// not returned as an error; the command exits 1 via ExitError so main
// does not print a redundant "error:" line.
func decodeEvent(data []byte, source string, w io.Writer, params *decodeParams) error {
	report, err := buildDecodeReport(jsonc.ToJSON(data), params.Level, source)
	if err != nil {
		return err
	}

	if done, err := params.EmitJSON(report); done {
		if err != nil {
			return err
		}
		if !report.Valid {
			return &cli.ExitError{Code: 1}
		}
		return nil
	}

	if !report.Valid {
		fmt.Fprintf(w, "%s: invalid event (%s): %s\n", source, report.Failure, report.Message)
		return &cli.ExitError{Code: 1}
	}

	fmt.Fprintf(w, "level: %s\n", report.Level)
	fmt.Fprintf(w, "type:  %s", report.Type)
	if !report.Known {
		fmt.Fprint(w, " (extension type, content preserved raw)")
	}
	fmt.Fprintln(w)

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, report.Event, "", "  "); err != nil {
		return fmt.Errorf("format canonical event: %w", err)
	}
	fmt.Fprintln(w, pretty.String())
	return nil
}

// buildDecodeReport decodes data at the given level and summarizes
// the outcome. Event rejections produce a report with Valid false;
// only operational problems (an unknown level name, a re-encode
// failure) are returned as errors.
func buildDecodeReport(data []byte, level, source string) (decodeReport, error) {
	decoded, err := decodeAtLevel(level, data)
	if err != nil {
		invalid := event.AsInvalidEvent(err)
		if invalid == nil {
			return decodeReport{}, err
		}
		return decodeReport{
			Source:  source,
			Failure: invalid.Class.String(),
			Message: invalid.Message,
		}, nil
	}

	canonical, err := event.Encode(decoded)
	if err != nil {
		return decodeReport{}, fmt.Errorf("re-encode event: %w", err)
	}

	return decodeReport{
		Source: source,
		Valid:  true,
		Level:  detectLevel(decoded).String(),
		Type:   string(decoded.EventType()),
		Known:  decoded.EventType().Known(),
		Event:  canonical,
	}, nil
}

// decodeAtLevel decodes data with the heterogeneous decoder for the
// named capability level.
func decodeAtLevel(level string, data []byte) (event.AnyEvent, error) {
	switch level {
	case "", "any", "basic":
		return event.DecodeAny(data)
	case "room":
		return event.DecodeAnyRoom(data)
	case "state":
		return event.DecodeAnyState(data)
	default:
		return nil, fmt.Errorf("unknown decode level %q (want any, room, or state)", level)
	}
}

// detectLevel reports the capability level of a decoded event. The
// state check comes first: state events satisfy the room interface
// too, so the order of the cases is load-bearing.
func detectLevel(decoded event.AnyEvent) event.Level {
	switch decoded.(type) {
	case event.AnyStateEvent:
		return event.LevelState
	case event.AnyRoomEvent:
		return event.LevelRoom
	default:
		return event.LevelBasic
	}
}
