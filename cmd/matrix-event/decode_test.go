// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/bureau-foundation/matrix-event/cmd/matrix-event/cli"
)

const memberLine = `{"content":{"membership":"join"},"event_id":"$mem:x.y","origin_server_ts":3,"room_id":"!beta:x.y","sender":"@bob:x.y","state_key":"@bob:x.y","type":"m.room.member"}`

func TestBuildDecodeReport(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		level     string
		wantLevel string
		wantType  string
		wantKnown bool
	}{
		{
			name:      "state event",
			input:     memberLine,
			level:     "any",
			wantLevel: "state",
			wantType:  "m.room.member",
			wantKnown: true,
		},
		{
			name:      "basic event",
			input:     `{"content":{},"type":"m.dummy"}`,
			level:     "any",
			wantLevel: "basic",
			wantType:  "m.dummy",
			wantKnown: true,
		},
		{
			name:      "extension type",
			input:     `{"content":{"answer":42},"type":"io.example.custom"}`,
			level:     "any",
			wantLevel: "basic",
			wantType:  "io.example.custom",
			wantKnown: false,
		},
		{
			name:      "state event at state level",
			input:     memberLine,
			level:     "state",
			wantLevel: "state",
			wantType:  "m.room.member",
			wantKnown: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := buildDecodeReport([]byte(tt.input), tt.level, "test.json")
			if err != nil {
				t.Fatalf("buildDecodeReport: %v", err)
			}
			if !report.Valid {
				t.Fatalf("report invalid: %s: %s", report.Failure, report.Message)
			}
			if report.Level != tt.wantLevel {
				t.Errorf("Level = %q, want %q", report.Level, tt.wantLevel)
			}
			if report.Type != tt.wantType {
				t.Errorf("Type = %q, want %q", report.Type, tt.wantType)
			}
			if report.Known != tt.wantKnown {
				t.Errorf("Known = %v, want %v", report.Known, tt.wantKnown)
			}
			if string(report.Event) != tt.input {
				t.Errorf("Event = %s, want canonical input back", report.Event)
			}
		})
	}
}

func TestBuildDecodeReportRejections(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		level       string
		wantFailure string
	}{
		{
			name:        "type is not a string",
			input:       `{"content":{},"type":5}`,
			level:       "any",
			wantFailure: "semantic",
		},
		{
			name:        "truncated json",
			input:       `{"content":{`,
			level:       "any",
			wantFailure: "syntactic",
		},
		{
			name:        "encrypted without algorithm",
			input:       `{"content":{"ciphertext":"AwgAEnACgAkLmt6qF84IK"},"event_id":"$enc:x.y","origin_server_ts":7,"room_id":"!beta:x.y","sender":"@bob:x.y","type":"m.room.encrypted"}`,
			level:       "any",
			wantFailure: "semantic",
		},
		{
			name:        "basic event at room level",
			input:       `{"content":{},"type":"m.dummy"}`,
			level:       "room",
			wantFailure: "semantic",
		},
		{
			name:        "extension event without room fields at room level",
			input:       `{"content":{"answer":42},"type":"io.example.custom"}`,
			level:       "room",
			wantFailure: "syntactic",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := buildDecodeReport([]byte(tt.input), tt.level, "test.json")
			if err != nil {
				t.Fatalf("buildDecodeReport: %v", err)
			}
			if report.Valid {
				t.Fatal("report valid, want rejection")
			}
			if report.Failure != tt.wantFailure {
				t.Errorf("Failure = %q, want %q", report.Failure, tt.wantFailure)
			}
			if report.Message == "" {
				t.Error("Message is empty")
			}
		})
	}
}

func TestBuildDecodeReportUnknownLevel(t *testing.T) {
	_, err := buildDecodeReport([]byte(`{"content":{},"type":"m.dummy"}`), "huge", "test.json")
	if err == nil {
		t.Fatal("expected error for unknown level")
	}
	if !strings.Contains(err.Error(), "huge") {
		t.Errorf("error = %q, want the bad level named", err)
	}
}

func TestDecodeEventTextOutput(t *testing.T) {
	var out bytes.Buffer
	params := &decodeParams{Level: "any"}
	input := "// exported from the ops room\n" + memberLine + "\n"
	if err := decodeEvent([]byte(input), "test.json", &out, params); err != nil {
		t.Fatalf("decodeEvent: %v", err)
	}
	text := out.String()
	if !strings.Contains(text, "level: state") {
		t.Errorf("output missing level line:\n%s", text)
	}
	if !strings.Contains(text, "type:  m.room.member") {
		t.Errorf("output missing type line:\n%s", text)
	}
	if !strings.Contains(text, `"membership": "join"`) {
		t.Errorf("output missing pretty-printed content:\n%s", text)
	}
}

func TestDecodeEventExtensionNote(t *testing.T) {
	var out bytes.Buffer
	params := &decodeParams{Level: "any"}
	err := decodeEvent([]byte(`{"content":{"answer":42},"type":"io.example.custom"}`), "test.json", &out, params)
	if err != nil {
		t.Fatalf("decodeEvent: %v", err)
	}
	if !strings.Contains(out.String(), "extension type") {
		t.Errorf("output missing extension note:\n%s", out.String())
	}
}

func TestDecodeEventInvalidExitsOne(t *testing.T) {
	var out bytes.Buffer
	params := &decodeParams{Level: "any"}
	err := decodeEvent([]byte(`{"content":{},"type":5}`), "test.json", &out, params)

	var exit *cli.ExitError
	if !errors.As(err, &exit) || exit.Code != 1 {
		t.Fatalf("err = %v, want ExitError with code 1", err)
	}
	if !strings.Contains(out.String(), "invalid event (semantic)") {
		t.Errorf("output = %q, want a semantic diagnostic", out.String())
	}
}

func TestDetectLevelOrdering(t *testing.T) {
	// A state event satisfies all three interfaces; detection must
	// report the richest one.
	report, err := buildDecodeReport([]byte(memberLine), "room", "test.json")
	if err != nil {
		t.Fatalf("buildDecodeReport: %v", err)
	}
	if report.Level != "state" {
		t.Errorf("Level = %q, want state even when decoded at room level", report.Level)
	}
}
