// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package event

import (
	"bytes"
	"strings"
	"testing"
)

func TestDecodeAnyRoutesKnownTypes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(t *testing.T, e AnyEvent)
	}{
		{
			"basic account data",
			`{"content":{},"type":"m.dummy"}`,
			func(t *testing.T, e AnyEvent) {
				if _, ok := e.(DummyEvent); !ok {
					t.Errorf("decoded %T, want DummyEvent", e)
				}
			},
		},
		{
			"room message",
			`{"content":{"body":"hi","msgtype":"m.text"},"event_id":"$e:x.y","origin_server_ts":1,"sender":"@u:x.y","type":"m.room.message"}`,
			func(t *testing.T, e AnyEvent) {
				msg, ok := e.(MessageEvent)
				if !ok {
					t.Fatalf("decoded %T, want MessageEvent", e)
				}
				if msg.Content.MsgType != MsgText {
					t.Errorf("msgtype = %q", msg.Content.MsgType)
				}
			},
		},
		{
			"state member",
			`{"content":{"membership":"join"},"event_id":"$e:x.y","origin_server_ts":1,"sender":"@u:x.y","state_key":"@u:x.y","type":"m.room.member"}`,
			func(t *testing.T, e AnyEvent) {
				member, ok := e.(MemberEvent)
				if !ok {
					t.Fatalf("decoded %T, want MemberEvent", e)
				}
				if member.Content.Membership != MembershipJoin {
					t.Errorf("membership = %q", member.Content.Membership)
				}
			},
		},
		{
			"presence with top-level sender",
			`{"content":{"presence":"online"},"sender":"@u:x.y","type":"m.presence"}`,
			func(t *testing.T, e AnyEvent) {
				p, ok := e.(PresenceEvent)
				if !ok {
					t.Fatalf("decoded %T, want PresenceEvent", e)
				}
				if p.Sender.String() != "@u:x.y" {
					t.Errorf("sender = %q", p.Sender)
				}
			},
		},
		{
			"redaction with top-level target",
			`{"content":{"reason":"spam"},"event_id":"$e:x.y","origin_server_ts":1,"redacts":"$bad:x.y","sender":"@u:x.y","type":"m.room.redaction"}`,
			func(t *testing.T, e AnyEvent) {
				r, ok := e.(RedactionEvent)
				if !ok {
					t.Fatalf("decoded %T, want RedactionEvent", e)
				}
				if r.Redacts.String() != "$bad:x.y" {
					t.Errorf("redacts = %q", r.Redacts)
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := DecodeAny([]byte(tt.input))
			if err != nil {
				t.Fatalf("DecodeAny: %v", err)
			}
			tt.check(t, e)
		})
	}
}

func TestDecodeAnySniffsUnknownTypes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(t *testing.T, e AnyEvent)
	}{
		{
			"bare frame selects the basic catch-all",
			`{"content":{"temperature":21},"type":"io.example.sensor"}`,
			func(t *testing.T, e AnyEvent) {
				c, ok := e.(CustomEvent)
				if !ok {
					t.Fatalf("decoded %T, want CustomEvent", e)
				}
				if c.EventType() != "io.example.sensor" {
					t.Errorf("type = %q", c.EventType())
				}
				if string(c.Content.Body) != `{"temperature":21}` {
					t.Errorf("body = %s", c.Content.Body)
				}
			},
		},
		{
			"event_id selects the room catch-all",
			`{"content":{},"event_id":"$e:x.y","origin_server_ts":1,"sender":"@u:x.y","type":"io.example.ping"}`,
			func(t *testing.T, e AnyEvent) {
				if _, ok := e.(CustomRoomEvent); !ok {
					t.Errorf("decoded %T, want CustomRoomEvent", e)
				}
			},
		},
		{
			"state_key wins over room fields",
			`{"content":{},"event_id":"$e:x.y","origin_server_ts":1,"sender":"@u:x.y","state_key":"main","type":"io.example.widget"}`,
			func(t *testing.T, e AnyEvent) {
				s, ok := e.(CustomStateEvent)
				if !ok {
					t.Fatalf("decoded %T, want CustomStateEvent", e)
				}
				if s.StateKey() != "main" {
					t.Errorf("state_key = %q", s.StateKey())
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := DecodeAny([]byte(tt.input))
			if err != nil {
				t.Fatalf("DecodeAny: %v", err)
			}
			tt.check(t, e)
		})
	}
}

func TestDecodeAnySniffedRoomStillNeedsFrame(t *testing.T) {
	// room_id alone routes to the room catch-all, whose decode then
	// rejects the frame for missing the other required fields.
	input := `{"content":{},"room_id":"!r:x.y","type":"io.example.ping"}`
	_, err := DecodeAny([]byte(input))
	mustInvalid(t, err, FailureSyntactic)
}

func TestDecodeAnyRoomRejectsBasicLevel(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		// Room addressing fields on the frame do not rescue a type
		// that is basic by classification.
		{"typing with room fields", `{"content":{"user_ids":[]},"event_id":"$e:x.y","origin_server_ts":1,"sender":"@u:x.y","type":"m.typing"}`},
		{"direct", `{"content":{"@carl:x.y":["!r:x.y"]},"type":"m.direct"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeAnyRoom([]byte(tt.input))
			invalid := mustInvalid(t, err, FailureSemantic)
			if !strings.Contains(invalid.Message, "not a room event") {
				t.Errorf("message = %q", invalid.Message)
			}
		})
	}
}

func TestDecodeAnyRoomAcceptsState(t *testing.T) {
	input := `{"content":{"membership":"ban"},"event_id":"$e:x.y","origin_server_ts":1,"sender":"@u:x.y","state_key":"@bad:x.y","type":"m.room.member"}`
	e, err := DecodeAnyRoom([]byte(input))
	if err != nil {
		t.Fatalf("DecodeAnyRoom: %v", err)
	}
	if _, ok := e.(MemberEvent); !ok {
		t.Errorf("decoded %T, want MemberEvent", e)
	}
}

func TestDecodeAnyRoomSniffsUnknown(t *testing.T) {
	withKey := `{"content":{},"event_id":"$e:x.y","origin_server_ts":1,"sender":"@u:x.y","state_key":"","type":"io.example.widget"}`
	e, err := DecodeAnyRoom([]byte(withKey))
	if err != nil {
		t.Fatalf("DecodeAnyRoom with state_key: %v", err)
	}
	if _, ok := e.(CustomStateEvent); !ok {
		t.Errorf("decoded %T, want CustomStateEvent", e)
	}

	withoutKey := `{"content":{},"event_id":"$e:x.y","origin_server_ts":1,"sender":"@u:x.y","type":"io.example.widget"}`
	e, err = DecodeAnyRoom([]byte(withoutKey))
	if err != nil {
		t.Fatalf("DecodeAnyRoom without state_key: %v", err)
	}
	if _, ok := e.(CustomRoomEvent); !ok {
		t.Errorf("decoded %T, want CustomRoomEvent", e)
	}
}

func TestDecodeAnyStateRejectsLowerLevels(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"basic", `{"content":{},"type":"m.dummy"}`},
		{"room", `{"content":{"body":"hi","msgtype":"m.text"},"event_id":"$e:x.y","origin_server_ts":1,"sender":"@u:x.y","type":"m.room.message"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeAnyState([]byte(tt.input))
			invalid := mustInvalid(t, err, FailureSemantic)
			if !strings.Contains(invalid.Message, "not a state event") {
				t.Errorf("message = %q", invalid.Message)
			}
		})
	}
}

func TestDecodeAnyStateUnknownUsesStateCatchAll(t *testing.T) {
	input := `{"content":{"v":1},"event_id":"$e:x.y","origin_server_ts":1,"sender":"@u:x.y","state_key":"k","type":"io.example.widget"}`
	e, err := DecodeAnyState([]byte(input))
	if err != nil {
		t.Fatalf("DecodeAnyState: %v", err)
	}
	if _, ok := e.(CustomStateEvent); !ok {
		t.Errorf("decoded %T, want CustomStateEvent", e)
	}
}

func TestDecodeAnyMissingType(t *testing.T) {
	_, err := DecodeAny([]byte(`{"content":{}}`))
	mustInvalid(t, err, FailureSemantic)
}

// TestCollectionNesting pins the infallible widening conversions: a
// state event value flows into the room and basic collections as a
// plain assignment.
func TestCollectionNesting(t *testing.T) {
	input := `{"content":{"name":"ops"},"event_id":"$e:x.y","origin_server_ts":1,"sender":"@u:x.y","state_key":"","type":"m.room.name"}`
	stateEvent, err := DecodeAnyState([]byte(input))
	if err != nil {
		t.Fatalf("DecodeAnyState: %v", err)
	}

	var asRoom AnyRoomEvent = stateEvent
	var asAny AnyEvent = stateEvent
	if asRoom.EventID() != stateEvent.EventID() {
		t.Error("room view changed the event ID")
	}
	if asAny.EventType() != TypeRoomName {
		t.Errorf("basic view type = %q", asAny.EventType())
	}

	concrete, ok := asAny.(NameEvent)
	if !ok {
		t.Fatalf("widened value is %T, want NameEvent", asAny)
	}
	if concrete.Content.Name != "ops" {
		t.Errorf("name = %q", concrete.Content.Name)
	}
}

func TestCustomEventRoundTrip(t *testing.T) {
	input := []byte(`{"content":{"temperature":21.5,"unit":"C"},"event_id":"$e:x.y","origin_server_ts":1,"sender":"@u:x.y","state_key":"lab","type":"io.example.sensor"}`)
	e, err := DecodeAny(input)
	if err != nil {
		t.Fatalf("DecodeAny: %v", err)
	}
	out, err := Encode(e)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !bytes.Equal(out, input) {
		t.Errorf("round trip:\n  got:  %s\n  want: %s", out, input)
	}
}

func TestEncodeDispatchAcrossLevels(t *testing.T) {
	inputs := []string{
		`{"content":{},"type":"m.dummy"}`,
		`{"content":{"presence":"offline"},"sender":"@u:x.y","type":"m.presence"}`,
		`{"content":{"body":"hi","msgtype":"m.text"},"event_id":"$e:x.y","origin_server_ts":1,"sender":"@u:x.y","type":"m.room.message"}`,
		`{"content":{"reason":"spam"},"event_id":"$e:x.y","origin_server_ts":1,"redacts":"$bad:x.y","sender":"@u:x.y","type":"m.room.redaction"}`,
		`{"content":{"topic":"hello"},"event_id":"$e:x.y","origin_server_ts":1,"sender":"@u:x.y","state_key":"","type":"m.room.topic"}`,
	}
	for _, input := range inputs {
		e, err := DecodeAny([]byte(input))
		if err != nil {
			t.Fatalf("DecodeAny(%s): %v", input, err)
		}
		out, err := Encode(e)
		if err != nil {
			t.Fatalf("Encode(%s): %v", input, err)
		}
		if !bytes.Equal(out, []byte(input)) {
			t.Errorf("round trip:\n  got:  %s\n  want: %s", out, input)
		}
	}
}
