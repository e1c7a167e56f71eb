// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package event

import (
	"testing"
)

func TestMemberDecodeWithPrevContent(t *testing.T) {
	input := `{"content":{"displayname":"Alice","membership":"join"},"event_id":"$e:x.y","origin_server_ts":1,"prev_content":{"membership":"invite"},"sender":"@alice:x.y","state_key":"@alice:x.y","type":"m.room.member"}`
	e, err := DecodeState[MemberEventContent]([]byte(input))
	if err != nil {
		t.Fatalf("DecodeState: %v", err)
	}
	if e.Content.Membership != MembershipJoin {
		t.Errorf("membership = %q", e.Content.Membership)
	}
	prev, ok := e.Prev()
	if !ok {
		t.Fatal("prev_content lost")
	}
	if prev.Membership != MembershipInvite {
		t.Errorf("previous membership = %q", prev.Membership)
	}
	if e.StateKey() != "@alice:x.y" {
		t.Errorf("state_key = %q", e.StateKey())
	}
}

func TestMemberDecodeWithoutMembership(t *testing.T) {
	input := `{"content":{"displayname":"Alice"},"event_id":"$e:x.y","origin_server_ts":1,"sender":"@alice:x.y","state_key":"@alice:x.y","type":"m.room.member"}`
	_, err := DecodeState[MemberEventContent]([]byte(input))
	mustInvalid(t, err, FailureSyntactic)
}

func TestMemberVendorMembershipDecodes(t *testing.T) {
	// The membership vocabulary is open; unknown values carry through.
	input := `{"content":{"membership":"io.example.lurk"},"event_id":"$e:x.y","origin_server_ts":1,"sender":"@alice:x.y","state_key":"@alice:x.y","type":"m.room.member"}`
	e, err := DecodeState[MemberEventContent]([]byte(input))
	if err != nil {
		t.Fatalf("DecodeState: %v", err)
	}
	if got := e.Content.Membership; got != "io.example.lurk" {
		t.Errorf("membership = %q", got)
	}
}
