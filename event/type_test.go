// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package event

import (
	"testing"
)

func TestTypeKnownAndLevel(t *testing.T) {
	tests := []struct {
		name  string
		typ   Type
		known bool
		level Level
	}{
		{"basic", TypeDummy, true, LevelBasic},
		{"basic dotted", TypeKeyVerificationStart, true, LevelBasic},
		{"room", TypeRoomMessage, true, LevelRoom},
		{"room call", TypeCallInvite, true, LevelRoom},
		{"state", TypeRoomServerACL, true, LevelState},
		{"state member", TypeRoomMember, true, LevelState},
		{"extension", Type("io.example.custom"), false, LevelNone},
		{"near miss", Type("m.room.messages"), false, LevelNone},
		{"case sensitive", Type("M.DUMMY"), false, LevelNone},
		{"empty", Type(""), false, LevelNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.typ.Known(); got != tt.known {
				t.Errorf("Known(%q) = %v, want %v", tt.typ, got, tt.known)
			}
			if got := tt.typ.Level(); got != tt.level {
				t.Errorf("Level(%q) = %v, want %v", tt.typ, got, tt.level)
			}
		})
	}
}

func TestTypeStringIdentity(t *testing.T) {
	for _, s := range []string{"m.dummy", "io.example.custom", "weird spaces"} {
		if got := Type(s).String(); got != s {
			t.Errorf("Type(%q).String() = %q", s, got)
		}
	}
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelNone, "none"},
		{LevelBasic, "basic"},
		{LevelRoom, "room"},
		{LevelState, "state"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", int(tt.level), got, tt.want)
		}
	}
}

// TestRegistryAgreesWithDispatch pins the invariant the decoders rely
// on: every registered type has a decoder in exactly the table its
// level selects, and the tables contain nothing unregistered.
func TestRegistryAgreesWithDispatch(t *testing.T) {
	counts := map[Level]int{}
	for typ, level := range registry {
		counts[level]++
		_, inBasic := basicDecoders[typ]
		_, inRoom := roomDecoders[typ]
		_, inState := stateDecoders[typ]
		want := [3]bool{level == LevelBasic, level == LevelRoom, level == LevelState}
		if got := [3]bool{inBasic, inRoom, inState}; got != want {
			t.Errorf("%s (level %s): dispatch membership %v, want %v",
				typ, level, got, want)
		}
	}
	if counts[LevelBasic] != 18 || counts[LevelRoom] != 9 || counts[LevelState] != 16 {
		t.Errorf("registry counts basic=%d room=%d state=%d, want 18/9/16",
			counts[LevelBasic], counts[LevelRoom], counts[LevelState])
	}
	total := len(basicDecoders) + len(roomDecoders) + len(stateDecoders)
	if total != len(registry) {
		t.Errorf("dispatch tables hold %d decoders, registry holds %d types",
			total, len(registry))
	}
}
