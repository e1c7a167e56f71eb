// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bureau-foundation/matrix-event/event"
)

func writePolicy(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "policy.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write policy: %v", err)
	}
	return path
}

func TestLoadPolicy(t *testing.T) {
	path := writePolicy(t, `
min_level: room
forbid_unknown: true
allow_namespaces:
  - io.example.
max_bytes: 65536
`)

	policy, err := loadPolicy(path)
	if err != nil {
		t.Fatalf("loadPolicy: %v", err)
	}
	if policy.MinLevel != "room" {
		t.Errorf("MinLevel = %q, want room", policy.MinLevel)
	}
	if !policy.ForbidUnknown {
		t.Error("ForbidUnknown = false, want true")
	}
	if len(policy.AllowNamespaces) != 1 || policy.AllowNamespaces[0] != "io.example." {
		t.Errorf("AllowNamespaces = %v", policy.AllowNamespaces)
	}
	if policy.MaxBytes != 65536 {
		t.Errorf("MaxBytes = %d, want 65536", policy.MaxBytes)
	}
}

func TestLoadPolicyRejections(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "unknown level",
			content: "min_level: huge\n",
			want:    "min_level",
		},
		{
			name:    "negative size cap",
			content: "max_bytes: -1\n",
			want:    "max_bytes",
		},
		{
			name:    "empty namespace entry",
			content: "allow_namespaces: ['']\n",
			want:    "allow_namespaces",
		},
		{
			name:    "not yaml",
			content: "{{{\n",
			want:    "parse policy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadPolicy(writePolicy(t, tt.content))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want to contain %q", err, tt.want)
			}
		})
	}
}

func TestLoadPolicyMissingFile(t *testing.T) {
	_, err := loadPolicy(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected error for a missing file")
	}
}

func TestPolicyAllowsType(t *testing.T) {
	tests := []struct {
		name      string
		policy    Policy
		eventType event.Type
		want      bool
	}{
		{
			name:      "known type always allowed",
			policy:    Policy{ForbidUnknown: true},
			eventType: event.TypeRoomMessage,
			want:      true,
		},
		{
			name:      "unknown type allowed by default",
			policy:    Policy{},
			eventType: "io.example.custom",
			want:      true,
		},
		{
			name:      "unknown type forbidden",
			policy:    Policy{ForbidUnknown: true},
			eventType: "io.example.custom",
			want:      false,
		},
		{
			name:      "namespace match",
			policy:    Policy{ForbidUnknown: true, AllowNamespaces: []string{"io.example."}},
			eventType: "io.example.custom",
			want:      true,
		},
		{
			name:      "namespace is a prefix match",
			policy:    Policy{ForbidUnknown: true, AllowNamespaces: []string{"io.example."}},
			eventType: "io.examples.custom",
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.policy.allowsType(tt.eventType); got != tt.want {
				t.Errorf("allowsType(%q) = %v, want %v", tt.eventType, got, tt.want)
			}
		})
	}
}

func TestPolicyDecodeLevel(t *testing.T) {
	// MinLevel state must reject a room-only event.
	policy := Policy{MinLevel: "state"}
	messageLine := `{"content":{"body":"hello","msgtype":"m.text"},"event_id":"$msg:x.y","origin_server_ts":2,"room_id":"!alpha:x.y","sender":"@alice:x.y","type":"m.room.message"}`

	if _, err := policy.decode([]byte(messageLine)); err == nil {
		t.Error("state-level decode accepted a room event")
	}
	if _, err := policy.decode([]byte(memberLine)); err != nil {
		t.Errorf("state-level decode rejected a state event: %v", err)
	}
}
