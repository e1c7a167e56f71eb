// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/matrix-event/event"
)

// Policy restricts which events a validate run accepts. The zero
// value applies no restrictions beyond decodability.
type Policy struct {
	// MinLevel requires every event to satisfy the named capability
	// level: "basic" (the default) accepts any event shape, "room"
	// requires the timeline addressing fields, and "state" requires a
	// state key on top of those.
	MinLevel string `yaml:"min_level"`

	// ForbidUnknown rejects events whose type is not defined by the
	// Matrix specification, unless the type matches an entry in
	// AllowNamespaces.
	ForbidUnknown bool `yaml:"forbid_unknown"`

	// AllowNamespaces lists type prefixes exempt from ForbidUnknown,
	// for example "io.example." to accept a deployment's own
	// extension events.
	AllowNamespaces []string `yaml:"allow_namespaces"`

	// MaxBytes caps the encoded size of a single event line. Zero
	// means no cap.
	MaxBytes int `yaml:"max_bytes"`
}

// loadPolicy reads and validates a YAML policy file.
func loadPolicy(path string) (*Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read policy: %w", err)
	}
	var policy Policy
	if err := yaml.Unmarshal(data, &policy); err != nil {
		return nil, fmt.Errorf("parse policy %s: %w", path, err)
	}
	if err := policy.validate(); err != nil {
		return nil, fmt.Errorf("policy %s: %w", path, err)
	}
	return &policy, nil
}

func (p *Policy) validate() error {
	switch p.MinLevel {
	case "", "basic", "room", "state":
	default:
		return fmt.Errorf("min_level %q is not one of basic, room, state", p.MinLevel)
	}
	if p.MaxBytes < 0 {
		return fmt.Errorf("max_bytes must not be negative, got %d", p.MaxBytes)
	}
	for _, namespace := range p.AllowNamespaces {
		if namespace == "" {
			return fmt.Errorf("allow_namespaces must not contain empty entries")
		}
	}
	return nil
}

// decode runs the heterogeneous decoder the policy's MinLevel calls
// for.
func (p *Policy) decode(line []byte) (event.AnyEvent, error) {
	switch p.MinLevel {
	case "room":
		return event.DecodeAnyRoom(line)
	case "state":
		return event.DecodeAnyState(line)
	default:
		return event.DecodeAny(line)
	}
}

// allowsType reports whether the policy accepts an event of type t.
// Known types are always allowed. Unknown types are allowed unless
// ForbidUnknown is set, in which case the type must match an
// AllowNamespaces prefix.
func (p *Policy) allowsType(t event.Type) bool {
	if !p.ForbidUnknown || t.Known() {
		return true
	}
	for _, namespace := range p.AllowNamespaces {
		if strings.HasPrefix(string(t), namespace) {
			return true
		}
	}
	return false
}
