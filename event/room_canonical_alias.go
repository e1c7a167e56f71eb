// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package event

import (
	"encoding/json"

	"github.com/bureau-foundation/matrix-event/lib/ref"
)

// CanonicalAliasEventContent is the payload of m.room.canonical_alias.
// A zero Alias means the room has none: servers historically cleared
// the alias by sending null, an empty string, or omitting the field,
// and all three decode the same way.
type CanonicalAliasEventContent struct {
	Alias      ref.RoomAlias
	AltAliases []ref.RoomAlias
}

func (CanonicalAliasEventContent) EventType() Type { return TypeRoomCanonicalAlias }

func (CanonicalAliasEventContent) isStateContent() {}

type canonicalAliasJSON struct {
	Alias      *ref.RoomAlias  `json:"alias,omitempty"`
	AltAliases []ref.RoomAlias `json:"alt_aliases,omitempty"`
}

// MarshalJSON omits a zero alias entirely.
func (c CanonicalAliasEventContent) MarshalJSON() ([]byte, error) {
	wire := canonicalAliasJSON{AltAliases: c.AltAliases}
	if !c.Alias.IsZero() {
		wire.Alias = &c.Alias
	}
	return json.Marshal(wire)
}

// UnmarshalJSON folds null and the empty string into the zero Alias.
func (c *CanonicalAliasEventContent) UnmarshalJSON(data []byte) error {
	var wire struct {
		Alias      *string         `json:"alias"`
		AltAliases []ref.RoomAlias `json:"alt_aliases"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	c.AltAliases = wire.AltAliases
	if wire.Alias == nil || *wire.Alias == "" {
		c.Alias = ref.RoomAlias{}
		return nil
	}
	alias, err := ref.ParseRoomAlias(*wire.Alias)
	if err != nil {
		return err
	}
	c.Alias = alias
	return nil
}

// CanonicalAliasEvent sets the room's main alias.
type CanonicalAliasEvent = State[CanonicalAliasEventContent]
