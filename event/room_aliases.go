// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package event

import (
	"encoding/json"

	"github.com/bureau-foundation/matrix-event/lib/ref"
)

// AliasesEventContent is the payload of m.room.aliases: the aliases a
// single server has published for the room. The state key is the
// server's name, so each server maintains its own list.
type AliasesEventContent struct {
	Aliases []ref.RoomAlias `json:"aliases"`
}

func (AliasesEventContent) EventType() Type { return TypeRoomAliases }

func (AliasesEventContent) isStateContent() {}

// MarshalJSON writes a nil list as []; aliases is required on the
// wire.
func (c AliasesEventContent) MarshalJSON() ([]byte, error) {
	type wire AliasesEventContent
	w := wire(c)
	if w.Aliases == nil {
		w.Aliases = []ref.RoomAlias{}
	}
	return json.Marshal(w)
}

// AliasesEvent publishes a server's aliases for a room.
type AliasesEvent = State[AliasesEventContent]
