// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package event

import (
	"github.com/bureau-foundation/matrix-event/lib/ref"
)

// TombstoneEventContent is the payload of m.room.tombstone: the room
// is dead, continue in the replacement. Set with the empty state key.
type TombstoneEventContent struct {
	Body            string     `json:"body"`
	ReplacementRoom ref.RoomID `json:"replacement_room"`
}

func (TombstoneEventContent) EventType() Type { return TypeRoomTombstone }

func (TombstoneEventContent) isStateContent() {}

// TombstoneEvent closes a room and points at its successor.
type TombstoneEvent = State[TombstoneEventContent]
