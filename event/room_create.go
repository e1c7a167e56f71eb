// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package event

import (
	"encoding/json"

	"github.com/bureau-foundation/matrix-event/lib/ref"
)

// CreateEventContent is the payload of m.room.create, the first event
// of every room. Decoding fills the protocol defaults: federation on,
// room version "1".
type CreateEventContent struct {
	Creator     ref.UserID    `json:"creator"`
	Federate    bool          `json:"m.federate"`
	Predecessor *PreviousRoom `json:"predecessor,omitempty"`
	RoomVersion string        `json:"room_version"`
}

func (CreateEventContent) EventType() Type { return TypeRoomCreate }

func (CreateEventContent) isStateContent() {}

// PreviousRoom points at the room this one replaced after an upgrade.
type PreviousRoom struct {
	EventID ref.EventID `json:"event_id"`
	RoomID  ref.RoomID  `json:"room_id"`
}

type createJSON struct {
	Creator     *ref.UserID   `json:"creator,omitempty"`
	Federate    bool          `json:"m.federate"`
	Predecessor *PreviousRoom `json:"predecessor,omitempty"`
	RoomVersion string        `json:"room_version"`
}

// MarshalJSON writes the materialized defaults but drops a zero
// creator, which newer room versions no longer carry.
func (c CreateEventContent) MarshalJSON() ([]byte, error) {
	wire := createJSON{
		Federate:    c.Federate,
		Predecessor: c.Predecessor,
		RoomVersion: c.RoomVersion,
	}
	if !c.Creator.IsZero() {
		wire.Creator = &c.Creator
	}
	return json.Marshal(wire)
}

// UnmarshalJSON decodes with the defaults prefilled, so absent fields
// come out as their protocol defaults rather than Go zero values.
func (c *CreateEventContent) UnmarshalJSON(data []byte) error {
	type wire CreateEventContent
	w := wire{Federate: true, RoomVersion: "1"}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if w.RoomVersion == "" {
		w.RoomVersion = "1"
	}
	*c = CreateEventContent(w)
	return nil
}

// CreateEvent is the root of a room's event graph.
type CreateEvent = State[CreateEventContent]
