// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package event

import (
	"encoding/json"
	"fmt"

	"github.com/bureau-foundation/matrix-event/lib/jsint"
	"github.com/bureau-foundation/matrix-event/lib/ref"
)

// RedactionEventContent is the payload of m.room.redaction: only the
// optional human-readable reason. The target lives on the event
// itself.
type RedactionEventContent struct {
	Reason string `json:"reason,omitempty"`
}

func (RedactionEventContent) EventType() Type { return TypeRoomRedaction }

func (RedactionEventContent) isRoomContent() {}

// RedactionEvent is the one room-level event carrying a top-level
// field beyond the shared frame: the ID of the event being redacted.
// It is therefore a standalone type rather than a Room instantiation,
// with the same accessor surface.
type RedactionEvent struct {
	Content RedactionEventContent
	Redacts ref.EventID
	Frame   RoomFrame
}

// EventType returns TypeRoomRedaction.
func (RedactionEvent) EventType() Type { return TypeRoomRedaction }

// EventContent returns the typed content erased to any.
func (e RedactionEvent) EventContent() any { return e.Content }

// EventID returns the server-assigned event ID.
func (e RedactionEvent) EventID() ref.EventID { return e.Frame.EventID }

// OriginServerTS returns the origin server's timestamp in
// milliseconds since the Unix epoch.
func (e RedactionEvent) OriginServerTS() jsint.UInt { return e.Frame.OriginServerTS }

// RoomID returns the room the event belongs to, or the zero RoomID
// when the event arrived in a room-scoped context that omits it.
func (e RedactionEvent) RoomID() ref.RoomID { return e.Frame.RoomID }

// Sender returns the user who sent the event.
func (e RedactionEvent) Sender() ref.UserID { return e.Frame.Sender }

// Unsigned returns the server's unsigned data verbatim, nil when none
// was present.
func (e RedactionEvent) Unsigned() json.RawMessage { return e.Frame.Unsigned }

func (RedactionEvent) isAnyEvent()     {}
func (RedactionEvent) isAnyRoomEvent() {}

type redactionEventJSON struct {
	Content        json.RawMessage `json:"content"`
	EventID        ref.EventID     `json:"event_id"`
	OriginServerTS jsint.UInt      `json:"origin_server_ts"`
	Redacts        ref.EventID     `json:"redacts"`
	RoomID         *ref.RoomID     `json:"room_id,omitempty"`
	Sender         ref.UserID      `json:"sender"`
	Type           Type            `json:"type"`
	Unsigned       json.RawMessage `json:"unsigned,omitempty"`
}

// MarshalJSON encodes the event with its redaction target.
func (e RedactionEvent) MarshalJSON() ([]byte, error) {
	if err := e.Frame.check(TypeRoomRedaction); err != nil {
		return nil, err
	}
	if e.Redacts.IsZero() {
		return nil, fmt.Errorf("event: encoding %s: no redacts target", TypeRoomRedaction)
	}
	content, err := json.Marshal(e.Content)
	if err != nil {
		return nil, fmt.Errorf("event: encoding %s content: %w", TypeRoomRedaction, err)
	}
	room := e.Frame.roomJSON(content, TypeRoomRedaction)
	return json.Marshal(redactionEventJSON{
		Content:        room.Content,
		EventID:        room.EventID,
		OriginServerTS: room.OriginServerTS,
		Redacts:        e.Redacts,
		RoomID:         room.RoomID,
		Sender:         room.Sender,
		Type:           room.Type,
		Unsigned:       room.Unsigned,
	})
}

// DecodeRedaction decodes data as an m.room.redaction event. The
// redacts field is required alongside the room frame.
func DecodeRedaction(data []byte) (RedactionEvent, error) {
	var e RedactionEvent
	raw, err := parseRaw(data)
	if err != nil {
		return e, err
	}
	t, err := raw.eventType(data)
	if err != nil {
		return e, err
	}
	if t != TypeRoomRedaction {
		return e, semanticErrorJSON(
			fmt.Sprintf("event type %q does not match %q", t, TypeRoomRedaction), data)
	}
	if err := raw.require(data, LevelRoom); err != nil {
		return e, err
	}
	var aux struct {
		Redacts ref.EventID `json:"redacts"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return e, syntacticError("structurally invalid event", data, err)
	}
	if aux.Redacts.IsZero() {
		return e, syntacticError(
			"room event is missing required fields: redacts", data, nil)
	}
	content, err := decodeContent[RedactionEventContent](t, "content", raw.Content)
	if err != nil {
		return e, err
	}
	e.Content = content
	e.Redacts = aux.Redacts
	e.Frame = raw.roomFrame()
	return e, nil
}

// UnmarshalJSON decodes via DecodeRedaction.
func (e *RedactionEvent) UnmarshalJSON(data []byte) error {
	decoded, err := DecodeRedaction(data)
	if err != nil {
		return err
	}
	*e = decoded
	return nil
}

func decodeRedactionAny(data []byte) (AnyRoomEvent, error) {
	e, err := DecodeRedaction(data)
	if err != nil {
		return nil, err
	}
	return e, nil
}
