// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package event

import (
	"encoding/json"
	"fmt"

	"github.com/bureau-foundation/matrix-event/lib/jsint"
	"github.com/bureau-foundation/matrix-event/lib/ref"
)

// Wire mirrors for encoding. Field order matches the canonical key
// order used in protocol examples; consumers compare events by key
// set and value, never by byte order.

type basicEventJSON struct {
	Content json.RawMessage `json:"content"`
	Type    Type            `json:"type"`
}

type roomEventJSON struct {
	Content        json.RawMessage `json:"content"`
	EventID        ref.EventID     `json:"event_id"`
	OriginServerTS jsint.UInt      `json:"origin_server_ts"`
	RoomID         *ref.RoomID     `json:"room_id,omitempty"`
	Sender         ref.UserID      `json:"sender"`
	Type           Type            `json:"type"`
	Unsigned       json.RawMessage `json:"unsigned,omitempty"`
}

type stateEventJSON struct {
	Content        json.RawMessage `json:"content"`
	EventID        ref.EventID     `json:"event_id"`
	OriginServerTS jsint.UInt      `json:"origin_server_ts"`
	PrevContent    json.RawMessage `json:"prev_content,omitempty"`
	RoomID         *ref.RoomID     `json:"room_id,omitempty"`
	Sender         ref.UserID      `json:"sender"`
	StateKey       string          `json:"state_key"`
	Type           Type            `json:"type"`
	Unsigned       json.RawMessage `json:"unsigned,omitempty"`
}

// checkFrame rejects encoding of a room event whose required
// addressing fields were never set. Timestamp zero is valid (the
// epoch); event ID and sender have no valid zero form.
func (f RoomFrame) check(t Type) error {
	if f.EventID.IsZero() {
		return fmt.Errorf("event: encoding %s: frame has no event_id", t)
	}
	if f.Sender.IsZero() {
		return fmt.Errorf("event: encoding %s: frame has no sender", t)
	}
	return nil
}

// roomJSON builds the wire mirror for a room-level encoding of f.
func (f RoomFrame) roomJSON(content json.RawMessage, t Type) roomEventJSON {
	out := roomEventJSON{
		Content:        content,
		EventID:        f.EventID,
		OriginServerTS: f.OriginServerTS,
		Sender:         f.Sender,
		Type:           t,
		Unsigned:       f.Unsigned,
	}
	if !f.RoomID.IsZero() {
		out.RoomID = &f.RoomID
	}
	return out
}

// Encode serializes a decoded event back to its wire object. It
// works on any of the collection interfaces; the concrete type's
// MarshalJSON does the work. Optional fields that were absent on
// decode stay absent, and content whose decode filled protocol
// defaults writes those defaults explicitly.
func Encode(e Event) ([]byte, error) {
	return json.Marshal(e)
}

// MarshalJSON encodes the event as its wire object:
// {"content": ..., "type": ...}.
func (e Basic[C]) MarshalJSON() ([]byte, error) {
	content, err := json.Marshal(e.Content)
	if err != nil {
		return nil, fmt.Errorf("event: encoding %s content: %w", e.EventType(), err)
	}
	return json.Marshal(basicEventJSON{Content: content, Type: e.EventType()})
}

// MarshalJSON encodes the event with its room addressing fields.
// Absent optionals (zero RoomID, nil Unsigned) are omitted entirely.
func (e Room[C]) MarshalJSON() ([]byte, error) {
	if err := e.Frame.check(e.EventType()); err != nil {
		return nil, err
	}
	content, err := json.Marshal(e.Content)
	if err != nil {
		return nil, fmt.Errorf("event: encoding %s content: %w", e.EventType(), err)
	}
	return json.Marshal(e.Frame.roomJSON(content, e.EventType()))
}

// MarshalJSON encodes the event with its state addressing fields.
// Absent optionals (zero RoomID, nil Unsigned, nil PrevContent) are
// omitted entirely; the state key is always written, including when
// empty.
func (e State[C]) MarshalJSON() ([]byte, error) {
	if err := e.Frame.check(e.EventType()); err != nil {
		return nil, err
	}
	content, err := json.Marshal(e.Content)
	if err != nil {
		return nil, fmt.Errorf("event: encoding %s content: %w", e.EventType(), err)
	}
	room := e.Frame.roomJSON(content, e.EventType())
	out := stateEventJSON{
		Content:        room.Content,
		EventID:        room.EventID,
		OriginServerTS: room.OriginServerTS,
		RoomID:         room.RoomID,
		Sender:         room.Sender,
		StateKey:       e.Frame.StateKey,
		Type:           room.Type,
		Unsigned:       room.Unsigned,
	}
	if e.PrevContent != nil {
		prev, err := json.Marshal(*e.PrevContent)
		if err != nil {
			return nil, fmt.Errorf("event: encoding %s prev_content: %w", e.EventType(), err)
		}
		out.PrevContent = prev
	}
	return json.Marshal(out)
}
