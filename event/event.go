// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package event

import (
	"encoding/json"

	"github.com/bureau-foundation/matrix-event/lib/jsint"
	"github.com/bureau-foundation/matrix-event/lib/ref"
)

// Event is the basic capability level: a typed content payload and the
// wire discriminant. Every decoded event satisfies it.
//
// EventContent returns the typed content value erased to any; callers
// holding a concrete record access its Content field directly instead.
type Event interface {
	EventType() Type
	EventContent() any
}

// RoomEvent is the room capability level: an event addressed into a
// room's timeline. RoomID is zero when the context implies the room
// (server responses scoped to a room omit it); Unsigned is nil when
// the server attached no unsigned data.
type RoomEvent interface {
	Event
	EventID() ref.EventID
	OriginServerTS() jsint.UInt
	RoomID() ref.RoomID
	Sender() ref.UserID
	Unsigned() json.RawMessage
}

// StateEvent is the state capability level: a room event keyed by
// state_key, optionally carrying the content it replaced.
// PrevEventContent returns nil when no previous content was present.
type StateEvent interface {
	RoomEvent
	StateKey() string
	PrevEventContent() any
}

// RoomFrame carries the addressing fields shared by every room and
// state event. The zero RoomID and nil Unsigned mean "not present";
// both are omitted when encoding.
type RoomFrame struct {
	EventID        ref.EventID
	OriginServerTS jsint.UInt
	RoomID         ref.RoomID
	Sender         ref.UserID
	Unsigned       json.RawMessage
}

// StateFrame extends RoomFrame with the state key. The empty string is
// a valid, common state key (singleton state such as the room name or
// server ACL), distinct from "missing" on the wire.
type StateFrame struct {
	RoomFrame
	StateKey string
}

// Basic is the envelope for a basic event with content type C. The
// per-type aliases (DummyEvent, TagEvent, ...) name its instantiations.
type Basic[C BasicContent] struct {
	Content C
}

// EventType returns the wire discriminant of the content.
func (e Basic[C]) EventType() Type { return e.Content.EventType() }

// EventContent returns the typed content erased to any.
func (e Basic[C]) EventContent() any { return e.Content }

// Room is the envelope for a room timeline event with content type C.
type Room[C RoomContent] struct {
	Content C
	Frame   RoomFrame
}

// EventType returns the wire discriminant of the content.
func (e Room[C]) EventType() Type { return e.Content.EventType() }

// EventContent returns the typed content erased to any.
func (e Room[C]) EventContent() any { return e.Content }

// EventID returns the server-assigned event ID.
func (e Room[C]) EventID() ref.EventID { return e.Frame.EventID }

// OriginServerTS returns the origin server's timestamp in
// milliseconds since the Unix epoch.
func (e Room[C]) OriginServerTS() jsint.UInt { return e.Frame.OriginServerTS }

// RoomID returns the room the event belongs to, or the zero RoomID
// when the event arrived in a room-scoped context that omits it.
func (e Room[C]) RoomID() ref.RoomID { return e.Frame.RoomID }

// Sender returns the user who sent the event.
func (e Room[C]) Sender() ref.UserID { return e.Frame.Sender }

// Unsigned returns the server's unsigned data verbatim, nil when none
// was present.
func (e Room[C]) Unsigned() json.RawMessage { return e.Frame.Unsigned }

// State is the envelope for a state event with content type C.
// PrevContent points to the content this event replaced, nil when the
// server sent none.
type State[C StateContent] struct {
	Content     C
	PrevContent *C
	Frame       StateFrame
}

// EventType returns the wire discriminant of the content.
func (e State[C]) EventType() Type { return e.Content.EventType() }

// EventContent returns the typed content erased to any.
func (e State[C]) EventContent() any { return e.Content }

// EventID returns the server-assigned event ID.
func (e State[C]) EventID() ref.EventID { return e.Frame.EventID }

// OriginServerTS returns the origin server's timestamp in
// milliseconds since the Unix epoch.
func (e State[C]) OriginServerTS() jsint.UInt { return e.Frame.OriginServerTS }

// RoomID returns the room the event belongs to, or the zero RoomID
// when the event arrived in a room-scoped context that omits it.
func (e State[C]) RoomID() ref.RoomID { return e.Frame.RoomID }

// Sender returns the user who sent the event.
func (e State[C]) Sender() ref.UserID { return e.Frame.Sender }

// Unsigned returns the server's unsigned data verbatim, nil when none
// was present.
func (e State[C]) Unsigned() json.RawMessage { return e.Frame.Unsigned }

// StateKey returns the state key. Empty string is a valid key.
func (e State[C]) StateKey() string { return e.Frame.StateKey }

// PrevEventContent returns the previous content erased to any, or nil
// when the event carried none.
func (e State[C]) PrevEventContent() any {
	if e.PrevContent == nil {
		return nil
	}
	return *e.PrevContent
}

// Prev returns the previous content and whether it was present.
func (e State[C]) Prev() (C, bool) {
	if e.PrevContent == nil {
		var zero C
		return zero, false
	}
	return *e.PrevContent, true
}
