// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package event

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/bureau-foundation/matrix-event/lib/jsint"
	"github.com/bureau-foundation/matrix-event/lib/ref"
)

// rawEvent is the structural mirror every decode starts from. Pointer
// and zero-value conventions distinguish "absent" from valid zero
// values on the wire: a timestamp of 0 and a state key of "" are both
// legal, so those fields are pointers, while identifier types use
// their zero value for absence. The discriminant is captured unparsed
// so that a present but ill-typed value fails schema selection, not
// the structural phase.
type rawEvent struct {
	Type           json.RawMessage `json:"type"`
	Content        json.RawMessage `json:"content"`
	EventID        ref.EventID     `json:"event_id"`
	OriginServerTS *jsint.UInt     `json:"origin_server_ts"`
	RoomID         ref.RoomID      `json:"room_id"`
	Sender         ref.UserID      `json:"sender"`
	StateKey       *string         `json:"state_key"`
	PrevContent    json.RawMessage `json:"prev_content"`
	Unsigned       json.RawMessage `json:"unsigned"`
}

// normalizeNull folds an explicit JSON null into absence. RawMessage
// fields capture the literal bytes, so "null" survives the structural
// parse and has to be flattened here.
func normalizeNull(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	return raw
}

// parseRaw runs decode phase 1 on the event frame: the input must be a
// JSON object whose recognized fields have the right shapes. Anything
// else is a syntactic failure.
func parseRaw(data []byte) (*rawEvent, error) {
	var raw rawEvent
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, syntacticError("structurally invalid event", data, err)
	}
	raw.Type = normalizeNull(raw.Type)
	raw.Content = normalizeNull(raw.Content)
	raw.PrevContent = normalizeNull(raw.PrevContent)
	raw.Unsigned = normalizeNull(raw.Unsigned)
	return &raw, nil
}

// eventType returns the wire discriminant. A missing discriminant and
// an ill-typed one are both semantic failures: the frame is
// structurally fine, there is just no way to select a schema for it.
func (r *rawEvent) eventType(data []byte) (Type, error) {
	if r.Type == nil {
		return "", semanticErrorJSON("event has no type field", data)
	}
	var t Type
	if err := json.Unmarshal(r.Type, &t); err != nil {
		return "", semanticErrorJSON("event type field is not a string", data)
	}
	return t, nil
}

// require checks the frame fields a capability level demands. Content
// is required at every level. A field set to JSON null counts as
// missing.
func (r *rawEvent) require(data []byte, level Level) error {
	var missing []string
	if r.Content == nil {
		missing = append(missing, "content")
	}
	if level >= LevelRoom {
		if r.EventID.IsZero() {
			missing = append(missing, "event_id")
		}
		if r.OriginServerTS == nil {
			missing = append(missing, "origin_server_ts")
		}
		if r.Sender.IsZero() {
			missing = append(missing, "sender")
		}
	}
	if level >= LevelState && r.StateKey == nil {
		missing = append(missing, "state_key")
	}
	if len(missing) == 0 {
		return nil
	}
	return syntacticError(
		fmt.Sprintf("%s event is missing required fields: %s",
			level, strings.Join(missing, ", ")),
		data, nil)
}

// roomFrame assembles the addressing fields after require(LevelRoom)
// has passed.
func (r *rawEvent) roomFrame() RoomFrame {
	frame := RoomFrame{
		EventID:  r.EventID,
		RoomID:   r.RoomID,
		Sender:   r.Sender,
		Unsigned: r.Unsigned,
	}
	if r.OriginServerTS != nil {
		frame.OriginServerTS = *r.OriginServerTS
	}
	return frame
}

// stateFrame assembles the addressing fields after require(LevelState)
// has passed.
func (r *rawEvent) stateFrame() StateFrame {
	frame := StateFrame{RoomFrame: r.roomFrame()}
	if r.StateKey != nil {
		frame.StateKey = *r.StateKey
	}
	return frame
}

// expectedType returns the discriminant a content type C binds to. The
// extension content type stores its discriminant per value, so its
// zero value reports the empty Type, which callers treat as "accept
// anything".
func expectedType[C Content]() Type {
	var zero C
	return zero.EventType()
}

// checkType verifies the wire discriminant against the one C binds
// to. A mismatch is a semantic failure: both the frame and the
// discriminant are well formed, they just disagree with the caller's
// requested schema.
func checkType[C Content](t Type, data []byte) error {
	want := expectedType[C]()
	if want != "" && t != want {
		return semanticErrorJSON(
			fmt.Sprintf("event type %q does not match %q", t, want), data)
	}
	return nil
}

// decodeContent runs both phases on a content object. Content
// unmarshalers signal phase-2 violations with *InvalidEventError;
// every other unmarshal error is a phase-1 shape failure.
func decodeContent[C any](t Type, field string, data json.RawMessage) (C, error) {
	var content C
	if err := json.Unmarshal(data, &content); err != nil {
		var invalid *InvalidEventError
		if errors.As(err, &invalid) {
			return content, err
		}
		return content, syntacticError(
			fmt.Sprintf("invalid %s %s", t, field), data, err)
	}
	return content, nil
}

// typeSetter is implemented by content types whose discriminant is
// carried per value rather than fixed by the schema (CustomContent).
type typeSetter interface {
	setEventType(Type)
}

// bindType injects the wire discriminant into extension content after
// its body has been decoded. content must be a pointer.
func bindType(content any, t Type) {
	if s, ok := content.(typeSetter); ok {
		s.setEventType(t)
	}
}

// DecodeBasic decodes data as the basic-level event whose content type
// is C. The wire discriminant must match the one C binds to. Failures
// are reported as *InvalidEventError; see FailureClass for how they
// divide between the structural and semantic phases.
func DecodeBasic[C BasicContent](data []byte) (Basic[C], error) {
	var e Basic[C]
	raw, err := parseRaw(data)
	if err != nil {
		return e, err
	}
	t, err := raw.eventType(data)
	if err != nil {
		return e, err
	}
	if err := checkType[C](t, data); err != nil {
		return e, err
	}
	if err := raw.require(data, LevelBasic); err != nil {
		return e, err
	}
	content, err := decodeContent[C](t, "content", raw.Content)
	if err != nil {
		return e, err
	}
	e.Content = content
	bindType(&e.Content, t)
	return e, nil
}

// DecodeRoom decodes data as the room-level event whose content type
// is C, requiring the room addressing fields (event_id,
// origin_server_ts, sender) alongside the content.
func DecodeRoom[C RoomContent](data []byte) (Room[C], error) {
	var e Room[C]
	raw, err := parseRaw(data)
	if err != nil {
		return e, err
	}
	t, err := raw.eventType(data)
	if err != nil {
		return e, err
	}
	if err := checkType[C](t, data); err != nil {
		return e, err
	}
	if err := raw.require(data, LevelRoom); err != nil {
		return e, err
	}
	content, err := decodeContent[C](t, "content", raw.Content)
	if err != nil {
		return e, err
	}
	e.Content = content
	e.Frame = raw.roomFrame()
	bindType(&e.Content, t)
	return e, nil
}

// DecodeState decodes data as the state-level event whose content type
// is C, requiring the state key alongside the room addressing fields.
// A present prev_content is decoded with the same schema as content.
func DecodeState[C StateContent](data []byte) (State[C], error) {
	var e State[C]
	raw, err := parseRaw(data)
	if err != nil {
		return e, err
	}
	t, err := raw.eventType(data)
	if err != nil {
		return e, err
	}
	if err := checkType[C](t, data); err != nil {
		return e, err
	}
	if err := raw.require(data, LevelState); err != nil {
		return e, err
	}
	content, err := decodeContent[C](t, "content", raw.Content)
	if err != nil {
		return e, err
	}
	e.Content = content
	e.Frame = raw.stateFrame()
	bindType(&e.Content, t)
	if raw.PrevContent != nil {
		prev, err := decodeContent[C](t, "prev_content", raw.PrevContent)
		if err != nil {
			return e, err
		}
		e.PrevContent = &prev
		bindType(e.PrevContent, t)
	}
	return e, nil
}

// UnmarshalJSON decodes via DecodeBasic, so json.Unmarshal on a
// concrete event type yields the same diagnostics as the decode
// functions.
func (e *Basic[C]) UnmarshalJSON(data []byte) error {
	decoded, err := DecodeBasic[C](data)
	if err != nil {
		return err
	}
	*e = decoded
	return nil
}

// UnmarshalJSON decodes via DecodeRoom.
func (e *Room[C]) UnmarshalJSON(data []byte) error {
	decoded, err := DecodeRoom[C](data)
	if err != nil {
		return err
	}
	*e = decoded
	return nil
}

// UnmarshalJSON decodes via DecodeState.
func (e *State[C]) UnmarshalJSON(data []byte) error {
	decoded, err := DecodeState[C](data)
	if err != nil {
		return err
	}
	*e = decoded
	return nil
}
