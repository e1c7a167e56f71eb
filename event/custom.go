// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package event

import (
	"bytes"
	"encoding/json"
	"errors"
)

// CustomContent is the extension catch-all payload: the content of an
// event whose type is not in the registry, carried byte for byte. It
// is the only content type whose discriminant is per value rather
// than fixed, and the only one admitted at every capability level.
type CustomContent struct {
	// Type is the wire discriminant the event arrived with (or the
	// one it will be written with).
	Type Type
	// Body is the content object verbatim. A nil Body encodes as {}.
	Body json.RawMessage
}

func (c CustomContent) EventType() Type { return c.Type }

func (c *CustomContent) setEventType(t Type) { c.Type = t }

func (CustomContent) isBasicContent() {}
func (CustomContent) isRoomContent() {}
func (CustomContent) isStateContent() {}

// MarshalJSON writes the stored body unchanged.
func (c CustomContent) MarshalJSON() ([]byte, error) {
	if len(c.Body) == 0 {
		return []byte("{}"), nil
	}
	return c.Body, nil
}

// UnmarshalJSON stores the body verbatim. The content must still be a
// JSON object; extension types relax the schema, not the shape.
func (c *CustomContent) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return errors.New("content is not a JSON object")
	}
	c.Body = bytes.Clone(trimmed)
	return nil
}

// The catch-all envelopes. DecodeAny and friends produce these for
// unregistered types; they can also be decoded directly when the
// caller expects a specific extension type.
type (
	// CustomEvent is a basic-level event of an unregistered type.
	CustomEvent = Basic[CustomContent]
	// CustomRoomEvent is a room-level event of an unregistered type.
	CustomRoomEvent = Room[CustomContent]
	// CustomStateEvent is a state-level event of an unregistered type.
	CustomStateEvent = State[CustomContent]
)
