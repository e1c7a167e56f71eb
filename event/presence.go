// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package event

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/bureau-foundation/matrix-event/lib/jsint"
	"github.com/bureau-foundation/matrix-event/lib/ref"
)

// PresenceState is the advertised availability of a user.
type PresenceState string

const (
	PresenceOnline      PresenceState = "online"
	PresenceOffline     PresenceState = "offline"
	PresenceUnavailable PresenceState = "unavailable"
)

// PresenceEventContent is the payload of m.presence. The profile
// fields mirror the user's current profile so receivers need no extra
// lookup; empty strings mean the server sent nothing.
type PresenceEventContent struct {
	AvatarURL       string        `json:"avatar_url,omitempty"`
	CurrentlyActive *bool         `json:"currently_active,omitempty"`
	DisplayName     string        `json:"displayname,omitempty"`
	LastActiveAgo   *jsint.UInt   `json:"last_active_ago,omitempty"`
	Presence        PresenceState `json:"presence"`
	StatusMsg       string        `json:"status_msg,omitempty"`
}

func (PresenceEventContent) EventType() Type { return TypePresence }

func (PresenceEventContent) isBasicContent() {}

// PresenceEvent is the one basic-level event carrying a top-level
// field beyond content and type: the user the presence describes. It
// is therefore a standalone type rather than a Basic instantiation,
// with the same accessor surface.
type PresenceEvent struct {
	Content PresenceEventContent
	Sender  ref.UserID
}

// EventType returns TypePresence.
func (PresenceEvent) EventType() Type { return TypePresence }

// EventContent returns the typed content erased to any.
func (e PresenceEvent) EventContent() any { return e.Content }

func (PresenceEvent) isAnyEvent() {}

type presenceEventJSON struct {
	Content json.RawMessage `json:"content"`
	Sender  ref.UserID      `json:"sender"`
	Type    Type            `json:"type"`
}

// MarshalJSON encodes the event with its sender.
func (e PresenceEvent) MarshalJSON() ([]byte, error) {
	if e.Sender.IsZero() {
		return nil, errors.New("event: encoding m.presence: frame has no sender")
	}
	content, err := json.Marshal(e.Content)
	if err != nil {
		return nil, fmt.Errorf("event: encoding m.presence content: %w", err)
	}
	return json.Marshal(presenceEventJSON{
		Content: content,
		Sender:  e.Sender,
		Type:    TypePresence,
	})
}

// DecodePresence decodes data as an m.presence event. Content and
// sender are both required.
func DecodePresence(data []byte) (PresenceEvent, error) {
	var e PresenceEvent
	raw, err := parseRaw(data)
	if err != nil {
		return e, err
	}
	t, err := raw.eventType(data)
	if err != nil {
		return e, err
	}
	if t != TypePresence {
		return e, semanticErrorJSON(
			fmt.Sprintf("event type %q does not match %q", t, TypePresence), data)
	}
	var missing []string
	if raw.Content == nil {
		missing = append(missing, "content")
	}
	if raw.Sender.IsZero() {
		missing = append(missing, "sender")
	}
	if len(missing) > 0 {
		return e, syntacticError(
			fmt.Sprintf("m.presence event is missing required fields: %s",
				strings.Join(missing, ", ")),
			data, nil)
	}
	content, err := decodeContent[PresenceEventContent](t, "content", raw.Content)
	if err != nil {
		return e, err
	}
	e.Content = content
	e.Sender = raw.Sender
	return e, nil
}

// UnmarshalJSON decodes via DecodePresence.
func (e *PresenceEvent) UnmarshalJSON(data []byte) error {
	decoded, err := DecodePresence(data)
	if err != nil {
		return err
	}
	*e = decoded
	return nil
}

func decodePresenceAny(data []byte) (AnyEvent, error) {
	e, err := DecodePresence(data)
	if err != nil {
		return nil, err
	}
	return e, nil
}
