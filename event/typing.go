// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package event

import (
	"encoding/json"

	"github.com/bureau-foundation/matrix-event/lib/ref"
)

// TypingEventContent is the payload of m.typing: everybody currently
// typing in the room. Ephemeral, replaced wholesale on every update.
type TypingEventContent struct {
	UserIDs []ref.UserID `json:"user_ids"`
}

func (TypingEventContent) EventType() Type { return TypeTyping }

func (TypingEventContent) isBasicContent() {}

// MarshalJSON writes a nil list as []; user_ids is required on the
// wire.
func (c TypingEventContent) MarshalJSON() ([]byte, error) {
	type wire TypingEventContent
	w := wire(c)
	if w.UserIDs == nil {
		w.UserIDs = []ref.UserID{}
	}
	return json.Marshal(w)
}

// TypingEvent reports who is typing in a room.
type TypingEvent = Basic[TypingEventContent]
