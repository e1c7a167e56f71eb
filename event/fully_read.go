// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package event

import (
	"github.com/bureau-foundation/matrix-event/lib/ref"
)

// FullyReadEventContent is the payload of m.fully_read: the event up
// to which the user has read the room. Room account data.
type FullyReadEventContent struct {
	EventID ref.EventID `json:"event_id"`
}

func (FullyReadEventContent) EventType() Type { return TypeFullyRead }

func (FullyReadEventContent) isBasicContent() {}

// FullyReadEvent marks the user's read-up-to position in a room.
type FullyReadEvent = Basic[FullyReadEventContent]
