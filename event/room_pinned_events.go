// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package event

import (
	"encoding/json"

	"github.com/bureau-foundation/matrix-event/lib/ref"
)

// PinnedEventsEventContent is the payload of m.room.pinned_events:
// the ordered list of pinned event IDs, replaced wholesale.
type PinnedEventsEventContent struct {
	Pinned []ref.EventID `json:"pinned"`
}

func (PinnedEventsEventContent) EventType() Type { return TypeRoomPinnedEvents }

func (PinnedEventsEventContent) isStateContent() {}

// MarshalJSON writes a nil list as []; pinned is required on the
// wire.
func (c PinnedEventsEventContent) MarshalJSON() ([]byte, error) {
	type wire PinnedEventsEventContent
	w := wire(c)
	if w.Pinned == nil {
		w.Pinned = []ref.EventID{}
	}
	return json.Marshal(w)
}

// PinnedEventsEvent sets which events are pinned in the room.
type PinnedEventsEvent = State[PinnedEventsEventContent]
