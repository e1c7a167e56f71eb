// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package event

import (
	"encoding/json"
	"fmt"
)

// maxNameLength is the protocol's cap on room names, in bytes.
const maxNameLength = 255

// NameEventContent is the payload of m.room.name. An empty Name means
// the room has no name; sending one clears it.
type NameEventContent struct {
	Name string `json:"name,omitempty"`
}

func (NameEventContent) EventType() Type { return TypeRoomName }

func (NameEventContent) isStateContent() {}

// UnmarshalJSON enforces the length cap. An over-long name is a
// semantic failure: the JSON is a perfectly good string, it is just
// not an admissible room name.
func (c *NameEventContent) UnmarshalJSON(data []byte) error {
	type wire NameEventContent
	var w wire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if len(w.Name) > maxNameLength {
		return semanticErrorJSON(
			fmt.Sprintf("room name of %d bytes exceeds the %d byte limit",
				len(w.Name), maxNameLength),
			data)
	}
	*c = NameEventContent(w)
	return nil
}

// NameEvent sets the room's human-readable name.
type NameEvent = State[NameEventContent]
