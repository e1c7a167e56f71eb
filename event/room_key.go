// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package event

import (
	"github.com/bureau-foundation/matrix-event/lib/ref"
)

// RoomKeyEventContent is the payload of m.room_key: a Megolm session
// key being shared with a device. Always sent encrypted inside an
// m.room.encrypted envelope; it appears in plaintext only after
// decryption.
type RoomKeyEventContent struct {
	Algorithm  Algorithm  `json:"algorithm"`
	RoomID     ref.RoomID `json:"room_id"`
	SessionID  string     `json:"session_id"`
	SessionKey string     `json:"session_key"`
}

func (RoomKeyEventContent) EventType() Type { return TypeRoomKey }

func (RoomKeyEventContent) isBasicContent() {}

// RoomKeyEvent shares an encryption session key with a device.
type RoomKeyEvent = Basic[RoomKeyEventContent]
