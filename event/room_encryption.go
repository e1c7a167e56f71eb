// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package event

import (
	"github.com/bureau-foundation/matrix-event/lib/jsint"
)

// EncryptionEventContent is the payload of m.room.encryption: turning
// encryption on for the room and configuring session rotation. The
// algorithm is advisory here (unlike in m.room.encrypted, nothing
// dispatches on it), so unknown values decode fine.
type EncryptionEventContent struct {
	Algorithm          Algorithm   `json:"algorithm"`
	RotationPeriodMs   *jsint.UInt `json:"rotation_period_ms,omitempty"`
	RotationPeriodMsgs *jsint.UInt `json:"rotation_period_msgs,omitempty"`
}

func (EncryptionEventContent) EventType() Type { return TypeRoomEncryption }

func (EncryptionEventContent) isStateContent() {}

// EncryptionEvent enables end-to-end encryption in a room. Once set
// it cannot be reverted.
type EncryptionEvent = State[EncryptionEventContent]
