// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package event

import (
	"github.com/bureau-foundation/matrix-event/lib/ref"
)

// KeyRequestAction says whether a key request starts or cancels.
type KeyRequestAction string

const (
	KeyRequestActionRequest      KeyRequestAction = "request"
	KeyRequestActionCancellation KeyRequestAction = "request_cancellation"
)

// RoomKeyRequestEventContent is the payload of m.room_key_request:
// one of a user's devices asking the others for a session key it is
// missing. Body is present for requests and absent for cancellations.
type RoomKeyRequestEventContent struct {
	Action             KeyRequestAction  `json:"action"`
	Body               *RequestedKeyInfo `json:"body,omitempty"`
	RequestID          string            `json:"request_id"`
	RequestingDeviceID ref.DeviceID      `json:"requesting_device_id"`
}

func (RoomKeyRequestEventContent) EventType() Type { return TypeRoomKeyRequest }

func (RoomKeyRequestEventContent) isBasicContent() {}

// RequestedKeyInfo identifies the session key being asked for.
type RequestedKeyInfo struct {
	Algorithm Algorithm  `json:"algorithm"`
	RoomID    ref.RoomID `json:"room_id"`
	SenderKey string     `json:"sender_key"`
	SessionID string     `json:"session_id"`
}

// RoomKeyRequestEvent asks a user's other devices for a session key.
type RoomKeyRequestEvent = Basic[RoomKeyRequestEventContent]
