// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package event

import (
	"github.com/bureau-foundation/matrix-event/lib/ref"
)

// ForwardedRoomKeyEventContent is the payload of m.forwarded_room_key:
// a session key passed on by a device other than the original sender.
// The key chain records every forwarding hop, oldest first.
type ForwardedRoomKeyEventContent struct {
	Algorithm                    Algorithm  `json:"algorithm"`
	ForwardingCurve25519KeyChain []string   `json:"forwarding_curve25519_key_chain"`
	RoomID                       ref.RoomID `json:"room_id"`
	SenderClaimedEd25519Key      string     `json:"sender_claimed_ed25519_key"`
	SenderKey                    string     `json:"sender_key"`
	SessionID                    string     `json:"session_id"`
	SessionKey                   string     `json:"session_key"`
}

func (ForwardedRoomKeyEventContent) EventType() Type { return TypeForwardedRoomKey }

func (ForwardedRoomKeyEventContent) isBasicContent() {}

// ForwardedRoomKeyEvent forwards an encryption session key on behalf
// of its original sender.
type ForwardedRoomKeyEvent = Basic[ForwardedRoomKeyEventContent]
