// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package event

// GuestAccess says whether unregistered guest users may join.
type GuestAccess string

const (
	GuestAccessCanJoin   GuestAccess = "can_join"
	GuestAccessForbidden GuestAccess = "forbidden"
)

// GuestAccessEventContent is the payload of m.room.guest_access.
type GuestAccessEventContent struct {
	GuestAccess GuestAccess `json:"guest_access"`
}

func (GuestAccessEventContent) EventType() Type { return TypeRoomGuestAccess }

func (GuestAccessEventContent) isStateContent() {}

// GuestAccessEvent sets the room's guest policy.
type GuestAccessEvent = State[GuestAccessEventContent]
