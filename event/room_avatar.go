// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package event

// AvatarEventContent is the payload of m.room.avatar: the room's
// picture as an mxc URL, with optional image metadata.
type AvatarEventContent struct {
	Info *ImageInfo `json:"info,omitempty"`
	URL  string     `json:"url"`
}

func (AvatarEventContent) EventType() Type { return TypeRoomAvatar }

func (AvatarEventContent) isStateContent() {}

// AvatarEvent sets the room's avatar.
type AvatarEvent = State[AvatarEventContent]
