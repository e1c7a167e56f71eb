// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package event

// StickerEventContent is the payload of m.sticker: an image sent as
// its own timeline event. Body describes the sticker for accessibility
// and fallback display.
type StickerEventContent struct {
	Body string    `json:"body"`
	Info ImageInfo `json:"info"`
	URL  string    `json:"url"`
}

func (StickerEventContent) EventType() Type { return TypeSticker }

func (StickerEventContent) isRoomContent() {}

// StickerEvent sends a sticker into a room.
type StickerEvent = Room[StickerEventContent]
