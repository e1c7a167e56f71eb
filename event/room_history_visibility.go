// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package event

// HistoryVisibility says who may read events sent before they joined.
type HistoryVisibility string

const (
	HistoryVisibilityInvited       HistoryVisibility = "invited"
	HistoryVisibilityJoined        HistoryVisibility = "joined"
	HistoryVisibilityShared        HistoryVisibility = "shared"
	HistoryVisibilityWorldReadable HistoryVisibility = "world_readable"
)

// HistoryVisibilityEventContent is the payload of
// m.room.history_visibility.
type HistoryVisibilityEventContent struct {
	HistoryVisibility HistoryVisibility `json:"history_visibility"`
}

func (HistoryVisibilityEventContent) EventType() Type { return TypeRoomHistoryVisibility }

func (HistoryVisibilityEventContent) isStateContent() {}

// HistoryVisibilityEvent sets who can read the room's history.
type HistoryVisibilityEvent = State[HistoryVisibilityEventContent]
