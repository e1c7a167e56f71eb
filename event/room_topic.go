// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package event

// TopicEventContent is the payload of m.room.topic.
type TopicEventContent struct {
	Topic string `json:"topic"`
}

func (TopicEventContent) EventType() Type { return TypeRoomTopic }

func (TopicEventContent) isStateContent() {}

// TopicEvent sets the room's topic.
type TopicEvent = State[TopicEventContent]
