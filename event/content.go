// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package event

// Content is implemented by every event content (payload) type. The
// marker interfaces below restrict which envelope a content type may
// occupy: a content type declares its maximal level by implementing
// exactly one of BasicContent, RoomContent, or StateContent (the
// custom catch-all content implements all three, since extension
// events exist at every level).
type Content interface {
	// EventType returns the "type" discriminant written to the wire
	// for events carrying this content.
	EventType() Type
}

// BasicContent marks content types carried by basic events.
type BasicContent interface {
	Content
	isBasicContent()
}

// RoomContent marks content types carried by room timeline events.
type RoomContent interface {
	Content
	isRoomContent()
}

// StateContent marks content types carried by state events.
type StateContent interface {
	Content
	isStateContent()
}

// Empty is a content payload with no fields. It encodes as {} and
// decoding ignores whatever fields are present. Used for wire maps
// whose values carry no information, such as the ignored-user map.
type Empty struct{}
