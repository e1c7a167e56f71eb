// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package event

// TagEventContent is the payload of m.tag: the tags on a room. Room
// account data. Tag names are namespaced: m.* for protocol-defined
// tags (m.favourite, m.lowpriority), u.* for user-defined ones.
type TagEventContent struct {
	Tags map[string]TagInfo `json:"tags"`
}

func (TagEventContent) EventType() Type { return TypeTag }

func (TagEventContent) isBasicContent() {}

// TagInfo orders a tag's rooms. Order is a fraction in [0, 1]; rooms
// with an order sort before rooms without one. This is the one place
// the protocol uses a non-integer JSON number.
type TagInfo struct {
	Order *float64 `json:"order,omitempty"`
}

// TagEvent sets the tags on a room.
type TagEvent = Basic[TagEventContent]
