// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package event

import (
	"encoding/json"
)

// ServerACLEventContent is the payload of m.room.server_acl: which
// servers may participate in the room. Entries are server-name glob
// patterns (*, ?), not literal names. Decoding fills the defaults:
// IP literals allowed, both lists empty. An empty allow list denies
// every server, including the sender's own.
type ServerACLEventContent struct {
	Allow           []string `json:"allow"`
	AllowIPLiterals bool     `json:"allow_ip_literals"`
	Deny            []string `json:"deny"`
}

func (ServerACLEventContent) EventType() Type { return TypeRoomServerACL }

func (ServerACLEventContent) isStateContent() {}

// UnmarshalJSON decodes with the defaults prefilled. Fields set to
// JSON null decode the same as absent ones.
func (c *ServerACLEventContent) UnmarshalJSON(data []byte) error {
	type wire ServerACLEventContent
	w := wire{AllowIPLiterals: true}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if w.Allow == nil {
		w.Allow = []string{}
	}
	if w.Deny == nil {
		w.Deny = []string{}
	}
	*c = ServerACLEventContent(w)
	return nil
}

// ServerACLEvent sets which servers may participate in the room.
type ServerACLEvent = State[ServerACLEventContent]
