// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package event

import (
	"encoding/json"
	"errors"
	"sort"

	"github.com/bureau-foundation/matrix-event/lib/ref"
)

// IgnoredUserListEventContent is the payload of m.ignored_user_list.
// The wire shape is a map from user ID to an empty object (reserved
// for future per-user options); since the values carry nothing, the
// decoded form is the sorted list of keys.
type IgnoredUserListEventContent struct {
	// IgnoredUsers is sorted by user ID after a decode.
	IgnoredUsers []ref.UserID
}

func (IgnoredUserListEventContent) EventType() Type { return TypeIgnoredUserList }

func (IgnoredUserListEventContent) isBasicContent() {}

type ignoredUserListJSON struct {
	IgnoredUsers map[ref.UserID]Empty `json:"ignored_users"`
}

// MarshalJSON raises the list back to the wire's map shape. An empty
// list encodes as {"ignored_users": {}}; the field is required.
func (c IgnoredUserListEventContent) MarshalJSON() ([]byte, error) {
	wire := ignoredUserListJSON{
		IgnoredUsers: make(map[ref.UserID]Empty, len(c.IgnoredUsers)),
	}
	for _, user := range c.IgnoredUsers {
		wire.IgnoredUsers[user] = Empty{}
	}
	return json.Marshal(wire)
}

// UnmarshalJSON lowers the wire map to a sorted list of user IDs.
func (c *IgnoredUserListEventContent) UnmarshalJSON(data []byte) error {
	var wire ignoredUserListJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	if wire.IgnoredUsers == nil {
		return errors.New("ignored_user_list content has no ignored_users field")
	}
	users := make([]ref.UserID, 0, len(wire.IgnoredUsers))
	for user := range wire.IgnoredUsers {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].String() < users[j].String()
	})
	c.IgnoredUsers = users
	return nil
}

// IgnoredUserListEvent hides all events from the listed users.
type IgnoredUserListEvent = Basic[IgnoredUserListEventContent]
