// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package event

import (
	"encoding/json"
	"errors"
)

// Membership is a user's relationship to a room.
type Membership string

const (
	MembershipBan    Membership = "ban"
	MembershipInvite Membership = "invite"
	MembershipJoin   Membership = "join"
	MembershipKnock  Membership = "knock"
	MembershipLeave  Membership = "leave"
)

// MemberEventContent is the payload of m.room.member; the state key
// is the member's user ID. The profile fields snapshot the member's
// profile at the time of the change, and an empty avatar_url decodes
// identically to an absent one.
type MemberEventContent struct {
	AvatarURL        string                `json:"avatar_url,omitempty"`
	DisplayName      string                `json:"displayname,omitempty"`
	IsDirect         *bool                 `json:"is_direct,omitempty"`
	Membership       Membership            `json:"membership"`
	ThirdPartyInvite *ThirdPartyInviteInfo `json:"third_party_invite,omitempty"`
}

func (MemberEventContent) EventType() Type { return TypeRoomMember }

func (MemberEventContent) isStateContent() {}

// ThirdPartyInviteInfo ties a membership change to the third-party
// invite it fulfils. The signed block is carried opaquely; verifying
// it is the server's job.
type ThirdPartyInviteInfo struct {
	DisplayName string          `json:"display_name"`
	Signed      json.RawMessage `json:"signed"`
}

// UnmarshalJSON requires a membership; a member event without one
// does not parse into anything usable.
func (c *MemberEventContent) UnmarshalJSON(data []byte) error {
	type wire MemberEventContent
	var w wire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if w.Membership == "" {
		return errors.New("member content has no membership field")
	}
	*c = MemberEventContent(w)
	return nil
}

// MemberEvent records a user's membership change in a room.
type MemberEvent = State[MemberEventContent]
