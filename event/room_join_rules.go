// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package event

// JoinRule says how users become members of a room.
type JoinRule string

const (
	// JoinRuleInvite admits only invited users.
	JoinRuleInvite JoinRule = "invite"
	// JoinRuleKnock lets users request an invite by knocking.
	JoinRuleKnock JoinRule = "knock"
	// JoinRulePrivate is reserved; servers never grant joins.
	JoinRulePrivate JoinRule = "private"
	// JoinRulePublic admits anyone.
	JoinRulePublic JoinRule = "public"
)

// JoinRulesEventContent is the payload of m.room.join_rules.
type JoinRulesEventContent struct {
	JoinRule JoinRule `json:"join_rule"`
}

func (JoinRulesEventContent) EventType() Type { return TypeRoomJoinRules }

func (JoinRulesEventContent) isStateContent() {}

// JoinRulesEvent sets how users may join the room.
type JoinRulesEvent = State[JoinRulesEventContent]
