// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package event

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// PushRulesEventContent is the payload of m.push_rules: the account's
// notification ruleset. Only the global scope is defined.
type PushRulesEventContent struct {
	Global Ruleset `json:"global"`
}

func (PushRulesEventContent) EventType() Type { return TypePushRules }

func (PushRulesEventContent) isBasicContent() {}

// Ruleset holds the five rule kinds in their evaluation order:
// override, content, room, sender, underride.
type Ruleset struct {
	Content   []PatternedPushRule   `json:"content,omitempty"`
	Override  []ConditionalPushRule `json:"override,omitempty"`
	Room      []PushRule            `json:"room,omitempty"`
	Sender    []PushRule            `json:"sender,omitempty"`
	Underride []ConditionalPushRule `json:"underride,omitempty"`
}

// PushRule is a room or sender rule: the rule ID itself is the room or
// user being matched.
type PushRule struct {
	Actions []Action `json:"actions"`
	Default bool     `json:"default"`
	Enabled bool     `json:"enabled"`
	RuleID  string   `json:"rule_id"`
}

// PatternedPushRule is a content rule: it matches the event body
// against a glob pattern.
type PatternedPushRule struct {
	Actions []Action `json:"actions"`
	Default bool     `json:"default"`
	Enabled bool     `json:"enabled"`
	Pattern string   `json:"pattern"`
	RuleID  string   `json:"rule_id"`
}

// ConditionalPushRule is an override or underride rule: it applies
// when all of its conditions hold.
type ConditionalPushRule struct {
	Actions    []Action        `json:"actions"`
	Conditions []PushCondition `json:"conditions,omitempty"`
	Default    bool            `json:"default"`
	Enabled    bool            `json:"enabled"`
	RuleID     string          `json:"rule_id"`
}

// PushCondition is one condition of an override or underride rule.
// Kind selects which of the other fields apply: Key and Pattern for
// event_match, Is (a count comparison such as ">=2") for
// room_member_count, Key alone for sender_notification_permission.
type PushCondition struct {
	Is      string `json:"is,omitempty"`
	Key     string `json:"key,omitempty"`
	Kind    string `json:"kind"`
	Pattern string `json:"pattern,omitempty"`
}

// Condition kinds.
const (
	ConditionEventMatch                   = "event_match"
	ConditionContainsDisplayName          = "contains_display_name"
	ConditionRoomMemberCount              = "room_member_count"
	ConditionSenderNotificationPermission = "sender_notification_permission"
)

// ActionKind discriminates the Action union.
type ActionKind string

const (
	ActionNotify     ActionKind = "notify"
	ActionDontNotify ActionKind = "dont_notify"
	ActionCoalesce   ActionKind = "coalesce"
	ActionSetTweak   ActionKind = "set_tweak"
)

// Action is one entry of a rule's action list. The wire form is a
// bare string for the simple kinds and a {"set_tweak": ...} object
// for tweaks; Kind selects which, and Tweak and Value are populated
// only for ActionSetTweak.
type Action struct {
	Kind  ActionKind
	Tweak string
	// Value is the tweak's value verbatim; nil means the tweak's
	// default (for example, highlight defaults to true).
	Value json.RawMessage
}

type setTweakJSON struct {
	SetTweak string          `json:"set_tweak"`
	Value    json.RawMessage `json:"value,omitempty"`
}

// MarshalJSON writes the wire form selected by Kind.
func (a Action) MarshalJSON() ([]byte, error) {
	if a.Kind != ActionSetTweak {
		return json.Marshal(string(a.Kind))
	}
	return json.Marshal(setTweakJSON{SetTweak: a.Tweak, Value: a.Value})
}

// UnmarshalJSON accepts both wire forms. An unknown action string is
// a semantic failure: the rule parsed, it just names an action this
// vocabulary does not define.
func (a *Action) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return errors.New("empty push action")
	}
	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		switch ActionKind(s) {
		case ActionNotify, ActionDontNotify, ActionCoalesce:
			a.Kind = ActionKind(s)
			return nil
		}
		return semanticErrorJSON(fmt.Sprintf("unknown push action %q", s), data)
	case '{':
		var wire setTweakJSON
		if err := json.Unmarshal(trimmed, &wire); err != nil {
			return err
		}
		if wire.SetTweak == "" {
			return semanticErrorJSON("tweak action has no set_tweak field", data)
		}
		a.Kind = ActionSetTweak
		a.Tweak = wire.SetTweak
		a.Value = wire.Value
		return nil
	}
	return errors.New("push action is neither a string nor an object")
}

// PushRulesEvent replaces the account's notification ruleset.
type PushRulesEvent = Basic[PushRulesEventContent]
