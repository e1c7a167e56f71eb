// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package event

import (
	"encoding/json"

	"github.com/bureau-foundation/matrix-event/lib/jsint"
	"github.com/bureau-foundation/matrix-event/lib/ref"
)

// PowerLevelsEventContent is the payload of m.room.power_levels.
// Decoding fills the protocol defaults (moderation actions at 50,
// everything else at 0), so a decoded value always answers level
// queries without nil checks. Levels may be negative.
type PowerLevelsEventContent struct {
	Ban           jsint.Int                `json:"ban"`
	Events        map[Type]jsint.Int       `json:"events"`
	EventsDefault jsint.Int                `json:"events_default"`
	Invite        jsint.Int                `json:"invite"`
	Kick          jsint.Int                `json:"kick"`
	Notifications NotificationPowerLevels  `json:"notifications"`
	Redact        jsint.Int                `json:"redact"`
	StateDefault  jsint.Int                `json:"state_default"`
	Users         map[ref.UserID]jsint.Int `json:"users"`
	UsersDefault  jsint.Int                `json:"users_default"`
}

func (PowerLevelsEventContent) EventType() Type { return TypeRoomPowerLevels }

func (PowerLevelsEventContent) isStateContent() {}

// NotificationPowerLevels sets the levels needed to trigger room-wide
// notifications.
type NotificationPowerLevels struct {
	Room jsint.Int `json:"room"`
}

// UnmarshalJSON decodes with the defaults prefilled.
func (c *PowerLevelsEventContent) UnmarshalJSON(data []byte) error {
	type wire PowerLevelsEventContent
	w := wire{
		Ban:           50,
		Kick:          50,
		Notifications: NotificationPowerLevels{Room: 50},
		Redact:        50,
		StateDefault:  50,
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if w.Events == nil {
		w.Events = map[Type]jsint.Int{}
	}
	if w.Users == nil {
		w.Users = map[ref.UserID]jsint.Int{}
	}
	*c = PowerLevelsEventContent(w)
	return nil
}

// UserLevel returns the user's power level, falling back to the
// room's default.
func (c PowerLevelsEventContent) UserLevel(user ref.UserID) jsint.Int {
	if level, ok := c.Users[user]; ok {
		return level
	}
	return c.UsersDefault
}

// EventLevel returns the level required to send events of type t: the
// per-type override if present, otherwise the state or message
// default depending on t's capability level.
func (c PowerLevelsEventContent) EventLevel(t Type) jsint.Int {
	if level, ok := c.Events[t]; ok {
		return level
	}
	if t.Level() == LevelState {
		return c.StateDefault
	}
	return c.EventsDefault
}

// PowerLevelsEvent sets the room's authorization levels.
type PowerLevelsEvent = State[PowerLevelsEventContent]
