// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package event

// Type is the value of an event's "type" field, the discriminant that
// selects the concrete record type during decoding. Matching is exact:
// no wildcards, no namespace patterns.
//
// The constants below enumerate every type the Matrix specification
// defines. Any other string is an extension type; it is carried
// verbatim and decodes into one of the custom catch-all records.
type Type string

// Account and session event types (basic level: content and type only).
const (
	// TypeDirect lists the rooms considered direct chats, per user.
	TypeDirect Type = "m.direct"
	// TypeDummy carries no content; used to trigger olm session
	// re-establishment.
	TypeDummy Type = "m.dummy"
	// TypeForwardedRoomKey shares a megolm session key obtained from
	// another device.
	TypeForwardedRoomKey Type = "m.forwarded_room_key"
	// TypeFullyRead marks the user's read-up-to position in a room.
	TypeFullyRead Type = "m.fully_read"
	// TypeIgnoredUserList lists users whose events are suppressed.
	TypeIgnoredUserList Type = "m.ignored_user_list"
	// TypePresence reports a user's online state.
	TypePresence Type = "m.presence"
	// TypePushRules holds the user's notification rulesets.
	TypePushRules Type = "m.push_rules"
	// TypeReceipt maps event IDs to read receipts.
	TypeReceipt Type = "m.receipt"
	// TypeRoomKey shares a megolm session key with a device.
	TypeRoomKey Type = "m.room_key"
	// TypeRoomKeyRequest requests (or cancels a request for) a room key.
	TypeRoomKeyRequest Type = "m.room_key_request"
	// TypeTag holds the user's tags for a room.
	TypeTag Type = "m.tag"
	// TypeTyping lists the users currently typing in a room.
	TypeTyping Type = "m.typing"
)

// Device verification event types (basic level).
const (
	TypeKeyVerificationAccept  Type = "m.key.verification.accept"
	TypeKeyVerificationCancel  Type = "m.key.verification.cancel"
	TypeKeyVerificationKey     Type = "m.key.verification.key"
	TypeKeyVerificationMac     Type = "m.key.verification.mac"
	TypeKeyVerificationRequest Type = "m.key.verification.request"
	TypeKeyVerificationStart   Type = "m.key.verification.start"
)

// Room timeline event types (room level: addressed, non-state).
const (
	// TypeCallAnswer answers a VoIP call offer.
	TypeCallAnswer Type = "m.call.answer"
	// TypeCallCandidates carries ICE candidates for call setup.
	TypeCallCandidates Type = "m.call.candidates"
	// TypeCallHangup ends a VoIP call.
	TypeCallHangup Type = "m.call.hangup"
	// TypeCallInvite offers a VoIP call.
	TypeCallInvite Type = "m.call.invite"
	// TypeRoomEncrypted wraps an end-to-end encrypted payload.
	TypeRoomEncrypted Type = "m.room.encrypted"
	// TypeRoomMessage is an instant message.
	TypeRoomMessage Type = "m.room.message"
	// TypeRoomMessageFeedback is the deprecated delivery/read
	// confirmation for a message.
	TypeRoomMessageFeedback Type = "m.room.message.feedback"
	// TypeRoomRedaction strips the content of another event.
	TypeRoomRedaction Type = "m.room.redaction"
	// TypeSticker is an image sent as a sticker.
	TypeSticker Type = "m.sticker"
)

// Room state event types (state level: addressed, keyed by state_key).
const (
	TypeRoomAliases           Type = "m.room.aliases"
	TypeRoomAvatar            Type = "m.room.avatar"
	TypeRoomCanonicalAlias    Type = "m.room.canonical_alias"
	TypeRoomCreate            Type = "m.room.create"
	TypeRoomEncryption        Type = "m.room.encryption"
	TypeRoomGuestAccess       Type = "m.room.guest_access"
	TypeRoomHistoryVisibility Type = "m.room.history_visibility"
	TypeRoomJoinRules         Type = "m.room.join_rules"
	TypeRoomMember            Type = "m.room.member"
	TypeRoomName              Type = "m.room.name"
	TypeRoomPinnedEvents      Type = "m.room.pinned_events"
	TypeRoomPowerLevels       Type = "m.room.power_levels"
	TypeRoomServerACL         Type = "m.room.server_acl"
	TypeRoomThirdPartyInvite  Type = "m.room.third_party_invite"
	TypeRoomTombstone         Type = "m.room.tombstone"
	TypeRoomTopic             Type = "m.room.topic"
)

// Level is an event type's maximal capability level: the richest of
// the three event interfaces its records satisfy. State-level records
// also satisfy the room and basic contracts; the level classifies the
// type, not the uses.
type Level int

const (
	// LevelNone is the level of unknown (extension) types, whose
	// level is determined per event by the fields present.
	LevelNone Level = iota
	// LevelBasic events carry only content and type.
	LevelBasic
	// LevelRoom events additionally carry timeline addressing fields.
	LevelRoom
	// LevelState events additionally carry a state key.
	LevelState
)

// String returns the level name used in diagnostics.
func (l Level) String() string {
	switch l {
	case LevelBasic:
		return "basic"
	case LevelRoom:
		return "room"
	case LevelState:
		return "state"
	default:
		return "none"
	}
}

// registry classifies every known event type by its maximal level.
// The per-level decode dispatch tables in collections.go must agree
// with this table; TestRegistryAgreesWithDispatch enforces that.
var registry = map[Type]Level{
	TypeDirect:                 LevelBasic,
	TypeDummy:                  LevelBasic,
	TypeForwardedRoomKey:       LevelBasic,
	TypeFullyRead:              LevelBasic,
	TypeIgnoredUserList:        LevelBasic,
	TypeKeyVerificationAccept:  LevelBasic,
	TypeKeyVerificationCancel:  LevelBasic,
	TypeKeyVerificationKey:     LevelBasic,
	TypeKeyVerificationMac:     LevelBasic,
	TypeKeyVerificationRequest: LevelBasic,
	TypeKeyVerificationStart:   LevelBasic,
	TypePresence:               LevelBasic,
	TypePushRules:              LevelBasic,
	TypeReceipt:                LevelBasic,
	TypeRoomKey:                LevelBasic,
	TypeRoomKeyRequest:         LevelBasic,
	TypeTag:                    LevelBasic,
	TypeTyping:                 LevelBasic,

	TypeCallAnswer:          LevelRoom,
	TypeCallCandidates:      LevelRoom,
	TypeCallHangup:          LevelRoom,
	TypeCallInvite:          LevelRoom,
	TypeRoomEncrypted:       LevelRoom,
	TypeRoomMessage:         LevelRoom,
	TypeRoomMessageFeedback: LevelRoom,
	TypeRoomRedaction:       LevelRoom,
	TypeSticker:             LevelRoom,

	TypeRoomAliases:           LevelState,
	TypeRoomAvatar:            LevelState,
	TypeRoomCanonicalAlias:    LevelState,
	TypeRoomCreate:            LevelState,
	TypeRoomEncryption:        LevelState,
	TypeRoomGuestAccess:       LevelState,
	TypeRoomHistoryVisibility: LevelState,
	TypeRoomJoinRules:         LevelState,
	TypeRoomMember:            LevelState,
	TypeRoomName:              LevelState,
	TypeRoomPinnedEvents:      LevelState,
	TypeRoomPowerLevels:       LevelState,
	TypeRoomServerACL:         LevelState,
	TypeRoomThirdPartyInvite:  LevelState,
	TypeRoomTombstone:         LevelState,
	TypeRoomTopic:             LevelState,
}

// Known reports whether t is one of the event types defined by the
// Matrix specification. Unknown types are valid extension types, not
// errors.
func (t Type) Known() bool {
	_, ok := registry[t]
	return ok
}

// Level returns the maximal capability level of a known type, or
// LevelNone for extension types.
func (t Type) Level() Level {
	return registry[t]
}

// String returns the wire discriminant.
func (t Type) String() string { return string(t) }
