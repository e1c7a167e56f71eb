// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package event

import (
	"fmt"
)

// The Any* interfaces are sealed unions over the decoded event types
// at each capability level. Sealing (the unexported marker methods)
// keeps type switches over them exhaustive within this package's
// vocabulary: the concrete types are the registered events, the three
// extension catch-alls, and nothing else.
//
// The marker sets nest, so the conversions between levels that cannot
// fail are plain interface assignments: every AnyStateEvent is an
// AnyRoomEvent, and every AnyRoomEvent is an AnyEvent.

// AnyEvent is any decoded event: basic, room, or state level, known or
// extension.
type AnyEvent interface {
	Event
	isAnyEvent()
}

// AnyRoomEvent is any decoded event carrying room addressing: room or
// state level, known or extension. Basic-level events are excluded.
type AnyRoomEvent interface {
	RoomEvent
	isAnyEvent()
	isAnyRoomEvent()
}

// AnyStateEvent is any decoded state event, known or extension.
type AnyStateEvent interface {
	StateEvent
	isAnyEvent()
	isAnyRoomEvent()
	isAnyStateEvent()
}

func (Basic[C]) isAnyEvent() {}

func (Room[C]) isAnyEvent()     {}
func (Room[C]) isAnyRoomEvent() {}

func (State[C]) isAnyEvent()      {}
func (State[C]) isAnyRoomEvent()  {}
func (State[C]) isAnyStateEvent() {}

// Dispatch tables route a known discriminant to its concrete decoder.
// Every registry entry must appear in exactly one table, at the level
// the registry assigns; TestRegistryAgreesWithDispatch enforces the
// correspondence.

type basicDecoder func(data []byte) (AnyEvent, error)
type roomDecoder func(data []byte) (AnyRoomEvent, error)
type stateDecoder func(data []byte) (AnyStateEvent, error)

// liftBasic adapts DecodeBasic[C] to the table signature.
func liftBasic[C BasicContent](data []byte) (AnyEvent, error) {
	e, err := DecodeBasic[C](data)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// liftRoom adapts DecodeRoom[C] to the table signature.
func liftRoom[C RoomContent](data []byte) (AnyRoomEvent, error) {
	e, err := DecodeRoom[C](data)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// liftState adapts DecodeState[C] to the table signature.
func liftState[C StateContent](data []byte) (AnyStateEvent, error) {
	e, err := DecodeState[C](data)
	if err != nil {
		return nil, err
	}
	return e, nil
}

var basicDecoders = map[Type]basicDecoder{
	TypeDirect:                 liftBasic[DirectEventContent],
	TypeDummy:                  liftBasic[DummyEventContent],
	TypeForwardedRoomKey:       liftBasic[ForwardedRoomKeyEventContent],
	TypeFullyRead:              liftBasic[FullyReadEventContent],
	TypeIgnoredUserList:        liftBasic[IgnoredUserListEventContent],
	TypeKeyVerificationAccept:  liftBasic[KeyVerificationAcceptEventContent],
	TypeKeyVerificationCancel:  liftBasic[KeyVerificationCancelEventContent],
	TypeKeyVerificationKey:     liftBasic[KeyVerificationKeyEventContent],
	TypeKeyVerificationMac:     liftBasic[KeyVerificationMacEventContent],
	TypeKeyVerificationRequest: liftBasic[KeyVerificationRequestEventContent],
	TypeKeyVerificationStart:   liftBasic[KeyVerificationStartEventContent],
	TypePresence:               decodePresenceAny,
	TypePushRules:              liftBasic[PushRulesEventContent],
	TypeReceipt:                liftBasic[ReceiptEventContent],
	TypeRoomKey:                liftBasic[RoomKeyEventContent],
	TypeRoomKeyRequest:         liftBasic[RoomKeyRequestEventContent],
	TypeTag:                    liftBasic[TagEventContent],
	TypeTyping:                 liftBasic[TypingEventContent],
}

var roomDecoders = map[Type]roomDecoder{
	TypeCallAnswer:          liftRoom[CallAnswerEventContent],
	TypeCallCandidates:      liftRoom[CallCandidatesEventContent],
	TypeCallHangup:          liftRoom[CallHangupEventContent],
	TypeCallInvite:          liftRoom[CallInviteEventContent],
	TypeRoomEncrypted:       liftRoom[EncryptedEventContent],
	TypeRoomMessage:         liftRoom[MessageEventContent],
	TypeRoomMessageFeedback: liftRoom[FeedbackEventContent],
	TypeRoomRedaction:       decodeRedactionAny,
	TypeSticker:             liftRoom[StickerEventContent],
}

var stateDecoders = map[Type]stateDecoder{
	TypeRoomAliases:           liftState[AliasesEventContent],
	TypeRoomAvatar:            liftState[AvatarEventContent],
	TypeRoomCanonicalAlias:    liftState[CanonicalAliasEventContent],
	TypeRoomCreate:            liftState[CreateEventContent],
	TypeRoomEncryption:        liftState[EncryptionEventContent],
	TypeRoomGuestAccess:       liftState[GuestAccessEventContent],
	TypeRoomHistoryVisibility: liftState[HistoryVisibilityEventContent],
	TypeRoomJoinRules:         liftState[JoinRulesEventContent],
	TypeRoomMember:            liftState[MemberEventContent],
	TypeRoomName:              liftState[NameEventContent],
	TypeRoomPinnedEvents:      liftState[PinnedEventsEventContent],
	TypeRoomPowerLevels:       liftState[PowerLevelsEventContent],
	TypeRoomServerACL:         liftState[ServerACLEventContent],
	TypeRoomThirdPartyInvite:  liftState[ThirdPartyInviteEventContent],
	TypeRoomTombstone:         liftState[TombstoneEventContent],
	TypeRoomTopic:             liftState[TopicEventContent],
}

// DecodeAny decodes an event of any capability level, selecting the
// concrete schema by discriminant:
//
//   - A known type decodes with its registered schema at its
//     registered level.
//   - An unknown type decodes into an extension catch-all, choosing
//     the level by which addressing fields the frame carries: a
//     state_key selects the state catch-all, any of event_id, room_id,
//     or sender selects the room catch-all, and a bare frame selects
//     the basic catch-all. The catch-all decode still enforces that
//     level's required fields.
func DecodeAny(data []byte) (AnyEvent, error) {
	raw, err := parseRaw(data)
	if err != nil {
		return nil, err
	}
	t, err := raw.eventType(data)
	if err != nil {
		return nil, err
	}
	switch t.Level() {
	case LevelBasic:
		decode, ok := basicDecoders[t]
		if !ok {
			return nil, fmt.Errorf("event: %s is registered but has no decoder", t)
		}
		return decode(data)
	case LevelRoom:
		decode, ok := roomDecoders[t]
		if !ok {
			return nil, fmt.Errorf("event: %s is registered but has no decoder", t)
		}
		return decode(data)
	case LevelState:
		decode, ok := stateDecoders[t]
		if !ok {
			return nil, fmt.Errorf("event: %s is registered but has no decoder", t)
		}
		return decode(data)
	}
	switch {
	case raw.StateKey != nil:
		return liftState[CustomContent](data)
	case !raw.EventID.IsZero() || !raw.RoomID.IsZero() || !raw.Sender.IsZero():
		return liftRoom[CustomContent](data)
	default:
		return liftBasic[CustomContent](data)
	}
}

// DecodeAnyRoom decodes an event that must carry room addressing: a
// room or state level event, known or extension. A known basic-level
// type is rejected as semantically out of place. Unknown types decode
// into the state catch-all when a state_key is present and the room
// catch-all otherwise.
func DecodeAnyRoom(data []byte) (AnyRoomEvent, error) {
	raw, err := parseRaw(data)
	if err != nil {
		return nil, err
	}
	t, err := raw.eventType(data)
	if err != nil {
		return nil, err
	}
	switch t.Level() {
	case LevelBasic:
		return nil, semanticErrorJSON(fmt.Sprintf("%s is not a room event", t), data)
	case LevelRoom:
		decode, ok := roomDecoders[t]
		if !ok {
			return nil, fmt.Errorf("event: %s is registered but has no decoder", t)
		}
		return decode(data)
	case LevelState:
		decode, ok := stateDecoders[t]
		if !ok {
			return nil, fmt.Errorf("event: %s is registered but has no decoder", t)
		}
		return decode(data)
	}
	if raw.StateKey != nil {
		return liftState[CustomContent](data)
	}
	return liftRoom[CustomContent](data)
}

// DecodeAnyState decodes an event that must be state level. Known
// basic and room level types are rejected as semantically out of
// place; unknown types decode into the state catch-all.
func DecodeAnyState(data []byte) (AnyStateEvent, error) {
	raw, err := parseRaw(data)
	if err != nil {
		return nil, err
	}
	t, err := raw.eventType(data)
	if err != nil {
		return nil, err
	}
	switch t.Level() {
	case LevelBasic, LevelRoom:
		return nil, semanticErrorJSON(fmt.Sprintf("%s is not a state event", t), data)
	case LevelState:
		decode, ok := stateDecoders[t]
		if !ok {
			return nil, fmt.Errorf("event: %s is registered but has no decoder", t)
		}
		return decode(data)
	}
	return liftState[CustomContent](data)
}
