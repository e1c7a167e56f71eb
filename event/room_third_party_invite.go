// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package event

// ThirdPartyInviteEventContent is the payload of
// m.room.third_party_invite: an invite addressed to an email address
// or other third-party identifier rather than a user ID. The state
// key is an opaque token; a later m.room.member event redeems it by
// reference. The public keys sign the redemption and can be checked
// for revocation at the validity URL.
type ThirdPartyInviteEventContent struct {
	DisplayName    string      `json:"display_name"`
	KeyValidityURL string      `json:"key_validity_url"`
	PublicKey      string      `json:"public_key"`
	PublicKeys     []PublicKey `json:"public_keys,omitempty"`
}

func (ThirdPartyInviteEventContent) EventType() Type { return TypeRoomThirdPartyInvite }

func (ThirdPartyInviteEventContent) isStateContent() {}

// PublicKey is one key that may sign a third-party invite redemption.
type PublicKey struct {
	KeyValidityURL string `json:"key_validity_url,omitempty"`
	PublicKey      string `json:"public_key"`
}

// ThirdPartyInviteEvent invites a third-party identifier to the room.
type ThirdPartyInviteEvent = State[ThirdPartyInviteEventContent]
