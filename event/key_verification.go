// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package event

import (
	"github.com/bureau-foundation/matrix-event/lib/jsint"
	"github.com/bureau-foundation/matrix-event/lib/ref"
)

// The m.key.verification.* family implements interactive device
// verification. All six events share a transaction_id correlating
// them into one verification flow; the SAS-specific fields follow the
// m.sas.v1 method, the only one defined.

// KeyVerificationRequestEventContent is the payload of
// m.key.verification.request: a device proposing verification and the
// methods it supports.
type KeyVerificationRequestEventContent struct {
	FromDevice    ref.DeviceID `json:"from_device"`
	Methods       []string     `json:"methods"`
	Timestamp     jsint.UInt   `json:"timestamp"`
	TransactionID string       `json:"transaction_id"`
}

func (KeyVerificationRequestEventContent) EventType() Type { return TypeKeyVerificationRequest }

func (KeyVerificationRequestEventContent) isBasicContent() {}

// KeyVerificationRequestEvent proposes a verification flow.
type KeyVerificationRequestEvent = Basic[KeyVerificationRequestEventContent]

// KeyVerificationStartEventContent is the payload of
// m.key.verification.start: the first device commits to a method and,
// for m.sas.v1, offers its protocol parameters.
type KeyVerificationStartEventContent struct {
	FromDevice                 ref.DeviceID `json:"from_device"`
	Hashes                     []string     `json:"hashes,omitempty"`
	KeyAgreementProtocols      []string     `json:"key_agreement_protocols,omitempty"`
	MessageAuthenticationCodes []string     `json:"message_authentication_codes,omitempty"`
	Method                     string       `json:"method"`
	NextMethod                 string       `json:"next_method,omitempty"`
	ShortAuthenticationString  []string     `json:"short_authentication_string,omitempty"`
	TransactionID              string       `json:"transaction_id"`
}

func (KeyVerificationStartEventContent) EventType() Type { return TypeKeyVerificationStart }

func (KeyVerificationStartEventContent) isBasicContent() {}

// KeyVerificationStartEvent begins a verification flow.
type KeyVerificationStartEvent = Basic[KeyVerificationStartEventContent]

// KeyVerificationAcceptEventContent is the payload of
// m.key.verification.accept: the second device picks one option from
// each list the start event offered and commits to its key.
type KeyVerificationAcceptEventContent struct {
	Commitment                string   `json:"commitment"`
	Hash                      string   `json:"hash"`
	KeyAgreementProtocol      string   `json:"key_agreement_protocol"`
	Method                    string   `json:"method"`
	MessageAuthenticationCode string   `json:"message_authentication_code"`
	ShortAuthenticationString []string `json:"short_authentication_string"`
	TransactionID             string   `json:"transaction_id"`
}

func (KeyVerificationAcceptEventContent) EventType() Type { return TypeKeyVerificationAccept }

func (KeyVerificationAcceptEventContent) isBasicContent() {}

// KeyVerificationAcceptEvent accepts a started verification flow.
type KeyVerificationAcceptEvent = Basic[KeyVerificationAcceptEventContent]

// KeyVerificationKeyEventContent is the payload of
// m.key.verification.key: a device's ephemeral public key.
type KeyVerificationKeyEventContent struct {
	Key           string `json:"key"`
	TransactionID string `json:"transaction_id"`
}

func (KeyVerificationKeyEventContent) EventType() Type { return TypeKeyVerificationKey }

func (KeyVerificationKeyEventContent) isBasicContent() {}

// KeyVerificationKeyEvent exchanges ephemeral keys mid-flow.
type KeyVerificationKeyEvent = Basic[KeyVerificationKeyEventContent]

// KeyVerificationMacEventContent is the payload of
// m.key.verification.mac: MACs of the device's keys, keyed by key ID.
type KeyVerificationMacEventContent struct {
	Keys          string            `json:"keys"`
	Mac           map[string]string `json:"mac"`
	TransactionID string            `json:"transaction_id"`
}

func (KeyVerificationMacEventContent) EventType() Type { return TypeKeyVerificationMac }

func (KeyVerificationMacEventContent) isBasicContent() {}

// KeyVerificationMacEvent proves key ownership at the end of a flow.
type KeyVerificationMacEvent = Basic[KeyVerificationMacEventContent]

// KeyVerificationCancelEventContent is the payload of
// m.key.verification.cancel: either side aborting the flow. Code is a
// machine-readable reason such as m.user or m.timeout.
type KeyVerificationCancelEventContent struct {
	Code          string `json:"code"`
	Reason        string `json:"reason"`
	TransactionID string `json:"transaction_id"`
}

func (KeyVerificationCancelEventContent) EventType() Type { return TypeKeyVerificationCancel }

func (KeyVerificationCancelEventContent) isBasicContent() {}

// KeyVerificationCancelEvent aborts a verification flow.
type KeyVerificationCancelEvent = Basic[KeyVerificationCancelEventContent]
