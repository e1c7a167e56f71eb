// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package event

import (
	"github.com/bureau-foundation/matrix-event/lib/jsint"
)

// The m.call.* family signals 1:1 VoIP calls over room events. The
// SDP bodies are carried opaquely; this package does not interpret
// them. Every event names its call_id and the signalling version
// (always 0 for this vocabulary).

// SessionDescription is an SDP offer or answer.
type SessionDescription struct {
	SDP string `json:"sdp"`
	// Type is "offer" on invites and "answer" on answers.
	Type string `json:"type"`
}

// CallInviteEventContent is the payload of m.call.invite. Lifetime is
// how long the invite stays valid, in milliseconds.
type CallInviteEventContent struct {
	CallID   string             `json:"call_id"`
	Lifetime jsint.UInt         `json:"lifetime"`
	Offer    SessionDescription `json:"offer"`
	Version  jsint.UInt         `json:"version"`
}

func (CallInviteEventContent) EventType() Type { return TypeCallInvite }

func (CallInviteEventContent) isRoomContent() {}

// CallInviteEvent starts a call.
type CallInviteEvent = Room[CallInviteEventContent]

// CallAnswerEventContent is the payload of m.call.answer.
type CallAnswerEventContent struct {
	Answer  SessionDescription `json:"answer"`
	CallID  string             `json:"call_id"`
	Version jsint.UInt         `json:"version"`
}

func (CallAnswerEventContent) EventType() Type { return TypeCallAnswer }

func (CallAnswerEventContent) isRoomContent() {}

// CallAnswerEvent accepts a call.
type CallAnswerEvent = Room[CallAnswerEventContent]

// Candidate is one ICE candidate.
type Candidate struct {
	Candidate     string     `json:"candidate"`
	SDPMLineIndex jsint.UInt `json:"sdpMLineIndex"`
	SDPMid        string     `json:"sdpMid"`
}

// CallCandidatesEventContent is the payload of m.call.candidates:
// ICE candidates discovered after the offer or answer was sent.
type CallCandidatesEventContent struct {
	CallID     string      `json:"call_id"`
	Candidates []Candidate `json:"candidates"`
	Version    jsint.UInt  `json:"version"`
}

func (CallCandidatesEventContent) EventType() Type { return TypeCallCandidates }

func (CallCandidatesEventContent) isRoomContent() {}

// CallCandidatesEvent trickles ICE candidates for a call.
type CallCandidatesEvent = Room[CallCandidatesEventContent]

// CallHangupEventContent is the payload of m.call.hangup: either side
// ending or declining the call. Reason distinguishes a deliberate
// hangup (absent) from ice_failed or invite_timeout.
type CallHangupEventContent struct {
	CallID  string     `json:"call_id"`
	Reason  string     `json:"reason,omitempty"`
	Version jsint.UInt `json:"version"`
}

func (CallHangupEventContent) EventType() Type { return TypeCallHangup }

func (CallHangupEventContent) isRoomContent() {}

// CallHangupEvent ends a call.
type CallHangupEvent = Room[CallHangupEventContent]
