// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package event

import (
	"encoding/json"

	"github.com/bureau-foundation/matrix-event/lib/jsint"
	"github.com/bureau-foundation/matrix-event/lib/ref"
)

// MessageType discriminates what a room message carries. The set is
// open: clients may send vendor msgtypes, and they decode fine; the
// constants below are the protocol-defined ones.
type MessageType string

const (
	MsgAudio        MessageType = "m.audio"
	MsgEmote        MessageType = "m.emote"
	MsgFile         MessageType = "m.file"
	MsgImage        MessageType = "m.image"
	MsgLocation     MessageType = "m.location"
	MsgNotice       MessageType = "m.notice"
	MsgServerNotice MessageType = "m.server_notice"
	MsgText         MessageType = "m.text"
	MsgVideo        MessageType = "m.video"
)

// MessageInfo covers the info objects of every attachment msgtype;
// each msgtype populates the subset that applies to it (duration for
// audio and video, dimensions for image and video, and so on).
type MessageInfo struct {
	Duration      *jsint.UInt    `json:"duration,omitempty"`
	Height        *jsint.UInt    `json:"h,omitempty"`
	MimeType      string         `json:"mimetype,omitempty"`
	Size          *jsint.UInt    `json:"size,omitempty"`
	ThumbnailInfo *ThumbnailInfo `json:"thumbnail_info,omitempty"`
	ThumbnailURL  string         `json:"thumbnail_url,omitempty"`
	Width         *jsint.UInt    `json:"w,omitempty"`
}

// MessageEventContent is the payload of m.room.message. One flat
// struct covers every msgtype: Body and MsgType always apply, the
// rest by msgtype (URL and Info for attachments, Format and
// FormattedBody for rich text, GeoURI for locations).
type MessageEventContent struct {
	Body          string       `json:"body"`
	Format        string       `json:"format,omitempty"`
	FormattedBody string       `json:"formatted_body,omitempty"`
	GeoURI        string       `json:"geo_uri,omitempty"`
	Info          *MessageInfo `json:"info,omitempty"`
	MsgType       MessageType  `json:"msgtype"`
	URL           string       `json:"url,omitempty"`
}

func (MessageEventContent) EventType() Type { return TypeRoomMessage }

func (MessageEventContent) isRoomContent() {}

// UnmarshalJSON requires a msgtype; without one there is no way to
// read the rest of the content, so its absence is a semantic failure
// rather than a shape problem.
func (c *MessageEventContent) UnmarshalJSON(data []byte) error {
	type wire MessageEventContent
	var w wire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if w.MsgType == "" {
		return semanticErrorJSON("message content has no msgtype", data)
	}
	*c = MessageEventContent(w)
	return nil
}

// MessageEvent is a room message: text, notice, emote, or attachment.
type MessageEvent = Room[MessageEventContent]

// FeedbackType is the kind of an m.room.message.feedback event.
type FeedbackType string

const (
	FeedbackDelivered FeedbackType = "delivered"
	FeedbackRead      FeedbackType = "read"
)

// FeedbackEventContent is the payload of m.room.message.feedback, the
// deprecated per-message acknowledgement; m.receipt replaced it. Kept
// in the vocabulary because archived timelines still contain it.
type FeedbackEventContent struct {
	TargetEventID ref.EventID  `json:"target_event_id"`
	Type          FeedbackType `json:"type"`
}

func (FeedbackEventContent) EventType() Type { return TypeRoomMessageFeedback }

func (FeedbackEventContent) isRoomContent() {}

// FeedbackEvent acknowledges a single message (deprecated).
type FeedbackEvent = Room[FeedbackEventContent]
