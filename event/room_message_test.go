// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package event

import (
	"strings"
	"testing"
)

func TestMessageDecodeText(t *testing.T) {
	input := `{"content":{"body":"**hi**","format":"org.matrix.custom.html","formatted_body":"<b>hi</b>","msgtype":"m.text"},"event_id":"$e:x.y","origin_server_ts":1,"sender":"@alice:x.y","type":"m.room.message"}`
	e, err := DecodeRoom[MessageEventContent]([]byte(input))
	if err != nil {
		t.Fatalf("DecodeRoom: %v", err)
	}
	if e.Content.MsgType != MsgText {
		t.Errorf("msgtype = %q", e.Content.MsgType)
	}
	if e.Content.FormattedBody != "<b>hi</b>" {
		t.Errorf("formatted_body = %q", e.Content.FormattedBody)
	}
	out, err := Encode(e)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if string(out) != input {
		t.Errorf("re-encode:\n got %s\nwant %s", out, input)
	}
}

func TestMessageDecodeImage(t *testing.T) {
	input := `{"content":{"body":"cat.png","info":{"h":480,"mimetype":"image/png","size":12345,"w":640},"msgtype":"m.image","url":"mxc://x.y/abc"},"event_id":"$e:x.y","origin_server_ts":1,"sender":"@alice:x.y","type":"m.room.message"}`
	e, err := DecodeRoom[MessageEventContent]([]byte(input))
	if err != nil {
		t.Fatalf("DecodeRoom: %v", err)
	}
	info := e.Content.Info
	if info == nil {
		t.Fatal("info lost")
	}
	if info.Width == nil || uint64(*info.Width) != 640 {
		t.Errorf("width = %v", info.Width)
	}
	if e.Content.URL != "mxc://x.y/abc" {
		t.Errorf("url = %q", e.Content.URL)
	}
	out, err := Encode(e)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if string(out) != input {
		t.Errorf("re-encode:\n got %s\nwant %s", out, input)
	}
}

func TestMessageMissingMsgType(t *testing.T) {
	input := `{"content":{"body":"hi"},"event_id":"$e:x.y","origin_server_ts":1,"sender":"@alice:x.y","type":"m.room.message"}`
	_, err := DecodeRoom[MessageEventContent]([]byte(input))
	inv := mustInvalid(t, err, FailureSemantic)
	if !strings.Contains(inv.Message, "msgtype") {
		t.Errorf("message %q does not mention msgtype", inv.Message)
	}
}

func TestMessageVendorMsgType(t *testing.T) {
	input := `{"content":{"body":"roll 1d20","msgtype":"io.example.dice"},"event_id":"$e:x.y","origin_server_ts":1,"sender":"@alice:x.y","type":"m.room.message"}`
	e, err := DecodeRoom[MessageEventContent]([]byte(input))
	if err != nil {
		t.Fatalf("DecodeRoom: %v", err)
	}
	if got := e.Content.MsgType; got != "io.example.dice" {
		t.Errorf("msgtype = %q", got)
	}
}
