// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package event

import (
	"github.com/bureau-foundation/matrix-event/lib/jsint"
	"github.com/bureau-foundation/matrix-event/lib/ref"
)

// ReceiptEventContent is the payload of m.receipt: per event, the
// receipts attached to it. Ephemeral room data; the map carries only
// the entries that changed.
type ReceiptEventContent map[ref.EventID]Receipts

func (ReceiptEventContent) EventType() Type { return TypeReceipt }

func (ReceiptEventContent) isBasicContent() {}

// Receipts groups an event's receipts by kind. Read receipts are the
// only kind defined so far.
type Receipts struct {
	Read map[ref.UserID]ReadReceipt `json:"m.read,omitempty"`
}

// ReadReceipt records when a user read the event. The timestamp is
// optional; some servers omit it.
type ReadReceipt struct {
	TS *jsint.UInt `json:"ts,omitempty"`
}

// ReceiptEvent carries read-receipt updates for a room.
type ReceiptEvent = Basic[ReceiptEventContent]
