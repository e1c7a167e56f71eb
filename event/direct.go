// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package event

import (
	"github.com/bureau-foundation/matrix-event/lib/ref"
)

// DirectEventContent is the payload of m.direct: for each user, the
// rooms considered direct chats with them. Account data, so the whole
// map is replaced on every update.
type DirectEventContent map[ref.UserID][]ref.RoomID

func (DirectEventContent) EventType() Type { return TypeDirect }

func (DirectEventContent) isBasicContent() {}

// DirectEvent lists the account owner's direct-chat rooms per user.
type DirectEvent = Basic[DirectEventContent]
