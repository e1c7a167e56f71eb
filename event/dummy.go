// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package event

// DummyEventContent is the payload of m.dummy: deliberately empty.
// The event exists to force a new Olm session; any fields present on
// the wire are ignored and an encode always writes {}.
type DummyEventContent struct{}

func (DummyEventContent) EventType() Type { return TypeDummy }

func (DummyEventContent) isBasicContent() {}

// DummyEvent forces its recipient to rotate the Olm session with the
// sender.
type DummyEvent = Basic[DummyEventContent]
