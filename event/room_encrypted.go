// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package event

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bureau-foundation/matrix-event/lib/jsint"
	"github.com/bureau-foundation/matrix-event/lib/ref"
)

// EncryptionScheme is the sealed union of ciphertext layouts an
// m.room.encrypted event can carry. The wire discriminant is the
// content's algorithm field; decoding selects the layout from it, so
// an event without a recognized algorithm has no decodable content.
type EncryptionScheme interface {
	Algorithm() Algorithm
	isEncryptionScheme()
}

// OlmCiphertext is one recipient's copy of an Olm payload.
type OlmCiphertext struct {
	Body string `json:"body"`
	// Type is 0 for a pre-key message and 1 for a normal message.
	Type jsint.UInt `json:"type"`
}

// OlmV1Curve25519AesSha2 is the Olm layout: one ciphertext per
// recipient device, keyed by the device's Curve25519 identity key.
type OlmV1Curve25519AesSha2 struct {
	Ciphertext map[string]OlmCiphertext `json:"ciphertext"`
	SenderKey  string                   `json:"sender_key"`
}

func (OlmV1Curve25519AesSha2) Algorithm() Algorithm { return AlgorithmOlmV1Curve25519AesSha2 }

func (OlmV1Curve25519AesSha2) isEncryptionScheme() {}

// MegolmV1AesSha2 is the Megolm layout: a single group ciphertext
// plus the sending session's identifiers.
type MegolmV1AesSha2 struct {
	Ciphertext string       `json:"ciphertext"`
	DeviceID   ref.DeviceID `json:"device_id"`
	SenderKey  string       `json:"sender_key"`
	SessionID  string       `json:"session_id"`
}

func (MegolmV1AesSha2) Algorithm() Algorithm { return AlgorithmMegolmV1AesSha2 }

func (MegolmV1AesSha2) isEncryptionScheme() {}

// EncryptedEventContent is the payload of m.room.encrypted. Scheme
// holds one of the EncryptionScheme layouts by value.
type EncryptedEventContent struct {
	Scheme EncryptionScheme
}

func (EncryptedEventContent) EventType() Type { return TypeRoomEncrypted }

func (EncryptedEventContent) isRoomContent() {}

type olmWireJSON struct {
	Algorithm  Algorithm                `json:"algorithm"`
	Ciphertext map[string]OlmCiphertext `json:"ciphertext"`
	SenderKey  string                   `json:"sender_key"`
}

type megolmWireJSON struct {
	Algorithm  Algorithm    `json:"algorithm"`
	Ciphertext string       `json:"ciphertext"`
	DeviceID   ref.DeviceID `json:"device_id"`
	SenderKey  string       `json:"sender_key"`
	SessionID  string       `json:"session_id"`
}

// MarshalJSON writes the scheme's layout with its algorithm field.
func (c EncryptedEventContent) MarshalJSON() ([]byte, error) {
	switch s := c.Scheme.(type) {
	case OlmV1Curve25519AesSha2:
		return json.Marshal(olmWireJSON{
			Algorithm:  s.Algorithm(),
			Ciphertext: s.Ciphertext,
			SenderKey:  s.SenderKey,
		})
	case MegolmV1AesSha2:
		return json.Marshal(megolmWireJSON{
			Algorithm:  s.Algorithm(),
			Ciphertext: s.Ciphertext,
			DeviceID:   s.DeviceID,
			SenderKey:  s.SenderKey,
			SessionID:  s.SessionID,
		})
	case nil:
		return nil, errors.New("encrypted content has no scheme")
	}
	return nil, fmt.Errorf("encryption scheme %T must be stored by value", c.Scheme)
}

// UnmarshalJSON probes the algorithm field, then decodes the layout
// it selects. A missing or unrecognized algorithm is a semantic
// failure: the object's shape is fine, but no layout applies.
func (c *EncryptedEventContent) UnmarshalJSON(data []byte) error {
	var probe struct {
		Algorithm *Algorithm `json:"algorithm"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	if probe.Algorithm == nil || *probe.Algorithm == "" {
		return semanticErrorJSON("encrypted content has no algorithm", data)
	}
	switch *probe.Algorithm {
	case AlgorithmOlmV1Curve25519AesSha2:
		var scheme OlmV1Curve25519AesSha2
		if err := json.Unmarshal(data, &scheme); err != nil {
			return err
		}
		c.Scheme = scheme
	case AlgorithmMegolmV1AesSha2:
		var scheme MegolmV1AesSha2
		if err := json.Unmarshal(data, &scheme); err != nil {
			return err
		}
		c.Scheme = scheme
	default:
		return semanticErrorJSON(
			fmt.Sprintf("unsupported encryption algorithm %q", *probe.Algorithm), data)
	}
	return nil
}

// EncryptedEvent carries an encrypted payload in a room timeline.
type EncryptedEvent = Room[EncryptedEventContent]
