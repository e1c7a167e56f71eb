// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package event

// Algorithm identifies an end-to-end encryption scheme. Key transport
// events carry it as an advisory string; the m.room.encrypted decoder
// dispatches on it to select a ciphertext schema, so there it must be
// one of the known values.
type Algorithm string

const (
	// AlgorithmOlmV1Curve25519AesSha2 is the Olm ratchet used on
	// device-to-device channels.
	AlgorithmOlmV1Curve25519AesSha2 Algorithm = "m.olm.v1.curve25519-aes-sha2"
	// AlgorithmMegolmV1AesSha2 is the Megolm group ratchet used for
	// room messages.
	AlgorithmMegolmV1AesSha2 Algorithm = "m.megolm.v1.aes-sha2"
)

// Known reports whether this package has a ciphertext schema for the
// algorithm.
func (a Algorithm) Known() bool {
	switch a {
	case AlgorithmOlmV1Curve25519AesSha2, AlgorithmMegolmV1AesSha2:
		return true
	}
	return false
}

func (a Algorithm) String() string { return string(a) }
