// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package stream

import (
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"

	"github.com/bureau-foundation/matrix-event/lib/ref"
)

// Archive format constants.
const (
	// Version is the archive format version carried in the signature
	// byte after the "MXEV" magic.
	Version = 1

	// maxHeaderSize caps the block header length prefix. Headers are
	// a few dozen bytes plus the room list; anything near this limit
	// means the input is not an archive.
	maxHeaderSize = 1 << 16

	// maxPayloadSize caps a single block's payload (compressed and
	// uncompressed). Guards allocation against corrupt size fields.
	maxPayloadSize = 1 << 28
)

// archiveMagic is the 5-byte archive signature: "MXEV" + version.
var archiveMagic = [5]byte{'M', 'X', 'E', 'V', Version}

// Digest is a 32-byte BLAKE3 keyed hash of a block's uncompressed
// payload. Digests are computed before compression, so they stay
// stable across compression algorithm changes.
type Digest [32]byte

// String returns the hex-encoded digest, the format used in logs and
// CLI output.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// blockDomainKey is the BLAKE3 keyed-hash domain for block payloads.
// A fixed constant: changing it invalidates every existing archive.
// The bytes are the ASCII domain name, zero-padded to the 32 bytes
// keyed mode requires, so the key is readable in hex dumps.
var blockDomainKey = [32]byte{
	'm', 'x', 'e', 'v', '.', 's', 't', 'r', 'e', 'a', 'm', '.',
	'b', 'l', 'o', 'c', 'k', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// digestPayload computes the block-domain BLAKE3 keyed hash of an
// uncompressed payload.
func digestPayload(data []byte) Digest {
	// NewKeyed only fails for a wrong key length, which the fixed
	// array rules out.
	hasher, err := blake3.NewKeyed(blockDomainKey[:])
	if err != nil {
		panic("stream: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write(data)
	var digest Digest
	copy(digest[:], hasher.Sum(nil))
	return digest
}

// blockHeader is the CBOR-encoded header written before each block
// payload. Deterministic encoding keeps archives byte-reproducible.
// The json tags double as CBOR map keys.
type blockHeader struct {
	// CompressedSize is the byte length of the payload as stored.
	CompressedSize int `json:"compressed_size"`

	// Compression is the algorithm the payload is stored with.
	Compression Compression `json:"compression"`

	// Count is the number of events in the block.
	Count int `json:"count"`

	// Digest is the block-domain BLAKE3 hash of the uncompressed
	// payload.
	Digest Digest `json:"digest"`

	// Rooms lists the distinct rooms of the block's room-addressed
	// events, sorted. Relays use it to skip blocks wholesale.
	Rooms []ref.RoomID `json:"rooms,omitempty"`

	// Size is the uncompressed payload length in bytes.
	Size int `json:"size"`
}

// IntegrityError reports a block whose stored payload does not match
// its header: a digest mismatch, a size mismatch, or an event count
// that disagrees with the payload. It means the archive was corrupted
// after writing; structural problems (bad magic, truncation, invalid
// CBOR) are reported as plain errors instead.
type IntegrityError struct {
	// Block is the zero-based index of the corrupt block.
	Block int

	// Reason describes the mismatch.
	Reason string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("stream: block %d: %s", e.Block, e.Reason)
}
