// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package stream

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"

	"github.com/bureau-foundation/matrix-event/event"
	"github.com/bureau-foundation/matrix-event/lib/codec"
	"github.com/bureau-foundation/matrix-event/lib/ref"
)

// ReaderOptions configures a Reader. The zero value skips events that
// fail to decode, logging each skip to slog.Default.
type ReaderOptions struct {
	// Strict makes Next fail on the first event that does not
	// decode, instead of logging and skipping it.
	Strict bool

	// Logger receives a warning for each skipped event. Nil means
	// slog.Default.
	Logger *slog.Logger
}

// Reader iterates over the events of an archive. Each block's digest
// is verified before any of its events are yielded, so a corrupt
// block never produces partial output. Methods must not be called
// concurrently.
type Reader struct {
	source io.Reader
	strict bool
	logger *slog.Logger

	readMagic bool
	block     int
	pending   [][]byte
	line      int
	err       error
}

// NewReader creates a Reader over the archive in r.
func NewReader(r io.Reader, options ReaderOptions) *Reader {
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Reader{
		source: r,
		strict: options.Strict,
		logger: logger,
	}
}

// Next returns the next event in the archive. It returns io.EOF at
// the end of a well-formed archive. Any other error is terminal:
// *IntegrityError for corrupt blocks, a decode failure in Strict
// mode, or a structural problem with the archive itself.
func (r *Reader) Next() (event.AnyEvent, error) {
	if r.err != nil {
		return nil, r.err
	}
	for {
		for len(r.pending) > 0 {
			line := r.pending[0]
			r.pending = r.pending[1:]
			index := r.line
			r.line++

			decoded, err := event.DecodeAny(line)
			if err != nil {
				if r.strict {
					r.err = fmt.Errorf("stream: block %d event %d: %w", r.block-1, index, err)
					return nil, r.err
				}
				r.logger.Warn("skipping undecodable event",
					"block", r.block-1,
					"event", index,
					"error", err,
				)
				continue
			}
			return decoded, nil
		}

		if _, _, err := r.readBlock(); err != nil {
			r.err = err
			return nil, err
		}
	}
}

// readMagicBytes consumes and checks the archive signature.
func (r *Reader) readMagicBytes() error {
	var magic [5]byte
	if _, err := io.ReadFull(r.source, magic[:]); err != nil {
		return fmt.Errorf("stream: reading archive signature: %w", err)
	}
	if magic != archiveMagic {
		if bytes.Equal(magic[:4], archiveMagic[:4]) {
			return fmt.Errorf("stream: archive version %d is not supported (this code supports version %d)",
				magic[4], Version)
		}
		return fmt.Errorf("stream: not an event archive (invalid signature)")
	}
	r.readMagic = true
	return nil
}

// readBlock reads, decompresses, and verifies the next block, leaving
// its event lines in r.pending. It returns the decoded header along
// with its stored bytes, or io.EOF at a clean end of the archive.
func (r *Reader) readBlock() (*blockHeader, []byte, error) {
	if !r.readMagic {
		if err := r.readMagicBytes(); err != nil {
			return nil, nil, err
		}
	}

	var lengthBytes [4]byte
	if _, err := io.ReadFull(r.source, lengthBytes[:]); err != nil {
		if err == io.EOF {
			// Clean block boundary: the archive ends here.
			return nil, nil, io.EOF
		}
		return nil, nil, fmt.Errorf("stream: block %d: reading header length: %w", r.block, err)
	}
	headerLength := binary.LittleEndian.Uint32(lengthBytes[:])
	if headerLength == 0 || headerLength > maxHeaderSize {
		return nil, nil, fmt.Errorf("stream: block %d: header length %d is invalid", r.block, headerLength)
	}

	headerBytes := make([]byte, headerLength)
	if _, err := io.ReadFull(r.source, headerBytes); err != nil {
		return nil, nil, fmt.Errorf("stream: block %d: reading header: %w", r.block, err)
	}
	var header blockHeader
	if err := codec.Unmarshal(headerBytes, &header); err != nil {
		return nil, nil, fmt.Errorf("stream: block %d: decoding header: %w", r.block, err)
	}
	if err := header.validate(); err != nil {
		return nil, nil, fmt.Errorf("stream: block %d: %w", r.block, err)
	}

	stored := make([]byte, header.CompressedSize)
	if _, err := io.ReadFull(r.source, stored); err != nil {
		return nil, nil, fmt.Errorf("stream: block %d: reading payload: %w", r.block, err)
	}

	payload, err := decompressPayload(stored, header.Compression, header.Size)
	if err != nil {
		return nil, nil, &IntegrityError{Block: r.block, Reason: err.Error()}
	}
	if computed := digestPayload(payload); computed != header.Digest {
		return nil, nil, &IntegrityError{
			Block:  r.block,
			Reason: fmt.Sprintf("payload digest %s does not match header digest %s", computed, header.Digest),
		}
	}

	lines, err := splitEvents(payload)
	if err != nil {
		return nil, nil, &IntegrityError{Block: r.block, Reason: err.Error()}
	}
	if len(lines) != header.Count {
		return nil, nil, &IntegrityError{
			Block:  r.block,
			Reason: fmt.Sprintf("payload holds %d events, header says %d", len(lines), header.Count),
		}
	}

	r.pending = lines
	r.line = 0
	r.block++
	return &header, headerBytes, nil
}

// validate rejects headers whose fields cannot describe a real block,
// before any allocation sized from them.
func (h *blockHeader) validate() error {
	if h.Count < 0 {
		return fmt.Errorf("event count %d is invalid", h.Count)
	}
	if h.Size < 0 || h.Size > maxPayloadSize {
		return fmt.Errorf("payload size %d is invalid", h.Size)
	}
	if h.CompressedSize < 0 || h.CompressedSize > maxPayloadSize {
		return fmt.Errorf("compressed size %d is invalid", h.CompressedSize)
	}
	if h.Compression > CompressionZstd {
		return fmt.Errorf("unsupported compression tag %d", h.Compression)
	}
	return nil
}

// splitEvents cuts a payload into its newline-terminated event lines.
func splitEvents(payload []byte) ([][]byte, error) {
	parts := bytes.Split(payload, []byte{'\n'})
	if len(parts[len(parts)-1]) != 0 {
		return nil, fmt.Errorf("payload does not end with a newline")
	}
	return parts[:len(parts)-1], nil
}

// BlockInfo describes one block of an archive, as reported by
// ReadInfo.
type BlockInfo struct {
	// Events is the number of events stored in the block.
	Events int

	// Compression is the algorithm the payload is stored with.
	Compression Compression

	// CompressedSize is the payload's stored length in bytes.
	CompressedSize int

	// Size is the payload's uncompressed length in bytes.
	Size int

	// Digest is the BLAKE3 digest of the uncompressed payload.
	Digest Digest

	// Rooms lists the distinct rooms of the block's room-addressed
	// events.
	Rooms []ref.RoomID

	// Header is the block header exactly as stored: deterministic
	// CBOR, suitable for codec.Diagnose.
	Header []byte
}

// ReadInfo reads an archive and returns per-block statistics. Every
// block is decompressed and its digest verified, so a nil error means
// the whole archive is intact; the events themselves are not decoded.
func ReadInfo(r io.Reader) ([]BlockInfo, error) {
	reader := NewReader(r, ReaderOptions{})
	var blocks []BlockInfo
	for {
		header, headerBytes, err := reader.readBlock()
		if err == io.EOF {
			return blocks, nil
		}
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, BlockInfo{
			Events:         header.Count,
			Compression:    header.Compression,
			CompressedSize: header.CompressedSize,
			Size:           header.Size,
			Digest:         header.Digest,
			Rooms:          header.Rooms,
			Header:         headerBytes,
		})
		reader.pending = nil
	}
}
