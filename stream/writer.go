// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package stream

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/bureau-foundation/matrix-event/event"
	"github.com/bureau-foundation/matrix-event/lib/codec"
	"github.com/bureau-foundation/matrix-event/lib/ref"
)

// defaultBlockSize is the payload threshold that cuts a block when
// WriterOptions.BlockSize is zero. Large enough for compression to
// find structure across events, small enough that a reader never
// holds much more than this in memory per block.
const defaultBlockSize = 256 * 1024

// WriterOptions configures a Writer. The zero value stores payloads
// uncompressed in blocks of the default size.
type WriterOptions struct {
	// Compression selects the payload compression. Blocks that do
	// not shrink under it are stored uncompressed regardless.
	Compression Compression

	// BlockSize is the uncompressed payload threshold, in bytes, at
	// which Append cuts a block. Zero means the default.
	BlockSize int
}

// Writer accumulates events and writes them to an archive in blocks.
// It buffers at most one block of encoded events in memory. Methods
// must not be called concurrently.
//
// The Writer does not close the underlying io.Writer; the caller owns
// it.
type Writer struct {
	destination io.Writer
	compression Compression
	blockSize   int

	payload bytes.Buffer
	count   int
	rooms   map[ref.RoomID]struct{}

	blocks     int
	wroteMagic bool
	err        error
}

// NewWriter creates a Writer that writes an archive to w. The archive
// signature is written lazily, so no bytes reach w before the first
// Append, Flush, or Close.
func NewWriter(w io.Writer, options WriterOptions) *Writer {
	blockSize := options.BlockSize
	if blockSize <= 0 {
		blockSize = defaultBlockSize
	}
	return &Writer{
		destination: w,
		compression: options.Compression,
		blockSize:   blockSize,
		rooms:       make(map[ref.RoomID]struct{}),
	}
}

// Append encodes e and adds it to the current block, cutting the
// block if the payload threshold is reached. An event that fails to
// encode leaves the Writer unchanged and usable; an underlying write
// failure is terminal, and every later call returns the same error.
func (w *Writer) Append(e event.AnyEvent) error {
	if w.err != nil {
		return w.err
	}

	encoded, err := event.Encode(e)
	if err != nil {
		return fmt.Errorf("stream: encoding %s event: %w", e.EventType(), err)
	}

	w.payload.Write(encoded)
	w.payload.WriteByte('\n')
	w.count++

	if roomEvent, ok := e.(event.AnyRoomEvent); ok {
		if id := roomEvent.RoomID(); !id.IsZero() {
			w.rooms[id] = struct{}{}
		}
	}

	if w.payload.Len() >= w.blockSize {
		return w.flush()
	}
	return nil
}

// Flush cuts the current block even if it is below the size
// threshold. A no-op when no events are buffered.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	if w.count == 0 {
		return nil
	}
	return w.flush()
}

// Close flushes any buffered events and finalizes the archive. An
// archive with no events at all is valid: Close still writes the
// signature. Close does not close the underlying writer.
func (w *Writer) Close() error {
	if w.err != nil {
		return w.err
	}
	if w.count > 0 {
		if err := w.flush(); err != nil {
			return err
		}
	}
	if err := w.ensureMagic(); err != nil {
		return err
	}
	w.err = errors.New("stream: writer is closed")
	return nil
}

// Blocks returns the number of blocks written so far.
func (w *Writer) Blocks() int {
	return w.blocks
}

func (w *Writer) ensureMagic() error {
	if w.wroteMagic {
		return nil
	}
	if _, err := w.destination.Write(archiveMagic[:]); err != nil {
		w.err = fmt.Errorf("stream: writing archive signature: %w", err)
		return w.err
	}
	w.wroteMagic = true
	return nil
}

// flush writes the buffered events as one block: length-prefixed CBOR
// header, then the payload.
func (w *Writer) flush() error {
	if err := w.ensureMagic(); err != nil {
		return err
	}

	payload := w.payload.Bytes()
	digest := digestPayload(payload)

	compression := w.compression
	stored, err := compressPayload(payload, compression)
	if err != nil {
		if !errors.Is(err, errIncompressible) {
			w.err = fmt.Errorf("stream: block %d: %w", w.blocks, err)
			return w.err
		}
		stored = payload
		compression = CompressionNone
	}

	header := blockHeader{
		CompressedSize: len(stored),
		Compression:    compression,
		Count:          w.count,
		Digest:         digest,
		Rooms:          w.sortedRooms(),
		Size:           len(payload),
	}
	headerBytes, err := codec.Marshal(header)
	if err != nil {
		w.err = fmt.Errorf("stream: block %d: encoding header: %w", w.blocks, err)
		return w.err
	}

	var lengthBytes [4]byte
	binary.LittleEndian.PutUint32(lengthBytes[:], uint32(len(headerBytes)))
	if _, err := w.destination.Write(lengthBytes[:]); err != nil {
		w.err = fmt.Errorf("stream: block %d: writing header length: %w", w.blocks, err)
		return w.err
	}
	if _, err := w.destination.Write(headerBytes); err != nil {
		w.err = fmt.Errorf("stream: block %d: writing header: %w", w.blocks, err)
		return w.err
	}
	if _, err := w.destination.Write(stored); err != nil {
		w.err = fmt.Errorf("stream: block %d: writing payload: %w", w.blocks, err)
		return w.err
	}

	w.payload.Reset()
	w.count = 0
	clear(w.rooms)
	w.blocks++
	return nil
}

func (w *Writer) sortedRooms() []ref.RoomID {
	if len(w.rooms) == 0 {
		return nil
	}
	rooms := make([]ref.RoomID, 0, len(w.rooms))
	for id := range w.rooms {
		rooms = append(rooms, id)
	}
	sort.Slice(rooms, func(i, j int) bool {
		return rooms[i].String() < rooms[j].String()
	})
	return rooms
}
