// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package stream reads and writes event archives: a compact container
// format for relaying batches of Matrix events between processes.
//
// An archive is a 5-byte signature ("MXEV" plus a version byte)
// followed by blocks. Each block is a length-prefixed CBOR header
// (Core Deterministic Encoding, via lib/codec) and a payload of
// newline-delimited canonical JSON events, optionally compressed.
// The header records the event count, the compression algorithm, the
// payload sizes, a BLAKE3 digest of the uncompressed payload, and the
// rooms the block's events belong to.
//
// Writing accumulates events and cuts a block when the payload
// reaches the configured threshold:
//
//	writer := stream.NewWriter(file, stream.WriterOptions{})
//	for _, event := range events {
//		if err := writer.Append(event); err != nil {
//			return err
//		}
//	}
//	if err := writer.Close(); err != nil {
//		return err
//	}
//
// Reading verifies each block digest before yielding events:
//
//	reader := stream.NewReader(file, stream.ReaderOptions{})
//	for {
//		event, err := reader.Next()
//		if err == io.EOF {
//			break
//		}
//		if err != nil {
//			return err
//		}
//		// ...
//	}
//
// The package performs no I/O of its own beyond the caller-supplied
// reader and writer.
package stream
