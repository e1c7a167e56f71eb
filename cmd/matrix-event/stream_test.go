// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bureau-foundation/matrix-event/stream"
)

const messageLine = `{"content":{"body":"hello","msgtype":"m.text"},"event_id":"$msg:x.y","origin_server_ts":2,"room_id":"!alpha:x.y","sender":"@alice:x.y","type":"m.room.message"}`

func TestPackUnpackRoundTrip(t *testing.T) {
	dump := strings.Join([]string{
		`{"content":{},"type":"m.dummy"}`,
		"",
		messageLine,
		memberLine,
	}, "\n") + "\n"

	var archive bytes.Buffer
	events, blocks, err := packEvents([]byte(dump), &archive, stream.WriterOptions{
		Compression: stream.CompressionZstd,
	})
	if err != nil {
		t.Fatalf("packEvents: %v", err)
	}
	if events != 3 || blocks != 1 {
		t.Fatalf("packed %d events in %d blocks, want 3 in 1", events, blocks)
	}

	var out bytes.Buffer
	count, err := unpackEvents(archive.Bytes(), &out, stream.ReaderOptions{})
	if err != nil {
		t.Fatalf("unpackEvents: %v", err)
	}
	if count != 3 {
		t.Fatalf("unpacked %d events, want 3", count)
	}

	want := `{"content":{},"type":"m.dummy"}` + "\n" + messageLine + "\n" + memberLine + "\n"
	if out.String() != want {
		t.Errorf("unpacked output:\n%s\nwant:\n%s", out.String(), want)
	}
}

func TestPackRejectsBadLine(t *testing.T) {
	dump := `{"content":{},"type":"m.dummy"}` + "\nnot an event\n"

	var archive bytes.Buffer
	_, _, err := packEvents([]byte(dump), &archive, stream.WriterOptions{})
	if err == nil {
		t.Fatal("expected error for an undecodable line")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error = %q, want the failing line number", err)
	}
}

func TestPackEmptyInput(t *testing.T) {
	var archive bytes.Buffer
	events, blocks, err := packEvents(nil, &archive, stream.WriterOptions{})
	if err != nil {
		t.Fatalf("packEvents: %v", err)
	}
	if events != 0 || blocks != 0 {
		t.Errorf("events = %d, blocks = %d, want 0 and 0", events, blocks)
	}
	// An empty archive is just the signature.
	if archive.Len() != 5 {
		t.Errorf("archive is %d bytes, want 5", archive.Len())
	}
}

func TestInfoReport(t *testing.T) {
	dump := messageLine + "\n" + memberLine + "\n"
	var archive bytes.Buffer
	if _, _, err := packEvents([]byte(dump), &archive, stream.WriterOptions{}); err != nil {
		t.Fatalf("packEvents: %v", err)
	}

	blocks, err := stream.ReadInfo(bytes.NewReader(archive.Bytes()))
	if err != nil {
		t.Fatalf("ReadInfo: %v", err)
	}
	report := buildInfoReport(blocks, "test.mxev")

	if report.Events != 2 || len(report.Blocks) != 1 {
		t.Fatalf("report = %+v, want 2 events in 1 block", report)
	}
	block := report.Blocks[0]
	if block.Compression != "none" {
		t.Errorf("Compression = %q, want none", block.Compression)
	}
	if block.Size != block.CompressedSize {
		t.Errorf("Size %d != CompressedSize %d for an uncompressed block", block.Size, block.CompressedSize)
	}
	if len(block.Digest) != 64 {
		t.Errorf("Digest = %q, want 64 hex digits", block.Digest)
	}
	if len(block.Rooms) != 2 {
		t.Errorf("Rooms = %v, want both rooms", block.Rooms)
	}
}

func TestWriteInfoReportTable(t *testing.T) {
	dump := messageLine + "\n"
	var archive bytes.Buffer
	if _, _, err := packEvents([]byte(dump), &archive, stream.WriterOptions{}); err != nil {
		t.Fatalf("packEvents: %v", err)
	}
	blocks, err := stream.ReadInfo(bytes.NewReader(archive.Bytes()))
	if err != nil {
		t.Fatalf("ReadInfo: %v", err)
	}
	report := buildInfoReport(blocks, "test.mxev")

	var out bytes.Buffer
	if err := writeInfoReport(report, blocks, &out, false); err != nil {
		t.Fatalf("writeInfoReport: %v", err)
	}
	text := out.String()
	if !strings.Contains(text, "BLOCK") || !strings.Contains(text, "DIGEST") {
		t.Errorf("output missing table header:\n%s", text)
	}
	if !strings.Contains(text, "blocks: 1, events: 1") {
		t.Errorf("output missing summary:\n%s", text)
	}
	if !strings.Contains(text, report.Blocks[0].Digest[:12]) {
		t.Errorf("output missing abbreviated digest:\n%s", text)
	}
}

func TestWriteInfoReportDiagnostic(t *testing.T) {
	dump := messageLine + "\n"
	var archive bytes.Buffer
	if _, _, err := packEvents([]byte(dump), &archive, stream.WriterOptions{}); err != nil {
		t.Fatalf("packEvents: %v", err)
	}
	blocks, err := stream.ReadInfo(bytes.NewReader(archive.Bytes()))
	if err != nil {
		t.Fatalf("ReadInfo: %v", err)
	}

	var out bytes.Buffer
	if err := writeInfoReport(buildInfoReport(blocks, "test.mxev"), blocks, &out, true); err != nil {
		t.Fatalf("writeInfoReport: %v", err)
	}
	text := out.String()
	if !strings.Contains(text, "block 0 header:") {
		t.Errorf("output missing diagnostic header line:\n%s", text)
	}
	if !strings.Contains(text, `"count"`) {
		t.Errorf("diagnostic notation missing header fields:\n%s", text)
	}
}

func TestReadInputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "event.json")
	if err := os.WriteFile(path, []byte(`{"content":{},"type":"m.dummy"}`), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	data, name, err := readInput([]string{path})
	if err != nil {
		t.Fatalf("readInput: %v", err)
	}
	if name != path {
		t.Errorf("name = %q, want %q", name, path)
	}
	if !bytes.Contains(data, []byte("m.dummy")) {
		t.Errorf("data = %q, want file contents", data)
	}
}

func TestReadInputTooManyArgs(t *testing.T) {
	if _, _, err := readInput([]string{"a.json", "b.json"}); err == nil {
		t.Fatal("expected error for two input files")
	}
}
