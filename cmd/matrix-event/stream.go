// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/matrix-event/cmd/matrix-event/cli"
	"github.com/bureau-foundation/matrix-event/event"
	"github.com/bureau-foundation/matrix-event/lib/codec"
	"github.com/bureau-foundation/matrix-event/stream"
)

func streamCommand() *cli.Command {
	return &cli.Command{
		Name:    "stream",
		Summary: "Pack, unpack, and inspect event archives",
		Description: `An event archive stores canonical event lines in a sequence of
blocks. Each block carries its event count, a room index, and a
BLAKE3 digest of the uncompressed payload, so corruption is caught
per block and a damaged archive still yields every block before the
damage. Blocks are compressed independently (zstd by default).`,
		Subcommands: []*cli.Command{
			streamPackCommand(),
			streamUnpackCommand(),
			streamInfoCommand(),
		},
	}
}

// packParams holds the parameters for "matrix-event stream pack".
type packParams struct {
	Output      string `flag:"output,o" desc:"write the archive to this file instead of stdout"`
	Compression string `flag:"compression,c" default:"zstd" desc:"block compression: none, lz4, or zstd"`
	BlockSize   int    `flag:"block-size" default:"262144" desc:"flush a block when its payload reaches this many bytes"`
}

func streamPackCommand() *cli.Command {
	var params packParams

	return &cli.Command{
		Name:    "pack",
		Summary: "Pack newline-delimited events into an archive",
		Description: `Read newline-delimited JSON events and write them as a compressed
archive. Every line is decoded before it is stored: an archive never
holds an event its own reader would reject, so a failing line aborts
the pack with its line number.`,
		Usage: "matrix-event stream pack [-o file] [--compression none|lz4|zstd] [file]",
		Examples: []cli.Example{
			{
				Description: "Pack a room export",
				Command:     "matrix-event stream pack export.ndjson -o export.mxev",
			},
			{
				Description: "Pack from a pipeline without compression",
				Command:     "dump-room '!ops:example.org' | matrix-event stream pack --compression none -o ops.mxev",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("pack", &params)
		},
		Run: func(args []string) error {
			data, source, err := readInput(args)
			if err != nil {
				return err
			}
			compression, err := stream.ParseCompression(params.Compression)
			if err != nil {
				return err
			}
			out, closeOutput, err := openOutput(params.Output)
			if err != nil {
				return err
			}
			events, blocks, err := packEvents(data, out, stream.WriterOptions{
				Compression: compression,
				BlockSize:   params.BlockSize,
			})
			if err != nil {
				closeOutput()
				return err
			}
			if err := closeOutput(); err != nil {
				return fmt.Errorf("close output: %w", err)
			}
			cli.NewLogger().Info("packed archive",
				"source", source,
				"events", events,
				"blocks", blocks,
				"compression", compression,
			)
			return nil
		},
	}
}

// packEvents decodes every non-empty line of a newline-delimited
// event dump and appends it to a new archive written to out.
func packEvents(data []byte, out io.Writer, options stream.WriterOptions) (events, blocks int, err error) {
	writer := stream.NewWriter(out, options)
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), maxEventLineBytes)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		decoded, err := event.DecodeAny(line)
		if err != nil {
			return 0, 0, fmt.Errorf("line %d: %w", lineNumber, err)
		}
		if err := writer.Append(decoded); err != nil {
			return 0, 0, fmt.Errorf("line %d: %w", lineNumber, err)
		}
		events++
	}
	if err := scanner.Err(); err != nil {
		return 0, 0, fmt.Errorf("scan line %d: %w", lineNumber+1, err)
	}
	if err := writer.Close(); err != nil {
		return 0, 0, err
	}
	return events, writer.Blocks(), nil
}

// unpackParams holds the parameters for "matrix-event stream unpack".
type unpackParams struct {
	Output string `flag:"output,o" desc:"write events to this file instead of stdout"`
	Strict bool   `flag:"strict" desc:"fail on events that do not decode instead of skipping them"`
}

func streamUnpackCommand() *cli.Command {
	var params unpackParams

	return &cli.Command{
		Name:    "unpack",
		Summary: "Unpack an archive to newline-delimited events",
		Description: `Read an event archive and write its events as newline-delimited
canonical JSON. Block digests are verified as blocks are read.
Events that no longer decode (written by a newer version, say) are
skipped with a warning unless --strict is set.`,
		Usage: "matrix-event stream unpack [--strict] [-o file] [file]",
		Examples: []cli.Example{
			{
				Description: "Unpack an archive to stdout",
				Command:     "matrix-event stream unpack export.mxev",
			},
			{
				Description: "Round-trip: pack then unpack reproduces the canonical lines",
				Command:     "matrix-event stream pack export.ndjson | matrix-event stream unpack",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("unpack", &params)
		},
		Run: func(args []string) error {
			archive, _, err := readInput(args)
			if err != nil {
				return err
			}
			out, closeOutput, err := openOutput(params.Output)
			if err != nil {
				return err
			}
			if _, err := unpackEvents(archive, out, stream.ReaderOptions{
				Strict: params.Strict,
				Logger: cli.NewLogger(),
			}); err != nil {
				closeOutput()
				return err
			}
			return closeOutput()
		},
	}
}

// unpackEvents writes each archived event as one canonical JSON line.
func unpackEvents(archive []byte, out io.Writer, options stream.ReaderOptions) (int, error) {
	reader := stream.NewReader(bytes.NewReader(archive), options)
	buffered := bufio.NewWriter(out)
	count := 0
	for {
		decoded, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return count, err
		}
		line, err := event.Encode(decoded)
		if err != nil {
			return count, fmt.Errorf("re-encode event %d: %w", count, err)
		}
		buffered.Write(line)
		buffered.WriteByte('\n')
		count++
	}
	if err := buffered.Flush(); err != nil {
		return count, fmt.Errorf("write output: %w", err)
	}
	return count, nil
}

// infoParams holds the parameters for "matrix-event stream info".
type infoParams struct {
	cli.JSONOutput
	Diagnostic bool `flag:"cbor" desc:"also print each block header in CBOR diagnostic notation"`
}

// blockReport describes one archive block in an info report.
type blockReport struct {
	Block          int      `json:"block"`
	Events         int      `json:"events"`
	Compression    string   `json:"compression"`
	Size           int      `json:"size"`
	CompressedSize int      `json:"compressed_size"`
	Digest         string   `json:"digest"`
	Rooms          []string `json:"rooms,omitempty"`
}

// infoReport summarizes an archive without decoding its events.
type infoReport struct {
	Source string        `json:"source"`
	Events int           `json:"events"`
	Blocks []blockReport `json:"blocks"`
}

func streamInfoCommand() *cli.Command {
	var params infoParams

	return &cli.Command{
		Name:    "info",
		Summary: "Inspect an archive's blocks without unpacking",
		Description: `Read an archive and print one line per block: event count,
compression, uncompressed and stored payload sizes, the number of
distinct rooms in the block's room index, and the payload digest.
Every block is decompressed and its digest verified, so a clean exit
means the whole archive is intact; the events themselves are not
decoded.

With --cbor, each block header is also printed in CBOR diagnostic
notation, exactly as stored.`,
		Usage: "matrix-event stream info [--cbor] [--json] [file]",
		Examples: []cli.Example{
			{
				Description: "Summarize an archive",
				Command:     "matrix-event stream info export.mxev",
			},
			{
				Description: "Machine-readable block list with full digests",
				Command:     "matrix-event stream info --json export.mxev",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("info", &params)
		},
		Run: func(args []string) error {
			data, source, err := readInput(args)
			if err != nil {
				return err
			}
			blocks, err := stream.ReadInfo(bytes.NewReader(data))
			if err != nil {
				return err
			}
			report := buildInfoReport(blocks, source)
			if done, err := params.EmitJSON(report); done {
				return err
			}
			return writeInfoReport(report, blocks, os.Stdout, params.Diagnostic)
		},
	}
}

// buildInfoReport converts per-block statistics into the report
// shape shared by the text and JSON renderers.
func buildInfoReport(blocks []stream.BlockInfo, source string) infoReport {
	report := infoReport{Source: source, Blocks: []blockReport{}}
	for index, block := range blocks {
		var rooms []string
		for _, room := range block.Rooms {
			rooms = append(rooms, room.String())
		}
		report.Events += block.Events
		report.Blocks = append(report.Blocks, blockReport{
			Block:          index,
			Events:         block.Events,
			Compression:    block.Compression.String(),
			Size:           block.Size,
			CompressedSize: block.CompressedSize,
			Digest:         block.Digest.String(),
			Rooms:          rooms,
		})
	}
	return report
}

// writeInfoReport renders the block table. Digests are abbreviated
// to 12 hex digits in the table; --json carries them in full.
func writeInfoReport(report infoReport, blocks []stream.BlockInfo, w io.Writer, diagnostic bool) error {
	tw := tabwriter.NewWriter(w, 2, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "BLOCK\tEVENTS\tCOMPRESSION\tSIZE\tSTORED\tROOMS\tDIGEST")
	for _, block := range report.Blocks {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%d\t%d\t%d\t%s\n",
			block.Block, block.Events, block.Compression,
			block.Size, block.CompressedSize, len(block.Rooms),
			block.Digest[:12])
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(w, "\nblocks: %d, events: %d\n", len(report.Blocks), report.Events)

	if diagnostic {
		for index, block := range blocks {
			notation, err := codec.Diagnose(block.Header)
			if err != nil {
				return fmt.Errorf("diagnose block %d header: %w", index, err)
			}
			fmt.Fprintf(w, "\nblock %d header: %s\n", index, notation)
		}
	}
	return nil
}
