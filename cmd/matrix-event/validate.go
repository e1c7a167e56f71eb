// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/matrix-event/cmd/matrix-event/cli"
	"github.com/bureau-foundation/matrix-event/event"
)

// maxEventLineBytes bounds a single event line when scanning
// newline-delimited input. The federation event size limit is 64 KiB;
// this leaves generous headroom for local dumps that never crossed
// federation.
const maxEventLineBytes = 16 << 20

// validateParams holds the parameters for the "matrix-event validate"
// command.
type validateParams struct {
	cli.JSONOutput
	Policy string `flag:"policy,p" desc:"YAML policy file restricting accepted events"`
}

// validateIssue is one rejected event line. Failure is "syntactic" or
// "semantic" for decode rejections, or "policy" for events that
// decode but violate the acceptance policy.
type validateIssue struct {
	Line    int    `json:"line"`
	Type    string `json:"type,omitempty"`
	Failure string `json:"failure"`
	Message string `json:"message"`
}

// validateReport summarizes a validate run over one input.
type validateReport struct {
	Source  string          `json:"source"`
	Events  int             `json:"events"`
	Invalid int             `json:"invalid"`
	Issues  []validateIssue `json:"issues,omitempty"`
}

func validateCommand() *cli.Command {
	var params validateParams

	return &cli.Command{
		Name:    "validate",
		Summary: "Check a newline-delimited event dump",
		Description: `Read newline-delimited JSON events and report every line that does
not decode. Empty lines are skipped. Each rejection is classified as
syntactic (the JSON shape does not match the event schema) or
semantic (the shape is fine but an event rule is violated).

With --policy, events must additionally satisfy the YAML acceptance
policy: a minimum capability level (min_level), a per-event size cap
(max_bytes), and optionally a ban on extension types outside an
allow-listed namespace (forbid_unknown, allow_namespaces). Policy
rejections are classified as "policy".

Exits 0 when every event passes, 1 otherwise.`,
		Usage: "matrix-event validate [--policy file] [--json] [file]",
		Examples: []cli.Example{
			{
				Description: "Validate an event dump",
				Command:     "matrix-event validate events.ndjson",
			},
			{
				Description: "Validate a room export against a policy",
				Command:     "matrix-event validate --policy room-export.yaml export.ndjson",
			},
			{
				Description: "Machine-readable issue list",
				Command:     "matrix-event validate --json events.ndjson",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("validate", &params)
		},
		Run: func(args []string) error {
			data, source, err := readInput(args)
			if err != nil {
				return err
			}
			policy := &Policy{}
			if params.Policy != "" {
				policy, err = loadPolicy(params.Policy)
				if err != nil {
					return err
				}
			}
			report, err := validateEvents(data, policy, source)
			if err != nil {
				return err
			}
			return writeValidateReport(report, os.Stdout, &params)
		},
	}
}

// validateEvents checks every non-empty line of a newline-delimited
// event dump against the policy.
func validateEvents(data []byte, policy *Policy, source string) (validateReport, error) {
	report := validateReport{Source: source}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), maxEventLineBytes)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		report.Events++
		issues := checkEvent(policy, line)
		if len(issues) == 0 {
			continue
		}
		report.Invalid++
		for i := range issues {
			issues[i].Line = lineNumber
		}
		report.Issues = append(report.Issues, issues...)
	}
	if err := scanner.Err(); err != nil {
		return validateReport{}, fmt.Errorf("scan line %d: %w", lineNumber+1, err)
	}

	return report, nil
}

// checkEvent decodes one event line under the policy and returns the
// issues found, without line numbers (the caller fills those in).
func checkEvent(policy *Policy, line []byte) []validateIssue {
	if policy.MaxBytes > 0 && len(line) > policy.MaxBytes {
		return []validateIssue{{
			Failure: "policy",
			Message: fmt.Sprintf("event is %d bytes, policy caps events at %d", len(line), policy.MaxBytes),
		}}
	}

	decoded, err := policy.decode(line)
	if err != nil {
		invalid := event.AsInvalidEvent(err)
		if invalid == nil {
			return []validateIssue{{Failure: "syntactic", Message: err.Error()}}
		}
		return []validateIssue{{Failure: invalid.Class.String(), Message: invalid.Message}}
	}

	if eventType := decoded.EventType(); !policy.allowsType(eventType) {
		return []validateIssue{{
			Type:    string(eventType),
			Failure: "policy",
			Message: fmt.Sprintf("extension type %q is not allowed by policy", eventType),
		}}
	}

	return nil
}

// writeValidateReport renders the report and decides the exit status.
// Text mode prints one line per issue; an invalid run returns a
// summary error so main reports it and exits 1.
func writeValidateReport(report validateReport, w io.Writer, params *validateParams) error {
	if done, err := params.EmitJSON(report); done {
		if err != nil {
			return err
		}
		if report.Invalid > 0 {
			return &cli.ExitError{Code: 1}
		}
		return nil
	}

	for _, item := range report.Issues {
		if item.Type != "" {
			fmt.Fprintf(w, "line %d (%s): %s: %s\n", item.Line, item.Type, item.Failure, item.Message)
		} else {
			fmt.Fprintf(w, "line %d: %s: %s\n", item.Line, item.Failure, item.Message)
		}
	}
	if report.Invalid > 0 {
		return fmt.Errorf("%s: %d of %d events invalid", report.Source, report.Invalid, report.Events)
	}
	fmt.Fprintf(w, "%s: %d events valid\n", report.Source, report.Events)
	return nil
}
