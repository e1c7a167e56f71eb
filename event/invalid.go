// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package event

import (
	"encoding/json"
	"errors"
	"fmt"
)

// FailureClass distinguishes the two ways event decoding fails.
type FailureClass int

const (
	// FailureSyntactic: the input did not parse into the event's wire
	// shape. Malformed JSON, a non-object event, wrong field types,
	// missing required fields, out-of-domain integers, and malformed
	// identifiers are all syntactic failures (decode phase 1).
	FailureSyntactic FailureClass = iota + 1
	// FailureSemantic: the input parsed structurally but violated a
	// semantic rule. Unknown enum values, a missing or unsupported
	// content discriminant (encryption algorithm, message type), a
	// missing "type" field, and an event whose type does not belong
	// to the requested collection level are semantic failures (decode
	// phase 2).
	FailureSemantic
)

// String returns the class name used in diagnostics and logs.
func (c FailureClass) String() string {
	switch c {
	case FailureSyntactic:
		return "syntactic"
	case FailureSemantic:
		return "semantic"
	default:
		return fmt.Sprintf("FailureClass(%d)", int(c))
	}
}

// InvalidEventError describes JSON that could not be decoded into an
// event. Class selects which payload fields are populated:
//
//   - FailureSyntactic: Err holds the underlying parse error, and JSON
//     holds the generic parsed value when the input was at least valid
//     JSON (nil when the bytes were not JSON at all).
//   - FailureSemantic: Raw holds the structurally parsed value that
//     failed validation, so the caller can still inspect the received
//     data.
//
// The two payloads are mutually exclusive; branch on Class.
type InvalidEventError struct {
	// Class is the failure class. Never zero.
	Class FailureClass
	// Message describes why the event is invalid.
	Message string
	// JSON is the generic parsed value of syntactically failed input
	// that was nonetheless valid JSON (for example, an object whose
	// fields have the wrong types). Nil for malformed JSON.
	JSON any
	// Raw is the structurally parsed value behind a semantic failure:
	// the generic form of the event or content object that violated a
	// validation rule.
	Raw any
	// Err is the underlying decoder error for syntactic failures.
	Err error
}

// Error implements the error interface.
func (e *InvalidEventError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid event (%s): %s: %v", e.Class, e.Message, e.Err)
	}
	return fmt.Sprintf("invalid event (%s): %s", e.Class, e.Message)
}

// Unwrap exposes the underlying parse error to errors.Is/errors.As.
func (e *InvalidEventError) Unwrap() error { return e.Err }

// AsInvalidEvent returns the *InvalidEventError in err's chain, or nil
// when decoding failed for an unrelated reason.
func AsInvalidEvent(err error) *InvalidEventError {
	var invalid *InvalidEventError
	if errors.As(err, &invalid) {
		return invalid
	}
	return nil
}

// syntacticError builds the diagnostic for a phase-1 failure. input is
// the JSON the decoder was working on; when it parses as generic JSON
// the parsed value is attached for inspection.
func syntacticError(message string, input []byte, err error) *InvalidEventError {
	invalid := &InvalidEventError{
		Class:   FailureSyntactic,
		Message: message,
		Err:     err,
	}
	var generic any
	if len(input) > 0 && json.Unmarshal(input, &generic) == nil {
		invalid.JSON = generic
	}
	return invalid
}

// semanticError builds the diagnostic for a phase-2 failure. raw is
// the structurally parsed value that failed validation.
func semanticError(message string, raw any) *InvalidEventError {
	return &InvalidEventError{
		Class:   FailureSemantic,
		Message: message,
		Raw:     raw,
	}
}

// semanticErrorJSON is semanticError for callers holding the wire
// bytes rather than a parsed value.
func semanticErrorJSON(message string, input []byte) *InvalidEventError {
	var generic any
	if len(input) > 0 {
		// Best effort: the input already passed a structural parse,
		// so this only fails for non-content byte slices.
		_ = json.Unmarshal(input, &generic)
	}
	return semanticError(message, generic)
}
