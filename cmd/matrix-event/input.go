// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"os"
)

// readInput resolves input data from an optional trailing file path
// argument. With no argument (or "-"), input is read from stdin. The
// returned name is the file path or "stdin", for diagnostics.
func readInput(args []string) (data []byte, name string, err error) {
	if len(args) > 1 {
		return nil, "", fmt.Errorf("expected at most one input file, got %d arguments", len(args))
	}
	if len(args) == 0 || args[0] == "-" {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return nil, "", fmt.Errorf("read stdin: %w", err)
		}
		return data, "stdin", nil
	}
	data, err = os.ReadFile(args[0])
	if err != nil {
		return nil, "", fmt.Errorf("read %s: %w", args[0], err)
	}
	return data, args[0], nil
}

// openOutput opens the output destination for commands that write a
// file or stdout. An empty path means stdout, which must not be
// closed; the returned close function handles both cases.
func openOutput(path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return os.Stdout, func() error { return nil }, nil
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create %s: %w", path, err)
	}
	return file, file.Close, nil
}
