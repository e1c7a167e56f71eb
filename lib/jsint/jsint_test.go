// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package jsint

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestUIntUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    UInt
		wantErr string
	}{
		{name: "zero", input: "0", want: 0},
		{name: "typical timestamp", input: "1", want: 1},
		{name: "max safe", input: "9007199254740991", want: MaxSafe},
		{name: "above max safe", input: "9007199254740992", wantErr: "exceeds"},
		{name: "negative", input: "-1", wantErr: "non-negative"},
		{name: "fractional", input: "1.5", wantErr: "non-negative"},
		{name: "exponent syntax", input: "1e3", wantErr: "non-negative"},
		{name: "string", input: `"1"`, wantErr: "non-negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var u UInt
			err := json.Unmarshal([]byte(tt.input), &u)
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("unmarshal %q: expected error, got %d", tt.input, u)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("unmarshal %q: error %q does not mention %q", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal %q: %v", tt.input, err)
			}
			if u != tt.want {
				t.Fatalf("unmarshal %q: got %d, want %d", tt.input, u, tt.want)
			}
		})
	}
}

func TestIntUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Int
		wantErr bool
	}{
		{name: "negative power level", input: "-25", want: -25},
		{name: "zero", input: "0", want: 0},
		{name: "min safe", input: "-9007199254740991", want: MinSafe},
		{name: "below min safe", input: "-9007199254740992", wantErr: true},
		{name: "fractional", input: "50.5", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var i Int
			err := json.Unmarshal([]byte(tt.input), &i)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("unmarshal %q: expected error, got %d", tt.input, i)
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal %q: %v", tt.input, err)
			}
			if i != tt.want {
				t.Fatalf("unmarshal %q: got %d, want %d", tt.input, i, tt.want)
			}
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	u := MustUInt(1706481600000)
	data, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != "1706481600000" {
		t.Fatalf("marshal: got %s, want bare digits", data)
	}
	var back UInt
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != u {
		t.Fatalf("round trip: got %d, want %d", back, u)
	}
}

func TestNullLeavesValueUnchanged(t *testing.T) {
	u := UInt(42)
	if err := json.Unmarshal([]byte("null"), &u); err != nil {
		t.Fatalf("unmarshal null: %v", err)
	}
	if u != 42 {
		t.Fatalf("unmarshal null: value changed to %d", u)
	}
}

func TestNewRejectsOutOfRange(t *testing.T) {
	if _, err := NewUInt(1 << 53); err == nil {
		t.Fatal("NewUInt(2^53): expected error")
	}
	if _, err := NewInt(-(1 << 53)); err == nil {
		t.Fatal("NewInt(-2^53): expected error")
	}
	if v, err := NewInt(100); err != nil || v != 100 {
		t.Fatalf("NewInt(100): got %d, %v", v, err)
	}
}
