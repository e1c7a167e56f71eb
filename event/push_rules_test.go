// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package event

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestActionUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Action
		wantErr bool
	}{
		{"notify", `"notify"`, Action{Kind: ActionNotify}, false},
		{"dont_notify", `"dont_notify"`, Action{Kind: ActionDontNotify}, false},
		{"coalesce", `"coalesce"`, Action{Kind: ActionCoalesce}, false},
		{
			"tweak with value",
			`{"set_tweak":"sound","value":"default"}`,
			Action{Kind: ActionSetTweak, Tweak: "sound", Value: json.RawMessage(`"default"`)},
			false,
		},
		{
			"tweak without value",
			`{"set_tweak":"highlight"}`,
			Action{Kind: ActionSetTweak, Tweak: "highlight"},
			false,
		},
		{"unknown string", `"shout"`, Action{}, true},
		{"object without set_tweak", `{"value":1}`, Action{}, true},
		{"number", `7`, Action{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Action
			err := json.Unmarshal([]byte(tt.input), &got)
			if tt.wantErr {
				if err == nil {
					t.Fatal("unmarshal succeeded, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got.Kind != tt.want.Kind || got.Tweak != tt.want.Tweak ||
				!bytes.Equal(got.Value, tt.want.Value) {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestActionUnknownStringIsSemantic(t *testing.T) {
	input := `{"content":{"global":{"override":[{"actions":["shout"],"default":true,"enabled":true,"rule_id":".m.rule.master"}]}},"type":"m.push_rules"}`
	_, err := DecodeBasic[PushRulesEventContent]([]byte(input))
	mustInvalid(t, err, FailureSemantic)
}

func TestActionMarshalRoundTrip(t *testing.T) {
	actions := []Action{
		{Kind: ActionNotify},
		{Kind: ActionSetTweak, Tweak: "sound", Value: json.RawMessage(`"ping"`)},
		{Kind: ActionSetTweak, Tweak: "highlight"},
	}
	data, err := json.Marshal(actions)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `["notify",{"set_tweak":"sound","value":"ping"},{"set_tweak":"highlight"}]`
	if string(data) != want {
		t.Errorf("encoded %s, want %s", data, want)
	}

	var decoded []Action
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(decoded) != 3 || decoded[0].Kind != ActionNotify ||
		decoded[1].Tweak != "sound" || decoded[2].Tweak != "highlight" {
		t.Errorf("round trip lost data: %+v", decoded)
	}
}

func TestPushRulesDecode(t *testing.T) {
	input := `{"content":{"global":{"content":[{"actions":["notify",{"set_tweak":"sound","value":"default"}],"default":true,"enabled":true,"pattern":"alice","rule_id":".m.rule.contains_user_name"}],"override":[{"actions":["dont_notify"],"conditions":[{"key":"type","kind":"event_match","pattern":"m.room.member"}],"default":true,"enabled":true,"rule_id":".m.rule.member_event"}],"underride":[{"actions":["notify"],"conditions":[{"is":"2","kind":"room_member_count"}],"default":true,"enabled":true,"rule_id":".m.rule.room_one_to_one"}]}},"type":"m.push_rules"}`

	e, err := DecodeBasic[PushRulesEventContent]([]byte(input))
	if err != nil {
		t.Fatalf("DecodeBasic: %v", err)
	}
	global := e.Content.Global
	if len(global.Content) != 1 || global.Content[0].Pattern != "alice" {
		t.Errorf("content rules = %+v", global.Content)
	}
	if len(global.Override) != 1 {
		t.Fatalf("override rules = %+v", global.Override)
	}
	condition := global.Override[0].Conditions[0]
	if condition.Kind != ConditionEventMatch || condition.Key != "type" {
		t.Errorf("condition = %+v", condition)
	}
	if global.Underride[0].Conditions[0].Is != "2" {
		t.Errorf("member count condition = %+v", global.Underride[0].Conditions[0])
	}

	out, err := Encode(e)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !bytes.Equal(out, []byte(input)) {
		t.Errorf("round trip:\n  got:  %s\n  want: %s", out, input)
	}
}
