package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   Debug,
		"":        Info,
		"WARNING": Warn,
		" error ": Error,
		"bogus":   Info,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestJSONOutput_IncludesBaseAndFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Info, Format: FormatJSON, App: "smartpill", Output: &buf})

	l.With(map[string]any{"request_id": "r-1"}).Info("report built", map[string]any{
		"days": 7,
		"":     "ignored",
	})

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("invalid json log line %q: %v", buf.String(), err)
	}
	if entry["msg"] != "report built" {
		t.Fatalf("unexpected msg: %v", entry["msg"])
	}
	if entry["app"] != "smartpill" || entry["request_id"] != "r-1" {
		t.Fatalf("missing base fields: %v", entry)
	}
	if entry["days"] != float64(7) {
		t.Fatalf("missing field days: %v", entry)
	}
	if _, ok := entry[""]; ok {
		t.Fatalf("empty key should be dropped: %v", entry)
	}
	if _, ok := entry["ts"]; !ok {
		t.Fatalf("expected ts key: %v", entry)
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Warn, Output: &buf})

	l.Info("hidden", nil)
	l.Warn("shown", nil)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info should be filtered at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Fatalf("warn should be logged: %q", out)
	}
}
