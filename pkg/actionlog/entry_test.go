package actionlog

import (
	"strings"
	"testing"
	"time"
)

func TestFormatParseRoundtrip(t *testing.T) {
	entry := Entry{
		Timestamp:  time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
		AgentID:    "demo-1",
		Tool:       "check_compliance",
		Args:       "(artifact)",
		KwargTypes: map[string]string{"artifact": "map[string]interface {}"},
	}
	line := FormatLine(entry)
	if !strings.HasPrefix(line, "- 2026-03-14T09:26:53Z | demo-1.check_compliance: ") {
		t.Fatalf("unexpected line prefix: %s", line)
	}
	if !strings.HasSuffix(line, "\n") {
		t.Fatal("line must be newline-terminated")
	}

	parsed, ok := ParseLine(line)
	if !ok {
		t.Fatalf("line did not parse: %s", line)
	}
	if !parsed.Timestamp.Equal(entry.Timestamp) {
		t.Errorf("timestamp mismatch: %v", parsed.Timestamp)
	}
	if parsed.AgentID != "demo-1" || parsed.Tool != "check_compliance" {
		t.Errorf("identity mismatch: %s.%s", parsed.AgentID, parsed.Tool)
	}
	if parsed.Args != entry.Args {
		t.Errorf("args mismatch: %q", parsed.Args)
	}
	if parsed.KwargTypes["artifact"] != "map[string]interface {}" {
		t.Errorf("kwargs mismatch: %v", parsed.KwargTypes)
	}
}

func TestNewEntryRecordsTypesNotValues(t *testing.T) {
	entry := NewEntry("sec-1", "scan", map[string]any{
		"target": "prod-cluster",
		"depth":  3,
	})
	if entry.KwargTypes["target"] != "string" || entry.KwargTypes["depth"] != "int" {
		t.Errorf("unexpected kwarg types: %v", entry.KwargTypes)
	}
	for _, v := range entry.KwargTypes {
		if strings.Contains(v, "prod-cluster") {
			t.Error("kwarg types must not carry values")
		}
	}
	if entry.Args != "(depth, target)" {
		t.Errorf("args summary must list sorted names only: %q", entry.Args)
	}
	if entry.Timestamp.Location() != time.UTC {
		t.Error("entry timestamp must be UTC")
	}
}

func TestNewEntryOmitsSensitiveValues(t *testing.T) {
	entry := NewEntry("demo-1", "login", map[string]any{"password": "hunter2"})
	line := FormatLine(entry)
	if strings.Contains(entry.Args, "hunter2") || strings.Contains(line, "hunter2") {
		t.Errorf("argument value leaked into the log: %s", line)
	}
	if entry.Args != "(password)" {
		t.Errorf("args summary should carry the name only: %q", entry.Args)
	}
	if entry.KwargTypes["password"] != "string" {
		t.Errorf("unexpected kwarg types: %v", entry.KwargTypes)
	}
}

func TestNewEntryTruncatesArgs(t *testing.T) {
	entry := NewEntry("a", "t", map[string]any{strings.Repeat("k", 500): 1})
	if got := len([]rune(entry.Args)); got > MaxArgsLen {
		t.Errorf("args summary too long: %d runes", got)
	}
}

func TestParseLineRejectsMalformed(t *testing.T) {
	bad := []string{
		"",
		"# comment line",
		"not a log line",
		"- 2026-03-14T09:26:53Z missing separator",
		"- notatime | a.b: {\"args\": \"\", \"kwargs\": {}}",
		"- 2026-03-14T09:26:53Z | noseparator: {\"args\": \"\", \"kwargs\": {}}",
		"- 2026-03-14T09:26:53Z | a.b: {not json}",
	}
	for _, line := range bad {
		if _, ok := ParseLine(line); ok {
			t.Errorf("line should not parse: %q", line)
		}
	}
}

func TestTruncate(t *testing.T) {
	if Truncate("short", 120) != "short" {
		t.Error("short strings must pass through")
	}
	long := strings.Repeat("é", 200)
	got := Truncate(long, 120)
	if len([]rune(got)) != 120 {
		t.Errorf("expected 120 runes, got %d", len([]rune(got)))
	}
}
