// Package actionlog implements the shared append-only audit trail of tool
// invocations. One line is appended per successful tool call. The log is
// write-only: writers never read or rewrite prior lines.
//
// Argument values are never recorded: the args summary carries the
// argument names only, and the kwargs mapping carries runtime type names.
// The log file is shared across agents and deployments, and payloads may
// carry sensitive content.
package actionlog

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// MaxArgsLen bounds the rendered argument summary per entry.
const MaxArgsLen = 120

// Entry is one audit record of a successful tool invocation.
type Entry struct {
	Timestamp  time.Time
	AgentID    string
	Tool       string
	Args       string
	KwargTypes map[string]string
}

// NewEntry builds an Entry from an invocation's argument map: a truncated
// rendering of the argument names plus a name-to-type mapping. Argument
// values appear in neither Args nor KwargTypes.
func NewEntry(agentID, tool string, args map[string]any) Entry {
	kwargs := make(map[string]string, len(args))
	keys := make([]string, 0, len(args))
	for k := range args {
		keys = append(keys, k)
		kwargs[k] = fmt.Sprintf("%T", args[k])
	}
	sort.Strings(keys)

	return Entry{
		Timestamp:  time.Now().UTC(),
		AgentID:    agentID,
		Tool:       tool,
		Args:       Truncate("("+strings.Join(keys, ", ")+")", MaxArgsLen),
		KwargTypes: kwargs,
	}
}

// Truncate shortens s to at most n runes.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// FormatLine renders an entry as a single log line, newline-terminated:
//
//   - <RFC3339 UTC> | <agent_id>.<tool>: {"args": "...", "kwargs": {...}}
func FormatLine(e Entry) string {
	argsJSON, err := json.Marshal(e.Args)
	if err != nil {
		argsJSON = []byte(`""`)
	}
	kwargs := e.KwargTypes
	if kwargs == nil {
		kwargs = map[string]string{}
	}
	kwargsJSON, err := json.Marshal(kwargs)
	if err != nil {
		kwargsJSON = []byte("{}")
	}
	return fmt.Sprintf("- %s | %s.%s: {\"args\": %s, \"kwargs\": %s}\n",
		e.Timestamp.UTC().Format(time.RFC3339),
		e.AgentID,
		e.Tool,
		argsJSON,
		kwargsJSON,
	)
}

// ParseLine parses one log line. It returns ok=false for blank lines,
// comment lines and anything else that does not match the entry format;
// consumers are expected to skip those.
func ParseLine(line string) (Entry, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return Entry{}, false
	}
	rest, found := strings.CutPrefix(line, "- ")
	if !found {
		return Entry{}, false
	}
	tsPart, rest, found := strings.Cut(rest, " | ")
	if !found {
		return Entry{}, false
	}
	ts, err := time.Parse(time.RFC3339, strings.TrimSpace(tsPart))
	if err != nil {
		return Entry{}, false
	}
	namePart, payload, found := strings.Cut(rest, ": ")
	if !found {
		return Entry{}, false
	}
	dot := strings.LastIndex(namePart, ".")
	if dot <= 0 || dot == len(namePart)-1 {
		return Entry{}, false
	}
	var body struct {
		Args   string            `json:"args"`
		Kwargs map[string]string `json:"kwargs"`
	}
	if err := json.Unmarshal([]byte(payload), &body); err != nil {
		return Entry{}, false
	}
	return Entry{
		Timestamp:  ts.UTC(),
		AgentID:    namePart[:dot],
		Tool:       namePart[dot+1:],
		Args:       body.Args,
		KwargTypes: body.Kwargs,
	}, true
}
