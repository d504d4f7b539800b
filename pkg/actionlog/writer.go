package actionlog

import (
	"os"
	"path/filepath"

	"github.com/arandia/ergon/pkg/errors"
)

// DefaultPath is the well-known action log location relative to the
// project root anchor.
const DefaultPath = "agents/AGENT_ACTIONS.md"

// Writer appends entries to the shared action log file.
//
// Append opens the file in append mode and emits each line with a single
// Write call, so concurrent appends from multiple goroutines or processes
// interleave at line granularity without corrupting one another.
//
// Append returns its outcome as an ordinary error. The audit wrapper in
// pkg/agent logs that outcome at debug level and discards it; audit
// failures never reach the tool caller.
type Writer struct {
	path string
}

// NewWriter creates a writer for the given path. An empty path selects
// DefaultPath.
func NewWriter(path string) *Writer {
	if path == "" {
		path = DefaultPath
	}
	return &Writer{path: path}
}

// Path returns the log file path.
func (w *Writer) Path() string { return w.path }

// Append writes one entry to the log, creating parent directories and the
// file itself if absent.
func (w *Writer) Append(e Entry) error {
	if dir := filepath.Dir(w.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(errors.CodeAuditFailure, "create log directory", err)
		}
	}
	f, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.Wrap(errors.CodeAuditFailure, "open action log", err)
	}
	_, werr := f.WriteString(FormatLine(e))
	cerr := f.Close()
	if werr != nil {
		return errors.Wrap(errors.CodeAuditFailure, "append action log", werr)
	}
	if cerr != nil {
		return errors.Wrap(errors.CodeAuditFailure, "close action log", cerr)
	}
	return nil
}
