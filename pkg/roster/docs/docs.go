// Package docs provides the documentation agent: it renders an overview of
// the registered roster and summarizes the shared action log.
package docs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arandia/ergon/pkg/actionlog"
	"github.com/arandia/ergon/pkg/agent"
	"github.com/arandia/ergon/pkg/core"
	"github.com/arandia/ergon/pkg/errors"
)

// RosterEntry is one documented agent variant.
type RosterEntry struct {
	Name     string
	Category string
	Role     string
	Backend  string
	Tools    []string
}

// Lister enumerates the roster to document. The documentation agent takes
// it as a dependency so this package never has to know the catalogue.
type Lister func() []RosterEntry

// New builds the documentation agent.
func New(list Lister, opts ...agent.Option) *agent.Base {
	a := agent.New("documentation-agent-001", "Generate documentation for agents and their tools",
		append([]agent.Option{agent.WithDefaultBackend("openai/gpt-5-chat")}, opts...)...)

	a.RegisterFunc("summarize_action_logs", "Summarize the action log with counts per agent and per tool.",
		func(ctx context.Context, args map[string]any) (map[string]any, error) {
			path := core.StringArg(args, "path", actionlog.DefaultPath)
			a.Logger().InfoContext(ctx, "summary.started", "path", path)

			f, err := os.Open(path)
			if os.IsNotExist(err) {
				return map[string]any{
					"total":    0,
					"skipped":  0,
					"by_agent": map[string]int{},
					"by_tool":  map[string]int{},
				}, nil
			}
			if err != nil {
				return nil, errors.Wrap(errors.CodeInternal, "action log unreadable", err).
					WithContext("path", path)
			}
			defer f.Close()

			sum, err := actionlog.Summarize(f)
			if err != nil {
				return nil, errors.Wrap(errors.CodeInternal, "action log summary failed", err).
					WithContext("path", path)
			}
			return map[string]any{
				"total":    sum.Total,
				"skipped":  sum.Skipped,
				"by_agent": sum.ByAgent,
				"by_tool":  sum.ByTool,
			}, nil
		})

	a.RegisterFunc("generate_roster_overview", "Write a markdown overview of the roster and each agent's primary tool.",
		func(ctx context.Context, args map[string]any) (map[string]any, error) {
			output := core.StringArg(args, "output_path", "")
			if output == "" {
				return nil, errors.New(errors.CodeInvalidInput, "output_path is required")
			}
			var entries []RosterEntry
			if list != nil {
				entries = list()
			}
			a.Logger().InfoContext(ctx, "overview.started", "agents", len(entries), "output", output)

			if dir := filepath.Dir(output); dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return nil, errors.Wrap(errors.CodeInternal, "overview directory unavailable", err)
				}
			}
			if err := os.WriteFile(output, []byte(renderOverview(entries)), 0o644); err != nil {
				return nil, errors.Wrap(errors.CodeInternal, "overview write failed", err).
					WithContext("path", output)
			}
			return map[string]any{"written_to": output, "count": len(entries)}, nil
		})

	return a
}

func renderOverview(entries []RosterEntry) string {
	var sb strings.Builder
	sb.WriteString("# Roster Overview\n\n")
	sb.WriteString("This document lists all agents and their primary tool (if any).\n\n")
	for _, e := range entries {
		fmt.Fprintf(&sb, "- %s (%s)", e.Name, e.Category)
		if len(e.Tools) > 0 {
			fmt.Fprintf(&sb, ": `%s`", e.Tools[0])
		}
		if e.Role != "" {
			fmt.Fprintf(&sb, " — %s", e.Role)
		}
		if e.Backend != "" {
			fmt.Fprintf(&sb, " (backend: %s)", e.Backend)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
