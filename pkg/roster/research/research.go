// Package research provides the analysis side of the roster: financial
// analysis, monetary-policy research, and model output auditing agents.
package research

import (
	"context"
	"strings"

	"github.com/arandia/ergon/pkg/agent"
	"github.com/arandia/ergon/pkg/core"
)

// NewQuantAnalyst builds the financial analysis agent.
func NewQuantAnalyst(opts ...agent.Option) *agent.Base {
	a := agent.New("quant-analyst-001", "Financial analysis and cost optimization",
		append([]agent.Option{agent.WithDefaultBackend("anthropic/claude-4-sonnet")}, opts...)...)
	a.RegisterFunc("analyze_cost", "Analyze the cost of a project.",
		func(ctx context.Context, args map[string]any) (map[string]any, error) {
			name := core.StringArg(core.MapArg(args, "project"), "name", "project")
			a.Logger().InfoContext(ctx, "cost.analyzed", "project", name)
			return map[string]any{"project": name, "cost": 100000}, nil
		})
	return a
}

// NewFOMCResearch builds the monetary-policy research agent. It runs
// queries over Federal Open Market Committee statements and related
// documents.
func NewFOMCResearch(opts ...agent.Option) *agent.Base {
	a := agent.New("fomc-research-001", "Research FOMC statements and generate insights",
		append([]agent.Option{agent.WithDefaultBackend("google/gemini-2.5-pro")}, opts...)...)
	a.RegisterFunc("run_research", "Run a research query across FOMC materials.",
		func(ctx context.Context, args map[string]any) (map[string]any, error) {
			query := core.StringArg(args, "query", "")
			rctx := core.MapArg(args, "context")
			a.Logger().InfoContext(ctx, "research.started",
				"query", query,
				"context_keys", len(rctx),
			)
			return map[string]any{
				"query":     query,
				"findings":  []string{"Placeholder finding 1", "Placeholder finding 2"},
				"citations": []string{"fomc-doc-2024-01", "fomc-doc-2023-11"},
			}, nil
		})
	return a
}

// NewLLMAuditor builds the prompt/output auditor agent.
func NewLLMAuditor(opts ...agent.Option) *agent.Base {
	a := agent.New("llm-auditor-001", "Audit LLM prompts and outputs for compliance and safety",
		append([]agent.Option{agent.WithDefaultBackend("anthropic/claude-4-sonnet")}, opts...)...)
	a.RegisterFunc("audit", "Audit a prompt or model output for policy issues.",
		func(ctx context.Context, args map[string]any) (map[string]any, error) {
			payload := core.MapArg(args, "payload")
			contentType := core.StringArg(payload, "type", "prompt")
			content := core.StringArg(payload, "content", "")
			a.Logger().InfoContext(ctx, "audit.started", "type", contentType)

			issues := []map[string]any{}
			if strings.Contains(strings.ToLower(content), "password") {
				issues = append(issues, map[string]any{
					"rule":     "secrets",
					"severity": "high",
					"detail":   "Mentions password",
				})
			}
			score := 0.95
			if len(issues) > 0 {
				score = 0.6
			}
			return map[string]any{"type": contentType, "issues": issues, "score": score}, nil
		})
	return a
}
