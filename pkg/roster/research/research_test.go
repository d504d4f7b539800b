package research

import (
	"path/filepath"
	"testing"

	"github.com/arandia/ergon/pkg/actionlog"
	"github.com/arandia/ergon/pkg/agent"
	"github.com/arandia/ergon/pkg/agenttest"
)

func quietLog(t *testing.T) agent.Option {
	t.Helper()
	return agent.WithActionLog(actionlog.NewWriter(filepath.Join(t.TempDir(), "log.md")))
}

func TestQuantAnalystCost(t *testing.T) {
	a := NewQuantAnalyst(quietLog(t))
	agenttest.NewScenario("priced project").
		Tool("analyze_cost").
		WithArgs(map[string]any{"project": map[string]any{"name": "atlas"}}).
		ExpectKey("project", "atlas").
		ExpectKey("cost", 100000).
		Run(t, a)

	agenttest.NewScenario("unnamed project").
		Tool("analyze_cost").
		WithArgs(map[string]any{}).
		ExpectKey("project", "project").
		Run(t, a)
}

func TestFOMCResearchShape(t *testing.T) {
	a := NewFOMCResearch(quietLog(t))
	if a.Backend() != "google/gemini-2.5-pro" {
		t.Errorf("backend = %s", a.Backend())
	}
	result := agenttest.NewScenario("rate guidance").
		Tool("run_research").
		WithArgs(map[string]any{"query": "rate guidance"}).
		ExpectKey("query", "rate guidance").
		Run(t, a)
	if len(result["findings"].([]string)) == 0 || len(result["citations"].([]string)) == 0 {
		t.Errorf("research must return findings and citations: %v", result)
	}
}

func TestLLMAuditorScoresClean(t *testing.T) {
	a := NewLLMAuditor(quietLog(t))
	agenttest.NewScenario("clean output").
		Tool("audit").
		WithArgs(map[string]any{"payload": map[string]any{"type": "output", "content": "All good."}}).
		ExpectKey("type", "output").
		ExpectKey("score", 0.95).
		Run(t, a)
}

func TestLLMAuditorFlagsSecrets(t *testing.T) {
	a := NewLLMAuditor(quietLog(t))
	result := agenttest.NewScenario("leaked secret").
		Tool("audit").
		WithArgs(map[string]any{"payload": map[string]any{"content": "my Password is hunter2"}}).
		ExpectKey("score", 0.6).
		Run(t, a)
	issues := result["issues"].([]map[string]any)
	if len(issues) != 1 || issues[0]["rule"] != "secrets" {
		t.Errorf("expected a secrets finding: %v", issues)
	}
}
