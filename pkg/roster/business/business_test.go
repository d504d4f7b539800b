package business

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/arandia/ergon/pkg/actionlog"
	"github.com/arandia/ergon/pkg/agent"
	"github.com/arandia/ergon/pkg/agenttest"
)

func quietLog(t *testing.T) agent.Option {
	t.Helper()
	return agent.WithActionLog(actionlog.NewWriter(filepath.Join(t.TempDir(), "log.md")))
}

func TestComplianceOfficerDefaults(t *testing.T) {
	a := NewComplianceOfficer(quietLog(t))
	if a.ID() != "compliance-officer-001" {
		t.Errorf("id = %s", a.ID())
	}
	if a.Backend() != "openai/o3" {
		t.Errorf("backend = %s", a.Backend())
	}
	agenttest.NewScenario("compliant artifact").
		Tool("check_compliance").
		WithArgs(map[string]any{"artifact": map[string]any{"name": "data-policy"}}).
		ExpectKey("status", "compliant").
		ExpectKey("artifact", "data-policy").
		Run(t, a)
}

func TestComplianceOfficerBackendOverride(t *testing.T) {
	a := NewComplianceOfficer(quietLog(t), agent.WithBackend("local/test"))
	if a.Backend() != "local/test" {
		t.Errorf("explicit backend must win over the variant default, got %s", a.Backend())
	}
}

func TestDecisionMakerAutonomous(t *testing.T) {
	a := NewDecisionMaker(quietLog(t))
	result := agenttest.NewScenario("simple decision").
		Tool("make_decision").
		WithArgs(map[string]any{
			"context":     map[string]any{"stakeholders": 2},
			"options":     []string{"monolith", "microservices"},
			"constraints": map[string]any{},
		}).
		ExpectKey("decision", "monolith").
		Run(t, a)
	scores, ok := result["scores"].(map[string]map[string]float64)
	if !ok || len(scores) != 2 {
		t.Fatalf("scores missing or wrong shape: %v", result["scores"])
	}
}

func TestDecisionMakerConstraintPenalties(t *testing.T) {
	a := NewDecisionMaker(quietLog(t))
	result := agenttest.NewScenario("tight budget").
		Tool("make_decision").
		WithArgs(map[string]any{
			"options":     []string{"a"},
			"constraints": map[string]any{"budget": "tight", "deadline": "aggressive"},
		}).
		Run(t, a)
	scores := result["scores"].(map[string]map[string]float64)
	if got := scores["a"]["cost"]; got != 0.6 {
		t.Errorf("tight budget must cut the cost score: %v", got)
	}
	if got := scores["a"]["time"]; got != 0.65 {
		t.Errorf("aggressive deadline must cut the time score: %v", got)
	}
}

func TestDecisionMakerEscalates(t *testing.T) {
	a := NewDecisionMaker(quietLog(t))
	result := agenttest.NewScenario("complex decision").
		Tool("make_decision").
		WithArgs(map[string]any{
			"context":     map[string]any{"stakeholders": 8, "risk_profile": "high"},
			"options":     []string{"rewrite", "patch"},
			"constraints": map[string]any{},
		}).
		ExpectKey("action", "escalate").
		Run(t, a)
	if _, ok := result["decision"]; ok {
		t.Error("an escalated decision must not carry a decision")
	}
}

func TestEngineeringManagerApproves(t *testing.T) {
	a := NewEngineeringManager(quietLog(t))
	result := agenttest.NewScenario("clean pull request").
		Tool("review_code").
		WithArgs(map[string]any{"pull_request": map[string]any{"code": "func ok() {}"}}).
		ExpectKey("status", "approved").
		Run(t, a)
	feedback, _ := result["feedback"].(string)
	if !strings.Contains(feedback, "Quality Score") {
		t.Errorf("feedback must carry the quality score: %q", feedback)
	}
}

func TestEngineeringManagerRequestsChanges(t *testing.T) {
	a := NewEngineeringManager(quietLog(t))
	agenttest.NewScenario("eval usage").
		Tool("review_code").
		WithArgs(map[string]any{"pull_request": map[string]any{"code": "eval(input)"}}).
		ExpectKey("status", "changes_requested").
		Run(t, a)
}

func TestQualityControlComplexity(t *testing.T) {
	a := NewQualityControl(quietLog(t))
	agenttest.NewScenario("short snippet").
		Tool("analyze_code").
		WithArgs(map[string]any{"code": strings.Repeat("x", 1000)}).
		ExpectKey("complexity", 0.5).
		Run(t, a)

	result := agenttest.NewScenario("huge file caps at 1").
		Tool("analyze_code").
		WithArgs(map[string]any{"code": strings.Repeat("x", 10000)}).
		ExpectKey("complexity", 1.0).
		Run(t, a)
	if issues := result["issues"].([]string); len(issues) != 0 {
		t.Errorf("no issues expected: %v", issues)
	}
}

func TestQualityControlFlagsOpenWork(t *testing.T) {
	a := NewQualityControl(quietLog(t))
	result := agenttest.NewScenario("open work markers").
		Tool("analyze_code").
		WithArgs(map[string]any{"code": "// TODO fix this\n"}).
		Run(t, a)
	if issues := result["issues"].([]string); len(issues) != 1 {
		t.Errorf("expected one issue, got %v", issues)
	}
}

func TestMarketingAgencyCampaign(t *testing.T) {
	a := NewMarketingAgency(quietLog(t))
	result := agenttest.NewScenario("launch campaign").
		Tool("create_campaign").
		WithArgs(map[string]any{"spec": map[string]any{
			"product":  "widget",
			"audience": "makers",
			"channels": []string{"video"},
		}}).
		Run(t, a)
	strategy := result["strategy"].(map[string]any)
	if strategy["product"] != "widget" || strategy["audience"] != "makers" {
		t.Errorf("strategy identity mismatch: %v", strategy)
	}
	calendar := result["calendar"].([]map[string]any)
	if len(calendar) != 1 || calendar[0]["channel"] != "video" {
		t.Errorf("calendar must start on the first channel: %v", calendar)
	}
}

func TestBusinessAgentsAudit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "actions.md")
	a := NewComplianceOfficer(agent.WithActionLog(actionlog.NewWriter(path)))
	agenttest.NewScenario("audited call").
		Tool("check_compliance").
		WithArgs(map[string]any{"artifact": map[string]any{"name": "x"}}).
		Run(t, a)
	if n := agenttest.CountLogLines(t, path); n != 1 {
		t.Errorf("expected one audit line, got %d", n)
	}
}
