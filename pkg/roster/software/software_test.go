package software

import (
	"math"
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

func TestDataEngineerPipelineStages(t *testing.T) {
	a := NewDataEngineer(quietLog(t))
	result := agenttest.NewScenario("warehouse load").
		Tool("build_pipeline").
		WithArgs(map[string]any{
			"source":      map[string]any{"type": "postgres"},
			"destination": map[string]any{"type": "bigquery"},
		}).
		ExpectKey("status", "planned").
		Run(t, a)
	stages := result["stages"].([]map[string]any)
	if len(stages) != 3 {
		t.Fatalf("expected extract/transform/load, got %v", stages)
	}
	for i, name := range []string{"extract", "transform", "load"} {
		if stages[i]["name"] != name {
			t.Errorf("stage %d = %v, want %s", i, stages[i]["name"], name)
		}
	}
}

func TestDevOpsEngineerDeploy(t *testing.T) {
	a := NewDevOpsEngineer(quietLog(t))
	if a.Backend() != "deepseek/coder" {
		t.Errorf("backend = %s", a.Backend())
	}
	agenttest.NewScenario("staging deploy").
		Tool("deploy_application").
		WithArgs(map[string]any{
			"application": map[string]any{"name": "billing"},
			"environment": "staging",
		}).
		ExpectKey("status", "deployed").
		ExpectKey("app", "billing").
		ExpectKey("environment", "staging").
		Run(t, a)
}

func TestSecurityEngineerScan(t *testing.T) {
	a := NewSecurityEngineer(quietLog(t))
	result := agenttest.NewScenario("clean scan").
		Tool("scan_for_vulnerabilities").
		WithArgs(map[string]any{"application": map[string]any{"name": "portal"}}).
		ExpectKey("app", "portal").
		Run(t, a)
	if vulns := result["vulnerabilities"].([]string); len(vulns) != 0 {
		t.Errorf("expected no findings: %v", vulns)
	}
}

func TestSiteReliabilityEngineerMonitor(t *testing.T) {
	a := NewSiteReliabilityEngineer(quietLog(t))
	if a.ID() != "sre-001" {
		t.Errorf("id = %s", a.ID())
	}
	agenttest.NewScenario("health tick").
		Tool("monitor_system").
		ExpectKey("status", "healthy").
		Run(t, a)
}

func TestSoftwareArchitectPicksFirstOnTies(t *testing.T) {
	a := NewSoftwareArchitect(quietLog(t))
	result := agenttest.NewScenario("uniform scores").
		Tool("evaluate_architecture_decision").
		WithArgs(map[string]any{
			"requirement": "scale reads",
			"options":     []string{"cqrs", "sharding"},
		}).
		ExpectKey("best_option", "cqrs").
		Run(t, a)
	score, ok := result["cqrs"].(float64)
	if !ok || math.Abs(score-0.8) > 1e-9 {
		t.Errorf("uniform weighted score must be 0.8, got %v", result["cqrs"])
	}
}

func TestPredictionsEngineerForecast(t *testing.T) {
	a := NewPredictionsEngineer(quietLog(t))
	result := agenttest.NewScenario("three step forecast").
		Tool("generate_forecast").
		WithArgs(map[string]any{"data": []float64{1, 2, 3}, "horizon": 2}).
		ExpectKey("method", "moving_average").
		Run(t, a)
	forecast := result["forecast"].([]float64)
	if len(forecast) != 2 {
		t.Fatalf("forecast length = %d", len(forecast))
	}
	if math.Abs(forecast[0]-2.0) > 1e-9 {
		t.Errorf("first step must average the trailing window: %v", forecast)
	}
	intervals := result["confidence_intervals"].([][]float64)
	if len(intervals) != len(forecast) {
		t.Errorf("one interval per forecast point: %v", intervals)
	}
}

func TestPredictionsEngineerEmptySeries(t *testing.T) {
	a := NewPredictionsEngineer(quietLog(t))
	result := agenttest.NewScenario("no history").
		Tool("generate_forecast").
		WithArgs(map[string]any{}).
		Run(t, a)
	forecast := result["forecast"].([]float64)
	if len(forecast) != 1 || forecast[0] != 0 {
		t.Errorf("empty series must yield a single zero step: %v", forecast)
	}
}
