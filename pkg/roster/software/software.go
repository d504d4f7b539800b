// Package software provides the engineering side of the roster: data,
// deployment, security, reliability, architecture, and forecasting agents.
package software

import (
	"context"
	"math"

	"github.com/arandia/ergon/pkg/agent"
	"github.com/arandia/ergon/pkg/core"
)

// NewDataEngineer builds the pipeline planning agent.
func NewDataEngineer(opts ...agent.Option) *agent.Base {
	a := agent.New("data-engineer-001", "Data analysis, pipeline development, and insights generation",
		append([]agent.Option{agent.WithDefaultBackend("anthropic/claude-4-sonnet")}, opts...)...)
	a.RegisterFunc("build_pipeline", "Plan a data pipeline from a source to a destination.",
		func(ctx context.Context, args map[string]any) (map[string]any, error) {
			source := core.MapArg(args, "source")
			destination := core.MapArg(args, "destination")
			a.Logger().InfoContext(ctx, "pipeline.planned",
				"source", core.StringArg(source, "type", ""),
				"destination", core.StringArg(destination, "type", ""),
			)
			stages := []map[string]any{
				{"name": "extract", "config": source},
				{"name": "transform", "config": map[string]any{
					"validations": []string{"schema_check", "null_check"},
				}},
				{"name": "load", "config": destination},
			}
			return map[string]any{"status": "planned", "stages": stages}, nil
		})
	return a
}

// NewDevOpsEngineer builds the deployment agent.
func NewDevOpsEngineer(opts ...agent.Option) *agent.Base {
	a := agent.New("devops-engineer-001", "Infrastructure automation and deployment management",
		append([]agent.Option{agent.WithDefaultBackend("deepseek/coder")}, opts...)...)
	a.RegisterFunc("deploy_application", "Deploy an application to an environment.",
		func(ctx context.Context, args map[string]any) (map[string]any, error) {
			name := core.StringArg(core.MapArg(args, "application"), "name", "app")
			environment := core.StringArg(args, "environment", "")
			a.Logger().InfoContext(ctx, "deploy.started", "app", name, "environment", environment)
			return map[string]any{"status": "deployed", "app": name, "environment": environment}, nil
		})
	return a
}

// NewSecurityEngineer builds the vulnerability management agent.
func NewSecurityEngineer(opts ...agent.Option) *agent.Base {
	a := agent.New("security-engineer-001", "Application security and vulnerability management",
		append([]agent.Option{agent.WithDefaultBackend("openai/o1-pro")}, opts...)...)
	a.RegisterFunc("scan_for_vulnerabilities", "Scan an application for security vulnerabilities.",
		func(ctx context.Context, args map[string]any) (map[string]any, error) {
			name := core.StringArg(core.MapArg(args, "application"), "name", "app")
			a.Logger().InfoContext(ctx, "scan.started", "app", name)
			return map[string]any{"app": name, "vulnerabilities": []string{}}, nil
		})
	return a
}

// NewSiteReliabilityEngineer builds the monitoring and incident agent.
func NewSiteReliabilityEngineer(opts ...agent.Option) *agent.Base {
	a := agent.New("sre-001", "System reliability, monitoring, and incident response",
		append([]agent.Option{agent.WithDefaultBackend("google/gemini-2.5-pro")}, opts...)...)
	a.RegisterFunc("monitor_system", "Report system reliability status.",
		func(ctx context.Context, args map[string]any) (map[string]any, error) {
			a.Logger().InfoContext(ctx, "monitoring.tick")
			return map[string]any{"status": "healthy"}, nil
		})
	return a
}

var architectureCriteria = map[string]float64{
	"scalability":     0.25,
	"maintainability": 0.20,
	"performance":     0.20,
	"security":        0.15,
	"cost":            0.10,
	"teamexpertise":   0.10,
}

// NewSoftwareArchitect builds the system design agent. Its tool scores
// options against weighted criteria; earlier options win ties.
func NewSoftwareArchitect(opts ...agent.Option) *agent.Base {
	a := agent.New("architect-001", "System design and architectural decisions",
		append([]agent.Option{agent.WithDefaultBackend("google/gemini-2.5-pro")}, opts...)...)
	a.RegisterFunc("evaluate_architecture_decision", "Evaluate architectural options and return the winner with scores.",
		func(ctx context.Context, args map[string]any) (map[string]any, error) {
			options := core.StringsArg(args, "options")
			result := map[string]any{}
			best := ""
			bestScore := math.Inf(-1)
			for _, option := range options {
				a.Logger().InfoContext(ctx, "architecture.scored", "option", option)
				score := weightedScore(option)
				result[option] = score
				if score > bestScore {
					bestScore = score
					best = option
				}
			}
			result["best_option"] = best
			return result, nil
		})
	return a
}

func weightedScore(option string) float64 {
	var score float64
	for _, weight := range architectureCriteria {
		score += weight * 0.8
	}
	return score
}

// forecastWindow is the trailing window averaged per forecast step.
const forecastWindow = 3

// NewPredictionsEngineer builds the forecasting agent.
func NewPredictionsEngineer(opts ...agent.Option) *agent.Base {
	a := agent.New("predictions-engineer-001", "Predictive analytics and forecasting integration",
		append([]agent.Option{agent.WithDefaultBackend("google/gemini-2.5-pro")}, opts...)...)
	a.RegisterFunc("generate_forecast", "Generate a moving-average forecast with confidence intervals.",
		func(ctx context.Context, args map[string]any) (map[string]any, error) {
			data := core.FloatsArg(args, "data")
			horizon := max(core.IntArg(args, "horizon", 1), 1)
			a.Logger().InfoContext(ctx, "forecast.started", "horizon", horizon, "points", len(data))

			forecast := make([]float64, 0, horizon)
			series := append([]float64{}, data...)
			for range horizon {
				forecast = append(forecast, trailingMean(series, forecastWindow))
				series = append(series, forecast[len(forecast)-1])
			}
			intervals := make([][]float64, len(forecast))
			for i := range intervals {
				intervals[i] = []float64{0.1, 0.9}
			}
			return map[string]any{
				"forecast":             forecast,
				"confidence_intervals": intervals,
				"method":               "moving_average",
			}, nil
		})
	return a
}

func trailingMean(series []float64, window int) float64 {
	if len(series) == 0 {
		return 0
	}
	if window > len(series) {
		window = len(series)
	}
	var sum float64
	for _, v := range series[len(series)-window:] {
		sum += v
	}
	return sum / float64(window)
}
