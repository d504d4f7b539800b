// Package agenttest provides helpers for testing roster variants: a
// declarative tool-invocation scenario plus small assertion utilities.
//
// Example:
//
//	agenttest.NewScenario("deploy to staging").
//	    Tool("deploy_application").
//	    WithArgs(map[string]any{"environment": "staging"}).
//	    ExpectKey("status", "deployed").
//	    Run(t, agent)
package agenttest

import (
	"context"
	"os"
	"reflect"
	"strings"
	"testing"

	"github.com/arandia/ergon/pkg/errors"
)

// Invoker is the slice of the agent surface scenarios exercise.
type Invoker interface {
	Invoke(ctx context.Context, name string, args map[string]any) (map[string]any, error)
}

// Scenario describes one tool invocation and its expectations.
type Scenario struct {
	name       string
	tool       string
	args       map[string]any
	wantKeys   map[string]any
	wantErr    bool
	wantCode   errors.ErrorCode
	checkError bool
}

// NewScenario creates a named scenario.
func NewScenario(name string) *Scenario {
	return &Scenario{name: name, wantKeys: map[string]any{}}
}

// Tool sets the tool under test.
func (s *Scenario) Tool(name string) *Scenario {
	s.tool = name
	return s
}

// WithArgs sets the invocation arguments.
func (s *Scenario) WithArgs(args map[string]any) *Scenario {
	s.args = args
	return s
}

// ExpectKey asserts the result contains key with exactly this value.
func (s *Scenario) ExpectKey(key string, value any) *Scenario {
	s.wantKeys[key] = value
	return s
}

// ExpectError asserts the invocation fails.
func (s *Scenario) ExpectError() *Scenario {
	s.wantErr = true
	return s
}

// ExpectErrorCode asserts the invocation fails with the given code.
func (s *Scenario) ExpectErrorCode(code errors.ErrorCode) *Scenario {
	s.wantErr = true
	s.wantCode = code
	s.checkError = true
	return s
}

// Run executes the scenario and reports failures on t. It returns the
// result map for further assertions.
func (s *Scenario) Run(t *testing.T, a Invoker) map[string]any {
	t.Helper()
	result, err := a.Invoke(context.Background(), s.tool, s.args)

	if s.wantErr {
		if err == nil {
			t.Errorf("%s: expected error, got result %v", s.name, result)
			return result
		}
		if s.checkError && !errors.IsCode(err, s.wantCode) {
			t.Errorf("%s: expected code %s, got %v", s.name, s.wantCode, err)
		}
		return nil
	}

	if err != nil {
		t.Errorf("%s: unexpected error: %v", s.name, err)
		return nil
	}
	for key, want := range s.wantKeys {
		got, ok := result[key]
		if !ok {
			t.Errorf("%s: result missing key %q: %v", s.name, key, result)
			continue
		}
		if want != nil && !reflect.DeepEqual(got, want) {
			t.Errorf("%s: result[%q] = %v, want %v", s.name, key, got, want)
		}
	}
	return result
}

// CountLogLines returns the number of non-blank lines in a log file,
// zero if it does not exist yet.
func CountLogLines(t *testing.T, path string) int {
	t.Helper()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return 0
	}
	if err != nil {
		t.Fatal(err)
	}
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" {
		return 0
	}
	return len(strings.Split(trimmed, "\n"))
}
