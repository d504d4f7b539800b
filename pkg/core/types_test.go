package core

import "testing"

func TestNewStateDefaults(t *testing.T) {
	s := NewState()
	if s.Status != StatusIdle {
		t.Errorf("expected idle status, got %s", s.Status)
	}
	if s.CurrentTask != "" {
		t.Errorf("expected empty current task, got %q", s.CurrentTask)
	}
	if len(s.ResourceUtilization) != 0 || len(s.Dependencies) != 0 || len(s.PerformanceMetrics) != 0 {
		t.Error("expected empty collections in default state")
	}
}

func TestStateCloneIsDeep(t *testing.T) {
	s := NewState()
	s.ResourceUtilization["nested"] = map[string]any{"cpu": 0.5}
	s.PerformanceMetrics["scores"] = []any{1, 2}
	s.Dependencies = append(s.Dependencies, "dep-a")

	clone := s.Clone()
	clone.ResourceUtilization["nested"].(map[string]any)["cpu"] = 0.9
	clone.PerformanceMetrics["scores"].([]any)[0] = 99
	clone.Dependencies[0] = "changed"

	if got := s.ResourceUtilization["nested"].(map[string]any)["cpu"]; got != 0.5 {
		t.Errorf("clone mutation leaked into nested map: %v", got)
	}
	if got := s.PerformanceMetrics["scores"].([]any)[0]; got != 1 {
		t.Errorf("clone mutation leaked into nested slice: %v", got)
	}
	if s.Dependencies[0] != "dep-a" {
		t.Errorf("clone mutation leaked into dependencies: %v", s.Dependencies[0])
	}
}

func TestEnumValidity(t *testing.T) {
	for _, s := range []Status{StatusActive, StatusIdle, StatusBusy, StatusError, StatusMaintenance} {
		if !s.Valid() {
			t.Errorf("status %s should be valid", s)
		}
	}
	if Status("sleeping").Valid() {
		t.Error("unknown status should be invalid")
	}
	if !PriorityMedium.Valid() || Priority("urgent").Valid() {
		t.Error("priority validity mismatch")
	}
	if !MessageRequest.Valid() || MessageType("ping").Valid() {
		t.Error("message type validity mismatch")
	}
}
