package core

// Status is the lifecycle state of an agent.
type Status string

const (
	StatusActive      Status = "active"
	StatusIdle        Status = "idle"
	StatusBusy        Status = "busy"
	StatusError       Status = "error"
	StatusMaintenance Status = "maintenance"
)

// Valid reports whether the status is one of the known values.
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusIdle, StatusBusy, StatusError, StatusMaintenance:
		return true
	}
	return false
}

// State is the mutable record an agent owns. Updates are whole-record
// replacements: a reader holding a prior State value never observes a
// partial mutation.
type State struct {
	Status              Status         `json:"status"`
	CurrentTask         string         `json:"current_task,omitempty"`
	ResourceUtilization map[string]any `json:"resource_utilization"`
	Dependencies        []string       `json:"dependencies"`
	PerformanceMetrics  map[string]any `json:"performance_metrics"`
}

// NewState returns a State with defaults: idle, no task, empty maps.
func NewState() State {
	return State{
		Status:              StatusIdle,
		ResourceUtilization: map[string]any{},
		Dependencies:        []string{},
		PerformanceMetrics:  map[string]any{},
	}
}

// Clone returns a deep, independent copy of the state. Mutating the
// returned value never affects the receiver.
func (s State) Clone() State {
	out := s
	out.ResourceUtilization = cloneMap(s.ResourceUtilization)
	out.PerformanceMetrics = cloneMap(s.PerformanceMetrics)
	out.Dependencies = append([]string(nil), s.Dependencies...)
	if out.Dependencies == nil {
		out.Dependencies = []string{}
	}
	return out
}

func cloneMap(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch value := v.(type) {
	case map[string]any:
		return cloneMap(value)
	case []any:
		out := make([]any, len(value))
		for i, item := range value {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return value
	}
}
