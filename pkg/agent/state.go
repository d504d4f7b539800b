package agent

import "github.com/arandia/ergon/pkg/core"

// StateChange overrides one field of an agent state during UpdateState.
type StateChange func(*core.State)

// SetStatus overrides the lifecycle status.
func SetStatus(s core.Status) StateChange {
	return func(st *core.State) { st.Status = s }
}

// SetCurrentTask overrides the current task description.
func SetCurrentTask(task string) StateChange {
	return func(st *core.State) { st.CurrentTask = task }
}

// SetResourceUtilization replaces the resource utilization metrics.
func SetResourceUtilization(m map[string]any) StateChange {
	return func(st *core.State) { st.ResourceUtilization = m }
}

// SetDependencies replaces the dependency list.
func SetDependencies(deps []string) StateChange {
	return func(st *core.State) { st.Dependencies = deps }
}

// SetPerformanceMetrics replaces the performance metrics.
func SetPerformanceMetrics(m map[string]any) StateChange {
	return func(st *core.State) { st.PerformanceMetrics = m }
}

// UpdateState produces a new state from the current one with the given
// fields overridden, swaps it in atomically, and returns a snapshot of the
// new value. The previous state value is never mutated: readers holding a
// reference to it keep a consistent record.
func (b *Base) UpdateState(changes ...StateChange) core.State {
	b.mu.Lock()
	next := b.state.Clone()
	for _, change := range changes {
		change(&next)
	}
	b.state = next
	b.mu.Unlock()

	b.logger.Debug("state_updated",
		"status", next.Status,
		"current_task", next.CurrentTask,
	)
	return next.Clone()
}

// State returns a deep, independent snapshot of the current state.
// Mutating the returned value does not affect the agent.
func (b *Base) State() core.State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state.Clone()
}
