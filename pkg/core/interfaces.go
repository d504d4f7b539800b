package core

import "context"

// Tool is an operation an agent exposes for external invocation. Tools are
// declared in an explicit per-agent registry; there is no runtime reflection
// involved in discovering them.
type Tool interface {
	Name() string
	Description() string
	Call(ctx context.Context, args map[string]any) (map[string]any, error)
}

// Agent is the minimal contract every roster variant satisfies.
type Agent interface {
	ID() string
	Role() string
	Backend() string

	// Tools returns the agent's registered tools in declaration order.
	// An agent with no tools returns an empty slice, not nil semantics
	// callers need to special-case.
	Tools() []Tool

	// State returns a deep, independent snapshot of the agent state.
	State() State
}
