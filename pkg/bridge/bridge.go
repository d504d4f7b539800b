// Package bridge shapes requests toward external agent-hosting frameworks.
// The bridge only builds the {name, model, description, instruction, tools}
// request and hands it to an opaque HostClient; it never implements the
// host itself.
package bridge

import (
	"context"
	"log/slog"

	"github.com/arandia/ergon/pkg/core"
	"github.com/arandia/ergon/pkg/errors"
)

// DefaultInstruction is used when the caller supplies none.
const DefaultInstruction = "You are a helpful agent in a multi-agent system. Use tools when helpful."

// HostRequest is the request shape external hosts consume.
type HostRequest struct {
	Name        string
	Model       string
	Description string
	Instruction string
	Tools       []core.Tool
}

// HostClient constructs an agent handle on an external host framework.
// The returned handle is opaque to this core.
type HostClient interface {
	CreateAgent(ctx context.Context, req HostRequest) (any, error)
}

// ExportOption adjusts the host request before submission.
type ExportOption func(*HostRequest)

// WithInstruction overrides the default cooperative instruction.
func WithInstruction(instruction string) ExportOption {
	return func(r *HostRequest) {
		if instruction != "" {
			r.Instruction = instruction
		}
	}
}

// WithDescription overrides the description (defaults to the agent role).
func WithDescription(description string) ExportOption {
	return func(r *HostRequest) {
		if description != "" {
			r.Description = description
		}
	}
}

// WithTools replaces the tool list (defaults to the agent's registry).
func WithTools(tools []core.Tool) ExportOption {
	return func(r *HostRequest) { r.Tools = tools }
}

// Export builds a host request from the agent and submits it to the
// client. A nil client or a client failure yields an
// INTEGRATION_UNAVAILABLE error with the cause attached; the agent itself
// is left untouched either way.
func Export(ctx context.Context, client HostClient, a core.Agent, opts ...ExportOption) (any, error) {
	if client == nil {
		return nil, errors.New(errors.CodeIntegrationUnavailable, "no host client configured").
			WithContext("agent", a.ID())
	}

	req := HostRequest{
		Name:        a.ID(),
		Model:       a.Backend(),
		Description: a.Role(),
		Instruction: DefaultInstruction,
		Tools:       a.Tools(),
	}
	for _, opt := range opts {
		opt(&req)
	}

	handle, err := client.CreateAgent(ctx, req)
	if err != nil {
		slog.Default().ErrorContext(ctx, "bridge.create_agent_failed",
			"agent", a.ID(),
			"error", err,
		)
		return nil, errors.Wrap(errors.CodeIntegrationUnavailable, "host agent construction failed", err).
			WithContext("agent", a.ID())
	}
	return handle, nil
}
