// Package agent provides the base actor every roster variant builds on: a
// stable identity, a role, a preferred backend identifier, copy-on-write
// state, and an explicit registry of audited tools.
package agent

import (
	"context"
	"log/slog"
	"sync"

	"github.com/arandia/ergon/pkg/actionlog"
	"github.com/arandia/ergon/pkg/core"
	"github.com/arandia/ergon/pkg/errors"
	"github.com/arandia/ergon/pkg/telemetry"
)

// ToolFunc is the implementation signature for registered tools.
type ToolFunc func(ctx context.Context, args map[string]any) (map[string]any, error)

// Base implements core.Agent. Tool registration order is preserved, so
// Tools() is deterministic for a fixed variant. All exported methods are
// safe for concurrent use; the state reference swap is guarded by a mutex
// so concurrent hosts get the documented synchronization boundary without
// wrapping the agent themselves.
type Base struct {
	id      string
	role    string
	backend string

	mu    sync.Mutex
	state core.State
	tools []core.Tool
	index map[string]int

	log      *actionlog.Writer
	logger   *slog.Logger
	metrics  *telemetry.ToolMetrics
	manifest *core.RoleManifest
}

// Option configures a Base during construction.
type Option func(*Base)

// WithID overrides the constructor-assigned identifier. Roster variants
// carry default ids; deployments running several instances of one variant
// use this to keep ids unique.
func WithID(id string) Option {
	return func(b *Base) {
		if id != "" {
			b.id = id
		}
	}
}

// WithRole overrides the role description.
func WithRole(role string) Option {
	return func(b *Base) {
		if role != "" {
			b.role = role
		}
	}
}

// WithBackend sets the preferred computation backend identifier.
func WithBackend(backend string) Option {
	return func(b *Base) {
		if backend != "" {
			b.backend = backend
		}
	}
}

// WithDefaultBackend sets the backend only if no explicit backend was
// given. Factories pass the configured deployment default here; the core
// never consults process environment.
func WithDefaultBackend(backend string) Option {
	return func(b *Base) {
		if b.backend == "" {
			b.backend = backend
		}
	}
}

// WithActionLog sets the audit log writer. Passing nil disables auditing.
func WithActionLog(w *actionlog.Writer) Option {
	return func(b *Base) { b.log = w }
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Base) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithMetrics attaches tool invocation metrics.
func WithMetrics(m *telemetry.ToolMetrics) Option {
	return func(b *Base) { b.metrics = m }
}

// WithManifest attaches explicit role manifest metadata.
func WithManifest(m core.RoleManifest) Option {
	return func(b *Base) { b.manifest = &m }
}

// New constructs a Base agent. The id is caller-assigned and expected to be
// unique within a deployment; the core does not enforce uniqueness.
func New(id, role string, opts ...Option) *Base {
	b := &Base{
		id:    id,
		role:  role,
		state: core.NewState(),
		index: map[string]int{},
		log:   actionlog.NewWriter(""),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.logger == nil {
		b.logger = telemetry.AgentLogger(b.id)
	}
	return b
}

// ID returns the agent identifier.
func (b *Base) ID() string { return b.id }

// Role returns the agent role description.
func (b *Base) Role() string { return b.role }

// Backend returns the preferred computation backend identifier.
func (b *Base) Backend() string { return b.backend }

// Logger returns the agent's structured logger.
func (b *Base) Logger() *slog.Logger { return b.logger }

// Register adds a tool to the agent's registry, wrapped so every
// successful call appends one action log entry. Registering a tool with an
// existing name replaces it in place, keeping the original position.
func (b *Base) Register(t core.Tool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	wrapped := &auditedTool{inner: t, agent: b}
	if pos, ok := b.index[t.Name()]; ok {
		b.tools[pos] = wrapped
		return
	}
	b.index[t.Name()] = len(b.tools)
	b.tools = append(b.tools, wrapped)
}

// RegisterFunc registers a plain function as a tool.
func (b *Base) RegisterFunc(name, description string, fn ToolFunc) {
	b.Register(&funcTool{name: name, description: description, fn: fn})
}

// Tools returns the registered tools in declaration order. An agent with
// no tools returns an empty slice.
func (b *Base) Tools() []core.Tool {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]core.Tool, len(b.tools))
	copy(out, b.tools)
	return out
}

// Tool returns the named tool, if registered.
func (b *Base) Tool(name string) (core.Tool, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	pos, ok := b.index[name]
	if !ok {
		return nil, false
	}
	return b.tools[pos], true
}

// Invoke looks up a registered tool by name and calls it, tagging the
// context with an invocation id so diagnostics from one call correlate.
func (b *Base) Invoke(ctx context.Context, name string, args map[string]any) (map[string]any, error) {
	t, ok := b.Tool(name)
	if !ok {
		return nil, errors.New(errors.CodeNotFound, "unknown tool").
			WithContext("agent", b.id).
			WithContext("tool", name)
	}
	ctx, _ = core.EnsureInvocationID(ctx)
	return t.Call(ctx, args)
}

// RoleManifest returns the agent's role metadata. Without an explicit
// manifest, one is derived from the constructor arguments and registry.
func (b *Base) RoleManifest() core.RoleManifest {
	if b.manifest != nil {
		return *b.manifest
	}
	tools := b.Tools()
	names := make([]string, len(tools))
	for i, t := range tools {
		names[i] = t.Name()
	}
	return core.RoleManifest{
		Role:    b.role,
		Backend: b.backend,
		Tools:   names,
	}
}

type funcTool struct {
	name        string
	description string
	fn          ToolFunc
}

func (t *funcTool) Name() string        { return t.name }
func (t *funcTool) Description() string { return t.description }

func (t *funcTool) Call(ctx context.Context, args map[string]any) (map[string]any, error) {
	return t.fn(ctx, args)
}
