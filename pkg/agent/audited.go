package agent

import (
	"context"
	"time"

	"github.com/arandia/ergon/pkg/actionlog"
	"github.com/arandia/ergon/pkg/core"
)

// auditedTool appends one action log entry after each successful call of
// the wrapped tool.
//
// Error policy (invocation vs audit):
//   - the wrapped tool's error propagates unchanged and suppresses the
//     log line;
//   - an audit write failure is reduced to a debug diagnostic and a
//     metric, and the tool's result is returned untouched (see
//     actionlog.Writer).
type auditedTool struct {
	inner core.Tool
	agent *Base
}

func (t *auditedTool) Name() string        { return t.inner.Name() }
func (t *auditedTool) Description() string { return t.inner.Description() }

func (t *auditedTool) Call(ctx context.Context, args map[string]any) (map[string]any, error) {
	start := time.Now()
	result, err := t.inner.Call(ctx, args)
	t.agent.metrics.RecordInvocation(ctx, t.agent.id, t.inner.Name(), time.Since(start), err)
	if err != nil {
		return nil, err
	}

	if t.agent.log != nil {
		entry := actionlog.NewEntry(t.agent.id, t.inner.Name(), args)
		if aerr := t.agent.log.Append(entry); aerr != nil {
			invID, _ := core.InvocationID(ctx)
			t.agent.logger.DebugContext(ctx, "actionlog.append_failed",
				"tool", t.inner.Name(),
				"invocation", invID,
				"error", aerr,
			)
			t.agent.metrics.RecordAuditFailure(ctx, t.agent.id, t.inner.Name())
		}
	}
	return result, nil
}
