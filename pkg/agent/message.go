package agent

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/arandia/ergon/pkg/core"
)

// MessageOption adjusts optional fields of an outgoing message.
type MessageOption func(*core.Message)

// WithPriority sets the message priority (default medium).
func WithPriority(p core.Priority) MessageOption {
	return func(m *core.Message) { m.Priority = p }
}

// WithRequiresResponse marks the message as expecting a response.
func WithRequiresResponse() MessageOption {
	return func(m *core.Message) { m.RequiresResponse = true }
}

// WithDeadline sets a response deadline.
func WithDeadline(deadline string) MessageOption {
	return func(m *core.Message) { m.Deadline = deadline }
}

// SendMessage constructs a message with a fresh unique id and current UTC
// timestamp, logs it, and returns it. Nothing is transported: delivery is
// the job of an external bus, not this core. Callers that need the message
// to arrive somewhere must wire that collaborator themselves.
func (b *Base) SendMessage(recipient string, messageType core.MessageType, payload map[string]any, opts ...MessageOption) core.Message {
	msg := core.Message{
		MessageID: uuid.NewString(),
		Sender:    b.id,
		Recipient: recipient,
		Type:      messageType,
		Priority:  core.PriorityMedium,
		Payload:   payload,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	}
	for _, opt := range opts {
		opt(&msg)
	}

	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		payloadJSON = []byte("{}")
	}
	b.logger.Info("send_message",
		"recipient", recipient,
		"type", string(messageType),
		"priority", string(msg.Priority),
		"payload", string(payloadJSON),
	)
	return msg
}
