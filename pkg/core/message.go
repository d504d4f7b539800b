package core

// MessageType classifies inter-agent messages.
type MessageType string

const (
	MessageRequest      MessageType = "request"
	MessageResponse     MessageType = "response"
	MessageNotification MessageType = "notification"
	MessageError        MessageType = "error"
)

// Valid reports whether the message type is one of the known values.
func (m MessageType) Valid() bool {
	switch m {
	case MessageRequest, MessageResponse, MessageNotification, MessageError:
		return true
	}
	return false
}

// Priority orders messages by urgency.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// Valid reports whether the priority is one of the known values.
func (p Priority) Valid() bool {
	switch p {
	case PriorityCritical, PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Message is a constructed-and-logged communication record. There is no
// transport in this core: messages are returned to the caller, never
// delivered. Wiring an actual bus is an external collaborator's job.
type Message struct {
	MessageID        string         `json:"message_id"`
	Sender           string         `json:"sender"`
	Recipient        string         `json:"recipient"`
	Type             MessageType    `json:"message_type"`
	Priority         Priority       `json:"priority"`
	Payload          map[string]any `json:"payload"`
	Timestamp        string         `json:"timestamp"`
	RequiresResponse bool           `json:"requires_response"`
	Deadline         string         `json:"deadline,omitempty"`
}
