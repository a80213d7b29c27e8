package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "PROMPT_ANSWERED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent helps embed common logic if needed,
// strictly creating valid implementations is preferred though.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

const (
	TypePromptAnswered = "PROMPT_ANSWERED"
	TypeImageGenerated = "IMAGE_GENERATED"
)

// NewPromptAnswered records a persisted conversation turn.
func NewPromptAnswered(conversationId string, messageOrder int, extracted bool) Event {
	return BaseEvent{
		Type: TypePromptAnswered,
		Data: map[string]interface{}{
			"conversation_id": conversationId,
			"message_order":   messageOrder,
			"extracted":       extracted,
		},
		OccurredAt: time.Now(),
	}
}

// NewImageGenerated records a persisted image-generation attempt.
func NewImageGenerated(imageId string, status string) Event {
	return BaseEvent{
		Type: TypeImageGenerated,
		Data: map[string]interface{}{
			"image_id": imageId,
			"status":   status,
		},
		OccurredAt: time.Now(),
	}
}
