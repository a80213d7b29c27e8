package dto

import (
	"time"

	"github.com/google/uuid"
)

// PromptRequest starts or continues a conversation. Model and
// ConversationId are optional; blanks fall back to the configured default
// model and a freshly generated conversation id.
type PromptRequest struct {
	Prompt         string `json:"prompt" validate:"required"`
	Model          string `json:"model,omitempty"`
	ConversationId string `json:"conversation_id,omitempty"`
}

type PromptResponse struct {
	Response       string `json:"response"`
	ConversationId string `json:"conversation_id"`
	MessageOrder   int    `json:"message_order"`
}

// CreateTurnRequest is the manual CRUD creation path. Unlike orchestrated
// creation it honors a caller-supplied status.
type CreateTurnRequest struct {
	ConversationId string     `json:"conversation_id,omitempty"`
	MessageOrder   *int       `json:"message_order,omitempty"`
	Status         string     `json:"status,omitempty"`
	Prompt         string     `json:"prompt" validate:"required"`
	Response       string     `json:"response,omitempty"`
	CreatedAt      *time.Time `json:"created_at,omitempty"`
}

type UpdateTurnRequest struct {
	Prompt   string `json:"prompt" validate:"required"`
	Response string `json:"response,omitempty"`
}

type TurnResponse struct {
	Id             uuid.UUID `json:"id"`
	ConversationId string    `json:"conversation_id"`
	MessageOrder   int       `json:"message_order"`
	Status         string    `json:"status"`
	Prompt         string    `json:"prompt"`
	Response       string    `json:"response"`
	CreatedAt      time.Time `json:"created_at"`
}
