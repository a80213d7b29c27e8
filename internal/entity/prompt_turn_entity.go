package entity

import (
	"time"

	"github.com/google/uuid"
)

// PromptTurn is one prompt/response exchange within a conversation. A
// conversation is not stored as its own record; it is the set of turns
// sharing a ConversationId, materialized on demand.
type PromptTurn struct {
	Id             uuid.UUID
	ConversationId string
	MessageOrder   int
	Status         Status
	Prompt         string
	Response       string
	CreatedAt      time.Time
}
