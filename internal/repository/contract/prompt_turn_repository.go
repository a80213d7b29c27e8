package contract

import (
	"context"

	"vg-ai-be/internal/entity"
	"vg-ai-be/internal/repository/specification"

	"github.com/google/uuid"
)

type PromptTurnRepository interface {
	Create(ctx context.Context, turn *entity.PromptTurn) error
	Update(ctx context.Context, turn *entity.PromptTurn) error
	Delete(ctx context.Context, id uuid.UUID) error
	// DeleteByConversationId removes every turn of a conversation permanently.
	DeleteByConversationId(ctx context.Context, conversationId string) error
	// UpdateStatusByConversationId flips every turn of a conversation to the
	// given status, regardless of its current one.
	UpdateStatusByConversationId(ctx context.Context, conversationId string, status entity.Status) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PromptTurn, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PromptTurn, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
