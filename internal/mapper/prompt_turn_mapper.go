package mapper

import (
	"vg-ai-be/internal/entity"
	"vg-ai-be/internal/model"
)

type PromptTurnMapper struct{}

func NewPromptTurnMapper() *PromptTurnMapper {
	return &PromptTurnMapper{}
}

func (m *PromptTurnMapper) ToEntity(t *model.PromptTurn) *entity.PromptTurn {
	if t == nil {
		return nil
	}

	return &entity.PromptTurn{
		Id:             t.Id,
		ConversationId: t.ConversationId,
		MessageOrder:   t.MessageOrder,
		Status:         entity.Status(t.Status),
		Prompt:         t.Prompt,
		Response:       t.Response,
		CreatedAt:      t.CreatedAt,
	}
}

func (m *PromptTurnMapper) ToModel(t *entity.PromptTurn) *model.PromptTurn {
	if t == nil {
		return nil
	}

	return &model.PromptTurn{
		Id:             t.Id,
		ConversationId: t.ConversationId,
		MessageOrder:   t.MessageOrder,
		Status:         string(t.Status),
		Prompt:         t.Prompt,
		Response:       t.Response,
		CreatedAt:      t.CreatedAt,
	}
}
