package model

import (
	"time"

	"github.com/google/uuid"
)

type PromptTurn struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey"`
	ConversationId string    `gorm:"type:text;not null;index:idx_ai_requests_conversation"`
	MessageOrder   int       `gorm:"not null"`
	Status         string    `gorm:"type:varchar(1);not null;index"`
	Prompt         string    `gorm:"type:text;not null"`
	Response       string    `gorm:"type:text"`
	CreatedAt      time.Time `gorm:"autoCreateTime;index"`
}

func (PromptTurn) TableName() string {
	return "ai_requests"
}
