package specification

import (
	"gorm.io/gorm"

	"vg-ai-be/internal/entity"
)

// ByConversationID groups turns belonging to one conversation.
type ByConversationID struct {
	ConversationID string
}

func (s ByConversationID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("conversation_id = ?", s.ConversationID)
}

// ByStatus filters by lifecycle status.
type ByStatus struct {
	Status entity.Status
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", string(s.Status))
}

// OrderByMessageOrderAsc yields conversation turns in their stored order.
type OrderByMessageOrderAsc struct{}

func (s OrderByMessageOrderAsc) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("message_order ASC")
}

// OrderByCreatedAtDesc yields newest records first.
type OrderByCreatedAtDesc struct{}

func (s OrderByCreatedAtDesc) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC")
}
