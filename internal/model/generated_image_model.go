package model

import (
	"time"

	"github.com/google/uuid"
)

type GeneratedImage struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Prompt      string    `gorm:"type:text;not null"`
	StyleId     int       `gorm:"not null"`
	Size        string    `gorm:"type:varchar(16);not null"`
	ImageUrl    *string   `gorm:"type:text"`
	Status      string    `gorm:"type:varchar(1);not null;index"`
	RawResponse string    `gorm:"type:text;not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index"`
}

func (GeneratedImage) TableName() string {
	return "ai_images"
}
