package entity

import (
	"time"

	"github.com/google/uuid"
)

// GeneratedImage is one image-generation attempt. RawResponse always holds
// the sanitized upstream body, even when URL extraction failed, so the
// record stays auditable. ImageUrl is nil exactly when extraction failed.
type GeneratedImage struct {
	Id          uuid.UUID
	Prompt      string
	StyleId     int
	Size        string
	ImageUrl    *string
	Status      Status
	RawResponse string
	CreatedAt   time.Time
}
