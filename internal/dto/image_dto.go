package dto

import (
	"time"

	"github.com/google/uuid"
)

// Result statuses of an image-generation attempt. These describe the
// extraction outcome only; the stored record's lifecycle status is a
// separate concern and starts Active either way.
const (
	ImageResultSuccess = "success"
	ImageResultError   = "error"
)

type GenerateImageRequest struct {
	Prompt  string `json:"prompt" validate:"required"`
	StyleId int    `json:"style_id" validate:"required"`
	Size    string `json:"size,omitempty"`
}

type GenerateImageResponse struct {
	Status      string  `json:"status"`
	ImageUrl    *string `json:"image_url"`
	RawResponse string  `json:"raw_response"`
}

type CreateImageRequest struct {
	Prompt      string     `json:"prompt" validate:"required"`
	StyleId     int        `json:"style_id"`
	Size        string     `json:"size,omitempty"`
	ImageUrl    *string    `json:"image_url,omitempty"`
	Status      string     `json:"status,omitempty"`
	RawResponse string     `json:"raw_response,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}

type UpdateImageRequest struct {
	Prompt      string  `json:"prompt" validate:"required"`
	StyleId     int     `json:"style_id"`
	Size        string  `json:"size,omitempty"`
	ImageUrl    *string `json:"image_url,omitempty"`
	Status      string  `json:"status,omitempty"`
	RawResponse string  `json:"raw_response,omitempty"`
}

type ImageResponse struct {
	Id          uuid.UUID `json:"id"`
	Prompt      string    `json:"prompt"`
	StyleId     int       `json:"style_id"`
	Size        string    `json:"size"`
	ImageUrl    *string   `json:"image_url"`
	Status      string    `json:"status"`
	RawResponse string    `json:"raw_response"`
	CreatedAt   time.Time `json:"created_at"`
}
