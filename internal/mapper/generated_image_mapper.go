package mapper

import (
	"vg-ai-be/internal/entity"
	"vg-ai-be/internal/model"
)

type GeneratedImageMapper struct{}

func NewGeneratedImageMapper() *GeneratedImageMapper {
	return &GeneratedImageMapper{}
}

func (m *GeneratedImageMapper) ToEntity(img *model.GeneratedImage) *entity.GeneratedImage {
	if img == nil {
		return nil
	}

	return &entity.GeneratedImage{
		Id:          img.Id,
		Prompt:      img.Prompt,
		StyleId:     img.StyleId,
		Size:        img.Size,
		ImageUrl:    img.ImageUrl,
		Status:      entity.Status(img.Status),
		RawResponse: img.RawResponse,
		CreatedAt:   img.CreatedAt,
	}
}

func (m *GeneratedImageMapper) ToModel(img *entity.GeneratedImage) *model.GeneratedImage {
	if img == nil {
		return nil
	}

	return &model.GeneratedImage{
		Id:          img.Id,
		Prompt:      img.Prompt,
		StyleId:     img.StyleId,
		Size:        img.Size,
		ImageUrl:    img.ImageUrl,
		Status:      string(img.Status),
		RawResponse: img.RawResponse,
		CreatedAt:   img.CreatedAt,
	}
}
