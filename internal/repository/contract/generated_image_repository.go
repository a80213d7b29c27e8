package contract

import (
	"context"

	"vg-ai-be/internal/entity"
	"vg-ai-be/internal/repository/specification"

	"github.com/google/uuid"
)

type GeneratedImageRepository interface {
	Create(ctx context.Context, image *entity.GeneratedImage) error
	Update(ctx context.Context, image *entity.GeneratedImage) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.GeneratedImage, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.GeneratedImage, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
