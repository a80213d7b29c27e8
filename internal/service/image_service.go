package service

import (
	"context"
	"strings"
	"time"

	"vg-ai-be/internal/dto"
	"vg-ai-be/internal/entity"
	"vg-ai-be/internal/pkg/apperror"
	"vg-ai-be/internal/pkg/logger"
	"vg-ai-be/internal/repository/contract"
	"vg-ai-be/internal/repository/specification"
	"vg-ai-be/pkg/events"
	"vg-ai-be/pkg/imagegen"
	"vg-ai-be/pkg/sanitize"

	"github.com/google/uuid"
)

type IImageService interface {
	GenerateImage(ctx context.Context, req *dto.GenerateImageRequest) (*dto.GenerateImageResponse, error)

	CreateImage(ctx context.Context, req *dto.CreateImageRequest) (*dto.ImageResponse, error)
	FindById(ctx context.Context, id uuid.UUID) (*dto.ImageResponse, error)
	FindAll(ctx context.Context) ([]*dto.ImageResponse, error)
	FindAllOrderByCreatedAtDesc(ctx context.Context) ([]*dto.ImageResponse, error)
	FindActiveOrderByCreatedAtDesc(ctx context.Context) ([]*dto.ImageResponse, error)
	UpdateImage(ctx context.Context, id uuid.UUID, req *dto.UpdateImageRequest) (*dto.ImageResponse, error)
	DeleteById(ctx context.Context, id uuid.UUID) error
	DeactivateImage(ctx context.Context, id uuid.UUID) error
	ReactivateImage(ctx context.Context, id uuid.UUID) error
}

type imageService struct {
	imageRepo  contract.GeneratedImageRepository
	imageModel imagegen.ImageGenerator
	publisher  IPublisherService
	log        logger.ILogger
}

func NewImageService(
	imageRepo contract.GeneratedImageRepository,
	imageModel imagegen.ImageGenerator,
	publisher IPublisherService,
	log logger.ILogger,
) IImageService {
	return &imageService{
		imageRepo:  imageRepo,
		imageModel: imageModel,
		publisher:  publisher,
		log:        log,
	}
}

// GenerateImage calls the upstream image model, extracts a URL from the
// sanitized body and persists the attempt. The stored record starts Active
// no matter how extraction went; the success/error status in the response
// describes the extraction outcome only. Every piece of text is sanitized
// before it reaches the store.
func (s *imageService) GenerateImage(ctx context.Context, req *dto.GenerateImageRequest) (*dto.GenerateImageResponse, error) {
	rawBody, err := s.imageModel.Generate(ctx, req.Prompt, req.StyleId, req.Size)
	if err != nil {
		s.log.Error("image", "image model call failed", map[string]interface{}{
			"style_id": req.StyleId,
			"error":    err.Error(),
		})
		return nil, apperror.NewUpstream("image-generation", err)
	}

	sanitizedBody := sanitize.Clean(rawBody)

	resultStatus := dto.ImageResultSuccess
	var imageUrl *string
	if url, ok := imagegen.ExtractURL(sanitizedBody); ok {
		cleaned := sanitize.Clean(url)
		imageUrl = &cleaned
	} else {
		resultStatus = dto.ImageResultError
	}

	image := entity.GeneratedImage{
		Id:          uuid.New(),
		Prompt:      sanitize.Clean(req.Prompt),
		StyleId:     req.StyleId,
		Size:        imagegen.ResolveSize(req.Size),
		ImageUrl:    imageUrl,
		Status:      entity.StatusActive,
		RawResponse: sanitizedBody,
		CreatedAt:   time.Now(),
	}
	if err := s.imageRepo.Create(ctx, &image); err != nil {
		return nil, err
	}

	s.publish(ctx, events.NewImageGenerated(image.Id.String(), resultStatus))

	return &dto.GenerateImageResponse{
		Status:      resultStatus,
		ImageUrl:    imageUrl,
		RawResponse: sanitizedBody,
	}, nil
}

// CreateImage is the manual CRUD path; it honors a caller-supplied status.
func (s *imageService) CreateImage(ctx context.Context, req *dto.CreateImageRequest) (*dto.ImageResponse, error) {
	status := entity.StatusActive
	if strings.TrimSpace(req.Status) != "" {
		parsed, err := entity.ParseStatus(req.Status)
		if err != nil {
			return nil, apperror.NewInvalidArgument(err.Error())
		}
		status = parsed
	}

	createdAt := time.Now()
	if req.CreatedAt != nil {
		createdAt = *req.CreatedAt
	}

	image := entity.GeneratedImage{
		Id:          uuid.New(),
		Prompt:      sanitize.Clean(req.Prompt),
		StyleId:     req.StyleId,
		Size:        imagegen.ResolveSize(req.Size),
		ImageUrl:    sanitize.CleanPtr(req.ImageUrl),
		Status:      status,
		RawResponse: sanitize.Clean(req.RawResponse),
		CreatedAt:   createdAt,
	}
	if err := s.imageRepo.Create(ctx, &image); err != nil {
		return nil, err
	}
	return toImageResponse(&image), nil
}

func (s *imageService) FindById(ctx context.Context, id uuid.UUID) (*dto.ImageResponse, error) {
	image, err := s.imageRepo.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if image == nil {
		return nil, apperror.NewNotFound("GeneratedImage", "id", id)
	}
	return toImageResponse(image), nil
}

func (s *imageService) FindAll(ctx context.Context) ([]*dto.ImageResponse, error) {
	images, err := s.imageRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return toImageResponses(images), nil
}

func (s *imageService) FindAllOrderByCreatedAtDesc(ctx context.Context) ([]*dto.ImageResponse, error) {
	images, err := s.imageRepo.FindAll(ctx, specification.OrderByCreatedAtDesc{})
	if err != nil {
		return nil, err
	}
	return toImageResponses(images), nil
}

func (s *imageService) FindActiveOrderByCreatedAtDesc(ctx context.Context) ([]*dto.ImageResponse, error) {
	images, err := s.imageRepo.FindAll(ctx,
		specification.ByStatus{Status: entity.StatusActive},
		specification.OrderByCreatedAtDesc{},
	)
	if err != nil {
		return nil, err
	}
	return toImageResponses(images), nil
}

// UpdateImage rewrites every mutable field; CreatedAt stays as stored.
func (s *imageService) UpdateImage(ctx context.Context, id uuid.UUID, req *dto.UpdateImageRequest) (*dto.ImageResponse, error) {
	image, err := s.imageRepo.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if image == nil {
		return nil, apperror.NewNotFound("GeneratedImage", "id", id)
	}

	if strings.TrimSpace(req.Status) != "" {
		parsed, err := entity.ParseStatus(req.Status)
		if err != nil {
			return nil, apperror.NewInvalidArgument(err.Error())
		}
		image.Status = parsed
	}

	image.Prompt = sanitize.Clean(req.Prompt)
	image.StyleId = req.StyleId
	image.Size = imagegen.ResolveSize(req.Size)
	image.ImageUrl = sanitize.CleanPtr(req.ImageUrl)
	image.RawResponse = sanitize.Clean(req.RawResponse)

	if err := s.imageRepo.Update(ctx, image); err != nil {
		return nil, err
	}
	return toImageResponse(image), nil
}

func (s *imageService) DeleteById(ctx context.Context, id uuid.UUID) error {
	image, err := s.imageRepo.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if image == nil {
		return apperror.NewNotFound("GeneratedImage", "id", id)
	}
	return s.imageRepo.Delete(ctx, id)
}

// DeactivateImage and ReactivateImage are no-ops on unknown ids; lifecycle
// flips do not require the record to exist.
func (s *imageService) DeactivateImage(ctx context.Context, id uuid.UUID) error {
	return s.setStatus(ctx, id, entity.StatusInactive)
}

func (s *imageService) ReactivateImage(ctx context.Context, id uuid.UUID) error {
	return s.setStatus(ctx, id, entity.StatusActive)
}

func (s *imageService) setStatus(ctx context.Context, id uuid.UUID, status entity.Status) error {
	image, err := s.imageRepo.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if image == nil {
		return nil
	}
	image.Status = status
	return s.imageRepo.Update(ctx, image)
}

func (s *imageService) publish(ctx context.Context, event events.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.log.Warn("image", "failed to publish audit event", map[string]interface{}{
			"event": event.EventType(),
			"error": err.Error(),
		})
	}
}

func toImageResponse(image *entity.GeneratedImage) *dto.ImageResponse {
	return &dto.ImageResponse{
		Id:          image.Id,
		Prompt:      image.Prompt,
		StyleId:     image.StyleId,
		Size:        image.Size,
		ImageUrl:    image.ImageUrl,
		Status:      string(image.Status),
		RawResponse: image.RawResponse,
		CreatedAt:   image.CreatedAt,
	}
}

func toImageResponses(images []*entity.GeneratedImage) []*dto.ImageResponse {
	result := make([]*dto.ImageResponse, len(images))
	for i, image := range images {
		result[i] = toImageResponse(image)
	}
	return result
}
