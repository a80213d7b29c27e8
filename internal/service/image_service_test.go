package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"vg-ai-be/internal/dto"
	"vg-ai-be/internal/entity"
	"vg-ai-be/internal/pkg/apperror"
	"vg-ai-be/internal/repository/specification"
	"vg-ai-be/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeImageRepo struct {
	created []*entity.GeneratedImage
	updated []*entity.GeneratedImage
	deleted []uuid.UUID

	findOneResult *entity.GeneratedImage
	findAllResult []*entity.GeneratedImage
	err           error
}

func (r *fakeImageRepo) Create(ctx context.Context, image *entity.GeneratedImage) error {
	if r.err != nil {
		return r.err
	}
	r.created = append(r.created, image)
	return nil
}

func (r *fakeImageRepo) Update(ctx context.Context, image *entity.GeneratedImage) error {
	if r.err != nil {
		return r.err
	}
	r.updated = append(r.updated, image)
	return nil
}

func (r *fakeImageRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.deleted = append(r.deleted, id)
	return r.err
}

func (r *fakeImageRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.GeneratedImage, error) {
	return r.findOneResult, r.err
}

func (r *fakeImageRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.GeneratedImage, error) {
	return r.findAllResult, r.err
}

func (r *fakeImageRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.findAllResult)), r.err
}

type stubImageGenerator struct {
	body string
	err  error

	gotPrompt  string
	gotStyleId int
	gotSize    string
}

func (s *stubImageGenerator) Generate(ctx context.Context, prompt string, styleId int, size string) (string, error) {
	s.gotPrompt = prompt
	s.gotStyleId = styleId
	s.gotSize = size
	return s.body, s.err
}

func newImageFixture(repo *fakeImageRepo, gen *stubImageGenerator, pub *stubPublisher) IImageService {
	return NewImageService(repo, gen, pub, noopLogger{})
}

func TestGenerateImageSuccess(t *testing.T) {
	body := `{"code":200,"result":{"data":{"results":[{"origin":"https://cdn.example.com/a.png"}]}}}`
	repo := &fakeImageRepo{}
	gen := &stubImageGenerator{body: body}
	pub := &stubPublisher{}
	svc := newImageFixture(repo, gen, pub)

	res, err := svc.GenerateImage(context.Background(), &dto.GenerateImageRequest{
		Prompt:  "a red fox",
		StyleId: 3,
	})
	require.NoError(t, err)

	assert.Equal(t, dto.ImageResultSuccess, res.Status)
	require.NotNil(t, res.ImageUrl)
	assert.Equal(t, "https://cdn.example.com/a.png", *res.ImageUrl)
	assert.Equal(t, body, res.RawResponse)

	require.Len(t, repo.created, 1)
	stored := repo.created[0]
	assert.Equal(t, entity.StatusActive, stored.Status)
	assert.Equal(t, "a red fox", stored.Prompt)
	assert.Equal(t, 3, stored.StyleId)
	assert.Equal(t, "1-1", stored.Size)
	assert.Equal(t, body, stored.RawResponse)

	require.Len(t, pub.events, 1)
	assert.Equal(t, events.TypeImageGenerated, pub.events[0].EventType())
}

func TestGenerateImageExtractionFailureStillPersists(t *testing.T) {
	body := `{"status":"processing"}`
	repo := &fakeImageRepo{}
	svc := newImageFixture(repo, &stubImageGenerator{body: body}, &stubPublisher{})

	res, err := svc.GenerateImage(context.Background(), &dto.GenerateImageRequest{
		Prompt:  "a red fox",
		StyleId: 3,
	})
	require.NoError(t, err)

	assert.Equal(t, dto.ImageResultError, res.Status)
	assert.Nil(t, res.ImageUrl)
	assert.Equal(t, body, res.RawResponse)

	// The record is persisted with lifecycle status Active regardless of
	// how extraction went.
	require.Len(t, repo.created, 1)
	assert.Equal(t, entity.StatusActive, repo.created[0].Status)
	assert.Nil(t, repo.created[0].ImageUrl)
	assert.Equal(t, body, repo.created[0].RawResponse)
}

func TestGenerateImageSanitizesBeforeStoring(t *testing.T) {
	dirty := "{\"image_url\":\"https://cdn.example.com/a\x00.png\"}"
	repo := &fakeImageRepo{}
	svc := newImageFixture(repo, &stubImageGenerator{body: dirty}, &stubPublisher{})

	res, err := svc.GenerateImage(context.Background(), &dto.GenerateImageRequest{
		Prompt:  "prompt with \x01 control",
		StyleId: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, dto.ImageResultSuccess, res.Status)
	require.NotNil(t, res.ImageUrl)
	assert.Equal(t, "https://cdn.example.com/a.png", *res.ImageUrl)
	assert.NotContains(t, res.RawResponse, "\x00")

	require.Len(t, repo.created, 1)
	assert.Equal(t, "prompt with  control", repo.created[0].Prompt)
	assert.NotContains(t, repo.created[0].RawResponse, "\x00")
}

func TestGenerateImageUpstreamFailurePersistsNothing(t *testing.T) {
	repo := &fakeImageRepo{}
	pub := &stubPublisher{}
	svc := newImageFixture(repo, &stubImageGenerator{err: errors.New("timeout")}, pub)

	_, err := svc.GenerateImage(context.Background(), &dto.GenerateImageRequest{
		Prompt:  "a red fox",
		StyleId: 3,
	})
	require.Error(t, err)
	assert.True(t, apperror.IsUpstream(err))
	assert.Empty(t, repo.created)
	assert.Empty(t, pub.events)
}

func TestCreateImageDefaultsAndStatus(t *testing.T) {
	repo := &fakeImageRepo{}
	svc := newImageFixture(repo, &stubImageGenerator{}, &stubPublisher{})

	res, err := svc.CreateImage(context.Background(), &dto.CreateImageRequest{
		Prompt:  "manual",
		StyleId: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, string(entity.StatusActive), res.Status)
	assert.Equal(t, "1-1", res.Size)
	assert.WithinDuration(t, time.Now(), res.CreatedAt, time.Minute)

	res, err = svc.CreateImage(context.Background(), &dto.CreateImageRequest{
		Prompt:  "manual inactive",
		StyleId: 2,
		Status:  "I",
	})
	require.NoError(t, err)
	assert.Equal(t, "I", res.Status)

	_, err = svc.CreateImage(context.Background(), &dto.CreateImageRequest{
		Prompt: "manual",
		Status: "bogus",
	})
	assert.True(t, apperror.IsInvalidArgument(err))
}

func TestUpdateImageKeepsCreatedAt(t *testing.T) {
	createdAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	existing := &entity.GeneratedImage{
		Id:        uuid.New(),
		Prompt:    "old",
		StyleId:   1,
		Size:      "1-1",
		Status:    entity.StatusActive,
		CreatedAt: createdAt,
	}
	repo := &fakeImageRepo{findOneResult: existing}
	svc := newImageFixture(repo, &stubImageGenerator{}, &stubPublisher{})

	url := "https://cdn.example.com/new.png"
	res, err := svc.UpdateImage(context.Background(), existing.Id, &dto.UpdateImageRequest{
		Prompt:   "new",
		StyleId:  5,
		Size:     "16-9",
		ImageUrl: &url,
		Status:   "I",
	})
	require.NoError(t, err)

	assert.Equal(t, "new", res.Prompt)
	assert.Equal(t, 5, res.StyleId)
	assert.Equal(t, "16-9", res.Size)
	assert.Equal(t, "I", res.Status)
	assert.Equal(t, createdAt, res.CreatedAt)
	require.Len(t, repo.updated, 1)
}

func TestImageLifecycleSilentOnUnknownId(t *testing.T) {
	repo := &fakeImageRepo{}
	svc := newImageFixture(repo, &stubImageGenerator{}, &stubPublisher{})
	ctx := context.Background()

	// Unknown ids are a no-op, not an error.
	assert.NoError(t, svc.DeactivateImage(ctx, uuid.New()))
	assert.NoError(t, svc.ReactivateImage(ctx, uuid.New()))
	assert.Empty(t, repo.updated)
}

func TestImageLifecycleFlipsStatus(t *testing.T) {
	existing := &entity.GeneratedImage{Id: uuid.New(), Status: entity.StatusActive}
	repo := &fakeImageRepo{findOneResult: existing}
	svc := newImageFixture(repo, &stubImageGenerator{}, &stubPublisher{})

	require.NoError(t, svc.DeactivateImage(context.Background(), existing.Id))
	require.Len(t, repo.updated, 1)
	assert.Equal(t, entity.StatusInactive, repo.updated[0].Status)

	require.NoError(t, svc.ReactivateImage(context.Background(), existing.Id))
	require.Len(t, repo.updated, 2)
	assert.Equal(t, entity.StatusActive, repo.updated[1].Status)
}

func TestImageNotFoundPaths(t *testing.T) {
	repo := &fakeImageRepo{}
	svc := newImageFixture(repo, &stubImageGenerator{}, &stubPublisher{})
	id := uuid.New()

	_, err := svc.FindById(context.Background(), id)
	assert.True(t, apperror.IsNotFound(err))

	_, err = svc.UpdateImage(context.Background(), id, &dto.UpdateImageRequest{Prompt: "x"})
	assert.True(t, apperror.IsNotFound(err))

	err = svc.DeleteById(context.Background(), id)
	assert.True(t, apperror.IsNotFound(err))
	assert.Empty(t, repo.deleted)
}
