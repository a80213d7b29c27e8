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
	"vg-ai-be/pkg/genai"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTurnRepo is an in-memory stand-in for the GORM repository. It records
// calls instead of interpreting specifications; tests preset findAllResult
// to whatever the query under test should return.
type fakeTurnRepo struct {
	created       []*entity.PromptTurn
	updated       []*entity.PromptTurn
	deletedIds    []uuid.UUID
	deletedConvs  []string
	statusUpdates []statusUpdate

	findAllResult []*entity.PromptTurn
	findAllCalls  int
	findOneResult *entity.PromptTurn
	err           error
}

type statusUpdate struct {
	conversationId string
	status         entity.Status
}

func (r *fakeTurnRepo) Create(ctx context.Context, turn *entity.PromptTurn) error {
	if r.err != nil {
		return r.err
	}
	r.created = append(r.created, turn)
	return nil
}

func (r *fakeTurnRepo) Update(ctx context.Context, turn *entity.PromptTurn) error {
	if r.err != nil {
		return r.err
	}
	r.updated = append(r.updated, turn)
	return nil
}

func (r *fakeTurnRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.deletedIds = append(r.deletedIds, id)
	return r.err
}

func (r *fakeTurnRepo) DeleteByConversationId(ctx context.Context, conversationId string) error {
	r.deletedConvs = append(r.deletedConvs, conversationId)
	return r.err
}

func (r *fakeTurnRepo) UpdateStatusByConversationId(ctx context.Context, conversationId string, status entity.Status) error {
	r.statusUpdates = append(r.statusUpdates, statusUpdate{conversationId, status})
	return r.err
}

func (r *fakeTurnRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PromptTurn, error) {
	return r.findOneResult, r.err
}

func (r *fakeTurnRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PromptTurn, error) {
	r.findAllCalls++
	return r.findAllResult, r.err
}

func (r *fakeTurnRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.findAllResult)), r.err
}

// stubTextGenerator returns a canned body and records what it was asked.
type stubTextGenerator struct {
	defaultModel string
	body         string
	err          error

	gotModel    string
	gotContents []*genai.ChatContent
}

func (s *stubTextGenerator) ResolveModel(model string) string {
	if model == "" {
		return s.defaultModel
	}
	return model
}

func (s *stubTextGenerator) GenerateContent(ctx context.Context, model string, contents []*genai.ChatContent) (string, error) {
	s.gotModel = model
	s.gotContents = contents
	return s.body, s.err
}

type stubPublisher struct {
	events []events.Event
	err    error
}

func (p *stubPublisher) Publish(ctx context.Context, event events.Event) error {
	p.events = append(p.events, event)
	return p.err
}

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

const wellFormedBody = `{"candidates":[{"content":{"parts":[{"text":"model says hi"}],"role":"model"}}]}`

func newPromptFixture(repo *fakeTurnRepo, gen *stubTextGenerator, pub *stubPublisher) IPromptService {
	return NewPromptService(repo, gen, pub, noopLogger{})
}

func TestProcessPromptNewConversation(t *testing.T) {
	repo := &fakeTurnRepo{}
	gen := &stubTextGenerator{defaultModel: "gemini-1.5-flash", body: wellFormedBody}
	pub := &stubPublisher{}
	svc := newPromptFixture(repo, gen, pub)

	res, err := svc.ProcessPrompt(context.Background(), &dto.PromptRequest{Prompt: "hello"})
	require.NoError(t, err)

	// Fresh conversation: generated id, order 1, no history read.
	assert.NotEmpty(t, res.ConversationId)
	_, parseErr := uuid.Parse(res.ConversationId)
	assert.NoError(t, parseErr)
	assert.Equal(t, 1, res.MessageOrder)
	assert.Equal(t, "model says hi", res.Response)
	assert.Equal(t, 0, repo.findAllCalls)

	require.Len(t, repo.created, 1)
	turn := repo.created[0]
	assert.Equal(t, entity.StatusActive, turn.Status)
	assert.Equal(t, "hello", turn.Prompt)
	assert.Equal(t, "model says hi", turn.Response)
	assert.Equal(t, res.ConversationId, turn.ConversationId)

	// The upstream payload is just the one user message.
	require.Len(t, gen.gotContents, 1)
	assert.Equal(t, genai.RoleUser, gen.gotContents[0].Role)
	assert.Equal(t, "gemini-1.5-flash", gen.gotModel)

	require.Len(t, pub.events, 1)
	assert.Equal(t, events.TypePromptAnswered, pub.events[0].EventType())
}

func TestProcessPromptContinuesWhenIdSupplied(t *testing.T) {
	conversationId := uuid.New().String()
	repo := &fakeTurnRepo{
		findAllResult: []*entity.PromptTurn{
			{ConversationId: conversationId, MessageOrder: 1, Prompt: "p1", Response: "r1", Status: entity.StatusActive},
			{ConversationId: conversationId, MessageOrder: 2, Prompt: "p2", Response: "r2", Status: entity.StatusActive},
		},
	}
	gen := &stubTextGenerator{defaultModel: "gemini-1.5-flash", body: wellFormedBody}
	svc := newPromptFixture(repo, gen, &stubPublisher{})

	res, err := svc.ProcessPrompt(context.Background(), &dto.PromptRequest{
		Prompt:         "p3",
		ConversationId: conversationId,
	})
	require.NoError(t, err)

	assert.Equal(t, conversationId, res.ConversationId)
	assert.Equal(t, 3, res.MessageOrder)
	assert.Equal(t, 1, repo.findAllCalls)

	// Two stored turns expand into user/model pairs plus the new prompt.
	require.Len(t, gen.gotContents, 5)
	assert.Equal(t, "p1", gen.gotContents[0].Parts[0].Text)
	assert.Equal(t, genai.RoleModel, gen.gotContents[1].Role)
	assert.Equal(t, "p3", gen.gotContents[4].Parts[0].Text)
}

func TestContinueConversationIgnoresBodyId(t *testing.T) {
	pathId := uuid.New().String()
	repo := &fakeTurnRepo{}
	gen := &stubTextGenerator{defaultModel: "gemini-1.5-flash", body: wellFormedBody}
	svc := newPromptFixture(repo, gen, &stubPublisher{})

	res, err := svc.ContinueConversation(context.Background(), pathId, &dto.PromptRequest{
		Prompt:         "hi",
		ConversationId: "something-else",
	})
	require.NoError(t, err)
	assert.Equal(t, pathId, res.ConversationId)
}

func TestProcessPromptStoresRawBodyWhenExtractionFails(t *testing.T) {
	raw := `{"error":{"code":429,"message":"quota exhausted"}}`
	repo := &fakeTurnRepo{}
	gen := &stubTextGenerator{defaultModel: "gemini-1.5-flash", body: raw}
	svc := newPromptFixture(repo, gen, &stubPublisher{})

	res, err := svc.ProcessPrompt(context.Background(), &dto.PromptRequest{Prompt: "hello"})
	require.NoError(t, err)

	assert.Equal(t, raw, res.Response)
	require.Len(t, repo.created, 1)
	assert.Equal(t, raw, repo.created[0].Response)
	assert.Equal(t, entity.StatusActive, repo.created[0].Status)
}

func TestProcessPromptUpstreamFailurePersistsNothing(t *testing.T) {
	repo := &fakeTurnRepo{}
	gen := &stubTextGenerator{defaultModel: "gemini-1.5-flash", err: errors.New("connection refused")}
	pub := &stubPublisher{}
	svc := newPromptFixture(repo, gen, pub)

	_, err := svc.ProcessPrompt(context.Background(), &dto.PromptRequest{Prompt: "hello"})
	require.Error(t, err)
	assert.True(t, apperror.IsUpstream(err))
	assert.Empty(t, repo.created)
	assert.Empty(t, pub.events)
}

func TestProcessPromptSurvivesPublisherFailure(t *testing.T) {
	repo := &fakeTurnRepo{}
	gen := &stubTextGenerator{defaultModel: "gemini-1.5-flash", body: wellFormedBody}
	pub := &stubPublisher{err: errors.New("bus closed")}
	svc := newPromptFixture(repo, gen, pub)

	res, err := svc.ProcessPrompt(context.Background(), &dto.PromptRequest{Prompt: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "model says hi", res.Response)
	assert.Len(t, repo.created, 1)
}

func TestConversationLifecycle(t *testing.T) {
	repo := &fakeTurnRepo{}
	svc := newPromptFixture(repo, &stubTextGenerator{}, &stubPublisher{})
	ctx := context.Background()

	require.NoError(t, svc.DeactivateConversation(ctx, "conv-1"))
	require.NoError(t, svc.ReactivateConversation(ctx, "conv-1"))
	require.NoError(t, svc.DeleteConversation(ctx, "conv-2"))

	require.Len(t, repo.statusUpdates, 2)
	assert.Equal(t, statusUpdate{"conv-1", entity.StatusInactive}, repo.statusUpdates[0])
	assert.Equal(t, statusUpdate{"conv-1", entity.StatusActive}, repo.statusUpdates[1])
	assert.Equal(t, []string{"conv-2"}, repo.deletedConvs)
}

func TestCreateTurnDefaults(t *testing.T) {
	repo := &fakeTurnRepo{}
	svc := newPromptFixture(repo, &stubTextGenerator{}, &stubPublisher{})

	res, err := svc.CreateTurn(context.Background(), &dto.CreateTurnRequest{Prompt: "manual"})
	require.NoError(t, err)

	assert.NotEmpty(t, res.ConversationId)
	assert.Equal(t, 1, res.MessageOrder)
	assert.Equal(t, string(entity.StatusActive), res.Status)
	assert.WithinDuration(t, time.Now(), res.CreatedAt, time.Minute)
}

func TestCreateTurnHonorsCallerValues(t *testing.T) {
	repo := &fakeTurnRepo{}
	svc := newPromptFixture(repo, &stubTextGenerator{}, &stubPublisher{})

	order := 7
	createdAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	res, err := svc.CreateTurn(context.Background(), &dto.CreateTurnRequest{
		ConversationId: "conv-9",
		MessageOrder:   &order,
		Status:         "I",
		Prompt:         "manual",
		Response:       "stored",
		CreatedAt:      &createdAt,
	})
	require.NoError(t, err)

	assert.Equal(t, "conv-9", res.ConversationId)
	assert.Equal(t, 7, res.MessageOrder)
	assert.Equal(t, "I", res.Status)
	assert.Equal(t, createdAt, res.CreatedAt)
}

func TestCreateTurnRejectsUnknownStatus(t *testing.T) {
	svc := newPromptFixture(&fakeTurnRepo{}, &stubTextGenerator{}, &stubPublisher{})

	_, err := svc.CreateTurn(context.Background(), &dto.CreateTurnRequest{
		Prompt: "manual",
		Status: "ACTIVE",
	})
	require.Error(t, err)
	assert.True(t, apperror.IsInvalidArgument(err))
}

func TestUpdateTurnKeepsImmutableFields(t *testing.T) {
	createdAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	existing := &entity.PromptTurn{
		Id:             uuid.New(),
		ConversationId: "conv-1",
		MessageOrder:   4,
		Status:         entity.StatusInactive,
		Prompt:         "old prompt",
		Response:       "old response",
		CreatedAt:      createdAt,
	}
	repo := &fakeTurnRepo{findOneResult: existing}
	svc := newPromptFixture(repo, &stubTextGenerator{}, &stubPublisher{})

	res, err := svc.UpdateTurn(context.Background(), existing.Id, &dto.UpdateTurnRequest{
		Prompt:   "new prompt",
		Response: "new response",
	})
	require.NoError(t, err)

	assert.Equal(t, "new prompt", res.Prompt)
	assert.Equal(t, "new response", res.Response)
	assert.Equal(t, "conv-1", res.ConversationId)
	assert.Equal(t, 4, res.MessageOrder)
	assert.Equal(t, "I", res.Status)
	assert.Equal(t, createdAt, res.CreatedAt)
}

func TestTurnNotFoundPaths(t *testing.T) {
	repo := &fakeTurnRepo{}
	svc := newPromptFixture(repo, &stubTextGenerator{}, &stubPublisher{})
	id := uuid.New()

	_, err := svc.FindById(context.Background(), id)
	assert.True(t, apperror.IsNotFound(err))

	_, err = svc.UpdateTurn(context.Background(), id, &dto.UpdateTurnRequest{Prompt: "x"})
	assert.True(t, apperror.IsNotFound(err))

	err = svc.DeleteById(context.Background(), id)
	assert.True(t, apperror.IsNotFound(err))
	assert.Empty(t, repo.deletedIds)
}
