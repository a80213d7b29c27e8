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
	"vg-ai-be/pkg/genai"

	"github.com/google/uuid"
)

// IPromptService is the conversation orchestration surface: the two
// generate paths, conversation-level lifecycle, and plain CRUD on turns.
type IPromptService interface {
	ProcessPrompt(ctx context.Context, req *dto.PromptRequest) (*dto.PromptResponse, error)
	ContinueConversation(ctx context.Context, conversationId string, req *dto.PromptRequest) (*dto.PromptResponse, error)
	GetConversationHistory(ctx context.Context, conversationId string) ([]*dto.TurnResponse, error)
	GetFullConversationHistory(ctx context.Context, conversationId string) ([]*dto.TurnResponse, error)
	DeactivateConversation(ctx context.Context, conversationId string) error
	ReactivateConversation(ctx context.Context, conversationId string) error
	DeleteConversation(ctx context.Context, conversationId string) error

	CreateTurn(ctx context.Context, req *dto.CreateTurnRequest) (*dto.TurnResponse, error)
	FindById(ctx context.Context, id uuid.UUID) (*dto.TurnResponse, error)
	FindAll(ctx context.Context) ([]*dto.TurnResponse, error)
	FindAllOrderByCreatedAtDesc(ctx context.Context) ([]*dto.TurnResponse, error)
	FindActiveOrderByCreatedAtDesc(ctx context.Context) ([]*dto.TurnResponse, error)
	UpdateTurn(ctx context.Context, id uuid.UUID, req *dto.UpdateTurnRequest) (*dto.TurnResponse, error)
	DeleteById(ctx context.Context, id uuid.UUID) error
}

type promptService struct {
	turnRepo  contract.PromptTurnRepository
	textModel genai.TextGenerator
	publisher IPublisherService
	log       logger.ILogger
}

func NewPromptService(
	turnRepo contract.PromptTurnRepository,
	textModel genai.TextGenerator,
	publisher IPublisherService,
	log logger.ILogger,
) IPromptService {
	return &promptService{
		turnRepo:  turnRepo,
		textModel: textModel,
		publisher: publisher,
		log:       log,
	}
}

// ProcessPrompt starts a conversation, or continues one when the request
// carries a conversation id. A blank id gets a fresh UUID and an empty
// history, skipping the store read.
func (s *promptService) ProcessPrompt(ctx context.Context, req *dto.PromptRequest) (*dto.PromptResponse, error) {
	conversationId := strings.TrimSpace(req.ConversationId)
	if conversationId == "" {
		return s.submit(ctx, uuid.New().String(), nil, req)
	}
	return s.continueExisting(ctx, conversationId, req)
}

// ContinueConversation loads the active history for the path-supplied id
// and submits the prompt on top of it. Any conversation id in the request
// body is ignored here.
func (s *promptService) ContinueConversation(ctx context.Context, conversationId string, req *dto.PromptRequest) (*dto.PromptResponse, error) {
	return s.continueExisting(ctx, conversationId, req)
}

func (s *promptService) continueExisting(ctx context.Context, conversationId string, req *dto.PromptRequest) (*dto.PromptResponse, error) {
	history, err := s.activeHistory(ctx, conversationId)
	if err != nil {
		return nil, err
	}
	return s.submit(ctx, conversationId, history, req)
}

// submit is the single orchestration path: build context from history, call
// the model, extract, persist, answer. Persistence happens only after the
// upstream call succeeded, so a failed call leaves no partial turn behind.
// The racing message-order assignment for concurrent submits on one
// conversation is a known limitation; the order is computed from a plain
// read-then-write.
func (s *promptService) submit(ctx context.Context, conversationId string, history []*entity.PromptTurn, req *dto.PromptRequest) (*dto.PromptResponse, error) {
	nextOrder := len(history) + 1

	contextTurns := make([]genai.Turn, len(history))
	for i, turn := range history {
		contextTurns[i] = genai.Turn{Prompt: turn.Prompt, Response: turn.Response}
	}
	contents := genai.BuildContents(contextTurns, req.Prompt)

	model := s.textModel.ResolveModel(req.Model)
	rawBody, err := s.textModel.GenerateContent(ctx, model, contents)
	if err != nil {
		s.log.Error("prompt", "text model call failed", map[string]interface{}{
			"conversation_id": conversationId,
			"model":           model,
			"error":           err.Error(),
		})
		return nil, apperror.NewUpstream("text-generation", err)
	}

	// Unrecognized bodies are stored raw so no information is lost.
	responseText, extracted := genai.ExtractText(rawBody)
	if !extracted {
		responseText = rawBody
	}

	turn := entity.PromptTurn{
		Id:             uuid.New(),
		ConversationId: conversationId,
		MessageOrder:   nextOrder,
		Status:         entity.StatusActive,
		Prompt:         req.Prompt,
		Response:       responseText,
		CreatedAt:      time.Now(),
	}
	if err := s.turnRepo.Create(ctx, &turn); err != nil {
		return nil, err
	}

	s.publish(ctx, events.NewPromptAnswered(conversationId, nextOrder, extracted))

	return &dto.PromptResponse{
		Response:       turn.Response,
		ConversationId: turn.ConversationId,
		MessageOrder:   turn.MessageOrder,
	}, nil
}

func (s *promptService) activeHistory(ctx context.Context, conversationId string) ([]*entity.PromptTurn, error) {
	return s.turnRepo.FindAll(ctx,
		specification.ByConversationID{ConversationID: conversationId},
		specification.ByStatus{Status: entity.StatusActive},
		specification.OrderByMessageOrderAsc{},
	)
}

func (s *promptService) GetConversationHistory(ctx context.Context, conversationId string) ([]*dto.TurnResponse, error) {
	turns, err := s.activeHistory(ctx, conversationId)
	if err != nil {
		return nil, err
	}
	return toTurnResponses(turns), nil
}

func (s *promptService) GetFullConversationHistory(ctx context.Context, conversationId string) ([]*dto.TurnResponse, error) {
	turns, err := s.turnRepo.FindAll(ctx,
		specification.ByConversationID{ConversationID: conversationId},
		specification.OrderByMessageOrderAsc{},
	)
	if err != nil {
		return nil, err
	}
	return toTurnResponses(turns), nil
}

// DeactivateConversation soft-deletes every turn of a conversation,
// including turns that were already inactive. Unknown ids are a no-op.
func (s *promptService) DeactivateConversation(ctx context.Context, conversationId string) error {
	return s.turnRepo.UpdateStatusByConversationId(ctx, conversationId, entity.StatusInactive)
}

func (s *promptService) ReactivateConversation(ctx context.Context, conversationId string) error {
	return s.turnRepo.UpdateStatusByConversationId(ctx, conversationId, entity.StatusActive)
}

// DeleteConversation removes every turn permanently. It never passes
// through Inactive first.
func (s *promptService) DeleteConversation(ctx context.Context, conversationId string) error {
	return s.turnRepo.DeleteByConversationId(ctx, conversationId)
}

// CreateTurn is the manual CRUD path. It honors a caller-supplied status
// (orchestrated creation always starts Active) and fills the same defaults
// the generate path uses.
func (s *promptService) CreateTurn(ctx context.Context, req *dto.CreateTurnRequest) (*dto.TurnResponse, error) {
	status := entity.StatusActive
	if strings.TrimSpace(req.Status) != "" {
		parsed, err := entity.ParseStatus(req.Status)
		if err != nil {
			return nil, apperror.NewInvalidArgument(err.Error())
		}
		status = parsed
	}

	conversationId := strings.TrimSpace(req.ConversationId)
	if conversationId == "" {
		conversationId = uuid.New().String()
	}

	messageOrder := 1
	if req.MessageOrder != nil {
		messageOrder = *req.MessageOrder
	}

	createdAt := time.Now()
	if req.CreatedAt != nil {
		createdAt = *req.CreatedAt
	}

	turn := entity.PromptTurn{
		Id:             uuid.New(),
		ConversationId: conversationId,
		MessageOrder:   messageOrder,
		Status:         status,
		Prompt:         req.Prompt,
		Response:       req.Response,
		CreatedAt:      createdAt,
	}
	if err := s.turnRepo.Create(ctx, &turn); err != nil {
		return nil, err
	}
	return toTurnResponse(&turn), nil
}

func (s *promptService) FindById(ctx context.Context, id uuid.UUID) (*dto.TurnResponse, error) {
	turn, err := s.turnRepo.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if turn == nil {
		return nil, apperror.NewNotFound("PromptTurn", "id", id)
	}
	return toTurnResponse(turn), nil
}

func (s *promptService) FindAll(ctx context.Context) ([]*dto.TurnResponse, error) {
	turns, err := s.turnRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return toTurnResponses(turns), nil
}

func (s *promptService) FindAllOrderByCreatedAtDesc(ctx context.Context) ([]*dto.TurnResponse, error) {
	turns, err := s.turnRepo.FindAll(ctx, specification.OrderByCreatedAtDesc{})
	if err != nil {
		return nil, err
	}
	return toTurnResponses(turns), nil
}

func (s *promptService) FindActiveOrderByCreatedAtDesc(ctx context.Context) ([]*dto.TurnResponse, error) {
	turns, err := s.turnRepo.FindAll(ctx,
		specification.ByStatus{Status: entity.StatusActive},
		specification.OrderByCreatedAtDesc{},
	)
	if err != nil {
		return nil, err
	}
	return toTurnResponses(turns), nil
}

// UpdateTurn rewrites prompt and response only. CreatedAt, conversation id,
// order and status stay as stored.
func (s *promptService) UpdateTurn(ctx context.Context, id uuid.UUID, req *dto.UpdateTurnRequest) (*dto.TurnResponse, error) {
	turn, err := s.turnRepo.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if turn == nil {
		return nil, apperror.NewNotFound("PromptTurn", "id", id)
	}

	turn.Prompt = req.Prompt
	turn.Response = req.Response
	if err := s.turnRepo.Update(ctx, turn); err != nil {
		return nil, err
	}
	return toTurnResponse(turn), nil
}

func (s *promptService) DeleteById(ctx context.Context, id uuid.UUID) error {
	turn, err := s.turnRepo.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if turn == nil {
		return apperror.NewNotFound("PromptTurn", "id", id)
	}
	return s.turnRepo.Delete(ctx, id)
}

// publish is best effort; an audit event must never fail the request.
func (s *promptService) publish(ctx context.Context, event events.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.log.Warn("prompt", "failed to publish audit event", map[string]interface{}{
			"event": event.EventType(),
			"error": err.Error(),
		})
	}
}

func toTurnResponse(turn *entity.PromptTurn) *dto.TurnResponse {
	return &dto.TurnResponse{
		Id:             turn.Id,
		ConversationId: turn.ConversationId,
		MessageOrder:   turn.MessageOrder,
		Status:         string(turn.Status),
		Prompt:         turn.Prompt,
		Response:       turn.Response,
		CreatedAt:      turn.CreatedAt,
	}
}

func toTurnResponses(turns []*entity.PromptTurn) []*dto.TurnResponse {
	result := make([]*dto.TurnResponse, len(turns))
	for i, turn := range turns {
		result[i] = toTurnResponse(turn)
	}
	return result
}
