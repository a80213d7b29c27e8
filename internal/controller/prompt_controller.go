package controller

import (
	"time"

	"vg-ai-be/internal/dto"
	"vg-ai-be/internal/pkg/apperror"
	"vg-ai-be/internal/pkg/serverutils"
	"vg-ai-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IPromptController interface {
	RegisterRoutes(r fiber.Router)
	Generate(ctx *fiber.Ctx) error
	ContinueConversation(ctx *fiber.Ctx) error
	GetConversationHistory(ctx *fiber.Ctx) error
	GetFullConversationHistory(ctx *fiber.Ctx) error
	DeactivateConversation(ctx *fiber.Ctx) error
	ReactivateConversation(ctx *fiber.Ctx) error
	DeleteConversation(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
	GetActive(ctx *fiber.Ctx) error
	GetHistory(ctx *fiber.Ctx) error
	GetAllHistory(ctx *fiber.Ctx) error
	GetById(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type promptController struct {
	promptService service.IPromptService
}

func NewPromptController(promptService service.IPromptService) IPromptController {
	return &promptController{
		promptService: promptService,
	}
}

func (c *promptController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/ai")
	h.Post("/generate", c.Generate)
	h.Post("/conversation/:conversationId", c.ContinueConversation)
	h.Get("/conversation/:conversationId", c.GetConversationHistory)
	h.Get("/conversation/:conversationId/full", c.GetFullConversationHistory)
	h.Put("/conversation/:conversationId/deactivate", c.DeactivateConversation)
	h.Put("/conversation/:conversationId/reactivate", c.ReactivateConversation)
	h.Delete("/conversation/:conversationId", c.DeleteConversation)
	h.Post("/", c.Create)
	h.Get("/", c.GetAll)
	h.Get("/active", c.GetActive)
	h.Get("/history", c.GetHistory)
	h.Get("/history/all", c.GetAllHistory)
	h.Get("/:id", c.GetById)
	h.Put("/:id", c.Update)
	h.Delete("/:id", c.Delete)
}

func (c *promptController) Generate(ctx *fiber.Ctx) error {
	var req dto.PromptRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.promptService.ProcessPrompt(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *promptController) ContinueConversation(ctx *fiber.Ctx) error {
	conversationId := ctx.Params("conversationId")

	var req dto.PromptRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.promptService.ContinueConversation(ctx.Context(), conversationId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *promptController) GetConversationHistory(ctx *fiber.Ctx) error {
	conversationId := ctx.Params("conversationId")

	res, err := c.promptService.GetConversationHistory(ctx.Context(), conversationId)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *promptController) GetFullConversationHistory(ctx *fiber.Ctx) error {
	conversationId := ctx.Params("conversationId")

	res, err := c.promptService.GetFullConversationHistory(ctx.Context(), conversationId)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *promptController) DeactivateConversation(ctx *fiber.Ctx) error {
	conversationId := ctx.Params("conversationId")

	if err := c.promptService.DeactivateConversation(ctx.Context(), conversationId); err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{
		"success":        true,
		"message":        "Conversation deactivated successfully",
		"conversationId": conversationId,
		"timestamp":      time.Now().UnixMilli(),
	})
}

func (c *promptController) ReactivateConversation(ctx *fiber.Ctx) error {
	conversationId := ctx.Params("conversationId")

	if err := c.promptService.ReactivateConversation(ctx.Context(), conversationId); err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{
		"success":        true,
		"message":        "Conversation reactivated successfully",
		"conversationId": conversationId,
		"timestamp":      time.Now().UnixMilli(),
	})
}

func (c *promptController) DeleteConversation(ctx *fiber.Ctx) error {
	conversationId := ctx.Params("conversationId")

	if err := c.promptService.DeleteConversation(ctx.Context(), conversationId); err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{
		"success":        true,
		"message":        "Conversation deleted successfully",
		"conversationId": conversationId,
		"timestamp":      time.Now().UnixMilli(),
	})
}

func (c *promptController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateTurnRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.promptService.CreateTurn(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *promptController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.promptService.FindAll(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *promptController) GetActive(ctx *fiber.Ctx) error {
	res, err := c.promptService.FindActiveOrderByCreatedAtDesc(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *promptController) GetHistory(ctx *fiber.Ctx) error {
	res, err := c.promptService.FindActiveOrderByCreatedAtDesc(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *promptController) GetAllHistory(ctx *fiber.Ctx) error {
	res, err := c.promptService.FindAllOrderByCreatedAtDesc(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *promptController) GetById(ctx *fiber.Ctx) error {
	id, err := parseId(ctx)
	if err != nil {
		return err
	}

	res, err := c.promptService.FindById(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *promptController) Update(ctx *fiber.Ctx) error {
	id, err := parseId(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateTurnRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.promptService.UpdateTurn(ctx.Context(), id, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *promptController) Delete(ctx *fiber.Ctx) error {
	id, err := parseId(ctx)
	if err != nil {
		return err
	}

	if err := c.promptService.DeleteById(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{
		"success":   true,
		"message":   "Request deleted successfully",
		"id":        id.String(),
		"timestamp": time.Now().UnixMilli(),
	})
}

func parseId(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, apperror.NewInvalidArgument("invalid id: must be a valid UUID")
	}
	return id, nil
}
