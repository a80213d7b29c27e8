package controller

import (
	"fmt"
	"time"

	"vg-ai-be/internal/dto"
	"vg-ai-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ITestController serves canned responses so the frontend can be wired up
// without burning upstream quota.
type ITestController interface {
	RegisterRoutes(r fiber.Router)
	Ping(ctx *fiber.Ctx) error
	Cors(ctx *fiber.Ctx) error
	Generate(ctx *fiber.Ctx) error
	Error(ctx *fiber.Ctx) error
}

type testController struct{}

func NewTestController() ITestController {
	return &testController{}
}

func (c *testController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/test")
	h.Get("/ping", c.Ping)
	h.Get("/cors", c.Cors)
	h.Post("/ai/generate", c.Generate)
	h.Post("/error", c.Error)
}

func (c *testController) Ping(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"status":  "OK",
		"message": "Server is running",
	})
}

func (c *testController) Cors(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"message":   "CORS is working",
		"timestamp": time.Now().UnixMilli(),
	})
}

func (c *testController) Generate(ctx *fiber.Ctx) error {
	var req dto.PromptRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res := dto.PromptResponse{
		Response: fmt.Sprintf(
			"This is a canned response for the prompt: '%s'. The server is working correctly. Timestamp: %d",
			req.Prompt, time.Now().UnixMilli(),
		),
		ConversationId: uuid.New().String(),
		MessageOrder:   1,
	}

	return ctx.JSON(res)
}

func (c *testController) Error(ctx *fiber.Ctx) error {
	return fmt.Errorf("intentional failure for error-path testing")
}
