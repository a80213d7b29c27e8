package controller

import (
	"time"

	"vg-ai-be/internal/dto"
	"vg-ai-be/internal/pkg/serverutils"
	"vg-ai-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IImageController interface {
	RegisterRoutes(r fiber.Router)
	Generate(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
	GetActive(ctx *fiber.Ctx) error
	GetHistory(ctx *fiber.Ctx) error
	GetAllHistory(ctx *fiber.Ctx) error
	GetById(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Deactivate(ctx *fiber.Ctx) error
	Reactivate(ctx *fiber.Ctx) error
}

type imageController struct {
	imageService service.IImageService
}

func NewImageController(imageService service.IImageService) IImageController {
	return &imageController{
		imageService: imageService,
	}
}

func (c *imageController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/image")
	h.Post("/generate", c.Generate)
	h.Post("/", c.Create)
	h.Get("/", c.GetAll)
	h.Get("/active", c.GetActive)
	h.Get("/history", c.GetHistory)
	h.Get("/history/all", c.GetAllHistory)
	h.Get("/:id", c.GetById)
	h.Put("/:id", c.Update)
	h.Delete("/:id", c.Delete)
	h.Put("/:id/deactivate", c.Deactivate)
	h.Put("/:id/reactivate", c.Reactivate)
}

func (c *imageController) Generate(ctx *fiber.Ctx) error {
	var req dto.GenerateImageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.imageService.GenerateImage(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *imageController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateImageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.imageService.CreateImage(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *imageController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.imageService.FindAll(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *imageController) GetActive(ctx *fiber.Ctx) error {
	res, err := c.imageService.FindActiveOrderByCreatedAtDesc(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *imageController) GetHistory(ctx *fiber.Ctx) error {
	res, err := c.imageService.FindActiveOrderByCreatedAtDesc(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *imageController) GetAllHistory(ctx *fiber.Ctx) error {
	res, err := c.imageService.FindAllOrderByCreatedAtDesc(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *imageController) GetById(ctx *fiber.Ctx) error {
	id, err := parseId(ctx)
	if err != nil {
		return err
	}

	res, err := c.imageService.FindById(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *imageController) Update(ctx *fiber.Ctx) error {
	id, err := parseId(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateImageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.imageService.UpdateImage(ctx.Context(), id, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *imageController) Delete(ctx *fiber.Ctx) error {
	id, err := parseId(ctx)
	if err != nil {
		return err
	}

	if err := c.imageService.DeleteById(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{
		"success":   true,
		"message":   "Image deleted successfully",
		"id":        id.String(),
		"timestamp": time.Now().UnixMilli(),
	})
}

func (c *imageController) Deactivate(ctx *fiber.Ctx) error {
	id, err := parseId(ctx)
	if err != nil {
		return err
	}

	if err := c.imageService.DeactivateImage(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{
		"success":   true,
		"message":   "Image deactivated successfully",
		"id":        id.String(),
		"timestamp": time.Now().UnixMilli(),
	})
}

func (c *imageController) Reactivate(ctx *fiber.Ctx) error {
	id, err := parseId(ctx)
	if err != nil {
		return err
	}

	if err := c.imageService.ReactivateImage(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{
		"success":   true,
		"message":   "Image reactivated successfully",
		"id":        id.String(),
		"timestamp": time.Now().UnixMilli(),
	})
}
