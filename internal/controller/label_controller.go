package controller

import (
	"notekeeper-be/internal/dto"
	"notekeeper-be/internal/pkg/serverutils"
	"notekeeper-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ILabelController interface {
	RegisterRoutes(r fiber.Router, authRequired fiber.Handler)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Attach(ctx *fiber.Ctx) error
	Detach(ctx *fiber.Ctx) error
}

type labelController struct {
	service service.ILabelService
}

func NewLabelController(service service.ILabelService) ILabelController {
	return &labelController{service: service}
}

func (c *labelController) RegisterRoutes(r fiber.Router, authRequired fiber.Handler) {
	h := r.Group("/label/v1")
	h.Use(authRequired)
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
	h.Post("/attach", c.Attach)
	h.Post("/detach", c.Detach)
}

func (c *labelController) Create(ctx *fiber.Ctx) error {
	userId := callerIdentity(ctx)

	var req dto.CreateLabelRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create label", res))
}

func (c *labelController) List(ctx *fiber.Ctx) error {
	userId := callerIdentity(ctx)

	res, err := c.service.List(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list labels", res))
}

func (c *labelController) Update(ctx *fiber.Ctx) error {
	userId := callerIdentity(ctx)
	id, _ := uuid.Parse(ctx.Params("id"))

	var req dto.UpdateLabelRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Update(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update label", res))
}

func (c *labelController) Delete(ctx *fiber.Ctx) error {
	userId := callerIdentity(ctx)
	id, _ := uuid.Parse(ctx.Params("id"))

	if err := c.service.Delete(ctx.Context(), userId, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete label", nil))
}

func (c *labelController) Attach(ctx *fiber.Ctx) error {
	userId := callerIdentity(ctx)

	var req dto.AttachLabelRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Attach(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success attach label", res))
}

func (c *labelController) Detach(ctx *fiber.Ctx) error {
	userId := callerIdentity(ctx)

	var req dto.AttachLabelRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.service.Detach(ctx.Context(), userId, &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success detach label", nil))
}
