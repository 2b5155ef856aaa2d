package controller

import (
	"notekeeper-be/internal/dto"
	"notekeeper-be/internal/pkg/serverutils"
	"notekeeper-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ICollaboratorController interface {
	RegisterRoutes(r fiber.Router, authRequired fiber.Handler)
	Add(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Remove(ctx *fiber.Ctx) error
	UpdateNote(ctx *fiber.Ctx) error
}

type collaboratorController struct {
	service service.ICollaboratorService
}

func NewCollaboratorController(service service.ICollaboratorService) ICollaboratorController {
	return &collaboratorController{service: service}
}

func (c *collaboratorController) RegisterRoutes(r fiber.Router, authRequired fiber.Handler) {
	h := r.Group("/collaborator/v1")
	h.Use(authRequired)
	h.Post("", c.Add)
	h.Get("/note/:noteId", c.List)
	h.Delete("", c.Remove)
	h.Put("/note", c.UpdateNote)
}

func (c *collaboratorController) Add(ctx *fiber.Ctx) error {
	userId := callerIdentity(ctx)

	var req dto.AddCollaboratorRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Add(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success add collaborator", res))
}

func (c *collaboratorController) List(ctx *fiber.Ctx) error {
	userId := callerIdentity(ctx)
	noteId, _ := uuid.Parse(ctx.Params("noteId"))

	res, err := c.service.List(ctx.Context(), userId, noteId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list collaborators", res))
}

func (c *collaboratorController) Remove(ctx *fiber.Ctx) error {
	userId := callerIdentity(ctx)

	var req dto.RemoveCollaboratorRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.service.Remove(ctx.Context(), userId, &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success remove collaborator", nil))
}

func (c *collaboratorController) UpdateNote(ctx *fiber.Ctx) error {
	userId := callerIdentity(ctx)

	var req dto.CollaboratorUpdateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.UpdateNote(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update shared note", res))
}
