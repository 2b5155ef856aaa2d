package controller

import (
	"notekeeper-be/internal/dto"
	"notekeeper-be/internal/pkg/serverutils"
	"notekeeper-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type INoteController interface {
	RegisterRoutes(r fiber.Router, authRequired fiber.Handler)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Pinned(ctx *fiber.Ctx) error
	Archived(ctx *fiber.Ctx) error
	Search(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Pin(ctx *fiber.Ctx) error
	Unpin(ctx *fiber.Ctx) error
	Archive(ctx *fiber.Ctx) error
	Unarchive(ctx *fiber.Ctx) error
	SetColour(ctx *fiber.Ctx) error
}

type noteController struct {
	noteService  service.INoteService
	queryService service.INoteQueryService
}

func NewNoteController(noteService service.INoteService, queryService service.INoteQueryService) INoteController {
	return &noteController{
		noteService:  noteService,
		queryService: queryService,
	}
}

func (c *noteController) RegisterRoutes(r fiber.Router, authRequired fiber.Handler) {
	h := r.Group("/note/v1")
	h.Use(authRequired)
	h.Get("", c.List)
	h.Get("/pinned", c.Pinned)
	h.Get("/archived", c.Archived)
	h.Get("/search", c.Search)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
	h.Put(":id/pin", c.Pin)
	h.Put(":id/unpin", c.Unpin)
	h.Put(":id/archive", c.Archive)
	h.Put(":id/unarchive", c.Unarchive)
	h.Put(":id/colour", c.SetColour)
}

func callerIdentity(ctx *fiber.Ctx) uuid.UUID {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	return userId
}

func (c *noteController) Create(ctx *fiber.Ctx) error {
	userId := callerIdentity(ctx)

	var req dto.CreateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.noteService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create note", res))
}

func (c *noteController) List(ctx *fiber.Ctx) error {
	userId := callerIdentity(ctx)
	page := ctx.QueryInt("page", 1)

	res, err := c.queryService.List(ctx.Context(), userId, page)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list notes", res))
}

func (c *noteController) Pinned(ctx *fiber.Ctx) error {
	userId := callerIdentity(ctx)
	page := ctx.QueryInt("page", 1)

	res, err := c.queryService.Pinned(ctx.Context(), userId, page)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list pinned notes", res))
}

func (c *noteController) Archived(ctx *fiber.Ctx) error {
	userId := callerIdentity(ctx)
	page := ctx.QueryInt("page", 1)

	res, err := c.queryService.Archived(ctx.Context(), userId, page)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list archived notes", res))
}

func (c *noteController) Search(ctx *fiber.Ctx) error {
	userId := callerIdentity(ctx)

	req := dto.SearchNotesRequest{Key: ctx.Query("key")}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.queryService.Search(ctx.Context(), userId, req.Key)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success search notes", res))
}

func (c *noteController) Show(ctx *fiber.Ctx) error {
	userId := callerIdentity(ctx)
	id, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.noteService.Show(ctx.Context(), userId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show note", res))
}

func (c *noteController) Update(ctx *fiber.Ctx) error {
	userId := callerIdentity(ctx)
	id, _ := uuid.Parse(ctx.Params("id"))

	var req dto.UpdateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.noteService.Update(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update note", res))
}

func (c *noteController) Delete(ctx *fiber.Ctx) error {
	userId := callerIdentity(ctx)
	id, _ := uuid.Parse(ctx.Params("id"))

	if err := c.noteService.Delete(ctx.Context(), userId, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete note", nil))
}

func (c *noteController) Pin(ctx *fiber.Ctx) error {
	userId := callerIdentity(ctx)
	id, _ := uuid.Parse(ctx.Params("id"))

	if err := c.noteService.Pin(ctx.Context(), userId, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success pin note", nil))
}

func (c *noteController) Unpin(ctx *fiber.Ctx) error {
	userId := callerIdentity(ctx)
	id, _ := uuid.Parse(ctx.Params("id"))

	if err := c.noteService.Unpin(ctx.Context(), userId, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success unpin note", nil))
}

func (c *noteController) Archive(ctx *fiber.Ctx) error {
	userId := callerIdentity(ctx)
	id, _ := uuid.Parse(ctx.Params("id"))

	if err := c.noteService.Archive(ctx.Context(), userId, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success archive note", nil))
}

func (c *noteController) Unarchive(ctx *fiber.Ctx) error {
	userId := callerIdentity(ctx)
	id, _ := uuid.Parse(ctx.Params("id"))

	if err := c.noteService.Unarchive(ctx.Context(), userId, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success unarchive note", nil))
}

func (c *noteController) SetColour(ctx *fiber.Ctx) error {
	userId := callerIdentity(ctx)
	id, _ := uuid.Parse(ctx.Params("id"))

	var req dto.SetColourRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.noteService.SetColour(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success set note colour", res))
}
