package service

import (
	"context"
	"fmt"
	"time"

	"notekeeper-be/internal/apperror"
	"notekeeper-be/internal/dto"
	"notekeeper-be/internal/entity"
	"notekeeper-be/internal/repository/specification"
	"notekeeper-be/internal/repository/unitofwork"

	"notekeeper-be/pkg/events"
	pktNats "notekeeper-be/pkg/nats"

	"github.com/google/uuid"
)

type INoteService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateNoteRequest) (*dto.CreateNoteResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ShowNoteResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateNoteRequest) (*dto.UpdateNoteResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error

	Pin(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	Unpin(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	Archive(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	Unarchive(ctx context.Context, userId uuid.UUID, id uuid.UUID) error

	SetColour(ctx context.Context, userId uuid.UUID, req *dto.SetColourRequest) (*dto.SetColourResponse, error)
}

type noteService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
}

func NewNoteService(uowFactory unitofwork.RepositoryFactory, eventPublisher *pktNats.Publisher) INoteService {
	return &noteService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
	}
}

// findOwned resolves a note by id scoped to its owner. Collaborators do
// not pass this gate; their edits go through the collaborator service.
func (c *noteService) findOwned(ctx context.Context, uow unitofwork.UnitOfWork, userId, id uuid.UUID) (*entity.Note, error) {
	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.NoteOwnedByUser{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, apperror.NotFound("Note not found")
	}
	return note, nil
}

func (c *noteService) publishEvent(ctx context.Context, eventType string, noteId, userId uuid.UUID) {
	if c.eventPublisher == nil {
		return
	}
	evt := events.BaseEvent{
		Type: eventType,
		Data: map[string]interface{}{
			"note_id": noteId,
			"user_id": userId,
		},
		OccurredAt: time.Now(),
	}
	if err := c.eventPublisher.Publish(ctx, evt); err != nil {
		fmt.Printf("[WARN] Failed to publish %s event: %v\n", eventType, err)
	}
}

func (c *noteService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateNoteRequest) (*dto.CreateNoteResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	note := entity.Note{
		Id:          uuid.New(),
		UserId:      userId,
		Title:       req.Title,
		Description: req.Description,
		Colour:      entity.DefaultNoteColour,
		CreatedAt:   time.Now(),
	}

	if err := uow.NoteRepository().Create(ctx, &note); err != nil {
		return nil, err
	}

	c.publishEvent(ctx, "NOTE_CREATED", note.Id, userId)

	return &dto.CreateNoteResponse{Id: note.Id}, nil
}

func (c *noteService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ShowNoteResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	note, err := c.findOwned(ctx, uow, userId, id)
	if err != nil {
		return nil, err
	}

	return &dto.ShowNoteResponse{
		Id:          note.Id,
		Title:       note.Title,
		Description: note.Description,
		Pinned:      note.Pinned,
		Archived:    note.Archived,
		Colour:      note.Colour,
		CreatedAt:   note.CreatedAt,
		UpdatedAt:   note.UpdatedAt,
	}, nil
}

func (c *noteService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateNoteRequest) (*dto.UpdateNoteResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	note, err := c.findOwned(ctx, uow, userId, req.Id)
	if err != nil {
		return nil, err
	}

	note.Title = req.Title
	note.Description = req.Description
	now := time.Now()
	note.UpdatedAt = &now

	if err := uow.NoteRepository().Update(ctx, note); err != nil {
		return nil, err
	}

	return &dto.UpdateNoteResponse{Id: note.Id}, nil
}

func (c *noteService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	note, err := c.findOwned(ctx, uow, userId, id)
	if err != nil {
		return err
	}

	if err := uow.NoteRepository().Delete(ctx, note.Id); err != nil {
		return err
	}

	c.publishEvent(ctx, "NOTE_DELETED", note.Id, userId)
	return nil
}

// The four flag operations share one shape: load the owned note, run the
// transition on the entity, and persist both flags only when it reports
// a change. Re-applying the current state is an accepted no-op.

func (c *noteService) Pin(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	return c.applyFlagChange(ctx, userId, id, (*entity.Note).Pin)
}

func (c *noteService) Unpin(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	return c.applyFlagChange(ctx, userId, id, (*entity.Note).Unpin)
}

func (c *noteService) Archive(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	return c.applyFlagChange(ctx, userId, id, (*entity.Note).Archive)
}

func (c *noteService) Unarchive(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	return c.applyFlagChange(ctx, userId, id, (*entity.Note).Unarchive)
}

func (c *noteService) applyFlagChange(ctx context.Context, userId, id uuid.UUID, transition func(*entity.Note) bool) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	note, err := c.findOwned(ctx, uow, userId, id)
	if err != nil {
		return err
	}

	if !transition(note) {
		return nil
	}

	return uow.NoteRepository().UpdateFlags(ctx, note.Id, note.Pinned, note.Archived)
}

func (c *noteService) SetColour(ctx context.Context, userId uuid.UUID, req *dto.SetColourRequest) (*dto.SetColourResponse, error) {
	rgb, ok := entity.ResolveColour(req.Colour)
	if !ok {
		return nil, apperror.InvalidColour(fmt.Sprintf("Colour '%s' is not available", req.Colour))
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)

	note, err := c.findOwned(ctx, uow, userId, req.Id)
	if err != nil {
		return nil, err
	}

	if err := uow.NoteRepository().UpdateColour(ctx, note.Id, rgb); err != nil {
		return nil, err
	}

	return &dto.SetColourResponse{Id: note.Id, Colour: rgb}, nil
}
