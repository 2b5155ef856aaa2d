package service

import (
	"context"
	"encoding/json"
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

type ICollaboratorService interface {
	Add(ctx context.Context, userId uuid.UUID, req *dto.AddCollaboratorRequest) (*dto.AddCollaboratorResponse, error)
	List(ctx context.Context, userId uuid.UUID, noteId uuid.UUID) ([]dto.CollaboratorResponse, error)
	Remove(ctx context.Context, userId uuid.UUID, req *dto.RemoveCollaboratorRequest) error
	UpdateNote(ctx context.Context, userId uuid.UUID, req *dto.CollaboratorUpdateNoteRequest) (*dto.UpdateNoteResponse, error)
}

type collaboratorService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
}

func NewCollaboratorService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
) ICollaboratorService {
	return &collaboratorService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
	}
}

// Add grants a registered user access to an owned note. Only owners can
// share; the grant is keyed on (note, email) so re-adding conflicts.
func (c *collaboratorService) Add(ctx context.Context, userId uuid.UUID, req *dto.AddCollaboratorRequest) (*dto.AddCollaboratorResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: req.NoteId},
		specification.NoteOwnedByUser{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, apperror.NotFound("Note not found")
	}

	invitee, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if invitee == nil {
		return nil, apperror.NotFound("No registered user with that email")
	}

	existing, err := uow.CollaboratorRepository().FindOne(ctx,
		specification.ByNoteID{NoteID: note.Id},
		specification.ByEmail{Email: req.Email},
	)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Conflict("User is already a collaborator on this note")
	}

	owner, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, apperror.Auth("Unknown user")
	}

	collaborator := entity.Collaborator{
		Id:        uuid.New(),
		UserId:    userId,
		NoteId:    note.Id,
		Email:     req.Email,
		CreatedAt: time.Now(),
	}

	if err := uow.CollaboratorRepository().Create(ctx, &collaborator); err != nil {
		return nil, err
	}

	// The grant is committed; a mail queue failure never unwinds it.
	mail := dto.MailMessage{
		Type:       dto.MailTypeCollaboratorInvite,
		To:         req.Email,
		NoteTitle:  note.Title,
		OwnerEmail: owner.Email,
	}
	if mailJson, err := json.Marshal(mail); err != nil {
		fmt.Printf("[WARN] Failed to encode collaborator invite mail: %v\n", err)
	} else if err := c.publisherService.Publish(ctx, mailJson); err != nil {
		fmt.Printf("[WARN] Failed to queue collaborator invite mail: %v\n", err)
	}

	if c.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: "COLLABORATOR_ADDED",
			Data: map[string]interface{}{
				"note_id": note.Id,
				"owner":   owner.Email,
				"email":   req.Email,
			},
			OccurredAt: time.Now(),
		}
		if err := c.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish COLLABORATOR_ADDED event: %v\n", err)
		}
	}

	return &dto.AddCollaboratorResponse{Id: collaborator.Id}, nil
}

func (c *collaboratorService) List(ctx context.Context, userId uuid.UUID, noteId uuid.UUID) ([]dto.CollaboratorResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: noteId},
		specification.NoteOwnedByUser{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, apperror.NotFound("Note not found")
	}

	collabs, err := uow.CollaboratorRepository().FindAll(ctx,
		specification.ByNoteID{NoteID: noteId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	res := make([]dto.CollaboratorResponse, len(collabs))
	for i, col := range collabs {
		res[i] = dto.CollaboratorResponse{
			Id:        col.Id,
			NoteId:    col.NoteId,
			Email:     col.Email,
			CreatedAt: col.CreatedAt,
		}
	}
	return res, nil
}

// Remove revokes a grant. Only the note owner holds the grant rows, so
// the lookup is scoped to them.
func (c *collaboratorService) Remove(ctx context.Context, userId uuid.UUID, req *dto.RemoveCollaboratorRequest) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	collaborator, err := uow.CollaboratorRepository().FindOne(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.ByNoteID{NoteID: req.NoteId},
		specification.ByEmail{Email: req.Email},
	)
	if err != nil {
		return err
	}
	if collaborator == nil {
		return apperror.NotFound("Collaborator not found on this note")
	}

	return uow.CollaboratorRepository().Delete(ctx, collaborator.Id)
}

// UpdateNote edits a note on behalf of either its owner or someone the
// note was shared with.
func (c *collaboratorService) UpdateNote(ctx context.Context, userId uuid.UUID, req *dto.CollaboratorUpdateNoteRequest) (*dto.UpdateNoteResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: req.NoteId})
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, apperror.NotFound("Note not found")
	}

	if note.UserId != userId {
		user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, apperror.Auth("Unknown user")
		}

		grant, err := uow.CollaboratorRepository().FindOne(ctx,
			specification.ByNoteID{NoteID: note.Id},
			specification.ByEmail{Email: user.Email},
		)
		if err != nil {
			return nil, err
		}
		if grant == nil {
			return nil, apperror.NotFound("Note not found")
		}
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
