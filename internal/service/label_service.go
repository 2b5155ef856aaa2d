package service

import (
	"context"
	"time"

	"notekeeper-be/internal/apperror"
	"notekeeper-be/internal/dto"
	"notekeeper-be/internal/entity"
	"notekeeper-be/internal/repository/specification"
	"notekeeper-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ILabelService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateLabelRequest) (*dto.CreateLabelResponse, error)
	List(ctx context.Context, userId uuid.UUID) ([]dto.LabelResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateLabelRequest) (*dto.UpdateLabelResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error

	Attach(ctx context.Context, userId uuid.UUID, req *dto.AttachLabelRequest) (*dto.AttachLabelResponse, error)
	Detach(ctx context.Context, userId uuid.UUID, req *dto.AttachLabelRequest) error
}

type labelService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewLabelService(uowFactory unitofwork.RepositoryFactory) ILabelService {
	return &labelService{
		uowFactory: uowFactory,
	}
}

func (c *labelService) findOwned(ctx context.Context, uow unitofwork.UnitOfWork, userId, id uuid.UUID) (*entity.Label, error) {
	label, err := uow.LabelRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if label == nil {
		return nil, apperror.NotFound("Label not found")
	}
	return label, nil
}

func (c *labelService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateLabelRequest) (*dto.CreateLabelResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	label := entity.Label{
		Id:        uuid.New(),
		UserId:    userId,
		Name:      req.Name,
		CreatedAt: time.Now(),
	}

	if err := uow.LabelRepository().Create(ctx, &label); err != nil {
		return nil, err
	}

	return &dto.CreateLabelResponse{Id: label.Id}, nil
}

func (c *labelService) List(ctx context.Context, userId uuid.UUID) ([]dto.LabelResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	labels, err := uow.LabelRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]dto.LabelResponse, len(labels))
	for i, l := range labels {
		res[i] = dto.LabelResponse{
			Id:        l.Id,
			Name:      l.Name,
			CreatedAt: l.CreatedAt,
			UpdatedAt: l.UpdatedAt,
		}
	}
	return res, nil
}

func (c *labelService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateLabelRequest) (*dto.UpdateLabelResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	label, err := c.findOwned(ctx, uow, userId, req.Id)
	if err != nil {
		return nil, err
	}

	label.Name = req.Name
	now := time.Now()
	label.UpdatedAt = &now

	if err := uow.LabelRepository().Update(ctx, label); err != nil {
		return nil, err
	}

	return &dto.UpdateLabelResponse{Id: label.Id}, nil
}

// Delete removes the label; attachments go with it through the cascade.
func (c *labelService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	label, err := c.findOwned(ctx, uow, userId, id)
	if err != nil {
		return err
	}

	return uow.LabelRepository().Delete(ctx, label.Id)
}

func (c *labelService) Attach(ctx context.Context, userId uuid.UUID, req *dto.AttachLabelRequest) (*dto.AttachLabelResponse, error) {
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

	label, err := c.findOwned(ctx, uow, userId, req.LabelId)
	if err != nil {
		return nil, err
	}

	existing, err := uow.NoteLabelRepository().FindOne(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.ByNoteID{NoteID: note.Id},
		specification.ByLabelID{LabelID: label.Id},
	)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Conflict("Label already attached to this note")
	}

	noteLabel := entity.NoteLabel{
		Id:        uuid.New(),
		UserId:    userId,
		NoteId:    note.Id,
		LabelId:   label.Id,
		CreatedAt: time.Now(),
	}

	if err := uow.NoteLabelRepository().Create(ctx, &noteLabel); err != nil {
		return nil, err
	}

	return &dto.AttachLabelResponse{Id: noteLabel.Id}, nil
}

func (c *labelService) Detach(ctx context.Context, userId uuid.UUID, req *dto.AttachLabelRequest) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	noteLabel, err := uow.NoteLabelRepository().FindOne(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.ByNoteID{NoteID: req.NoteId},
		specification.ByLabelID{LabelID: req.LabelId},
	)
	if err != nil {
		return err
	}
	if noteLabel == nil {
		return apperror.NotFound("Label is not attached to this note")
	}

	return uow.NoteLabelRepository().Delete(ctx, noteLabel.Id)
}
