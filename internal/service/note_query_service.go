package service

import (
	"context"

	"notekeeper-be/internal/apperror"
	"notekeeper-be/internal/dto"
	"notekeeper-be/internal/entity"
	"notekeeper-be/internal/repository/specification"
	"notekeeper-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type INoteQueryService interface {
	List(ctx context.Context, userId uuid.UUID, page int) (*dto.NoteListResponse, error)
	Pinned(ctx context.Context, userId uuid.UUID, page int) (*dto.NoteListResponse, error)
	Archived(ctx context.Context, userId uuid.UUID, page int) (*dto.NoteListResponse, error)
	Search(ctx context.Context, userId uuid.UUID, key string) ([]dto.NoteViewResponse, error)
}

// noteQueryService builds the shared/owned note listings. Every query
// runs in two steps: resolve the distinct visible note ids (newest
// first), then fetch the label/collaborator annotated rows for the page
// and fold them into one view per note.
type noteQueryService struct {
	uowFactory unitofwork.RepositoryFactory
	pageSize   int
}

func NewNoteQueryService(uowFactory unitofwork.RepositoryFactory, pageSize int) INoteQueryService {
	return &noteQueryService{
		uowFactory: uowFactory,
		pageSize:   pageSize,
	}
}

// List covers notes the user owns plus notes shared with them. The
// pinned and archived listings only cover the user's own notes.
func (c *noteQueryService) List(ctx context.Context, userId uuid.UUID, page int) (*dto.NoteListResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	email, err := c.userEmail(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	return c.listPage(ctx, uow, page,
		specification.WithCollaboratorJoin{},
		specification.VisibleToUser{UserID: userId, Email: email},
		specification.ActiveOnly{},
	)
}

func (c *noteQueryService) Pinned(ctx context.Context, userId uuid.UUID, page int) (*dto.NoteListResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	return c.listPage(ctx, uow, page,
		specification.NoteOwnedByUser{UserID: userId},
		specification.PinnedOnly{},
	)
}

func (c *noteQueryService) Archived(ctx context.Context, userId uuid.UUID, page int) (*dto.NoteListResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	return c.listPage(ctx, uow, page,
		specification.NoteOwnedByUser{UserID: userId},
		specification.ArchivedOnly{},
	)
}

func (c *noteQueryService) Search(ctx context.Context, userId uuid.UUID, key string) ([]dto.NoteViewResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	email, err := c.userEmail(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	ids, err := uow.NoteRepository().FindVisibleIDs(ctx,
		specification.WithCollaboratorJoin{},
		specification.WithLabelJoin{},
		specification.VisibleToUser{UserID: userId, Email: email},
		specification.SearchMatch{Key: key},
	)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []dto.NoteViewResponse{}, nil
	}

	views, err := c.fetchViews(ctx, uow, ids)
	if err != nil {
		return nil, err
	}
	return views, nil
}

func (c *noteQueryService) listPage(ctx context.Context, uow unitofwork.UnitOfWork, page int, specs ...specification.Specification) (*dto.NoteListResponse, error) {
	if page < 1 {
		page = 1
	}

	ids, err := uow.NoteRepository().FindVisibleIDs(ctx, specs...)
	if err != nil {
		return nil, err
	}

	total := int64(len(ids))
	start := (page - 1) * c.pageSize
	if start >= len(ids) {
		return &dto.NoteListResponse{Notes: []dto.NoteViewResponse{}, Page: page, Total: total}, nil
	}
	end := start + c.pageSize
	if end > len(ids) {
		end = len(ids)
	}
	pageIds := ids[start:end]

	views, err := c.fetchViews(ctx, uow, pageIds)
	if err != nil {
		return nil, err
	}

	return &dto.NoteListResponse{Notes: views, Page: page, Total: total}, nil
}

func (c *noteQueryService) userEmail(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID) (string, error) {
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", apperror.Auth("Unknown user")
	}
	return user.Email, nil
}

func (c *noteQueryService) fetchViews(ctx context.Context, uow unitofwork.UnitOfWork, ids []uuid.UUID) ([]dto.NoteViewResponse, error) {
	rows, err := uow.NoteRepository().FindRows(ctx,
		specification.WithCollaboratorJoin{},
		specification.WithLabelJoin{},
		specification.NotesByIDs{IDs: ids},
	)
	if err != nil {
		return nil, err
	}
	return composeNoteViews(ids, rows), nil
}

// composeNoteViews folds annotated rows into one view per note, in the
// order the ids were resolved. The joins fan out (one row per label and
// collaborator combination), so labels and emails are deduplicated.
func composeNoteViews(order []uuid.UUID, rows []entity.NoteRow) []dto.NoteViewResponse {
	views := make(map[uuid.UUID]*dto.NoteViewResponse, len(order))
	seenLabel := make(map[uuid.UUID]map[string]bool)
	seenCollab := make(map[uuid.UUID]map[string]bool)

	for _, row := range rows {
		v, ok := views[row.Id]
		if !ok {
			v = &dto.NoteViewResponse{
				Id:            row.Id,
				Title:         row.Title,
				Description:   row.Description,
				Pinned:        row.Pinned,
				Archived:      row.Archived,
				Colour:        row.Colour,
				Labels:        []string{},
				Collaborators: []string{},
			}
			views[row.Id] = v
			seenLabel[row.Id] = make(map[string]bool)
			seenCollab[row.Id] = make(map[string]bool)
		}

		if row.LabelName != nil && !seenLabel[row.Id][*row.LabelName] {
			seenLabel[row.Id][*row.LabelName] = true
			v.Labels = append(v.Labels, *row.LabelName)
		}
		if row.CollaboratorEmail != nil && !seenCollab[row.Id][*row.CollaboratorEmail] {
			seenCollab[row.Id][*row.CollaboratorEmail] = true
			v.Collaborators = append(v.Collaborators, *row.CollaboratorEmail)
		}
	}

	result := make([]dto.NoteViewResponse, 0, len(order))
	for _, id := range order {
		if v, ok := views[id]; ok {
			result = append(result, *v)
		}
	}
	return result
}
