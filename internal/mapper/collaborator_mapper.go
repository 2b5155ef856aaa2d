package mapper

import (
	"notekeeper-be/internal/entity"
	"notekeeper-be/internal/model"
)

type CollaboratorMapper struct{}

func NewCollaboratorMapper() *CollaboratorMapper {
	return &CollaboratorMapper{}
}

func (m *CollaboratorMapper) ToEntity(c *model.Collaborator) *entity.Collaborator {
	if c == nil {
		return nil
	}
	return &entity.Collaborator{
		Id:        c.Id,
		UserId:    c.UserId,
		NoteId:    c.NoteId,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
	}
}

func (m *CollaboratorMapper) ToModel(c *entity.Collaborator) *model.Collaborator {
	if c == nil {
		return nil
	}
	return &model.Collaborator{
		Id:        c.Id,
		UserId:    c.UserId,
		NoteId:    c.NoteId,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
	}
}

func (m *CollaboratorMapper) ToEntities(collabs []*model.Collaborator) []*entity.Collaborator {
	entities := make([]*entity.Collaborator, len(collabs))
	for i, c := range collabs {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
