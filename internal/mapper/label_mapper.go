package mapper

import (
	"time"

	"notekeeper-be/internal/entity"
	"notekeeper-be/internal/model"
)

type LabelMapper struct{}

func NewLabelMapper() *LabelMapper {
	return &LabelMapper{}
}

func (m *LabelMapper) ToEntity(l *model.Label) *entity.Label {
	if l == nil {
		return nil
	}

	var updatedAt *time.Time
	if !l.UpdatedAt.IsZero() {
		t := l.UpdatedAt
		updatedAt = &t
	}

	return &entity.Label{
		Id:        l.Id,
		UserId:    l.UserId,
		Name:      l.Name,
		CreatedAt: l.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *LabelMapper) ToModel(l *entity.Label) *model.Label {
	if l == nil {
		return nil
	}

	var updatedAt time.Time
	if l.UpdatedAt != nil {
		updatedAt = *l.UpdatedAt
	}

	return &model.Label{
		Id:        l.Id,
		UserId:    l.UserId,
		Name:      l.Name,
		CreatedAt: l.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *LabelMapper) ToEntities(labels []*model.Label) []*entity.Label {
	entities := make([]*entity.Label, len(labels))
	for i, l := range labels {
		entities[i] = m.ToEntity(l)
	}
	return entities
}

// NoteLabel Mappers

func (m *LabelMapper) NoteLabelToEntity(nl *model.NoteLabel) *entity.NoteLabel {
	if nl == nil {
		return nil
	}
	return &entity.NoteLabel{
		Id:        nl.Id,
		UserId:    nl.UserId,
		NoteId:    nl.NoteId,
		LabelId:   nl.LabelId,
		CreatedAt: nl.CreatedAt,
	}
}

func (m *LabelMapper) NoteLabelToModel(nl *entity.NoteLabel) *model.NoteLabel {
	if nl == nil {
		return nil
	}
	return &model.NoteLabel{
		Id:        nl.Id,
		UserId:    nl.UserId,
		NoteId:    nl.NoteId,
		LabelId:   nl.LabelId,
		CreatedAt: nl.CreatedAt,
	}
}
