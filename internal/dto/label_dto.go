package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateLabelRequest struct {
	Name string `json:"name" validate:"required,min=2,max=20"`
}

type CreateLabelResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdateLabelRequest struct {
	Id   uuid.UUID
	Name string `json:"name" validate:"required,min=2,max=20"`
}

type UpdateLabelResponse struct {
	Id uuid.UUID `json:"id"`
}

type LabelResponse struct {
	Id        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type AttachLabelRequest struct {
	NoteId  uuid.UUID `json:"note_id" validate:"required"`
	LabelId uuid.UUID `json:"label_id" validate:"required"`
}

type AttachLabelResponse struct {
	Id uuid.UUID `json:"id"`
}
