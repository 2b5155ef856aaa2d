package dto

import (
	"time"

	"github.com/google/uuid"
)

type AddCollaboratorRequest struct {
	NoteId uuid.UUID `json:"note_id" validate:"required"`
	Email  string    `json:"email" validate:"required,email"`
}

type AddCollaboratorResponse struct {
	Id uuid.UUID `json:"id"`
}

type CollaboratorResponse struct {
	Id        uuid.UUID `json:"id"`
	NoteId    uuid.UUID `json:"note_id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type RemoveCollaboratorRequest struct {
	NoteId uuid.UUID `json:"note_id" validate:"required"`
	Email  string    `json:"email" validate:"required,email"`
}

// CollaboratorUpdateNoteRequest lets a collaborator edit a note that was
// shared with them.
type CollaboratorUpdateNoteRequest struct {
	NoteId      uuid.UUID `json:"note_id" validate:"required"`
	Title       string    `json:"title" validate:"required,min=2,max=50"`
	Description string    `json:"description" validate:"required,min=3,max=1000"`
}
