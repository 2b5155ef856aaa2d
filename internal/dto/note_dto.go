package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateNoteRequest struct {
	Title       string `json:"title" validate:"required,min=2,max=50"`
	Description string `json:"description" validate:"required,min=3,max=500"`
}

type CreateNoteResponse struct {
	Id uuid.UUID `json:"id"`
}

type ShowNoteResponse struct {
	Id          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Pinned      bool       `json:"pinned"`
	Archived    bool       `json:"archived"`
	Colour      string     `json:"colour"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

type UpdateNoteRequest struct {
	Id          uuid.UUID
	Title       string `json:"title" validate:"required,min=2,max=50"`
	Description string `json:"description" validate:"required,min=3,max=1000"`
}

type UpdateNoteResponse struct {
	Id uuid.UUID `json:"id"`
}

type SetColourRequest struct {
	Id     uuid.UUID
	Colour string `json:"colour" validate:"required"`
}

type SetColourResponse struct {
	Id     uuid.UUID `json:"id"`
	Colour string    `json:"colour"`
}

// NoteViewResponse is one entry of a listing: the note plus every label
// name and collaborator email attached to it.
type NoteViewResponse struct {
	Id            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Pinned        bool      `json:"pinned"`
	Archived      bool      `json:"archived"`
	Colour        string    `json:"colour"`
	Labels        []string  `json:"labels"`
	Collaborators []string  `json:"collaborators"`
}

type NoteListResponse struct {
	Notes []NoteViewResponse `json:"notes"`
	Page  int                `json:"page"`
	Total int64              `json:"total"`
}

type SearchNotesRequest struct {
	Key string `json:"key" validate:"required"`
}
