package entity

import (
	"time"

	"github.com/google/uuid"
)

type Label struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// NoteLabel attaches a label to a note, scoped to the user who made the
// attachment. At most one row may exist per (note, label, user) triple.
type NoteLabel struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	NoteId    uuid.UUID
	LabelId   uuid.UUID
	CreatedAt time.Time
}
