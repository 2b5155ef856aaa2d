package entity

import (
	"time"

	"github.com/google/uuid"
)

// Collaborator grants the user behind Email read/update access to a note.
// The row belongs to the note's owner (UserId), not the invited user; the
// email only has to resolve to a registered account at creation time.
type Collaborator struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	NoteId    uuid.UUID
	Email     string
	CreatedAt time.Time
}
