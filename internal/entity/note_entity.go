package entity

import (
	"time"

	"github.com/google/uuid"
)

type Note struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	Title       string
	Description string
	Pinned      bool
	Archived    bool
	Colour      string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// Pin marks the note pinned. An archived note is unarchived in the same
// change, so the two flags are never set together. Returns false when the
// note was already pinned (the caller treats that as a no-op).
func (n *Note) Pin() bool {
	if n.Pinned {
		return false
	}
	n.Archived = false
	n.Pinned = true
	return true
}

// Unpin clears the pinned flag. Returns false when the note was not pinned.
func (n *Note) Unpin() bool {
	if !n.Pinned {
		return false
	}
	n.Pinned = false
	return true
}

// Archive marks the note archived, clearing the pinned flag in the same
// change. Returns false when the note was already archived.
func (n *Note) Archive() bool {
	if n.Archived {
		return false
	}
	n.Pinned = false
	n.Archived = true
	return true
}

// Unarchive clears the archived flag. Returns false when the note was not archived.
func (n *Note) Unarchive() bool {
	if !n.Archived {
		return false
	}
	n.Archived = false
	return true
}
