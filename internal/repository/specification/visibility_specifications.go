package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Specs for the visibility/query composer. These operate on the "notes"
// table with explicit joins, so every column reference is table-qualified
// to avoid ambiguity once labels and collaborators are joined in.

// WithCollaboratorJoin left-joins collaborator grants onto notes. Needed
// by VisibleToUser and by any view annotating collaborator emails.
type WithCollaboratorJoin struct{}

func (s WithCollaboratorJoin) Apply(db *gorm.DB) *gorm.DB {
	return db.Joins("LEFT JOIN collaborators ON collaborators.note_id = notes.id")
}

// WithLabelJoin left-joins label attachments and their labels onto notes.
// A note without labels still yields a row (label_name NULL).
type WithLabelJoin struct{}

func (s WithLabelJoin) Apply(db *gorm.DB) *gorm.DB {
	return db.
		Joins("LEFT JOIN note_labels ON note_labels.note_id = notes.id").
		Joins("LEFT JOIN labels ON labels.id = note_labels.label_id")
}

// VisibleToUser matches notes the user owns or collaborates on (matched
// by the user's email against collaborator grants). Requires
// WithCollaboratorJoin on the same query.
type VisibleToUser struct {
	UserID uuid.UUID
	Email  string
}

func (s VisibleToUser) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("(notes.user_id = ? OR collaborators.email = ?)", s.UserID, s.Email)
}

// NotesByIDs restricts to the given note ids. Table-qualified because the
// joined tables carry id columns of their own.
type NotesByIDs struct {
	IDs []uuid.UUID
}

func (s NotesByIDs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("notes.id IN ?", s.IDs)
}

// ActiveOnly keeps the default-list notes: neither pinned nor archived.
type ActiveOnly struct{}

func (s ActiveOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("notes.archived = FALSE AND notes.pinned = FALSE")
}

type PinnedOnly struct{}

func (s PinnedOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("notes.pinned = TRUE")
}

type ArchivedOnly struct{}

func (s ArchivedOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("notes.archived = TRUE")
}

// SearchMatch matches the key against note title, note description and
// attached label names, case-insensitively. The field disjunction is
// parenthesized so it ANDs cleanly with the visibility predicate.
// Requires WithLabelJoin on the same query.
type SearchMatch struct {
	Key string
}

func (s SearchMatch) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Key + "%"
	return db.Where("(notes.title ILIKE ? OR notes.description ILIKE ? OR labels.name ILIKE ?)",
		pattern, pattern, pattern)
}
