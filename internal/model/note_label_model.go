package model

import (
	"time"

	"github.com/google/uuid"
)

// NoteLabel rows are unique per (note, label, user); the composite index
// backs the conflict check on attach. FK cascades from notes/labels are
// declared in cmd/migrate.
type NoteLabel struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_note_label_user"`
	NoteId    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_note_label_user"`
	LabelId   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_note_label_user"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (NoteLabel) TableName() string {
	return "note_labels"
}
