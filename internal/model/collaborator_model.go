package model

import (
	"time"

	"github.com/google/uuid"
)

type Collaborator struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index"`
	NoteId    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_collaborator_note_email"`
	Email     string    `gorm:"type:varchar(150);not null;uniqueIndex:idx_collaborator_note_email"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Collaborator) TableName() string {
	return "collaborators"
}
