package model

import (
	"time"

	"github.com/google/uuid"
)

type Note struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId      uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text;not null"`
	Pinned      bool      `gorm:"not null;default:false"`
	Archived    bool      `gorm:"not null;default:false"`
	Colour      string    `gorm:"type:varchar(32);not null;default:'rgb(255,255,255)'"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Note) TableName() string {
	return "notes"
}
