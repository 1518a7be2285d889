package db_models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Comments are append-only; AuthorName is a display-name snapshot taken at
// write time so renames do not rewrite history.
type Comment struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	LessonID    uuid.UUID `gorm:"type:uuid;not null;index"`
	AuthorEmail string    `gorm:"not null"`
	AuthorName  string
	Text        string `gorm:"type:text;not null"`
	CreatedAt   int64  `gorm:"autoCreateTime"`
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
