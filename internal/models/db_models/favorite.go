package db_models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Favorite rows are hard-deleted on toggle-off, so the model carries no
// soft-delete column.
type Favorite struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	AccountEmail string    `gorm:"not null;uniqueIndex:idx_fav_account_lesson"`
	LessonID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_fav_account_lesson"`
	CreatedAt    int64     `gorm:"autoCreateTime"`
}

func (f *Favorite) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
