package db_models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Report references a lesson by id without a foreign key: a lesson may be
// deleted while reports against it remain.
type Report struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	ReporterEmail string    `gorm:"not null;index"`
	LessonID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Reason        string    `gorm:"type:text;not null"`
	CreatedAt     int64     `gorm:"autoCreateTime"`
}

func (r *Report) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
