package db_models

import "github.com/lib/pq"

const (
	VisibilityPublic  = "public"
	VisibilityPrivate = "private"

	AccessFree    = "free"
	AccessPremium = "premium"
)

type Lesson struct {
	BaseModel
	Title        string `gorm:"not null"`
	Content      string `gorm:"type:text;not null"`
	Category     string `gorm:"index"`
	EmotionalTag string `gorm:"index"`
	Visibility   string `gorm:"default:public;index"`
	AccessLevel  string `gorm:"default:free;index"`
	CreatorEmail string `gorm:"index;not null"`

	// LikeCount mirrors len(LikedBy); both change in the same UPDATE.
	LikeCount int            `gorm:"default:0"`
	LikedBy   pq.StringArray `gorm:"type:text[]"`

	Featured bool `gorm:"default:false"`
	Reviewed bool `gorm:"default:false"`
}

func ValidVisibility(v string) bool {
	return v == VisibilityPublic || v == VisibilityPrivate
}

func ValidAccessLevel(a string) bool {
	return a == AccessFree || a == AccessPremium
}
