package db_models

import "github.com/lib/pq"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type Account struct {
	BaseModel
	Name       string
	Email      string `gorm:"unique"`
	PhotoURL   string
	ExternalID string `gorm:"index"` // subject id from the identity provider
	Role       string `gorm:"default:user"`
	IsPremium  bool   `gorm:"default:false"`

	// Profile-view cache of favorited lesson ids (uuid strings). The
	// favorites table is the source of truth; see FavoriteRepository.
	FavoriteLessonIDs pq.StringArray `gorm:"type:text[]"`
}

func ValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}
