package response_models

import "lessonhub/internal/models/db_models"

type AccountResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	PhotoURL  string   `json:"photoUrl,omitempty"`
	Role      string   `json:"role"`
	IsPremium bool     `json:"isPremium"`
	Favorites []string `json:"favorites"`
	CreatedAt int64    `json:"createdAt"`
}

func AccountFromModel(account *db_models.Account) *AccountResponse {
	favorites := make([]string, 0, len(account.FavoriteLessonIDs))
	favorites = append(favorites, account.FavoriteLessonIDs...)

	return &AccountResponse{
		ID:        account.ID.String(),
		Name:      account.Name,
		Email:     account.Email,
		PhotoURL:  account.PhotoURL,
		Role:      account.Role,
		IsPremium: account.IsPremium,
		Favorites: favorites,
		CreatedAt: account.CreatedAt,
	}
}
