package favorite_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"lessonhub/internal/api/controllers"
	"lessonhub/internal/repositories"
	"lessonhub/internal/services"
)

var Module = fx.Provide(
	provideFavoriteRepo, provideFavoriteService, provideFavoriteController)

func provideFavoriteRepo(db *gorm.DB) repositories.FavoriteRepositoryInterface {
	return repositories.NewFavoriteRepository(db)
}

func provideFavoriteService(
	favoriteRepo repositories.FavoriteRepositoryInterface,
	lessonRepo repositories.LessonRepositoryInterface,
	accountRepo repositories.AccountRepository,
) services.FavoriteServiceInterface {
	return services.NewFavoriteService(favoriteRepo, lessonRepo, accountRepo)
}

func provideFavoriteController(favoriteService services.FavoriteServiceInterface) *controllers.FavoriteController {
	return controllers.NewFavoriteController(favoriteService)
}
