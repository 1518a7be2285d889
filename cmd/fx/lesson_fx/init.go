package lesson_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"lessonhub/internal/api/controllers"
	"lessonhub/internal/repositories"
	"lessonhub/internal/services"
)

var Module = fx.Provide(
	provideLessonRepo, provideLessonService, provideLessonController)

func provideLessonRepo(db *gorm.DB) repositories.LessonRepositoryInterface {
	return repositories.NewLessonRepository(db)
}

func provideLessonService(lessonRepo repositories.LessonRepositoryInterface, accountRepo repositories.AccountRepository) services.LessonServiceInterface {
	return services.NewLessonService(lessonRepo, accountRepo)
}

func provideLessonController(lessonService services.LessonServiceInterface) *controllers.LessonController {
	return controllers.NewLessonController(lessonService)
}
