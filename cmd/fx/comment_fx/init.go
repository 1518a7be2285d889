package comment_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"lessonhub/internal/api/controllers"
	"lessonhub/internal/repositories"
	"lessonhub/internal/services"
)

var Module = fx.Provide(
	provideCommentRepo, provideCommentService, provideCommentController)

func provideCommentRepo(db *gorm.DB) repositories.CommentRepositoryInterface {
	return repositories.NewCommentRepository(db)
}

func provideCommentService(commentRepo repositories.CommentRepositoryInterface, lessonRepo repositories.LessonRepositoryInterface) services.CommentServiceInterface {
	return services.NewCommentService(commentRepo, lessonRepo)
}

func provideCommentController(commentService services.CommentServiceInterface) *controllers.CommentController {
	return controllers.NewCommentController(commentService)
}
