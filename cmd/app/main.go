package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"lessonhub/cmd/fx/account_fx"
	"lessonhub/cmd/fx/admin_fx"
	"lessonhub/cmd/fx/comment_fx"
	"lessonhub/cmd/fx/db_fx"
	"lessonhub/cmd/fx/favorite_fx"
	"lessonhub/cmd/fx/identity_fx"
	"lessonhub/cmd/fx/lesson_fx"
	"lessonhub/cmd/fx/payment_service_fx"
	"lessonhub/cmd/fx/report_fx"
	"lessonhub/internal/api/controllers"
	"lessonhub/internal/identity"
	"lessonhub/internal/models/db_models"
	"lessonhub/internal/services"
	"lessonhub/pkg/middleware"
)

func main() {
	_ = godotenv.Load()

	app := fx.New(
		db_fx.Module,
		identity_fx.Module,
		account_fx.Module,
		lesson_fx.Module,
		favorite_fx.Module,
		comment_fx.Module,
		report_fx.Module,
		admin_fx.Module,
		payment_service_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	verifier identity.TokenVerifier,
	accountService services.AccountServiceInterface,
	accountController *controllers.AccountController,
	lessonController *controllers.LessonController,
	favoriteController *controllers.FavoriteController,
	commentController *controllers.CommentController,
	reportController *controllers.ReportController,
	adminController *controllers.AdminController,
	paymentController *controllers.PaymentController,
) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	auth := middleware.AuthMiddleware(verifier, accountService)
	optionalAuth := middleware.OptionalAuthMiddleware(verifier, accountService)
	adminOnly := middleware.RoleMiddleware(db_models.RoleAdmin)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	usersGroup := r.Group("/users", auth)
	usersGroup.POST("/sync", accountController.SyncAccount)
	usersGroup.GET("/me", accountController.GetMe)
	usersGroup.PUT("/me", accountController.UpdateMe)

	lessonsGroup := r.Group("/lessons")
	lessonsGroup.GET("", optionalAuth, lessonController.ListLessons)
	// Static segment must stay registered alongside /:id; gin's tree gives
	// static children priority over the param match.
	lessonsGroup.GET("/favorites", auth, favoriteController.ListFavorites)
	lessonsGroup.GET("/:id", optionalAuth, lessonController.GetLessonById)
	lessonsGroup.GET("/:id/comments", optionalAuth, commentController.ListComments)
	lessonsGroup.POST("", auth, lessonController.CreateLesson)
	lessonsGroup.PUT("/:id", auth, lessonController.UpdateLesson)
	lessonsGroup.DELETE("/:id", auth, lessonController.DeleteLesson)
	lessonsGroup.POST("/:id/like", auth, lessonController.ToggleLike)
	lessonsGroup.POST("/:id/favorite", auth, favoriteController.ToggleFavorite)
	lessonsGroup.POST("/:id/comments", auth, commentController.AddComment)

	reportsGroup := r.Group("/reports", auth)
	reportsGroup.POST("", reportController.FileReport)
	reportsGroup.GET("", adminOnly, reportController.ListReports)
	reportsGroup.DELETE("/:id", adminOnly, reportController.ResolveReport)

	adminGroup := r.Group("/admin", auth, adminOnly)
	adminGroup.GET("/users", adminController.ListUsers)
	adminGroup.PUT("/users/:id/role", adminController.SetUserRole)
	adminGroup.DELETE("/users/:id", adminController.DeleteUser)
	adminGroup.GET("/lessons", adminController.ListAllLessons)
	adminGroup.DELETE("/lessons/:id", adminController.DeleteLesson)
	adminGroup.GET("/stats", adminController.GetStats)

	paymentsGroup := r.Group("/payments")
	paymentsGroup.POST("/create-checkout", auth, paymentController.CreateCheckout)
	paymentsGroup.POST("/webhook", paymentController.HandleWebhook)

	return r
}
